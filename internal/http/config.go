package http

import "github.com/mrlokans/studygroups/internal/api"

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Entity operations
	Handler *api.Handler

	// Audit trail (optional). Mutations are recorded through AuditRecorder
	// and exposed at /api/audit through AuditReader.
	AuditRecorder AuditRecorder
	AuditReader   AuditReader

	// Health check target (optional)
	Database Pinger

	// CORS
	AllowedOrigins []string

	// Application info
	Version string
}
