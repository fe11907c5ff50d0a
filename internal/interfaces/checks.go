package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/mrlokans/studygroups/internal/api"
	"github.com/mrlokans/studygroups/internal/audit"
	"github.com/mrlokans/studygroups/internal/database"
	"github.com/mrlokans/studygroups/internal/http"
	"github.com/mrlokans/studygroups/internal/scheduler"
	"github.com/mrlokans/studygroups/internal/storage"
	"github.com/mrlokans/studygroups/internal/storage/memory"
	"github.com/mrlokans/studygroups/internal/tasks"
)

// =============================================================================
// Storage
// =============================================================================

// Driver implementations
var _ storage.Driver = (*database.Database)(nil)
var _ storage.Driver = (*memory.Driver)(nil)

// The handler consumes the facade
var _ api.Store = (*storage.Facade)(nil)

// Health check targets
var _ http.Pinger = (*database.Database)(nil)
var _ http.Pinger = (*memory.Driver)(nil)

// =============================================================================
// Audit Trail
// =============================================================================

var _ http.AuditRecorder = (*audit.Service)(nil)
var _ http.AuditReader = (*audit.Service)(nil)
var _ tasks.AuditPruner = (*audit.Service)(nil)

// =============================================================================
// Background Jobs
// =============================================================================

var _ scheduler.Enqueuer = (*tasks.Client)(nil)
