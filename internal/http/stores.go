package http

import (
	"github.com/mrlokans/studygroups/internal/audit"
	"github.com/mrlokans/studygroups/internal/entities"
)

// AuditRecorder records successful mutations. *audit.Service implements it.
type AuditRecorder interface {
	LogCreate(entityType string, entityID uint, entityName string, req audit.RequestInfo)
	LogUpdate(entityType string, entityID uint, entityName string, req audit.RequestInfo)
	LogDelete(entityType string, entityID uint, req audit.RequestInfo)
}

// AuditReader lists recorded events. *audit.Service implements it.
type AuditReader interface {
	GetEvents(limit int) ([]entities.AuditEvent, error)
	GetEventsByType(eventType entities.AuditEventType, limit int) ([]entities.AuditEvent, error)
	GetEventsForEntity(entityType string, entityID uint) ([]entities.AuditEvent, error)
}

// Pinger checks that the storage backend is reachable.
type Pinger interface {
	Ping() error
}
