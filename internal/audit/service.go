package audit

import (
	"log"
	"sync"
	"time"

	"github.com/mrlokans/studygroups/internal/database/audit"
	"github.com/mrlokans/studygroups/internal/entities"
)

// RequestInfo identifies the HTTP request that caused a change.
type RequestInfo struct {
	RequestID string
	IPAddress string
	UserAgent string
}

// Service provides high-level audit logging functionality.
type Service struct {
	repo    *audit.Repository
	pending sync.WaitGroup
}

// NewService creates a new audit service.
func NewService(repo *audit.Repository) *Service {
	return &Service{repo: repo}
}

// Log records a generic audit event.
func (s *Service) Log(event *entities.AuditEvent) error {
	return s.repo.LogEvent(event)
}

// LogAsync records an audit event in the background (non-blocking).
func (s *Service) LogAsync(event *entities.AuditEvent) {
	s.pending.Add(1)
	go func() {
		defer s.pending.Done()
		if err := s.repo.LogEvent(event); err != nil {
			log.Printf("Failed to log audit event: %v", err)
		}
	}()
}

// Wait blocks until every event queued with LogAsync has been written.
func (s *Service) Wait() {
	s.pending.Wait()
}

// LogCreate records the creation of an entity.
func (s *Service) LogCreate(entityType string, entityID uint, entityName string, req RequestInfo) {
	s.logMutation(entities.AuditEventCreate, entityType, entityID, "Created "+entityType+": "+entityName, req)
}

// LogUpdate records a change to an entity.
func (s *Service) LogUpdate(entityType string, entityID uint, entityName string, req RequestInfo) {
	s.logMutation(entities.AuditEventUpdate, entityType, entityID, "Updated "+entityType+": "+entityName, req)
}

// LogDelete records a deletion event.
func (s *Service) LogDelete(entityType string, entityID uint, req RequestInfo) {
	s.logMutation(entities.AuditEventDelete, entityType, entityID, "Deleted "+entityType, req)
}

func (s *Service) logMutation(eventType entities.AuditEventType, entityType string, entityID uint, description string, req RequestInfo) {
	event := &entities.AuditEvent{
		EventType:   eventType,
		Action:      entityType + "_" + string(eventType),
		Description: truncate(description, 500),
		EntityType:  entityType,
		EntityID:    &entityID,
		RequestID:   req.RequestID,
		IPAddress:   req.IPAddress,
		UserAgent:   truncate(req.UserAgent, 500),
		Status:      entities.AuditStatusSuccess,
	}

	s.LogAsync(event)
}

// GetEvents retrieves the most recent audit events.
func (s *Service) GetEvents(limit int) ([]entities.AuditEvent, error) {
	return s.repo.GetEvents(limit)
}

// GetEventsByType retrieves audit events filtered by type.
func (s *Service) GetEventsByType(eventType entities.AuditEventType, limit int) ([]entities.AuditEvent, error) {
	return s.repo.GetEventsByType(eventType, limit)
}

// GetEventsForEntity returns the recorded history of one entity.
func (s *Service) GetEventsForEntity(entityType string, entityID uint) ([]entities.AuditEvent, error) {
	return s.repo.GetEventsForEntity(entityType, entityID)
}

// DeleteOldEvents removes events older than the specified duration.
func (s *Service) DeleteOldEvents(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	return s.repo.DeleteOldEvents(cutoff)
}

// truncate shortens a string to max length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
