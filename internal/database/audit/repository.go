package audit

import (
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/studygroups/internal/entities"
)

const defaultLimit = 50

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// LogEvent saves an audit event to the database.
func (r *Repository) LogEvent(event *entities.AuditEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	return r.db.Create(event).Error
}

// GetEvents retrieves the most recent audit events, newest first.
func (r *Repository) GetEvents(limit int) ([]entities.AuditEvent, error) {
	var events []entities.AuditEvent
	if limit <= 0 {
		limit = defaultLimit
	}
	err := r.db.Order("created_at DESC, id DESC").Limit(limit).Find(&events).Error
	return events, err
}

// GetEventsByType retrieves the most recent audit events of one type.
func (r *Repository) GetEventsByType(eventType entities.AuditEventType, limit int) ([]entities.AuditEvent, error) {
	var events []entities.AuditEvent
	if limit <= 0 {
		limit = defaultLimit
	}
	err := r.db.Where("event_type = ?", eventType).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&events).Error
	return events, err
}

// GetEventsForEntity returns the history of a single record, newest first.
func (r *Repository) GetEventsForEntity(entityType string, entityID uint) ([]entities.AuditEvent, error) {
	var events []entities.AuditEvent
	err := r.db.Where("entity_type = ? AND entity_id = ?", entityType, entityID).
		Order("created_at DESC, id DESC").
		Find(&events).Error
	return events, err
}

// DeleteOldEvents removes events older than the cutoff time.
func (r *Repository) DeleteOldEvents(cutoff time.Time) (int64, error) {
	result := r.db.Where("created_at < ?", cutoff).Delete(&entities.AuditEvent{})
	return result.RowsAffected, result.Error
}

// CountEvents returns the total number of stored audit events.
func (r *Repository) CountEvents() (int64, error) {
	var count int64
	err := r.db.Model(&entities.AuditEvent{}).Count(&count).Error
	return count, err
}
