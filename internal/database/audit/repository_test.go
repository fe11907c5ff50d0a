package audit

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/studygroups/internal/entities"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dbPath := filepath.Join(t.TempDir(), "audit.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.AuditEvent{})
	require.NoError(t, err)

	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	return db
}

func uintPtr(v uint) *uint {
	return &v
}

func TestRepository_LogEvent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	event := &entities.AuditEvent{
		EventType:   entities.AuditEventCreate,
		Action:      "deck_create",
		Description: "Created deck: Biology",
		EntityType:  "deck",
		EntityID:    uintPtr(1),
		Status:      entities.AuditStatusSuccess,
	}

	err := repo.LogEvent(event)
	require.NoError(t, err)
	assert.NotZero(t, event.ID)
	assert.False(t, event.CreatedAt.IsZero())
}

func TestRepository_GetEvents(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 15; i++ {
		require.NoError(t, repo.LogEvent(&entities.AuditEvent{
			EventType: entities.AuditEventCreate,
			Action:    "user_create",
			Status:    entities.AuditStatusSuccess,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	t.Run("limit", func(t *testing.T) {
		events, err := repo.GetEvents(5)
		require.NoError(t, err)
		assert.Len(t, events, 5)
	})

	t.Run("default limit", func(t *testing.T) {
		events, err := repo.GetEvents(0)
		require.NoError(t, err)
		assert.Len(t, events, 15)
	})

	t.Run("order by created_at desc", func(t *testing.T) {
		events, err := repo.GetEvents(10)
		require.NoError(t, err)
		for i := 1; i < len(events); i++ {
			assert.False(t, events[i-1].CreatedAt.Before(events[i].CreatedAt))
		}
	})
}

func TestRepository_GetEventsByType(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, repo.LogEvent(&entities.AuditEvent{EventType: entities.AuditEventCreate, Action: "user_create"}))
	require.NoError(t, repo.LogEvent(&entities.AuditEvent{EventType: entities.AuditEventDelete, Action: "user_delete"}))
	require.NoError(t, repo.LogEvent(&entities.AuditEvent{EventType: entities.AuditEventCreate, Action: "deck_create"}))

	events, err := repo.GetEventsByType(entities.AuditEventCreate, 50)
	require.NoError(t, err)
	assert.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, entities.AuditEventCreate, e.EventType)
	}
}

func TestRepository_GetEventsForEntity(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	require.NoError(t, repo.LogEvent(&entities.AuditEvent{EventType: entities.AuditEventCreate, EntityType: "flashcard", EntityID: uintPtr(3)}))
	require.NoError(t, repo.LogEvent(&entities.AuditEvent{EventType: entities.AuditEventUpdate, EntityType: "flashcard", EntityID: uintPtr(3)}))
	require.NoError(t, repo.LogEvent(&entities.AuditEvent{EventType: entities.AuditEventCreate, EntityType: "flashcard", EntityID: uintPtr(4)}))
	require.NoError(t, repo.LogEvent(&entities.AuditEvent{EventType: entities.AuditEventCreate, EntityType: "deck", EntityID: uintPtr(3)}))

	events, err := repo.GetEventsForEntity("flashcard", 3)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestRepository_DeleteOldEvents(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	now := time.Now()
	require.NoError(t, repo.LogEvent(&entities.AuditEvent{
		EventType: entities.AuditEventDelete,
		Action:    "old_delete",
		CreatedAt: now.Add(-48 * time.Hour),
	}))
	require.NoError(t, repo.LogEvent(&entities.AuditEvent{
		EventType: entities.AuditEventDelete,
		Action:    "new_delete",
		CreatedAt: now.Add(-1 * time.Hour),
	}))

	deleted, err := repo.DeleteOldEvents(now.Add(-24 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	count, err := repo.CountEvents()
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	events, err := repo.GetEvents(0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "new_delete", events[0].Action)
}
