package database

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/mrlokans/studygroups/internal/entities"
	"github.com/mrlokans/studygroups/internal/storage"
)

// Table rows. Foreign keys are plain columns; nothing enforces them.

type userRow struct {
	ID        uint   `gorm:"primaryKey"`
	Username  string `gorm:"size:128;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (userRow) TableName() string { return "users" }

func (r userRow) toEntity() entities.User {
	return entities.NewUser(r.ID, r.Username)
}

type studyGroupRow struct {
	ID        uint   `gorm:"primaryKey"`
	GroupName string `gorm:"size:128;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (studyGroupRow) TableName() string { return "study_groups" }

func (r studyGroupRow) toEntity() entities.StudyGroup {
	return entities.NewStudyGroup(r.ID, r.GroupName)
}

type deckRow struct {
	ID        uint   `gorm:"primaryKey"`
	DeckName  string `gorm:"size:128;not null"`
	CreatorID uint   `gorm:"index"`
	GroupID   uint   `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (deckRow) TableName() string { return "decks" }

func (r deckRow) toEntity() entities.Deck {
	return entities.NewDeck(r.ID, r.DeckName, r.CreatorID, r.GroupID)
}

type flashcardRow struct {
	ID        uint   `gorm:"primaryKey"`
	Question  string `gorm:"size:512;not null"`
	Answer    string `gorm:"size:512;not null"`
	CreatorID uint   `gorm:"index"`
	DeckID    uint   `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (flashcardRow) TableName() string { return "flashcards" }

func (r flashcardRow) toEntity() entities.Flashcard {
	return entities.NewFlashcard(r.ID, r.Question, r.Answer, r.CreatorID, r.DeckID)
}

// findRow loads a row by primary key, translating gorm errors into storage kinds.
func findRow[R any](db *gorm.DB, noun string, id uint) (R, error) {
	var row R
	err := db.First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, storage.NotFound("Could not find %s with ID %d", noun, id)
	}
	if err != nil {
		return row, storage.Internal(err, "Failed to get %s with ID %d - %v", noun, id, err)
	}
	return row, nil
}

func insertRow[R any](db *gorm.DB, noun string, row *R) error {
	if err := db.Create(row).Error; err != nil {
		return storage.Internal(err, "Failed to create %s - %v", noun, err)
	}
	return nil
}

// deleteRow looks the row up first so a missing ID reports KindNotFound.
func deleteRow[R any](db *gorm.DB, noun string, id uint) error {
	if _, err := findRow[R](db, noun, id); err != nil {
		return err
	}
	if err := db.Delete(new(R), "id = ?", id).Error; err != nil {
		return storage.Internal(err, "Failed to delete %s with ID %d - %v", noun, id, err)
	}
	return nil
}

// updateColumn writes a single column of an existing row. set applies the same
// value to the loaded row so the returned row reflects what was persisted.
func updateColumn[R any](db *gorm.DB, noun string, id uint, column string, value string, set func(row *R)) (R, error) {
	row, err := findRow[R](db, noun, id)
	if err != nil {
		return row, err
	}

	set(&row)
	result := db.Model(&row).Update(column, value)
	if result.Error != nil {
		return row, storage.Internal(result.Error, "Failed to update %s with ID %d - %v", noun, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return row, storage.NotFound("Could not find %s with ID %d", noun, id)
	}
	return row, nil
}
