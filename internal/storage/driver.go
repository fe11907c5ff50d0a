// Package storage defines the contract between request handling and the
// storage technology.
//
// A Driver talks to a concrete store (see internal/database for gorm and
// storage/memory for the in-process stand-in). The Facade wraps a Driver and
// is what the rest of the application depends on. Every failure a driver
// returns is a *Error tagged with a Kind:
//
//	get(id)        KindNotFound if absent, KindInternal on any other store error
//	create(...)    KindInternal on store error
//	delete(id)     KindNotFound if absent, KindInternal if lookup or delete fails
//	update(entity) KindNotFound if the ID is gone, KindInternal if lookup or persist fails
//	Setup()        KindConnection if connecting or schema synchronization fails
package storage

import "github.com/mrlokans/studygroups/internal/entities"

// Driver is implemented by each storage technology.
type Driver interface {
	// Setup verifies connectivity and synchronizes the schema.
	Setup() error

	GetUser(id uint) (entities.User, error)
	CreateUser(username string) (entities.User, error)
	DeleteUser(id uint) error
	UpdateUser(user entities.User) (entities.User, error)

	GetStudyGroup(id uint) (entities.StudyGroup, error)
	CreateStudyGroup(groupName string) (entities.StudyGroup, error)
	DeleteStudyGroup(id uint) error
	UpdateStudyGroup(group entities.StudyGroup) (entities.StudyGroup, error)

	GetDeck(id uint) (entities.Deck, error)
	CreateDeck(deckName string, creatorID, groupID uint) (entities.Deck, error)
	DeleteDeck(id uint) error
	UpdateDeck(deck entities.Deck) (entities.Deck, error)

	GetFlashcard(id uint) (entities.Flashcard, error)
	CreateFlashcard(question, answer string, creatorID, deckID uint) (entities.Flashcard, error)
	DeleteFlashcard(id uint) error
	UpdateFlashcard(flashcard entities.Flashcard) (entities.Flashcard, error)
}
