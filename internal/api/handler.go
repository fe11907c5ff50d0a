// Package api turns storage outcomes into response envelopes.
//
// Every operation wraps a single store call (update wraps a fetch followed by
// an update) and settles into one of:
//
//	success           -> serialized entity or message, 200 (create: 201)
//	not found         -> store message, 404 (update after a successful fetch: 409)
//	internal failure  -> store message, 500
//	anything else     -> *UnknownOperationError, no response
//
// Update with no new value answers 400 without calling the store.
package api

import "github.com/mrlokans/studygroups/internal/entities"

// Store is the storage surface the handler depends on. *storage.Facade
// implements it.
type Store interface {
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

// Handler exposes the 16 entity operations.
type Handler struct {
	store Store

	users      resource[entities.User]
	groups     resource[entities.StudyGroup]
	decks      resource[entities.Deck]
	flashcards resource[entities.Flashcard]
}

func NewHandler(store Store) *Handler {
	return &Handler{
		store: store,
		users: resource[entities.User]{
			name:       "User",
			noun:       "user",
			get:        store.GetUser,
			remove:     store.DeleteUser,
			update:     store.UpdateUser,
			setContent: entities.User.WithUsername,
		},
		groups: resource[entities.StudyGroup]{
			name:       "StudyGroup",
			noun:       "study group",
			get:        store.GetStudyGroup,
			remove:     store.DeleteStudyGroup,
			update:     store.UpdateStudyGroup,
			setContent: entities.StudyGroup.WithGroupName,
		},
		decks: resource[entities.Deck]{
			name:       "Deck",
			noun:       "deck",
			get:        store.GetDeck,
			remove:     store.DeleteDeck,
			update:     store.UpdateDeck,
			setContent: entities.Deck.WithDeckName,
		},
		flashcards: resource[entities.Flashcard]{
			name:       "Flashcard",
			noun:       "flashcard",
			get:        store.GetFlashcard,
			remove:     store.DeleteFlashcard,
			update:     store.UpdateFlashcard,
			setContent: entities.Flashcard.WithAnswer,
		},
	}
}

// --- Users ---

func (h *Handler) GetUser(id uint) (Response, error) {
	return h.users.Get(id)
}

func (h *Handler) CreateUser(username string) (Response, error) {
	return h.users.Create(func() (entities.User, error) {
		return h.store.CreateUser(username)
	})
}

func (h *Handler) DeleteUser(id uint) (Response, error) {
	return h.users.Delete(id)
}

// UpdateUser renames a user. A nil username is rejected with 400.
func (h *Handler) UpdateUser(id uint, username *string) (Response, error) {
	return h.users.Update(id, username)
}

// --- Study groups ---

func (h *Handler) GetStudyGroup(id uint) (Response, error) {
	return h.groups.Get(id)
}

func (h *Handler) CreateStudyGroup(groupName string) (Response, error) {
	return h.groups.Create(func() (entities.StudyGroup, error) {
		return h.store.CreateStudyGroup(groupName)
	})
}

func (h *Handler) DeleteStudyGroup(id uint) (Response, error) {
	return h.groups.Delete(id)
}

func (h *Handler) UpdateStudyGroup(id uint, groupName *string) (Response, error) {
	return h.groups.Update(id, groupName)
}

// --- Decks ---

func (h *Handler) GetDeck(id uint) (Response, error) {
	return h.decks.Get(id)
}

func (h *Handler) CreateDeck(deckName string, creatorID, groupID uint) (Response, error) {
	return h.decks.Create(func() (entities.Deck, error) {
		return h.store.CreateDeck(deckName, creatorID, groupID)
	})
}

func (h *Handler) DeleteDeck(id uint) (Response, error) {
	return h.decks.Delete(id)
}

func (h *Handler) UpdateDeck(id uint, deckName *string) (Response, error) {
	return h.decks.Update(id, deckName)
}

// --- Flashcards ---

func (h *Handler) GetFlashcard(id uint) (Response, error) {
	return h.flashcards.Get(id)
}

func (h *Handler) CreateFlashcard(question, answer string, creatorID, deckID uint) (Response, error) {
	return h.flashcards.Create(func() (entities.Flashcard, error) {
		return h.store.CreateFlashcard(question, answer, creatorID, deckID)
	})
}

func (h *Handler) DeleteFlashcard(id uint) (Response, error) {
	return h.flashcards.Delete(id)
}

// UpdateFlashcard replaces the answer of a flashcard. The question, creator
// and deck are carried over unchanged.
func (h *Handler) UpdateFlashcard(id uint, answer *string) (Response, error) {
	return h.flashcards.Update(id, answer)
}
