package api

import (
	"github.com/stretchr/testify/mock"

	"github.com/mrlokans/studygroups/internal/entities"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) GetUser(id uint) (entities.User, error) {
	args := m.Called(id)
	return args.Get(0).(entities.User), args.Error(1)
}

func (m *mockStore) CreateUser(username string) (entities.User, error) {
	args := m.Called(username)
	return args.Get(0).(entities.User), args.Error(1)
}

func (m *mockStore) DeleteUser(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockStore) UpdateUser(user entities.User) (entities.User, error) {
	args := m.Called(user)
	return args.Get(0).(entities.User), args.Error(1)
}

func (m *mockStore) GetStudyGroup(id uint) (entities.StudyGroup, error) {
	args := m.Called(id)
	return args.Get(0).(entities.StudyGroup), args.Error(1)
}

func (m *mockStore) CreateStudyGroup(groupName string) (entities.StudyGroup, error) {
	args := m.Called(groupName)
	return args.Get(0).(entities.StudyGroup), args.Error(1)
}

func (m *mockStore) DeleteStudyGroup(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockStore) UpdateStudyGroup(group entities.StudyGroup) (entities.StudyGroup, error) {
	args := m.Called(group)
	return args.Get(0).(entities.StudyGroup), args.Error(1)
}

func (m *mockStore) GetDeck(id uint) (entities.Deck, error) {
	args := m.Called(id)
	return args.Get(0).(entities.Deck), args.Error(1)
}

func (m *mockStore) CreateDeck(deckName string, creatorID, groupID uint) (entities.Deck, error) {
	args := m.Called(deckName, creatorID, groupID)
	return args.Get(0).(entities.Deck), args.Error(1)
}

func (m *mockStore) DeleteDeck(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockStore) UpdateDeck(deck entities.Deck) (entities.Deck, error) {
	args := m.Called(deck)
	return args.Get(0).(entities.Deck), args.Error(1)
}

func (m *mockStore) GetFlashcard(id uint) (entities.Flashcard, error) {
	args := m.Called(id)
	return args.Get(0).(entities.Flashcard), args.Error(1)
}

func (m *mockStore) CreateFlashcard(question, answer string, creatorID, deckID uint) (entities.Flashcard, error) {
	args := m.Called(question, answer, creatorID, deckID)
	return args.Get(0).(entities.Flashcard), args.Error(1)
}

func (m *mockStore) DeleteFlashcard(id uint) error {
	return m.Called(id).Error(0)
}

func (m *mockStore) UpdateFlashcard(flashcard entities.Flashcard) (entities.Flashcard, error) {
	args := m.Called(flashcard)
	return args.Get(0).(entities.Flashcard), args.Error(1)
}
