package storage

import "github.com/mrlokans/studygroups/internal/entities"

// Facade hides the storage technology from callers. All database access goes
// through it.
type Facade struct {
	driver Driver
}

func NewFacade(driver Driver) *Facade {
	return &Facade{driver: driver}
}

// Setup connects to the store and prepares its schema. Call once at startup.
func (f *Facade) Setup() error {
	return f.driver.Setup()
}

func (f *Facade) GetUser(id uint) (entities.User, error) {
	return f.driver.GetUser(id)
}

func (f *Facade) CreateUser(username string) (entities.User, error) {
	return f.driver.CreateUser(username)
}

func (f *Facade) DeleteUser(id uint) error {
	return f.driver.DeleteUser(id)
}

func (f *Facade) UpdateUser(user entities.User) (entities.User, error) {
	return f.driver.UpdateUser(user)
}

func (f *Facade) GetStudyGroup(id uint) (entities.StudyGroup, error) {
	return f.driver.GetStudyGroup(id)
}

func (f *Facade) CreateStudyGroup(groupName string) (entities.StudyGroup, error) {
	return f.driver.CreateStudyGroup(groupName)
}

func (f *Facade) DeleteStudyGroup(id uint) error {
	return f.driver.DeleteStudyGroup(id)
}

func (f *Facade) UpdateStudyGroup(group entities.StudyGroup) (entities.StudyGroup, error) {
	return f.driver.UpdateStudyGroup(group)
}

func (f *Facade) GetDeck(id uint) (entities.Deck, error) {
	return f.driver.GetDeck(id)
}

func (f *Facade) CreateDeck(deckName string, creatorID, groupID uint) (entities.Deck, error) {
	return f.driver.CreateDeck(deckName, creatorID, groupID)
}

func (f *Facade) DeleteDeck(id uint) error {
	return f.driver.DeleteDeck(id)
}

func (f *Facade) UpdateDeck(deck entities.Deck) (entities.Deck, error) {
	return f.driver.UpdateDeck(deck)
}

func (f *Facade) GetFlashcard(id uint) (entities.Flashcard, error) {
	return f.driver.GetFlashcard(id)
}

func (f *Facade) CreateFlashcard(question, answer string, creatorID, deckID uint) (entities.Flashcard, error) {
	return f.driver.CreateFlashcard(question, answer, creatorID, deckID)
}

func (f *Facade) DeleteFlashcard(id uint) error {
	return f.driver.DeleteFlashcard(id)
}

func (f *Facade) UpdateFlashcard(flashcard entities.Flashcard) (entities.Flashcard, error) {
	return f.driver.UpdateFlashcard(flashcard)
}
