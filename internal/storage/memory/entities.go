package memory

import "github.com/mrlokans/studygroups/internal/entities"

func (d *Driver) GetUser(id uint) (entities.User, error) {
	return get(d, d.users, "user", id)
}

func (d *Driver) CreateUser(username string) (entities.User, error) {
	return create(d, d.users, "user", func(id uint) entities.User {
		return entities.NewUser(id, username)
	})
}

func (d *Driver) DeleteUser(id uint) error {
	return remove(d, d.users, "user", id)
}

func (d *Driver) UpdateUser(user entities.User) (entities.User, error) {
	return update(d, d.users, "user", user.ID(), func(stored entities.User) entities.User {
		return stored.WithUsername(user.Username())
	})
}

func (d *Driver) GetStudyGroup(id uint) (entities.StudyGroup, error) {
	return get(d, d.groups, "study group", id)
}

func (d *Driver) CreateStudyGroup(groupName string) (entities.StudyGroup, error) {
	return create(d, d.groups, "study group", func(id uint) entities.StudyGroup {
		return entities.NewStudyGroup(id, groupName)
	})
}

func (d *Driver) DeleteStudyGroup(id uint) error {
	return remove(d, d.groups, "study group", id)
}

func (d *Driver) UpdateStudyGroup(group entities.StudyGroup) (entities.StudyGroup, error) {
	return update(d, d.groups, "study group", group.ID(), func(stored entities.StudyGroup) entities.StudyGroup {
		return stored.WithGroupName(group.GroupName())
	})
}

func (d *Driver) GetDeck(id uint) (entities.Deck, error) {
	return get(d, d.decks, "deck", id)
}

func (d *Driver) CreateDeck(deckName string, creatorID, groupID uint) (entities.Deck, error) {
	return create(d, d.decks, "deck", func(id uint) entities.Deck {
		return entities.NewDeck(id, deckName, creatorID, groupID)
	})
}

func (d *Driver) DeleteDeck(id uint) error {
	return remove(d, d.decks, "deck", id)
}

func (d *Driver) UpdateDeck(deck entities.Deck) (entities.Deck, error) {
	return update(d, d.decks, "deck", deck.ID(), func(stored entities.Deck) entities.Deck {
		return stored.WithDeckName(deck.DeckName())
	})
}

func (d *Driver) GetFlashcard(id uint) (entities.Flashcard, error) {
	return get(d, d.flashcards, "flashcard", id)
}

func (d *Driver) CreateFlashcard(question, answer string, creatorID, deckID uint) (entities.Flashcard, error) {
	return create(d, d.flashcards, "flashcard", func(id uint) entities.Flashcard {
		return entities.NewFlashcard(id, question, answer, creatorID, deckID)
	})
}

func (d *Driver) DeleteFlashcard(id uint) error {
	return remove(d, d.flashcards, "flashcard", id)
}

// UpdateFlashcard only applies the answer; question, creator and deck stay as stored.
func (d *Driver) UpdateFlashcard(flashcard entities.Flashcard) (entities.Flashcard, error) {
	return update(d, d.flashcards, "flashcard", flashcard.ID(), func(stored entities.Flashcard) entities.Flashcard {
		return stored.WithAnswer(flashcard.Answer())
	})
}
