package database

import "github.com/mrlokans/studygroups/internal/entities"

func (d *Database) GetFlashcard(id uint) (entities.Flashcard, error) {
	row, err := findRow[flashcardRow](d.DB, "flashcard", id)
	if err != nil {
		return entities.Flashcard{}, err
	}
	return row.toEntity(), nil
}

func (d *Database) CreateFlashcard(question, answer string, creatorID, deckID uint) (entities.Flashcard, error) {
	row := flashcardRow{
		Question:  question,
		Answer:    answer,
		CreatorID: creatorID,
		DeckID:    deckID,
	}
	if err := insertRow(d.DB, "flashcard", &row); err != nil {
		return entities.Flashcard{}, err
	}
	return row.toEntity(), nil
}

func (d *Database) DeleteFlashcard(id uint) error {
	return deleteRow[flashcardRow](d.DB, "flashcard", id)
}

// UpdateFlashcard persists the answer only. The question, creator and deck
// carried by flashcard are ignored.
func (d *Database) UpdateFlashcard(flashcard entities.Flashcard) (entities.Flashcard, error) {
	row, err := updateColumn(d.DB, "flashcard", flashcard.ID(), "answer", flashcard.Answer(), func(r *flashcardRow) {
		r.Answer = flashcard.Answer()
	})
	if err != nil {
		return entities.Flashcard{}, err
	}
	return row.toEntity(), nil
}
