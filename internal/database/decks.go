package database

import "github.com/mrlokans/studygroups/internal/entities"

func (d *Database) GetDeck(id uint) (entities.Deck, error) {
	row, err := findRow[deckRow](d.DB, "deck", id)
	if err != nil {
		return entities.Deck{}, err
	}
	return row.toEntity(), nil
}

func (d *Database) CreateDeck(deckName string, creatorID, groupID uint) (entities.Deck, error) {
	row := deckRow{DeckName: deckName, CreatorID: creatorID, GroupID: groupID}
	if err := insertRow(d.DB, "deck", &row); err != nil {
		return entities.Deck{}, err
	}
	return row.toEntity(), nil
}

func (d *Database) DeleteDeck(id uint) error {
	return deleteRow[deckRow](d.DB, "deck", id)
}

// UpdateDeck persists the deck name. Creator and group are never rewritten.
func (d *Database) UpdateDeck(deck entities.Deck) (entities.Deck, error) {
	row, err := updateColumn(d.DB, "deck", deck.ID(), "deck_name", deck.DeckName(), func(r *deckRow) {
		r.DeckName = deck.DeckName()
	})
	if err != nil {
		return entities.Deck{}, err
	}
	return row.toEntity(), nil
}
