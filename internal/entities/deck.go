package entities

// Deck is a named collection of flashcards belonging to a study group.
// The creator and group IDs are stored as-is and never validated against
// existing users or groups.
type Deck struct {
	id        uint
	deckName  string
	creatorID uint
	groupID   uint
}

// SerializedDeck is the API representation of a Deck.
type SerializedDeck struct {
	ID        uint   `json:"id"`
	DeckName  string `json:"deckName"`
	CreatorID uint   `json:"creatorId"`
	GroupID   uint   `json:"groupId"`
}

func NewDeck(id uint, deckName string, creatorID, groupID uint) Deck {
	return Deck{id: id, deckName: deckName, creatorID: creatorID, groupID: groupID}
}

func (d Deck) ID() uint         { return d.id }
func (d Deck) DeckName() string { return d.deckName }
func (d Deck) CreatorID() uint  { return d.creatorID }
func (d Deck) GroupID() uint    { return d.groupID }

// WithDeckName returns a copy of the deck carrying the new name.
func (d Deck) WithDeckName(deckName string) Deck {
	d.deckName = deckName
	return d
}

func (d Deck) Serialize() any {
	return SerializedDeck{
		ID:        d.id,
		DeckName:  d.deckName,
		CreatorID: d.creatorID,
		GroupID:   d.groupID,
	}
}
