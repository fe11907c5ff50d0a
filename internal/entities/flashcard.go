package entities

// Flashcard is a question/answer pair inside a deck. The question, creator and
// deck are fixed at creation; only the answer can be revised.
type Flashcard struct {
	id        uint
	question  string
	answer    string
	creatorID uint
	deckID    uint
}

// SerializedFlashcard is the API representation of a Flashcard.
type SerializedFlashcard struct {
	ID        uint   `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	CreatorID uint   `json:"creatorId"`
	DeckID    uint   `json:"deckId"`
}

func NewFlashcard(id uint, question, answer string, creatorID, deckID uint) Flashcard {
	return Flashcard{
		id:        id,
		question:  question,
		answer:    answer,
		creatorID: creatorID,
		deckID:    deckID,
	}
}

func (f Flashcard) ID() uint         { return f.id }
func (f Flashcard) Question() string { return f.question }
func (f Flashcard) Answer() string   { return f.answer }
func (f Flashcard) CreatorID() uint  { return f.creatorID }
func (f Flashcard) DeckID() uint     { return f.deckID }

// WithAnswer returns a copy of the flashcard carrying the new answer.
func (f Flashcard) WithAnswer(answer string) Flashcard {
	f.answer = answer
	return f
}

func (f Flashcard) Serialize() any {
	return SerializedFlashcard{
		ID:        f.id,
		Question:  f.question,
		Answer:    f.answer,
		CreatorID: f.creatorID,
		DeckID:    f.deckID,
	}
}
