package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// serializedKeys marshals a snapshot and returns its JSON object keys.
func serializedKeys(t *testing.T, snapshot any) map[string]any {
	t.Helper()
	data, err := json.Marshal(snapshot)
	require.NoError(t, err)

	var fields map[string]any
	require.NoError(t, json.Unmarshal(data, &fields))
	return fields
}

func TestUser(t *testing.T) {
	user := NewUser(0, "username")

	assert.Equal(t, uint(0), user.ID())
	assert.Equal(t, "username", user.Username())

	t.Run("serializes exactly its fields", func(t *testing.T) {
		fields := serializedKeys(t, user.Serialize())
		assert.Len(t, fields, 2)
		assert.Equal(t, float64(0), fields["id"])
		assert.Equal(t, "username", fields["username"])
	})

	t.Run("WithUsername leaves the receiver untouched", func(t *testing.T) {
		renamed := user.WithUsername("newUsername")
		assert.Equal(t, "newUsername", renamed.Username())
		assert.Equal(t, user.ID(), renamed.ID())
		assert.Equal(t, "username", user.Username())
	})
}

func TestStudyGroup(t *testing.T) {
	group := NewStudyGroup(3, "groupName")

	assert.Equal(t, uint(3), group.ID())
	assert.Equal(t, "groupName", group.GroupName())

	fields := serializedKeys(t, group.Serialize())
	assert.Len(t, fields, 2)
	assert.Equal(t, "groupName", fields["groupName"])

	renamed := group.WithGroupName("other")
	assert.Equal(t, "other", renamed.GroupName())
	assert.Equal(t, "groupName", group.GroupName())
}

func TestDeck(t *testing.T) {
	deck := NewDeck(0, "deckName", 1, 2)

	assert.Equal(t, uint(0), deck.ID())
	assert.Equal(t, "deckName", deck.DeckName())
	assert.Equal(t, uint(1), deck.CreatorID())
	assert.Equal(t, uint(2), deck.GroupID())

	fields := serializedKeys(t, deck.Serialize())
	assert.Len(t, fields, 4)
	assert.Equal(t, float64(1), fields["creatorId"])
	assert.Equal(t, float64(2), fields["groupId"])

	renamed := deck.WithDeckName("newDeckName")
	assert.Equal(t, NewDeck(0, "newDeckName", 1, 2), renamed)
}

func TestFlashcard(t *testing.T) {
	card := NewFlashcard(7, "question", "answer", 1, 2)

	assert.Equal(t, uint(7), card.ID())
	assert.Equal(t, "question", card.Question())
	assert.Equal(t, "answer", card.Answer())
	assert.Equal(t, uint(1), card.CreatorID())
	assert.Equal(t, uint(2), card.DeckID())

	fields := serializedKeys(t, card.Serialize())
	assert.Len(t, fields, 5)
	assert.Equal(t, "question", fields["question"])
	assert.Equal(t, float64(2), fields["deckId"])

	revised := card.WithAnswer("newAnswer")
	assert.Equal(t, NewFlashcard(7, "question", "newAnswer", 1, 2), revised)
	assert.Equal(t, "answer", card.Answer())
}

func TestIsValidAuditEventType(t *testing.T) {
	assert.True(t, IsValidAuditEventType("create"))
	assert.True(t, IsValidAuditEventType("delete"))
	assert.False(t, IsValidAuditEventType("import"))
	assert.False(t, IsValidAuditEventType(""))
}
