package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrlokans/studygroups/internal/storage"
	"github.com/mrlokans/studygroups/internal/storage/memory"
)

func TestFacade_RoundTrip(t *testing.T) {
	facade := storage.NewFacade(memory.NewDriver())
	require.NoError(t, facade.Setup())

	t.Run("user", func(t *testing.T) {
		created, err := facade.CreateUser("alice")
		require.NoError(t, err)

		got, err := facade.GetUser(created.ID())
		require.NoError(t, err)
		assert.Equal(t, created.Serialize(), got.Serialize())

		updated, err := facade.UpdateUser(got.WithUsername("alicia"))
		require.NoError(t, err)
		assert.Equal(t, "alicia", updated.Username())

		require.NoError(t, facade.DeleteUser(created.ID()))
		_, err = facade.GetUser(created.ID())
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("study group", func(t *testing.T) {
		created, err := facade.CreateStudyGroup("group")
		require.NoError(t, err)

		updated, err := facade.UpdateStudyGroup(created.WithGroupName("renamed"))
		require.NoError(t, err)
		assert.Equal(t, "renamed", updated.GroupName())

		require.NoError(t, facade.DeleteStudyGroup(created.ID()))
		assert.ErrorIs(t, facade.DeleteStudyGroup(created.ID()), storage.ErrNotFound)
	})

	t.Run("deck", func(t *testing.T) {
		created, err := facade.CreateDeck("deck", 1, 2)
		require.NoError(t, err)
		assert.Equal(t, uint(1), created.CreatorID())
		assert.Equal(t, uint(2), created.GroupID())

		got, err := facade.GetDeck(created.ID())
		require.NoError(t, err)
		assert.Equal(t, created, got)

		updated, err := facade.UpdateDeck(got.WithDeckName("renamed"))
		require.NoError(t, err)
		assert.Equal(t, got.WithDeckName("renamed"), updated)

		require.NoError(t, facade.DeleteDeck(created.ID()))
	})

	t.Run("flashcard", func(t *testing.T) {
		created, err := facade.CreateFlashcard("question", "answer", 1, 2)
		require.NoError(t, err)

		got, err := facade.GetFlashcard(created.ID())
		require.NoError(t, err)
		assert.Equal(t, created.Serialize(), got.Serialize())

		updated, err := facade.UpdateFlashcard(got.WithAnswer("better"))
		require.NoError(t, err)
		assert.Equal(t, "better", updated.Answer())
		assert.Equal(t, "question", updated.Question())

		require.NoError(t, facade.DeleteFlashcard(created.ID()))
		_, err = facade.UpdateFlashcard(updated)
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})
}
