package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/quill/internal/domain/mood"
	"github.com/rpggio/quill/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestMoodRepository_CreateGetList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewMoodRepository(db)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(ctx, &mood.Mood{ID: "m1", Name: "Happy", Emoji: "😊", Color: "#4CAF50", CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, &mood.Mood{ID: "m2", Name: "Sad", Emoji: "😢", Color: "#2196F3", CreatedAt: base.Add(time.Second)}))

	got, err := repo.Get(ctx, "m2")
	require.NoError(t, err)
	require.Equal(t, "😢", got.Emoji)
	require.True(t, base.Add(time.Second).Equal(got.CreatedAt))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Happy", list[0].Name)

	err = repo.Create(ctx, &mood.Mood{ID: "m1", Name: "Dup", Emoji: "x", Color: "#000", CreatedAt: base})
	require.ErrorIs(t, err, repository.ErrConflict)

	_, err = repo.Get(ctx, "missing")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestMoodRepository_ListEmpty(t *testing.T) {
	db := NewTestDB(t)
	list, err := NewMoodRepository(db).List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}
