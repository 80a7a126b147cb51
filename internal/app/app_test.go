package app

import (
	"context"
	"testing"
	"time"

	"github.com/rpggio/quill/internal/config"
	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/stretchr/testify/require"
)

func TestNew_UnsetGraceKeepsYesterday(t *testing.T) {
	a, err := Open(":memory:", config.StatsConfig{Timezone: "UTC"}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	ctx := context.Background()
	_, err = a.Entries.Create(ctx, entry.CreateInput{Title: "Yesterday", Content: "written a day ago"})
	require.NoError(t, err)

	a.Stats.WithClock(func() time.Time { return time.Now().Add(24 * time.Hour) })
	snap, err := a.Stats.Snapshot(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, snap.CurrentStreak)
}

func TestNew_ExplicitZeroGrace(t *testing.T) {
	zero := 0
	a, err := Open(":memory:", config.StatsConfig{Timezone: "UTC", StreakGraceDays: &zero}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	ctx := context.Background()
	_, err = a.Entries.Create(ctx, entry.CreateInput{Title: "Yesterday", Content: "written a day ago"})
	require.NoError(t, err)

	a.Stats.WithClock(func() time.Time { return time.Now().Add(24 * time.Hour) })
	snap, err := a.Stats.Snapshot(ctx)
	require.NoError(t, err)
	require.Zero(t, snap.CurrentStreak)
	require.Equal(t, 1, snap.LongestStreak)
}
