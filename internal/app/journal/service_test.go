package journal_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/inner-mirror/internal/adapters/storage/memory"
	"github.com/PabloGalante/inner-mirror/internal/app/journal"
	"github.com/PabloGalante/inner-mirror/internal/domain"
)

func seed(t *testing.T, store domain.JournalStore, n int, mood domain.Mood) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, store.SaveEntry(context.Background(), fmt.Sprintf("%s %d", mood, i), mood))
	}
}

func TestRecent_DefaultsToFive(t *testing.T) {
	store := memory.NewJournalStore()
	seed(t, store, 7, domain.MoodNeutral)
	svc := journal.NewService(store)

	entries, err := svc.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, journal.DefaultLimit)
	assert.Equal(t, "neutral 7", entries[0].Text)
}

func TestByMood(t *testing.T) {
	store := memory.NewJournalStore()
	seed(t, store, 2, domain.MoodJoy)
	seed(t, store, 3, domain.MoodStress)
	svc := journal.NewService(store)

	entries, err := svc.ByMood(context.Background(), " Stress ", 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, domain.MoodStress, e.Mood)
	}

	all, err := svc.ByMood(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}
