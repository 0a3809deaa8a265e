package memory

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/inner-mirror/internal/domain"
)

func TestJournalStore_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewJournalStore()
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	for _, text := range []string{"one", "two", "three"} {
		require.NoError(t, s.SaveEntry(ctx, text, domain.MoodJoy))
	}
	require.NoError(t, s.SaveEntry(ctx, "four", domain.MoodStress))

	recent, err := s.RecentEntries(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "four", recent[0].Text)
	assert.Equal(t, "three", recent[1].Text)

	joy, err := s.EntriesByMood(ctx, domain.MoodJoy, 10)
	require.NoError(t, err)
	require.Len(t, joy, 3)
	assert.Equal(t, "three", joy[0].Text)
	assert.Equal(t, "one", joy[2].Text)
}

func TestJournalStore_RejectsEmpty(t *testing.T) {
	ctx := context.Background()
	s := NewJournalStore()

	err := s.SaveEntry(ctx, "  ", domain.MoodJoy)
	assert.ErrorIs(t, err, domain.ErrInvalidEntry)
	err = s.SaveEntry(ctx, "text", "")
	assert.ErrorIs(t, err, domain.ErrInvalidEntry)

	all, err := s.RecentEntries(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSessionStore_Lifecycle(t *testing.T) {
	s := NewSessionStore()
	sess := &domain.Session{ID: "abc"}

	require.NoError(t, s.CreateSession(sess))
	assert.ErrorIs(t, s.CreateSession(sess), domain.ErrSessionExists)

	_, err := s.GetSession("missing")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	_, err = s.UpdateSession("missing", func(h domain.History) domain.History { return h })
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	before, err := s.GetSession("abc")
	require.NoError(t, err)

	updated, err := s.UpdateSession("abc", func(h domain.History) domain.History {
		return h.Append(domain.UserTurn("hi"))
	})
	require.NoError(t, err)
	assert.Equal(t, 1, updated.History.Len())
	assert.Equal(t, 0, before.History.Len())
}

func TestSessionStore_UpdatesAreSerialized(t *testing.T) {
	s := NewSessionStore()
	require.NoError(t, s.CreateSession(&domain.Session{ID: "abc"}))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.UpdateSession("abc", func(h domain.History) domain.History {
				return h.Append(domain.UserTurn("x"))
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	sess, err := s.GetSession("abc")
	require.NoError(t, err)
	assert.Equal(t, 50, sess.History.Len())
}
