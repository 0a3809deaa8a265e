package memory

import (
	"context"
	"sync"
	"time"

	"github.com/PabloGalante/inner-mirror/internal/domain"
)

// JournalStore is an in-memory domain.JournalStore.
// It is NOT persistent and is only suitable for development / local mode.
type JournalStore struct {
	mu      sync.RWMutex
	entries []domain.JournalEntry
	nextID  int64
	now     func() time.Time
}

func NewJournalStore() *JournalStore {
	return &JournalStore{now: time.Now}
}

func (s *JournalStore) SaveEntry(_ context.Context, text string, mood domain.Mood) error {
	if err := domain.ValidateEntry(text, mood); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.entries = append(s.entries, domain.JournalEntry{
		ID:        s.nextID,
		Text:      text,
		Mood:      mood,
		Timestamp: s.now().UTC(),
	})
	return nil
}

// RecentEntries returns the newest `limit` entries, newest first.
// If limit <= 0, returns all.
func (s *JournalStore) RecentEntries(_ context.Context, limit int) ([]domain.JournalEntry, error) {
	return s.newest(limit, func(domain.JournalEntry) bool { return true }), nil
}

func (s *JournalStore) EntriesByMood(_ context.Context, mood domain.Mood, limit int) ([]domain.JournalEntry, error) {
	return s.newest(limit, func(e domain.JournalEntry) bool { return e.Mood == mood }), nil
}

// newest walks backwards so insertion order breaks timestamp ties.
func (s *JournalStore) newest(limit int, keep func(domain.JournalEntry) bool) []domain.JournalEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []domain.JournalEntry{}
	for i := len(s.entries) - 1; i >= 0; i-- {
		if limit > 0 && len(out) >= limit {
			break
		}
		if keep(s.entries[i]) {
			out = append(out, s.entries[i])
		}
	}
	return out
}
