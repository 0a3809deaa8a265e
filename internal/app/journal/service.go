package journal

import (
	"context"
	"fmt"
	"strings"

	"github.com/PabloGalante/inner-mirror/internal/domain"
)

// DefaultLimit is used when the caller asks for limit <= 0.
const DefaultLimit = 5

// Service holds the logic of reading journal entries
type Service struct {
	store domain.JournalStore
}

// NewService creates a journal service from a JournalStore
func NewService(store domain.JournalStore) *Service {
	return &Service{
		store: store,
	}
}

// Recent returns the newest entries, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	entries, err := s.store.RecentEntries(ctx, normalize(limit))
	if err != nil {
		return nil, fmt.Errorf("reading recent entries: %w", err)
	}
	return entries, nil
}

// ByMood returns the newest entries tagged with mood.
func (s *Service) ByMood(ctx context.Context, mood domain.Mood, limit int) ([]domain.JournalEntry, error) {
	mood = domain.Mood(strings.ToLower(strings.TrimSpace(string(mood))))
	if mood == "" {
		return s.Recent(ctx, limit)
	}
	entries, err := s.store.EntriesByMood(ctx, mood, normalize(limit))
	if err != nil {
		return nil, fmt.Errorf("reading %s entries: %w", mood, err)
	}
	return entries, nil
}

func normalize(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	return limit
}
