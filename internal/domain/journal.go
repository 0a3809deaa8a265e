package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidEntry is returned by every JournalStore when an entry or mood is empty.
var ErrInvalidEntry = errors.New("invalid journal entry")

// JournalEntry is one persisted (text, mood, timestamp) record.
type JournalEntry struct {
	ID        int64     `json:"id"`
	Text      string    `json:"entry"`
	Mood      Mood      `json:"mood"`
	Timestamp Timestamp `json:"timestamp"`
}

// JournalStore is append-only: entries are never updated or deleted.
type JournalStore interface {
	SaveEntry(ctx context.Context, text string, mood Mood) error
	RecentEntries(ctx context.Context, limit int) ([]JournalEntry, error)
	EntriesByMood(ctx context.Context, mood Mood, limit int) ([]JournalEntry, error)
}

type newEntry struct {
	Entry string `validate:"required"`
	Mood  string `validate:"required"`
}

var validate = validator.New()

// ValidateEntry checks an entry before it is written. Stores call it first
// so that nothing is persisted for empty input.
func ValidateEntry(text string, mood Mood) error {
	in := newEntry{
		Entry: strings.TrimSpace(text),
		Mood:  strings.TrimSpace(string(mood)),
	}
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, e := range verrs {
				msgs = append(msgs, strings.ToLower(e.Field())+" must not be empty")
			}
			return fmt.Errorf("%w: %s", ErrInvalidEntry, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}
	return nil
}
