package firestore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/PabloGalante/inner-mirror/internal/domain"
)

type Store struct {
	client *firestore.Client
	now    func() time.Time
}

// NewStore creates a Firestore journal store.
// Uses the project passed (MIRROR_GCP_PROJECT).
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

// ─────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────

func (s *Store) entriesCol() *firestore.CollectionRef {
	return s.client.Collection("entries")
}

// Firestore has no autoincrement; the id is the write time in nanoseconds,
// which keeps ids increasing for a single writer.
type entryDoc struct {
	ID        int64     `firestore:"id"`
	Entry     string    `firestore:"entry"`
	Mood      string    `firestore:"mood"`
	Timestamp time.Time `firestore:"timestamp"`
}

// ─────────────────────────────────────────
// JournalStore implementation
// ─────────────────────────────────────────

func (s *Store) SaveEntry(ctx context.Context, text string, mood domain.Mood) error {
	if err := domain.ValidateEntry(text, mood); err != nil {
		return err
	}

	now := s.now().UTC()
	doc := entryDoc{
		ID:        now.UnixNano(),
		Entry:     text,
		Mood:      string(mood),
		Timestamp: now,
	}

	if _, _, err := s.entriesCol().Add(ctx, doc); err != nil {
		return fmt.Errorf("firestore SaveEntry: %w", err)
	}
	return nil
}

func (s *Store) RecentEntries(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	return s.list(ctx, s.entriesCol().Query, limit)
}

func (s *Store) EntriesByMood(ctx context.Context, mood domain.Mood, limit int) ([]domain.JournalEntry, error) {
	return s.list(ctx, s.entriesCol().Where("mood", "==", string(mood)), limit)
}

func (s *Store) list(ctx context.Context, q firestore.Query, limit int) ([]domain.JournalEntry, error) {
	q = q.OrderBy("timestamp", firestore.Desc).OrderBy("id", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	out := []domain.JournalEntry{}
	for {
		snap, err := iter.Next()
		if err != nil {
			if errors.Is(err, iterator.Done) {
				break
			}
			if status.Code(err) == codes.FailedPrecondition {
				// mood + timestamp ordering needs a composite index
				return nil, fmt.Errorf("firestore list entries (missing index?): %w", err)
			}
			return nil, fmt.Errorf("firestore list entries: %w", err)
		}

		var doc entryDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode entryDoc: %w", err)
		}

		out = append(out, domain.JournalEntry{
			ID:        doc.ID,
			Text:      doc.Entry,
			Mood:      domain.Mood(doc.Mood),
			Timestamp: doc.Timestamp,
		})
	}
	return out, nil
}
