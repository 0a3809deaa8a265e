package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
	_ "modernc.org/sqlite"

	"github.com/PabloGalante/inner-mirror/internal/domain"
	"github.com/PabloGalante/inner-mirror/internal/observability"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id        INTEGER PRIMARY KEY,
	entry     TEXT,
	mood      TEXT,
	timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
)`

const selectEntries = `SELECT id, entry, mood, timestamp FROM entries`

// SQLite writes timestamps in several shapes depending on who inserted the row.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05Z07:00",
	time.RFC3339Nano,
}

// Store is the journal kept in a single SQLite file.
type Store struct {
	db *sql.DB
}

// New opens (creating if needed) the journal database at path.
func New(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("applying %q: %w", pragma, err)
		}
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating entries table: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) SaveEntry(ctx context.Context, text string, mood domain.Mood) error {
	if err := domain.ValidateEntry(text, mood); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (entry, mood) VALUES (?, ?)`, text, string(mood),
	); err != nil {
		observability.LoggerFromContext(ctx).Error("saving journal entry", zap.Error(err))
		return fmt.Errorf("inserting entry: %w", err)
	}
	return nil
}

func (s *Store) RecentEntries(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	return s.query(ctx, selectEntries+` ORDER BY timestamp DESC, id DESC LIMIT ?`, limitArg(limit))
}

func (s *Store) EntriesByMood(ctx context.Context, mood domain.Mood, limit int) ([]domain.JournalEntry, error) {
	return s.query(ctx,
		selectEntries+` WHERE mood = ? ORDER BY timestamp DESC, id DESC LIMIT ?`,
		string(mood), limitArg(limit),
	)
}

func (s *Store) query(ctx context.Context, q string, args ...any) ([]domain.JournalEntry, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		observability.LoggerFromContext(ctx).Error("reading journal entries", zap.Error(err))
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	out := []domain.JournalEntry{}
	for rows.Next() {
		var (
			e     domain.JournalEntry
			text  sql.NullString
			mood  sql.NullString
			stamp sql.NullString
		)
		if err := rows.Scan(&e.ID, &text, &mood, &stamp); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e.Text = text.String
		e.Mood = domain.Mood(mood.String)
		e.Timestamp = parseTimestamp(stamp.String)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return out, nil
}

// limitArg maps "no limit" onto SQLite's LIMIT -1.
func limitArg(limit int) int {
	if limit <= 0 {
		return -1
	}
	return limit
}

func parseTimestamp(raw string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
