// ABOUTME: Mood entry creation and retrieval
// ABOUTME: Inserts entries with emotion/factor links in one transaction
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// DefaultRecentLimit is the history size used when no limit is given.
const DefaultRecentLimit = 30

// Summary is the history-list view of an entry (no note, no tags).
type Summary struct {
	ID        int64  `db:"id" json:"id"`
	Timestamp string `db:"ts" json:"timestamp"`
	Valence   int    `db:"valence" json:"valence"`
	Arousal   int    `db:"arousal" json:"arousal"`
	Energy    *int   `db:"energy" json:"energy"`
	Social    *int   `db:"social" json:"social"`
}

// Entry is a full mood record.
type Entry struct {
	Summary
	Note *string `db:"note" json:"note"`
}

// Details is an entry with the names of its linked tags.
type Details struct {
	Entry    Entry    `json:"entry"`
	Emotions []string `json:"emotions"`
	Factors  []string `json:"factors"`
}

// NewEntry holds the caller-supplied fields of an entry to create.
type NewEntry struct {
	Valence  int
	Arousal  int
	Energy   *int
	Social   *int
	Note     *string
	Emotions []string
	Factors  []string
}

// Time parses the stored timestamp in the local time zone.
func (s Summary) Time() (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, s.Timestamp, time.Local)
}

// CreateEntry inserts a new entry with its tags and returns its ID.
// Nothing is written unless every step succeeds.
func (s *Store) CreateEntry(ctx context.Context, entry NewEntry) (int64, error) {
	ts := s.now().In(time.Local).Format(TimestampLayout)

	c, err := s.conn(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = c.Close() }()

	tx, err := c.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Insert entry; range checks live in the schema
	result, err := tx.ExecContext(ctx,
		"INSERT INTO entries (ts, valence, arousal, energy, social, note) VALUES (?, ?, ?, ?, ?, ?)",
		ts, entry.Valence, entry.Arousal, entry.Energy, entry.Social, entry.Note,
	)
	if err != nil {
		s.logger.Debug("entry rejected", "err", err)
		return 0, fmt.Errorf("insert entry: %w", err)
	}

	entryID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	// Resolve and link tags
	tagSets := []struct {
		vocab Vocabulary
		names []string
	}{
		{Emotions, entry.Emotions},
		{Factors, entry.Factors},
	}
	for _, set := range tagSets {
		ids, err := ResolveTags(ctx, tx, set.vocab, set.names)
		if err != nil {
			return 0, err
		}
		if err := linkTags(ctx, tx, set.vocab, entryID, ids); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit entry: %w", err)
	}

	s.logger.Debug("entry created", "id", entryID, "ts", ts)
	return entryID, nil
}

// ListRecent returns up to limit entries, most recent first. A limit of zero
// or less means DefaultRecentLimit.
func (s *Store) ListRecent(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	c, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()

	entries := []Summary{}
	err = c.SelectContext(ctx, &entries, `
		SELECT id, ts, valence, arousal, energy, social
		FROM entries
		ORDER BY ts DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// ListSince is ListRecent restricted to entries recorded at or after since.
func (s *Store) ListSince(ctx context.Context, since time.Time, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	c, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()

	entries := []Summary{}
	err = c.SelectContext(ctx, &entries, `
		SELECT id, ts, valence, arousal, energy, social
		FROM entries
		WHERE ts >= ?
		ORDER BY ts DESC, id DESC
		LIMIT ?
	`, since.In(time.Local).Format(TimestampLayout), limit)
	if err != nil {
		return nil, fmt.Errorf("list entries since %s: %w", since.Format(TimestampLayout), err)
	}
	return entries, nil
}

// GetDetails returns the entry with its emotions and factors, or nil if no
// entry has that id.
func (s *Store) GetDetails(ctx context.Context, entryID int64) (*Details, error) {
	c, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()

	var entry Entry
	err = c.GetContext(ctx, &entry,
		"SELECT id, ts, valence, arousal, energy, social, note FROM entries WHERE id = ?", entryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get entry %d: %w", entryID, err)
	}

	emotions, err := entryTagNames(ctx, c, Emotions, entryID)
	if err != nil {
		return nil, err
	}
	factors, err := entryTagNames(ctx, c, Factors, entryID)
	if err != nil {
		return nil, err
	}

	return &Details{Entry: entry, Emotions: emotions, Factors: factors}, nil
}

// DeleteEntry removes an entry and, through cascading foreign keys, its tag
// links. Tags themselves are kept. It reports whether an entry was removed.
func (s *Store) DeleteEntry(ctx context.Context, entryID int64) (bool, error) {
	c, err := s.conn(ctx)
	if err != nil {
		return false, err
	}
	defer func() { _ = c.Close() }()

	result, err := c.ExecContext(ctx, "DELETE FROM entries WHERE id = ?", entryID)
	if err != nil {
		return false, fmt.Errorf("delete entry %d: %w", entryID, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	s.logger.Debug("entry deleted", "id", entryID, "found", n > 0)
	return n > 0, nil
}
