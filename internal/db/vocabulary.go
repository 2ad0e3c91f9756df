// ABOUTME: Tag vocabularies (emotions, factors) and find-or-create resolution
// ABOUTME: Table and column names come from a fixed allow-list, never from callers
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Vocabulary is one of the two independent tag namespaces.
type Vocabulary int

const (
	Emotions Vocabulary = iota + 1
	Factors
)

// ErrInvalidVocabulary means code referenced a vocabulary outside the allow-list.
var ErrInvalidVocabulary = errors.New("invalid vocabulary")

type vocabTables struct {
	name   string // tag table, also the vocabulary's display name
	link   string // entry link table
	column string // tag id column in the link table
}

var vocabularies = map[Vocabulary]vocabTables{
	Emotions: {name: "emotions", link: "entry_emotions", column: "emotion_id"},
	Factors:  {name: "factors", link: "entry_factors", column: "factor_id"},
}

// Vocabularies lists every known vocabulary.
func Vocabularies() []Vocabulary {
	return []Vocabulary{Emotions, Factors}
}

func (v Vocabulary) tables() (vocabTables, error) {
	t, ok := vocabularies[v]
	if !ok {
		return vocabTables{}, fmt.Errorf("%w: %d", ErrInvalidVocabulary, int(v))
	}
	return t, nil
}

func (v Vocabulary) String() string {
	if t, ok := vocabularies[v]; ok {
		return t.name
	}
	return fmt.Sprintf("Vocabulary(%d)", int(v))
}

// ParseVocabulary maps user input such as "emotion" or "Factors" to a Vocabulary.
func ParseVocabulary(s string) (Vocabulary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "emotion", "emotions":
		return Emotions, nil
	case "factor", "factors":
		return Factors, nil
	}
	return 0, fmt.Errorf("%w: %q (want emotions or factors)", ErrInvalidVocabulary, s)
}

// NormalizeTag trims and lower-cases a tag name.
func NormalizeTag(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TagCount is a tag with the number of entries linked to it.
type TagCount struct {
	Name  string `db:"name" json:"name"`
	Count int    `db:"count" json:"count"`
}

// ResolveTags returns ids for names in vocabulary v, creating missing tags.
// Empty names are skipped and the ids are deduplicated. It runs on q, normally
// the caller's transaction, and never commits.
func ResolveTags(ctx context.Context, q sqlx.ExtContext, v Vocabulary, names []string) ([]int64, error) {
	t, err := v.tables()
	if err != nil {
		return nil, err
	}

	var ids []int64
	seen := make(map[int64]bool)
	for _, raw := range names {
		name := NormalizeTag(raw)
		if name == "" {
			continue
		}

		var id int64
		err := sqlx.GetContext(ctx, q, &id, "SELECT id FROM "+t.name+" WHERE name = ?", name)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			result, err := q.ExecContext(ctx, "INSERT INTO "+t.name+" (name) VALUES (?)", name)
			if err != nil {
				return nil, fmt.Errorf("insert %s tag %q: %w", t.name, name, err)
			}
			id, err = result.LastInsertId()
			if err != nil {
				return nil, err
			}
		case err != nil:
			return nil, fmt.Errorf("find %s tag %q: %w", t.name, name, err)
		}

		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	return ids, nil
}

// linkTags attaches tag ids to an entry; existing pairs are left alone.
func linkTags(ctx context.Context, q sqlx.ExecerContext, v Vocabulary, entryID int64, tagIDs []int64) error {
	t, err := v.tables()
	if err != nil {
		return err
	}

	query := "INSERT OR IGNORE INTO " + t.link + " (entry_id, " + t.column + ") VALUES (?, ?)"
	for _, tagID := range tagIDs {
		if _, err := q.ExecContext(ctx, query, entryID, tagID); err != nil {
			return fmt.Errorf("link %s tag %d: %w", t.name, tagID, err)
		}
	}
	return nil
}

// entryTagNames returns the names linked to an entry, alphabetically.
func entryTagNames(ctx context.Context, q sqlx.QueryerContext, v Vocabulary, entryID int64) ([]string, error) {
	t, err := v.tables()
	if err != nil {
		return nil, err
	}

	names := []string{}
	query := "SELECT t.name FROM " + t.link + " l JOIN " + t.name + " t ON t.id = l." + t.column +
		" WHERE l.entry_id = ? ORDER BY t.name"
	if err := sqlx.SelectContext(ctx, q, &names, query, entryID); err != nil {
		return nil, fmt.Errorf("load %s for entry %d: %w", t.name, entryID, err)
	}
	return names, nil
}

// ResolveTags resolves names in their own transaction, e.g. to pre-seed a vocabulary.
func (s *Store) ResolveTags(ctx context.Context, v Vocabulary, names []string) ([]int64, error) {
	c, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()

	tx, err := c.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	ids, err := ResolveTags(ctx, tx, v, names)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tags: %w", err)
	}
	return ids, nil
}

// ListTags returns every tag name in v, alphabetically.
func (s *Store) ListTags(ctx context.Context, v Vocabulary) ([]string, error) {
	t, err := v.tables()
	if err != nil {
		return nil, err
	}

	c, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()

	names := []string{}
	if err := c.SelectContext(ctx, &names, "SELECT name FROM "+t.name+" ORDER BY name"); err != nil {
		return nil, fmt.Errorf("list %s: %w", t.name, err)
	}
	return names, nil
}

// TagUsage returns every tag in v with its entry count, most used first.
func (s *Store) TagUsage(ctx context.Context, v Vocabulary) ([]TagCount, error) {
	t, err := v.tables()
	if err != nil {
		return nil, err
	}

	c, err := s.conn(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()

	counts := []TagCount{}
	query := "SELECT t.name AS name, COUNT(l.entry_id) AS count FROM " + t.name + " t" +
		" LEFT JOIN " + t.link + " l ON l." + t.column + " = t.id" +
		" GROUP BY t.id ORDER BY count DESC, t.name"
	if err := c.SelectContext(ctx, &counts, query); err != nil {
		return nil, fmt.Errorf("count %s: %w", t.name, err)
	}
	return counts, nil
}
