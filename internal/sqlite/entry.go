package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/rpggio/quill/internal/domain/mood"
	"github.com/rpggio/quill/internal/domain/tag"
	"github.com/rpggio/quill/internal/repository"
)

// queryer is satisfied by both *sql.DB and *sql.Tx.
type queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// EntryRepository implements entry.Repository for SQLite
type EntryRepository struct {
	db *DB
}

// NewEntryRepository creates a new EntryRepository
func NewEntryRepository(db *DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// Create inserts an entry and links its tags, creating missing tags by name
func (r *EntryRepository) Create(ctx context.Context, e *entry.Entry, tags []entry.TagInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO entries (id, title, content, mood_id, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.ID, e.Title, e.Content, e.MoodID, formatTime(e.CreatedAt), formatTime(e.UpdatedAt))
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create entry: %w", err)
	}

	if err := linkTags(ctx, tx, e.ID, tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit entry: %w", err)
	}
	return nil
}

// Get retrieves an entry by ID with its mood and tags
func (r *EntryRepository) Get(ctx context.Context, id string) (*entry.Entry, error) {
	entries, err := selectEntries(ctx, r.db, "WHERE e.id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, repository.ErrNotFound
	}
	return &entries[0], nil
}

// Update replaces the entry's fields and tag set. created_at is never written.
func (r *EntryRepository) Update(ctx context.Context, e *entry.Entry, tags []entry.TagInput) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE entries SET title = ?, content = ?, mood_id = ?, updated_at = ?
		WHERE id = ?
	`, e.Title, e.Content, e.MoodID, formatTime(e.UpdatedAt), e.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to update entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM entry_tags WHERE entry_id = ?`, e.ID); err != nil {
		return fmt.Errorf("failed to clear entry tags: %w", err)
	}
	if err := linkTags(ctx, tx, e.ID, tags); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit entry: %w", err)
	}
	return nil
}

// Delete removes an entry. Tag links cascade; tags themselves remain.
func (r *EntryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// List returns every entry, newest first
func (r *EntryRepository) List(ctx context.Context) ([]entry.Entry, error) {
	return selectEntries(ctx, r.db, "")
}

func linkTags(ctx context.Context, tx *sql.Tx, entryID string, tags []entry.TagInput) error {
	for _, t := range tags {
		tagID, err := connectOrCreateTag(ctx, tx, t)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO entry_tags (entry_id, tag_id) VALUES (?, ?)`,
			entryID, tagID,
		); err != nil {
			return fmt.Errorf("failed to link tag %q: %w", t.Name, err)
		}
	}
	return nil
}

// selectEntries loads entries with their mood, then attaches tags with a
// second query once the first result set is closed.
func selectEntries(ctx context.Context, q queryer, where string, args ...any) ([]entry.Entry, error) {
	query := `
		SELECT
			e.id, e.title, e.content, e.mood_id, e.created_at, e.updated_at,
			m.id, m.name, m.emoji, m.color, m.created_at
		FROM entries e
		LEFT JOIN moods m ON m.id = e.mood_id
	` + where + `
		ORDER BY e.created_at DESC, e.seq DESC
	`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	entries := []entry.Entry{}
	index := map[string]int{}
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			rows.Close()
			return nil, err
		}
		index[e.ID] = len(entries)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}
	rows.Close()

	if len(entries) == 0 {
		return entries, nil
	}

	tags, err := tagsByEntry(ctx, q, entryIDs(entries))
	if err != nil {
		return nil, err
	}
	for id, i := range index {
		entries[i].Tags = tags[id]
		if entries[i].Tags == nil {
			entries[i].Tags = []tag.Tag{}
		}
	}
	return entries, nil
}

func scanEntry(rows *sql.Rows) (entry.Entry, error) {
	var e entry.Entry
	var moodID, mID, mName, mEmoji, mColor, mCreated sql.NullString
	var createdAt, updatedAt string
	if err := rows.Scan(
		&e.ID, &e.Title, &e.Content, &moodID, &createdAt, &updatedAt,
		&mID, &mName, &mEmoji, &mColor, &mCreated,
	); err != nil {
		return e, fmt.Errorf("failed to scan entry: %w", err)
	}

	var err error
	if e.CreatedAt, err = parseTime(createdAt); err != nil {
		return e, fmt.Errorf("failed to parse entry timestamp: %w", err)
	}
	if e.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return e, fmt.Errorf("failed to parse entry timestamp: %w", err)
	}
	if moodID.Valid {
		e.MoodID = &moodID.String
	}
	if mID.Valid {
		m := &mood.Mood{ID: mID.String, Name: mName.String, Emoji: mEmoji.String, Color: mColor.String}
		if m.CreatedAt, err = parseTime(mCreated.String); err != nil {
			return e, fmt.Errorf("failed to parse mood timestamp: %w", err)
		}
		e.Mood = m
	}
	return e, nil
}

func entryIDs(entries []entry.Entry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	return ids
}

// tagsByEntry loads tags for the given entries, ordered by name.
func tagsByEntry(ctx context.Context, q queryer, ids []string) (map[string][]tag.Tag, error) {
	out := make(map[string][]tag.Tag, len(ids))

	// Chunk to stay below SQLite's host parameter limit.
	const chunk = 500
	for start := 0; start < len(ids); start += chunk {
		end := start + chunk
		if end > len(ids) {
			end = len(ids)
		}
		batch := ids[start:end]

		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(batch)), ",")
		args := make([]any, len(batch))
		for i, id := range batch {
			args[i] = id
		}

		rows, err := q.QueryContext(ctx, `
			SELECT et.entry_id, t.id, t.name, t.color, t.created_at
			FROM entry_tags et
			JOIN tags t ON t.id = et.tag_id
			WHERE et.entry_id IN (`+placeholders+`)
			ORDER BY t.name COLLATE NOCASE
		`, args...)
		if err != nil {
			return nil, fmt.Errorf("failed to load entry tags: %w", err)
		}

		for rows.Next() {
			var entryID, createdAt string
			var t tag.Tag
			if err := rows.Scan(&entryID, &t.ID, &t.Name, &t.Color, &createdAt); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan entry tag: %w", err)
			}
			if t.CreatedAt, err = parseTime(createdAt); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to parse tag timestamp: %w", err)
			}
			out[entryID] = append(out[entryID], t)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, fmt.Errorf("error iterating entry tag rows: %w", err)
		}
		rows.Close()
	}

	return out, nil
}
