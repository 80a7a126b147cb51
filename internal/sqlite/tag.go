package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/rpggio/quill/internal/domain/tag"
)

// TagRepository implements tag.Repository for SQLite
type TagRepository struct {
	db *DB
}

// NewTagRepository creates a new TagRepository
func NewTagRepository(db *DB) *TagRepository {
	return &TagRepository{db: db}
}

// ListWithUsage returns every tag with the number of entries using it, by name
func (r *TagRepository) ListWithUsage(ctx context.Context) ([]tag.Usage, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.name, t.color, t.created_at, COUNT(et.entry_id)
		FROM tags t
		LEFT JOIN entry_tags et ON et.tag_id = t.id
		GROUP BY t.id, t.name, t.color, t.created_at
		ORDER BY t.name COLLATE NOCASE
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}
	defer rows.Close()

	tags := []tag.Usage{}
	for rows.Next() {
		var u tag.Usage
		var createdAt string
		if err := rows.Scan(&u.ID, &u.Name, &u.Color, &createdAt, &u.EntryCount); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		if u.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse tag timestamp: %w", err)
		}
		tags = append(tags, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tag rows: %w", err)
	}

	return tags, nil
}

// connectOrCreateTag returns the id of the tag with the given name, creating
// it with the given color when it doesn't exist yet.
func connectOrCreateTag(ctx context.Context, tx *sql.Tx, in entry.TagInput) (string, error) {
	var id string
	err := tx.QueryRowContext(ctx, `SELECT id FROM tags WHERE name = ?`, in.Name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("failed to look up tag %q: %w", in.Name, err)
	}

	id = uuid.NewString()
	_, err = tx.ExecContext(ctx,
		`INSERT INTO tags (id, name, color, created_at) VALUES (?, ?, ?, ?)`,
		id, in.Name, in.Color, formatTime(time.Now()),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create tag %q: %w", in.Name, err)
	}
	return id, nil
}
