package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rpggio/quill/internal/domain/mood"
	"github.com/rpggio/quill/internal/repository"
)

// MoodRepository implements mood.Repository for SQLite
type MoodRepository struct {
	db *DB
}

// NewMoodRepository creates a new MoodRepository
func NewMoodRepository(db *DB) *MoodRepository {
	return &MoodRepository{db: db}
}

// Create inserts a new mood
func (r *MoodRepository) Create(ctx context.Context, m *mood.Mood) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO moods (id, name, emoji, color, created_at) VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Emoji, m.Color, formatTime(m.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrConflict
		}
		return fmt.Errorf("failed to create mood: %w", err)
	}
	return nil
}

// Get retrieves a mood by ID
func (r *MoodRepository) Get(ctx context.Context, id string) (*mood.Mood, error) {
	var m mood.Mood
	var createdAt string
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, emoji, color, created_at FROM moods WHERE id = ?`, id,
	).Scan(&m.ID, &m.Name, &m.Emoji, &m.Color, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get mood: %w", err)
	}
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse mood timestamp: %w", err)
	}
	return &m, nil
}

// List returns all moods in creation order
func (r *MoodRepository) List(ctx context.Context) ([]mood.Mood, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, emoji, color, created_at FROM moods ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list moods: %w", err)
	}
	defer rows.Close()

	moods := []mood.Mood{}
	for rows.Next() {
		var m mood.Mood
		var createdAt string
		if err := rows.Scan(&m.ID, &m.Name, &m.Emoji, &m.Color, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan mood: %w", err)
		}
		if m.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse mood timestamp: %w", err)
		}
		moods = append(moods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating mood rows: %w", err)
	}

	return moods, nil
}
