package sqlite

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/rpggio/quill/internal/domain/entry"
)

// SearchRepository implements entry.SearchRepository for SQLite
type SearchRepository struct {
	db *DB
}

// NewSearchRepository creates a new SearchRepository
func NewSearchRepository(db *DB) *SearchRepository {
	return &SearchRepository{db: db}
}

// Search performs a ranked full-text search over entry titles and content.
// Each word of the query must match, as a prefix.
func (r *SearchRepository) Search(ctx context.Context, query string, opts entry.SearchOptions) ([]entry.SearchResult, error) {
	match := ftsQuery(query)
	if match == "" {
		return []entry.SearchResult{}, nil
	}

	sqlQuery := `
		SELECT
			e.id,
			bm25(entries_fts) AS rank,
			snippet(entries_fts, 1, '**', '**', '…', 12) AS snippet
		FROM entries_fts
		JOIN entries e ON e.seq = entries_fts.rowid
		WHERE entries_fts MATCH ?
		ORDER BY rank
	`
	args := []any{match}
	if opts.Limit > 0 {
		sqlQuery += " LIMIT ?"
		args = append(args, opts.Limit)
	}
	if opts.Offset > 0 {
		if opts.Limit <= 0 {
			sqlQuery += " LIMIT -1"
		}
		sqlQuery += " OFFSET ?"
		args = append(args, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search entries: %w", err)
	}

	var results []entry.SearchResult
	for rows.Next() {
		var result entry.SearchResult
		if err := rows.Scan(&result.Entry.ID, &result.Rank, &result.Snippet); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan search result: %w", err)
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("error iterating search results: %w", err)
	}
	rows.Close()

	if len(results) == 0 {
		return []entry.SearchResult{}, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(results)), ",")
	idArgs := make([]any, len(results))
	for i, res := range results {
		idArgs[i] = res.Entry.ID
	}
	entries, err := selectEntries(ctx, r.db, "WHERE e.id IN ("+placeholders+")", idArgs...)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]entry.Entry, len(entries))
	for _, e := range entries {
		byID[e.ID] = e
	}
	for i := range results {
		if e, ok := byID[results[i].Entry.ID]; ok {
			results[i].Entry = e
		}
	}

	return results, nil
}

// ftsQuery turns free text into an FTS5 expression of quoted prefix terms,
// so user input never reaches the query syntax.
func ftsQuery(query string) string {
	fields := strings.Fields(query)
	terms := make([]string, 0, len(fields))
	for _, f := range fields {
		if !strings.ContainsFunc(f, isWordRune) {
			continue
		}
		f = strings.ReplaceAll(f, `"`, `""`)
		terms = append(terms, `"`+f+`"*`)
	}
	return strings.Join(terms, " ")
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
