// Package export writes journal entries as CSV or JSON.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rpggio/quill/internal/domain/entry"
)

// Format is an export file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a format name. Empty means CSV.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	if f == FormatJSON {
		return "application/json"
	}
	return "text/csv"
}

// Write encodes entries to w in the given format.
func Write(w io.Writer, f Format, entries []entry.Entry) error {
	switch f {
	case FormatCSV:
		return WriteCSV(w, entries)
	case FormatJSON:
		return WriteJSON(w, entries)
	}
	return fmt.Errorf("unsupported export format %q", f)
}

// ToFile writes entries to path, replacing any existing file.
func ToFile(path string, f Format, entries []entry.Entry) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer file.Close()

	if err := Write(file, f, entries); err != nil {
		return err
	}
	return file.Close()
}

// WriteCSV writes one row per entry with tags joined by semicolons.
func WriteCSV(w io.Writer, entries []entry.Entry) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"ID", "Created", "Updated", "Title", "Mood", "Tags", "Content"}); err != nil {
		return err
	}

	for _, e := range entries {
		moodName := ""
		if e.Mood != nil {
			moodName = e.Mood.Name
		}
		row := []string{
			e.ID,
			e.CreatedAt.Format(time.RFC3339),
			e.UpdatedAt.Format(time.RFC3339),
			e.Title,
			moodName,
			strings.Join(e.TagNames(), ";"),
			e.Content,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteJSON writes the entries as an indented JSON array.
func WriteJSON(w io.Writer, entries []entry.Entry) error {
	if entries == nil {
		entries = []entry.Entry{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}
