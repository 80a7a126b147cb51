package entry

import (
	"fmt"
	"strings"

	"github.com/rpggio/quill/internal/domain/tag"
)

// TagInput names a tag to attach to an entry. Color is optional.
type TagInput struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// CreateInput is the untrusted payload for creating or replacing an entry.
type CreateInput struct {
	Title   string     `json:"title"`
	Content string     `json:"content"`
	MoodID  *string    `json:"mood_id,omitempty"`
	Tags    []TagInput `json:"tags,omitempty"`
}

// Command is a validated CreateInput.
type Command struct {
	Title   string
	Content string
	MoodID  *string
	Tags    []TagInput
}

// ValidateInput checks a payload and normalizes it into a Command.
func ValidateInput(in CreateInput) (Command, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return Command{}, fmt.Errorf("%w: %w", ErrInvalidInput, ErrMissingTitle)
	}
	if strings.TrimSpace(in.Content) == "" {
		return Command{}, fmt.Errorf("%w: %w", ErrInvalidInput, ErrMissingContent)
	}

	cmd := Command{
		Title:   title,
		Content: in.Content,
		Tags:    normalizeTags(in.Tags),
	}
	if in.MoodID != nil {
		if id := strings.TrimSpace(*in.MoodID); id != "" {
			cmd.MoodID = &id
		}
	}
	return cmd, nil
}

func normalizeTags(in []TagInput) []TagInput {
	out := make([]TagInput, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, t := range in {
		name := strings.TrimSpace(t.Name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		color := strings.TrimSpace(t.Color)
		if color == "" {
			color = tag.ColorFor(name)
		}
		out = append(out, TagInput{Name: name, Color: color})
	}
	return out
}
