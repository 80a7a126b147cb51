package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/rpggio/quill/internal/domain/mood"
	"github.com/spf13/cobra"
)

var (
	writeTitle   string
	writeContent string
	writeMood    string
	writeTags    string
)

func init() {
	rootCmd.AddCommand(writeCmd)

	writeCmd.Flags().StringVar(&writeTitle, "title", "", "entry title")
	writeCmd.Flags().StringVar(&writeContent, "content", "", "entry content in markdown")
	writeCmd.Flags().StringVar(&writeMood, "mood", "", "mood name or id")
	writeCmd.Flags().StringVar(&writeTags, "tags", "", "comma-separated tags")
}

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Write a new entry (interactive unless --title and --content are given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(os.Stderr)
		if err != nil {
			return err
		}
		defer s.close()

		moods, err := s.app.Moods.EnsureDefaults(cmd.Context())
		if err != nil {
			return err
		}

		title, content, moodRef, tags := writeTitle, writeContent, writeMood, writeTags
		if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
			if err := entryForm(moods, &title, &content, &moodRef, &tags).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return err
			}
		}

		in := entry.CreateInput{Title: title, Content: content, Tags: splitTags(tags)}
		if moodRef != "" {
			id, ok := resolveMood(moods, moodRef)
			if !ok {
				return fmt.Errorf("unknown mood %q", moodRef)
			}
			in.MoodID = &id
		}

		e, err := s.app.Entries.Create(cmd.Context(), in)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Saved %q (%s)\n", e.Title, e.ID)
		return nil
	},
}

func entryForm(moods []mood.Mood, title, content, moodRef, tags *string) *huh.Form {
	options := []huh.Option[string]{huh.NewOption("No mood", "")}
	for _, m := range moods {
		options = append(options, huh.NewOption(m.Emoji+" "+m.Name, m.ID))
	}

	required := func(field string) func(string) error {
		return func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("%s is required", field)
			}
			return nil
		}
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Title").Value(title).Validate(required("title")),
			huh.NewText().Title("Content").Description("Markdown is supported").Value(content).Validate(required("content")),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Mood").Options(options...).Value(moodRef),
			huh.NewInput().Title("Tags").Description("Comma separated").Value(tags),
		),
	)
}

// splitTags parses a comma-separated tag list. Blank names are dropped.
func splitTags(raw string) []entry.TagInput {
	var tags []entry.TagInput
	for _, part := range strings.Split(raw, ",") {
		if name := strings.TrimSpace(part); name != "" {
			tags = append(tags, entry.TagInput{Name: name})
		}
	}
	return tags
}

// resolveMood matches ref against mood ids, then names case-insensitively.
func resolveMood(moods []mood.Mood, ref string) (string, bool) {
	ref = strings.TrimSpace(ref)
	for _, m := range moods {
		if m.ID == ref {
			return m.ID, true
		}
	}
	for _, m := range moods {
		if strings.EqualFold(m.Name, ref) {
			return m.ID, true
		}
	}
	return "", false
}
