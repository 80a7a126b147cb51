package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/spf13/cobra"
)

var (
	listLimit int
	listQuery string
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().IntVar(&listLimit, "limit", 10, "number of entries to show")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "only entries whose text, tags or mood contain this")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(os.Stderr)
		if err != nil {
			return err
		}
		defer s.close()

		var entries []entry.Entry
		if listQuery == "" {
			entries, err = s.app.Entries.Recent(cmd.Context(), listLimit)
		} else {
			entries, err = s.app.Entries.List(cmd.Context(), entry.Criteria{Query: listQuery})
			if err == nil && listLimit > 0 && len(entries) > listLimit {
				entries = entries[:listLimit]
			}
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(entries) == 0 {
			fmt.Fprintln(out, "No entries.")
			return nil
		}
		loc := s.app.Entries.Location()
		for _, e := range entries {
			line := fmt.Sprintf("%s  %s  %s", e.CreatedAt.In(loc).Format(time.DateOnly), e.ID, e.Title)
			if e.Mood != nil {
				line += "  " + e.Mood.Emoji
			}
			if names := e.TagNames(); len(names) > 0 {
				line += "  #" + strings.Join(names, " #")
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}
