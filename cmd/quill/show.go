package main

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/rpggio/quill/internal/markdown"
	"github.com/rpggio/quill/internal/termview"
	"github.com/spf13/cobra"
)

var (
	showHTML bool
	showCopy bool
)

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showHTML, "html", false, "print the content rendered as HTML")
	showCmd.Flags().BoolVar(&showCopy, "copy", false, "copy the content (or HTML with --html) to the clipboard")
}

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print one entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(os.Stderr)
		if err != nil {
			return err
		}
		defer s.close()

		e, err := s.app.Entries.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		text := e.Content
		out := cmd.OutOrStdout()
		if showHTML {
			text = markdown.Render(e.Content)
			fmt.Fprintln(out, text)
		} else {
			fmt.Fprintln(out, termview.Entry(*e, s.app.Entries.Location(), 80))
		}

		if showCopy {
			if err := clipboard.WriteAll(text); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
			} else {
				fmt.Fprintln(cmd.ErrOrStderr(), "Copied to clipboard!")
			}
		}
		return nil
	},
}
