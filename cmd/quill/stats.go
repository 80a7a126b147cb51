package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/rpggio/quill/internal/termview"
	"github.com/spf13/cobra"
)

var (
	statsJSON  bool
	statsWidth int
)

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print the raw snapshot as JSON")
	statsCmd.Flags().IntVar(&statsWidth, "width", 80, "panel width in columns")
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show entry counts, moods, top tags and streaks",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(os.Stderr)
		if err != nil {
			return err
		}
		defer s.close()

		snap, err := s.app.Stats.Snapshot(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if statsJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			return enc.Encode(snap)
		}
		fmt.Fprintln(out, termview.Stats(snap, statsWidth))
		return nil
	},
}
