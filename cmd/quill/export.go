package main

import (
	"fmt"
	"os"

	"github.com/rpggio/quill/internal/domain/entry"
	"github.com/rpggio/quill/internal/export"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "export format (csv, json)")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "write to file instead of stdout")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export every entry as CSV or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}

		s, err := openSession(os.Stderr)
		if err != nil {
			return err
		}
		defer s.close()

		entries, err := s.app.Entries.List(cmd.Context(), entry.Criteria{})
		if err != nil {
			return err
		}

		if exportOut == "" {
			return export.Write(cmd.OutOrStdout(), format, entries)
		}
		if err := export.ToFile(exportOut, format, entries); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d entries to %s\n", len(entries), exportOut)
		return nil
	},
}
