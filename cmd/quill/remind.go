package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rpggio/quill/internal/remind"
	"github.com/spf13/cobra"
)

var remindDryRun bool

func init() {
	rootCmd.AddCommand(remindCmd)

	remindCmd.Flags().BoolVar(&remindDryRun, "dry-run", false, "print the reminder instead of notifying")
}

var remindCmd = &cobra.Command{
	Use:   "remind",
	Short: "Send a desktop reminder when nothing was written today",
	Long: `remind checks the journal and, if no entry exists for today, shows a
desktop notification. Run it from cron or a login hook.`,
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

		loc := s.app.Entries.Location()
		out := cmd.OutOrStdout()
		if remindDryRun {
			r, due := remind.Check(snap, time.Now(), loc)
			if !due {
				fmt.Fprintln(out, "Already written today.")
				return nil
			}
			fmt.Fprintf(out, "%s: %s\n", r.Title, r.Message)
			return nil
		}

		sent, err := remind.Run(remind.DesktopNotifier{}, snap, time.Now(), loc)
		if err != nil {
			return err
		}
		if sent {
			s.logger.Info("reminder sent")
		}
		return nil
	},
}
