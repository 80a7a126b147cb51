package main

import (
	"fmt"
	"os"

	"github.com/rpggio/quill/internal/domain/mood"
	"github.com/spf13/cobra"
)

var (
	moodName  string
	moodEmoji string
	moodColor string
)

func init() {
	rootCmd.AddCommand(moodsCmd)
	moodsCmd.AddCommand(moodsListCmd)
	moodsCmd.AddCommand(moodsSeedCmd)
	moodsCmd.AddCommand(moodsAddCmd)

	moodsAddCmd.Flags().StringVar(&moodName, "name", "", "mood name")
	moodsAddCmd.Flags().StringVar(&moodEmoji, "emoji", "", "mood emoji")
	moodsAddCmd.Flags().StringVar(&moodColor, "color", "", "hex color")
	_ = moodsAddCmd.MarkFlagRequired("name")
	_ = moodsAddCmd.MarkFlagRequired("emoji")
	_ = moodsAddCmd.MarkFlagRequired("color")
}

var moodsCmd = &cobra.Command{
	Use:   "moods",
	Short: "Manage the mood catalog",
}

var moodsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List moods",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(os.Stderr)
		if err != nil {
			return err
		}
		defer s.close()

		moods, err := s.app.Moods.List(cmd.Context())
		if err != nil {
			return err
		}
		printMoods(cmd, moods)
		return nil
	},
}

var moodsSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the default moods if the catalog is empty",
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
		printMoods(cmd, moods)
		return nil
	},
}

var moodsAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a mood",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(os.Stderr)
		if err != nil {
			return err
		}
		defer s.close()

		m, err := s.app.Moods.Create(cmd.Context(), mood.CreateRequest{Name: moodName, Emoji: moodEmoji, Color: moodColor})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created mood %s %s (%s)\n", m.Emoji, m.Name, m.ID)
		return nil
	},
}

func printMoods(cmd *cobra.Command, moods []mood.Mood) {
	out := cmd.OutOrStdout()
	if len(moods) == 0 {
		fmt.Fprintln(out, "No moods yet. Run `quill moods seed`.")
		return
	}
	for _, m := range moods {
		fmt.Fprintf(out, "%s  %-10s %s  %s\n", m.Emoji, m.Name, m.Color, m.ID)
	}
}
