package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rpggio/quill/internal/app"
	"github.com/rpggio/quill/internal/config"
	"github.com/spf13/cobra"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

var (
	configPath string
	dbPath     string
)

var rootCmd = &cobra.Command{
	Use:           "quill",
	Short:         "A personal journal with moods, tags and writing streaks",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default $QUILL_CONFIG_PATH)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database path (overrides config)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("QUILL_CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("config error: %w", err)
	}
	if dbPath != "" {
		cfg.DB.Path = dbPath
	}
	return cfg, nil
}

// session is an opened journal plus the logger and config it was built with.
type session struct {
	cfg    config.Config
	app    *app.App
	logger *slog.Logger
	close  func()
}

// openSession loads config, sets up logging to logOut and opens the journal.
func openSession(logOut io.Writer) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := newLogger(cfg.Log, logOut)
	if err != nil {
		return nil, err
	}

	a, err := app.Open(cfg.DB.Path, cfg.Stats, logger)
	if err != nil {
		closeLog()
		return nil, fmt.Errorf("open journal: %w", err)
	}

	return &session{
		cfg:    cfg,
		app:    a,
		logger: logger,
		close: func() {
			_ = a.Close()
			closeLog()
		},
	}, nil
}
