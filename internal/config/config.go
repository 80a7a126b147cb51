package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	Stats  StatsConfig  `yaml:"stats"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	Path  string `yaml:"path"`
}

// DefaultStreakGraceDays lets a streak that ended yesterday still count as current.
const DefaultStreakGraceDays = 1

// StatsConfig tunes the statistics engine.
type StatsConfig struct {
	// Timezone is an IANA name used for day and month bucketing. Empty means local time.
	Timezone string `yaml:"timezone"`
	// StreakGraceDays is nil when unset; zero is an explicit setting.
	StreakGraceDays *int `yaml:"streak_grace_days"`
	TopTags         int  `yaml:"top_tags"`
}

// GraceDays returns the configured grace window, or the default when unset.
func (c StatsConfig) GraceDays() int {
	if c.StreakGraceDays == nil {
		return DefaultStreakGraceDays
	}
	return *c.StreakGraceDays
}

// Location resolves the configured reporting time zone.
func (c StatsConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid stats timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Load reads configuration from the YAML file named by QUILL_CONFIG_PATH, if
// any, and environment variables.
func Load() (Config, error) {
	return LoadFrom(os.Getenv("QUILL_CONFIG_PATH"))
}

// LoadFrom is Load with an explicit config file path. Empty path skips the file.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("QUILL_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("QUILL_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid QUILL_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("QUILL_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("QUILL_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if logPath := os.Getenv("QUILL_LOG_PATH"); logPath != "" {
		cfg.Log.Path = logPath
	}
	if tz := os.Getenv("QUILL_TIMEZONE"); tz != "" {
		cfg.Stats.Timezone = tz
	}
	if graceStr := os.Getenv("QUILL_STREAK_GRACE_DAYS"); graceStr != "" {
		grace, err := strconv.Atoi(graceStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid QUILL_STREAK_GRACE_DAYS: %w", err)
		}
		cfg.Stats.StreakGraceDays = &grace
	}
	if topStr := os.Getenv("QUILL_TOP_TAGS"); topStr != "" {
		top, err := strconv.Atoi(topStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid QUILL_TOP_TAGS: %w", err)
		}
		cfg.Stats.TopTags = top
	}

	if _, err := cfg.Stats.Location(); err != nil {
		return Config{}, err
	}
	if cfg.Stats.GraceDays() < 0 {
		return Config{}, fmt.Errorf("streak grace days must not be negative")
	}

	return cfg, nil
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "quill.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Stats: StatsConfig{
			TopTags: 10,
		},
	}
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
