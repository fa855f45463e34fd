package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds the client-wide settings.
type Config struct {
	// DBPath is where the project store lives.
	DBPath string
	// CommissionPct is the platform cut applied to newly quoted projects.
	CommissionPct float64
	// WatchStore enables the filesystem watcher that refreshes a
	// dashboard when another process writes the store.
	WatchStore bool
}

// DefaultConfig returns a Config with sensible defaults. The DB path
// is resolved lazily by Load since it needs the home directory.
func DefaultConfig() Config {
	return Config{
		CommissionPct: 20,
		WatchStore:    true,
	}
}

// Load reads configuration from environment variables, falling back
// to defaults for any unset values.
func Load() (Config, error) {
	cfg := DefaultConfig()

	cfg.DBPath = os.Getenv("TASKDESK_DB")
	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return cfg, err
		}
		cfg.DBPath = filepath.Join(home, ".taskdesk", "taskdesk.db")
	}

	if v := os.Getenv("TASKDESK_COMMISSION_PCT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f < 100 {
			cfg.CommissionPct = f
		}
	}
	if v := os.Getenv("TASKDESK_WATCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.WatchStore = b
		}
	}

	return cfg, nil
}
