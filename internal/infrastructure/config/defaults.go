package config

import (
	"os"
	"path/filepath"
)

// SetDefaults fills in any missing configuration values.
func SetDefaults(cfg *Config) {
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "./data"
	}
	if cfg.Data.Locale == "" {
		cfg.Data.Locale = "en_US"
	}
	if cfg.Data.DefaultLocale == "" {
		cfg.Data.DefaultLocale = "en_US"
	}
	if cfg.Editor.HistoryLimit == 0 {
		cfg.Editor.HistoryLimit = 1024
	}
	if cfg.Workspace.DatabasePath == "" {
		cfg.Workspace.DatabasePath = defaultWorkspacePath()
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
}

func defaultWorkspacePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "workspace.db"
	}
	return filepath.Join(home, ".station-planner", "workspace.db")
}
