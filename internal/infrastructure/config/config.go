package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the main configuration struct combining all sub-configs.
type Config struct {
	Data      DataConfig      `mapstructure:"data"`
	Editor    EditorConfig    `mapstructure:"editor"`
	Workspace WorkspaceConfig `mapstructure:"workspace"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// DataConfig locates the game data catalogs and the display locale.
type DataConfig struct {
	Dir           string `mapstructure:"dir" validate:"required"`
	Locale        string `mapstructure:"locale" validate:"required"`
	DefaultLocale string `mapstructure:"default_locale" validate:"required"`
}

// EditorConfig tunes the document editor.
type EditorConfig struct {
	HistoryLimit int `mapstructure:"history_limit" validate:"min=1"`
}

// WorkspaceConfig locates the workspace store (recent documents).
type WorkspaceConfig struct {
	DatabasePath string `mapstructure:"database_path" validate:"required"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// LoadConfig loads configuration with the usual priority: environment
// variables over config file over defaults. A missing config file is
// fine; a malformed or invalid one is not.
func LoadConfig(configPath string) (*Config, error) {
	// Load .env if present (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
	}

	v.SetEnvPrefix("SP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	SetDefaults(&cfg)

	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// LoadConfigOrDefault loads configuration or returns the defaults on
// error.
func LoadConfigOrDefault(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		cfg = &Config{}
		SetDefaults(cfg)
	}
	return cfg
}
