// Package config loads engine configuration from a YAML file and BLOCKDECK_*
// environment variables, with sensible defaults for everything.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/zjrosen/blockdeck/internal/history"
)

// HistoryConfig controls the block history buffer and its snapshot location.
type HistoryConfig struct {
	// MaxSize is the maximum number of blocks kept before FIFO eviction.
	MaxSize int `yaml:"max_size" mapstructure:"max_size"`

	// Path overrides the history snapshot location.
	Path string `yaml:"path" mapstructure:"path"`
}

// ShareConfig controls share-link generation.
type ShareConfig struct {
	// BaseURL is the prefix for generated share links.
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// LogConfig controls the application log file.
type LogConfig struct {
	Path  string `yaml:"path" mapstructure:"path"`
	Level string `yaml:"level" mapstructure:"level"`
}

// Config is the full engine configuration.
type Config struct {
	History HistoryConfig `yaml:"history" mapstructure:"history"`
	Share   ShareConfig   `yaml:"share" mapstructure:"share"`
	Log     LogConfig     `yaml:"log" mapstructure:"log"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		History: HistoryConfig{MaxSize: history.DefaultMaxSize},
		Share:   ShareConfig{BaseURL: "https://blockdeck.dev"},
		Log:     LogConfig{Level: "debug"},
	}
}

// Load reads configuration from the given file path. An empty path means
// defaults plus environment overrides only; a missing file at an explicit
// path is an error.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("BLOCKDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	def := Default()
	v.SetDefault("history.max_size", def.History.MaxSize)
	v.SetDefault("share.base_url", def.Share.BaseURL)
	v.SetDefault("log.level", def.Log.Level)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.History.MaxSize <= 0 {
		cfg.History.MaxSize = history.DefaultMaxSize
	}
	if cfg.History.MaxSize > history.MaxSize {
		cfg.History.MaxSize = history.MaxSize
	}

	return cfg, nil
}

// HistoryPath returns the history snapshot path based on the config location.
// If the config is project-local (.blockdeck/config.yaml), history is stored
// alongside it. Otherwise, ~/.config/blockdeck/history.json is used.
func HistoryPath(configPath string) string {
	home, _ := os.UserHomeDir()
	fallback := filepath.Join(home, ".config", "blockdeck", "history.json")
	if configPath == "" {
		return fallback
	}

	clean := filepath.Clean(configPath)
	suffix := filepath.Join(".blockdeck", "config.yaml")
	if strings.HasSuffix(clean, suffix) {
		return filepath.Join(filepath.Dir(clean), "history.json")
	}

	return fallback
}

// LogPath returns the configured log path, defaulting to a log file next to
// the history snapshot.
func (c Config) LogPath(historyPath string) string {
	if c.Log.Path != "" {
		return c.Log.Path
	}
	return filepath.Join(filepath.Dir(historyPath), "blockdeck.log")
}
