// Package config loads the daemon's TOML configuration. The file is
// optional: a missing or malformed file degrades to empty credentials and
// the enrichment pipeline simply produces nothing, it never crashes.
package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

// envConfigPath overrides the default config file location when set.
const envConfigPath = "MUSE_CONFIG"

// API holds the credentials for the external enrichment services.
type API struct {
	GeniusToken  string `toml:"genius_token"`
	AnthropicKey string `toml:"anthropic_key"`
}

// fileConfig mirrors the on-disk TOML layout.
type fileConfig struct {
	API API `toml:"api"`
}

// AppConfig holds application configuration
type AppConfig struct {
	api API
}

// NewAppConfig loads the configuration file and returns the application
// configuration. Load problems are logged and degrade to empty values.
func NewAppConfig(logger *zap.Logger) *AppConfig {
	path := configPath()

	var parsed fileConfig
	content, err := os.ReadFile(path)
	switch {
	case err != nil:
		logger.Warn("Config file not readable, running without credentials",
			zap.String("path", path),
			zap.Error(err))
	default:
		if err := toml.Unmarshal(content, &parsed); err != nil {
			logger.Warn("Config file is not valid TOML, running without credentials",
				zap.String("path", path),
				zap.Error(err))
			parsed = fileConfig{}
		}
	}

	cfg := &AppConfig{api: parsed.API}
	logger.Info("Configuration loaded",
		zap.String("path", path),
		zap.Bool("hasKeys", cfg.HasKeys()))
	return cfg
}

// GeniusToken returns the Genius API bearer token, empty when unset
func (c *AppConfig) GeniusToken() string {
	return c.api.GeniusToken
}

// AnthropicKey returns the Anthropic API key, empty when unset
func (c *AppConfig) AnthropicKey() string {
	return c.api.AnthropicKey
}

// HasKeys reports whether both credentials are present
func (c *AppConfig) HasKeys() bool {
	return c.api.GeniusToken != "" && c.api.AnthropicKey != ""
}

// configPath resolves the config file location: $MUSE_CONFIG when set,
// otherwise ~/.config/muse/config.toml.
func configPath() string {
	if path := os.Getenv(envConfigPath); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return filepath.Join(home, ".config", "muse", "config.toml")
}
