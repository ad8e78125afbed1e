// Package config resolves runtime settings from the environment. Flags still
// win; these are the defaults picked up before flag parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/tuncdemir/rutin/internal/constants"
)

// Config holds environment-derived settings.
type Config struct {
	// ConfigPath overrides the snapshot location (RUTIN_CONFIG).
	ConfigPath string `env:"RUTIN_CONFIG"`
	// Debug mirrors log output to stderr at debug level (RUTIN_DEBUG).
	Debug bool `env:"RUTIN_DEBUG"`
}

// Load reads the RUTIN_* environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

// ResolvePath expands a leading ~ in a config path to the user's home
// directory.
func ResolvePath(path string) (string, error) {
	if path == "" {
		path = constants.DefaultConfigPath
	}
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path, nil
}
