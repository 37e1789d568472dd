// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Command  string         `toml:"command"`
	LogLevel string         `toml:"log_level"`
	Defaults DefaultsConfig `toml:"defaults"`
}

// DefaultsConfig holds per-run defaults that flags can still override.
type DefaultsConfig struct {
	DeepScan bool `toml:"deep_scan"`
}

// Load reads and parses the configuration file. The file is optional: a
// missing file (or an empty path) yields the defaults.
func Load(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// Optional file; fall through to defaults.
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			// Substitute environment variables
			content := substituteEnvVars(string(data))
			if _, err := toml.Decode(content, &cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}

	// Apply defaults
	if cfg.Command == "" {
		cfg.Command = "AtomicParsley"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return &cfg, nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
