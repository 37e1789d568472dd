package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "ap", "config.toml")
}

// Discover finds the config file using the standard search order:
//  1. AP_CONFIG environment variable
//  2. $XDG_CONFIG_HOME/ap/config.toml
//  3. /etc/ap/config.toml
//
// The config is optional: an empty path with a nil error means no file
// exists anywhere and the defaults apply.
func Discover() (string, error) {
	if envPath := os.Getenv("AP_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("AP_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		DefaultPath(),
		"/etc/ap/config.toml",
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", nil
}
