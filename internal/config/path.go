// Package config resolves the filesystem paths the tool depends on: the
// preset database, the download directory, and any operator-supplied
// paths from the config file.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// ExpandPath makes an operator-supplied path usable: a leading ~ becomes
// the home directory and $VAR references are expanded.
func ExpandPath(path string) string {
	switch {
	case path == "":
		return path
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return os.ExpandEnv(path)
}

// DataDir returns the application data directory, honoring XDG_DATA_HOME.
func DataDir() (string, error) {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "droh"), nil
}

// DefaultPresetDBPath is where the filter preset database lives unless
// configured otherwise.
func DefaultPresetDBPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "presets.db"), nil
}

// DefaultDownloadDir is where exports land unless configured otherwise.
func DefaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}
