// Package paths locates the islab config directory and the data directory
// holding local storage.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// AppName names the islab subdirectory in every platform location.
const AppName = "islab"

// Directory override variables.
const (
	EnvConfigDir = "ISLAB_CONFIG_DIR"
	EnvDataDir   = "ISLAB_DATA_DIR"
)

// Swapped in tests.
var (
	homeDir       = os.UserHomeDir
	userConfigDir = os.UserConfigDir
)

// DefaultConfigDir is $XDG_CONFIG_HOME/islab or ~/.config/islab on Linux
// and os.UserConfigDir()/islab elsewhere.
func DefaultConfigDir() (string, error) {
	return userDir("XDG_CONFIG_HOME", ".config")
}

// DefaultDataDir is $XDG_DATA_HOME/islab or ~/.local/share/islab on Linux.
// Other platforms keep data next to the config.
func DefaultDataDir() (string, error) {
	return userDir("XDG_DATA_HOME", ".local", "share")
}

func userDir(xdgVar string, homeRel ...string) (string, error) {
	if runtime.GOOS != "linux" {
		base, err := userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(base, AppName), nil
	}
	if xdg := os.Getenv(xdgVar); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := homeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(append(append([]string{home}, homeRel...), AppName)...), nil
}

// ResolveConfigDir picks --config-dir, then ISLAB_CONFIG_DIR, then
// DefaultConfigDir. Explicit values are made absolute.
func ResolveConfigDir(flag string) (string, error) {
	return firstAbs(DefaultConfigDir, flag, os.Getenv(EnvConfigDir))
}

// ResolveDataDir picks --data-dir, then data_dir from config.yaml, then
// ISLAB_DATA_DIR, then DefaultDataDir. The session token is stored there,
// so the fallback is per user and never the working directory.
func ResolveDataDir(flag, configValue string) (string, error) {
	return firstAbs(DefaultDataDir, flag, configValue, os.Getenv(EnvDataDir))
}

func firstAbs(fallback func() (string, error), candidates ...string) (string, error) {
	for _, c := range candidates {
		if c != "" {
			return filepath.Abs(c)
		}
	}
	return fallback()
}
