// Package paths locates the calc configuration and data directories and the
// files calc keeps in them.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// appDirName is the directory created under the per-user config and data
// roots.
const appDirName = "plugcalc"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "CALC_CONFIG_DIR"
	EnvDataDir   = "CALC_DATA_DIR"
)

// shellHistoryFile holds the interactive shell's line history.
const shellHistoryFile = "shell_history"

// Platform lookups, replaced in tests.
var (
	goos          = runtime.GOOS
	userHomeDir   = os.UserHomeDir
	userConfigDir = os.UserConfigDir
)

// root is a per-user directory tree. On Linux it follows the XDG base
// directory variables; elsewhere both trees live under os.UserConfigDir.
type root struct {
	xdgVar   string
	fallback []string // path below $HOME when xdgVar is unset
}

var (
	configRoot = root{xdgVar: "XDG_CONFIG_HOME", fallback: []string{".config"}}
	dataRoot   = root{xdgVar: "XDG_DATA_HOME", fallback: []string{".local", "share"}}
)

func (r root) appDir() (string, error) {
	if goos != "linux" {
		dir, err := userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, appDirName), nil
	}
	if xdg := os.Getenv(r.xdgVar); xdg != "" {
		return filepath.Join(xdg, appDirName), nil
	}
	home, err := userHomeDir()
	if err != nil {
		return "", err
	}
	elems := append([]string{home}, r.fallback...)
	return filepath.Join(append(elems, appDirName)...), nil
}

// DefaultConfigDir returns $XDG_CONFIG_HOME/plugcalc on Linux (falling back
// to ~/.config/plugcalc) and <UserConfigDir>/plugcalc elsewhere.
func DefaultConfigDir() (string, error) {
	return configRoot.appDir()
}

// DefaultDataDir returns $XDG_DATA_HOME/plugcalc on Linux (falling back to
// ~/.local/share/plugcalc) and <UserConfigDir>/plugcalc elsewhere.
func DefaultDataDir() (string, error) {
	return dataRoot.appDir()
}

// ConfigDir picks the configuration directory: flag, then CALC_CONFIG_DIR,
// then DefaultConfigDir. Relative values are taken from the working
// directory.
func ConfigDir(flag string) (string, error) {
	if flag == "" {
		flag = os.Getenv(EnvConfigDir)
	}
	if flag != "" {
		return filepath.Abs(flag)
	}
	return DefaultConfigDir()
}

// DataDir picks the data directory: flag, then the data_dir value from
// config.yaml, then CALC_DATA_DIR, then DefaultDataDir. A relative
// configured value is taken from configDir, where config.yaml lives; the
// flag and the environment are taken from the working directory.
func DataDir(flag, configDir, configured string) (string, error) {
	switch {
	case flag != "":
		return filepath.Abs(flag)
	case configured != "":
		if !filepath.IsAbs(configured) {
			configured = filepath.Join(configDir, configured)
		}
		return filepath.Clean(configured), nil
	}
	if env := os.Getenv(EnvDataDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultDataDir()
}

// ShellHistoryPath creates dataDir when missing and returns the shell line
// history file inside it.
func ShellHistoryPath(dataDir string) (string, error) {
	if dataDir == "" {
		return "", fmt.Errorf("no data directory")
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return filepath.Join(dataDir, shellHistoryFile), nil
}
