// Package paths resolves the directories docrender reads configuration
// from and writes its log file to. It follows the XDG base directory
// conventions, with environment overrides for tests and packaging.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for docrender
	EnvConfigDir = "DOCRENDER_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for docrender
	EnvStateDir = "DOCRENDER_STATE_DIR"
)

const (
	// AppDirName is the directory name used below each XDG base directory
	AppDirName = "docrender"

	// ConfigFileName is the user configuration file looked up in ConfigDir
	ConfigFileName = "config.toml"

	// LogFileName is the log file written in StateDir
	LogFileName = "docrender.log"
)

// ConfigDir returns the directory holding the user configuration.
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns the directory holding the log file.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// ConfigFile returns the full path of the user configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// UserConfigCandidates lists the user configuration files in lookup order.
// The first one that exists wins.
func UserConfigCandidates() []string {
	dir := ConfigDir()
	return []string{
		filepath.Join(dir, ConfigFileName),
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "config.yml"),
	}
}

// LogFile returns the full path of the log file.
func LogFile() string {
	return filepath.Join(StateDir(), LogFileName)
}

// expandHome expands a leading ~ to the user's home directory
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
