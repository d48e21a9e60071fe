package config

import (
	"os"
	"path/filepath"
)

// UserConfigPath returns the path to the user-level config file, following
// the XDG Base Directory Specification:
// - Linux: ~/.config/shardr/config.yml
// - macOS: ~/Library/Application Support/shardr/config.yml
// - Windows: %APPDATA%\shardr\config.yml
func UserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "shardr", "config.yml"), nil
}

// LegacyUserConfigPath returns the path to the legacy user-level JSON config.
func LegacyUserConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "shardr", "config.json"), nil
}

// ProjectConfigPath returns the path to the project-level config file,
// relative to the current directory.
func ProjectConfigPath() string {
	return ".shardr.yml"
}

// LegacyProjectConfigPath returns the path to the legacy project-level JSON
// config file.
func LegacyProjectConfigPath() string {
	return ".shardr.json"
}
