// Package config provides hierarchical configuration management for shardr
// using koanf. Configuration is loaded with priority: environment variables >
// project config (.shardr.yml) > user config (~/.config/shardr/config.yml) >
// defaults. Legacy JSON config files are still accepted at the same locations.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/ariel-frischer/shardr/internal/progress"
)

// Configuration represents the shardr CLI tool configuration.
// Flags override every loaded source; the loaded value is only the default
// shown in --help and used when the flag is not given.
type Configuration struct {
	// Jobs is the number of parallel shard invocations.
	// Default: int(1.5 x CPU count). Can be set via SHARDR_JOBS.
	Jobs int `koanf:"jobs"`

	// Verbosity controls re-emission of captured shard output:
	// 0 only the final banner, 1 also full logs of failed shards,
	// 2 all shard logs. Default: 1. Can be set via SHARDR_VERBOSITY.
	Verbosity int `koanf:"verbosity"`

	// Color controls colored output and the --gtest_color=yes child flag:
	// auto | always | never. Default: auto. Can be set via SHARDR_COLOR.
	Color string `koanf:"color"`
}

// LoadOptions configures how configuration is loaded.
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .shardr.yml).
	ProjectConfigPath string
}

// Load loads configuration from user, project, and environment sources.
// Priority: Environment variables > Project config > User config > Defaults.
func Load() (*Configuration, error) {
	return LoadWithOptions(LoadOptions{})
}

// LoadWithOptions loads configuration with custom options.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		k.Set(key, value)
	}

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	projectPath := opts.ProjectConfigPath
	if projectPath == "" {
		projectPath = ProjectConfigPath()
		if !fileExists(projectPath) {
			projectPath = LegacyProjectConfigPath()
		}
	}
	if err := loadFileConfig(k, projectPath, "project"); err != nil {
		return nil, err
	}

	if err := k.Load(env.Provider(envPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment config: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// loadUserConfig loads the user-level config file if present.
// YAML (~/.config/shardr/config.yml) is preferred over legacy JSON
// (~/.config/shardr/config.json); when both exist the YAML wins.
func loadUserConfig(k *koanf.Koanf) error {
	yamlPath, err := UserConfigPath()
	if err != nil {
		// No resolvable home directory; run on defaults.
		return nil
	}
	if fileExists(yamlPath) {
		return loadFileConfig(k, yamlPath, "user")
	}
	legacyPath, err := LegacyUserConfigPath()
	if err != nil {
		return nil
	}
	return loadFileConfig(k, legacyPath, "user")
}

// loadFileConfig loads a single config file, choosing the parser by extension.
// Missing files are not an error.
func loadFileConfig(k *koanf.Koanf, path, configType string) error {
	if !fileExists(path) {
		return nil
	}
	parser := koanf.Parser(yaml.Parser())
	if strings.HasSuffix(path, ".json") {
		parser = json.Parser()
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	return nil
}

const envPrefix = "SHARDR_"

// envTransform maps SHARDR_JOBS -> jobs, SHARDR_COLOR -> color, etc.
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, envPrefix))
}

// Validate checks loaded configuration values.
func Validate(cfg *Configuration) error {
	if cfg.Jobs < 1 {
		return fmt.Errorf("invalid jobs value %d: must be at least 1", cfg.Jobs)
	}
	if cfg.Verbosity < 0 || cfg.Verbosity > 2 {
		return fmt.Errorf("invalid verbosity value %d: must be 0, 1, or 2", cfg.Verbosity)
	}
	if !progress.ValidColorMode(cfg.Color) {
		return fmt.Errorf("invalid color value %q: must be auto, always, or never", cfg.Color)
	}
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
