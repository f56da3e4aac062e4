// Package config loads analyzer configuration from a .depscope.yml file.
package config

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/depscope/depscope/analyzer"
)

// FileName is the configuration file looked up in the project root.
const FileName = ".depscope.yml"

// Load reads the config at path. A missing file yields the defaults; a
// present file overrides only the fields it sets.
func Load(path string) (analyzer.Config, error) {
	cfg := analyzer.DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromDir loads FileName from dir, falling back to defaults when absent.
func LoadFromDir(dir string) (analyzer.Config, error) {
	return Load(filepath.Join(dir, FileName))
}

// Write saves cfg as YAML at path, refusing to overwrite an existing file.
// The returned error wraps fs.ErrExist in that case.
func Write(path string, cfg analyzer.Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s: %w", path, fs.ErrExist)
	}
	return Overwrite(path, cfg)
}

// Overwrite saves cfg as YAML at path, replacing any existing file.
func Overwrite(path string, cfg analyzer.Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}
