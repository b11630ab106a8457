package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings are the player's persisted preferences.
type Settings struct {
	Music  bool `yaml:"music"`
	Sounds bool `yaml:"sounds"`
}

// DefaultSettings has music and sounds on.
func DefaultSettings() Settings {
	return Settings{Music: true, Sounds: true}
}

// SettingsStore reads and writes settings.yaml.
type SettingsStore struct {
	path string
}

// NewSettingsStore creates a store for the given file.
func NewSettingsStore(path string) *SettingsStore {
	return &SettingsStore{path: path}
}

// Path returns the backing file.
func (s *SettingsStore) Path() string { return s.path }

// Load reads the settings. A missing file is created with the defaults.
func (s *SettingsStore) Load() (Settings, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		def := DefaultSettings()
		if err := s.Save(def); err != nil {
			return def, err
		}
		return def, nil
	}
	if err != nil {
		return DefaultSettings(), fmt.Errorf("failed to read settings: %w", err)
	}

	set := DefaultSettings()
	if err := yaml.Unmarshal(data, &set); err != nil {
		return DefaultSettings(), fmt.Errorf("failed to parse settings: %w", err)
	}
	return set, nil
}

// Save writes the settings, creating the directory if needed.
func (s *SettingsStore) Save(set Settings) error {
	data, err := yaml.Marshal(set)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create settings dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
