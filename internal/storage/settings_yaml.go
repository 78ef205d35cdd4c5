package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"pomodoro/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	ChimeEnabled *bool    `yaml:"chime_enabled"`
	ChimeVolume  *float64 `yaml:"chime_volume"`
	Language     string   `yaml:"language"`
}

// SettingsStore reads and writes user preferences as YAML.
type SettingsStore struct {
	fs   afero.Fs
	path string
}

// NewSettingsStore keeps settings under dir on the given filesystem.
func NewSettingsStore(fs afero.Fs, dir string) *SettingsStore {
	return &SettingsStore{fs: fs, path: filepath.Join(dir, settingsFileName)}
}

// NewUserSettingsStore keeps settings in the OS config directory for appName.
func NewUserSettingsStore(appName string) (*SettingsStore, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolve user config dir: %w", err)
	}
	return NewSettingsStore(afero.NewOsFs(), filepath.Join(configDir, appName)), nil
}

// Path returns the settings file location.
func (store *SettingsStore) Path() string {
	return store.path
}

// Load reads user preferences.
// If the file does not exist, default settings are returned.
func (store *SettingsStore) Load() (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := afero.ReadFile(store.fs, store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings.Normalize(), nil
}

// Save writes user preferences.
func (store *SettingsStore) Save(settings preferences.Settings) error {
	if err := store.fs.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	settings = settings.Normalize()
	fileData := yamlSettings{
		ChimeEnabled: &settings.ChimeEnabled,
		ChimeVolume:  &settings.ChimeVolume,
		Language:     settings.Language,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := afero.WriteFile(store.fs, store.path, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.ChimeEnabled != nil {
		settings.ChimeEnabled = *fileData.ChimeEnabled
	}
	if fileData.ChimeVolume != nil && *fileData.ChimeVolume >= 0 && *fileData.ChimeVolume <= 1 {
		settings.ChimeVolume = *fileData.ChimeVolume
	}
	if fileData.Language != "" {
		settings.Language = fileData.Language
	}
}
