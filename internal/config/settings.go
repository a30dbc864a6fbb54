package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	prismerrors "github.com/alexisbeaulieu97/prism/pkg/errors"
)

// Settings holds user preferences read from the settings file. Command line
// flags take precedence over every field.
type Settings struct {
	Format   string `yaml:"format,omitempty" validate:"omitempty,export_format"`
	Theme    string `yaml:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	LogLevel string `yaml:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Preset   string `yaml:"preset,omitempty" validate:"omitempty,max=64"`
}

// DefaultSettings returns the preferences used when no settings file exists.
func DefaultSettings() Settings {
	return Settings{
		Format:   "css",
		Theme:    "dark",
		LogLevel: "info",
	}
}

// DefaultSettingsPath returns ~/.config/prism/settings.yaml, honouring
// XDG_CONFIG_HOME through os.UserConfigDir.
func DefaultSettingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "prism", "settings.yaml"), nil
}

// LoadSettings reads the settings file at path. A missing or empty file yields
// DefaultSettings; unknown keys are rejected.
func LoadSettings(path string) (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return settings, nil
	}
	if err != nil {
		return Settings{}, prismerrors.NewParseError(path, 0, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, prismerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateSettings(settings); err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// ValidateSettings checks every field of s against its declared constraints.
func ValidateSettings(s Settings) error {
	return convertValidationError(validatorInstance().Struct(s))
}
