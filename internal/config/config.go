package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the configuration file looked up by FindConfigPath.
const FileName = ".tint.yaml"

// CliFlags holds the values of command-line flags.
type CliFlags struct {
	DefaultColor   string
	BrightnessStep int
	NoColor        bool
	Debug          bool
	Separator      string
	End            string

	// Flags to track if they were explicitly set by the user
	DefaultColorSet   bool
	BrightnessStepSet bool
	NoColorSet        bool
	DebugSet          bool
	SeparatorSet      bool
	EndSet            bool
}

// AppConfig represents the contents of a .tint.yaml file. Pointer fields
// distinguish "not set" from a zero value.
type AppConfig struct {
	DefaultColor   string  `yaml:"default_color,omitempty"`
	BrightnessStep *int    `yaml:"brightness_step,omitempty"`
	NoColor        bool    `yaml:"no_color"`
	Separator      *string `yaml:"separator,omitempty"`
	End            *string `yaml:"end,omitempty"`
	Debug          bool    `yaml:"debug"`
}

// Constants for default values.
const (
	DefaultBrightnessStep = 20
	DefaultSeparator      = " "
	DefaultEnd            = "\n"
)

// ErrReadConfig wraps failures to read or parse a config file.
var ErrReadConfig = errors.New("cannot load config file")

// LoadConfig reads and parses the config file at path.
func LoadConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadConfig, path, err)
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrReadConfig, path, err)
	}
	return &cfg, nil
}

// FindConfigPath looks for .tint.yaml in the working directory first, then in
// the user config directory. It returns "" when neither exists.
func FindConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	// An empty path or "/" is not usable for building the per-user path.
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "tint", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
