package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dkoosis/tint/pkg/color"
	"github.com/dkoosis/tint/pkg/markup"
)

// Sources recorded in ResolvedConfig, in priority order.
//
// Priority Order (highest to lowest):
//  1. CLI Flags
//  2. Environment Variables
//  3. .tint.yaml Configuration File
//  4. Defaults
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// ResolvedConfig holds the final resolved configuration after applying all priority rules.
type ResolvedConfig struct {
	// DefaultColor is the raw default color value; "" means none.
	DefaultColor   string
	BrightnessStep int
	NoColor        bool
	Debug          bool
	Separator      string
	End            string

	// Path is the config file that was read, "" if none.
	Path string
	// Warnings collects problems that were recovered from, such as an
	// unreadable config file or a malformed environment value.
	Warnings []string

	// Resolution metadata (for debugging)
	DefaultColorSource   string
	BrightnessStepSource string
	NoColorSource        string
	DebugSource          string
}

// ResolveConfig resolves configuration from all sources with explicit priority
// order. An explicit configPath must be readable; when configPath is "" the
// file is discovered with FindConfigPath and load problems only produce
// warnings.
func ResolveConfig(cliFlags CliFlags, configPath string) (*ResolvedConfig, error) {
	resolved := &ResolvedConfig{
		BrightnessStep:       DefaultBrightnessStep,
		Separator:            DefaultSeparator,
		End:                  DefaultEnd,
		DefaultColorSource:   SourceDefault,
		BrightnessStepSource: SourceDefault,
		NoColorSource:        SourceDefault,
		DebugSource:          SourceDefault,
	}

	path := configPath
	if path == "" {
		path = FindConfigPath()
	}
	if path != "" {
		appCfg, err := LoadConfig(path)
		switch {
		case err != nil && configPath != "":
			return nil, err
		case err != nil:
			resolved.Warnings = append(resolved.Warnings, fmt.Sprintf("%v; using defaults", err))
		default:
			resolved.Path = path
			applyFile(resolved, appCfg)
		}
	}

	applyEnv(resolved)
	applyFlags(resolved, cliFlags)

	if err := validateResolvedConfig(resolved); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return resolved, nil
}

func applyFile(resolved *ResolvedConfig, appCfg *AppConfig) {
	if appCfg.DefaultColor != "" {
		resolved.DefaultColor = appCfg.DefaultColor
		resolved.DefaultColorSource = SourceFile
	}
	if appCfg.BrightnessStep != nil {
		resolved.BrightnessStep = *appCfg.BrightnessStep
		resolved.BrightnessStepSource = SourceFile
	}
	if appCfg.NoColor {
		resolved.NoColor = true
		resolved.NoColorSource = SourceFile
	}
	if appCfg.Debug {
		resolved.Debug = true
		resolved.DebugSource = SourceFile
	}
	if appCfg.Separator != nil {
		resolved.Separator = *appCfg.Separator
	}
	if appCfg.End != nil {
		resolved.End = *appCfg.End
	}
}

func applyEnv(resolved *ResolvedConfig) {
	if v := os.Getenv("TINT_DEFAULT_COLOR"); v != "" {
		resolved.DefaultColor = v
		resolved.DefaultColorSource = SourceEnv
	}
	if v := os.Getenv("TINT_BRIGHTNESS_STEP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			resolved.BrightnessStep = n
			resolved.BrightnessStepSource = SourceEnv
		} else {
			resolved.Warnings = append(resolved.Warnings,
				fmt.Sprintf("ignoring TINT_BRIGHTNESS_STEP=%q: not an integer", v))
		}
	}
	if envNoColor := getEnvBool("TINT_NO_COLOR"); envNoColor != nil {
		resolved.NoColor = *envNoColor
		resolved.NoColorSource = SourceEnv
	} else if os.Getenv("NO_COLOR") != "" {
		resolved.NoColor = true
		resolved.NoColorSource = SourceEnv
	}
	if os.Getenv("TINT_DEBUG") != "" {
		resolved.Debug = true
		resolved.DebugSource = SourceEnv
	}
}

func applyFlags(resolved *ResolvedConfig, cliFlags CliFlags) {
	if cliFlags.DefaultColorSet {
		resolved.DefaultColor = cliFlags.DefaultColor
		resolved.DefaultColorSource = SourceCLI
	}
	if cliFlags.BrightnessStepSet {
		resolved.BrightnessStep = cliFlags.BrightnessStep
		resolved.BrightnessStepSource = SourceCLI
	}
	if cliFlags.NoColorSet {
		resolved.NoColor = cliFlags.NoColor
		resolved.NoColorSource = SourceCLI
	}
	if cliFlags.DebugSet {
		resolved.Debug = cliFlags.Debug
		resolved.DebugSource = SourceCLI
	}
	if cliFlags.SeparatorSet {
		resolved.Separator = cliFlags.Separator
	}
	if cliFlags.EndSet {
		resolved.End = cliFlags.End
	}
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set, or a pointer to the boolean value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

// validateResolvedConfig validates the resolved configuration and returns errors for invalid states.
func validateResolvedConfig(cfg *ResolvedConfig) error {
	if cfg.DefaultColor != "" {
		if _, err := color.ParseValue(cfg.DefaultColor); err != nil {
			return fmt.Errorf("default color from %s: %w", cfg.DefaultColorSource, err)
		}
	}
	if cfg.BrightnessStep < 0 {
		return fmt.Errorf("%w: %d from %s", markup.ErrInvalidBrightnessStep, cfg.BrightnessStep, cfg.BrightnessStepSource)
	}
	return nil
}

// MarkupOptions converts the resolved settings into renderer options.
func (c *ResolvedConfig) MarkupOptions() []markup.Option {
	return []markup.Option{
		markup.WithDefaultColorString(c.DefaultColor),
		markup.WithBrightnessStep(c.BrightnessStep),
		markup.WithPlain(c.NoColor),
	}
}
