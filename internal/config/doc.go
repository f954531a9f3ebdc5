// Package config handles configuration loading and merging for tint.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--default-color, --brightness-step, --no-color, --debug)
//  2. Environment variables (TINT_DEFAULT_COLOR, TINT_BRIGHTNESS_STEP, TINT_NO_COLOR, NO_COLOR, TINT_DEBUG)
//  3. YAML config file (.tint.yaml in local directory or ~/.config/tint/.tint.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Key Configuration Options
//
//   - DefaultColor: base color for the default-relative markup keys
//     ("default", "l", "dd", "*"). Accepts hex, rgb(...) or a palette name.
//   - BrightnessStep: lightness change in percent per lighten/darken character
//   - NoColor: renders markup in plain mode, dropping all escape sequences
//   - Separator / End: joiner and terminator used by `tint print`
//
// # Environment Variables
//
//   - TINT_DEFAULT_COLOR: default color value
//   - TINT_BRIGHTNESS_STEP: integer percentage
//   - TINT_NO_COLOR: "true" or "1" disables colors
//   - NO_COLOR: any non-empty value disables colors
//   - TINT_DEBUG: any non-empty value enables debug output
package config
