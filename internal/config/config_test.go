package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty working directory with an empty user
// config directory and no tint environment variables.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", filepath.Join(dir, "home"))
	for _, k := range []string{"TINT_DEFAULT_COLOR", "TINT_BRIGHTNESS_STEP", "TINT_NO_COLOR", "NO_COLOR", "TINT_DEBUG"} {
		t.Setenv(k, "")
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestFindConfigPath_ReturnsLocalConfig_When_FileExists(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, FileName), "no_color: true\n")
	writeFile(t, filepath.Join(dir, "xdg", "tint", FileName), "debug: true\n")

	assert.Equal(t, FileName, FindConfigPath())
}

func TestFindConfigPath_UsesXDGPath_When_LocalMissing(t *testing.T) {
	dir := isolate(t)
	xdgPath := filepath.Join(dir, "xdg", "tint", FileName)
	writeFile(t, xdgPath, "debug: true\n")

	assert.Equal(t, xdgPath, FindConfigPath())
}

func TestFindConfigPath_ReturnsEmpty_When_NoConfigExists(t *testing.T) {
	isolate(t)
	assert.Empty(t, FindConfigPath())
}

func TestLoadConfig_ParsesAllFields(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "cfg.yaml")
	writeFile(t, path, `default_color: "#95B5FF"
brightness_step: 0
no_color: true
separator: ", "
end: ""
debug: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "#95B5FF", cfg.DefaultColor)
	require.NotNil(t, cfg.BrightnessStep)
	assert.Equal(t, 0, *cfg.BrightnessStep)
	assert.True(t, cfg.NoColor)
	assert.True(t, cfg.Debug)
	require.NotNil(t, cfg.Separator)
	assert.Equal(t, ", ", *cfg.Separator)
	require.NotNil(t, cfg.End)
	assert.Empty(t, *cfg.End)
}

func TestLoadConfig_LeavesUnsetFieldsNil(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "cfg.yaml")
	writeFile(t, path, "no_color: false\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Nil(t, cfg.BrightnessStep)
	assert.Nil(t, cfg.Separator)
	assert.Nil(t, cfg.End)
}

func TestLoadConfig_ReturnsError_When_FileInvalid(t *testing.T) {
	dir := isolate(t)

	_, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, ErrReadConfig)
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "bad.yaml")
	writeFile(t, path, "brightness_step: [unterminated\n")
	_, err = LoadConfig(path)
	assert.ErrorIs(t, err, ErrReadConfig)
}
