package driver

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfigYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "xlang.yml", `
entry: src/main.xl
verbosity: DEBUG
color: never
max_call_depth: 200
cache_size: 8
history: .history
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "src/main.xl", cfg.Entry)
	assert.Equal(t, "debug", cfg.Verbosity)
	assert.Equal(t, ColorNever, cfg.Color)
	assert.Equal(t, 200, cfg.MaxCallDepth)
	assert.Equal(t, 8, cfg.CacheSize)
	assert.Equal(t, filepath.Join(dir, "src", "main.xl"), cfg.EntryPath())

	history, err := cfg.HistoryPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".history"), history)
}

func TestLoadConfigTOML(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "xlang.toml", `
entry = "app.xl"
color = "always"
max_call_depth = 0
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "app.xl", cfg.Entry)
	assert.Equal(t, ColorAlways, cfg.Color)
	assert.Equal(t, 0, cfg.MaxCallDepth)
	assert.Equal(t, DefaultConfig().CacheSize, cfg.CacheSize)
	assert.Equal(t, "warn", cfg.Verbosity)
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadConfig(writeFile(t, dir, "xlang.yml", "colour: never\n"))
	require.Error(t, err)

	_, err = LoadConfig(writeFile(t, dir, "xlang.toml", "colour = \"never\"\n"))
	require.Error(t, err)
}

func TestLoadConfigEmpty(t *testing.T) {
	dir := t.TempDir()
	_, err := LoadConfig(writeFile(t, dir, "xlang.yml", ""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is empty")
}

func TestLoadConfigValidation(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "xlang.yml", `
entry: main.js
verbosity: loud
color: sometimes
max_call_depth: -1
cache_size: -5
`)
	_, err := LoadConfig(path)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	assert.Len(t, verr.Issues, 5)
	assert.Contains(t, err.Error(), "config validation failed:")
	assert.Contains(t, err.Error(), `color "sometimes" must be one of auto, always, never`)
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeFile(t, root, "xlang.toml", "")
	script := writeFile(t, root, filepath.Join("a", "b", "main.xl"), "1;")

	got, err := FindConfig(script)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindConfigPrefersYAML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "xlang.toml", "")
	want := writeFile(t, root, "xlang.yml", "color: auto\n")

	got, err := FindConfig(root)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResolveConfigDefaultsWhenMissing(t *testing.T) {
	root := t.TempDir()
	if _, err := FindConfig(root); !errors.Is(err, ErrConfigNotFound) {
		// A config above the temp dir would make this test meaningless.
		t.Skipf("config found above %s: %v", root, err)
	}
	cfg, err := ResolveConfig(root)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestResolveHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XLANG_HOME", dir)
	home, err := ResolveHome()
	require.NoError(t, err)
	assert.Equal(t, dir, home)

	cfg := DefaultConfig()
	history, err := cfg.HistoryPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "history"), history)
}
