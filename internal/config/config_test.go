package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ereliastudio/oneblock-tools/internal/config"
)

func TestResolve(t *testing.T) {
	cfg := config.DefaultConfig("/repo")
	assert.Equal(t, filepath.Join("/repo", "src/main/resources/Server/Languages/en-US/server.lang"), cfg.Resolve(cfg.LangPath))
	assert.Equal(t, "/abs/bench.json", cfg.Resolve("/abs/bench.json"))
}

func TestLoadFileMissing(t *testing.T) {
	base := config.DefaultConfig(t.TempDir())
	cfg, ok, err := config.LoadFile(filepath.Join(base.Root, config.SettingsFile), base)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Same(t, base, cfg)
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte(`{"lang_path": "lang/en.lang", "defaults_targets": ["java", "go"]}`), 0o644))

	base := config.DefaultConfig(dir)
	cfg, ok, err := config.LoadFile(path, base)
	require.NoError(t, err)
	require.True(t, ok)

	assert.Equal(t, "lang/en.lang", cfg.LangPath)
	assert.Equal(t, []string{"java", "go"}, cfg.DefaultsTargets)
	assert.Equal(t, base.BenchPath, cfg.BenchPath)
	assert.Equal(t, []string{"java"}, base.DefaultsTargets, "base must not change")
}

func TestLoadFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, config.SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0o644))

	_, _, err := config.LoadFile(path, config.DefaultConfig(dir))
	assert.Error(t, err)
}

func TestMergeKeepsExplicitFlags(t *testing.T) {
	cfg := config.DefaultConfig(".")
	cfg.GoPackage = "fromflag"
	cfg.DefaultsTargets = []string{"go"}

	fromFile := config.DefaultConfig(".")
	fromFile.GoPackage = "fromfile"
	fromFile.DefaultsTargets = []string{"java"}
	fromFile.BenchPath = "bench.json"

	config.Merge(cfg, fromFile, map[string]bool{"go-package": true})

	assert.Equal(t, "fromflag", cfg.GoPackage)
	assert.Equal(t, []string{"java"}, cfg.DefaultsTargets)
	assert.Equal(t, "bench.json", cfg.BenchPath)
}

func TestLoadSettingsImplicitMayBeMissing(t *testing.T) {
	base := config.DefaultConfig(t.TempDir())

	cfg, loadedFrom, err := config.LoadSettings("", base)
	require.NoError(t, err)
	assert.Empty(t, loadedFrom)
	assert.Same(t, base, cfg)
}

func TestLoadSettingsImplicitFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte(`{"go_package": "forest"}`), 0o644))

	cfg, loadedFrom, err := config.LoadSettings("", config.DefaultConfig(dir))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, config.SettingsFile), loadedFrom)
	assert.Equal(t, "forest", cfg.GoPackage)
}

func TestLoadSettingsExplicitMissing(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "custom.json")

	_, _, err := config.LoadSettings(missing, config.DefaultConfig(dir))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), missing)
}
