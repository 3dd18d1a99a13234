package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bastiangx/spellserve/pkg/corpus"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 1, cfg.Suggest.Cutoff)
	assert.Equal(t, "probability", cfg.Suggest.Mode)
	assert.Equal(t, corpus.Probability, cfg.Mode())
	assert.Equal(t, 64, cfg.Server.MaxLimit)
	assert.True(t, cfg.Server.EnableCache)
	assert.False(t, cfg.CLI.BestOnly)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
[suggest]
cutoff = 3
mode = "simple"

[server]
max_limit = 16
enable_cache = false
cache_size = 32

[cli]
best_only = true
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Suggest.Cutoff)
	assert.Equal(t, corpus.Simple, cfg.Mode())
	assert.Equal(t, 16, cfg.Server.MaxLimit)
	assert.False(t, cfg.Server.EnableCache)
	assert.Equal(t, 32, cfg.Server.CacheSize)
	assert.True(t, cfg.CLI.BestOnly)
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
[suggest]
cutoff = 2
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Suggest.Cutoff)
	assert.Equal(t, "probability", cfg.Suggest.Mode)
	assert.Equal(t, 64, cfg.Server.MaxLimit)
}

func TestUnknownModeFallsBack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Suggest.Mode = "surprise"
	assert.Equal(t, corpus.Probability, cfg.Mode())
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.Suggest.Cutoff = 4
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 4, loaded.Suggest.Cutoff)
}

func TestInitConfigCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)
}

func TestBrokenConfigRecoversValidSections(t *testing.T) {
	// The file as a whole fails strict decoding because of the type clash,
	// but the valid suggest table must still win over the defaults.
	path := writeConfig(t, `
[suggest]
cutoff = 2

[server]
max_limit = "not a number"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Suggest.Cutoff)
	assert.Equal(t, 64, cfg.Server.MaxLimit)
}
