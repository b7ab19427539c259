package aocenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.json"))
	require.NoError(t, err)

	assert.Empty(t, cfg.Session)
	assert.Equal(t, defaultBaseURL, cfg.BaseURL)
	assert.NotEmpty(t, cfg.UserAgent)
	assert.True(t, cfg.AutoBind)
	assert.True(t, cfg.AutoFormatOnBind)
	assert.False(t, cfg.AutoCommitOnBind)
	assert.False(t, cfg.AutoClearOnBind)
}

func TestConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := DefaultConfig()
	cfg.Session = "53cr3t"
	cfg.AutoBind = false
	cfg.AutoClearOnBind = true
	require.NoError(t, SaveConfig(path, cfg))

	got, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "53cr3t", got.Session)
	assert.False(t, got.AutoBind)
	assert.True(t, got.AutoClearOnBind)
	assert.Equal(t, defaultBaseURL, got.BaseURL)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"session": "  abc  "}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "abc", cfg.Session, "session is trimmed")
	assert.Equal(t, defaultBaseURL, cfg.BaseURL)
	assert.NotEmpty(t, cfg.UserAgent)
}

func TestSaveConfigRestrictsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, SaveConfig(path, DefaultConfig()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm(), "config holds the session cookie")
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
