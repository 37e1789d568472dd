package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath_RespectsXDGConfigHome(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	assert.Equal(t, filepath.Join(tmp, "ap", "config.toml"), DefaultPath())
}

func TestDiscover_EnvVarWins(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "custom.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`command = "AtomicParsley"`), 0644))
	t.Setenv("AP_CONFIG", cfgPath)

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, cfgPath, got)
}

func TestDiscover_EnvVarMissingFile(t *testing.T) {
	t.Setenv("AP_CONFIG", filepath.Join(t.TempDir(), "nope.toml"))

	_, err := Discover()
	assert.Error(t, err)
}

func TestDiscover_FindsXDGPath(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("AP_CONFIG", "")

	cfgDir := filepath.Join(tmp, "ap")
	require.NoError(t, os.MkdirAll(cfgDir, 0755))
	cfgPath := filepath.Join(cfgDir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(""), 0644))

	got, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, cfgPath, got)
}
