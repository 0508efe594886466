package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-zplane/dsp/allpass"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	require.Equal(t, FileConfig{}, cfg)

	s, err := cfg.Resolve()
	require.NoError(t, err)
	require.Equal(t, Defaults(), s)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	require.Error(t, err)
}

func TestLoadConfigValues(t *testing.T) {
	path := writeConfig(t, `
[response]
points = 64
gain = 0.5

[playback]
speed = 900
max-speed = 2000

[draw]
chunk = 50

[allpass]
library = ["0.5+0.5j", "-2"]
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Response.Points)
	require.Nil(t, cfg.Playback.Resolution)

	s, err := cfg.Resolve()
	require.NoError(t, err)
	require.Equal(t, 64, s.Points)
	require.InDelta(t, 0.5, s.Gain, 0)
	require.Equal(t, 900, s.Speed)
	require.Equal(t, 2000, s.MaxSpeed)
	require.Equal(t, Defaults().Resolution, s.Resolution)
	require.Equal(t, 50, s.Chunk)
	require.Equal(t, Defaults().Settle, s.Settle)
	require.Equal(t, []complex128{complex(0.5, 0.5), -2}, s.Library)
}

func TestLoadConfigRejectsUnknownKey(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "[response]\nbins = 3\n"))
	require.ErrorContains(t, err, "response.bins")
}

func TestLoadConfigDecodeError(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "[response\n"))
	require.ErrorContains(t, err, "failed to decode config")
}

func TestResolveErrors(t *testing.T) {
	_, err := FileConfig{AllPass: AllPassConfig{Library: []string{"abc"}}}.Resolve()
	require.ErrorIs(t, err, allpass.ErrMalformedCoefficient)

	zero := 0
	_, err = FileConfig{Response: ResponseConfig{Points: &zero}}.Resolve()
	require.Error(t, err)
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	require.Equal(t, filepath.Join("/tmp/xdg", AppName, "config.toml"), DefaultConfigPath())
}
