package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PerfectCircle/internal/logging"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 70.0, cfg.Game.MinRadius)
	assert.Equal(t, 60.0, cfg.Game.CloseEnough)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(path, true)
	assert.Error(t, err)
}

func TestLoad_OverridesKeepOtherDefaults(t *testing.T) {
	path := writeFile(t, `
[game]
min_radius = 90.5

[log]
level = "debug"
`)
	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, 90.5, cfg.Game.MinRadius)
	assert.Equal(t, 60.0, cfg.Game.CloseEnough)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, float32(800), cfg.Window.Width)
}

func TestLoad_Invalid(t *testing.T) {
	tests := map[string]string{
		"negative threshold": "[game]\nclose_enough = -1\n",
		"zero line width":    "[render]\nline_width = 0\n",
		"bad level":          "[log]\nlevel = \"chatty\"\n",
		"syntax":             "[game\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, body), true)
			assert.Error(t, err)
		})
	}
}

func TestResolvePath(t *testing.T) {
	t.Setenv(EnvPath, "/from/env.toml")

	p, err := ResolvePath("/from/flag.toml")
	require.NoError(t, err)
	assert.Equal(t, "/from/flag.toml", p)

	p, err = ResolvePath("")
	require.NoError(t, err)
	assert.Equal(t, "/from/env.toml", p)
}

func TestLoad_WarnsOnUnknownKeys(t *testing.T) {
	var buf bytes.Buffer
	logging.SetLogger(logging.NewText(&buf, slog.LevelInfo))
	t.Cleanup(func() { logging.SetLogger(nil) })

	cfg, err := Load(writeFile(t, "[game]\nmin_radiuss = 10.0\n"), true)
	require.NoError(t, err)
	assert.Equal(t, Default().Game.MinRadius, cfg.Game.MinRadius)
	assert.Contains(t, buf.String(), "unknown config keys")
	assert.Contains(t, buf.String(), "game.min_radiuss")
}
