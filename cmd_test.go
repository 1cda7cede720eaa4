package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PerfectCircle/internal/config"
	"PerfectCircle/internal/export"
	"PerfectCircle/internal/geom"
	"PerfectCircle/internal/logging"
	"PerfectCircle/internal/state"
)

func writeAttempt(t *testing.T, r float64, gap float64) string {
	t.Helper()
	var pts state.Stroke
	for i := 0; i <= 72; i++ {
		a := gap/2 + (2*math.Pi-gap)*float64(i)/72
		pts = append(pts, geom.Pt(300+r*math.Cos(a), 200+r*math.Sin(a)))
	}
	a := state.Attempt{ID: "test", Seq: 1, Points: pts, Width: 600, Height: 400}

	var buf bytes.Buffer
	require.NoError(t, export.JSON(&buf, a))
	path := filepath.Join(t.TempDir(), "attempt.json")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestRunScore_Accepted(t *testing.T) {
	path := writeAttempt(t, 120, 0)
	pngPath := filepath.Join(t.TempDir(), "attempt.png")

	var out bytes.Buffer
	require.NoError(t, runScore(&out, path, pngPath, config.Default()))

	assert.Contains(t, out.String(), "outcome:       accepted")
	assert.Contains(t, out.String(), "accuracy:      100.0%")
	assert.Contains(t, out.String(), "extent:        240.0x240.0 (aspect 1.000)")
	assert.Contains(t, out.String(), "off-surface:   0")
	info, err := os.Stat(pngPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestRunScore_Rejections(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runScore(&out, writeAttempt(t, 50, 0), "", config.Default()))
	assert.Contains(t, out.String(), "outcome:       too-small")
	assert.Contains(t, out.String(), "accuracy:      0.0%")

	out.Reset()
	require.NoError(t, runScore(&out, writeAttempt(t, 120, 1.0), "", config.Default()))
	assert.Contains(t, out.String(), "outcome:       not-closed")
}

func TestRunScore_MissingFile(t *testing.T) {
	err := runScore(&bytes.Buffer{}, filepath.Join(t.TempDir(), "nope.json"), "", config.Default())
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "perfectcircle dev\n", out.String())
}

func TestScoreCommand_WarnsOnUnknownConfigKeys(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[game]\nmin_radiuss = 10.0\n"), 0o644))

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"score", writeAttempt(t, 120, 0), "--config", cfgPath})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		_ = rootCmd.PersistentFlags().Set("config", "")
		logging.SetLogger(nil)
	})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, errOut.String(), "unknown config keys")
	assert.Contains(t, errOut.String(), "game.min_radiuss")
	assert.Contains(t, out.String(), "outcome:       accepted")
}
