// Package config loads game settings from an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"PerfectCircle/internal/logging"
)

// EnvPath names the environment variable that overrides the config path.
const EnvPath = "PERFECTCIRCLE_CONFIG"

type Config struct {
	Game   Game   `toml:"game"`
	Window Window `toml:"window"`
	Render Render `toml:"render"`
	Log    Log    `toml:"log"`
}

// Game holds the attempt validation thresholds, in surface units.
type Game struct {
	MinRadius   float64 `toml:"min_radius"`
	CloseEnough float64 `toml:"close_enough"`
}

type Window struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

type Render struct {
	LineWidth    float64 `toml:"line_width"`
	MarkerRadius float64 `toml:"marker_radius"`
}

type Log struct {
	Level string `toml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Game:   Game{MinRadius: 70, CloseEnough: 60},
		Window: Window{Width: 800, Height: 600},
		Render: Render{LineWidth: 2, MarkerRadius: 2},
		Log:    Log{Level: "info"},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/perfectcircle/config.toml or the
// platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "perfectcircle", "config.toml"), nil
}

// ResolvePath picks the flag value, then the environment, then DefaultPath.
func ResolvePath(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	return DefaultPath()
}

// Load reads path over Default. A missing file is not an error unless
// required is set.
func Load(path string, required bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			logging.Logger().Debug("no config file", "path", path)
			return Default(), nil
		}
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logging.Logger().Warn("unknown config keys", "path", path, "keys", strings.Join(keys, ","))
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	logging.Logger().Debug("config loaded", "path", path)
	return cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.Game.MinRadius <= 0 {
		errs = append(errs, fmt.Errorf("game.min_radius must be positive, got %v", c.Game.MinRadius))
	}
	if c.Game.CloseEnough <= 0 {
		errs = append(errs, fmt.Errorf("game.close_enough must be positive, got %v", c.Game.CloseEnough))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %vx%v", c.Window.Width, c.Window.Height))
	}
	if c.Render.LineWidth <= 0 {
		errs = append(errs, fmt.Errorf("render.line_width must be positive, got %v", c.Render.LineWidth))
	}
	if c.Render.MarkerRadius < 0 {
		errs = append(errs, fmt.Errorf("render.marker_radius must not be negative, got %v", c.Render.MarkerRadius))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	return errors.Join(errs...)
}
