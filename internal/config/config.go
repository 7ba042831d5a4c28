// Package config loads the TOML settings file that seeds a painting session.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"LocalPaint/internal/state"
)

type Config struct {
	Canvas Canvas `toml:"canvas"`
	Pen    Pen    `toml:"pen"`
	Export Export `toml:"export"`
	Log    Log    `toml:"log"`
}

type Canvas struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

type Pen struct {
	Color string `toml:"color"`
	Width int    `toml:"width"`
	Cap   string `toml:"cap"`
}

type Export struct {
	// Directory the save dialog opens in. Empty means the dialog default.
	Directory string `toml:"directory"`
}

type Log struct {
	Level string `toml:"level"`
}

func Default() Config {
	return Config{
		Canvas: Canvas{
			Width:      state.DefaultCanvasWidth,
			Height:     state.DefaultCanvasHeight,
			Background: "white",
		},
		Pen: Pen{
			Color: "black",
			Width: state.MinBrushWidth,
			Cap:   state.CapRound.String(),
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path on top of the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data into cfg, keeping fields the data leaves unset.
func Parse(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}

// Settings validates the config and converts it into session defaults.
func (c Config) Settings() (state.Defaults, error) {
	bg, err := state.ParseColor(c.Canvas.Background)
	if err != nil {
		return state.Defaults{}, fmt.Errorf("canvas.background: %w", err)
	}
	pen, err := state.ParseColor(c.Pen.Color)
	if err != nil {
		return state.Defaults{}, fmt.Errorf("pen.color: %w", err)
	}
	capStyle, err := state.ParseCapStyle(c.Pen.Cap)
	if err != nil {
		return state.Defaults{}, fmt.Errorf("pen.cap: %w", err)
	}
	return state.Defaults{
		Size:       state.Size{Width: c.Canvas.Width, Height: c.Canvas.Height}.Clamp(),
		Background: bg,
		PenColor:   pen,
		PenWidth:   c.Pen.Width,
		Cap:        capStyle,
	}, nil
}

// Level maps the configured log level name to a slog level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.Log.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return l, nil
}
