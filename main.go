package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/spf13/pflag"

	"LocalPaint/internal/config"
	"LocalPaint/internal/ui"
)

const configName = "localpaint.toml"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "localpaint:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("localpaint", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", defaultConfigPath(), "path to the TOML settings file")
	width := flags.Int("width", 0, "canvas width in pixels (overrides config)")
	height := flags.Int("height", 0, "canvas height in pixels (overrides config)")
	logLevel := flags.String("log-level", "", "debug, info, warn or error (overrides config)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *width > 0 {
		cfg.Canvas.Width = *width
	}
	if *height > 0 {
		cfg.Canvas.Height = *height
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	level, err := cfg.Level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	gg.SetLogger(logger)

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	logger.Info("starting", "config", *configPath, "canvas", settings.Size.String())
	ui.RunApp(cfg, settings, logger)
	return nil
}

func defaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return configName
	}
	return filepath.Join(dir, "localpaint", configName)
}
