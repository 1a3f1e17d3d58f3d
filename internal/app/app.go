package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/qrforge/internal/config"
	"github.com/vk/qrforge/internal/ctxlog"
	"github.com/vk/qrforge/internal/present"
)

// App encapsulates the application's dependencies, configuration and
// lifecycle for a single invocation.
type App struct {
	outW      io.Writer
	inR       *bufio.Reader
	logger    *slog.Logger
	cfg       *Config
	defaults  config.Defaults
	encoder   Encoder
	decoder   Decoder
	presenter *present.Printer
}

// NewApp is the constructor for the main application. It configures an
// isolated logger, loads the defaults file through the provided loader
// and wires the adapters.
func NewApp(outW, errW io.Writer, inR io.Reader, cfg *Config, loader config.Loader, enc Encoder, dec Decoder) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	defaults, err := loader.Load(ctx, cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("loading defaults: %w", err)
	}
	logger.Debug("Defaults resolved.", "output_dir", defaults.OutputDir, "format", defaults.Format)

	return &App{
		outW:      outW,
		inR:       bufio.NewReader(inR),
		logger:    logger,
		cfg:       cfg,
		defaults:  defaults,
		encoder:   enc,
		decoder:   dec,
		presenter: present.NewPrinter(outW),
	}, nil
}

// format returns the effective output format for this invocation.
func (a *App) format() string {
	if a.cfg.Format != "" {
		return a.cfg.Format
	}
	return a.defaults.Format
}

func (a *App) foreground() string {
	if a.cfg.Foreground != "" {
		return a.cfg.Foreground
	}
	return a.defaults.Foreground
}

func (a *App) background() string {
	if a.cfg.Background != "" {
		return a.cfg.Background
	}
	return a.defaults.Background
}
