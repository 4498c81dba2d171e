package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/pokerhands/internal/config"
	"github.com/lox/pokerhands/internal/display"
)

// Globals are flags shared by every command
type Globals struct {
	Config  string `help:"Path to HCL config file" default:"${config_path}" type:"path"`
	Debug   bool   `help:"Enable debug logging"`
	NoColor bool   `name:"no-color" help:"Disable styled output"`

	stdout io.Writer `kong:"-"`
	stderr io.Writer `kong:"-"`
}

// env is everything a command needs once flags and config are merged
type env struct {
	cfg     *config.Config
	logger  *log.Logger
	printer *display.Printer
}

func (g *Globals) setup() (*env, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.Level()
	if g.Debug {
		level = log.DebugLevel
	}
	logger := setupLogger(g.errWriter(), level)
	logger.Debug("Loaded config", "path", g.Config, "hands", cfg.Deal.Hands, "seed", cfg.Deal.Seed)

	return &env{
		cfg:     cfg,
		logger:  logger,
		printer: display.New(g.outWriter(), cfg.Color() && !g.NoColor),
	}, nil
}

func (g *Globals) outWriter() io.Writer {
	if g.stdout != nil {
		return g.stdout
	}
	return os.Stdout
}

func (g *Globals) errWriter() io.Writer {
	if g.stderr != nil {
		return g.stderr
	}
	return os.Stderr
}

// setupLogger configures charmbracelet/log with timestamps on w
func setupLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "pokerhands",
		Level:           level,
	})
}
