// Package config loads pokerhands settings from an HCL file.
package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/pokerhands/internal/session"
)

// DefaultPath is where the CLI looks for a config file
const DefaultPath = "pokerhands.hcl"

// Config represents the complete configuration
type Config struct {
	LogLevel string          `hcl:"log_level,optional"`
	Deal     *DealSettings   `hcl:"deal,block"`
	Output   *OutputSettings `hcl:"output,block"`
}

// DealSettings controls random rounds
type DealSettings struct {
	Hands int   `hcl:"hands,optional"`
	Seed  int64 `hcl:"seed,optional"` // 0 derives a seed from the clock
}

// OutputSettings controls rendering
type OutputSettings struct {
	Color    *bool `hcl:"color,optional"`
	ShowDeck *bool `hcl:"show_deck,optional"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Deal == nil {
		c.Deal = &DealSettings{}
	}
	if c.Deal.Hands == 0 {
		c.Deal.Hands = session.DefaultHands
	}
	if c.Output == nil {
		c.Output = &OutputSettings{}
	}
	if c.Output.Color == nil {
		c.Output.Color = boolPtr(true)
	}
	if c.Output.ShowDeck == nil {
		c.Output.ShowDeck = boolPtr(true)
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if c.Deal.Hands < 1 || c.Deal.Hands > session.MaxHands {
		return fmt.Errorf("deal.hands must be between 1 and %d, got %d", session.MaxHands, c.Deal.Hands)
	}
	return nil
}

// Level returns the configured log level
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// Color reports whether styled output is enabled
func (c *Config) Color() bool {
	return c.Output.Color == nil || *c.Output.Color
}

// ShowDeck reports whether the shuffled and remaining deck are printed
func (c *Config) ShowDeck() bool {
	return c.Output.ShowDeck == nil || *c.Output.ShowDeck
}

func boolPtr(b bool) *bool {
	return &b
}
