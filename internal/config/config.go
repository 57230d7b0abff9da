// Package config loads run configuration for the batch tally from an HCL
// file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/fivecard/internal/round"
)

// Config represents the complete configuration file
type Config struct {
	Run RunSettings `hcl:"run,block"`
}

// RunSettings controls how a rounds file is read and tallied
type RunSettings struct {
	Input       string `hcl:"input,optional"`
	SplitOffset int    `hcl:"split_offset,optional"`
	Workers     int    `hcl:"workers,optional"`
	OnError     string `hcl:"on_error,optional"`
	Report      string `hcl:"report,optional"`
	LogLevel    string `hcl:"log_level,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Run: RunSettings{
			Input:       "-",
			SplitOffset: round.DefaultSplitOffset,
			Workers:     1,
			OnError:     string(round.AbortOnError),
			LogLevel:    "info",
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
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
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default().Run
	if c.Run.Input == "" {
		c.Run.Input = def.Input
	}
	if c.Run.SplitOffset == 0 {
		c.Run.SplitOffset = def.SplitOffset
	}
	if c.Run.Workers == 0 {
		c.Run.Workers = def.Workers
	}
	if c.Run.OnError == "" {
		c.Run.OnError = def.OnError
	}
	if c.Run.LogLevel == "" {
		c.Run.LogLevel = def.LogLevel
	}
}

// Validate checks the settings for values the runner cannot use
func (c *Config) Validate() error {
	if c.Run.SplitOffset < 0 {
		return fmt.Errorf("split_offset must be positive, got %d", c.Run.SplitOffset)
	}
	if c.Run.Workers < 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Run.Workers)
	}
	if _, err := round.ParseErrorPolicy(c.Run.OnError); err != nil {
		return err
	}
	if _, err := log.ParseLevel(strings.ToLower(c.Run.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.Run.LogLevel, err)
	}
	return nil
}

// RunnerOptions converts the settings into round.Options. The logger and
// clock are left for the caller.
func (r RunSettings) RunnerOptions() (round.Options, error) {
	policy, err := round.ParseErrorPolicy(r.OnError)
	if err != nil {
		return round.Options{}, err
	}
	return round.Options{
		SplitOffset: r.SplitOffset,
		Workers:     r.Workers,
		OnError:     policy,
	}, nil
}
