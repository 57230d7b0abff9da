package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/coder/quartz"

	"github.com/lox/fivecard/internal/config"
	"github.com/lox/fivecard/internal/report"
	"github.com/lox/fivecard/internal/round"
)

// TallyCmd evaluates every round in a file and prints the outcome counts.
type TallyCmd struct {
	File    string `arg:"" optional:"" help:"Rounds file, one round per line ('-' for stdin)"`
	Config  string `short:"c" help:"HCL run configuration file"`
	Workers int    `short:"w" help:"Concurrent evaluators (overrides config)"`
	Offset  int    `help:"Character offset where hand B starts (overrides config)"`
	OnError string `name:"on-error" help:"What to do with a bad line: abort or skip (overrides config)"`
	Table   bool   `help:"Print a summary table instead of the bare counts"`
	JSON    bool   `name:"json" help:"Print the summary as JSON"`
	Report  string `help:"Also write a JSON report to this path (overrides config)"`
	Debug   bool   `help:"Enable debug logging"`

	clock quartz.Clock `kong:"-"`
}

func (c *TallyCmd) Run(g *Globals) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	c.applyOverrides(&cfg.Run)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := setupLogger(g.Stderr, cfg.Run.LogLevel, c.Debug)
	if err != nil {
		return err
	}

	opts, err := cfg.Run.RunnerOptions()
	if err != nil {
		return err
	}
	clock := c.clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	opts.Logger = logger
	opts.Clock = clock

	in, closeInput, err := openInput(cfg.Run.Input, g.Stdin)
	if err != nil {
		return err
	}
	defer closeInput()

	ctx, cancel := setupSignalHandler(logger)
	defer cancel()

	logger.Debug("Starting tally",
		"input", cfg.Run.Input,
		"workers", opts.Workers,
		"split_offset", opts.SplitOffset,
		"on_error", opts.OnError)

	summary, err := round.NewRunner(opts).Run(ctx, in)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Run.Input, err)
	}

	rep := report.New(cfg.Run.Input, summary, clock.Now())
	if cfg.Run.Report != "" {
		if err := report.Save(cfg.Run.Report, rep); err != nil {
			return err
		}
		logger.Info("Report written", "path", cfg.Run.Report)
	}

	switch {
	case c.JSON:
		return report.WriteJSON(g.Stdout, rep)
	case c.Table:
		return report.WriteText(g.Stdout, summary)
	default:
		return report.WriteCounts(g.Stdout, summary.Tally)
	}
}

func (c *TallyCmd) applyOverrides(run *config.RunSettings) {
	if c.File != "" {
		run.Input = c.File
	}
	if c.Workers > 0 {
		run.Workers = c.Workers
	}
	if c.Offset > 0 {
		run.SplitOffset = c.Offset
	}
	if c.OnError != "" {
		run.OnError = c.OnError
	}
	if c.Report != "" {
		run.Report = c.Report
	}
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
