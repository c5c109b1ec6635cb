package main

import (
	"fmt"
	"io"
	"os"

	"github.com/lox/pokerhands/cmd/pokerhands/shared"
	"github.com/lox/pokerhands/internal/batch"
	"github.com/lox/pokerhands/internal/euler"
	"github.com/lox/pokerhands/internal/report"
)

// CountCmd compares every record in a file of hand pairs
type CountCmd struct {
	File    string `arg:"" help:"Records file, or - for stdin"`
	Workers int    `short:"w" help:"Worker goroutines (overrides config, 0 = one per CPU)" default:"-1"`
	Format  string `short:"f" help:"Output format, text or json (overrides config)"`
	Output  string `short:"o" help:"Also save the report to this path" type:"path"`

	stdin io.Reader `kong:"-"`
}

func (c *CountCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	src, closeSrc, err := c.open()
	if err != nil {
		return err
	}
	defer closeSrc()

	workers := cfg.Workers
	if c.Workers >= 0 {
		workers = c.Workers
	}
	format := cfg.Report.Format
	if c.Format != "" {
		format = c.Format
	}
	output := cfg.Report.Path
	if c.Output != "" {
		output = c.Output
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	runner := batch.NewRunner(logger, batch.WithWorkers(workers))
	logger.Debug("Counting records", "file", c.File, "workers", runner.Workers())

	summary, err := runner.Run(ctx, euler.NewReader(src))
	if err != nil {
		return fmt.Errorf("count %s: %w", c.File, err)
	}

	if err := report.Write(g.stdout(), format, summary, !g.NoColor); err != nil {
		return err
	}
	if output != "" {
		if err := report.Save(output, format, summary); err != nil {
			return err
		}
		logger.Info("Saved report", "path", output, "format", format)
	}
	return nil
}

func (c *CountCmd) open() (io.Reader, func(), error) {
	if c.File == "-" {
		if c.stdin != nil {
			return c.stdin, func() {}, nil
		}
		return os.Stdin, func() {}, nil
	}

	f, err := os.Open(c.File)
	if err != nil {
		return nil, nil, fmt.Errorf("open records: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
