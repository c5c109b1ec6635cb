package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/lox/pokerhands/internal/fileutil"
	"github.com/lox/pokerhands/internal/randutil"
	"github.com/lox/pokerhands/poker"
)

// GenerateCmd deals random hand pair records
type GenerateCmd struct {
	Records int    `arg:"" help:"Number of records to deal"`
	Seed    *int64 `help:"Random seed (default: time based)"`
	Output  string `short:"o" help:"Write records to this path instead of stdout" type:"path"`
}

func (c *GenerateCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}
	if c.Records < 0 {
		return fmt.Errorf("records must not be negative, got %d", c.Records)
	}

	seed, rng := randutil.Resolve(c.Seed)
	logger.Info("Dealing records", "records", c.Records, "seed", seed)

	write := func(w io.Writer) error {
		bw := bufio.NewWriter(w)
		deck := poker.NewDeck(rng)
		for range c.Records {
			deck.Shuffle()
			h1, _ := deck.DealHand()
			h2, _ := deck.DealHand()
			if _, err := fmt.Fprintf(bw, "%s %s\n", h1, h2); err != nil {
				return err
			}
		}
		return bw.Flush()
	}

	if c.Output == "" {
		return write(g.stdout())
	}
	return fileutil.WriteAtomic(c.Output, 0o644, write)
}
