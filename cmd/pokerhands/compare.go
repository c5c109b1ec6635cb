package main

import (
	"fmt"

	"github.com/lox/pokerhands/poker"
)

// CompareCmd ranks two hands given on the command line
type CompareCmd struct {
	Hand1 string `arg:"" help:"First hand, e.g. \"5H 5C 6S 7S KD\""`
	Hand2 string `arg:"" help:"Second hand"`
}

func (c *CompareCmd) Run(g *Globals) error {
	if _, _, err := g.setup(); err != nil {
		return err
	}

	h1, err := poker.ParseHandString(c.Hand1)
	if err != nil {
		return fmt.Errorf("hand 1: %w", err)
	}
	h2, err := poker.ParseHandString(c.Hand2)
	if err != nil {
		return fmt.Errorf("hand 2: %w", err)
	}

	res, err := poker.Evaluate(h1, h2)
	if err != nil {
		return err
	}

	out := g.stdout()
	fprintf(out, "Hand 1: %s  %s\n", h1, res.Hand1.Category)
	fprintf(out, "Hand 2: %s  %s\n", h2, res.Hand2.Category)
	switch {
	case res.Winner > 0:
		fprintf(out, "Winner: hand 1\n")
	case res.Winner < 0:
		fprintf(out, "Winner: hand 2\n")
	default:
		fprintf(out, "Winner: tie\n")
	}
	return nil
}
