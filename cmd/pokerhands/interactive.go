package main

import (
	"github.com/lox/pokerhands/cmd/pokerhands/shared"
	"github.com/lox/pokerhands/internal/tui"
)

// InteractiveCmd starts the terminal comparer
type InteractiveCmd struct{}

func (c *InteractiveCmd) Run(g *Globals) error {
	_, logger, err := g.setup()
	if err != nil {
		return err
	}

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()
	return tui.Run(ctx, logger)
}
