package main

import (
	"context"
	"time"

	"github.com/lox/pokerhands/cmd/pokerhands/shared"
	"github.com/lox/pokerhands/internal/server"
)

// ServeCmd runs the WebSocket compare service
type ServeCmd struct {
	Addr        string        `short:"a" help:"Address to listen on (overrides config)"`
	IdleTimeout time.Duration `help:"Close connections idle for this long (overrides config)"`
}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	addr := cfg.Server.Address
	if c.Addr != "" {
		addr = c.Addr
	}
	idle := cfg.IdleTimeout()
	if c.IdleTimeout > 0 {
		idle = c.IdleTimeout
	}

	srv := server.NewServer(logger,
		server.WithIdleTimeout(idle),
		server.WithMaxMessageSize(int64(cfg.Server.MaxMessage)),
	)

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
