package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"

	"github.com/lox/pokerhands/cmd/pokerhands/shared"
	"github.com/lox/pokerhands/internal/config"
)

// version is set by ldflags during build
var version = "dev"

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" help:"Path to HCL configuration file" default:"pokerhands.hcl" type:"path"`
	LogLevel string `help:"Log level: debug, info, warn or error (overrides config)"`
	LogJSON  bool   `name:"log-json" help:"Log as JSON"`
	NoColor  bool   `help:"Disable colour output"`

	out io.Writer `kong:"-"`
	err io.Writer `kong:"-"`
}

type CLI struct {
	Globals

	Version     kong.VersionFlag `short:"v" help:"Show version"`
	Compare     CompareCmd       `cmd:"" help:"Compare two hands"`
	Count       CountCmd         `cmd:"" help:"Count player one wins in a file of hand pairs"`
	Serve       ServeCmd         `cmd:"" help:"Serve hand comparison over WebSocket"`
	Generate    GenerateCmd      `cmd:"" help:"Deal random hand pair records"`
	Interactive InteractiveCmd   `cmd:"" help:"Compare hands in an interactive terminal"`
}

// setup loads configuration and builds the logger. Flags win over the file.
func (g *Globals) setup() (*config.Config, *log.Logger, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, nil, err
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}

	logger, err := shared.SetupLogger(g.stderr(), cfg.LogLevel, g.LogJSON)
	if err != nil {
		return nil, nil, err
	}
	if g.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	return cfg, logger, nil
}

func (g *Globals) stdout() io.Writer {
	if g.out != nil {
		return g.out
	}
	return os.Stdout
}

func (g *Globals) stderr() io.Writer {
	if g.err != nil {
		return g.err
	}
	return os.Stderr
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerhands"),
		kong.Description("Rank five card poker hands"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}

func fprintf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
