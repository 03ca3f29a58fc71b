package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/lox/gosweeper/internal/config"
)

// version is set by ldflags during build
var version = "dev"

var titleStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FAFAFA")).
	Background(lipgloss.Color("#7D56F4")).
	Padding(0, 1).
	Bold(true)

// Globals are flags shared by every command.
type Globals struct {
	Config string    `short:"c" type:"path" default:"gosweeper.hcl" help:"HCL configuration file (optional)"`
	Debug  bool      `help:"Enable debug logging"`
	Out    io.Writer `kong:"-"`
}

// loadConfig reads and validates the configuration file. A missing file
// yields the defaults.
func (g *Globals) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", g.Config, err)
	}
	return cfg, nil
}

func (g *Globals) stdout() io.Writer {
	if g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

type CLI struct {
	Globals

	Version      kong.VersionFlag `short:"v" help:"Show version"`
	Play         PlayCmd          `cmd:"" default:"withargs" help:"Play in the terminal"`
	Simulate     SimulateCmd      `cmd:"" help:"Let the bot play many games and report statistics"`
	Leaderboard  LeaderboardCmd   `cmd:"" help:"Show the best times"`
	Difficulties DifficultiesCmd  `cmd:"" help:"List difficulty presets and themes"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("gosweeper"),
		kong.Description("Minesweeper for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	cli.Globals.Out = os.Stdout
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
