package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/gosweeper/cmd/gosweeper/shared"
	"github.com/lox/gosweeper/internal/config"
	"github.com/lox/gosweeper/internal/game"
	"github.com/lox/gosweeper/internal/leaderboard"
	"github.com/lox/gosweeper/internal/randutil"
	"github.com/lox/gosweeper/internal/session"
	"github.com/lox/gosweeper/internal/tui"
	"github.com/muesli/termenv"
)

type PlayCmd struct {
	Difficulty string `short:"d" help:"Difficulty preset (see 'difficulties')"`
	Rows       int    `help:"Custom board rows (5-30)"`
	Cols       int    `help:"Custom board columns (5-50)"`
	Mines      int    `help:"Custom mine count (at least 1, at most rows*cols-9)"`
	Theme      string `short:"t" help:"Colour theme (see 'difficulties')"`
	Seed       int64  `help:"Seed for mine placement (0 for random)"`
	NoColor    bool   `help:"Disable colours"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	difficulty, err := c.resolveDifficulty(cfg)
	if err != nil {
		return err
	}
	theme, err := resolveTheme(c.Theme, cfg.UI.Theme)
	if err != nil {
		return err
	}
	if c.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	logFile, err := shared.OpenLogFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger, err := shared.SetupLogger(logFile, cfg.Log.Level, g.Debug)
	if err != nil {
		return err
	}
	logger.Info("Starting game", "difficulty", difficulty.Key, "rows", difficulty.Rows,
		"cols", difficulty.Cols, "mines", difficulty.Mines, "theme", theme.Name)

	board := openLeaderboard(cfg, logger)

	s := session.New(difficulty,
		session.WithLogger(logger),
		session.WithEngineOptions(game.WithRNG(seededRNG(c.Seed))))
	model := tui.New(s,
		tui.WithLeaderboard(board),
		tui.WithTheme(theme),
		tui.WithLogger(logger))

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	return tui.Run(ctx, model)
}

// resolveDifficulty prefers a custom board when any dimension flag is set,
// then the --difficulty flag, then the configured default.
func (c *PlayCmd) resolveDifficulty(cfg *config.Config) (config.Difficulty, error) {
	if c.Rows != 0 || c.Cols != 0 || c.Mines != 0 {
		return config.Custom(c.Rows, c.Cols, c.Mines)
	}
	key := c.Difficulty
	if key == "" {
		key = cfg.Game.Difficulty
	}
	return cfg.Difficulty(key)
}

func resolveTheme(flag, configured string) (tui.Theme, error) {
	name := flag
	if name == "" {
		name = configured
	}
	theme, ok := tui.LookupTheme(name)
	if !ok {
		return tui.Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(tui.ThemeNames(), ", "))
	}
	return theme, nil
}

// openLeaderboard loads saved times. A damaged file is logged and replaced
// by an empty board so the game stays playable.
func openLeaderboard(cfg *config.Config, logger *log.Logger) *leaderboard.Board {
	opts := []leaderboard.Option{
		leaderboard.WithMaxEntries(cfg.Leaderboard.MaxEntries),
		leaderboard.WithLogger(logger),
	}
	board, err := leaderboard.Open(cfg.Leaderboard.Path, opts...)
	if err != nil {
		logger.Warn("Starting with an empty leaderboard", "error", err)
		return leaderboard.NewBoard(cfg.Leaderboard.Path, opts...)
	}
	return board
}

func seededRNG(seed int64) *rand.Rand {
	if seed == 0 {
		return randutil.NewTimeSeeded()
	}
	return randutil.New(seed)
}
