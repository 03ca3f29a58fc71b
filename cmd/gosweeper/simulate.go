package main

import (
	"fmt"
	"os"
	"time"

	"github.com/lox/gosweeper/cmd/gosweeper/shared"
	"github.com/lox/gosweeper/internal/simulator"
)

type SimulateCmd struct {
	Games      int    `short:"n" default:"1000" help:"Number of games to play"`
	Difficulty string `short:"d" help:"Difficulty preset (defaults to the configured one)"`
	Seed       int64  `default:"0" help:"RNG seed (0 for random)"`
	Workers    int    `short:"w" default:"0" help:"Parallel workers (0 for one per CPU)"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	key := c.Difficulty
	if key == "" {
		key = cfg.Game.Difficulty
	}
	difficulty, err := cfg.Difficulty(key)
	if err != nil {
		return err
	}

	level := "warn"
	if g.Debug {
		level = "debug"
	}
	logger, err := shared.SetupLogger(os.Stderr, level, false)
	if err != nil {
		return err
	}

	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}

	out := g.stdout()
	fmt.Fprintf(out, "Starting simulation: %d games on %s (seed: %d)\n", c.Games, difficulty, c.Seed)

	ctx, cancel := shared.SetupSignalHandler(logger)
	defer cancel()

	start := time.Now()
	stats, err := simulator.New(simulator.Config{
		Games:      c.Games,
		Difficulty: difficulty,
		Seed:       c.Seed,
		Workers:    c.Workers,
		Logger:     logger,
	}).Run(ctx)
	if err != nil {
		return err
	}

	simulator.PrintSummary(out, stats, difficulty)
	elapsed := time.Since(start)
	fmt.Fprintf(out, "\nCompleted in %v (%.0f games/sec)\n", elapsed.Round(time.Millisecond), float64(stats.Games)/elapsed.Seconds())
	return nil
}
