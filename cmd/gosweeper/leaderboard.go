package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lox/gosweeper/internal/leaderboard"
)

var rankStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true)

type LeaderboardCmd struct {
	Difficulty string `short:"d" help:"Only show boards for this difficulty"`
}

func (c *LeaderboardCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	board, err := leaderboard.Open(cfg.Leaderboard.Path, leaderboard.WithMaxEntries(cfg.Leaderboard.MaxEntries))
	if err != nil {
		return err
	}

	out := g.stdout()
	shown := 0
	for _, key := range board.Keys() {
		if c.Difficulty != "" && !strings.HasPrefix(key, c.Difficulty+"_") {
			continue
		}
		printBucket(out, key, board.Bucket(key))
		shown++
	}

	if shown == 0 {
		fmt.Fprintln(out, "No times recorded yet.")
	}
	return nil
}

func printBucket(w io.Writer, key string, entries []leaderboard.Entry) {
	if len(entries) == 0 {
		return
	}
	first := entries[0]
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s %d × %d, %d mines", first.Difficulty, first.Rows, first.Cols, first.Mines)))
	for i, e := range entries {
		date := e.Date
		if len(date) > 10 {
			date = date[:10]
		}
		fmt.Fprintf(w, "%s %-10s %-22s %s\n", rankStyle.Render(fmt.Sprintf("%2d.", i+1)), e.Player, e.FormattedTime(), date)
	}
	fmt.Fprintln(w)
}
