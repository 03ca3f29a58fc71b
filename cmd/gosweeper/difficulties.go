package main

import (
	"fmt"

	"github.com/lox/gosweeper/internal/tui"
)

type DifficultiesCmd struct{}

func (c *DifficultiesCmd) Run(g *Globals) error {
	cfg, err := g.loadConfig()
	if err != nil {
		return err
	}

	out := g.stdout()
	fmt.Fprintln(out, titleStyle.Render("Difficulties"))
	for _, key := range cfg.DifficultyKeys() {
		d, err := cfg.Difficulty(key)
		if err != nil {
			return err
		}
		marker := " "
		if key == cfg.Game.Difficulty {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-14s %s\n", marker, key, d)
	}
	fmt.Fprintln(out, "  custom         --rows 5-30 --cols 5-50 --mines 1..rows*cols-9")

	fmt.Fprintln(out)
	fmt.Fprintln(out, titleStyle.Render("Themes"))
	for _, name := range tui.ThemeNames() {
		marker := " "
		if name == cfg.UI.Theme {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s\n", marker, name)
	}
	return nil
}
