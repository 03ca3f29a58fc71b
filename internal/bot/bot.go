// Package bot picks moves for a minesweeper board using only what a player
// can see: revealed numbers and flags.
package bot

import (
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/gosweeper/internal/game"
	"github.com/lox/gosweeper/internal/randutil"
)

// View is the player-visible part of a board.
type View interface {
	Rows() int
	Cols() int
	CellAt(row, col int) (game.Cell, bool)
}

// Action is what a Move does to its cell.
type Action int

const (
	Open Action = iota
	Flag
)

func (a Action) String() string {
	switch a {
	case Open:
		return "open"
	case Flag:
		return "flag"
	default:
		return "unknown"
	}
}

// Strategy records how a move was chosen.
type Strategy string

const (
	StrategyLogic  Strategy = "logic"
	StrategyRandom Strategy = "random"
)

// Move is a single suggested action.
type Move struct {
	Row, Col int
	Action   Action
	Strategy Strategy
}

// Guess reports whether the move was not forced by the visible numbers.
func (m Move) Guess() bool { return m.Strategy == StrategyRandom }

// Option configures a Bot.
type Option func(*Bot)

// WithRNG sets the random source used for guesses.
func WithRNG(rng *rand.Rand) Option {
	return func(b *Bot) { b.rng = rng }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(b *Bot) { b.logger = logger.WithPrefix("bot") }
}

// Bot solves single-cell constraints and guesses when none apply.
type Bot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// New creates a bot.
func New(opts ...Option) *Bot {
	b := &Bot{
		rng:    randutil.NewTimeSeeded(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NextMove returns the next move, or false when no hidden unflagged cell is
// left.
func (b *Bot) NextMove(v View) (Move, bool) {
	if m, ok := b.findSafe(v); ok {
		return m, true
	}
	if m, ok := b.findMine(v); ok {
		return m, true
	}
	return b.guess(v)
}

type neighbourInfo struct {
	flags  int
	hidden []game.Position // hidden and unflagged
}

func inspect(v View, row, col int) neighbourInfo {
	var info neighbourInfo
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			c, ok := v.CellAt(row+dr, col+dc)
			if !ok || c.IsRevealed {
				continue
			}
			if c.IsFlagged {
				info.flags++
			} else {
				info.hidden = append(info.hidden, c.Position())
			}
		}
	}
	return info
}

// eachNumber calls fn for every revealed cell showing a non-zero count
// until fn returns true.
func eachNumber(v View, fn func(c game.Cell) bool) {
	for r := 0; r < v.Rows(); r++ {
		for c := 0; c < v.Cols(); c++ {
			cell, _ := v.CellAt(r, c)
			if !cell.IsRevealed || cell.AdjacentMines == 0 {
				continue
			}
			if fn(cell) {
				return
			}
		}
	}
}

// findSafe opens a neighbour of a number whose mines are all flagged.
func (b *Bot) findSafe(v View) (Move, bool) {
	var move Move
	var found bool
	eachNumber(v, func(c game.Cell) bool {
		info := inspect(v, c.Row, c.Col)
		if info.flags == c.AdjacentMines && len(info.hidden) > 0 {
			p := info.hidden[0]
			move = Move{Row: p.Row, Col: p.Col, Action: Open, Strategy: StrategyLogic}
			found = true
		}
		return found
	})
	return move, found
}

// findMine flags a neighbour of a number whose hidden neighbours must all be
// mines.
func (b *Bot) findMine(v View) (Move, bool) {
	var move Move
	var found bool
	eachNumber(v, func(c game.Cell) bool {
		info := inspect(v, c.Row, c.Col)
		if len(info.hidden) > 0 && info.flags+len(info.hidden) == c.AdjacentMines {
			p := info.hidden[0]
			move = Move{Row: p.Row, Col: p.Col, Action: Flag, Strategy: StrategyLogic}
			found = true
		}
		return found
	})
	return move, found
}

func (b *Bot) guess(v View) (Move, bool) {
	var candidates []game.Position
	for r := 0; r < v.Rows(); r++ {
		for c := 0; c < v.Cols(); c++ {
			cell, _ := v.CellAt(r, c)
			if !cell.IsRevealed && !cell.IsFlagged {
				candidates = append(candidates, cell.Position())
			}
		}
	}
	if len(candidates) == 0 {
		return Move{}, false
	}

	p := candidates[b.rng.IntN(len(candidates))]
	b.logger.Debug("Guessing", "pos", p, "candidates", len(candidates))
	return Move{Row: p.Row, Col: p.Col, Action: Open, Strategy: StrategyRandom}, true
}

// Apply performs a move on an engine and returns the disclosure outcome.
func Apply(e *game.Engine, m Move) game.Outcome {
	if m.Action == Flag {
		e.ToggleFlag(m.Row, m.Col)
		return game.Continue
	}
	return e.Disclose(m.Row, m.Col)
}
