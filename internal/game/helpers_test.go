package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/gosweeper/internal/randutil"
)

// newTestEngine builds a quiet engine with a fixed seed. When layout is given
// the mines are placed immediately at those positions.
func newTestEngine(t *testing.T, rows, cols, mines int, layout ...Position) *Engine {
	t.Helper()
	e := NewEngine(rows, cols, mines,
		WithRNG(randutil.New(42)),
		WithLogger(log.New(io.Discard)),
	)
	if len(layout) > 0 {
		e.PlaceMinesAt(layout...)
	}
	return e
}

func minePositions(e *Engine) []Position {
	var out []Position
	for _, row := range e.Snapshot() {
		for _, c := range row {
			if c.IsMine {
				out = append(out, c.Position())
			}
		}
	}
	return out
}

func countWhere(e *Engine, pred func(Cell) bool) int {
	n := 0
	for _, row := range e.Snapshot() {
		for _, c := range row {
			if pred(c) {
				n++
			}
		}
	}
	return n
}

func isRevealed(c Cell) bool { return c.IsRevealed }
func isFlagged(c Cell) bool  { return c.IsFlagged }

// safetyZone returns the anchor and its in-bounds neighbours.
func safetyZone(rows, cols, row, col int) map[Position]bool {
	zone := map[Position]bool{}
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			r, c := row+dr, col+dc
			if r >= 0 && r < rows && c >= 0 && c < cols {
				zone[Position{r, c}] = true
			}
		}
	}
	return zone
}
