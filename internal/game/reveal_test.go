package game

import (
	"testing"

	"github.com/lox/gosweeper/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscloseNumberedCellDoesNotCascade(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 5, 5, 3, Position{0, 0}, Position{0, 1}, Position{1, 0})

	out := e.Disclose(1, 1)

	assert.Equal(t, Continue, out)
	c, ok := e.CellAt(1, 1)
	require.True(t, ok)
	assert.True(t, c.IsRevealed)
	assert.Equal(t, 3, c.AdjacentMines)
	assert.Equal(t, 1, e.CellsRevealed())
	assert.Equal(t, 1, countWhere(e, isRevealed))
	assert.Equal(t, Playing, e.Phase())
}

func TestDiscloseAllSafeCellsWins(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 3, 3, 2, Position{0, 0}, Position{0, 1})

	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			if (r == 0 && c == 0) || (r == 0 && c == 1) {
				continue
			}
			assert.Equal(t, Continue, e.Disclose(r, c), "(%d,%d)", r, c)
		}
	}

	assert.Equal(t, Won, e.Phase())
	assert.Equal(t, 7, e.CellsRevealed())
	for _, p := range []Position{{0, 0}, {0, 1}} {
		c, _ := e.CellAt(p.Row, p.Col)
		assert.True(t, c.IsFlagged, "mine %v auto-flagged", p)
		assert.False(t, c.IsRevealed, "mine %v stays hidden", p)
	}
	assert.Equal(t, 2, e.FlagsPlaced())
	assert.Equal(t, 0, e.RemainingMines())
}

func TestDiscloseOutOfBounds(t *testing.T) {
	t.Parallel()

	for _, p := range []Position{{-1, -1}, {100, 100}, {0, 9}, {9, 0}, {-1, 3}} {
		e := newTestEngine(t, 9, 9, 10)
		before := e.Snapshot()

		assert.Equal(t, Continue, e.Disclose(p.Row, p.Col), "%v", p)
		assert.Equal(t, before, e.Snapshot(), "%v", p)
		assert.Equal(t, Ready, e.Phase())
		assert.False(t, e.MinesPlaced(), "out-of-range click must not mine the board")
	}
}

func TestDiscloseFlaggedCell(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 5, 5, 3)
	e.ToggleFlag(2, 2)

	out := e.Disclose(2, 2)

	assert.Equal(t, Continue, out)
	c, _ := e.CellAt(2, 2)
	assert.True(t, c.IsFlagged)
	assert.False(t, c.IsRevealed)
	assert.Zero(t, e.CellsRevealed())
	assert.False(t, e.MinesPlaced())
}

func TestDiscloseTwiceIsNoOp(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 5, 5, 3, Position{0, 0}, Position{0, 1}, Position{1, 0})
	e.Disclose(3, 3)
	before := e.Snapshot()
	revealed := e.CellsRevealed()

	assert.Equal(t, Continue, e.Disclose(3, 3))
	assert.Equal(t, before, e.Snapshot())
	assert.Equal(t, revealed, e.CellsRevealed())
}

func TestDiscloseMineLoses(t *testing.T) {
	t.Parallel()

	mines := []Position{{0, 0}, {2, 3}, {4, 4}}
	e := newTestEngine(t, 5, 5, 3, mines...)
	e.Disclose(0, 4)
	require.Equal(t, Playing, e.Phase())

	out := e.Disclose(2, 3)

	assert.Equal(t, MineHit, out)
	assert.Equal(t, Lost, e.Phase())
	for _, p := range mines {
		c, _ := e.CellAt(p.Row, p.Col)
		assert.True(t, c.IsRevealed, "mine %v revealed on loss", p)
	}
}

func TestCascadeStopsAtMineWall(t *testing.T) {
	t.Parallel()

	wall := []Position{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}}
	e := newTestEngine(t, 5, 5, 5, wall...)

	assert.Equal(t, Continue, e.Disclose(0, 0))

	assert.Equal(t, 10, e.CellsRevealed())
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			cell, _ := e.CellAt(r, c)
			assert.Equal(t, c < 2, cell.IsRevealed, "(%d,%d)", r, c)
		}
	}
	assert.Equal(t, Playing, e.Phase())
}

func TestCascadeRevealsWholeBoard(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 5, 5, 1, Position{4, 4})

	assert.Equal(t, Continue, e.Disclose(0, 0))

	assert.Equal(t, 24, e.CellsRevealed())
	assert.Equal(t, Won, e.Phase())
	mine, _ := e.CellAt(4, 4)
	assert.False(t, mine.IsRevealed)
	assert.True(t, mine.IsFlagged)
}

func TestCascadeMatchesFloodFill(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 30; seed++ {
		e := NewEngine(16, 30, 99, WithRNG(randutil.New(seed)))
		e.PlaceMines(0, 0)
		grid := e.Snapshot()

		// Pick the first zero cell in row-major order as the start.
		var start *Cell
		for r := range grid {
			for c := range grid[r] {
				if !grid[r][c].IsMine && grid[r][c].AdjacentMines == 0 {
					start = &grid[r][c]
					break
				}
			}
			if start != nil {
				break
			}
		}
		require.NotNil(t, start)

		// Reference: recursive flood fill over the snapshot.
		want := map[Position]bool{}
		var fill func(r, c int)
		fill = func(r, c int) {
			p := Position{r, c}
			if r < 0 || r >= 16 || c < 0 || c >= 30 || want[p] || grid[r][c].IsMine {
				return
			}
			want[p] = true
			if grid[r][c].AdjacentMines > 0 {
				return
			}
			for _, d := range neighbourOffsets {
				fill(r+d.Row, c+d.Col)
			}
		}
		fill(start.Row, start.Col)

		e.Disclose(start.Row, start.Col)

		got := map[Position]bool{}
		for _, row := range e.Snapshot() {
			for _, c := range row {
				if c.IsRevealed {
					require.False(t, c.IsMine, "seed %d: cascade revealed mine %v", seed, c.Position())
					got[c.Position()] = true
				}
			}
		}
		assert.Equal(t, want, got, "seed %d", seed)
		assert.Equal(t, len(want), e.CellsRevealed(), "seed %d", seed)
	}
}

func TestCascadeSkipsFlaggedCells(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 5, 5, 1, Position{4, 4})
	e.ToggleFlag(0, 4)

	e.Disclose(0, 0)

	c, _ := e.CellAt(0, 4)
	assert.True(t, c.IsFlagged)
	assert.False(t, c.IsRevealed)
	assert.Equal(t, 23, e.CellsRevealed())
	assert.Equal(t, Playing, e.Phase())
}

func TestCascadeOnLargeOpenBoard(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, 500, 500, 0)
	e.Disclose(250, 250)

	assert.Equal(t, 500*500, e.CellsRevealed())
	assert.Equal(t, Won, e.Phase())
}

func TestChord(t *testing.T) {
	t.Parallel()

	// Single mine in the corner; (1,1) shows 1.
	setup := func(t *testing.T) *Engine {
		e := newTestEngine(t, 3, 3, 1, Position{0, 0})
		require.Equal(t, Continue, e.Disclose(1, 1))
		c, _ := e.CellAt(1, 1)
		require.Equal(t, 1, c.AdjacentMines)
		require.Equal(t, 1, e.CellsRevealed())
		return e
	}

	t.Run("no flags is a no-op", func(t *testing.T) {
		e := setup(t)
		before := e.Snapshot()

		assert.Equal(t, Continue, e.Chord(1, 1))
		assert.Equal(t, before, e.Snapshot())
	})

	t.Run("too many flags is a no-op", func(t *testing.T) {
		e := setup(t)
		e.ToggleFlag(0, 0)
		e.ToggleFlag(2, 2)
		before := e.Snapshot()

		assert.Equal(t, Continue, e.Chord(1, 1))
		assert.Equal(t, before, e.Snapshot())
	})

	t.Run("correct flag reveals the rest and wins", func(t *testing.T) {
		e := setup(t)
		e.ToggleFlag(0, 0)

		assert.Equal(t, Continue, e.Chord(1, 1))
		assert.Equal(t, 8, e.CellsRevealed())
		assert.Equal(t, Won, e.Phase())
		mine, _ := e.CellAt(0, 0)
		assert.False(t, mine.IsRevealed)
		assert.True(t, mine.IsFlagged)
	})

	t.Run("misplaced flag hits the mine", func(t *testing.T) {
		e := setup(t)
		e.ToggleFlag(2, 2)

		assert.Equal(t, MineHit, e.Chord(1, 1))
		assert.Equal(t, Lost, e.Phase())
		mine, _ := e.CellAt(0, 0)
		assert.True(t, mine.IsRevealed)
		wrong, _ := e.CellAt(2, 2)
		assert.True(t, wrong.IsFlagged)
		assert.False(t, wrong.IsRevealed)
	})

	t.Run("hidden target is a no-op", func(t *testing.T) {
		e := setup(t)
		e.ToggleFlag(0, 0)
		before := e.Snapshot()

		assert.Equal(t, Continue, e.Chord(2, 2))
		assert.Equal(t, before, e.Snapshot())
	})

	t.Run("out of bounds is a no-op", func(t *testing.T) {
		e := setup(t)
		before := e.Snapshot()

		assert.Equal(t, Continue, e.Chord(-1, 7))
		assert.Equal(t, before, e.Snapshot())
	})
}

func TestChordOnZeroCellIsNoOp(t *testing.T) {
	t.Parallel()

	wall := []Position{{0, 2}, {1, 2}, {2, 2}, {3, 2}, {4, 2}}
	e := newTestEngine(t, 5, 5, 5, wall...)
	e.Disclose(0, 0)
	before := e.Snapshot()

	assert.Equal(t, Continue, e.Chord(0, 0))
	assert.Equal(t, before, e.Snapshot())
}

func TestChordEndStateIndependentOfOrder(t *testing.T) {
	t.Parallel()

	// (1,1) shows 2 with mines at (0,0) and (2,2). Flagging two wrong
	// cells lets the chord reach both mines; whichever fires first the
	// board ends Lost with every mine showing.
	e := newTestEngine(t, 3, 3, 2, Position{0, 0}, Position{2, 2})
	e.Disclose(1, 1)
	e.ToggleFlag(0, 1)
	e.ToggleFlag(1, 0)

	assert.Equal(t, MineHit, e.Chord(1, 1))
	assert.Equal(t, Lost, e.Phase())
	for _, p := range []Position{{0, 0}, {2, 2}} {
		c, _ := e.CellAt(p.Row, p.Col)
		assert.True(t, c.IsRevealed)
	}
}
