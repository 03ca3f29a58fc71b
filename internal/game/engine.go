package game

import (
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/gosweeper/internal/randutil"
)

// Phase is the coarse state of a game.
type Phase int

const (
	Ready Phase = iota
	Playing
	Won
	Lost
)

func (p Phase) String() string {
	switch p {
	case Ready:
		return "ready"
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further moves are accepted.
func (p Phase) Terminal() bool {
	return p == Won || p == Lost
}

// Outcome is the result of a disclosure or chord.
type Outcome int

const (
	Continue Outcome = iota
	MineHit
)

func (o Outcome) String() string {
	if o == MineHit {
		return "mine_hit"
	}
	return "continue"
}

// EngineOption configures an Engine during creation.
type EngineOption func(*Engine)

// WithRNG sets the generator used for mine placement. Default is time-seeded.
func WithRNG(rng *rand.Rand) EngineOption {
	return func(e *Engine) {
		if rng != nil {
			e.rng = rng
		}
	}
}

// WithLogger sets the logger. Default discards all output.
func WithLogger(logger *log.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger.WithPrefix("engine")
		}
	}
}

// Engine owns a single grid and runs one game at a time on it.
type Engine struct {
	grid      grid
	mineCount int

	minesPlaced   bool
	flagsPlaced   int
	cellsRevealed int
	phase         Phase

	rng    *rand.Rand
	logger *log.Logger
}

// NewEngine creates an engine with every cell hidden and no mines placed.
// Dimensions must be positive; a negative mine count is treated as zero.
func NewEngine(rows, cols, mineCount int, opts ...EngineOption) *Engine {
	if rows <= 0 || cols <= 0 {
		panic("rows and cols must be positive")
	}

	e := &Engine{
		grid:      newGrid(rows, cols),
		mineCount: max(mineCount, 0),
		phase:     Ready,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = randutil.NewTimeSeeded()
	}
	if e.logger == nil {
		e.logger = log.New(io.Discard)
	}
	return e
}

// Rows returns the grid height.
func (e *Engine) Rows() int { return e.grid.rows }

// Cols returns the grid width.
func (e *Engine) Cols() int { return e.grid.cols }

// MineCount returns the requested number of mines.
func (e *Engine) MineCount() int { return e.mineCount }

// MinesPlaced reports whether the board has been mined.
func (e *Engine) MinesPlaced() bool { return e.minesPlaced }

// FlagsPlaced returns the number of flags currently on the board.
func (e *Engine) FlagsPlaced() int { return e.flagsPlaced }

// CellsRevealed returns how many cells have been disclosed this game.
func (e *Engine) CellsRevealed() int { return e.cellsRevealed }

// Phase returns the current game phase.
func (e *Engine) Phase() Phase { return e.phase }

// RemainingMines is the mine count minus flags placed. It goes negative
// when the player over-flags.
func (e *Engine) RemainingMines() int {
	return e.mineCount - e.flagsPlaced
}

// CellAt returns a snapshot of the cell, or false when the coordinates are
// outside the grid.
func (e *Engine) CellAt(row, col int) (Cell, bool) {
	c := e.grid.at(row, col)
	if c == nil {
		return Cell{}, false
	}
	return *c, true
}

// Snapshot copies the whole grid, indexed [row][col].
func (e *Engine) Snapshot() [][]Cell {
	out := make([][]Cell, e.grid.rows)
	for r := range out {
		out[r] = make([]Cell, e.grid.cols)
		copy(out[r], e.grid.cells[r*e.grid.cols:(r+1)*e.grid.cols])
	}
	return out
}

// Reset discards all cell state and mine placement and returns to Ready.
func (e *Engine) Reset() {
	e.grid = newGrid(e.grid.rows, e.grid.cols)
	e.minesPlaced = false
	e.flagsPlaced = 0
	e.cellsRevealed = 0
	e.phase = Ready
	e.logger.Debug("Game reset", "rows", e.grid.rows, "cols", e.grid.cols, "mines", e.mineCount)
}

// checkWin moves to Won once every non-mine cell has been revealed and flags
// any mine the player left unflagged.
func (e *Engine) checkWin() {
	if e.phase.Terminal() {
		return
	}
	if e.cellsRevealed < e.grid.size()-e.mineCount {
		return
	}

	e.phase = Won
	for i := range e.grid.cells {
		c := &e.grid.cells[i]
		if c.IsMine && !c.IsFlagged {
			c.IsFlagged = true
			e.flagsPlaced++
		}
	}
	e.logger.Debug("Game won", "revealed", e.cellsRevealed)
}
