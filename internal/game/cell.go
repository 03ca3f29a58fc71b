package game

import "fmt"

// Position identifies a cell on the grid.
type Position struct {
	Row int
	Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is a single square of the grid. Values returned by the Engine are
// snapshots; mutating them has no effect on the game.
type Cell struct {
	Row           int
	Col           int
	IsMine        bool
	IsRevealed    bool
	IsFlagged     bool
	AdjacentMines int // 0-8, fixed once mines are placed
}

// Position returns the cell's coordinates.
func (c Cell) Position() Position {
	return Position{Row: c.Row, Col: c.Col}
}

// neighbourOffsets lists the eight surrounding directions.
var neighbourOffsets = [8]Position{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// grid is the row-major cell storage owned by an Engine.
type grid struct {
	rows  int
	cols  int
	cells []Cell
}

func newGrid(rows, cols int) grid {
	cells := make([]Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			cells[r*cols+c] = Cell{Row: r, Col: c}
		}
	}
	return grid{rows: rows, cols: cols, cells: cells}
}

func (g *grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// at returns a pointer into the grid, or nil when out of range. Every
// coordinate lookup goes through here.
func (g *grid) at(row, col int) *Cell {
	if !g.inBounds(row, col) {
		return nil
	}
	return &g.cells[row*g.cols+col]
}

// neighbours returns the in-bounds cells around (row, col), clipped at edges
// and corners.
func (g *grid) neighbours(row, col int) []*Cell {
	out := make([]*Cell, 0, len(neighbourOffsets))
	for _, d := range neighbourOffsets {
		if n := g.at(row+d.Row, col+d.Col); n != nil {
			out = append(out, n)
		}
	}
	return out
}

func (g *grid) size() int {
	return g.rows * g.cols
}
