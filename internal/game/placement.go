package game

import "github.com/lox/gosweeper/internal/randutil"

// PlaceMines mines the board, keeping (safeRow, safeCol) and its neighbours
// clear. If fewer cells remain outside that zone than the requested mine
// count, every remaining cell becomes a mine. Calling it again after the board
// has been mined does nothing.
func (e *Engine) PlaceMines(safeRow, safeCol int) {
	if e.minesPlaced {
		return
	}

	safe := map[Position]bool{{safeRow, safeCol}: true}
	for _, n := range e.grid.neighbours(safeRow, safeCol) {
		safe[n.Position()] = true
	}

	candidates := make([]Position, 0, e.grid.size())
	for _, c := range e.grid.cells {
		if !safe[c.Position()] {
			candidates = append(candidates, c.Position())
		}
	}

	chosen := randutil.Sample(e.rng, candidates, e.mineCount)
	for _, p := range chosen {
		e.grid.at(p.Row, p.Col).IsMine = true
	}

	if len(chosen) < e.mineCount {
		e.logger.Warn("Mine count capped by safe zone",
			"requested", e.mineCount, "placed", len(chosen))
	}
	e.finishPlacement(len(chosen))
}

// PlaceMinesAt mines exactly the given positions. Out-of-range and repeated
// positions are ignored. Like PlaceMines it only takes effect once per game.
func (e *Engine) PlaceMinesAt(positions ...Position) {
	if e.minesPlaced {
		return
	}

	placed := 0
	for _, p := range positions {
		c := e.grid.at(p.Row, p.Col)
		if c == nil || c.IsMine {
			continue
		}
		c.IsMine = true
		placed++
	}
	e.finishPlacement(placed)
}

func (e *Engine) finishPlacement(placed int) {
	e.computeAdjacency()
	e.minesPlaced = true
	e.phase = Playing
	e.logger.Debug("Mines placed", "count", placed)
}

// computeAdjacency fills AdjacentMines for every non-mine cell in one pass.
func (e *Engine) computeAdjacency() {
	for i := range e.grid.cells {
		c := &e.grid.cells[i]
		if c.IsMine {
			continue
		}
		count := 0
		for _, n := range e.grid.neighbours(c.Row, c.Col) {
			if n.IsMine {
				count++
			}
		}
		c.AdjacentMines = count
	}
}
