package game

// ToggleFlag flips the flag on a hidden cell. Revealed and out-of-range cells
// are ignored, as is any cell once the game has ended.
func (e *Engine) ToggleFlag(row, col int) {
	if e.phase.Terminal() {
		return
	}
	c := e.grid.at(row, col)
	if c == nil || c.IsRevealed {
		return
	}

	c.IsFlagged = !c.IsFlagged
	if c.IsFlagged {
		e.flagsPlaced++
	} else {
		e.flagsPlaced--
	}
}

// FlaggedNeighbours counts flags around (row, col). Out-of-range coordinates
// count zero.
func (e *Engine) FlaggedNeighbours(row, col int) int {
	if !e.grid.inBounds(row, col) {
		return 0
	}
	n := 0
	for _, c := range e.grid.neighbours(row, col) {
		if c.IsFlagged {
			n++
		}
	}
	return n
}
