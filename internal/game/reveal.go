package game

// Disclose reveals the cell at (row, col). The first disclosure of a game
// places the mines around it. Out-of-range, flagged and already revealed cells
// are left alone, as is any cell once the game has ended.
func (e *Engine) Disclose(row, col int) Outcome {
	if e.phase.Terminal() {
		return Continue
	}
	c := e.grid.at(row, col)
	if c == nil || c.IsRevealed || c.IsFlagged {
		return Continue
	}

	if !e.minesPlaced {
		e.PlaceMines(row, col)
	}

	c.IsRevealed = true
	e.cellsRevealed++

	if c.IsMine {
		e.revealAllMines()
		e.phase = Lost
		e.logger.Debug("Mine hit", "row", row, "col", col)
		return MineHit
	}

	if c.AdjacentMines == 0 {
		e.cascade(c)
	}

	e.checkWin()
	return Continue
}

// cascade reveals the connected zero region around start plus its numbered
// border. It uses an explicit stack so depth never depends on board size.
// Each cell is pushed at most once because it is marked revealed before it
// goes on the stack.
func (e *Engine) cascade(start *Cell) {
	stack := []*Cell{start}
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range e.grid.neighbours(c.Row, c.Col) {
			if n.IsRevealed || n.IsFlagged || n.IsMine {
				continue
			}
			n.IsRevealed = true
			e.cellsRevealed++
			if n.AdjacentMines == 0 {
				stack = append(stack, n)
			}
		}
	}
}

// revealAllMines exposes every mine for display after a loss. These reveals
// are not counted towards cellsRevealed.
func (e *Engine) revealAllMines() {
	for i := range e.grid.cells {
		if e.grid.cells[i].IsMine {
			e.grid.cells[i].IsRevealed = true
		}
	}
}

// Chord discloses every hidden, unflagged neighbour of a revealed number once
// the player has flagged exactly that many neighbours. Any other situation is
// a no-op. The first mine hit stops the chord; which mine that is depends on
// neighbour order, but the resulting Lost board is the same either way.
func (e *Engine) Chord(row, col int) Outcome {
	if e.phase.Terminal() {
		return Continue
	}
	c := e.grid.at(row, col)
	if c == nil || !c.IsRevealed || c.IsMine || c.AdjacentMines == 0 {
		return Continue
	}

	if e.FlaggedNeighbours(row, col) != c.AdjacentMines {
		return Continue
	}

	for _, n := range e.grid.neighbours(row, col) {
		if n.IsRevealed || n.IsFlagged {
			continue
		}
		if e.Disclose(n.Row, n.Col) == MineHit {
			return MineHit
		}
	}
	return Continue
}
