// Package game implements the minesweeper game-state engine.
//
// The main type is Engine, which owns a fixed rows×cols grid of cells and
// manages deferred mine placement, cascading reveal, chording, flag
// bookkeeping and the Ready/Playing/Won/Lost state machine.
//
// # Basic Usage
//
//	e := game.NewEngine(9, 9, 10)
//	if e.Disclose(4, 4) == game.MineHit {
//	    // never happens on the first click
//	}
//	e.ToggleFlag(0, 0)
//	if e.Phase() == game.Won {
//	    // record the result
//	}
//
// Mines are not placed until the first disclosure. The disclosed cell and its
// neighbours are always mine-free.
//
// # Deterministic Testing
//
// Inject a seeded generator to reproduce a layout:
//
//	e := game.NewEngine(16, 30, 99, game.WithRNG(randutil.New(42)))
//
// Or place mines explicitly before the first click:
//
//	e := game.NewEngine(5, 5, 3)
//	e.PlaceMinesAt(game.Position{0, 0}, game.Position{0, 1}, game.Position{1, 0})
//
// # Concurrency
//
// An Engine is not safe for concurrent use. Each goroutine that plays a game
// owns its own Engine; every operation runs to completion before returning.
package game
