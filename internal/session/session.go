// Package session drives one player's games on an Engine: it applies the
// click rules a front end needs, times each game and records wins.
package session

import (
	"errors"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/gosweeper/internal/config"
	"github.com/lox/gosweeper/internal/game"
	"github.com/lox/gosweeper/internal/leaderboard"
)

// ErrNotWon is returned when recording a game that was not won.
var ErrNotWon = errors.New("game has not been won")

// Option configures a Session.
type Option func(*Session)

// WithClock sets the clock used for the game timer.
func WithClock(clock quartz.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// WithEngineOptions passes options through to the engine.
func WithEngineOptions(opts ...game.EngineOption) Option {
	return func(s *Session) { s.engineOpts = append(s.engineOpts, opts...) }
}

// Session pairs an engine with a game timer.
type Session struct {
	engine     *game.Engine
	difficulty config.Difficulty
	clock      quartz.Clock
	logger     *log.Logger
	engineOpts []game.EngineOption

	started  time.Time
	finished time.Time
	running  bool
	games    int
}

// New creates a session for a difficulty.
func New(difficulty config.Difficulty, opts ...Option) *Session {
	s := &Session{
		difficulty: difficulty,
		clock:      quartz.NewReal(),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.WithPrefix("session")

	engineOpts := append([]game.EngineOption{game.WithLogger(s.logger)}, s.engineOpts...)
	s.engine = game.NewEngine(difficulty.Rows, difficulty.Cols, difficulty.Mines, engineOpts...)
	s.games = 1
	return s
}

// Engine exposes the underlying engine for read access.
func (s *Session) Engine() *game.Engine { return s.engine }

// Difficulty returns the board preset being played.
func (s *Session) Difficulty() config.Difficulty { return s.difficulty }

// Phase returns the engine phase.
func (s *Session) Phase() game.Phase { return s.engine.Phase() }

// GamesStarted counts games including the current one.
func (s *Session) GamesStarted() int { return s.games }

// Click is the primary action on a cell: hidden cells are disclosed and
// revealed numbers are chorded. Clicks are ignored once the game is over.
func (s *Session) Click(row, col int) game.Outcome {
	phase := s.engine.Phase()
	if phase.Terminal() {
		return game.Continue
	}

	cell, ok := s.engine.CellAt(row, col)
	if !ok {
		return game.Continue
	}

	var out game.Outcome
	if cell.IsRevealed {
		if phase == game.Ready {
			return game.Continue
		}
		out = s.engine.Chord(row, col)
	} else {
		if s.started.IsZero() && !cell.IsFlagged {
			s.startTimer()
		}
		out = s.engine.Disclose(row, col)
	}

	s.afterMove(row, col, out)
	return out
}

// Flag toggles a flag. Ignored once the game is over.
func (s *Session) Flag(row, col int) {
	if s.engine.Phase().Terminal() {
		return
	}
	s.engine.ToggleFlag(row, col)
}

func (s *Session) startTimer() {
	s.started = s.clock.Now()
	s.running = true
}

func (s *Session) afterMove(row, col int, out game.Outcome) {
	if !s.engine.Phase().Terminal() {
		return
	}
	s.finished = s.clock.Now()
	s.running = false

	if out == game.MineHit {
		s.logger.Info("Game lost", "row", row, "col", col, "elapsed", s.Elapsed())
	} else {
		s.logger.Info("Game won", "difficulty", s.difficulty.Key, "elapsed", s.Elapsed())
	}
}

// Elapsed is the time since the first disclosure, frozen once the game ends.
func (s *Session) Elapsed() time.Duration {
	switch {
	case s.running:
		return s.clock.Now().Sub(s.started)
	case s.started.IsZero():
		return 0
	default:
		return s.finished.Sub(s.started)
	}
}

// NewGame resets the board and the timer for another game.
func (s *Session) NewGame() {
	s.engine.Reset()
	s.started = time.Time{}
	s.finished = time.Time{}
	s.running = false
	s.games++
}

// Result summarises the current game.
type Result struct {
	Difficulty    config.Difficulty
	Phase         game.Phase
	Elapsed       time.Duration
	CellsRevealed int
}

// Won reports whether the game ended in a win.
func (r Result) Won() bool { return r.Phase == game.Won }

// Result returns the state of the current game.
func (s *Session) Result() Result {
	return Result{
		Difficulty:    s.difficulty,
		Phase:         s.engine.Phase(),
		Elapsed:       s.Elapsed(),
		CellsRevealed: s.engine.CellsRevealed(),
	}
}

// QualifiesForLeaderboard reports whether the current game was won fast
// enough to be kept.
func (s *Session) QualifiesForLeaderboard(board *leaderboard.Board) bool {
	if s.engine.Phase() != game.Won {
		return false
	}
	d := s.difficulty
	return board.IsHighScore(s.Elapsed().Seconds(), d.Key, d.Rows, d.Cols, d.Mines)
}

// Record adds the current win to the leaderboard under player's name.
func (s *Session) Record(board *leaderboard.Board, player string) (bool, error) {
	if s.engine.Phase() != game.Won {
		return false, ErrNotWon
	}
	player = strings.TrimSpace(player)
	if player == "" {
		player = "Anonymous"
	}

	d := s.difficulty
	return board.Add(leaderboard.Entry{
		Player:     player,
		Time:       s.Elapsed().Seconds(),
		Difficulty: d.Key,
		Rows:       d.Rows,
		Cols:       d.Cols,
		Mines:      d.Mines,
	})
}
