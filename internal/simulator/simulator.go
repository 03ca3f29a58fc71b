package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/lox/gosweeper/internal/bot"
	"github.com/lox/gosweeper/internal/config"
	"github.com/lox/gosweeper/internal/game"
	"github.com/lox/gosweeper/internal/randutil"
	"github.com/lox/gosweeper/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// botSeedSalt separates the bot's guesses from the engine's mine layout
const botSeedSalt = 0x5eed

// Config holds configuration for running simulations
type Config struct {
	Games      int
	Difficulty config.Difficulty
	Seed       int64
	Workers    int // Defaults to the CPU count, capped at 8
	Logger     *log.Logger
}

// Simulator plays many bot games and aggregates the outcomes
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Workers <= 0 {
		config.Workers = min(runtime.NumCPU(), 8)
	}
	return &Simulator{config: config}
}

// Run plays every game and returns the aggregated statistics. Game i always
// uses seed Seed+i, so results do not depend on the worker count.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("invalid games count: %d", s.config.Games)
	}

	results := make([]statistics.GameResult, s.config.Games)
	jobs := make(chan int)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		for i := range results {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < s.config.Workers; w++ {
		g.Go(func() error {
			for i := range jobs {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[i] = s.playGame(s.config.Seed + int64(i))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("simulation interrupted: %w", err)
	}

	stats := &statistics.Statistics{}
	for _, r := range results {
		stats.Add(r)
	}

	// Validate statistics before returning
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	s.config.Logger.Info("Simulation complete",
		"games", stats.Games,
		"wins", stats.Wins,
		"difficulty", s.config.Difficulty.Key)
	return stats, nil
}

// playGame runs one bot game to completion on its own engine
func (s *Simulator) playGame(seed int64) statistics.GameResult {
	d := s.config.Difficulty
	engine := game.NewEngine(d.Rows, d.Cols, d.Mines,
		game.WithRNG(randutil.New(seed)),
		game.WithLogger(s.config.Logger))
	player := bot.New(bot.WithRNG(randutil.New(seed^botSeedSalt)), bot.WithLogger(s.config.Logger))

	result := statistics.GameResult{
		Seed:      seed,
		SafeCells: d.Rows*d.Cols - d.Mines,
	}

	for !engine.Phase().Terminal() {
		move, ok := player.NextMove(engine)
		if !ok {
			break
		}
		result.Moves++
		if move.Guess() {
			result.Guesses++
		}

		if bot.Apply(engine, move) == game.MineHit {
			result.LostOnGuess = move.Guess()
		}
	}

	result.Won = engine.Phase() == game.Won
	result.Revealed = engine.CellsRevealed()
	if !result.Won && result.Revealed > 0 {
		// The fatal mine is counted as revealed
		result.Revealed--
	}

	s.config.Logger.Debug("Game finished", "seed", seed, "won", result.Won, "moves", result.Moves)
	return result
}

// RunSimulation is a convenience function for running a simulation with basic parameters
func RunSimulation(ctx context.Context, games int, difficulty config.Difficulty, seed int64, logger *log.Logger) (*statistics.Statistics, error) {
	return New(Config{
		Games:      games,
		Difficulty: difficulty,
		Seed:       seed,
		Logger:     logger,
	}).Run(ctx)
}

// PrintSummary writes a summary of simulation results
func PrintSummary(w io.Writer, stats *statistics.Statistics, difficulty config.Difficulty) {
	low, high := stats.WinRateInterval95()
	pLow, pHigh := stats.ConfidenceInterval95()

	fmt.Fprintf(w, "\n=== RESULTS: %s ===\n", difficulty)
	fmt.Fprintf(w, "Games played: %d\n", stats.Games)
	fmt.Fprintf(w, "Wins: %d (%.1f%%), 95%% CI [%.1f%%, %.1f%%]\n",
		stats.Wins, stats.WinRate()*100, low*100, high*100)
	fmt.Fprintf(w, "Clean wins (no guesses after the opening): %d\n", stats.CleanWins)

	fmt.Fprintf(w, "\n=== PROGRESS ===\n")
	fmt.Fprintf(w, "Mean: %.3f, Median: %.3f, Std Dev: %.3f\n", stats.Mean(), stats.Median(), stats.StdDev())
	fmt.Fprintf(w, "95%% CI: [%.3f, %.3f]\n", pLow, pHigh)
	fmt.Fprintf(w, "Percentiles: P5=%.3f, P25=%.3f, P75=%.3f, P95=%.3f\n",
		stats.Percentile(0.05), stats.Percentile(0.25), stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Fprintf(w, "\n=== MOVES ===\n")
	fmt.Fprintf(w, "Mean moves: %.1f (max %d)\n", stats.MeanMoves(), stats.MaxMoves)
	fmt.Fprintf(w, "Mean guesses: %.2f\n", stats.MeanGuesses())
	if stats.Losses > 0 {
		fmt.Fprintf(w, "Losses on a guess: %d of %d\n", stats.LostOnGuess, stats.Losses)
	}
}
