package statistics

import (
	"fmt"
	"math"
	"sort"
)

// GameResult represents the outcome of a single automated game
type GameResult struct {
	Seed        int64 // RNG seed for this game (for replay)
	Won         bool  // Did the bot clear the board?
	LostOnGuess bool  // Was the fatal open a guess?
	Moves       int   // Moves applied, opens and flags
	Guesses     int   // Opens not forced by visible numbers
	Revealed    int   // Safe cells revealed when the game ended
	SafeCells   int   // Safe cells on the board
}

// Progress is the fraction of safe cells revealed, 1 for a win
func (r GameResult) Progress() float64 {
	if r.Won {
		return 1
	}
	if r.SafeCells <= 0 {
		return 0
	}
	return math.Min(1, float64(r.Revealed)/float64(r.SafeCells))
}

// Statistics tracks results across many simulated games
type Statistics struct {
	Games  int
	Sum    float64   // Sum of progress values
	Sum2   float64   // Sum of squares for variance calculation
	Values []float64 // Store all values for median/percentile calculation

	Wins        int
	Losses      int
	LostOnGuess int // Losses caused by a guess rather than a logic move

	TotalMoves   int
	TotalGuesses int
	MaxMoves     int

	// Games won without a single guess after the opening click
	CleanWins int
}

// Mean returns the mean progress per game
func (s *Statistics) Mean() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.Sum / float64(s.Games)
}

// Variance returns the sample variance of progress
func (s *Statistics) Variance() float64 {
	if s.Games < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Sum2 - float64(s.Games)*mean*mean) / float64(s.Games-1)
}

// StdDev returns the sample standard deviation of progress
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(math.Max(0, s.Variance()))
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Games == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Games))
}

// ConfidenceInterval95 returns the 95% confidence interval for mean progress
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// WinRate returns the fraction of games won
func (s *Statistics) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// WinRateInterval95 returns the Wilson score interval for the win rate
func (s *Statistics) WinRateInterval95() (float64, float64) {
	if s.Games == 0 {
		return 0, 0
	}
	const z = 1.96
	n := float64(s.Games)
	p := s.WinRate()

	denom := 1 + z*z/n
	centre := (p + z*z/(2*n)) / denom
	margin := z * math.Sqrt(p*(1-p)/n+z*z/(4*n*n)) / denom
	return math.Max(0, centre-margin), math.Min(1, centre+margin)
}

// MeanMoves returns the average number of moves per game
func (s *Statistics) MeanMoves() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalMoves) / float64(s.Games)
}

// MeanGuesses returns the average number of guesses per game
func (s *Statistics) MeanGuesses() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.TotalGuesses) / float64(s.Games)
}

// Add incorporates a new game result into the statistics
func (s *Statistics) Add(result GameResult) {
	progress := result.Progress()
	s.Games++
	s.Sum += progress
	s.Sum2 += progress * progress
	s.Values = append(s.Values, progress)

	if result.Won {
		s.Wins++
		// The opening click is always a guess
		if result.Guesses <= 1 {
			s.CleanWins++
		}
	} else {
		s.Losses++
		if result.LostOnGuess {
			s.LostOnGuess++
		}
	}

	s.TotalMoves += result.Moves
	s.TotalGuesses += result.Guesses
	if result.Moves > s.MaxMoves {
		s.MaxMoves = result.Moves
	}
}

// Merge folds another set of statistics into s
func (s *Statistics) Merge(other *Statistics) {
	s.Games += other.Games
	s.Sum += other.Sum
	s.Sum2 += other.Sum2
	s.Values = append(s.Values, other.Values...)
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.LostOnGuess += other.LostOnGuess
	s.TotalMoves += other.TotalMoves
	s.TotalGuesses += other.TotalGuesses
	s.CleanWins += other.CleanWins
	if other.MaxMoves > s.MaxMoves {
		s.MaxMoves = other.MaxMoves
	}
}

// Median returns the median progress
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the progress at the given percentile (0.0 to 1.0)
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1

	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// IsLedgerBalanced checks that every game ended in exactly one of win or loss
func (s *Statistics) IsLedgerBalanced() bool {
	return s.Wins+s.Losses == s.Games
}

// Validate performs consistency checks on the collected data
func (s *Statistics) Validate() error {
	if !s.IsLedgerBalanced() {
		return fmt.Errorf("ledger mismatch: games=%d, wins=%d, losses=%d", s.Games, s.Wins, s.Losses)
	}

	if s.Games <= 0 {
		return fmt.Errorf("invalid games count: %d", s.Games)
	}

	if len(s.Values) != s.Games {
		return fmt.Errorf("values array length (%d) does not match games count (%d)", len(s.Values), s.Games)
	}

	if s.LostOnGuess > s.Losses {
		return fmt.Errorf("losses on guess (%d) exceeds total losses (%d)", s.LostOnGuess, s.Losses)
	}

	if s.CleanWins > s.Wins {
		return fmt.Errorf("clean wins (%d) exceeds total wins (%d)", s.CleanWins, s.Wins)
	}

	if s.TotalGuesses > s.TotalMoves {
		return fmt.Errorf("guesses (%d) exceed moves (%d)", s.TotalGuesses, s.TotalMoves)
	}

	return nil
}
