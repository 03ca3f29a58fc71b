package statistics

import (
	"math"
	"testing"
)

func TestStatistics_Empty(t *testing.T) {
	stats := &Statistics{}

	if stats.Mean() != 0 {
		t.Errorf("Expected mean of 0 for empty stats, got %f", stats.Mean())
	}
	if stats.Variance() != 0 {
		t.Errorf("Expected variance of 0 for empty stats, got %f", stats.Variance())
	}
	if stats.StdError() != 0 {
		t.Errorf("Expected stderr of 0 for empty stats, got %f", stats.StdError())
	}
	if stats.WinRate() != 0 {
		t.Errorf("Expected win rate of 0 for empty stats, got %f", stats.WinRate())
	}
	if lo, hi := stats.WinRateInterval95(); lo != 0 || hi != 0 {
		t.Errorf("Expected empty win rate interval, got [%f, %f]", lo, hi)
	}
	if stats.Median() != 0 {
		t.Errorf("Expected median of 0 for empty stats, got %f", stats.Median())
	}
	if stats.Percentile(0.5) != 0 {
		t.Errorf("Expected percentile of 0 for empty stats, got %f", stats.Percentile(0.5))
	}
	if err := stats.Validate(); err == nil {
		t.Error("Expected validation error for empty stats")
	}
}

func TestGameResult_Progress(t *testing.T) {
	tests := []struct {
		name   string
		result GameResult
		want   float64
	}{
		{"win", GameResult{Won: true, Revealed: 3, SafeCells: 71}, 1},
		{"half", GameResult{Revealed: 35, SafeCells: 70}, 0.5},
		{"no board", GameResult{}, 0},
		{"clamped", GameResult{Revealed: 90, SafeCells: 71}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.Progress(); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected progress %f, got %f", tt.want, got)
			}
		})
	}
}

func TestStatistics_MultipleGames(t *testing.T) {
	stats := &Statistics{}

	results := []GameResult{
		{Won: true, Moves: 40, Guesses: 1, Revealed: 71, SafeCells: 71},
		{Won: true, Moves: 55, Guesses: 3, Revealed: 71, SafeCells: 71},
		{Won: false, LostOnGuess: true, Moves: 1, Guesses: 1, Revealed: 0, SafeCells: 71},
		{Won: false, LostOnGuess: true, Moves: 20, Guesses: 2, Revealed: 35, SafeCells: 70},
	}
	for _, r := range results {
		stats.Add(r)
	}

	if stats.Games != 4 {
		t.Errorf("Expected 4 games, got %d", stats.Games)
	}
	if stats.WinRate() != 0.5 {
		t.Errorf("Expected win rate of 0.5, got %f", stats.WinRate())
	}
	if stats.CleanWins != 1 {
		t.Errorf("Expected 1 clean win, got %d", stats.CleanWins)
	}
	if stats.LostOnGuess != 2 {
		t.Errorf("Expected 2 losses on guesses, got %d", stats.LostOnGuess)
	}

	expectedMean := (1 + 1 + 0 + 0.5) / 4.0
	if math.Abs(stats.Mean()-expectedMean) > 1e-9 {
		t.Errorf("Expected mean progress of %f, got %f", expectedMean, stats.Mean())
	}
	if stats.MeanMoves() != 29 {
		t.Errorf("Expected 29 mean moves, got %f", stats.MeanMoves())
	}
	if stats.MeanGuesses() != 1.75 {
		t.Errorf("Expected 1.75 mean guesses, got %f", stats.MeanGuesses())
	}
	if stats.MaxMoves != 55 {
		t.Errorf("Expected max moves of 55, got %d", stats.MaxMoves)
	}

	// Sorted progress: 0, 0.5, 1, 1
	if stats.Median() != 0.75 {
		t.Errorf("Expected median of 0.75, got %f", stats.Median())
	}

	if err := stats.Validate(); err != nil {
		t.Errorf("Expected valid stats, got %v", err)
	}
}

func TestStatistics_Percentiles(t *testing.T) {
	stats := &Statistics{}

	// Progress values: 0, 0.25, 0.5, 0.75, 1
	for i := 0; i <= 4; i++ {
		stats.Add(GameResult{Won: i == 4, Revealed: i, SafeCells: 4})
	}

	tests := []struct {
		percentile float64
		expected   float64
	}{
		{0.0, 0.0},
		{0.25, 0.25},
		{0.5, 0.5},
		{0.75, 0.75},
		{1.0, 1.0},
	}

	for _, test := range tests {
		result := stats.Percentile(test.percentile)
		if math.Abs(result-test.expected) > 1e-9 {
			t.Errorf("Percentile %.2f: expected %f, got %f", test.percentile, test.expected, result)
		}
	}
}

func TestStatistics_ConfidenceInterval(t *testing.T) {
	stats := &Statistics{}

	for i := 0; i <= 4; i++ {
		stats.Add(GameResult{Revealed: i, SafeCells: 5})
	}

	low, high := stats.ConfidenceInterval95()
	mean := stats.Mean()

	// CI should be symmetric around the mean
	if math.Abs((low+high)/2-mean) > 1e-9 {
		t.Errorf("Confidence interval not symmetric around mean. Low: %f, High: %f, Mean: %f", low, high, mean)
	}
	if high-low <= 0 {
		t.Errorf("Confidence interval should be positive width, got %f", high-low)
	}
}

func TestStatistics_WinRateInterval(t *testing.T) {
	stats := &Statistics{}
	for i := 0; i < 100; i++ {
		stats.Add(GameResult{Won: i%4 == 0, SafeCells: 10})
	}

	low, high := stats.WinRateInterval95()
	if low >= 0.25 || high <= 0.25 {
		t.Errorf("Expected interval to contain 0.25, got [%f, %f]", low, high)
	}
	// Wilson bounds for 25/100
	if math.Abs(low-0.1754) > 1e-3 || math.Abs(high-0.3430) > 1e-3 {
		t.Errorf("Unexpected Wilson bounds [%f, %f]", low, high)
	}

	all := &Statistics{}
	for i := 0; i < 10; i++ {
		all.Add(GameResult{Won: true})
	}
	low, high = all.WinRateInterval95()
	if high < 0.999 || high > 1 || low <= 0.5 {
		t.Errorf("Expected interval near 1 for all wins, got [%f, %f]", low, high)
	}
}

func TestStatistics_Merge(t *testing.T) {
	a := &Statistics{}
	b := &Statistics{}
	combined := &Statistics{}

	for i, r := range []GameResult{
		{Won: true, Moves: 30, Guesses: 1},
		{Moves: 5, Guesses: 2, LostOnGuess: true, Revealed: 4, SafeCells: 8},
		{Won: true, Moves: 70, Guesses: 4},
	} {
		if i%2 == 0 {
			a.Add(r)
		} else {
			b.Add(r)
		}
		combined.Add(r)
	}

	a.Merge(b)
	if a.Games != combined.Games || a.Wins != combined.Wins || a.Losses != combined.Losses {
		t.Errorf("Merged counts differ: %+v vs %+v", a, combined)
	}
	if math.Abs(a.Mean()-combined.Mean()) > 1e-9 {
		t.Errorf("Merged mean %f differs from %f", a.Mean(), combined.Mean())
	}
	if a.MaxMoves != 70 {
		t.Errorf("Expected merged max moves of 70, got %d", a.MaxMoves)
	}
	if err := a.Validate(); err != nil {
		t.Errorf("Expected merged stats to validate, got %v", err)
	}
}

func TestStatistics_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Statistics)
	}{
		{"unbalanced", func(s *Statistics) { s.Wins++ }},
		{"values", func(s *Statistics) { s.Values = s.Values[:1] }},
		{"lost on guess", func(s *Statistics) { s.LostOnGuess = 5 }},
		{"clean wins", func(s *Statistics) { s.CleanWins = 5 }},
		{"guesses", func(s *Statistics) { s.TotalGuesses = s.TotalMoves + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := &Statistics{}
			stats.Add(GameResult{Won: true, Moves: 10, Guesses: 1})
			stats.Add(GameResult{Moves: 3, Guesses: 1, SafeCells: 10})
			if err := stats.Validate(); err != nil {
				t.Fatalf("Expected baseline to validate, got %v", err)
			}

			tt.mutate(stats)
			if err := stats.Validate(); err == nil {
				t.Error("Expected validation error")
			}
		})
	}
}
