package leaderboard

import (
	"fmt"
	"math"
)

// FormatDuration renders whole minutes and seconds in words, e.g.
// "2 minutes 1 second" or "42 seconds".
func FormatDuration(seconds float64) string {
	minutes, secs := split(seconds)
	if minutes > 0 {
		return fmt.Sprintf("%d %s %d %s", minutes, plural(minutes, "minute"), secs, plural(secs, "second"))
	}
	return fmt.Sprintf("%d %s", secs, plural(secs, "second"))
}

// FormatClock renders a timer display such as "03:07".
func FormatClock(seconds float64) string {
	minutes, secs := split(seconds)
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

func split(seconds float64) (int, int) {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}
	total := int(seconds)
	return total / 60, total % 60
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
