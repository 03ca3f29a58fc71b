// Package randutil centralises how the game derives random sources, so that
// production play is unpredictable and tests are reproducible from a seed.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Both PCG seeds are derived from the one value so every call site that shares
// a seed replays the same mine layout.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewTimeSeeded returns a generator seeded from the wall clock.
func NewTimeSeeded() *rand.Rand {
	return New(time.Now().UnixNano())
}

// Sample picks k items from items uniformly without replacement using a
// partial Fisher-Yates shuffle over a copy. k is capped at len(items); the
// input slice is never reordered.
func Sample[T any](rng *rand.Rand, items []T, k int) []T {
	if k <= 0 || len(items) == 0 {
		return nil
	}
	k = min(k, len(items))

	pool := make([]T, len(items))
	copy(pool, items)

	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
