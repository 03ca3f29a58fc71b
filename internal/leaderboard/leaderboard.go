// Package leaderboard keeps the fastest winning times for each board shape
// and persists them as JSON.
package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/lox/gosweeper/internal/fileutil"
)

// DefaultMaxEntries is how many times are kept per board shape.
const DefaultMaxEntries = 10

// Entry is a single recorded win.
type Entry struct {
	ID         string  `json:"id,omitempty"`
	Player     string  `json:"player"`
	Time       float64 `json:"time"` // seconds
	Difficulty string  `json:"difficulty"`
	Rows       int     `json:"rows"`
	Cols       int     `json:"cols"`
	Mines      int     `json:"mines"`
	Date       string  `json:"date"`
}

// Key returns the bucket this entry is ranked in.
func (e Entry) Key() string {
	return Key(e.Difficulty, e.Rows, e.Cols, e.Mines)
}

// FormattedTime renders the time as "1 minute 5 seconds".
func (e Entry) FormattedTime() string {
	return FormatDuration(e.Time)
}

// Key builds the bucket name for a difficulty and board shape. Custom boards
// with different shapes never share a bucket.
func Key(difficulty string, rows, cols, mines int) string {
	return fmt.Sprintf("%s_%dx%d_%d", difficulty, rows, cols, mines)
}

// Option configures a Board.
type Option func(*Board)

// WithMaxEntries sets how many times are kept per bucket.
func WithMaxEntries(n int) Option {
	return func(b *Board) {
		if n > 0 {
			b.maxEntries = n
		}
	}
}

// WithClock sets the clock used to date new entries.
func WithClock(clock quartz.Clock) Option {
	return func(b *Board) { b.clock = clock }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(b *Board) { b.logger = logger.WithPrefix("leaderboard") }
}

// Board holds ranked entries keyed by difficulty and board shape.
type Board struct {
	path       string
	maxEntries int
	clock      quartz.Clock
	logger     *log.Logger
	entries    map[string][]Entry
}

// NewBoard returns an empty board that saves to path.
func NewBoard(path string, opts ...Option) *Board {
	b := &Board{
		path:       path,
		maxEntries: DefaultMaxEntries,
		clock:      quartz.NewReal(),
		logger:     log.New(io.Discard),
		entries:    map[string][]Entry{},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Open returns a board populated from path. A missing file is not an error.
func Open(path string, opts ...Option) (*Board, error) {
	b := NewBoard(path, opts...)
	if err := b.Load(); err != nil {
		return nil, err
	}
	return b, nil
}

// Path returns the file the board saves to.
func (b *Board) Path() string { return b.path }

// MaxEntries returns the per-bucket limit.
func (b *Board) MaxEntries() int { return b.maxEntries }

// Load replaces the in-memory entries with the file contents. On a decode
// error the board is left empty.
func (b *Board) Load() error {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read leaderboard: %w", err)
	}

	entries := map[string][]Entry{}
	if err := json.Unmarshal(data, &entries); err != nil {
		b.entries = map[string][]Entry{}
		return fmt.Errorf("failed to decode leaderboard %s: %w", b.path, err)
	}
	b.entries = entries

	b.logger.Debug("Loaded leaderboard", "path", b.path, "buckets", len(entries))
	return nil
}

// Save writes every bucket to disk atomically.
func (b *Board) Save() error {
	if err := fileutil.WriteJSONAtomic(b.path, b.entries, 0o644); err != nil {
		return fmt.Errorf("failed to save leaderboard: %w", err)
	}
	return nil
}

// Add ranks an entry, trims its bucket and saves. It reports whether the
// entry is still in the bucket after trimming.
func (b *Board) Add(entry Entry) (bool, error) {
	if entry.ID == "" {
		entry.ID = uuid.Must(uuid.NewV7()).String()
	}
	if entry.Date == "" {
		entry.Date = b.clock.Now().Format(time.RFC3339)
	}

	key := entry.Key()
	bucket := append(b.entries[key], entry)
	sort.SliceStable(bucket, func(i, j int) bool {
		return bucket[i].Time < bucket[j].Time
	})
	if len(bucket) > b.maxEntries {
		bucket = bucket[:b.maxEntries]
	}
	b.entries[key] = bucket

	madeIt := slices.ContainsFunc(bucket, func(e Entry) bool { return e.ID == entry.ID })
	b.logger.Info("Recorded result", "player", entry.Player, "time", entry.Time, "key", key, "ranked", madeIt)

	if err := b.Save(); err != nil {
		return madeIt, err
	}
	return madeIt, nil
}

// Entries returns a copy of the bucket for a board shape, fastest first.
func (b *Board) Entries(difficulty string, rows, cols, mines int) []Entry {
	return slices.Clone(b.entries[Key(difficulty, rows, cols, mines)])
}

// IsHighScore reports whether a time would be kept: always while the bucket
// has room, otherwise only when strictly faster than the slowest kept time.
func (b *Board) IsHighScore(seconds float64, difficulty string, rows, cols, mines int) bool {
	bucket := b.entries[Key(difficulty, rows, cols, mines)]
	if len(bucket) < b.maxEntries {
		return true
	}
	return seconds < bucket[len(bucket)-1].Time
}

// Keys lists the non-empty buckets in sorted order.
func (b *Board) Keys() []string {
	keys := make([]string, 0, len(b.entries))
	for k, v := range b.entries {
		if len(v) > 0 {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Bucket returns a copy of the entries stored under a raw key.
func (b *Board) Bucket(key string) []Entry {
	return slices.Clone(b.entries[key])
}
