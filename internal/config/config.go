// Package config loads game settings from an HCL file and holds the built-in
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// ErrUnknownDifficulty is returned when a difficulty key is not defined.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

const (
	DefaultLeaderboardPath = "data/leaderboard.json"
	DefaultMaxEntries      = 10
	DefaultLogLevel        = "info"
	DefaultLogFile         = "gosweeper.log"
	DefaultTheme           = "classic"
)

// Config represents the complete configuration file
type Config struct {
	Game         *GameSettings        `hcl:"game,block"`
	Difficulties []DifficultyConfig   `hcl:"difficulty,block"`
	Leaderboard  *LeaderboardSettings `hcl:"leaderboard,block"`
	Log          *LogSettings         `hcl:"log,block"`
	UI           *UISettings          `hcl:"ui,block"`
}

// GameSettings selects the board to play
type GameSettings struct {
	Difficulty string `hcl:"difficulty,optional"`
}

// DifficultyConfig adds or overrides a named preset
type DifficultyConfig struct {
	Key   string `hcl:"key,label"`
	Title string `hcl:"title,optional"`
	Rows  int    `hcl:"rows"`
	Cols  int    `hcl:"cols"`
	Mines int    `hcl:"mines"`
}

// LeaderboardSettings controls best-time persistence
type LeaderboardSettings struct {
	Path       string `hcl:"path,optional"`
	MaxEntries int    `hcl:"max_entries,optional"`
}

// LogSettings controls the process logger
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// UISettings holds presentation choices. None of these reach the engine.
type UISettings struct {
	Theme string `hcl:"theme,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads configuration from an HCL file. A missing file yields defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Game == nil {
		c.Game = &GameSettings{}
	}
	if c.Game.Difficulty == "" {
		c.Game.Difficulty = DefaultDifficulty
	}

	if c.Leaderboard == nil {
		c.Leaderboard = &LeaderboardSettings{}
	}
	if c.Leaderboard.Path == "" {
		c.Leaderboard.Path = DefaultLeaderboardPath
	}
	if c.Leaderboard.MaxEntries == 0 {
		c.Leaderboard.MaxEntries = DefaultMaxEntries
	}

	if c.Log == nil {
		c.Log = &LogSettings{}
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.File == "" {
		c.Log.File = DefaultLogFile
	}

	if c.UI == nil {
		c.UI = &UISettings{}
	}
	if c.UI.Theme == "" {
		c.UI.Theme = DefaultTheme
	}

	for i := range c.Difficulties {
		if c.Difficulties[i].Title == "" {
			c.Difficulties[i].Title = c.Difficulties[i].Key
		}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	for _, d := range c.Difficulties {
		if err := ValidateBoard(d.Rows, d.Cols, d.Mines); err != nil {
			return fmt.Errorf("difficulty %s: %w", d.Key, err)
		}
	}

	if _, err := c.Difficulty(c.Game.Difficulty); err != nil {
		return err
	}

	if c.Leaderboard.MaxEntries < 1 {
		return fmt.Errorf("leaderboard max_entries must be positive, got %d", c.Leaderboard.MaxEntries)
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}

	return nil
}

// Difficulty resolves a preset by key. Presets from the file take precedence
// over the built-in ones.
func (c *Config) Difficulty(key string) (Difficulty, error) {
	for _, d := range c.Difficulties {
		if d.Key == key {
			return Difficulty{Key: d.Key, Name: d.Title, Rows: d.Rows, Cols: d.Cols, Mines: d.Mines}, nil
		}
	}
	if d, ok := builtin[key]; ok {
		return d, nil
	}
	return Difficulty{}, fmt.Errorf("%w: %s", ErrUnknownDifficulty, key)
}

// DifficultyKeys lists every preset key, built-ins first in order of size.
func (c *Config) DifficultyKeys() []string {
	keys := slices.Clone(builtinOrder)
	for _, d := range c.Difficulties {
		if !slices.Contains(keys, d.Key) {
			keys = append(keys, d.Key)
		}
	}
	return keys
}
