package config

import "fmt"

// Board size limits for custom games.
const (
	MinRows = 5
	MaxRows = 30
	MinCols = 5
	MaxCols = 50

	// safeZoneCells is the largest first-click safety zone (anchor plus
	// eight neighbours); custom boards must leave room for it.
	safeZoneCells = 9
)

// DefaultDifficulty is the preset used when nothing else is chosen.
const DefaultDifficulty = "intermediate"

// CustomKey is the key given to ad-hoc boards built with Custom.
const CustomKey = "custom"

// Difficulty is a named board shape.
type Difficulty struct {
	Key   string
	Name  string
	Rows  int
	Cols  int
	Mines int
}

func (d Difficulty) String() string {
	return fmt.Sprintf("%s: %d × %d, %d mines", d.Name, d.Rows, d.Cols, d.Mines)
}

var builtin = map[string]Difficulty{
	"beginner":     {Key: "beginner", Name: "Beginner", Rows: 9, Cols: 9, Mines: 10},
	"intermediate": {Key: "intermediate", Name: "Intermediate", Rows: 16, Cols: 16, Mines: 40},
	"expert":       {Key: "expert", Name: "Expert", Rows: 16, Cols: 30, Mines: 99},
}

var builtinOrder = []string{"beginner", "intermediate", "expert"}

// Builtin returns a built-in preset by key.
func Builtin(key string) (Difficulty, bool) {
	d, ok := builtin[key]
	return d, ok
}

// Custom builds an ad-hoc difficulty after checking the board limits.
func Custom(rows, cols, mines int) (Difficulty, error) {
	if err := ValidateBoard(rows, cols, mines); err != nil {
		return Difficulty{}, err
	}
	return Difficulty{Key: CustomKey, Name: "Custom", Rows: rows, Cols: cols, Mines: mines}, nil
}

// ValidateBoard checks a board shape against the custom game limits.
func ValidateBoard(rows, cols, mines int) error {
	if rows < MinRows || rows > MaxRows {
		return fmt.Errorf("rows must be between %d and %d, got %d", MinRows, MaxRows, rows)
	}
	if cols < MinCols || cols > MaxCols {
		return fmt.Errorf("cols must be between %d and %d, got %d", MinCols, MaxCols, cols)
	}
	maxMines := rows*cols - safeZoneCells
	if mines < 1 || mines > maxMines {
		return fmt.Errorf("mines must be between 1 and %d, got %d", maxMines, mines)
	}
	return nil
}
