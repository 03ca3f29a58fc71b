package tui

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Theme is a board colour palette.
type Theme struct {
	Name     string
	Text     lipgloss.Color
	Header   lipgloss.Color
	Revealed lipgloss.Color
	Hidden   lipgloss.Color
	Flag     lipgloss.Color
	Mine     lipgloss.Color
	// Numbers holds the foreground for counts 1 to 8; index 0 is unused.
	Numbers [9]lipgloss.Color
}

var themes = map[string]Theme{
	"classic": {
		Name: "classic", Text: "#000000", Header: "#F5F5F5",
		Revealed: "#E0E0E0", Hidden: "#C0C0C0", Flag: "#FFA500", Mine: "#808080",
		Numbers: [9]lipgloss.Color{"", "#0000FF", "#008000", "#FF0000", "#000080", "#800000", "#008080", "#000000", "#808080"},
	},
	"dark": {
		Name: "dark", Text: "#CCCCCC", Header: "#252526",
		Revealed: "#2D2D30", Hidden: "#3E3E42", Flag: "#FF6B35", Mine: "#5A5A5F",
		Numbers: [9]lipgloss.Color{"", "#569CD6", "#4EC9B0", "#CE9178", "#9CDCFE", "#C586C0", "#4FC1FF", "#DCDCAA", "#D4D4D4"},
	},
	"ocean": {
		Name: "ocean", Text: "#1C2833", Header: "#D6EAF8",
		Revealed: "#B8D8E8", Hidden: "#7FB3D5", Flag: "#FF6B6B", Mine: "#34495E",
		Numbers: [9]lipgloss.Color{"", "#2C3E50", "#16A085", "#E74C3C", "#2980B9", "#8E44AD", "#27AE60", "#C0392B", "#7F8C8D"},
	},
	"forest": {
		Name: "forest", Text: "#1B5E20", Header: "#E8F5E9",
		Revealed: "#D5E8D4", Hidden: "#A8D5A0", Flag: "#FF6B35", Mine: "#5D4E37",
		Numbers: [9]lipgloss.Color{"", "#2D5016", "#228B22", "#DC143C", "#4B0082", "#8B4513", "#006400", "#000000", "#696969"},
	},
	"high_contrast": {
		Name: "high_contrast", Text: "#000000", Header: "#F0F0F0",
		Revealed: "#FFFFFF", Hidden: "#000000", Flag: "#FF0000", Mine: "#000000",
		Numbers: [9]lipgloss.Color{"", "#0000FF", "#008000", "#FF0000", "#000080", "#800000", "#008080", "#000000", "#808080"},
	},
}

// DefaultTheme is used when no theme is configured.
const DefaultTheme = "classic"

// LookupTheme returns the named theme.
func LookupTheme(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// ThemeNames lists the available themes in sorted order.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// cellStyles holds the rendered styles for one theme.
type cellStyles struct {
	hidden   lipgloss.Style
	revealed lipgloss.Style
	flag     lipgloss.Style
	mine     lipgloss.Style
	numbers  [9]lipgloss.Style
	cursor   lipgloss.Style
	header   lipgloss.Style
}

func newCellStyles(t Theme) cellStyles {
	base := lipgloss.NewStyle().Width(cellWidth).Align(lipgloss.Center)
	revealed := base.Background(t.Revealed).Foreground(t.Text)

	s := cellStyles{
		hidden:   base.Background(t.Hidden).Foreground(t.Text),
		revealed: revealed,
		flag:     base.Background(t.Flag).Foreground(t.Text).Bold(true),
		mine:     base.Background(t.Mine).Foreground(t.Text).Bold(true),
		cursor:   base.Reverse(true).Bold(true),
		header:   HeaderStyle.Background(t.Header).Foreground(t.Text).Padding(0, 1),
	}
	for n := 1; n < len(t.Numbers); n++ {
		s.numbers[n] = revealed.Foreground(t.Numbers[n]).Bold(true)
	}
	s.numbers[0] = revealed
	return s
}
