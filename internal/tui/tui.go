// Package tui is the interactive terminal front end: a Bubble Tea model that
// renders a Session as a grid and maps keys onto its click rules.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/gosweeper/internal/bot"
	"github.com/lox/gosweeper/internal/game"
	"github.com/lox/gosweeper/internal/leaderboard"
	"github.com/lox/gosweeper/internal/session"
)

const (
	cellWidth     = 3
	nameCharLimit = 10
	scoresWidth   = 36
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Option configures a Model.
type Option func(*Model)

// WithLeaderboard enables recording wins and the scores pane.
func WithLeaderboard(board *leaderboard.Board) Option {
	return func(m *Model) { m.board = board }
}

// WithTheme sets the colour palette.
func WithTheme(t Theme) Option {
	return func(m *Model) { m.theme = t }
}

// WithBot sets the bot that plays a move on the auto key.
func WithBot(b *bot.Bot) Option {
	return func(m *Model) { m.bot = b }
}

// WithLogger sets the logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// Model is the Bubble Tea model for a minesweeper game.
type Model struct {
	session *session.Session
	board   *leaderboard.Board
	bot     *bot.Bot
	logger  *log.Logger

	theme  Theme
	styles cellStyles
	keys   keyMap
	help   help.Model

	// UI components
	nameInput textinput.Model
	scores    viewport.Model

	cursor     game.Position
	prompting  bool // Asking for a leaderboard name
	showScores bool
	status     string
	quitting   bool

	width  int
	height int
}

// New creates a model over a session.
func New(s *session.Session, opts ...Option) *Model {
	classic, _ := LookupTheme(DefaultTheme)
	m := &Model{
		session: s,
		logger:  log.New(io.Discard),
		theme:   classic,
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.WithPrefix("tui")
	if m.bot == nil {
		m.bot = bot.New(bot.WithLogger(m.logger))
	}
	m.styles = newCellStyles(m.theme)

	ti := textinput.New()
	ti.Placeholder = "Anonymous"
	ti.CharLimit = nameCharLimit
	ti.Width = nameCharLimit + 1
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	m.nameInput = ti

	m.scores = viewport.New(scoresWidth, s.Difficulty().Rows+2)
	return m
}

// Init starts the timer display.
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Cursor returns the highlighted cell.
func (m *Model) Cursor() game.Position { return m.cursor }

// Status returns the message line.
func (m *Model) Status() string { return m.status }

// Prompting reports whether the model is waiting for a leaderboard name.
func (m *Model) Prompting() bool { return m.prompting }

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)
		return m, nil

	case tea.KeyMsg:
		if m.prompting {
			return m.updatePrompt(msg)
		}
		return m.updateBoard(msg)
	}
	return m, nil
}

func (m *Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "enter":
		m.saveScore(m.nameInput.Value())
		return m, nil
	case "esc":
		m.endPrompt()
		m.status = "Score not saved"
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.showScores {
		switch {
		case key.Matches(msg, m.keys.Scores):
			m.showScores = false
			return m, nil
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			var cmd tea.Cmd
			m.scores, cmd = m.scores.Update(msg)
			return m, cmd
		}
	}

	engine := m.session.Engine()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)

	case key.Matches(msg, m.keys.Reveal):
		return m, m.afterMove(m.session.Click(m.cursor.Row, m.cursor.Col))

	case key.Matches(msg, m.keys.Chord):
		if c, ok := engine.CellAt(m.cursor.Row, m.cursor.Col); ok && c.IsRevealed {
			return m, m.afterMove(m.session.Click(m.cursor.Row, m.cursor.Col))
		}

	case key.Matches(msg, m.keys.Flag):
		m.session.Flag(m.cursor.Row, m.cursor.Col)

	case key.Matches(msg, m.keys.Auto):
		return m, m.autoMove()

	case key.Matches(msg, m.keys.NewGame):
		m.session.NewGame()
		m.endPrompt()
		m.status = ""
		m.logger.Debug("New game", "games", m.session.GamesStarted())

	case key.Matches(msg, m.keys.Scores):
		m.showScores = true
		m.scores.SetContent(m.renderScores())
		m.scores.GotoTop()
	}
	return m, nil
}

func (m *Model) moveCursor(dr, dc int) {
	e := m.session.Engine()
	m.cursor.Row = min(max(m.cursor.Row+dr, 0), e.Rows()-1)
	m.cursor.Col = min(max(m.cursor.Col+dc, 0), e.Cols()-1)
}

func (m *Model) autoMove() tea.Cmd {
	if m.session.Phase().Terminal() {
		return nil
	}
	move, ok := m.bot.NextMove(m.session.Engine())
	if !ok {
		return nil
	}

	m.cursor = game.Position{Row: move.Row, Col: move.Col}
	m.status = fmt.Sprintf("Bot: %s %s (%s)", move.Action, m.cursor, move.Strategy)
	if move.Action == bot.Flag {
		m.session.Flag(move.Row, move.Col)
		return nil
	}
	return m.afterMove(m.session.Click(move.Row, move.Col))
}

// afterMove updates the status line once a game ends and opens the name
// prompt for a qualifying win.
func (m *Model) afterMove(out game.Outcome) tea.Cmd {
	elapsed := leaderboard.FormatClock(m.session.Elapsed().Seconds())

	switch m.session.Phase() {
	case game.Lost:
		if out == game.MineHit {
			m.status = "You hit a mine! Game over."
		}
	case game.Won:
		m.status = fmt.Sprintf("You won in %s!", elapsed)
		if m.board != nil && m.session.QualifiesForLeaderboard(m.board) {
			m.status = fmt.Sprintf("You won in %s! You made the leaderboard, enter your name:", elapsed)
			m.prompting = true
			m.nameInput.Reset()
			return m.nameInput.Focus()
		}
	}
	return nil
}

func (m *Model) saveScore(name string) {
	defer m.endPrompt()

	if _, err := m.session.Record(m.board, name); err != nil {
		m.logger.Error("Failed to record score", "error", err)
		m.status = ErrorStyle.Render("Failed to save score: " + err.Error())
		return
	}
	m.status = fmt.Sprintf("Saved %s to the leaderboard", leaderboard.FormatDuration(m.session.Elapsed().Seconds()))
	m.scores.SetContent(m.renderScores())
}

func (m *Model) endPrompt() {
	m.prompting = false
	m.nameInput.Blur()
}

// View renders the model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderBoard())
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	if m.prompting {
		b.WriteString(m.nameInput.View())
		b.WriteString("\n")
		b.WriteString(InfoStyle.Render("enter to save • esc to skip"))
	} else {
		b.WriteString(m.help.View(m.keys))
	}

	main := b.String()
	if !m.showScores {
		return main
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, main, "  ", FocusedPaneStyle.Render(m.scores.View()))
}

func (m *Model) renderHeader() string {
	e := m.session.Engine()
	face := "🙂"
	switch e.Phase() {
	case game.Won:
		face = "😎"
	case game.Lost:
		face = "💀"
	}

	header := fmt.Sprintf("🚩 %03d   %s   ⏱ %s",
		e.RemainingMines(), face, leaderboard.FormatClock(m.session.Elapsed().Seconds()))
	return m.styles.header.Render(header)
}

func (m *Model) renderBoard() string {
	e := m.session.Engine()
	rows := make([]string, e.Rows())
	for r := range rows {
		cells := make([]string, e.Cols())
		for c := range cells {
			cell, _ := e.CellAt(r, c)
			cells[c] = m.renderCell(cell, m.cursor == cell.Position())
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) renderCell(c game.Cell, selected bool) string {
	symbol, style := m.cellSymbol(c)
	if selected {
		style = m.styles.cursor
	}
	return style.Render(symbol)
}

func (m *Model) cellSymbol(c game.Cell) (string, lipgloss.Style) {
	lost := m.session.Phase() == game.Lost
	switch {
	case c.IsFlagged && lost && !c.IsMine:
		return "x", m.styles.mine
	case c.IsFlagged:
		return "F", m.styles.flag
	case !c.IsRevealed:
		return ".", m.styles.hidden
	case c.IsMine:
		return "*", m.styles.mine
	case c.AdjacentMines > 0:
		return fmt.Sprint(c.AdjacentMines), m.styles.numbers[c.AdjacentMines]
	default:
		return " ", m.styles.revealed
	}
}

func (m *Model) renderScores() string {
	if m.board == nil {
		return InfoStyle.Render("Leaderboard disabled")
	}

	d := m.session.Difficulty()
	var b strings.Builder
	b.WriteString(TitleStyle.Render(d.String()))
	b.WriteString("\n\n")

	entries := m.board.Entries(d.Key, d.Rows, d.Cols, d.Mines)
	if len(entries) == 0 {
		b.WriteString(InfoStyle.Render("No times yet"))
		return b.String()
	}
	for i, e := range entries {
		date := e.Date
		if len(date) > 10 {
			date = date[:10]
		}
		fmt.Fprintf(&b, "%2d. %-10s %s  %s\n", i+1, e.Player, leaderboard.FormatClock(e.Time), date)
	}
	return b.String()
}

// Run starts an interactive program on the alternate screen and blocks until
// the player quits or ctx is cancelled.
func Run(ctx context.Context, m *Model, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	if _, err := tea.NewProgram(m, opts...).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
