package tui

import (
	"github.com/charmbracelet/lipgloss"

	"critter-calc/internal/calculator"
	"critter-calc/internal/theme"
)

const (
	cellWidth  = 10
	cellHeight = 3
	gap        = 1
)

// Styles holds the lipgloss styles for one themed widget.
type Styles struct {
	Card     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Footer   lipgloss.Style
	Display  lipgloss.Style
	Help     lipgloss.Style

	// Keys
	Digit    lipgloss.Style
	Operator lipgloss.Style
	Clear    lipgloss.Style
	Equals   lipgloss.Style
}

// NewStyles derives the widget styles from a theme palette.
func NewStyles(t theme.Theme) Styles {
	p := t.Palette
	key := lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center, lipgloss.Center)

	return Styles{
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.CardBorder)).
			Background(lipgloss.Color(p.Card)).
			Padding(1, 2),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Title)).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.Text)).
			Italic(true),
		Display: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color(p.DisplayBorder)).
			Background(lipgloss.Color(p.DisplayBg)).
			Foreground(lipgloss.Color(p.DisplayFg)).
			Bold(true).
			Padding(0, 1).
			Align(lipgloss.Right),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),

		Digit: key.
			Background(lipgloss.Color(p.Digit)).
			Foreground(lipgloss.Color(p.KeyText)),
		Operator: key.
			Background(lipgloss.Color(p.Operator)).
			Foreground(lipgloss.Color(p.OperatorText)),
		Clear: key.
			Background(lipgloss.Color(p.Clear)).
			Foreground(lipgloss.Color(p.OperatorText)),
		Equals: key.
			Background(lipgloss.Color(p.Equals)).
			Foreground(lipgloss.Color(p.OperatorText)),
	}
}

// Key returns the base style of b's key.
func (s Styles) Key(b calculator.Button) lipgloss.Style {
	if _, ok := b.Operation(); ok {
		return s.Operator
	}
	switch b {
	case calculator.ButtonClear:
		return s.Clear
	case calculator.ButtonEquals:
		return s.Equals
	}
	return s.Digit
}

// spanWidth is the rendered width of a key covering n columns.
func spanWidth(n int) int {
	return n*cellWidth + (n-1)*gap
}
