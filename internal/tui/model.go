// Package tui renders a themed calculator widget in the terminal.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"critter-calc/internal/calculator"
	"critter-calc/internal/theme"
)

// Model is the Bubble Tea model for one mounted widget.
type Model struct {
	theme  theme.Theme
	keypad theme.Keypad
	styles Styles
	keys   KeyMap
	help   help.Model
	logger *zap.Logger

	// State
	state    calculator.State
	focus    int
	quitting bool
}

// NewModel mounts a widget dressed in t. Focus starts on the 7 key.
func NewModel(t theme.Theme, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	keypad := theme.DefaultKeypad()
	focus := keypad.Index(calculator.Button7)
	if focus < 0 {
		focus = 0
	}

	return Model{
		theme:  t,
		keypad: keypad,
		styles: NewStyles(t),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		logger: logger,
		state:  calculator.New(),
		focus:  focus,
	}
}

// State returns the engine state behind the widget.
func (m Model) State() calculator.State {
	return m.state
}

// Focused returns the button under the focus cursor.
func (m Model) Focused() calculator.Button {
	return m.keypad.Keys[m.focus].Button
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			m.logger.Info("widget unmounted",
				zap.String("theme", m.theme.Name),
				zap.String("display", m.state.Display),
			)
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.focus = m.keypad.Move(m.focus, -1, 0)
		case key.Matches(msg, m.keys.Down):
			m.focus = m.keypad.Move(m.focus, 1, 0)
		case key.Matches(msg, m.keys.Left):
			m.focus = m.keypad.Move(m.focus, 0, -1)
		case key.Matches(msg, m.keys.Right):
			m.focus = m.keypad.Move(m.focus, 0, 1)

		case key.Matches(msg, m.keys.Press):
			m = m.press(m.Focused())
		case key.Matches(msg, m.keys.Clear):
			m = m.press(calculator.ButtonClear)
		}
		return m, nil
	}

	return m, nil
}

func (m Model) press(b calculator.Button) Model {
	m.state = m.state.Press(b)
	m.logger.Debug("button pressed",
		zap.String("theme", m.theme.Name),
		zap.String("button", string(b)),
		zap.String("display", m.state.Display),
	)
	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := spanWidth(m.keypad.Cols)

	header := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Title.Render(m.theme.Title),
		m.styles.Subtitle.Render(m.theme.Subtitle),
	)

	display := m.styles.Display.
		Width(width - 2).
		Render(fitDisplay(m.state.Display, width-4))

	card := m.styles.Card.Render(lipgloss.JoinVertical(lipgloss.Center,
		display,
		"",
		m.renderKeypad(),
		"",
		m.styles.Footer.Render(m.theme.Footer),
	))

	return lipgloss.JoinVertical(lipgloss.Center,
		header,
		"",
		card,
		m.styles.Help.Render(m.help.View(m.keys)),
	) + "\n"
}

// renderKeypad draws the grid one row at a time. A key spanning rows is
// labelled in its first row and continued as a blank block below.
func (m Model) renderKeypad() string {
	rows := make([]string, m.keypad.Rows)

	for row := 0; row < m.keypad.Rows; row++ {
		var cells []string
		for col := 0; col < m.keypad.Cols; {
			i := m.keypad.At(row, col)
			if i < 0 {
				cells = append(cells, strings.Repeat(" ", cellWidth))
				col++
				continue
			}
			k := m.keypad.Keys[i]

			label := ""
			if row == k.Row {
				label = m.theme.Label(k.Button)
			}

			style := m.styles.Key(k.Button).
				Width(spanWidth(k.ColSpan)).
				Height(cellHeight)
			if i == m.focus {
				style = style.Reverse(true)
			}

			cells = append(cells, style.Render(label))
			col += k.ColSpan
		}

		joined := make([]string, 0, 2*len(cells))
		for j, c := range cells {
			if j > 0 {
				joined = append(joined, strings.Repeat(" ", gap))
			}
			joined = append(joined, c)
		}
		rows[row] = lipgloss.JoinHorizontal(lipgloss.Top, joined...)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// fitDisplay keeps the rightmost digits of a number too long for the
// display and marks the cut with an ellipsis.
func fitDisplay(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}

	r := []rune(s)
	for len(r) > 0 && runewidth.StringWidth(string(r))+1 > width {
		r = r[1:]
	}
	return "…" + string(r)
}
