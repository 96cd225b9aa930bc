package calcui

import (
	"edutool/internal/calculator"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case SettingsMsg:
		m.applySettings(msg)
		return m, nil

	case tea.KeyMsg:
		next, cmd, handled := m.handleKeyMsg(msg)
		if handled {
			return next, cmd
		}
		m = next
	}

	if m.showHistory {
		var cmd tea.Cmd
		m.history, cmd = m.history.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyMsg processes keyboard input. handled=false lets the message through to the
// history viewport.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	if key.Matches(msg, m.keys.Quit) {
		m.logger.Debug("quit")
		return m, tea.Quit, true
	}

	// The help overlay swallows everything but its own toggle and esc.
	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || msg.Type == tea.KeyEsc {
			m.showHelp = false
		}
		return m, nil, true
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil, true

	case key.Matches(msg, m.keys.History):
		m.showHistory = !m.showHistory
		return m, nil, true

	case key.Matches(msg, m.keys.Mode):
		m.setMode(m.calc.Mode().Next())
		return m, nil, true

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1, 0)
		return m, nil, true
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1, 0)
		return m, nil, true
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(0, -1)
		return m, nil, true
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(0, 1)
		return m, nil, true

	case key.Matches(msg, m.keys.Press):
		buttons := calculator.Buttons(m.calc.Mode())
		m.press(buttons[m.cursor].Label)
		return m, nil, true

	case key.Matches(msg, m.keys.Delete):
		m.press("DEL")
		return m, nil, true

	case key.Matches(msg, m.keys.Clear):
		m.press("C")
		return m, nil, true
	}

	if label, ok := labelFor(m.calc.Mode(), msg); ok {
		m.press(label)
		return m, nil, true
	}

	// pgup/pgdown and friends scroll the history panel
	return m, nil, false
}

func (m *Model) press(label string) {
	b, ok := calculator.Lookup(m.calc.Mode(), label)
	if !ok {
		return
	}
	if err := m.calc.Press(label); err != nil {
		m.logger.Debug("key produced error", zap.String("key", label), zap.Error(err))
	}
	if b.Kind == calculator.KindEquals {
		m.refreshHistory()
	}
}

func (m *Model) setMode(mode calculator.Mode) {
	m.calc.SetMode(mode)
	if n := len(calculator.Buttons(mode)); m.cursor >= n {
		m.cursor = n - 1
	}
	m.logger.Debug("mode switched", zap.Stringer("mode", mode))
}

// moveCursor moves the highlight by rows and columns, wrapping inside the grid.
func (m *Model) moveCursor(dRow, dCol int) {
	n := len(calculator.Buttons(m.calc.Mode()))
	cols := calculator.KeypadColumns
	rows := (n + cols - 1) / cols

	row := m.cursor / cols
	col := m.cursor % cols
	row = (row + dRow + rows) % rows
	col = (col + dCol + cols) % cols

	idx := row*cols + col
	if idx >= n {
		idx = n - 1
	}
	m.cursor = idx
}
