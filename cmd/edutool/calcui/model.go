// Package calcui is the interactive keypad: a bubbletea program hosting one Calculator.
package calcui

import (
	"edutool/cmd/edutool/ui"
	"edutool/internal/calculator"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

const (
	defaultWidth  = 40
	historyHeight = 6
)

// Model is the bubbletea model of the keypad.
type Model struct {
	calc   *calculator.Calculator
	styles ui.Styles
	keys   keyMap
	help   help.Model
	logger *zap.Logger

	history     viewport.Model
	showHistory bool

	helpText string
	showHelp bool

	cursor int
	width  int
}

// Option configures a Model.
type Option func(*Model)

// WithStyles sets the lipgloss styles, e.g. the dark theme for night mode.
func WithStyles(s ui.Styles) Option {
	return func(m *Model) { m.styles = s }
}

// WithLogger sets the UI logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// New wraps calc in a keypad model.
func New(calc *calculator.Calculator, opts ...Option) Model {
	m := Model{
		calc:   calc,
		styles: ui.DefaultStyles(),
		keys:   defaultKeyMap(),
		help:   help.New(),
		logger: zap.NewNop(),
		width:  defaultWidth,
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.history = viewport.New(ui.KeypadWidth(), historyHeight)
	m.refreshHistory()
	m.helpText = renderHelp(m.styles.Theme.IsDark, ui.KeypadWidth()+20)
	return m
}

// Calculator exposes the hosted calculator.
func (m Model) Calculator() *calculator.Calculator {
	return m.calc
}

// Cursor is the index of the highlighted key in the current layout.
func (m Model) Cursor() int {
	return m.cursor
}

// SettingsMsg carries shell settings changed while the program runs.
type SettingsMsg struct {
	NightMode bool
}

func (m *Model) applySettings(s SettingsMsg) {
	if s.NightMode == m.styles.Theme.IsDark {
		return
	}
	m.styles = ui.ThemedStyles(s.NightMode)
	m.helpText = renderHelp(s.NightMode, ui.KeypadWidth()+20)
	m.refreshHistory()
	m.logger.Debug("theme changed", zap.Bool("night_mode", s.NightMode))
}

// panelWidth is the inner width of the display panel: the keypad width, narrowed to fit
// the terminal after the app padding and the panel frame.
func (m Model) panelWidth() int {
	w := ui.KeypadWidth()
	if avail := m.width - 8; avail < w {
		w = avail
	}
	if w < 1 {
		w = 1
	}
	return w
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) refreshHistory() {
	entries := m.calc.History()
	if len(entries) == 0 {
		m.history.SetContent(m.styles.Muted.Render("No history yet"))
		return
	}
	var content string
	for i, e := range entries {
		if i > 0 {
			content += "\n"
		}
		content += m.styles.Muted.Render(e.Expression+" =") + " " + m.styles.Bold.Render(e.Result)
	}
	m.history.SetContent(content)
	m.history.GotoTop()
}
