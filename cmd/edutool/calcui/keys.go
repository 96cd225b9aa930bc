package calcui

import (
	"edutool/internal/calculator"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Press   key.Binding
	Delete  key.Binding
	Clear   key.Binding
	Mode    key.Binding
	History key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "press key"),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", "DEL"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc", "delete"),
			key.WithHelp("esc", "C"),
		),
		Mode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "mode"),
		),
		History: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "history"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Press, k.Delete, k.Clear, k.Mode, k.History, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.Press},
		{k.Delete, k.Clear, k.Mode},
		{k.History, k.Help, k.Quit},
	}
}

// typedLabels maps keyboard runes onto keypad labels that differ from the rune itself.
var typedLabels = map[string]string{
	"*": "×",
	"/": "÷",
	"p": "π",
	"s": "sin",
	"c": "cos",
	"t": "tan",
	"l": "log",
	"n": "ln",
	"r": "√",
	"e": "Exp",
	"x": "x²",
}

// labelFor resolves a typed key to a button of mode m. Keys with no button in m are rejected.
func labelFor(m calculator.Mode, msg tea.KeyMsg) (string, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 || msg.Alt {
		return "", false
	}
	label := string(msg.Runes)
	if mapped, ok := typedLabels[label]; ok {
		label = mapped
	}
	if _, ok := calculator.Lookup(m, label); !ok {
		return "", false
	}
	return label, true
}
