package ui

import (
	"strings"

	"edutool/internal/calculator"

	"github.com/charmbracelet/lipgloss"
)

// RenderKeypad draws buttons as a grid of calculator.KeypadColumns columns.
// selected is the index of the highlighted button, or -1.
func RenderKeypad(s Styles, buttons []calculator.Button, selected int) string {
	var rows []string
	for start := 0; start < len(buttons); start += calculator.KeypadColumns {
		end := start + calculator.KeypadColumns
		if end > len(buttons) {
			end = len(buttons)
		}
		cells := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			b := buttons[i]
			cells = append(cells, s.KeyStyle(b, i == selected).Render(b.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

// KeypadWidth is the rendered width of a full keypad row.
func KeypadWidth() int {
	return calculator.KeypadColumns * (KeyWidth + 1)
}

// RenderModeTabs shows every mode with the active one highlighted.
func RenderModeTabs(s Styles, active calculator.Mode) string {
	var tabs []string
	for _, m := range calculator.Modes() {
		label := strings.ToUpper(string(m))
		if m == active {
			tabs = append(tabs, s.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, s.Tab.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}
