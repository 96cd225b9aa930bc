package calcui

import (
	"strings"

	"edutool/cmd/edutool/ui"
	"edutool/internal/calculator"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.showHelp {
		return m.styles.App.Render(m.helpText + "\n" + m.styles.Footer.Render("? or esc to close"))
	}

	width := m.panelWidth()
	snap := m.calc.Snapshot()

	var sb strings.Builder
	sb.WriteString(m.styles.Header.Render("edutool calculator"))
	sb.WriteString("\n")
	sb.WriteString(ui.RenderModeTabs(m.styles, snap.Mode))
	sb.WriteString("\n\n")

	displayStyle := m.styles.Display
	if snap.Display == calculator.ErrorDisplay {
		displayStyle = m.styles.Error.Align(lipgloss.Right)
	}
	screen := lipgloss.JoinVertical(lipgloss.Right,
		m.styles.Equation.Width(width).Render(snap.Equation),
		displayStyle.Width(width).Render(snap.Display),
	)
	sb.WriteString(m.styles.Panel.Render(screen))
	sb.WriteString("\n")
	sb.WriteString(m.styles.RenderDivider(width + 4))
	sb.WriteString("\n")

	sb.WriteString(ui.RenderKeypad(m.styles, calculator.Buttons(snap.Mode), m.cursor))

	if m.showHistory {
		sb.WriteString("\n\n")
		sb.WriteString(m.styles.Title.Render("History"))
		sb.WriteString("\n")
		sb.WriteString(m.styles.Panel.Render(m.history.View()))
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Footer.Render(m.help.View(m.keys)))

	return m.styles.App.Render(sb.String())
}
