// Package ui provides the visual styling for the edutool terminal keypad.
// Light and dark palettes follow the suite's slate/blue colours; night mode picks dark.
package ui

import (
	"strings"

	"edutool/internal/calculator"

	"github.com/charmbracelet/lipgloss"
)

// Colour palette
var (
	// Light mode
	LightBackground = lipgloss.Color("#f1f5f9") // slate-100
	LightForeground = lipgloss.Color("#1e293b") // slate-800
	LightMuted      = lipgloss.Color("#94a3b8") // slate-400
	LightKey        = lipgloss.Color("#ffffff")
	LightKeyAlt     = lipgloss.Color("#e2e8f0") // slate-200
	LightBorder     = lipgloss.Color("#cbd5e1") // slate-300

	// Dark mode
	DarkBackground = lipgloss.Color("#0f172a") // slate-900
	DarkForeground = lipgloss.Color("#f1f5f9")
	DarkMuted      = lipgloss.Color("#64748b") // slate-500
	DarkKey        = lipgloss.Color("#1e293b")
	DarkKeyAlt     = lipgloss.Color("#334155") // slate-700
	DarkBorder     = lipgloss.Color("#334155")

	// Same in both modes
	Primary     = lipgloss.Color("#2563eb") // blue-600
	Destructive = lipgloss.Color("#dc2626") // red-600
)

// Theme holds the current colour scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Key        lipgloss.Color
	KeyAlt     lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Muted:      LightMuted,
		Key:        LightKey,
		KeyAlt:     LightKeyAlt,
		Border:     LightBorder,
	}
}

func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Muted:      DarkMuted,
		Key:        DarkKey,
		KeyAlt:     DarkKeyAlt,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// ThemeFor maps the night_mode setting onto a theme.
func ThemeFor(nightMode bool) Theme {
	if nightMode {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	// Layout
	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style
	Panel  lipgloss.Style

	// Text
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style
	Error lipgloss.Style

	// Mode tabs
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style

	// Display panel
	Equation lipgloss.Style
	Display  lipgloss.Style

	// Keypad
	Key         lipgloss.Style
	KeyOperator lipgloss.Style
	KeyFunction lipgloss.Style
	KeyEquals   lipgloss.Style
	KeyClear    lipgloss.Style
	KeySelected lipgloss.Style

	Divider lipgloss.Style
}

// KeyWidth is the cell width of one keypad button.
const KeyWidth = 7

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	key := lipgloss.NewStyle().
		Width(KeyWidth).
		Align(lipgloss.Center).
		Bold(true).
		Background(theme.Key).
		Foreground(theme.Foreground).
		Margin(0, 1, 0, 0)

	return Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			MarginTop(1),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		ActiveTab: lipgloss.NewStyle().
			Background(Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Bold(true).
			Padding(0, 1),

		Equation: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Align(lipgloss.Right),

		Display: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true).
			Align(lipgloss.Right),

		Key: key,

		KeyOperator: key.Foreground(Primary),

		KeyFunction: key.Background(theme.KeyAlt),

		KeyEquals: key.Background(Primary).
			Foreground(lipgloss.Color("#ffffff")),

		KeyClear: key.Foreground(Destructive),

		KeySelected: key.Reverse(true),

		Divider: lipgloss.NewStyle().
			Foreground(theme.Border),
	}
}

// DefaultStyles returns styles for the light theme
func DefaultStyles() Styles {
	return NewStyles(LightTheme())
}

// ThemedStyles returns the styles for the night_mode setting.
func ThemedStyles(nightMode bool) Styles {
	return NewStyles(ThemeFor(nightMode))
}

// KeyStyle picks the style of a keypad button.
func (s Styles) KeyStyle(b calculator.Button, selected bool) lipgloss.Style {
	if selected {
		return s.KeySelected
	}
	switch b.Kind {
	case calculator.KindOperator:
		return s.KeyOperator
	case calculator.KindFunction:
		return s.KeyFunction
	case calculator.KindEquals:
		return s.KeyEquals
	case calculator.KindClear, calculator.KindDelete:
		return s.KeyClear
	default:
		return s.Key
	}
}

// RenderDivider returns a horizontal divider
func (s Styles) RenderDivider(width int) string {
	if width < 1 {
		return ""
	}
	return s.Divider.Render(strings.Repeat("─", width))
}
