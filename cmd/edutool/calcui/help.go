package calcui

import (
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# Keypad

| Key | Action |
|---|---|
| arrows | move the highlight |
| enter, space | press the highlighted key |
| 0-9 . ( ) + - | type directly |
| * / | × and ÷ |
| = | calculate |
| backspace | DEL |
| esc | C |
| tab | next mode |
| H | toggle history |
| q | quit |

## Functions

| Key | Button | Modes |
|---|---|---|
| s c t | sin cos tan | scientific, waec |
| l | log | scientific, waec |
| n | ln | scientific |
| r | √ | scientific, waec |
| p | π | scientific, waec |
| ^ | ^ | scientific |
| x | x² | waec |
| e | Exp | waec |

Angles are in degrees. Keys without a button in the current mode are ignored.
`

// renderHelp renders the help overlay. The raw markdown is returned if glamour fails.
func renderHelp(dark bool, width int) string {
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}
