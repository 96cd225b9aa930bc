package calculator

// ButtonKind groups keypad buttons by behaviour. The UI also uses it for colouring.
type ButtonKind uint8

const (
	KindDigit ButtonKind = iota
	KindOperator
	KindFunction
	KindEquals
	KindClear
	KindDelete
)

// Button is one key of a keypad layout.
type Button struct {
	Label string
	Kind  ButtonKind
}

// Token is the text a press appends to the display buffer. Action buttons
// (=, C, DEL) have no token.
func (b Button) Token() string {
	switch b.Kind {
	case KindEquals, KindClear, KindDelete:
		return ""
	}
	switch b.Label {
	case "sin", "cos", "tan", "log", "ln", "√":
		return b.Label + "("
	case "x²":
		return "^2"
	case "Exp":
		return "*10^"
	}
	return b.Label
}

// KeypadColumns is the width of every layout.
const KeypadColumns = 4

var layouts = map[Mode][]string{
	ModeBasic: {
		"C", "÷", "×", "DEL",
		"7", "8", "9", "-",
		"4", "5", "6", "+",
		"1", "2", "3", "=",
		"0", ".", "(", ")",
	},
	ModeScientific: {
		"sin", "cos", "tan", "DEL",
		"log", "ln", "√", "÷",
		"7", "8", "9", "×",
		"4", "5", "6", "-",
		"1", "2", "3", "+",
		"0", ".", "π", "=",
		"^", "(", ")", "C",
	},
	ModeWAEC: {
		"sin", "cos", "tan", "DEL",
		"log", "√", "x²", "÷",
		"7", "8", "9", "×",
		"4", "5", "6", "-",
		"1", "2", "3", "+",
		"0", ".", "π", "=",
		"(", ")", "Exp", "C",
	},
}

// Buttons returns the layout of a mode in row-major order. Unknown modes get the basic layout.
func Buttons(m Mode) []Button {
	labels, ok := layouts[m]
	if !ok {
		labels = layouts[ModeBasic]
	}
	out := make([]Button, len(labels))
	for i, l := range labels {
		out[i] = Button{Label: l, Kind: kindOf(l)}
	}
	return out
}

// Lookup finds a button by label in the layout of m.
func Lookup(m Mode, label string) (Button, bool) {
	for _, b := range Buttons(m) {
		if b.Label == label {
			return b, true
		}
	}
	return Button{}, false
}

func kindOf(label string) ButtonKind {
	switch label {
	case "=":
		return KindEquals
	case "C":
		return KindClear
	case "DEL":
		return KindDelete
	case "sin", "cos", "tan", "log", "ln", "√", "^", "x²", "Exp":
		return KindFunction
	case "+", "-", "×", "÷":
		return KindOperator
	}
	return KindDigit
}
