package calculator

import (
	"fmt"
	"strings"
)

// Mode selects the keypad layout. It never changes how an expression evaluates,
// only which tokens can be entered.
type Mode string

const (
	ModeBasic      Mode = "basic"
	ModeScientific Mode = "scientific"
	ModeWAEC       Mode = "waec"
)

// Modes lists the modes in keypad tab order.
func Modes() []Mode {
	return []Mode{ModeBasic, ModeScientific, ModeWAEC}
}

// ParseMode accepts a mode name in any case.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes() {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want basic, scientific or waec)", ErrUnknownMode, s)
}

// Next returns the mode after m in tab order, wrapping around.
func (m Mode) Next() Mode {
	modes := Modes()
	for i, known := range modes {
		if known == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return ModeBasic
}

func (m Mode) String() string { return string(m) }
