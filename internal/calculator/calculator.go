// Package calculator is the smart calculator widget: the display buffer a student types into,
// the equation echo above it, a short history of results and the keypad layout for each mode.
//
// A Calculator is owned by a single goroutine (the UI loop or a command) and is not safe for
// concurrent use.
package calculator

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"edutool/internal/expr"

	"go.uber.org/zap"
)

const (
	// Zero is the display of an empty calculator.
	Zero = "0"
	// ErrorDisplay replaces the buffer when an evaluation fails.
	ErrorDisplay = "Error"
)

var (
	ErrUnknownMode   = errors.New("unknown calculator mode")
	ErrUnknownButton = errors.New("button not available in this mode")
)

// Calculator holds the widget state.
type Calculator struct {
	display  string
	equation string
	history  *History
	mode     Mode
	logger   *zap.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithMode sets the starting keypad layout.
func WithMode(m Mode) Option {
	return func(c *Calculator) { c.mode = m }
}

// WithHistorySize caps the history panel.
func WithHistorySize(n int) Option {
	return func(c *Calculator) { c.history = NewHistory(n) }
}

// WithLogger attaches a logger; evaluations are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(c *Calculator) {
		if l != nil {
			c.logger = l
		}
	}
}

// New returns a calculator showing "0" in basic mode.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		display: Zero,
		history: NewHistory(DefaultHistorySize),
		mode:    ModeBasic,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Calculator) Display() string  { return c.display }
func (c *Calculator) Equation() string { return c.equation }
func (c *Calculator) Mode() Mode       { return c.mode }

// History returns the recent evaluations, newest first.
func (c *Calculator) History() []Entry { return c.history.Entries() }

// SetMode switches the keypad layout. The buffer is left alone.
func (c *Calculator) SetMode(m Mode) {
	if m == c.mode {
		return
	}
	c.logger.Debug("mode changed", zap.Stringer("from", c.mode), zap.Stringer("to", m))
	c.mode = m
}

// Input appends a token to the display buffer.
//
// After an error the token replaces the buffer. A lone "0" is also replaced, unless the
// token continues a number or an expression (".", an operator or ")").
func (c *Calculator) Input(token string) {
	if token == "" {
		return
	}
	switch {
	case c.display == ErrorDisplay:
		c.display = token
	case c.display == Zero && !continuesZero(token):
		c.display = token
	default:
		c.display += token
	}
}

func continuesZero(token string) bool {
	switch token {
	case ".", "×", "÷", "+", "-", ")":
		return true
	}
	return false
}

// Delete removes the last character; the buffer never becomes empty.
func (c *Calculator) Delete() {
	if utf8.RuneCountInString(c.display) <= 1 {
		c.display = Zero
		return
	}
	_, size := utf8.DecodeLastRuneInString(c.display)
	c.display = c.display[:len(c.display)-size]
}

// Clear resets the buffer and the equation echo. History is kept.
func (c *Calculator) Clear() {
	c.display = Zero
	c.equation = ""
}

// Calculate evaluates the buffer. On failure the buffer becomes "Error" and the error
// is returned for logging only; history and echo are untouched.
func (c *Calculator) Calculate() error {
	input := c.display
	v, err := expr.Evaluate(input)
	if err != nil {
		c.logger.Debug("evaluation failed", zap.String("expr", input), zap.Error(err))
		c.display = ErrorDisplay
		return err
	}

	result := expr.Format(v)
	c.history.Push(Entry{Expression: input, Result: result})
	c.equation = input + " ="
	c.display = result
	c.logger.Debug("evaluated", zap.String("expr", input), zap.String("result", result))
	return nil
}

// Press dispatches a keypad button of the current mode.
func (c *Calculator) Press(label string) error {
	b, ok := Lookup(c.mode, label)
	if !ok {
		return fmt.Errorf("%w: %q in %s mode", ErrUnknownButton, label, c.mode)
	}
	switch b.Kind {
	case KindEquals:
		return c.Calculate()
	case KindClear:
		c.Clear()
	case KindDelete:
		c.Delete()
	default:
		c.Input(b.Token())
	}
	return nil
}

// Snapshot is a copy of the widget state for rendering.
type Snapshot struct {
	Display  string
	Equation string
	Mode     Mode
	History  []Entry
}

func (c *Calculator) Snapshot() Snapshot {
	return Snapshot{
		Display:  c.display,
		Equation: c.equation,
		Mode:     c.mode,
		History:  c.history.Entries(),
	}
}
