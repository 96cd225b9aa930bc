package expr

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var (
	// ErrEvaluation is the single failure kind of the evaluator.
	ErrEvaluation = errors.New("evaluation failure")

	// ErrSyntax reports input that is not a valid expression.
	ErrSyntax = fmt.Errorf("%w: syntax", ErrEvaluation)

	// ErrNotFinite reports a NaN or infinite result (division by zero, log of a negative).
	ErrNotFinite = fmt.Errorf("%w: result is not finite", ErrEvaluation)
)

// decimals is the rounding applied to non-integral results.
const decimals = 10

// Evaluate parses and evaluates input, returning the normalized result.
func Evaluate(input string) (float64, error) {
	n, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return EvalNode(n)
}

// EvalNode evaluates an already parsed tree and normalizes the result.
func EvalNode(n Node) (float64, error) {
	v := Normalize(n.Eval())
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotFinite
	}
	return v, nil
}

// Normalize keeps integral values exact and rounds everything else to ten decimal places.
func Normalize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v == math.Trunc(v) {
		return v
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil {
		return v
	}
	return r
}

// Format renders a result the way the display shows it: shortest round-trip digits,
// plain notation between 1e-6 and 1e21, exponent notation outside.
func Format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		if digits == "" {
			digits = "0"
		}
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
