// Package expr evaluates calculator display strings.
//
// Input is the text a student builds from keypad presses, e.g. "sin(30)+2×3" or "√(16".
// The string is tokenized and parsed into an expression tree which is then evaluated in
// float64. Nothing is ever executed dynamically: the grammar only knows numbers, the
// constants π and e, the four arithmetic operators, powers, and the sin/cos/tan/log/ln/√
// functions.
//
// Two keypad conveniences are grammar rules rather than string rewrites:
//
//   - trigonometric calls take degrees; the call node converts to radians itself.
//   - groups still open when the input ends are closed automatically, so "sin(30"
//     evaluates like "sin(30)". Extra closers are never invented and a stray ")"
//     is a syntax error.
//
// Every failure is reported as ErrEvaluation (wrapped by ErrSyntax or ErrNotFinite).
package expr
