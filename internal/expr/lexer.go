package expr

import (
	"fmt"
	"strconv"
	"unicode"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokNumber
	tokIdent
	tokPi
	tokRoot
	tokPlus
	tokMinus
	tokStar
	tokSlash
	tokCaret
	tokLParen
	tokRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokEOF:
		return "end of input"
	case tokNumber:
		return "number"
	case tokIdent:
		return "name"
	case tokPi:
		return "π"
	case tokRoot:
		return "√"
	case tokPlus:
		return "+"
	case tokMinus:
		return "-"
	case tokStar:
		return "×"
	case tokSlash:
		return "÷"
	case tokCaret:
		return "^"
	case tokLParen:
		return "("
	case tokRParen:
		return ")"
	default:
		return "?"
	}
}

type token struct {
	kind tokenKind
	text string
	num  float64
	pos  int
}

// lexer walks the input by rune; the keypad glyphs (π √ × ÷) are multi-byte.
type lexer struct {
	s []rune
	i int
}

func newLexer(input string) *lexer {
	return &lexer{s: []rune(input)}
}

func (l *lexer) next() (token, error) {
	for l.i < len(l.s) && unicode.IsSpace(l.s[l.i]) {
		l.i++
	}
	if l.i >= len(l.s) {
		return token{kind: tokEOF, pos: l.i}, nil
	}

	start := l.i
	ch := l.s[l.i]
	single := func(k tokenKind) (token, error) {
		l.i++
		return token{kind: k, text: string(ch), pos: start}, nil
	}

	switch ch {
	case '+':
		return single(tokPlus)
	case '-', '−':
		return single(tokMinus)
	case '×', '*':
		return single(tokStar)
	case '÷', '/':
		return single(tokSlash)
	case '^':
		return single(tokCaret)
	case '(':
		return single(tokLParen)
	case ')':
		return single(tokRParen)
	case 'π':
		return single(tokPi)
	case '√':
		return single(tokRoot)
	}

	if ch == '.' || isDigit(ch) {
		return l.number()
	}
	if isLetter(ch) {
		for l.i < len(l.s) && isLetter(l.s[l.i]) {
			l.i++
		}
		return token{kind: tokIdent, text: string(l.s[start:l.i]), pos: start}, nil
	}

	return token{}, fmt.Errorf("%w: unexpected %q at position %d", ErrSyntax, ch, start)
}

// number scans digits with at most one decimal point. Exponent notation is not
// part of the keypad alphabet: "e" is always Euler's number.
func (l *lexer) number() (token, error) {
	start := l.i
	digits := 0
	dot := false
	for l.i < len(l.s) {
		ch := l.s[l.i]
		switch {
		case isDigit(ch):
			digits++
		case ch == '.':
			if dot {
				return token{}, fmt.Errorf("%w: malformed number %q", ErrSyntax, string(l.s[start:l.i+1]))
			}
			dot = true
		default:
			return l.finishNumber(start, digits)
		}
		l.i++
	}
	return l.finishNumber(start, digits)
}

func (l *lexer) finishNumber(start, digits int) (token, error) {
	text := string(l.s[start:l.i])
	if digits == 0 {
		return token{}, fmt.Errorf("%w: malformed number %q", ErrSyntax, text)
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return token{}, fmt.Errorf("%w: malformed number %q", ErrSyntax, text)
	}
	return token{kind: tokNumber, text: text, num: v, pos: start}, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}
