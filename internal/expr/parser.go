package expr

import (
	"fmt"
	"math"
)

// Grammar, lowest precedence first:
//
//	sum     = product { ("+" | "-") product }
//	product = unary { ("×" | "÷") unary }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ "^" unary ]
//	primary = number | "π" | "e" | "(" sum close | func "(" sum close | "√" ( number | "(" sum close )
//	close   = ")" | end of input
//
// close is where auto-balancing lives: an open group may be closed by the end of input.
type parser struct {
	l     *lexer
	cur   token
	depth int
}

// Parse turns a display string into an expression tree.
func Parse(input string) (Node, error) {
	p := &parser{l: newLexer(input)}
	if err := p.next(); err != nil {
		return nil, err
	}
	if p.cur.kind == tokEOF {
		return nil, fmt.Errorf("%w: empty expression", ErrSyntax)
	}
	n, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokEOF {
		return nil, p.unexpected()
	}
	return n, nil
}

func (p *parser) next() error {
	t, err := p.l.next()
	if err != nil {
		return err
	}
	p.cur = t
	return nil
}

func (p *parser) unexpected() error {
	if p.cur.kind == tokEOF {
		return fmt.Errorf("%w: unexpected end of input", ErrSyntax)
	}
	if p.cur.kind == tokRParen && p.depth == 0 {
		return fmt.Errorf("%w: unmatched ')' at position %d", ErrSyntax, p.cur.pos)
	}
	return fmt.Errorf("%w: unexpected %s at position %d", ErrSyntax, p.cur.kind, p.cur.pos)
}

func (p *parser) parseSum() (Node, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := byte('+')
		if p.cur.kind == tokMinus {
			op = '-'
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseProduct() (Node, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.cur.kind == tokStar || p.cur.kind == tokSlash {
		op := byte('*')
		if p.cur.kind == tokSlash {
			op = '/'
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = binaryNode{op: op, left: left, right: right}
	}
	return left, nil
}

func (p *parser) parseUnary() (Node, error) {
	if p.cur.kind == tokPlus || p.cur.kind == tokMinus {
		op := byte('+')
		if p.cur.kind == tokMinus {
			op = '-'
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return unaryNode{op: op, x: x}, nil
	}
	return p.parsePower()
}

func (p *parser) parsePower() (Node, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.cur.kind != tokCaret {
		return base, nil
	}
	if err := p.next(); err != nil {
		return nil, err
	}
	exp, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return binaryNode{op: '^', left: base, right: exp}, nil
}

func (p *parser) parsePrimary() (Node, error) {
	switch p.cur.kind {
	case tokNumber:
		n := numberNode{v: p.cur.num, text: p.cur.text}
		return n, p.next()

	case tokPi:
		return constNode{name: "π", v: math.Pi}, p.next()

	case tokIdent:
		name := p.cur.text
		if name == "e" {
			return constNode{name: "e", v: math.E}, p.next()
		}
		fn, ok := funcNames[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown name %q at position %d", ErrSyntax, name, p.cur.pos)
		}
		if err := p.next(); err != nil {
			return nil, err
		}
		if p.cur.kind != tokLParen {
			return nil, fmt.Errorf("%w: %s needs '('", ErrSyntax, name)
		}
		arg, err := p.parseGroup()
		if err != nil {
			return nil, err
		}
		return callNode{fn: fn, arg: arg}, nil

	case tokRoot:
		if err := p.next(); err != nil {
			return nil, err
		}
		switch p.cur.kind {
		case tokNumber:
			arg := numberNode{v: p.cur.num, text: p.cur.text}
			return callNode{fn: FuncSqrt, arg: arg}, p.next()
		case tokLParen:
			arg, err := p.parseGroup()
			if err != nil {
				return nil, err
			}
			return callNode{fn: FuncSqrt, arg: arg}, nil
		default:
			return nil, fmt.Errorf("%w: √ needs a number or '('", ErrSyntax)
		}

	case tokLParen:
		return p.parseGroup()

	default:
		return nil, p.unexpected()
	}
}

// parseGroup consumes "(" sum close with p.cur on the opening parenthesis.
func (p *parser) parseGroup() (Node, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	p.depth++
	inner, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	p.depth--
	switch p.cur.kind {
	case tokRParen:
		return inner, p.next()
	case tokEOF:
		// auto-close
		return inner, nil
	default:
		return nil, p.unexpected()
	}
}
