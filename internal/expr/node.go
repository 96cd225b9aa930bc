package expr

import (
	"fmt"
	"math"
	"strconv"
)

// Node is a parsed expression tree.
type Node interface {
	// Eval computes the value in float64. Non-finite intermediate values propagate;
	// only the final result is checked by Evaluate.
	Eval() float64
	// String renders the tree back in keypad notation with every group closed.
	String() string
}

// Func identifies one of the keypad functions.
type Func uint8

const (
	FuncSin Func = iota
	FuncCos
	FuncTan
	FuncLog
	FuncLn
	FuncSqrt
)

var funcNames = map[string]Func{
	"sin": FuncSin,
	"cos": FuncCos,
	"tan": FuncTan,
	"log": FuncLog,
	"ln":  FuncLn,
}

func (f Func) String() string {
	switch f {
	case FuncSin:
		return "sin"
	case FuncCos:
		return "cos"
	case FuncTan:
		return "tan"
	case FuncLog:
		return "log"
	case FuncLn:
		return "ln"
	case FuncSqrt:
		return "√"
	default:
		return "?"
	}
}

const radiansPerDegree = math.Pi / 180

func (f Func) apply(x float64) float64 {
	switch f {
	case FuncSin:
		return math.Sin(radiansPerDegree * x)
	case FuncCos:
		return math.Cos(radiansPerDegree * x)
	case FuncTan:
		return math.Tan(radiansPerDegree * x)
	case FuncLog:
		return math.Log10(x)
	case FuncLn:
		return math.Log(x)
	case FuncSqrt:
		return math.Sqrt(x)
	default:
		return math.NaN()
	}
}

type numberNode struct {
	v    float64
	text string
}

func (n numberNode) Eval() float64 { return n.v }

func (n numberNode) String() string {
	if n.text != "" {
		return n.text
	}
	return strconv.FormatFloat(n.v, 'g', -1, 64)
}

type constNode struct {
	name string
	v    float64
}

func (n constNode) Eval() float64  { return n.v }
func (n constNode) String() string { return n.name }

type unaryNode struct {
	op byte
	x  Node
}

func (n unaryNode) Eval() float64 {
	if n.op == '-' {
		return -n.x.Eval()
	}
	return n.x.Eval()
}

func (n unaryNode) String() string { return nodeString(n, 0) }

type binaryNode struct {
	op    byte
	left  Node
	right Node
}

func (n binaryNode) Eval() float64 {
	l, r := n.left.Eval(), n.right.Eval()
	switch n.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	case '^':
		return math.Pow(l, r)
	default:
		return math.NaN()
	}
}

func (n binaryNode) String() string { return nodeString(n, 0) }

type callNode struct {
	fn  Func
	arg Node
}

func (n callNode) Eval() float64 { return n.fn.apply(n.arg.Eval()) }

func (n callNode) String() string {
	return fmt.Sprintf("%s(%s)", n.fn, nodeString(n.arg, 0))
}

func nodeString(n Node, parentPrec int) string {
	switch nn := n.(type) {
	case unaryNode:
		prec := precUnary
		s := string(nn.op) + nodeString(nn.x, prec)
		if prec < parentPrec {
			return "(" + s + ")"
		}
		return s
	case binaryNode:
		prec := binPrec(nn.op)
		leftPrec, rightPrec := prec, prec+1
		if nn.op == '^' {
			// right-associative: a^b^c needs no parentheses on the right
			leftPrec, rightPrec = prec+1, prec
		}
		s := fmt.Sprintf("%s %s %s", nodeString(nn.left, leftPrec), opGlyph(nn.op), nodeString(nn.right, rightPrec))
		if prec < parentPrec {
			return "(" + s + ")"
		}
		return s
	default:
		return n.String()
	}
}

const (
	precSum = iota + 1
	precProduct
	precUnary
	precPower
)

func binPrec(op byte) int {
	switch op {
	case '+', '-':
		return precSum
	case '*', '/':
		return precProduct
	case '^':
		return precPower
	default:
		return 0
	}
}

func opGlyph(op byte) string {
	switch op {
	case '*':
		return "×"
	case '/':
		return "÷"
	default:
		return string(op)
	}
}
