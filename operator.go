package prim

import "github.com/tinywasm/fmt"

// Operator identifies a binary operator of the language.
type Operator uint8

const (
	Add Operator = iota
	Sub
	Mul
	Div
	LeftParen
	RightParen
	Equals
	NotEquals
)

// ParseOperator returns the operator written as symbol in source code.
func ParseOperator(symbol string) (Operator, error) {
	switch symbol {
	case "+":
		return Add, nil
	case "-":
		return Sub, nil
	case "*":
		return Mul, nil
	case "/":
		return Div, nil
	case "(":
		return LeftParen, nil
	case ")":
		return RightParen, nil
	case "==":
		return Equals, nil
	case "!=":
		return NotEquals, nil
	}
	return 0, fmt.Errf("invalid operator: %s", symbol)
}

// String returns the source symbol of the operator.
func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case LeftParen:
		return "("
	case RightParen:
		return ")"
	case Equals:
		return "=="
	case NotEquals:
		return "!="
	}
	return ""
}

// Precedence returns the operator's precedence according to the Shunting
// Yard algorithm. The parentheses carry no meaningful precedence and
// return zero.
func (op Operator) Precedence() uint8 {
	switch op {
	case Mul, Div:
		return 3
	case Add, Sub:
		return 2
	}
	return 0
}

// LeftAssociative reports whether the operator is left associative. All
// current operators are.
func (op Operator) LeftAssociative() bool {
	return true
}
