package cdcl

import "fmt"

// Variable is a propositional variable, a positive integer in [1, N] for
// some fixed N chosen at the start of a solve.
type Variable int32

// Literal is a non-zero signed integer: |l| names a Variable and the sign
// gives its polarity (positive asserts the variable, negative asserts its
// negation).
type Literal int32

// Var returns the variable named by l, regardless of polarity.
func (l Literal) Var() Variable {
	if l < 0 {
		return Variable(-l)
	}
	return Variable(l)
}

// Positive reports whether l asserts its variable true (as opposed to its
// negation).
func (l Literal) Positive() bool {
	return l > 0
}

// Negate returns the complementary literal, ¬l.
func (l Literal) Negate() Literal {
	return -l
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", int32(l))
}

// NewLiteral builds the literal for v under the given polarity.
func NewLiteral(v Variable, positive bool) Literal {
	if positive {
		return Literal(v)
	}
	return Literal(-v)
}

// Value is the result of evaluating a literal (or a variable) against a
// partial assignment: true, false, or not yet assigned.
type Value int8

const (
	Unassigned Value = iota
	True
	False
)

func (v Value) String() string {
	switch v {
	case True:
		return "true"
	case False:
		return "false"
	default:
		return "unassigned"
	}
}

// invert flips True<->False; Unassigned is left unchanged since it has no
// opposite.
func (v Value) invert() Value {
	switch v {
	case True:
		return False
	case False:
		return True
	default:
		return Unassigned
	}
}
