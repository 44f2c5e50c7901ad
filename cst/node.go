package cst

import (
	"github.com/pycst/go-pycst/codegen"
)

// Node is implemented by every tree node. The unexported methods close the
// set of implementations to this package; external callers interact with a
// node through New, Render, and ReplaceChildren.
type Node interface {
	// validate checks the node's own fields and runs validate on each of
	// its immediate children, so validating a root checks the whole tree.
	validate() error

	// codegen appends the node's exact textual representation to the state,
	// recursively rendering children in source order.
	codegen(*codegen.State) error

	// ReplaceChildren produces a structurally new node of the same type with
	// each child field passed through the visitor. Scalar fields are copied
	// unchanged. The new node is re-validated before it is returned.
	ReplaceChildren(Visitor) (Node, error)
}

// ExpressionPosition names the side of an expression adjacent to a word
// operator.
type ExpressionPosition int8

const (
	PositionLeft ExpressionPosition = iota
	PositionRight
)

// Expression is any node that can appear in expression position. Every
// expression owns its parenthesization and answers whether it may sit flush
// against a word operator such as "not" or "in" without the tokens gluing.
type Expression interface {
	Node
	parens() *Parens
	wordOperatorSafe(ExpressionPosition) bool
}

// Atom is the capability tag for the most basic expression forms:
// identifiers and literals.
type Atom interface {
	Expression
	atomNode()
}

// AssignTarget tags expressions valid on the left side of an assignment.
type AssignTarget interface {
	Expression
	assignTargetNode()
}

// DelTarget tags expressions valid as the operand of a del statement.
type DelTarget interface {
	Expression
	delTargetNode()
}

// String tags the string literal forms. The prefix method exposes the
// lowercased literal prefix ("", "r", "b", "f", ...) for cross-operand
// validation.
type String interface {
	Atom
	stringNode()
	prefix() string
}

// NumericLiteral tags the literal payloads a Number may wrap.
type NumericLiteral interface {
	Expression
	numericLiteral()
}

// SliceItem tags the forms a subscript element may hold: a single index or
// a range slice.
type SliceItem interface {
	Node
	sliceItem()
}

// StarArgItem tags the concrete forms of a Parameters star slot: a catch-all
// *args Param or a bare ParamStar marker.
type StarArgItem interface {
	Node
	starArgItem()
}

// FormattedStringContent tags the fragments of a formatted string: literal
// text and embedded expressions.
type FormattedStringContent interface {
	Node
	fstringContent()
}

// New validates a freshly constructed node and returns it. A node that
// fails validation does not come into existence: the zero value and an
// error wrapping ErrValidation are returned instead. Validation descends
// into children, so a subtree written as nested struct literals is checked
// as a whole.
func New[T Node](node T) (T, error) {
	if err := node.validate(); err != nil {
		var zero T
		return zero, err
	}
	return node, nil
}

// MustNew is New for fixtures and tests; it panics on validation failure.
func MustNew[T Node](node T) T {
	node, err := New(node)
	if err != nil {
		panic(err)
	}
	return node
}

// validateChildren runs validate on each child. Callers skip nil optional
// children before the call.
func validateChildren(children ...Node) error {
	for _, c := range children {
		if err := c.validate(); err != nil {
			return err
		}
	}
	return nil
}

var (
	_ Atom = (*Name)(nil)
	_ Atom = (*Ellipsis)(nil)
	_ Atom = (*Number)(nil)

	_ AssignTarget = (*Name)(nil)
	_ AssignTarget = (*Attribute)(nil)
	_ AssignTarget = (*Subscript)(nil)
	_ AssignTarget = (*Starred)(nil)

	_ DelTarget = (*Name)(nil)
	_ DelTarget = (*Attribute)(nil)
	_ DelTarget = (*Subscript)(nil)

	_ String = (*SimpleString)(nil)
	_ String = (*FormattedString)(nil)
	_ String = (*ConcatenatedString)(nil)

	_ NumericLiteral = (*Integer)(nil)
	_ NumericLiteral = (*Float)(nil)
	_ NumericLiteral = (*Imaginary)(nil)

	_ SliceItem = (*Index)(nil)
	_ SliceItem = (*Slice)(nil)

	_ StarArgItem = (*Param)(nil)
	_ StarArgItem = (*ParamStar)(nil)

	_ FormattedStringContent = (*FormattedStringText)(nil)
	_ FormattedStringContent = (*FormattedStringExpression)(nil)

	_ Expression = (*Comparison)(nil)
	_ Expression = (*UnaryOperation)(nil)
	_ Expression = (*BinaryOperation)(nil)
	_ Expression = (*BooleanOperation)(nil)
	_ Expression = (*IfExp)(nil)
	_ Expression = (*Lambda)(nil)
	_ Expression = (*Call)(nil)
	_ Expression = (*Await)(nil)
	_ Expression = (*Yield)(nil)
)
