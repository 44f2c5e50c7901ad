package cst

import (
	"github.com/pycst/go-pycst/codegen"
)

// Operators are tagged variants: one node type per grammar category, with a
// kind enum naming the concrete operator. Each operator node owns its
// flanking whitespace; whether zero-width whitespace is legal next to a word
// operator is decided by the parent expression, which also sees the operand.

// BinaryOpKind enumerates the binary arithmetic and bitwise operators.
type BinaryOpKind int8

const (
	OpAdd BinaryOpKind = iota
	OpSubtract
	OpMultiply
	OpDivide
	OpFloorDivide
	OpModulo
	OpPower
	OpLeftShift
	OpRightShift
	OpBitOr
	OpBitAnd
	OpBitXor
	OpMatrixMultiply
)

func (k BinaryOpKind) String() string {
	switch k {
	case OpAdd:
		return "+"
	case OpSubtract:
		return "-"
	case OpMultiply:
		return "*"
	case OpDivide:
		return "/"
	case OpFloorDivide:
		return "//"
	case OpModulo:
		return "%"
	case OpPower:
		return "**"
	case OpLeftShift:
		return "<<"
	case OpRightShift:
		return ">>"
	case OpBitOr:
		return "|"
	case OpBitAnd:
		return "&"
	case OpBitXor:
		return "^"
	case OpMatrixMultiply:
		return "@"
	}
	return "<invalid>"
}

func (k BinaryOpKind) known() bool {
	return k >= OpAdd && k <= OpMatrixMultiply
}

// BinaryOp is the operator of a BinaryOperation.
type BinaryOp struct {
	Op               BinaryOpKind
	WhitespaceBefore SimpleWhitespace
	WhitespaceAfter  SimpleWhitespace
}

func (o *BinaryOp) validate() error {
	if !o.Op.known() {
		return invalidf("unknown binary operator %d", o.Op)
	}
	return validateWhitespace(&o.WhitespaceBefore, &o.WhitespaceAfter)
}

func (o *BinaryOp) codegen(s *codegen.State) error {
	if err := o.WhitespaceBefore.codegen(s); err != nil {
		return err
	}
	s.Append(o.Op.String())
	return o.WhitespaceAfter.codegen(s)
}

func (o *BinaryOp) ReplaceChildren(v Visitor) (Node, error) {
	before, err := visitRequired(v, "WhitespaceBefore", &o.WhitespaceBefore)
	if err != nil {
		return nil, err
	}
	after, err := visitRequired(v, "WhitespaceAfter", &o.WhitespaceAfter)
	if err != nil {
		return nil, err
	}
	return New(&BinaryOp{Op: o.Op, WhitespaceBefore: *before, WhitespaceAfter: *after})
}

// BooleanOpKind enumerates the word-shaped boolean operators.
type BooleanOpKind int8

const (
	OpAnd BooleanOpKind = iota
	OpOr
)

func (k BooleanOpKind) String() string {
	switch k {
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	}
	return "<invalid>"
}

func (k BooleanOpKind) known() bool {
	return k == OpAnd || k == OpOr
}

// BooleanOp is the operator of a BooleanOperation. Both boolean operators
// are word operators.
type BooleanOp struct {
	Op               BooleanOpKind
	WhitespaceBefore SimpleWhitespace
	WhitespaceAfter  SimpleWhitespace
}

func (o *BooleanOp) validate() error {
	if !o.Op.known() {
		return invalidf("unknown boolean operator %d", o.Op)
	}
	return validateWhitespace(&o.WhitespaceBefore, &o.WhitespaceAfter)
}

func (o *BooleanOp) codegen(s *codegen.State) error {
	if err := o.WhitespaceBefore.codegen(s); err != nil {
		return err
	}
	s.Append(o.Op.String())
	return o.WhitespaceAfter.codegen(s)
}

func (o *BooleanOp) ReplaceChildren(v Visitor) (Node, error) {
	before, err := visitRequired(v, "WhitespaceBefore", &o.WhitespaceBefore)
	if err != nil {
		return nil, err
	}
	after, err := visitRequired(v, "WhitespaceAfter", &o.WhitespaceAfter)
	if err != nil {
		return nil, err
	}
	return New(&BooleanOp{Op: o.Op, WhitespaceBefore: *before, WhitespaceAfter: *after})
}

// CompOpKind enumerates the comparison operators.
type CompOpKind int8

const (
	OpLessThan CompOpKind = iota
	OpGreaterThan
	OpEqual
	OpNotEqual
	OpLessThanEqual
	OpGreaterThanEqual
	OpIn
	OpNotIn
	OpIs
	OpIsNot
)

func (k CompOpKind) String() string {
	switch k {
	case OpLessThan:
		return "<"
	case OpGreaterThan:
		return ">"
	case OpEqual:
		return "=="
	case OpNotEqual:
		return "!="
	case OpLessThanEqual:
		return "<="
	case OpGreaterThanEqual:
		return ">="
	case OpIn:
		return "in"
	case OpNotIn:
		return "not in"
	case OpIs:
		return "is"
	case OpIsNot:
		return "is not"
	}
	return "<invalid>"
}

func (k CompOpKind) known() bool {
	return k >= OpLessThan && k <= OpIsNot
}

// wordOperator reports whether the operator is keyword-shaped, so that flush
// contact with an unsafe operand would glue tokens.
func (k CompOpKind) wordOperator() bool {
	switch k {
	case OpIn, OpNotIn, OpIs, OpIsNot:
		return true
	}
	return false
}

func (k CompOpKind) twoWord() bool {
	return k == OpNotIn || k == OpIsNot
}

// CompOp is the operator of a ComparisonTarget. The two-word operators
// ("not in", "is not") own the whitespace between their words.
type CompOp struct {
	Op                CompOpKind
	WhitespaceBefore  SimpleWhitespace
	WhitespaceBetween SimpleWhitespace
	WhitespaceAfter   SimpleWhitespace
}

func (o *CompOp) validate() error {
	if !o.Op.known() {
		return invalidf("unknown comparison operator %d", o.Op)
	}
	if o.Op.twoWord() {
		if o.WhitespaceBetween.IsEmpty() {
			return invalidf("must have at least one space between the words of %q", o.Op.String())
		}
	} else if !o.WhitespaceBetween.IsEmpty() {
		return invalidf("only a two-word comparison operator may own whitespace between words")
	}
	return validateWhitespace(&o.WhitespaceBefore, &o.WhitespaceBetween, &o.WhitespaceAfter)
}

func (o *CompOp) codegen(s *codegen.State) error {
	if err := o.WhitespaceBefore.codegen(s); err != nil {
		return err
	}
	switch o.Op {
	case OpNotIn:
		s.Append("not")
		if err := o.WhitespaceBetween.codegen(s); err != nil {
			return err
		}
		s.Append("in")
	case OpIsNot:
		s.Append("is")
		if err := o.WhitespaceBetween.codegen(s); err != nil {
			return err
		}
		s.Append("not")
	default:
		s.Append(o.Op.String())
	}
	return o.WhitespaceAfter.codegen(s)
}

func (o *CompOp) ReplaceChildren(v Visitor) (Node, error) {
	before, err := visitRequired(v, "WhitespaceBefore", &o.WhitespaceBefore)
	if err != nil {
		return nil, err
	}
	between, err := visitRequired(v, "WhitespaceBetween", &o.WhitespaceBetween)
	if err != nil {
		return nil, err
	}
	after, err := visitRequired(v, "WhitespaceAfter", &o.WhitespaceAfter)
	if err != nil {
		return nil, err
	}
	return New(&CompOp{
		Op:                o.Op,
		WhitespaceBefore:  *before,
		WhitespaceBetween: *between,
		WhitespaceAfter:   *after,
	})
}

// UnaryOpKind enumerates the unary operators.
type UnaryOpKind int8

const (
	OpPlus UnaryOpKind = iota
	OpMinus
	OpBitInvert
	OpNot
)

func (k UnaryOpKind) String() string {
	switch k {
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	case OpBitInvert:
		return "~"
	case OpNot:
		return "not"
	}
	return "<invalid>"
}

func (k UnaryOpKind) known() bool {
	return k >= OpPlus && k <= OpNot
}

// UnaryOp is a prefix operator. It owns only the whitespace to its right;
// whatever precedes it belongs to the surrounding node.
type UnaryOp struct {
	Op              UnaryOpKind
	WhitespaceAfter SimpleWhitespace
}

func (o *UnaryOp) validate() error {
	if !o.Op.known() {
		return invalidf("unknown unary operator %d", o.Op)
	}
	return validateWhitespace(&o.WhitespaceAfter)
}

func (o *UnaryOp) codegen(s *codegen.State) error {
	s.Append(o.Op.String())
	return o.WhitespaceAfter.codegen(s)
}

func (o *UnaryOp) ReplaceChildren(v Visitor) (Node, error) {
	after, err := visitRequired(v, "WhitespaceAfter", &o.WhitespaceAfter)
	if err != nil {
		return nil, err
	}
	return New(&UnaryOp{Op: o.Op, WhitespaceAfter: *after})
}

// Comma is a separator owning its flanking whitespace.
type Comma struct {
	WhitespaceBefore SimpleWhitespace
	WhitespaceAfter  SimpleWhitespace
}

func (c *Comma) validate() error {
	return validateWhitespace(&c.WhitespaceBefore, &c.WhitespaceAfter)
}

func (c *Comma) codegen(s *codegen.State) error {
	if err := c.WhitespaceBefore.codegen(s); err != nil {
		return err
	}
	s.Append(",")
	return c.WhitespaceAfter.codegen(s)
}

func (c *Comma) ReplaceChildren(v Visitor) (Node, error) {
	before, err := visitRequired(v, "WhitespaceBefore", &c.WhitespaceBefore)
	if err != nil {
		return nil, err
	}
	after, err := visitRequired(v, "WhitespaceAfter", &c.WhitespaceAfter)
	if err != nil {
		return nil, err
	}
	return New(&Comma{WhitespaceBefore: *before, WhitespaceAfter: *after})
}

// Colon separates slice bounds and lambda parameters from bodies.
type Colon struct {
	WhitespaceBefore SimpleWhitespace
	WhitespaceAfter  SimpleWhitespace
}

func (c *Colon) validate() error {
	return validateWhitespace(&c.WhitespaceBefore, &c.WhitespaceAfter)
}

func (c *Colon) codegen(s *codegen.State) error {
	if err := c.WhitespaceBefore.codegen(s); err != nil {
		return err
	}
	s.Append(":")
	return c.WhitespaceAfter.codegen(s)
}

func (c *Colon) ReplaceChildren(v Visitor) (Node, error) {
	before, err := visitRequired(v, "WhitespaceBefore", &c.WhitespaceBefore)
	if err != nil {
		return nil, err
	}
	after, err := visitRequired(v, "WhitespaceAfter", &c.WhitespaceAfter)
	if err != nil {
		return nil, err
	}
	return New(&Colon{WhitespaceBefore: *before, WhitespaceAfter: *after})
}

// Dot separates an attribute access.
type Dot struct {
	WhitespaceBefore SimpleWhitespace
	WhitespaceAfter  SimpleWhitespace
}

func (d *Dot) validate() error {
	return validateWhitespace(&d.WhitespaceBefore, &d.WhitespaceAfter)
}

func (d *Dot) codegen(s *codegen.State) error {
	if err := d.WhitespaceBefore.codegen(s); err != nil {
		return err
	}
	s.Append(".")
	return d.WhitespaceAfter.codegen(s)
}

func (d *Dot) ReplaceChildren(v Visitor) (Node, error) {
	before, err := visitRequired(v, "WhitespaceBefore", &d.WhitespaceBefore)
	if err != nil {
		return nil, err
	}
	after, err := visitRequired(v, "WhitespaceAfter", &d.WhitespaceAfter)
	if err != nil {
		return nil, err
	}
	return New(&Dot{WhitespaceBefore: *before, WhitespaceAfter: *after})
}

// AssignEqual is the equals sign of a keyword argument or parameter default.
type AssignEqual struct {
	WhitespaceBefore SimpleWhitespace
	WhitespaceAfter  SimpleWhitespace
}

func (e *AssignEqual) validate() error {
	return validateWhitespace(&e.WhitespaceBefore, &e.WhitespaceAfter)
}

func (e *AssignEqual) codegen(s *codegen.State) error {
	if err := e.WhitespaceBefore.codegen(s); err != nil {
		return err
	}
	s.Append("=")
	return e.WhitespaceAfter.codegen(s)
}

func (e *AssignEqual) ReplaceChildren(v Visitor) (Node, error) {
	before, err := visitRequired(v, "WhitespaceBefore", &e.WhitespaceBefore)
	if err != nil {
		return nil, err
	}
	after, err := visitRequired(v, "WhitespaceAfter", &e.WhitespaceAfter)
	if err != nil {
		return nil, err
	}
	return New(&AssignEqual{WhitespaceBefore: *before, WhitespaceAfter: *after})
}
