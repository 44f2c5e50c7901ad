package cst

import (
	"github.com/pycst/go-pycst/codegen"
)

// Attribute is an attribute access such as "x.y". Chained accesses nest on
// the left: "x.y.z" is an Attribute whose Value is the Attribute for "x.y".
type Attribute struct {
	Parens
	Value Expression
	Attr  *Name
	Dot   Dot
}

func (a *Attribute) assignTargetNode() {}
func (a *Attribute) delTargetNode()    {}

func (a *Attribute) validate() error {
	if err := a.validateParens(); err != nil {
		return err
	}
	if a.Value == nil {
		return invalidf("attribute must have a value")
	}
	if a.Attr == nil {
		return invalidf("attribute must have an attr name")
	}
	return validateChildren(a.Value, &a.Dot, a.Attr)
}

func (a *Attribute) codegen(s *codegen.State) error {
	return a.renderParenthesized(s, func() error {
		if err := a.Value.codegen(s); err != nil {
			return err
		}
		if err := a.Dot.codegen(s); err != nil {
			return err
		}
		return a.Attr.codegen(s)
	})
}

func (a *Attribute) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", a.LPar)
	if err != nil {
		return nil, err
	}
	value, err := visitRequired(v, "Value", a.Value)
	if err != nil {
		return nil, err
	}
	dot, err := visitRequired(v, "Dot", &a.Dot)
	if err != nil {
		return nil, err
	}
	attr, err := visitRequired(v, "Attr", a.Attr)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", a.RPar)
	if err != nil {
		return nil, err
	}
	return New(&Attribute{
		Parens: Parens{LPar: lpar, RPar: rpar},
		Value:  value,
		Attr:   attr,
		Dot:    *dot,
	})
}

// Starred is a "*expr" expansion in assignment target position.
type Starred struct {
	Parens
	Expression          Expression
	WhitespaceAfterStar SimpleWhitespace
}

func (st *Starred) assignTargetNode() {}

func (st *Starred) validate() error {
	if err := st.validateParens(); err != nil {
		return err
	}
	if st.Expression == nil {
		return invalidf("starred target must have an expression")
	}
	if err := st.Expression.validate(); err != nil {
		return err
	}
	return validateWhitespace(&st.WhitespaceAfterStar)
}

func (st *Starred) codegen(s *codegen.State) error {
	return st.renderParenthesized(s, func() error {
		s.Append("*")
		if err := st.WhitespaceAfterStar.codegen(s); err != nil {
			return err
		}
		return st.Expression.codegen(s)
	})
}

func (st *Starred) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", st.LPar)
	if err != nil {
		return nil, err
	}
	ws, err := visitRequired(v, "WhitespaceAfterStar", &st.WhitespaceAfterStar)
	if err != nil {
		return nil, err
	}
	expr, err := visitRequired(v, "Expression", st.Expression)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", st.RPar)
	if err != nil {
		return nil, err
	}
	return New(&Starred{
		Parens:              Parens{LPar: lpar, RPar: rpar},
		Expression:          expr,
		WhitespaceAfterStar: *ws,
	})
}

// ComparisonTarget is one operator and right operand pair inside a chained
// comparison. The target owns its operator.
type ComparisonTarget struct {
	Operator   CompOp
	Comparator Expression
}

func (ct *ComparisonTarget) validate() error {
	if ct.Comparator == nil {
		return invalidf("comparison target must have a comparator")
	}
	if err := validateChildren(&ct.Operator, ct.Comparator); err != nil {
		return err
	}
	if ct.Operator.Op.wordOperator() &&
		ct.Operator.WhitespaceAfter.IsEmpty() &&
		!ct.Comparator.wordOperatorSafe(PositionRight) {
		return invalidf("must have at least one space around comparison operator")
	}
	return nil
}

func (ct *ComparisonTarget) codegen(s *codegen.State) error {
	if err := ct.Operator.codegen(s); err != nil {
		return err
	}
	return ct.Comparator.codegen(s)
}

func (ct *ComparisonTarget) ReplaceChildren(v Visitor) (Node, error) {
	op, err := visitRequired(v, "Operator", &ct.Operator)
	if err != nil {
		return nil, err
	}
	comp, err := visitRequired(v, "Comparator", ct.Comparator)
	if err != nil {
		return nil, err
	}
	return New(&ComparisonTarget{Operator: *op, Comparator: comp})
}

// Comparison is a chained comparison such as "x < y < z". Left is the first
// operand; each link in the chain is a ComparisonTarget.
type Comparison struct {
	Parens
	Left        Expression
	Comparisons []*ComparisonTarget
}

func (c *Comparison) validate() error {
	if err := c.validateParens(); err != nil {
		return err
	}
	if c.Left == nil {
		return invalidf("comparison must have a left operand")
	}
	if len(c.Comparisons) == 0 {
		return invalidf("must have at least one comparison target")
	}
	if err := c.Left.validate(); err != nil {
		return err
	}
	for _, target := range c.Comparisons {
		if err := target.validate(); err != nil {
			return err
		}
	}
	op := &c.Comparisons[0].Operator
	if op.Op.wordOperator() &&
		op.WhitespaceBefore.IsEmpty() &&
		!c.Left.wordOperatorSafe(PositionLeft) {
		return invalidf("must have at least one space around comparison operator")
	}
	return nil
}

func (c *Comparison) codegen(s *codegen.State) error {
	return c.renderParenthesized(s, func() error {
		if err := c.Left.codegen(s); err != nil {
			return err
		}
		for _, comp := range c.Comparisons {
			if err := comp.codegen(s); err != nil {
				return err
			}
		}
		return nil
	})
}

func (c *Comparison) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", c.LPar)
	if err != nil {
		return nil, err
	}
	left, err := visitRequired(v, "Left", c.Left)
	if err != nil {
		return nil, err
	}
	comps, err := visitSequence(v, "Comparisons", c.Comparisons)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", c.RPar)
	if err != nil {
		return nil, err
	}
	return New(&Comparison{
		Parens:      Parens{LPar: lpar, RPar: rpar},
		Left:        left,
		Comparisons: comps,
	})
}

// UnaryOperation applies a unary operator to an expression, as in "not x" or
// "-x". An immediate sign on a numeric literal is a Number instead.
type UnaryOperation struct {
	Parens
	Operator   UnaryOp
	Expression Expression
}

func (u *UnaryOperation) validate() error {
	if err := u.validateParens(); err != nil {
		return err
	}
	if u.Expression == nil {
		return invalidf("unary operation must have an expression")
	}
	if err := validateChildren(&u.Operator, u.Expression); err != nil {
		return err
	}
	if u.Operator.Op == OpNot &&
		u.Operator.WhitespaceAfter.IsEmpty() &&
		!u.Expression.wordOperatorSafe(PositionRight) {
		return invalidf("must have at least one space after not operator")
	}
	return nil
}

func (u *UnaryOperation) codegen(s *codegen.State) error {
	return u.renderParenthesized(s, func() error {
		if err := u.Operator.codegen(s); err != nil {
			return err
		}
		return u.Expression.codegen(s)
	})
}

func (u *UnaryOperation) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", u.LPar)
	if err != nil {
		return nil, err
	}
	op, err := visitRequired(v, "Operator", &u.Operator)
	if err != nil {
		return nil, err
	}
	expr, err := visitRequired(v, "Expression", u.Expression)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", u.RPar)
	if err != nil {
		return nil, err
	}
	return New(&UnaryOperation{
		Parens:     Parens{LPar: lpar, RPar: rpar},
		Operator:   *op,
		Expression: expr,
	})
}

// BinaryOperation is any binary arithmetic or bitwise operation such as
// "x + y" or "x << y".
type BinaryOperation struct {
	Parens
	Left     Expression
	Operator BinaryOp
	Right    Expression
}

func (b *BinaryOperation) validate() error {
	if err := b.validateParens(); err != nil {
		return err
	}
	if b.Left == nil || b.Right == nil {
		return invalidf("binary operation must have two operands")
	}
	return validateChildren(b.Left, &b.Operator, b.Right)
}

func (b *BinaryOperation) codegen(s *codegen.State) error {
	return b.renderParenthesized(s, func() error {
		if err := b.Left.codegen(s); err != nil {
			return err
		}
		if err := b.Operator.codegen(s); err != nil {
			return err
		}
		return b.Right.codegen(s)
	})
}

func (b *BinaryOperation) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", b.LPar)
	if err != nil {
		return nil, err
	}
	left, err := visitRequired(v, "Left", b.Left)
	if err != nil {
		return nil, err
	}
	op, err := visitRequired(v, "Operator", &b.Operator)
	if err != nil {
		return nil, err
	}
	right, err := visitRequired(v, "Right", b.Right)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", b.RPar)
	if err != nil {
		return nil, err
	}
	return New(&BinaryOperation{
		Parens:   Parens{LPar: lpar, RPar: rpar},
		Left:     left,
		Operator: *op,
		Right:    right,
	})
}

// BooleanOperation is "x and y" or "x or y". Both operators are words, so
// both sides need spacing or safe adjacency.
type BooleanOperation struct {
	Parens
	Left     Expression
	Operator BooleanOp
	Right    Expression
}

func (b *BooleanOperation) validate() error {
	if err := b.validateParens(); err != nil {
		return err
	}
	if b.Left == nil || b.Right == nil {
		return invalidf("boolean operation must have two operands")
	}
	if err := validateChildren(b.Left, &b.Operator, b.Right); err != nil {
		return err
	}
	if b.Operator.WhitespaceBefore.IsEmpty() &&
		!b.Left.wordOperatorSafe(PositionLeft) {
		return invalidf("must have at least one space around boolean operator")
	}
	if b.Operator.WhitespaceAfter.IsEmpty() &&
		!b.Right.wordOperatorSafe(PositionRight) {
		return invalidf("must have at least one space around boolean operator")
	}
	return nil
}

func (b *BooleanOperation) codegen(s *codegen.State) error {
	return b.renderParenthesized(s, func() error {
		if err := b.Left.codegen(s); err != nil {
			return err
		}
		if err := b.Operator.codegen(s); err != nil {
			return err
		}
		return b.Right.codegen(s)
	})
}

func (b *BooleanOperation) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", b.LPar)
	if err != nil {
		return nil, err
	}
	left, err := visitRequired(v, "Left", b.Left)
	if err != nil {
		return nil, err
	}
	op, err := visitRequired(v, "Operator", &b.Operator)
	if err != nil {
		return nil, err
	}
	right, err := visitRequired(v, "Right", b.Right)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", b.RPar)
	if err != nil {
		return nil, err
	}
	return New(&BooleanOperation{
		Parens:   Parens{LPar: lpar, RPar: rpar},
		Left:     left,
		Operator: *op,
		Right:    right,
	})
}

// IfExp is a conditional expression: "body if test else orelse".
type IfExp struct {
	Parens
	Test   Expression
	Body   Expression
	OrElse Expression

	WhitespaceBeforeIf   SimpleWhitespace
	WhitespaceAfterIf    SimpleWhitespace
	WhitespaceBeforeElse SimpleWhitespace
	WhitespaceAfterElse  SimpleWhitespace
}

func (ie *IfExp) validate() error {
	if err := ie.validateParens(); err != nil {
		return err
	}
	if ie.Test == nil || ie.Body == nil || ie.OrElse == nil {
		return invalidf("if expression must have test, body and orelse")
	}
	if err := validateChildren(ie.Body, ie.Test, ie.OrElse); err != nil {
		return err
	}
	if err := validateWhitespace(
		&ie.WhitespaceBeforeIf, &ie.WhitespaceAfterIf,
		&ie.WhitespaceBeforeElse, &ie.WhitespaceAfterElse,
	); err != nil {
		return err
	}
	if ie.WhitespaceBeforeIf.IsEmpty() && !ie.Body.wordOperatorSafe(PositionLeft) {
		return invalidf("must have at least one space before 'if' keyword")
	}
	if ie.WhitespaceAfterIf.IsEmpty() && !ie.Test.wordOperatorSafe(PositionRight) {
		return invalidf("must have at least one space after 'if' keyword")
	}
	if ie.WhitespaceBeforeElse.IsEmpty() && !ie.Test.wordOperatorSafe(PositionLeft) {
		return invalidf("must have at least one space before 'else' keyword")
	}
	if ie.WhitespaceAfterElse.IsEmpty() && !ie.OrElse.wordOperatorSafe(PositionRight) {
		return invalidf("must have at least one space after 'else' keyword")
	}
	return nil
}

func (ie *IfExp) codegen(s *codegen.State) error {
	return ie.renderParenthesized(s, func() error {
		if err := ie.Body.codegen(s); err != nil {
			return err
		}
		if err := ie.WhitespaceBeforeIf.codegen(s); err != nil {
			return err
		}
		s.Append("if")
		if err := ie.WhitespaceAfterIf.codegen(s); err != nil {
			return err
		}
		if err := ie.Test.codegen(s); err != nil {
			return err
		}
		if err := ie.WhitespaceBeforeElse.codegen(s); err != nil {
			return err
		}
		s.Append("else")
		if err := ie.WhitespaceAfterElse.codegen(s); err != nil {
			return err
		}
		return ie.OrElse.codegen(s)
	})
}

func (ie *IfExp) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", ie.LPar)
	if err != nil {
		return nil, err
	}
	body, err := visitRequired(v, "Body", ie.Body)
	if err != nil {
		return nil, err
	}
	wsBeforeIf, err := visitRequired(v, "WhitespaceBeforeIf", &ie.WhitespaceBeforeIf)
	if err != nil {
		return nil, err
	}
	wsAfterIf, err := visitRequired(v, "WhitespaceAfterIf", &ie.WhitespaceAfterIf)
	if err != nil {
		return nil, err
	}
	test, err := visitRequired(v, "Test", ie.Test)
	if err != nil {
		return nil, err
	}
	wsBeforeElse, err := visitRequired(v, "WhitespaceBeforeElse", &ie.WhitespaceBeforeElse)
	if err != nil {
		return nil, err
	}
	wsAfterElse, err := visitRequired(v, "WhitespaceAfterElse", &ie.WhitespaceAfterElse)
	if err != nil {
		return nil, err
	}
	orElse, err := visitRequired(v, "OrElse", ie.OrElse)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", ie.RPar)
	if err != nil {
		return nil, err
	}
	return New(&IfExp{
		Parens:               Parens{LPar: lpar, RPar: rpar},
		Test:                 test,
		Body:                 body,
		OrElse:               orElse,
		WhitespaceBeforeIf:   *wsBeforeIf,
		WhitespaceAfterIf:    *wsAfterIf,
		WhitespaceBeforeElse: *wsBeforeElse,
		WhitespaceAfterElse:  *wsAfterElse,
	})
}

// Call is a function call. The argument ordering rules are enforced by
// validateArgs.
type Call struct {
	Parens
	Func Expression
	Args []*Arg

	WhitespaceAfterFunc  SimpleWhitespace
	WhitespaceBeforeArgs SimpleWhitespace
}

// wordOperatorSafe: a call always ends in a close paren, so its left side is
// safe against a word operator regardless of outer parens.
func (c *Call) wordOperatorSafe(pos ExpressionPosition) bool {
	if pos == PositionLeft {
		return true
	}
	return c.Parens.wordOperatorSafe(pos)
}

func (c *Call) validate() error {
	if err := c.validateParens(); err != nil {
		return err
	}
	if c.Func == nil {
		return invalidf("call must have a func expression")
	}
	if err := c.Func.validate(); err != nil {
		return err
	}
	for _, arg := range c.Args {
		if err := arg.validate(); err != nil {
			return err
		}
	}
	if err := validateWhitespace(&c.WhitespaceAfterFunc, &c.WhitespaceBeforeArgs); err != nil {
		return err
	}
	return validateArgs(c.Args)
}

func (c *Call) codegen(s *codegen.State) error {
	return c.renderParenthesized(s, func() error {
		if err := c.Func.codegen(s); err != nil {
			return err
		}
		if err := c.WhitespaceAfterFunc.codegen(s); err != nil {
			return err
		}
		s.Append("(")
		if err := c.WhitespaceBeforeArgs.codegen(s); err != nil {
			return err
		}
		last := len(c.Args) - 1
		for i, arg := range c.Args {
			if err := arg.render(s, i != last); err != nil {
				return err
			}
		}
		s.Append(")")
		return nil
	})
}

func (c *Call) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", c.LPar)
	if err != nil {
		return nil, err
	}
	fn, err := visitRequired(v, "Func", c.Func)
	if err != nil {
		return nil, err
	}
	wsAfterFunc, err := visitRequired(v, "WhitespaceAfterFunc", &c.WhitespaceAfterFunc)
	if err != nil {
		return nil, err
	}
	wsBeforeArgs, err := visitRequired(v, "WhitespaceBeforeArgs", &c.WhitespaceBeforeArgs)
	if err != nil {
		return nil, err
	}
	args, err := visitSequence(v, "Args", c.Args)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", c.RPar)
	if err != nil {
		return nil, err
	}
	return New(&Call{
		Parens:               Parens{LPar: lpar, RPar: rpar},
		Func:                 fn,
		Args:                 args,
		WhitespaceAfterFunc:  *wsAfterFunc,
		WhitespaceBeforeArgs: *wsBeforeArgs,
	})
}

// Await wraps an expression in "await". The keyword always needs a space
// after it.
type Await struct {
	Parens
	Expression           Expression
	WhitespaceAfterAwait SimpleWhitespace
}

func (aw *Await) validate() error {
	if err := aw.validateParens(); err != nil {
		return err
	}
	if aw.Expression == nil {
		return invalidf("await must have an expression")
	}
	if err := aw.Expression.validate(); err != nil {
		return err
	}
	if err := validateWhitespace(&aw.WhitespaceAfterAwait); err != nil {
		return err
	}
	if aw.WhitespaceAfterAwait.IsEmpty() {
		return invalidf("must have at least one space after await")
	}
	return nil
}

func (aw *Await) codegen(s *codegen.State) error {
	return aw.renderParenthesized(s, func() error {
		s.Append("await")
		if err := aw.WhitespaceAfterAwait.codegen(s); err != nil {
			return err
		}
		return aw.Expression.codegen(s)
	})
}

func (aw *Await) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", aw.LPar)
	if err != nil {
		return nil, err
	}
	ws, err := visitRequired(v, "WhitespaceAfterAwait", &aw.WhitespaceAfterAwait)
	if err != nil {
		return nil, err
	}
	expr, err := visitRequired(v, "Expression", aw.Expression)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", aw.RPar)
	if err != nil {
		return nil, err
	}
	return New(&Await{
		Parens:               Parens{LPar: lpar, RPar: rpar},
		Expression:           expr,
		WhitespaceAfterAwait: *ws,
	})
}

// From is the "from x" stanza of a yield. A nil WhitespaceBeforeFrom defers
// to the owner's default spacing.
type From struct {
	Item Expression

	WhitespaceBeforeFrom *SimpleWhitespace
	WhitespaceAfterFrom  SimpleWhitespace
}

func (f *From) validate() error {
	if f.Item == nil {
		return invalidf("from must have an item")
	}
	if err := f.Item.validate(); err != nil {
		return err
	}
	if f.WhitespaceBeforeFrom != nil {
		if err := validateWhitespace(f.WhitespaceBeforeFrom); err != nil {
			return err
		}
	}
	if err := validateWhitespace(&f.WhitespaceAfterFrom); err != nil {
		return err
	}
	if f.WhitespaceAfterFrom.IsEmpty() && !f.Item.wordOperatorSafe(PositionRight) {
		return invalidf("must have at least one space after 'from' keyword")
	}
	return nil
}

func (f *From) render(s *codegen.State, defaultSpace string) error {
	if f.WhitespaceBeforeFrom != nil {
		if err := f.WhitespaceBeforeFrom.codegen(s); err != nil {
			return err
		}
	} else {
		s.Append(defaultSpace)
	}
	s.Append("from")
	if err := f.WhitespaceAfterFrom.codegen(s); err != nil {
		return err
	}
	return f.Item.codegen(s)
}

func (f *From) codegen(s *codegen.State) error {
	return f.render(s, "")
}

func (f *From) ReplaceChildren(v Visitor) (Node, error) {
	wsBefore := f.WhitespaceBeforeFrom
	if wsBefore != nil {
		var err error
		wsBefore, err = visitSentinel(v, "WhitespaceBeforeFrom", wsBefore)
		if err != nil {
			return nil, err
		}
	}
	item, err := visitRequired(v, "Item", f.Item)
	if err != nil {
		return nil, err
	}
	wsAfter, err := visitRequired(v, "WhitespaceAfterFrom", &f.WhitespaceAfterFrom)
	if err != nil {
		return nil, err
	}
	return New(&From{
		Item:                 item,
		WhitespaceBeforeFrom: wsBefore,
		WhitespaceAfterFrom:  *wsAfter,
	})
}

// Yield is "yield", "yield x", or "yield from x". Value is nil for a bare
// yield, an Expression for a plain yield, or a *From for a delegating yield.
// A nil WhitespaceAfterYield renders as one space when a value is present
// and nothing otherwise.
type Yield struct {
	Parens
	Value Node

	WhitespaceAfterYield *SimpleWhitespace
}

func (y *Yield) validate() error {
	if err := y.validateParens(); err != nil {
		return err
	}
	switch value := y.Value.(type) {
	case nil:
	case *From:
		if err := value.validate(); err != nil {
			return err
		}
		if y.WhitespaceAfterYield != nil && y.WhitespaceAfterYield.IsEmpty() {
			return invalidf("must have at least one space after 'yield' keyword")
		}
	case Expression:
		if err := value.validate(); err != nil {
			return err
		}
		if y.WhitespaceAfterYield != nil && y.WhitespaceAfterYield.IsEmpty() &&
			!value.wordOperatorSafe(PositionRight) {
			return invalidf("must have at least one space after 'yield' keyword")
		}
	default:
		return invalidf("yield value must be an expression or a from clause")
	}
	if y.WhitespaceAfterYield != nil {
		return validateWhitespace(y.WhitespaceAfterYield)
	}
	return nil
}

func (y *Yield) codegen(s *codegen.State) error {
	return y.renderParenthesized(s, func() error {
		s.Append("yield")
		if y.WhitespaceAfterYield != nil {
			if err := y.WhitespaceAfterYield.codegen(s); err != nil {
				return err
			}
		} else if y.Value != nil {
			s.Append(" ")
		}
		switch value := y.Value.(type) {
		case nil:
			return nil
		case *From:
			return value.render(s, "")
		default:
			return value.codegen(s)
		}
	})
}

func (y *Yield) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", y.LPar)
	if err != nil {
		return nil, err
	}
	ws := y.WhitespaceAfterYield
	if ws != nil {
		ws, err = visitSentinel(v, "WhitespaceAfterYield", ws)
		if err != nil {
			return nil, err
		}
	}
	value := y.Value
	if value != nil {
		value, err = visitOptional(v, "Value", value)
		if err != nil {
			return nil, err
		}
	}
	rpar, err := visitSequence(v, "RPar", y.RPar)
	if err != nil {
		return nil, err
	}
	return New(&Yield{
		Parens:               Parens{LPar: lpar, RPar: rpar},
		Value:                value,
		WhitespaceAfterYield: ws,
	})
}
