package cst

import (
	"regexp"
	"unicode"

	"github.com/pycst/go-pycst/codegen"
)

// Lexical shapes of the numeric literals, including underscore separators.
const (
	intPat = `0[xX](?:_?[0-9a-fA-F])+|0[bB](?:_?[01])+|0[oO](?:_?[0-7])+` +
		`|0(?:_?0)*|[1-9](?:_?[0-9])*`
	floatPat = `(?:[0-9](?:_?[0-9])*\.(?:[0-9](?:_?[0-9])*)?|\.[0-9](?:_?[0-9])*)` +
		`(?:[eE][-+]?[0-9](?:_?[0-9])*)?` +
		`|[0-9](?:_?[0-9])*[eE][-+]?[0-9](?:_?[0-9])*`
)

var (
	intRE   = regexp.MustCompile(`^(?:` + intPat + `)$`)
	floatRE = regexp.MustCompile(`^(?:` + floatPat + `)$`)
	imagRE  = regexp.MustCompile(`^(?:(?:` + floatPat + `)[jJ]|[0-9](?:_?[0-9])*[jJ])$`)
)

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// Name is an identifier.
type Name struct {
	Parens
	Value string
}

func (n *Name) atomNode()         {}
func (n *Name) assignTargetNode() {}
func (n *Name) delTargetNode()    {}

func (n *Name) validate() error {
	if err := n.validateParens(); err != nil {
		return err
	}
	if n.Value == "" {
		return invalidf("cannot have empty name identifier")
	}
	if !isIdentifier(n.Value) {
		return invalidf("name %q is not a valid identifier", n.Value)
	}
	return nil
}

func (n *Name) codegen(s *codegen.State) error {
	return n.renderParenthesized(s, func() error {
		s.Append(n.Value)
		return nil
	})
}

func (n *Name) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", n.LPar)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", n.RPar)
	if err != nil {
		return nil, err
	}
	return New(&Name{Parens: Parens{LPar: lpar, RPar: rpar}, Value: n.Value})
}

// Ellipsis is the "..." atom.
type Ellipsis struct {
	Parens
}

func (e *Ellipsis) atomNode() {}

func (e *Ellipsis) validate() error {
	return e.validateParens()
}

func (e *Ellipsis) codegen(s *codegen.State) error {
	return e.renderParenthesized(s, func() error {
		s.Append("...")
		return nil
	})
}

func (e *Ellipsis) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", e.LPar)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", e.RPar)
	if err != nil {
		return nil, err
	}
	return New(&Ellipsis{Parens: Parens{LPar: lpar, RPar: rpar}})
}

// Integer is an integer literal kept as its exact source spelling.
type Integer struct {
	Parens
	Value string
}

func (i *Integer) numericLiteral() {}

func (i *Integer) validate() error {
	if err := i.validateParens(); err != nil {
		return err
	}
	if !intRE.MatchString(i.Value) {
		return invalidf("%q is not a valid integer", i.Value)
	}
	return nil
}

func (i *Integer) codegen(s *codegen.State) error {
	return i.renderParenthesized(s, func() error {
		s.Append(i.Value)
		return nil
	})
}

func (i *Integer) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", i.LPar)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", i.RPar)
	if err != nil {
		return nil, err
	}
	return New(&Integer{Parens: Parens{LPar: lpar, RPar: rpar}, Value: i.Value})
}

// Float is a floating point literal kept as its exact source spelling.
type Float struct {
	Parens
	Value string
}

func (f *Float) numericLiteral() {}

func (f *Float) validate() error {
	if err := f.validateParens(); err != nil {
		return err
	}
	if !floatRE.MatchString(f.Value) {
		return invalidf("%q is not a valid float", f.Value)
	}
	return nil
}

func (f *Float) codegen(s *codegen.State) error {
	return f.renderParenthesized(s, func() error {
		s.Append(f.Value)
		return nil
	})
}

func (f *Float) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", f.LPar)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", f.RPar)
	if err != nil {
		return nil, err
	}
	return New(&Float{Parens: Parens{LPar: lpar, RPar: rpar}, Value: f.Value})
}

// Imaginary is an imaginary literal kept as its exact source spelling.
type Imaginary struct {
	Parens
	Value string
}

func (im *Imaginary) numericLiteral() {}

func (im *Imaginary) validate() error {
	if err := im.validateParens(); err != nil {
		return err
	}
	if !imagRE.MatchString(im.Value) {
		return invalidf("%q is not a valid imaginary literal", im.Value)
	}
	return nil
}

func (im *Imaginary) codegen(s *codegen.State) error {
	return im.renderParenthesized(s, func() error {
		s.Append(im.Value)
		return nil
	})
}

func (im *Imaginary) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", im.LPar)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", im.RPar)
	if err != nil {
		return nil, err
	}
	return New(&Imaginary{Parens: Parens{LPar: lpar, RPar: rpar}, Value: im.Value})
}

// Number is a numeric atom: a literal with an optional immediate sign, as
// in "-5". Operator applications that are not immediate signs are
// UnaryOperation instead.
type Number struct {
	Parens
	// Operator is the optional sign; only + and - are legal here.
	Operator *UnaryOp
	Value    NumericLiteral
}

func (n *Number) atomNode() {}

// wordOperatorSafe: a number is always safe on its left side, because a
// following word operator cannot merge into the number token ("5in xs"
// tokenizes as 5, in, xs).
func (n *Number) wordOperatorSafe(pos ExpressionPosition) bool {
	if pos == PositionLeft {
		return true
	}
	return n.Parens.wordOperatorSafe(pos)
}

func (n *Number) validate() error {
	if err := n.validateParens(); err != nil {
		return err
	}
	if n.Value == nil {
		return invalidf("number must have a literal value")
	}
	if n.Operator != nil && n.Operator.Op != OpPlus && n.Operator.Op != OpMinus {
		return invalidf("a number sign must be + or -")
	}
	if n.Operator != nil {
		if err := n.Operator.validate(); err != nil {
			return err
		}
	}
	return n.Value.validate()
}

func (n *Number) codegen(s *codegen.State) error {
	return n.renderParenthesized(s, func() error {
		if n.Operator != nil {
			if err := n.Operator.codegen(s); err != nil {
				return err
			}
		}
		return n.Value.codegen(s)
	})
}

func (n *Number) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", n.LPar)
	if err != nil {
		return nil, err
	}
	var op *UnaryOp
	if n.Operator != nil {
		op, err = visitOptional(v, "Operator", n.Operator)
		if err != nil {
			return nil, err
		}
	}
	value, err := visitRequired(v, "Value", n.Value)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", n.RPar)
	if err != nil {
		return nil, err
	}
	return New(&Number{
		Parens:   Parens{LPar: lpar, RPar: rpar},
		Operator: op,
		Value:    value,
	})
}
