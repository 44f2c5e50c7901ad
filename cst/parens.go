package cst

import (
	"github.com/pycst/go-pycst/codegen"
)

// LeftParen is an open parenthesis owned by an expression. It owns the
// whitespace to its right; the whitespace to its left belongs to the
// surrounding node.
type LeftParen struct {
	WhitespaceAfter SimpleWhitespace
}

func (p *LeftParen) validate() error {
	return validateWhitespace(&p.WhitespaceAfter)
}

func (p *LeftParen) codegen(s *codegen.State) error {
	s.Append("(")
	return p.WhitespaceAfter.codegen(s)
}

func (p *LeftParen) ReplaceChildren(v Visitor) (Node, error) {
	ws, err := visitRequired(v, "WhitespaceAfter", &p.WhitespaceAfter)
	if err != nil {
		return nil, err
	}
	return New(&LeftParen{WhitespaceAfter: *ws})
}

// RightParen is a close parenthesis owned by an expression. It owns the
// whitespace to its left.
type RightParen struct {
	WhitespaceBefore SimpleWhitespace
}

func (p *RightParen) validate() error {
	return validateWhitespace(&p.WhitespaceBefore)
}

func (p *RightParen) codegen(s *codegen.State) error {
	if err := p.WhitespaceBefore.codegen(s); err != nil {
		return err
	}
	s.Append(")")
	return nil
}

func (p *RightParen) ReplaceChildren(v Visitor) (Node, error) {
	ws, err := visitRequired(v, "WhitespaceBefore", &p.WhitespaceBefore)
	if err != nil {
		return nil, err
	}
	return New(&RightParen{WhitespaceBefore: *ws})
}

// LeftSquareBracket opens a subscript. It owns the whitespace to its right.
type LeftSquareBracket struct {
	WhitespaceAfter SimpleWhitespace
}

func (b *LeftSquareBracket) validate() error {
	return validateWhitespace(&b.WhitespaceAfter)
}

func (b *LeftSquareBracket) codegen(s *codegen.State) error {
	s.Append("[")
	return b.WhitespaceAfter.codegen(s)
}

func (b *LeftSquareBracket) ReplaceChildren(v Visitor) (Node, error) {
	ws, err := visitRequired(v, "WhitespaceAfter", &b.WhitespaceAfter)
	if err != nil {
		return nil, err
	}
	return New(&LeftSquareBracket{WhitespaceAfter: *ws})
}

// RightSquareBracket closes a subscript. It owns the whitespace to its left.
type RightSquareBracket struct {
	WhitespaceBefore SimpleWhitespace
}

func (b *RightSquareBracket) validate() error {
	return validateWhitespace(&b.WhitespaceBefore)
}

func (b *RightSquareBracket) codegen(s *codegen.State) error {
	if err := b.WhitespaceBefore.codegen(s); err != nil {
		return err
	}
	s.Append("]")
	return nil
}

func (b *RightSquareBracket) ReplaceChildren(v Visitor) (Node, error) {
	ws, err := visitRequired(v, "WhitespaceBefore", &b.WhitespaceBefore)
	if err != nil {
		return nil, err
	}
	return New(&RightSquareBracket{WhitespaceBefore: *ws})
}

// Parens is embedded by every expression node and holds the parenthesis
// pairs the expression owns. Both slices are kept in source order: LPar[0]
// is the outermost open paren and RPar[len(RPar)-1] is the outermost close
// paren. The two slices must always have equal length.
type Parens struct {
	LPar []*LeftParen
	RPar []*RightParen
}

func (p *Parens) parens() *Parens { return p }

func (p *Parens) validateParens() error {
	switch {
	case len(p.LPar) > 0 && len(p.RPar) == 0:
		return invalidf("cannot have left paren without right paren")
	case len(p.LPar) == 0 && len(p.RPar) > 0:
		return invalidf("cannot have right paren without left paren")
	case len(p.LPar) != len(p.RPar):
		return invalidf("cannot have unbalanced parens")
	}
	for _, lp := range p.LPar {
		if err := lp.validate(); err != nil {
			return err
		}
	}
	for _, rp := range p.RPar {
		if err := rp.validate(); err != nil {
			return err
		}
	}
	return nil
}

// wordOperatorSafe is the default adjacency answer: flush contact with a
// word operator is safe only when the expression is wrapped in at least one
// parenthesis pair. Node kinds with stronger guarantees shadow this.
func (p *Parens) wordOperatorSafe(ExpressionPosition) bool {
	return len(p.LPar) > 0 && len(p.RPar) > 0
}

// renderParenthesized emits the open parens, runs the inner render, and
// emits the close parens. The closing sequence is emitted even when the
// inner render fails, so the sink never holds dangling open parens.
func (p *Parens) renderParenthesized(s *codegen.State, inner func() error) error {
	for _, lp := range p.LPar {
		if err := lp.codegen(s); err != nil {
			return err
		}
	}
	err := inner()
	for _, rp := range p.RPar {
		if rpErr := rp.codegen(s); err == nil {
			err = rpErr
		}
	}
	return err
}
