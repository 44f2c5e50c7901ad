package cst

import (
	"strings"

	"github.com/pycst/go-pycst/codegen"
)

// scanPrefix returns the lowercased run of characters before the first quote.
func scanPrefix(s string) string {
	for i, r := range s {
		if r == '"' || r == '\'' {
			return strings.ToLower(s[:i])
		}
	}
	return strings.ToLower(s)
}

// SimpleString is a plain string literal. Value holds the exact source text
// including the prefix and both quotes; the content between the quotes is
// not inspected.
type SimpleString struct {
	Parens
	Value string
}

func (ss *SimpleString) atomNode()   {}
func (ss *SimpleString) stringNode() {}

func (ss *SimpleString) prefix() string {
	return scanPrefix(ss.Value)
}

func (ss *SimpleString) validate() error {
	if err := ss.validateParens(); err != nil {
		return err
	}
	prefix := ss.prefix()
	switch prefix {
	case "", "r", "u", "b", "br", "rb":
	default:
		return invalidf("invalid string prefix")
	}
	plen := len(prefix)
	if len(ss.Value) < plen+2 {
		return invalidf("string must have enclosing quotes")
	}
	quote := ss.Value[plen]
	if (quote != '"' && quote != '\'') || ss.Value[len(ss.Value)-1] != quote {
		return invalidf("string must have matching enclosing quotes")
	}
	if len(ss.Value) >= plen+6 && ss.Value[plen+1] == quote {
		// A doubled open quote on a non-empty literal means triple quotes,
		// so a third one must follow and the literal must close with three.
		if ss.Value[plen+2] != quote ||
			ss.Value[len(ss.Value)-2] != quote ||
			ss.Value[len(ss.Value)-3] != quote {
			return invalidf("string must have matching enclosing quotes")
		}
	}
	return nil
}

func (ss *SimpleString) codegen(s *codegen.State) error {
	return ss.renderParenthesized(s, func() error {
		s.Append(ss.Value)
		return nil
	})
}

func (ss *SimpleString) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", ss.LPar)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", ss.RPar)
	if err != nil {
		return nil, err
	}
	return New(&SimpleString{Parens: Parens{LPar: lpar, RPar: rpar}, Value: ss.Value})
}

// FormattedStringText is a literal run of text inside a formatted string.
type FormattedStringText struct {
	Value string
}

func (t *FormattedStringText) fstringContent() {}

func (t *FormattedStringText) validate() error { return nil }

func (t *FormattedStringText) codegen(s *codegen.State) error {
	s.Append(t.Value)
	return nil
}

func (t *FormattedStringText) ReplaceChildren(Visitor) (Node, error) {
	return New(&FormattedStringText{Value: t.Value})
}

// FormattedStringExpression is an interpolated slot inside a formatted
// string, rendered as "{" expr ["!" conversion] [":" spec] "}".
type FormattedStringExpression struct {
	Expression Expression

	// Conversion is "s", "r", or "a", or empty when absent.
	Conversion string

	// FormatSpec is nil when the slot has no ":" section. A non-nil empty
	// slice renders a bare colon.
	FormatSpec []FormattedStringContent

	WhitespaceBeforeExpression SimpleWhitespace
	WhitespaceAfterExpression  SimpleWhitespace
}

func (fe *FormattedStringExpression) fstringContent() {}

func (fe *FormattedStringExpression) validate() error {
	if fe.Expression == nil {
		return invalidf("formatted string expression must have an expression")
	}
	switch fe.Conversion {
	case "", "s", "r", "a":
	default:
		return invalidf("invalid f-string conversion")
	}
	if err := fe.Expression.validate(); err != nil {
		return err
	}
	for _, spec := range fe.FormatSpec {
		if err := spec.validate(); err != nil {
			return err
		}
	}
	return validateWhitespace(&fe.WhitespaceBeforeExpression, &fe.WhitespaceAfterExpression)
}

func (fe *FormattedStringExpression) codegen(s *codegen.State) error {
	s.Append("{")
	if err := fe.WhitespaceBeforeExpression.codegen(s); err != nil {
		return err
	}
	if err := fe.Expression.codegen(s); err != nil {
		return err
	}
	if err := fe.WhitespaceAfterExpression.codegen(s); err != nil {
		return err
	}
	if fe.Conversion != "" {
		s.Append("!")
		s.Append(fe.Conversion)
	}
	if fe.FormatSpec != nil {
		s.Append(":")
		for _, spec := range fe.FormatSpec {
			if err := spec.codegen(s); err != nil {
				return err
			}
		}
	}
	s.Append("}")
	return nil
}

func (fe *FormattedStringExpression) ReplaceChildren(v Visitor) (Node, error) {
	wsBefore, err := visitRequired(v, "WhitespaceBeforeExpression", &fe.WhitespaceBeforeExpression)
	if err != nil {
		return nil, err
	}
	expr, err := visitRequired(v, "Expression", fe.Expression)
	if err != nil {
		return nil, err
	}
	wsAfter, err := visitRequired(v, "WhitespaceAfterExpression", &fe.WhitespaceAfterExpression)
	if err != nil {
		return nil, err
	}
	spec := fe.FormatSpec
	if spec != nil {
		spec, err = visitSequence(v, "FormatSpec", spec)
		if err != nil {
			return nil, err
		}
	}
	return New(&FormattedStringExpression{
		Expression:                 expr,
		Conversion:                 fe.Conversion,
		FormatSpec:                 spec,
		WhitespaceBeforeExpression: *wsBefore,
		WhitespaceAfterExpression:  *wsAfter,
	})
}

// FormattedString is an f-string literal. Start holds the prefix plus the
// opening quote (for example `f"` or `rf'''`), End holds the closing quote.
type FormattedString struct {
	Parens
	Parts []FormattedStringContent
	Start string
	End   string
}

func (fs *FormattedString) atomNode()   {}
func (fs *FormattedString) stringNode() {}

func (fs *FormattedString) prefix() string {
	return scanPrefix(fs.Start)
}

func (fs *FormattedString) validate() error {
	if err := fs.validateParens(); err != nil {
		return err
	}
	prefix := fs.prefix()
	switch prefix {
	case "f", "fr", "rf":
	default:
		return invalidf("invalid f-string prefix")
	}
	start := fs.Start[len(prefix):]
	if start != fs.End {
		return invalidf("f-string must have matching enclosing quotes")
	}
	switch start {
	case `"`, `'`, `"""`, `'''`:
	default:
		return invalidf("invalid f-string enclosing quotes")
	}
	for _, part := range fs.Parts {
		if err := part.validate(); err != nil {
			return err
		}
	}
	return nil
}

func (fs *FormattedString) codegen(s *codegen.State) error {
	return fs.renderParenthesized(s, func() error {
		s.Append(fs.Start)
		for _, part := range fs.Parts {
			if err := part.codegen(s); err != nil {
				return err
			}
		}
		s.Append(fs.End)
		return nil
	})
}

func (fs *FormattedString) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", fs.LPar)
	if err != nil {
		return nil, err
	}
	parts, err := visitSequence(v, "Parts", fs.Parts)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", fs.RPar)
	if err != nil {
		return nil, err
	}
	return New(&FormattedString{
		Parens: Parens{LPar: lpar, RPar: rpar},
		Parts:  parts,
		Start:  fs.Start,
		End:    fs.End,
	})
}

// ConcatenatedString is two adjacent string literals joined by implicit
// concatenation. Right may itself be a ConcatenatedString, chaining three or
// more literals.
type ConcatenatedString struct {
	Parens
	Left              String
	Right             String
	WhitespaceBetween SimpleWhitespace
}

func (cs *ConcatenatedString) atomNode()   {}
func (cs *ConcatenatedString) stringNode() {}

func (cs *ConcatenatedString) prefix() string {
	return cs.Left.prefix()
}

func (cs *ConcatenatedString) validate() error {
	if err := cs.validateParens(); err != nil {
		return err
	}
	if cs.Left == nil || cs.Right == nil {
		return invalidf("concatenated string must have two operands")
	}
	if _, ok := cs.Left.(*ConcatenatedString); ok {
		return invalidf("cannot concatenate on the left of a concatenation")
	}
	lp := cs.Left.parens()
	rp := cs.Right.parens()
	if len(lp.LPar) > 0 || len(lp.RPar) > 0 || len(rp.LPar) > 0 || len(rp.RPar) > 0 {
		return invalidf("cannot concatenate parenthesized strings")
	}
	leftBytes := strings.Contains(cs.Left.prefix(), "b")
	rightBytes := strings.Contains(cs.Right.prefix(), "b")
	if leftBytes != rightBytes {
		return invalidf("cannot concatenate string and bytes")
	}
	if err := validateChildren(cs.Left, cs.Right); err != nil {
		return err
	}
	return validateWhitespace(&cs.WhitespaceBetween)
}

func (cs *ConcatenatedString) codegen(s *codegen.State) error {
	return cs.renderParenthesized(s, func() error {
		if err := cs.Left.codegen(s); err != nil {
			return err
		}
		if err := cs.WhitespaceBetween.codegen(s); err != nil {
			return err
		}
		return cs.Right.codegen(s)
	})
}

func (cs *ConcatenatedString) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", cs.LPar)
	if err != nil {
		return nil, err
	}
	left, err := visitRequired(v, "Left", cs.Left)
	if err != nil {
		return nil, err
	}
	ws, err := visitRequired(v, "WhitespaceBetween", &cs.WhitespaceBetween)
	if err != nil {
		return nil, err
	}
	right, err := visitRequired(v, "Right", cs.Right)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", cs.RPar)
	if err != nil {
		return nil, err
	}
	return New(&ConcatenatedString{
		Parens:            Parens{LPar: lpar, RPar: rpar},
		Left:              left,
		Right:             right,
		WhitespaceBetween: *ws,
	})
}
