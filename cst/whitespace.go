package cst

import (
	"github.com/pycst/go-pycst/codegen"
)

// SimpleWhitespace is a literal run of inter-token space. The zero value is
// an empty run.
type SimpleWhitespace struct {
	Value string
}

// IsEmpty reports whether the run contains no characters. Adjacency rules
// for word operators consult this.
func (w *SimpleWhitespace) IsEmpty() bool {
	return w.Value == ""
}

func (w *SimpleWhitespace) validate() error {
	for _, r := range w.Value {
		if r != ' ' && r != '\t' {
			return invalidf("whitespace must contain only spaces and tabs, got %q", w.Value)
		}
	}
	return nil
}

func (w *SimpleWhitespace) codegen(s *codegen.State) error {
	s.Append(w.Value)
	return nil
}

func (w *SimpleWhitespace) ReplaceChildren(Visitor) (Node, error) {
	return New(&SimpleWhitespace{Value: w.Value})
}

// validateWhitespace runs the whitespace content check over value-embedded
// whitespace fields, which are not constructed through New on their own.
func validateWhitespace(ws ...*SimpleWhitespace) error {
	for _, w := range ws {
		if err := w.validate(); err != nil {
			return err
		}
	}
	return nil
}
