package cst

import (
	"github.com/pycst/go-pycst/codegen"
)

// Index is a single subscript value, as in "x[i]".
type Index struct {
	Value Expression
}

func (i *Index) sliceItem() {}

func (i *Index) validate() error {
	if i.Value == nil {
		return invalidf("index must have a value")
	}
	return i.Value.validate()
}

func (i *Index) codegen(s *codegen.State) error {
	return i.Value.codegen(s)
}

func (i *Index) ReplaceChildren(v Visitor) (Node, error) {
	value, err := visitRequired(v, "Value", i.Value)
	if err != nil {
		return nil, err
	}
	return New(&Index{Value: value})
}

// Slice is a range subscript such as "1:", "::2", or "a:b:c". The grammar
// does not allow parens around a slice, so it carries none. A nil
// SecondColon renders as ":" exactly when a step is present.
type Slice struct {
	Lower Expression
	Upper Expression
	Step  Expression

	FirstColon  Colon
	SecondColon *Colon
}

func (sl *Slice) sliceItem() {}

func (sl *Slice) validate() error {
	children := []Node{&sl.FirstColon}
	if sl.Lower != nil {
		children = append(children, sl.Lower)
	}
	if sl.Upper != nil {
		children = append(children, sl.Upper)
	}
	if sl.SecondColon != nil {
		children = append(children, sl.SecondColon)
	}
	if sl.Step != nil {
		children = append(children, sl.Step)
	}
	return validateChildren(children...)
}

func (sl *Slice) codegen(s *codegen.State) error {
	if sl.Lower != nil {
		if err := sl.Lower.codegen(s); err != nil {
			return err
		}
	}
	if err := sl.FirstColon.codegen(s); err != nil {
		return err
	}
	if sl.Upper != nil {
		if err := sl.Upper.codegen(s); err != nil {
			return err
		}
	}
	if sl.SecondColon != nil {
		if err := sl.SecondColon.codegen(s); err != nil {
			return err
		}
	} else if sl.Step != nil {
		s.Append(":")
	}
	if sl.Step != nil {
		return sl.Step.codegen(s)
	}
	return nil
}

func (sl *Slice) ReplaceChildren(v Visitor) (Node, error) {
	var err error
	lower := sl.Lower
	if lower != nil {
		lower, err = visitOptional(v, "Lower", lower)
		if err != nil {
			return nil, err
		}
	}
	firstColon, err := visitRequired(v, "FirstColon", &sl.FirstColon)
	if err != nil {
		return nil, err
	}
	upper := sl.Upper
	if upper != nil {
		upper, err = visitOptional(v, "Upper", upper)
		if err != nil {
			return nil, err
		}
	}
	secondColon := sl.SecondColon
	if secondColon != nil {
		secondColon, err = visitSentinel(v, "SecondColon", secondColon)
		if err != nil {
			return nil, err
		}
	}
	step := sl.Step
	if step != nil {
		step, err = visitOptional(v, "Step", step)
		if err != nil {
			return nil, err
		}
	}
	return New(&Slice{
		Lower:       lower,
		Upper:       upper,
		Step:        step,
		FirstColon:  *firstColon,
		SecondColon: secondColon,
	})
}

// SubscriptElement is one item of a multi-item subscript such as
// "x[1:2, 3]". A nil Comma renders as ", " for every element but the last.
type SubscriptElement struct {
	Item  SliceItem
	Comma *Comma
}

func (se *SubscriptElement) validate() error {
	if se.Item == nil {
		return invalidf("subscript element must have an item")
	}
	if err := se.Item.validate(); err != nil {
		return err
	}
	if se.Comma != nil {
		return se.Comma.validate()
	}
	return nil
}

func (se *SubscriptElement) render(s *codegen.State, defaultComma bool) error {
	if err := se.Item.codegen(s); err != nil {
		return err
	}
	if se.Comma != nil {
		return se.Comma.codegen(s)
	}
	if defaultComma {
		s.Append(", ")
	}
	return nil
}

func (se *SubscriptElement) codegen(s *codegen.State) error {
	return se.render(s, false)
}

func (se *SubscriptElement) ReplaceChildren(v Visitor) (Node, error) {
	item, err := visitRequired(v, "Item", se.Item)
	if err != nil {
		return nil, err
	}
	comma := se.Comma
	if comma != nil {
		comma, err = visitSentinel(v, "Comma", comma)
		if err != nil {
			return nil, err
		}
	}
	return New(&SubscriptElement{Item: item, Comma: comma})
}

// Subscript is a subscript reference such as "x[2]" or "x[1:2, 3]". Exactly
// one of Item and Elements is set: Item for a single index or slice,
// Elements for a comma separated list.
type Subscript struct {
	Parens
	Value    Expression
	Item     SliceItem
	Elements []*SubscriptElement

	LBracket LeftSquareBracket
	RBracket RightSquareBracket

	WhitespaceAfterValue SimpleWhitespace
}

func (sub *Subscript) assignTargetNode() {}
func (sub *Subscript) delTargetNode()    {}

func (sub *Subscript) validate() error {
	if err := sub.validateParens(); err != nil {
		return err
	}
	if sub.Value == nil {
		return invalidf("subscript must have a value")
	}
	if sub.Item == nil && len(sub.Elements) == 0 {
		return invalidf("cannot have empty subscript")
	}
	if sub.Item != nil && len(sub.Elements) > 0 {
		return invalidf("cannot have both a single item and an element list")
	}
	if err := validateChildren(sub.Value, &sub.LBracket, &sub.RBracket); err != nil {
		return err
	}
	if sub.Item != nil {
		if err := sub.Item.validate(); err != nil {
			return err
		}
	}
	for _, el := range sub.Elements {
		if err := el.validate(); err != nil {
			return err
		}
	}
	return validateWhitespace(&sub.WhitespaceAfterValue)
}

func (sub *Subscript) codegen(s *codegen.State) error {
	return sub.renderParenthesized(s, func() error {
		if err := sub.Value.codegen(s); err != nil {
			return err
		}
		if err := sub.WhitespaceAfterValue.codegen(s); err != nil {
			return err
		}
		if err := sub.LBracket.codegen(s); err != nil {
			return err
		}
		if sub.Item != nil {
			if err := sub.Item.codegen(s); err != nil {
				return err
			}
		} else {
			last := len(sub.Elements) - 1
			for i, el := range sub.Elements {
				if err := el.render(s, i != last); err != nil {
					return err
				}
			}
		}
		return sub.RBracket.codegen(s)
	})
}

func (sub *Subscript) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", sub.LPar)
	if err != nil {
		return nil, err
	}
	value, err := visitRequired(v, "Value", sub.Value)
	if err != nil {
		return nil, err
	}
	ws, err := visitRequired(v, "WhitespaceAfterValue", &sub.WhitespaceAfterValue)
	if err != nil {
		return nil, err
	}
	lbracket, err := visitRequired(v, "LBracket", &sub.LBracket)
	if err != nil {
		return nil, err
	}
	item := sub.Item
	elements := sub.Elements
	if item != nil {
		item, err = visitRequired(v, "Item", item)
		if err != nil {
			return nil, err
		}
	} else {
		elements, err = visitSequence(v, "Elements", elements)
		if err != nil {
			return nil, err
		}
	}
	rbracket, err := visitRequired(v, "RBracket", &sub.RBracket)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", sub.RPar)
	if err != nil {
		return nil, err
	}
	return New(&Subscript{
		Parens:               Parens{LPar: lpar, RPar: rpar},
		Value:                value,
		Item:                 item,
		Elements:             elements,
		LBracket:             *lbracket,
		RBracket:             *rbracket,
		WhitespaceAfterValue: *ws,
	})
}

// Annotation is a type annotation attached to a parameter or return. The
// Indicator is ":" or "->", or empty to defer to the owner's default. A nil
// WhitespaceBeforeIndicator renders as one space exactly when the resolved
// indicator is "->".
type Annotation struct {
	Annotation Expression

	Indicator string

	WhitespaceBeforeIndicator *SimpleWhitespace
	WhitespaceAfterIndicator  SimpleWhitespace
}

func (an *Annotation) validate() error {
	if an.Annotation == nil {
		return invalidf("annotation must have an annotation expression")
	}
	if an.Indicator != "" && an.Indicator != IndicatorColon && an.Indicator != IndicatorArrow {
		return invalidf("an annotation indicator must be one of ':', '->'")
	}
	if err := an.Annotation.validate(); err != nil {
		return err
	}
	if an.WhitespaceBeforeIndicator != nil {
		if err := validateWhitespace(an.WhitespaceBeforeIndicator); err != nil {
			return err
		}
	}
	return validateWhitespace(&an.WhitespaceAfterIndicator)
}

func (an *Annotation) render(s *codegen.State, defaultIndicator string) error {
	indicator := an.Indicator
	if indicator == "" {
		if defaultIndicator == "" {
			return codegenf("must specify a concrete default indicator when the indicator is deferred")
		}
		indicator = defaultIndicator
	}
	if an.WhitespaceBeforeIndicator != nil {
		if err := an.WhitespaceBeforeIndicator.codegen(s); err != nil {
			return err
		}
	} else if indicator == IndicatorArrow {
		s.Append(" ")
	}
	s.Append(indicator)
	if err := an.WhitespaceAfterIndicator.codegen(s); err != nil {
		return err
	}
	return an.Annotation.codegen(s)
}

func (an *Annotation) codegen(s *codegen.State) error {
	return an.render(s, "")
}

func (an *Annotation) ReplaceChildren(v Visitor) (Node, error) {
	wsBefore := an.WhitespaceBeforeIndicator
	if wsBefore != nil {
		var err error
		wsBefore, err = visitSentinel(v, "WhitespaceBeforeIndicator", wsBefore)
		if err != nil {
			return nil, err
		}
	}
	wsAfter, err := visitRequired(v, "WhitespaceAfterIndicator", &an.WhitespaceAfterIndicator)
	if err != nil {
		return nil, err
	}
	annotation, err := visitRequired(v, "Annotation", an.Annotation)
	if err != nil {
		return nil, err
	}
	return New(&Annotation{
		Annotation:                annotation,
		Indicator:                 an.Indicator,
		WhitespaceBeforeIndicator: wsBefore,
		WhitespaceAfterIndicator:  *wsAfter,
	})
}
