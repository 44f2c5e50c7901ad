package cst

// Sentinel conventions.
//
// Fields whose concrete rendering depends on sibling context rather than on
// the node itself are nil-able: a nil *Comma, *AssignEqual, *Colon, or
// *SimpleWhitespace in a sentinel position means "decide at render time from
// context". Where "no value" must stay distinguishable from "decide later",
// a dedicated enum carries the extra state; Star below is the one such case.

// Star is the optional * or ** prefix on a Param or Arg.
//
// The zero value StarDefault leaves the prefix to be resolved from the
// enclosing parameter list at render time. On an Arg there is no such
// context, so StarDefault on an Arg is equivalent to StarNone.
type Star int8

const (
	StarDefault Star = iota
	StarNone
	StarArgs   // *
	StarKwargs // **
)

func (s Star) String() string {
	switch s {
	case StarDefault:
		return "<default>"
	case StarNone:
		return ""
	case StarArgs:
		return "*"
	case StarKwargs:
		return "**"
	}
	return "<invalid>"
}

func (s Star) known() bool {
	return s >= StarDefault && s <= StarKwargs
}

// isExpansion reports whether the prefix denotes iterable or keyword
// unpacking.
func (s Star) isExpansion() bool {
	return s == StarArgs || s == StarKwargs
}

// token returns the rendered prefix for an explicitly chosen star.
func (s Star) token() string {
	switch s {
	case StarArgs:
		return "*"
	case StarKwargs:
		return "**"
	}
	return ""
}

// Annotation indicator tokens. An Annotation whose Indicator is left empty
// has it supplied by the owning node at render time.
const (
	IndicatorColon = ":"
	IndicatorArrow = "->"
)
