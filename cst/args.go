package cst

import (
	"github.com/pycst/go-pycst/codegen"
)

// Arg is a single call argument: positional, "keyword=value", or a * or **
// expansion. A nil Equal renders as " = " exactly when a keyword is present;
// a nil Comma defers to the call's separator placement.
type Arg struct {
	Value   Expression
	Keyword *Name
	Equal   *AssignEqual
	Comma   *Comma
	Star    Star

	WhitespaceAfterStar SimpleWhitespace
	WhitespaceAfterArg  SimpleWhitespace
}

func (a *Arg) validate() error {
	if a.Value == nil {
		return invalidf("argument must have a value")
	}
	if a.Keyword == nil && a.Equal != nil {
		return invalidf("must have a keyword when specifying an equals sign")
	}
	if !a.Star.known() {
		return invalidf("must specify one of '', '*' or '**' for star")
	}
	if a.Star.isExpansion() && a.Keyword != nil {
		return invalidf("cannot specify a star and a keyword together")
	}
	if err := a.Value.validate(); err != nil {
		return err
	}
	if a.Keyword != nil {
		if err := a.Keyword.validate(); err != nil {
			return err
		}
	}
	if a.Equal != nil {
		if err := a.Equal.validate(); err != nil {
			return err
		}
	}
	if a.Comma != nil {
		if err := a.Comma.validate(); err != nil {
			return err
		}
	}
	return validateWhitespace(&a.WhitespaceAfterStar, &a.WhitespaceAfterArg)
}

func (a *Arg) render(s *codegen.State, defaultComma bool) error {
	s.Append(a.Star.token())
	if err := a.WhitespaceAfterStar.codegen(s); err != nil {
		return err
	}
	if a.Keyword != nil {
		if err := a.Keyword.codegen(s); err != nil {
			return err
		}
	}
	if a.Equal != nil {
		if err := a.Equal.codegen(s); err != nil {
			return err
		}
	} else if a.Keyword != nil {
		s.Append(" = ")
	}
	if err := a.Value.codegen(s); err != nil {
		return err
	}
	if a.Comma != nil {
		if err := a.Comma.codegen(s); err != nil {
			return err
		}
	} else if defaultComma {
		s.Append(", ")
	}
	return a.WhitespaceAfterArg.codegen(s)
}

func (a *Arg) codegen(s *codegen.State) error {
	return a.render(s, false)
}

func (a *Arg) ReplaceChildren(v Visitor) (Node, error) {
	wsStar, err := visitRequired(v, "WhitespaceAfterStar", &a.WhitespaceAfterStar)
	if err != nil {
		return nil, err
	}
	keyword := a.Keyword
	if keyword != nil {
		keyword, err = visitOptional(v, "Keyword", keyword)
		if err != nil {
			return nil, err
		}
	}
	equal := a.Equal
	if equal != nil {
		equal, err = visitSentinel(v, "Equal", equal)
		if err != nil {
			return nil, err
		}
	}
	value, err := visitRequired(v, "Value", a.Value)
	if err != nil {
		return nil, err
	}
	comma := a.Comma
	if comma != nil {
		comma, err = visitSentinel(v, "Comma", comma)
		if err != nil {
			return nil, err
		}
	}
	wsArg, err := visitRequired(v, "WhitespaceAfterArg", &a.WhitespaceAfterArg)
	if err != nil {
		return nil, err
	}
	return New(&Arg{
		Value:               value,
		Keyword:             keyword,
		Equal:               equal,
		Comma:               comma,
		Star:                a.Star,
		WhitespaceAfterStar: *wsStar,
		WhitespaceAfterArg:  *wsArg,
	})
}

// Argument ordering is validated with a small state machine. The state names
// the argument forms still allowed; each argument either keeps the state,
// advances it, or is rejected.
type argState int8

const (
	// argPositional allows every argument form.
	argPositional argState = iota
	// argStarredOrKeyword allows positionals and * expansions plus anything
	// that advances to argKwargsOrKeyword.
	argStarredOrKeyword
	// argKwargsOrKeyword allows only keywords and ** expansions.
	argKwargsOrKeyword
)

type argKind int8

const (
	argKindPositional argKind = iota
	argKindKeyword
	argKindStar
	argKindDoubleStar
)

func classifyArg(a *Arg) argKind {
	switch {
	case a.Keyword != nil:
		return argKindKeyword
	case a.Star == StarKwargs:
		return argKindDoubleStar
	case a.Star == StarArgs:
		return argKindStar
	default:
		return argKindPositional
	}
}

// nextArgState applies one argument to the machine. sawKwargs tracks whether
// a ** expansion has been seen, which selects the positional error message.
func nextArgState(state argState, kind argKind, sawKwargs bool) (argState, error) {
	switch state {
	case argPositional, argStarredOrKeyword:
		switch kind {
		case argKindPositional:
			return state, nil
		case argKindStar:
			return argStarredOrKeyword, nil
		default:
			return argKwargsOrKeyword, nil
		}
	default:
		switch kind {
		case argKindKeyword, argKindDoubleStar:
			return argKwargsOrKeyword, nil
		case argKindStar:
			return state, invalidf(
				"cannot have iterable argument unpacking after keyword argument unpacking")
		default:
			if sawKwargs {
				return state, invalidf(
					"cannot have positional argument after keyword argument unpacking")
			}
			return state, invalidf("cannot have positional argument after keyword argument")
		}
	}
}

func validateArgs(args []*Arg) error {
	state := argPositional
	sawKwargs := false
	for _, arg := range args {
		kind := classifyArg(arg)
		next, err := nextArgState(state, kind, sawKwargs)
		if err != nil {
			return err
		}
		if kind == argKindDoubleStar {
			sawKwargs = true
		}
		state = next
	}
	return nil
}
