package cst

import (
	"github.com/pycst/go-pycst/codegen"
)

// Param is a single entry in a parameter list. The Star prefix is usually
// left as StarDefault and resolved from the partition the param sits in; a
// nil Equal renders as " = " exactly when a default is present.
type Param struct {
	Name       *Name
	Annotation *Annotation
	Equal      *AssignEqual
	Default    Expression
	Comma      *Comma
	Star       Star

	WhitespaceAfterStar  SimpleWhitespace
	WhitespaceAfterParam SimpleWhitespace
}

func (p *Param) starArgItem() {}

func (p *Param) validate() error {
	if p.Name == nil {
		return invalidf("param must have a name")
	}
	if p.Default == nil && p.Equal != nil {
		return invalidf("must have a default when specifying an equals sign")
	}
	if !p.Star.known() {
		return invalidf("must specify one of '', '*' or '**' for star")
	}
	if p.Annotation != nil && p.Annotation.Indicator != "" &&
		p.Annotation.Indicator != IndicatorColon {
		return invalidf("a param annotation must be denoted with a ':'")
	}
	if err := p.Name.validate(); err != nil {
		return err
	}
	if p.Annotation != nil {
		if err := p.Annotation.validate(); err != nil {
			return err
		}
	}
	if p.Equal != nil {
		if err := p.Equal.validate(); err != nil {
			return err
		}
	}
	if p.Default != nil {
		if err := p.Default.validate(); err != nil {
			return err
		}
	}
	if p.Comma != nil {
		if err := p.Comma.validate(); err != nil {
			return err
		}
	}
	return validateWhitespace(&p.WhitespaceAfterStar, &p.WhitespaceAfterParam)
}

func (p *Param) render(s *codegen.State, defaultStar string, haveDefaultStar bool, defaultComma bool) error {
	if p.Star == StarDefault {
		if !haveDefaultStar {
			return codegenf("must specify a concrete default star when the star is deferred")
		}
		s.Append(defaultStar)
	} else {
		s.Append(p.Star.token())
	}
	if err := p.WhitespaceAfterStar.codegen(s); err != nil {
		return err
	}
	if err := p.Name.codegen(s); err != nil {
		return err
	}
	if p.Annotation != nil {
		if err := p.Annotation.render(s, IndicatorColon); err != nil {
			return err
		}
	}
	if p.Equal != nil {
		if err := p.Equal.codegen(s); err != nil {
			return err
		}
	} else if p.Default != nil {
		s.Append(" = ")
	}
	if p.Default != nil {
		if err := p.Default.codegen(s); err != nil {
			return err
		}
	}
	if p.Comma != nil {
		if err := p.Comma.codegen(s); err != nil {
			return err
		}
	} else if defaultComma {
		s.Append(", ")
	}
	return p.WhitespaceAfterParam.codegen(s)
}

func (p *Param) codegen(s *codegen.State) error {
	return p.render(s, "", false, false)
}

func (p *Param) ReplaceChildren(v Visitor) (Node, error) {
	wsStar, err := visitRequired(v, "WhitespaceAfterStar", &p.WhitespaceAfterStar)
	if err != nil {
		return nil, err
	}
	name, err := visitRequired(v, "Name", p.Name)
	if err != nil {
		return nil, err
	}
	annotation := p.Annotation
	if annotation != nil {
		annotation, err = visitOptional(v, "Annotation", annotation)
		if err != nil {
			return nil, err
		}
	}
	equal := p.Equal
	if equal != nil {
		equal, err = visitSentinel(v, "Equal", equal)
		if err != nil {
			return nil, err
		}
	}
	def := p.Default
	if def != nil {
		def, err = visitOptional(v, "Default", def)
		if err != nil {
			return nil, err
		}
	}
	comma := p.Comma
	if comma != nil {
		comma, err = visitSentinel(v, "Comma", comma)
		if err != nil {
			return nil, err
		}
	}
	wsParam, err := visitRequired(v, "WhitespaceAfterParam", &p.WhitespaceAfterParam)
	if err != nil {
		return nil, err
	}
	return New(&Param{
		Name:                 name,
		Annotation:           annotation,
		Equal:                equal,
		Default:              def,
		Comma:                comma,
		Star:                 p.Star,
		WhitespaceAfterStar:  *wsStar,
		WhitespaceAfterParam: *wsParam,
	})
}

// ParamStar is the bare "*" marker that makes the params after it
// keyword-only.
type ParamStar struct {
	Comma Comma
}

func (ps *ParamStar) starArgItem() {}

func (ps *ParamStar) validate() error { return ps.Comma.validate() }

func (ps *ParamStar) codegen(s *codegen.State) error {
	s.Append("*")
	return ps.Comma.codegen(s)
}

func (ps *ParamStar) ReplaceChildren(v Visitor) (Node, error) {
	comma, err := visitRequired(v, "Comma", &ps.Comma)
	if err != nil {
		return nil, err
	}
	return New(&ParamStar{Comma: *comma})
}

// Parameters is a function or lambda parameter list, partitioned the way the
// grammar partitions it. StarArg holds either a *args Param or a bare
// ParamStar; a nil StarArg renders an inferred "*, " when keyword-only
// params are present.
type Parameters struct {
	Params        []*Param
	DefaultParams []*Param
	StarArg       StarArgItem
	KwonlyParams  []*Param
	StarKwarg     *Param
}

func (ps *Parameters) validate() error {
	if star, ok := ps.StarArg.(*ParamStar); ok && star != nil && len(ps.KwonlyParams) == 0 {
		return invalidf("must have at least one kwonly param if a param star is used")
	}
	for _, p := range ps.all() {
		if err := p.validate(); err != nil {
			return err
		}
	}
	if star, ok := ps.StarArg.(*ParamStar); ok && star != nil {
		if err := star.validate(); err != nil {
			return err
		}
	}
	if err := ps.validateDefaults(); err != nil {
		return err
	}
	return ps.validateStars()
}

func (ps *Parameters) validateDefaults() error {
	for _, p := range ps.Params {
		if p.Default != nil {
			return invalidf("cannot have defaults for params, place them in default params")
		}
	}
	for _, p := range ps.DefaultParams {
		if p.Default == nil {
			return invalidf("must have defaults for default params, place non-defaults in params")
		}
	}
	if star, ok := ps.StarArg.(*Param); ok && star != nil && star.Default != nil {
		return invalidf("cannot have default for star arg")
	}
	if ps.StarKwarg != nil && ps.StarKwarg.Default != nil {
		return invalidf("cannot have default for star kwarg")
	}
	return nil
}

func (ps *Parameters) validateStars() error {
	sections := []struct {
		name   string
		params []*Param
	}{
		{"params", ps.Params},
		{"default params", ps.DefaultParams},
		{"kwonly params", ps.KwonlyParams},
	}
	for _, section := range sections {
		for _, p := range section.params {
			if p.Star != StarDefault && p.Star != StarNone {
				return invalidf("expecting a star prefix of '' for a %s entry", section.name)
			}
		}
	}
	if star, ok := ps.StarArg.(*Param); ok && star != nil {
		if star.Star != StarDefault && star.Star != StarArgs {
			return invalidf("expecting a star prefix of '*' for the star arg param")
		}
	}
	if ps.StarKwarg != nil &&
		ps.StarKwarg.Star != StarDefault && ps.StarKwarg.Star != StarKwargs {
		return invalidf("expecting a star prefix of '**' for the star kwarg param")
	}
	return nil
}

// all returns every Param in the list, in declaration order. The bare
// ParamStar marker is not a Param and is skipped.
func (ps *Parameters) all() []*Param {
	out := make([]*Param, 0,
		len(ps.Params)+len(ps.DefaultParams)+len(ps.KwonlyParams)+2)
	out = append(out, ps.Params...)
	out = append(out, ps.DefaultParams...)
	if star, ok := ps.StarArg.(*Param); ok && star != nil {
		out = append(out, star)
	}
	out = append(out, ps.KwonlyParams...)
	if ps.StarKwarg != nil {
		out = append(out, ps.StarKwarg)
	}
	return out
}

func (ps *Parameters) codegen(s *codegen.State) error {
	starIncluded := ps.StarArg != nil || len(ps.KwonlyParams) > 0

	last := len(ps.Params) - 1
	moreValues := len(ps.DefaultParams) > 0 || starIncluded ||
		len(ps.KwonlyParams) > 0 || ps.StarKwarg != nil
	for i, p := range ps.Params {
		if err := p.render(s, "", true, i < last || moreValues); err != nil {
			return err
		}
	}

	last = len(ps.DefaultParams) - 1
	moreValues = starIncluded || len(ps.KwonlyParams) > 0 || ps.StarKwarg != nil
	for i, p := range ps.DefaultParams {
		if err := p.render(s, "", true, i < last || moreValues); err != nil {
			return err
		}
	}

	switch star := ps.StarArg.(type) {
	case nil:
		if starIncluded {
			s.Append("*, ")
		}
	case *Param:
		moreValues = len(ps.KwonlyParams) > 0 || ps.StarKwarg != nil
		if err := star.render(s, "*", true, moreValues); err != nil {
			return err
		}
	case *ParamStar:
		if err := star.codegen(s); err != nil {
			return err
		}
	}

	last = len(ps.KwonlyParams) - 1
	moreValues = ps.StarKwarg != nil
	for i, p := range ps.KwonlyParams {
		if err := p.render(s, "", true, i < last || moreValues); err != nil {
			return err
		}
	}

	if ps.StarKwarg != nil {
		return ps.StarKwarg.render(s, "**", true, false)
	}
	return nil
}

func (ps *Parameters) ReplaceChildren(v Visitor) (Node, error) {
	params, err := visitSequence(v, "Params", ps.Params)
	if err != nil {
		return nil, err
	}
	defaultParams, err := visitSequence(v, "DefaultParams", ps.DefaultParams)
	if err != nil {
		return nil, err
	}
	starArg := ps.StarArg
	if starArg != nil {
		starArg, err = visitSentinel(v, "StarArg", starArg)
		if err != nil {
			return nil, err
		}
	}
	kwonly, err := visitSequence(v, "KwonlyParams", ps.KwonlyParams)
	if err != nil {
		return nil, err
	}
	starKwarg := ps.StarKwarg
	if starKwarg != nil {
		starKwarg, err = visitOptional(v, "StarKwarg", starKwarg)
		if err != nil {
			return nil, err
		}
	}
	return New(&Parameters{
		Params:        params,
		DefaultParams: defaultParams,
		StarArg:       starArg,
		KwonlyParams:  kwonly,
		StarKwarg:     starKwarg,
	})
}

// Lambda is an anonymous function expression: "lambda params: body". A nil
// WhitespaceAfterLambda renders as one space exactly when the parameter list
// is non-empty.
type Lambda struct {
	Parens
	Params *Parameters
	Body   Expression

	Colon                 Colon
	WhitespaceAfterLambda *SimpleWhitespace
}

func (l *Lambda) validate() error {
	if err := l.validateParens(); err != nil {
		return err
	}
	if l.Params == nil {
		return invalidf("lambda must have a parameter list")
	}
	if l.Body == nil {
		return invalidf("lambda must have a body")
	}
	if err := validateChildren(l.Params, l.Body, &l.Colon); err != nil {
		return err
	}
	if l.WhitespaceAfterLambda != nil {
		if err := validateWhitespace(l.WhitespaceAfterLambda); err != nil {
			return err
		}
	}
	all := l.Params.all()
	if len(all) > 0 {
		for _, p := range all {
			if p.Annotation != nil {
				return invalidf("lambda params cannot have type annotations")
			}
		}
		if l.WhitespaceAfterLambda != nil && l.WhitespaceAfterLambda.IsEmpty() {
			return invalidf("must have at least one space after lambda when specifying params")
		}
	}
	return nil
}

func (l *Lambda) codegen(s *codegen.State) error {
	return l.renderParenthesized(s, func() error {
		s.Append("lambda")
		if l.WhitespaceAfterLambda != nil {
			if err := l.WhitespaceAfterLambda.codegen(s); err != nil {
				return err
			}
		} else if len(l.Params.all()) > 0 {
			s.Append(" ")
		}
		if err := l.Params.codegen(s); err != nil {
			return err
		}
		if err := l.Colon.codegen(s); err != nil {
			return err
		}
		return l.Body.codegen(s)
	})
}

func (l *Lambda) ReplaceChildren(v Visitor) (Node, error) {
	lpar, err := visitSequence(v, "LPar", l.LPar)
	if err != nil {
		return nil, err
	}
	ws := l.WhitespaceAfterLambda
	if ws != nil {
		ws, err = visitSentinel(v, "WhitespaceAfterLambda", ws)
		if err != nil {
			return nil, err
		}
	}
	params, err := visitRequired(v, "Params", l.Params)
	if err != nil {
		return nil, err
	}
	colon, err := visitRequired(v, "Colon", &l.Colon)
	if err != nil {
		return nil, err
	}
	body, err := visitRequired(v, "Body", l.Body)
	if err != nil {
		return nil, err
	}
	rpar, err := visitSequence(v, "RPar", l.RPar)
	if err != nil {
		return nil, err
	}
	return New(&Lambda{
		Parens:                Parens{LPar: lpar, RPar: rpar},
		Params:                params,
		Body:                  body,
		Colon:                 *colon,
		WhitespaceAfterLambda: ws,
	})
}
