package cst

import (
	"errors"
	"strings"
	"testing"

	"github.com/pycst/go-pycst/codegen"
)

func param(t *testing.T, name string) *Param {
	t.Helper()
	return MustNew(&Param{Name: MustNew(&Name{Value: name})})
}

func defaultParam(t *testing.T, name, value string) *Param {
	t.Helper()
	return MustNew(&Param{
		Name:    MustNew(&Name{Value: name}),
		Default: MustNew(&Name{Value: value}),
	})
}

func renderParams(t *testing.T, ps *Parameters) string {
	t.Helper()
	s := codegen.NewState()
	if err := ps.codegen(s); err != nil {
		t.Fatalf("codegen() error = %v", err)
	}
	return s.Text()
}

func TestParametersRender(t *testing.T) {
	tests := []struct {
		name string
		ps   *Parameters
		want string
	}{
		{"empty", &Parameters{}, ""},
		{
			"positional only",
			&Parameters{Params: []*Param{param(t, "a"), param(t, "b")}},
			"a, b",
		},
		{
			"defaults get equals",
			&Parameters{DefaultParams: []*Param{defaultParam(t, "a", "x")}},
			"a = x",
		},
		{
			"star arg",
			&Parameters{
				Params:  []*Param{param(t, "a")},
				StarArg: param(t, "args"),
			},
			"a, *args",
		},
		{
			"star kwarg",
			&Parameters{
				Params:    []*Param{param(t, "a")},
				StarKwarg: param(t, "kw"),
			},
			"a, **kw",
		},
		{
			"inferred bare star before kwonly",
			&Parameters{
				Params:       []*Param{param(t, "a")},
				KwonlyParams: []*Param{param(t, "b")},
			},
			"a, *, b",
		},
		{
			"explicit param star",
			&Parameters{
				Params: []*Param{param(t, "a")},
				StarArg: MustNew(&ParamStar{
					Comma: Comma{WhitespaceAfter: SimpleWhitespace{" "}},
				}),
				KwonlyParams: []*Param{param(t, "b")},
			},
			"a, *, b",
		},
		{
			"all partitions",
			&Parameters{
				Params:        []*Param{param(t, "a")},
				DefaultParams: []*Param{defaultParam(t, "b", "x")},
				StarArg:       param(t, "args"),
				KwonlyParams:  []*Param{param(t, "c")},
				StarKwarg:     param(t, "kw"),
			},
			"a, b = x, *args, c, **kw",
		},
		{
			"explicit star prefixes",
			&Parameters{
				StarArg:   MustNew(&Param{Name: MustNew(&Name{Value: "args"}), Star: StarArgs}),
				StarKwarg: MustNew(&Param{Name: MustNew(&Name{Value: "kw"}), Star: StarKwargs}),
			},
			"*args, **kw",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps := MustNew(tt.ps)
			if got := renderParams(t, ps); got != tt.want {
				t.Errorf("codegen() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParametersValidation(t *testing.T) {
	tests := []struct {
		name    string
		ps      *Parameters
		wantErr string
	}{
		{
			"param star without kwonly",
			&Parameters{StarArg: MustNew(&ParamStar{})},
			"must have at least one kwonly param",
		},
		{
			"default in params",
			&Parameters{Params: []*Param{defaultParam(t, "a", "x")}},
			"cannot have defaults for params",
		},
		{
			"missing default in default params",
			&Parameters{DefaultParams: []*Param{param(t, "a")}},
			"must have defaults for default params",
		},
		{
			"default on star arg",
			&Parameters{
				StarArg: MustNew(&Param{
					Name:    MustNew(&Name{Value: "args"}),
					Default: MustNew(&Name{Value: "x"}),
				}),
			},
			"cannot have default for star arg",
		},
		{
			"default on star kwarg",
			&Parameters{
				StarKwarg: MustNew(&Param{
					Name:    MustNew(&Name{Value: "kw"}),
					Default: MustNew(&Name{Value: "x"}),
				}),
			},
			"cannot have default for star kwarg",
		},
		{
			"star prefix in params",
			&Parameters{Params: []*Param{
				MustNew(&Param{Name: MustNew(&Name{Value: "a"}), Star: StarArgs}),
			}},
			"expecting a star prefix of ''",
		},
		{
			"wrong star on star arg",
			&Parameters{
				StarArg:      MustNew(&Param{Name: MustNew(&Name{Value: "args"}), Star: StarKwargs}),
				KwonlyParams: []*Param{param(t, "b")},
			},
			"expecting a star prefix of '*'",
		},
		{
			"wrong star on star kwarg",
			&Parameters{
				StarKwarg: MustNew(&Param{Name: MustNew(&Name{Value: "kw"}), Star: StarArgs}),
			},
			"expecting a star prefix of '**'",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.ps)
			if !errors.Is(err, ErrValidation) || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("New() error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestParamValidation(t *testing.T) {
	a := MustNew(&Name{Value: "a"})

	if _, err := New(&Param{Name: a, Equal: &AssignEqual{}}); !errors.Is(err, ErrValidation) {
		t.Errorf("New(equal without default) error = %v, want ErrValidation", err)
	}

	typ := MustNew(&Name{Value: "int"})
	_, err := New(&Param{
		Name: a,
		Annotation: MustNew(&Annotation{
			Annotation:               typ,
			Indicator:                IndicatorArrow,
			WhitespaceAfterIndicator: SimpleWhitespace{" "},
		}),
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("New(param with arrow annotation) error = %v, want ErrValidation", err)
	}
}

func TestParametersValidateParamFields(t *testing.T) {
	a := MustNew(&Name{Value: "a"})

	// An equals sign on an inline param without a default is caught through
	// the parameter list literal.
	_, err := New(&Parameters{
		Params: []*Param{{Name: a, Equal: &AssignEqual{}}},
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("New(params with equals and no default) error = %v, want ErrValidation", err)
	}
	if err == nil || !strings.Contains(err.Error(), "must have a default when specifying an equals sign") {
		t.Errorf("New(params with equals and no default) error = %v, want default message", err)
	}

	// An inline star kwarg with an empty name is caught as well.
	_, err = New(&Parameters{StarKwarg: &Param{Name: &Name{}, Star: StarKwargs}})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("New(star kwarg with empty name) error = %v, want ErrValidation", err)
	}
}

// A Param outside any parameter list has no context to resolve a deferred
// star prefix from.
func TestParamDeferredStarRenderError(t *testing.T) {
	p := param(t, "a")
	if _, err := Render(p); !errors.Is(err, codegen.ErrCodegen) {
		t.Errorf("Render(bare param) error = %v, want ErrCodegen", err)
	}
}

func TestLambda(t *testing.T) {
	x := MustNew(&Name{Value: "x"})

	tests := []struct {
		name string
		node *Lambda
		want string
	}{
		{
			"no params",
			&Lambda{
				Params: MustNew(&Parameters{}),
				Body:   x,
				Colon:  Colon{WhitespaceAfter: SimpleWhitespace{" "}},
			},
			"lambda: x",
		},
		{
			"params get inferred space",
			&Lambda{
				Params: MustNew(&Parameters{Params: []*Param{param(t, "a")}}),
				Body:   x,
				Colon:  Colon{WhitespaceAfter: SimpleWhitespace{" "}},
			},
			"lambda a: x",
		},
		{
			"explicit whitespace",
			&Lambda{
				Params:                MustNew(&Parameters{Params: []*Param{param(t, "a")}}),
				Body:                  x,
				Colon:                 Colon{},
				WhitespaceAfterLambda: &SimpleWhitespace{"  "},
			},
			"lambda  a:x",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRender(t, MustNew(tt.node)); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLambdaValidation(t *testing.T) {
	x := MustNew(&Name{Value: "x"})
	typ := MustNew(&Name{Value: "int"})

	annotated := MustNew(&Param{
		Name: MustNew(&Name{Value: "a"}),
		Annotation: MustNew(&Annotation{
			Annotation:               typ,
			WhitespaceAfterIndicator: SimpleWhitespace{" "},
		}),
	})
	_, err := New(&Lambda{
		Params: MustNew(&Parameters{Params: []*Param{annotated}}),
		Body:   x,
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("New(lambda with annotation) error = %v, want ErrValidation", err)
	}

	_, err = New(&Lambda{
		Params:                MustNew(&Parameters{Params: []*Param{param(t, "a")}}),
		Body:                  x,
		WhitespaceAfterLambda: &SimpleWhitespace{},
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("New(lambdaa) error = %v, want ErrValidation", err)
	}
}
