package cst

import (
	"errors"
	"testing"
)

func name(t *testing.T, v string) *Name {
	t.Helper()
	return MustNew(&Name{Value: v})
}

func TestAttributeRender(t *testing.T) {
	inner := MustNew(&Attribute{
		Value: name(t, "x"),
		Attr:  name(t, "y"),
	})
	if got := mustRender(t, inner); got != "x.y" {
		t.Errorf("Render() = %q, want %q", got, "x.y")
	}

	outer := MustNew(&Attribute{
		Value: inner,
		Attr:  name(t, "z"),
	})
	if got := mustRender(t, outer); got != "x.y.z" {
		t.Errorf("Render() = %q, want %q", got, "x.y.z")
	}

	spaced := MustNew(&Attribute{
		Value: name(t, "x"),
		Attr:  name(t, "y"),
		Dot: Dot{
			WhitespaceBefore: SimpleWhitespace{" "},
			WhitespaceAfter:  SimpleWhitespace{" "},
		},
	})
	if got := mustRender(t, spaced); got != "x . y" {
		t.Errorf("Render() = %q, want %q", got, "x . y")
	}
}

func TestStarredRender(t *testing.T) {
	starred := MustNew(&Starred{Expression: name(t, "rest")})
	if got := mustRender(t, starred); got != "*rest" {
		t.Errorf("Render() = %q, want %q", got, "*rest")
	}
}

func TestComparisonRender(t *testing.T) {
	spacedOp := func(k CompOpKind) CompOp {
		op := CompOp{
			Op:               k,
			WhitespaceBefore: SimpleWhitespace{" "},
			WhitespaceAfter:  SimpleWhitespace{" "},
		}
		if k.twoWord() {
			op.WhitespaceBetween = SimpleWhitespace{" "}
		}
		return op
	}

	tests := []struct {
		name string
		node *Comparison
		want string
	}{
		{
			"single",
			&Comparison{
				Left: name(t, "x"),
				Comparisons: []*ComparisonTarget{
					{Operator: spacedOp(OpLessThan), Comparator: name(t, "y")},
				},
			},
			"x < y",
		},
		{
			"chained",
			&Comparison{
				Left: name(t, "x"),
				Comparisons: []*ComparisonTarget{
					{Operator: spacedOp(OpLessThan), Comparator: name(t, "y")},
					{Operator: spacedOp(OpLessThanEqual), Comparator: name(t, "z")},
				},
			},
			"x < y <= z",
		},
		{
			"word operators",
			&Comparison{
				Left: name(t, "a"),
				Comparisons: []*ComparisonTarget{
					{Operator: spacedOp(OpNotIn), Comparator: name(t, "b")},
					{Operator: spacedOp(OpIsNot), Comparator: name(t, "c")},
				},
			},
			"a not in b is not c",
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

func TestComparisonWordSpacing(t *testing.T) {
	// No space after "in" against a bare name glues the tokens.
	_, err := New(&Comparison{
		Left: name(t, "x"),
		Comparisons: []*ComparisonTarget{{
			Operator:   CompOp{Op: OpIn, WhitespaceBefore: SimpleWhitespace{" "}},
			Comparator: name(t, "y"),
		}},
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("New(x iny) error = %v, want ErrValidation", err)
	}

	// A parenthesized comparator makes the adjacency safe.
	wrapped := MustNew(&Name{
		Parens: Parens{LPar: []*LeftParen{{}}, RPar: []*RightParen{{}}},
		Value:  "y",
	})
	comp := MustNew(&Comparison{
		Left: name(t, "x"),
		Comparisons: []*ComparisonTarget{{
			Operator:   CompOp{Op: OpIn, WhitespaceBefore: SimpleWhitespace{" "}},
			Comparator: wrapped,
		}},
	})
	if got := mustRender(t, comp); got != "x in(y)" {
		t.Errorf("Render() = %q, want %q", got, "x in(y)")
	}

	// Empty comparison chains are rejected.
	if _, err := New(&Comparison{Left: name(t, "x")}); !errors.Is(err, ErrValidation) {
		t.Errorf("New(comparison without targets) error = %v, want ErrValidation", err)
	}

	// Every link of the chain is checked, not just the first.
	spaced := CompOp{
		Op:               OpLessThan,
		WhitespaceBefore: SimpleWhitespace{" "},
		WhitespaceAfter:  SimpleWhitespace{" "},
	}
	_, err = New(&Comparison{
		Left: name(t, "x"),
		Comparisons: []*ComparisonTarget{
			{Operator: spaced, Comparator: name(t, "y")},
			{
				Operator:   CompOp{Op: OpIn, WhitespaceBefore: SimpleWhitespace{" "}},
				Comparator: name(t, "z"),
			},
		},
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("New(x < y inz) error = %v, want ErrValidation", err)
	}
}

func TestUnaryOperation(t *testing.T) {
	neg := MustNew(&UnaryOperation{
		Operator:   UnaryOp{Op: OpMinus},
		Expression: name(t, "x"),
	})
	if got := mustRender(t, neg); got != "-x" {
		t.Errorf("Render() = %q, want %q", got, "-x")
	}

	notX := MustNew(&UnaryOperation{
		Operator:   UnaryOp{Op: OpNot, WhitespaceAfter: SimpleWhitespace{" "}},
		Expression: name(t, "x"),
	})
	if got := mustRender(t, notX); got != "not x" {
		t.Errorf("Render() = %q, want %q", got, "not x")
	}

	// "not" flush against a bare name is rejected; symbol operators are not.
	if _, err := New(&UnaryOperation{
		Operator:   UnaryOp{Op: OpNot},
		Expression: name(t, "x"),
	}); !errors.Is(err, ErrValidation) {
		t.Errorf("New(notx) error = %v, want ErrValidation", err)
	}
}

func TestBinaryOperationRender(t *testing.T) {
	add := MustNew(&BinaryOperation{
		Left: name(t, "x"),
		Operator: BinaryOp{
			Op:               OpAdd,
			WhitespaceBefore: SimpleWhitespace{" "},
			WhitespaceAfter:  SimpleWhitespace{" "},
		},
		Right: name(t, "y"),
	})
	if got := mustRender(t, add); got != "x + y" {
		t.Errorf("Render() = %q, want %q", got, "x + y")
	}

	// Symbol operators are fine with no whitespace at all.
	tight := MustNew(&BinaryOperation{
		Left:     name(t, "x"),
		Operator: BinaryOp{Op: OpPower},
		Right:    name(t, "y"),
	})
	if got := mustRender(t, tight); got != "x**y" {
		t.Errorf("Render() = %q, want %q", got, "x**y")
	}
}

func TestBooleanOperation(t *testing.T) {
	and := MustNew(&BooleanOperation{
		Left: name(t, "x"),
		Operator: BooleanOp{
			Op:               OpAnd,
			WhitespaceBefore: SimpleWhitespace{" "},
			WhitespaceAfter:  SimpleWhitespace{" "},
		},
		Right: name(t, "y"),
	})
	if got := mustRender(t, and); got != "x and y" {
		t.Errorf("Render() = %q, want %q", got, "x and y")
	}

	for _, ws := range []struct {
		name          string
		before, after string
	}{
		{"no space before", "", " "},
		{"no space after", " ", ""},
	} {
		t.Run(ws.name, func(t *testing.T) {
			_, err := New(&BooleanOperation{
				Left: name(t, "x"),
				Operator: BooleanOp{
					Op:               OpOr,
					WhitespaceBefore: SimpleWhitespace{ws.before},
					WhitespaceAfter:  SimpleWhitespace{ws.after},
				},
				Right: name(t, "y"),
			})
			if !errors.Is(err, ErrValidation) {
				t.Errorf("New() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestIfExp(t *testing.T) {
	ifexp := MustNew(&IfExp{
		Body:                 name(t, "a"),
		Test:                 name(t, "b"),
		OrElse:               name(t, "c"),
		WhitespaceBeforeIf:   SimpleWhitespace{" "},
		WhitespaceAfterIf:    SimpleWhitespace{" "},
		WhitespaceBeforeElse: SimpleWhitespace{" "},
		WhitespaceAfterElse:  SimpleWhitespace{" "},
	})
	if got := mustRender(t, ifexp); got != "a if b else c" {
		t.Errorf("Render() = %q, want %q", got, "a if b else c")
	}

	// Each of the four gaps must have space against an unsafe operand.
	base := func() *IfExp {
		return &IfExp{
			Body:                 name(t, "a"),
			Test:                 name(t, "b"),
			OrElse:               name(t, "c"),
			WhitespaceBeforeIf:   SimpleWhitespace{" "},
			WhitespaceAfterIf:    SimpleWhitespace{" "},
			WhitespaceBeforeElse: SimpleWhitespace{" "},
			WhitespaceAfterElse:  SimpleWhitespace{" "},
		}
	}
	mutations := []struct {
		name string
		mut  func(*IfExp)
	}{
		{"before if", func(e *IfExp) { e.WhitespaceBeforeIf = SimpleWhitespace{} }},
		{"after if", func(e *IfExp) { e.WhitespaceAfterIf = SimpleWhitespace{} }},
		{"before else", func(e *IfExp) { e.WhitespaceBeforeElse = SimpleWhitespace{} }},
		{"after else", func(e *IfExp) { e.WhitespaceAfterElse = SimpleWhitespace{} }},
	}
	for _, m := range mutations {
		t.Run(m.name, func(t *testing.T) {
			e := base()
			m.mut(e)
			if _, err := New(e); !errors.Is(err, ErrValidation) {
				t.Errorf("New() error = %v, want ErrValidation", err)
			}
		})
	}
}

func TestCallRender(t *testing.T) {
	tests := []struct {
		name string
		node *Call
		want string
	}{
		{
			"no args",
			&Call{Func: name(t, "f")},
			"f()",
		},
		{
			"positional args get default commas",
			&Call{Func: name(t, "f"), Args: []*Arg{
				{Value: name(t, "a")},
				{Value: name(t, "b")},
			}},
			"f(a, b)",
		},
		{
			"keyword arg gets default equals",
			&Call{Func: name(t, "f"), Args: []*Arg{
				{Value: name(t, "v"), Keyword: name(t, "k")},
			}},
			"f(k = v)",
		},
		{
			"explicit equal",
			&Call{Func: name(t, "f"), Args: []*Arg{
				{Value: name(t, "v"), Keyword: name(t, "k"), Equal: &AssignEqual{}},
			}},
			"f(k=v)",
		},
		{
			"expansions",
			&Call{Func: name(t, "f"), Args: []*Arg{
				{Value: name(t, "a"), Star: StarArgs},
				{Value: name(t, "b"), Star: StarKwargs},
			}},
			"f(*a, **b)",
		},
		{
			"explicit comma overrides default",
			&Call{Func: name(t, "f"), Args: []*Arg{
				{Value: name(t, "a"), Comma: &Comma{WhitespaceAfter: SimpleWhitespace{"  "}}},
				{Value: name(t, "b")},
			}},
			"f(a,  b)",
		},
		{
			"whitespace slots",
			&Call{
				Func:                 name(t, "f"),
				WhitespaceAfterFunc:  SimpleWhitespace{" "},
				WhitespaceBeforeArgs: SimpleWhitespace{" "},
				Args:                 []*Arg{{Value: name(t, "a")}},
			},
			"f ( a)",
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

// A call ends in ")" so it sits safely against a word operator on its left.
func TestCallWordOperatorSafety(t *testing.T) {
	call := MustNew(&Call{Func: name(t, "f")})
	_, err := New(&Comparison{
		Left: call,
		Comparisons: []*ComparisonTarget{{
			Operator:   CompOp{Op: OpIn, WhitespaceAfter: SimpleWhitespace{" "}},
			Comparator: name(t, "xs"),
		}},
	})
	if err != nil {
		t.Errorf("New(f()in xs) error = %v, want nil", err)
	}
}

func TestAwait(t *testing.T) {
	aw := MustNew(&Await{
		Expression:           name(t, "task"),
		WhitespaceAfterAwait: SimpleWhitespace{" "},
	})
	if got := mustRender(t, aw); got != "await task" {
		t.Errorf("Render() = %q, want %q", got, "await task")
	}

	// Await always needs a space, even against a parenthesized operand.
	wrapped := MustNew(&Name{
		Parens: Parens{LPar: []*LeftParen{{}}, RPar: []*RightParen{{}}},
		Value:  "task",
	})
	if _, err := New(&Await{Expression: wrapped}); !errors.Is(err, ErrValidation) {
		t.Errorf("New(await(task)) error = %v, want ErrValidation", err)
	}
}

func TestYield(t *testing.T) {
	tests := []struct {
		name string
		node *Yield
		want string
	}{
		{"bare", &Yield{}, "yield"},
		{"value", &Yield{Value: name(t, "x")}, "yield x"},
		{
			"from",
			&Yield{Value: &From{
				Item:                name(t, "gen"),
				WhitespaceAfterFrom: SimpleWhitespace{" "},
			}},
			"yield from gen",
		},
		{
			"explicit whitespace",
			&Yield{
				Value:                name(t, "x"),
				WhitespaceAfterYield: &SimpleWhitespace{"  "},
			},
			"yield  x",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mustRender(t, MustNew(tt.node)); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}

	// Explicit empty whitespace before an unsafe value is rejected.
	_, err := New(&Yield{
		Value:                name(t, "x"),
		WhitespaceAfterYield: &SimpleWhitespace{},
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("New(yieldx) error = %v, want ErrValidation", err)
	}
	_, err = New(&Yield{
		Value: &From{
			Item:                name(t, "g"),
			WhitespaceAfterFrom: SimpleWhitespace{" "},
		},
		WhitespaceAfterYield: &SimpleWhitespace{},
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("New(yieldfrom g) error = %v, want ErrValidation", err)
	}
}

func TestComposedExpressionRoundTrip(t *testing.T) {
	// (a + b) * await f(*rest, x = 1) rendered from a hand-built tree.
	sum := MustNew(&BinaryOperation{
		Parens: Parens{LPar: []*LeftParen{{}}, RPar: []*RightParen{{}}},
		Left:   name(t, "a"),
		Operator: BinaryOp{
			Op:               OpAdd,
			WhitespaceBefore: SimpleWhitespace{" "},
			WhitespaceAfter:  SimpleWhitespace{" "},
		},
		Right: name(t, "b"),
	})
	call := MustNew(&Call{
		Func: name(t, "f"),
		Args: []*Arg{
			{Value: name(t, "rest"), Star: StarArgs},
			{Value: MustNew(&Number{Value: MustNew(&Integer{Value: "1"})}), Keyword: name(t, "x")},
		},
	})
	awaited := MustNew(&Await{
		Expression:           call,
		WhitespaceAfterAwait: SimpleWhitespace{" "},
	})
	product := MustNew(&BinaryOperation{
		Left: sum,
		Operator: BinaryOp{
			Op:               OpMultiply,
			WhitespaceBefore: SimpleWhitespace{" "},
			WhitespaceAfter:  SimpleWhitespace{" "},
		},
		Right: awaited,
	})
	want := "(a + b) * await f(*rest, x = 1)"
	if got := mustRender(t, product); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
