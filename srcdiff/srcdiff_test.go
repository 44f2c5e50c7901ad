package srcdiff

import (
	"strings"
	"testing"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/pycst/go-pycst/cst"
)

func call(t *testing.T, fn, arg string) cst.Node {
	t.Helper()
	return cst.MustNew(&cst.Call{
		Func: cst.MustNew(&cst.Name{Value: fn}),
		Args: []*cst.Arg{
			{Value: cst.MustNew(&cst.Name{Value: arg})},
		},
	})
}

func TestDiff(t *testing.T) {
	before := call(t, "f", "x")
	after := call(t, "f", "y")

	got, err := Diff(before, after)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if !strings.Contains(got, "[-x-]") || !strings.Contains(got, "[+y+]") {
		t.Errorf("Diff() = %q, want deletion of x and insertion of y", got)
	}
	if !strings.Contains(got, "f(") {
		t.Errorf("Diff() = %q, want unchanged call prefix", got)
	}
}

func TestDiffIdentical(t *testing.T) {
	before := call(t, "f", "x")
	after := call(t, "f", "x")

	got, err := Diff(before, after)
	if err != nil {
		t.Fatalf("Diff() error = %v", err)
	}
	if got != "" {
		t.Errorf("Diff() = %q, want empty for identical renders", got)
	}
}

func TestTexts(t *testing.T) {
	diffs := Texts("a + b", "a - b")
	var hasDelete, hasInsert bool
	for _, d := range diffs {
		switch {
		case d.Type == diffpatch.DiffDelete && strings.Contains(d.Text, "+"):
			hasDelete = true
		case d.Type == diffpatch.DiffInsert && strings.Contains(d.Text, "-"):
			hasInsert = true
		}
	}
	if !hasDelete || !hasInsert {
		t.Errorf("Texts() = %v, want + deleted and - inserted", diffs)
	}
}
