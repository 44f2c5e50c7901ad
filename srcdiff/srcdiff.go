// Package srcdiff computes textual diffs between the rendered source of two
// CSTs. It is character based, so a change in whitespace or parenthesization
// shows up exactly as it would in the emitted file.
package srcdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/pycst/go-pycst/cst"
)

// Texts diffs two already rendered source strings.
func Texts(before, after string) []diffpatch.Diff {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	return dmp.DiffCleanupSemantic(diffs)
}

// Nodes renders both trees and diffs the results.
func Nodes(before, after cst.Node) ([]diffpatch.Diff, error) {
	b, err := cst.Render(before)
	if err != nil {
		return nil, err
	}
	a, err := cst.Render(after)
	if err != nil {
		return nil, err
	}
	return Texts(b, a), nil
}

// Diff renders both trees and returns an inline marked diff: deletions are
// wrapped in [-...-], insertions in [+...+], unchanged text passes through.
// The empty string means the trees render identically.
func Diff(before, after cst.Node) (string, error) {
	diffs, err := Nodes(before, after)
	if err != nil {
		return "", err
	}
	changed := false
	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffDelete:
			changed = true
			b.WriteString("[-")
			b.WriteString(d.Text)
			b.WriteString("-]")
		case diffpatch.DiffInsert:
			changed = true
			b.WriteString("[+")
			b.WriteString(d.Text)
			b.WriteString("+]")
		default:
			b.WriteString(d.Text)
		}
	}
	if !changed {
		return "", nil
	}
	return b.String(), nil
}

// Pretty is Diff with ANSI coloring, for terminal output.
func Pretty(before, after cst.Node) (string, error) {
	diffs, err := Nodes(before, after)
	if err != nil {
		return "", err
	}
	dmp := diffpatch.New()
	return dmp.DiffPrettyText(diffs), nil
}
