// Package dump renders a CST as an indented outline for debugging. Each line
// names the node type, the field it occupies in its parent, and the scalar
// payload, if any. Output to a terminal is colorized.
package dump

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/pycst/go-pycst/cst"
)

type Options struct {
	// Color forces colorized output on or off. When nil, color is enabled
	// iff the writer is a terminal.
	Color *bool

	// Indent is the per-level indentation, two spaces when empty.
	Indent string
}

var (
	typeColor  = color.New(color.FgCyan).SprintFunc()
	fieldColor = color.New(color.FgHiBlack).SprintFunc()
	valueColor = color.RGB(8, 196, 16).SprintFunc()
)

// Dump writes the outline of the tree rooted at node to w.
func Dump(w io.Writer, node cst.Node) error {
	return Fprint(w, node, Options{})
}

// Sdump returns the outline as a string, without color.
func Sdump(node cst.Node) (string, error) {
	var b strings.Builder
	off := false
	if err := Fprint(&b, node, Options{Color: &off}); err != nil {
		return "", err
	}
	return b.String(), nil
}

func Fprint(w io.Writer, node cst.Node, opts Options) error {
	indent := opts.Indent
	if indent == "" {
		indent = "  "
	}
	colorize := isTerminal(w)
	if opts.Color != nil {
		colorize = *opts.Color
	}
	d := &dumper{w: w, indent: indent, color: colorize}
	return d.dump(node, "", 0)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

type dumper struct {
	w      io.Writer
	indent string
	color  bool
}

func (d *dumper) dump(node cst.Node, field string, depth int) error {
	line := strings.Repeat(d.indent, depth)
	if field != "" {
		line += d.paint(fieldColor, field) + "="
	}
	line += d.paint(typeColor, typeName(node))
	if v, ok := scalar(node); ok {
		line += " " + d.paint(valueColor, fmt.Sprintf("%q", v))
	}
	if _, err := fmt.Fprintln(d.w, line); err != nil {
		return err
	}
	children, err := childrenOf(node)
	if err != nil {
		return err
	}
	for _, c := range children {
		if err := d.dump(c.node, c.field, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (d *dumper) paint(f func(...any) string, s string) string {
	if !d.color {
		return s
	}
	return f(s)
}

func typeName(node cst.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", node), "*cst.")
}

// scalar returns the node's own textual payload, for the node kinds that
// carry one.
func scalar(node cst.Node) (string, bool) {
	switch n := node.(type) {
	case *cst.Name:
		return n.Value, true
	case *cst.Integer:
		return n.Value, true
	case *cst.Float:
		return n.Value, true
	case *cst.Imaginary:
		return n.Value, true
	case *cst.SimpleString:
		return n.Value, true
	case *cst.FormattedStringText:
		return n.Value, true
	case *cst.SimpleWhitespace:
		return n.Value, true
	}
	return "", false
}

type child struct {
	field string
	node  cst.Node
}

// childrenOf lists a node's direct children by running an identity rewrite
// and recording every child the node reports.
func childrenOf(node cst.Node) ([]child, error) {
	var out []child
	collect := cst.VisitorFunc(func(field string, n cst.Node) (cst.Node, error) {
		out = append(out, child{field: field, node: n})
		return n, nil
	})
	if _, err := node.ReplaceChildren(collect); err != nil {
		return nil, err
	}
	return out, nil
}
