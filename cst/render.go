package cst

import (
	"io"

	"github.com/pycst/go-pycst/codegen"
)

// Render produces the exact source text of the tree rooted at node. A fresh
// codegen.State is used for every call, so concurrent renders of the same
// tree never share state.
func Render(node Node) (string, error) {
	s := codegen.NewState()
	if err := node.codegen(s); err != nil {
		return "", err
	}
	return s.Text(), nil
}

// RenderTo renders the tree rooted at node and writes the source text to w.
func RenderTo(w io.Writer, node Node) error {
	text, err := Render(node)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}
