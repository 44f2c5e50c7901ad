// Package codegen holds the accumulating output state threaded through a
// single render pass over a CST.
//
// # Overview
//
// A State is a token sink: nodes append their exact textual pieces (keywords,
// punctuation, whitespace runs) in source order, and Text joins them into the
// final source text. A State is owned by exactly one render call; it is not
// safe for concurrent use and is never reused across renders.
package codegen

import (
	"errors"
	"strings"
)

// ErrCodegen wraps every rendering failure. Rendering fails only when a
// node field was left for contextual defaulting but the node is rendered
// outside any context that supplies a default; this indicates a bug in how
// the tree was assembled, not a data problem.
var ErrCodegen = errors.New("codegen error")

// State accumulates the output tokens of one render pass.
type State struct {
	tokens []string
}

func NewState() *State {
	return &State{}
}

// Append adds one token to the output. Empty tokens are dropped.
func (s *State) Append(tok string) {
	if tok == "" {
		return
	}
	s.tokens = append(s.tokens, tok)
}

// Len reports the number of accumulated tokens.
func (s *State) Len() int {
	return len(s.tokens)
}

// Text joins the accumulated tokens into the rendered source text.
func (s *State) Text() string {
	var b strings.Builder
	n := 0
	for _, tok := range s.tokens {
		n += len(tok)
	}
	b.Grow(n)
	for _, tok := range s.tokens {
		b.WriteString(tok)
	}
	return b.String()
}
