// Package cst provides a lossless concrete syntax tree for the Python
// expression grammar.
//
// # Overview
//
// Every node keeps all of the source-level syntax it owns: surrounding
// whitespace runs, parentheses, optional commas and equals signs, string
// quote styles. A tree built by a parser therefore renders back to the
// original text byte for byte, while still exposing a typed structure for
// analysis and rewriting.
//
// Nodes are immutable values. They are created with struct literals passed
// through New (or MustNew), which runs the node's structural validation; a
// node that fails validation never becomes usable. A modified tree is
// produced only through the Visitor contract on ReplaceChildren, which
// builds new nodes bottom-up and re-validates each one, leaving the source
// tree untouched.
//
// # Construction
//
//	name, err := cst.New(&cst.Name{Value: "x"})
//	call, err := cst.New(&cst.Call{
//	    Func: name,
//	    Args: []*cst.Arg{arg},
//	})
//
// # Rendering
//
// Render walks the tree with a fresh codegen.State and returns the exact
// source text:
//
//	src, err := cst.Render(call)
//
// Rendering a valid tree fails only when a field left for contextual
// defaulting (a sentinel) is rendered outside any context that supplies the
// default; that error wraps codegen.ErrCodegen.
//
// # Concurrency
//
// All operations are synchronous and CPU-bound. Because nodes are never
// mutated after construction, any number of goroutines may traverse or
// render the same tree concurrently; each render owns its own state.
package cst
