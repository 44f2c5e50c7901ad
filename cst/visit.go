package cst

// Visitor is the tree-rewriting contract. ReplaceChildren on every node
// calls exactly these four shapes on its fields, in source order, and
// reassembles a new node of the same type from the results.
//
// Absent optional children and sentinel-valued fields have no node to
// transform and are passed over without a visitor call. VisitOptional may
// return nil to remove the child; VisitSentinel may return nil to reset the
// field to its sentinel. VisitRequired must return a non-nil node of a type
// assignable to the original field. VisitSequence receives the elements of
// an ordered child sequence and returns the replacement sequence, which may
// differ in length.
//
// Traversal order, pre/post dispatch, and short-circuiting are the caller's
// concern; this package only guarantees the reassembly semantics above and
// that the source tree is never mutated.
type Visitor interface {
	VisitRequired(field string, node Node) (Node, error)
	VisitOptional(field string, node Node) (Node, error)
	VisitSentinel(field string, node Node) (Node, error)
	VisitSequence(field string, nodes []Node) ([]Node, error)
}

// VisitorFunc adapts a plain transform function to the Visitor interface.
// The function is applied to every child node; sequence elements are visited
// one at a time.
type VisitorFunc func(field string, node Node) (Node, error)

func (f VisitorFunc) VisitRequired(field string, node Node) (Node, error) {
	return f(field, node)
}

func (f VisitorFunc) VisitOptional(field string, node Node) (Node, error) {
	return f(field, node)
}

func (f VisitorFunc) VisitSentinel(field string, node Node) (Node, error) {
	return f(field, node)
}

func (f VisitorFunc) VisitSequence(field string, nodes []Node) ([]Node, error) {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		res, err := f(field, n)
		if err != nil {
			return nil, err
		}
		if res != nil {
			out = append(out, res)
		}
	}
	return out, nil
}

// Identity returns the visitor that replaces every child with itself.
func Identity() Visitor {
	return VisitorFunc(func(_ string, node Node) (Node, error) {
		return node, nil
	})
}

func visitRequired[T Node](v Visitor, field string, node T) (T, error) {
	var zero T
	res, err := v.VisitRequired(field, node)
	if err != nil {
		return zero, err
	}
	if res == nil {
		return zero, visitf("cannot remove required child %s", field)
	}
	typed, ok := res.(T)
	if !ok {
		return zero, visitf("visitor replaced %s with incompatible node %T", field, res)
	}
	return typed, nil
}

func visitOptional[T Node](v Visitor, field string, node T) (T, error) {
	var zero T
	res, err := v.VisitOptional(field, node)
	if err != nil {
		return zero, err
	}
	if res == nil {
		return zero, nil
	}
	typed, ok := res.(T)
	if !ok {
		return zero, visitf("visitor replaced %s with incompatible node %T", field, res)
	}
	return typed, nil
}

func visitSentinel[T Node](v Visitor, field string, node T) (T, error) {
	var zero T
	res, err := v.VisitSentinel(field, node)
	if err != nil {
		return zero, err
	}
	if res == nil {
		return zero, nil
	}
	typed, ok := res.(T)
	if !ok {
		return zero, visitf("visitor replaced %s with incompatible node %T", field, res)
	}
	return typed, nil
}

func visitSequence[T Node](v Visitor, field string, nodes []T) ([]T, error) {
	in := make([]Node, len(nodes))
	for i, n := range nodes {
		in[i] = n
	}
	out, err := v.VisitSequence(field, in)
	if err != nil {
		return nil, err
	}
	typed := make([]T, 0, len(out))
	for _, n := range out {
		if n == nil {
			continue
		}
		t, ok := n.(T)
		if !ok {
			return nil, visitf("visitor replaced element of %s with incompatible node %T", field, n)
		}
		typed = append(typed, t)
	}
	return typed, nil
}
