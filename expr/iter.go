package expr

// ExprRef refers to a node of either expression family. Exactly one of Bool
// and Num is non-nil.
type ExprRef struct {
	// Bool is set when the node is a Boolean expression.
	Bool BoolExpr
	// Num is set when the node is a numeric expression.
	Num NumExpr
}

// BoolRef wraps a Boolean expression as an ExprRef.
func BoolRef(e BoolExpr) ExprRef { return ExprRef{Bool: e} }

// NumRef wraps a numeric expression as an ExprRef.
func NumRef(e NumExpr) ExprRef { return ExprRef{Num: e} }

// IsBoolean reports whether the reference holds a Boolean expression.
func (r ExprRef) IsBoolean() bool { return r.Bool != nil }

// IsNumeric reports whether the reference holds a numeric expression.
func (r ExprRef) IsNumeric() bool { return r.Num != nil }

// Args returns the immediate children of the referenced node, left to right
// (intervals and comparison operators are attributes, not children). Leaf
// nodes return nil.
func (r ExprRef) Args() []ExprRef {
	if r.Bool != nil {
		return boolArgs(r.Bool)
	}
	if r.Num != nil {
		return numArgs(r.Num)
	}

	return nil
}

func boolArgs(e BoolExpr) []ExprRef {
	switch n := e.(type) {
	case Cmp:
		return []ExprRef{NumRef(n.Lhs), NumRef(n.Rhs)}
	case Not:
		return []ExprRef{BoolRef(n.Arg)}
	case And:
		return boolRefs(n.Args)
	case Or:
		return boolRefs(n.Args)
	case Next:
		return []ExprRef{BoolRef(n.Arg)}
	case Oracle:
		return []ExprRef{BoolRef(n.Arg)}
	case Always:
		return []ExprRef{BoolRef(n.Arg)}
	case Eventually:
		return []ExprRef{BoolRef(n.Arg)}
	case Until:
		return []ExprRef{BoolRef(n.Lhs), BoolRef(n.Rhs)}
	default:
		return nil
	}
}

func numArgs(e NumExpr) []ExprRef {
	switch n := e.(type) {
	case Neg:
		return []ExprRef{NumRef(n.Arg)}
	case Add:
		return numRefs(n.Args)
	case Sub:
		return []ExprRef{NumRef(n.Lhs), NumRef(n.Rhs)}
	case Mul:
		return numRefs(n.Args)
	case Div:
		return []ExprRef{NumRef(n.Dividend), NumRef(n.Divisor)}
	case Abs:
		return []ExprRef{NumRef(n.Arg)}
	default:
		return nil
	}
}

func boolRefs(args []BoolExpr) []ExprRef {
	out := make([]ExprRef, len(args))
	for i, a := range args {
		out[i] = BoolRef(a)
	}

	return out
}

func numRefs(args []NumExpr) []ExprRef {
	out := make([]ExprRef, len(args))
	for i, a := range args {
		out[i] = NumRef(a)
	}

	return out
}

// Iter traverses an expression tree breadth-first, from the root down to the
// leaves.
type Iter struct {
	queue []ExprRef
}

// NewIter creates a breadth-first iterator rooted at the given reference.
func NewIter(root ExprRef) *Iter {
	return &Iter{queue: []ExprRef{root}}
}

// Next yields the next node in breadth-first order; ok is false once the
// tree is exhausted.
func (it *Iter) Next() (ExprRef, bool) {
	if len(it.queue) == 0 {
		return ExprRef{}, false
	}
	head := it.queue[0]
	it.queue = it.queue[1:]
	it.queue = append(it.queue, head.Args()...)

	return head, true
}
