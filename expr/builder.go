package expr

import (
	"github.com/katalvlaran/stlmon/signal"
)

// Builder is the factory for STL expressions. Its main job beyond
// construction is declaration hygiene: every variable name is bound to one
// scalar type for the lifetime of the builder, so a formula cannot read the
// same trace signal at two different types.
//
// The zero value is not usable; create builders with NewBuilder.
type Builder struct {
	declarations map[string]signal.ScalarType
}

// NewBuilder creates an empty Builder context.
func NewBuilder() *Builder {
	return &Builder{declarations: make(map[string]signal.ScalarType)}
}

// declare binds name to the given scalar type, rejecting a rebinding at a
// different type.
func (b *Builder) declare(name string, scalar signal.ScalarType) error {
	if prev, ok := b.declarations[name]; ok && prev != scalar {
		return ErrIdentifierRedeclaration
	}
	b.declarations[name] = scalar

	return nil
}

// BoolConst creates a constant Boolean expression.
func (b *Builder) BoolConst(value bool) BoolExpr { return BoolLit{Value: value} }

// IntConst creates a constant signed integer expression.
func (b *Builder) IntConst(value int64) NumExpr { return IntLit{Value: value} }

// UIntConst creates a constant unsigned integer expression.
func (b *Builder) UIntConst(value uint64) NumExpr { return UIntLit{Value: value} }

// FloatConst creates a constant floating point expression.
func (b *Builder) FloatConst(value float64) NumExpr { return FloatLit{Value: value} }

// BoolVar declares a Boolean variable. Re-declaring the name with a
// different type returns ErrIdentifierRedeclaration.
func (b *Builder) BoolVar(name string) (BoolExpr, error) {
	if err := b.declare(name, signal.ScalarBool); err != nil {
		return nil, err
	}

	return BoolVar{Name: name}, nil
}

// IntVar declares a signed integer variable.
func (b *Builder) IntVar(name string) (NumExpr, error) {
	if err := b.declare(name, signal.ScalarInt); err != nil {
		return nil, err
	}

	return IntVar{Name: name}, nil
}

// UIntVar declares an unsigned integer variable.
func (b *Builder) UIntVar(name string) (NumExpr, error) {
	if err := b.declare(name, signal.ScalarUInt); err != nil {
		return nil, err
	}

	return UIntVar{Name: name}, nil
}

// FloatVar declares a floating point variable.
func (b *Builder) FloatVar(name string) (NumExpr, error) {
	if err := b.declare(name, signal.ScalarFloat); err != nil {
		return nil, err
	}

	return FloatVar{Name: name}, nil
}

// MakeNeg creates an arithmetic negation.
func (b *Builder) MakeNeg(arg NumExpr) NumExpr { return Neg{Arg: arg} }

// MakeAbs creates an absolute value expression.
func (b *Builder) MakeAbs(arg NumExpr) NumExpr { return Abs{Arg: arg} }

// MakeAdd creates an n-ary addition, flattening nested additions. Fewer than
// two summands after flattening is ErrIncompleteArgs.
func (b *Builder) MakeAdd(args ...NumExpr) (NumExpr, error) {
	flat := make([]NumExpr, 0, len(args))
	for _, arg := range args {
		if inner, ok := arg.(Add); ok {
			flat = append(flat, inner.Args...)
		} else {
			flat = append(flat, arg)
		}
	}
	if len(flat) < 2 {
		return nil, ErrIncompleteArgs
	}

	return Add{Args: flat}, nil
}

// MakeMul creates an n-ary multiplication, flattening nested
// multiplications. Fewer than two factors after flattening is
// ErrIncompleteArgs.
func (b *Builder) MakeMul(args ...NumExpr) (NumExpr, error) {
	flat := make([]NumExpr, 0, len(args))
	for _, arg := range args {
		if inner, ok := arg.(Mul); ok {
			flat = append(flat, inner.Args...)
		} else {
			flat = append(flat, arg)
		}
	}
	if len(flat) < 2 {
		return nil, ErrIncompleteArgs
	}

	return Mul{Args: flat}, nil
}

// MakeSub creates a subtraction.
func (b *Builder) MakeSub(lhs, rhs NumExpr) NumExpr { return Sub{Lhs: lhs, Rhs: rhs} }

// MakeDiv creates a division.
func (b *Builder) MakeDiv(dividend, divisor NumExpr) NumExpr {
	return Div{Dividend: dividend, Divisor: divisor}
}

// MakeCmp creates a comparison with the given operator.
func (b *Builder) MakeCmp(op CmpOp, lhs, rhs NumExpr) BoolExpr {
	return Cmp{Op: op, Lhs: lhs, Rhs: rhs}
}

// MakeLt creates a strict less-than comparison.
func (b *Builder) MakeLt(lhs, rhs NumExpr) BoolExpr { return b.MakeCmp(CmpLt, lhs, rhs) }

// MakeLe creates a non-strict less-than comparison.
func (b *Builder) MakeLe(lhs, rhs NumExpr) BoolExpr { return b.MakeCmp(CmpLe, lhs, rhs) }

// MakeGt creates a strict greater-than comparison.
func (b *Builder) MakeGt(lhs, rhs NumExpr) BoolExpr { return b.MakeCmp(CmpGt, lhs, rhs) }

// MakeGe creates a non-strict greater-than comparison.
func (b *Builder) MakeGe(lhs, rhs NumExpr) BoolExpr { return b.MakeCmp(CmpGe, lhs, rhs) }

// MakeEq creates an equality comparison.
func (b *Builder) MakeEq(lhs, rhs NumExpr) BoolExpr { return b.MakeCmp(CmpEq, lhs, rhs) }

// MakeNe creates a non-equality comparison.
func (b *Builder) MakeNe(lhs, rhs NumExpr) BoolExpr { return b.MakeCmp(CmpNotEq, lhs, rhs) }

// MakeNot creates a logical negation.
func (b *Builder) MakeNot(arg BoolExpr) BoolExpr { return Not{Arg: arg} }

// MakeAnd creates an n-ary conjunction, flattening nested conjunctions.
// Fewer than two conjuncts after flattening is ErrIncompleteArgs.
func (b *Builder) MakeAnd(args ...BoolExpr) (BoolExpr, error) {
	flat := make([]BoolExpr, 0, len(args))
	for _, arg := range args {
		if inner, ok := arg.(And); ok {
			flat = append(flat, inner.Args...)
		} else {
			flat = append(flat, arg)
		}
	}
	if len(flat) < 2 {
		return nil, ErrIncompleteArgs
	}

	return And{Args: flat}, nil
}

// MakeOr creates an n-ary disjunction, flattening nested disjunctions.
// Fewer than two disjuncts after flattening is ErrIncompleteArgs.
func (b *Builder) MakeOr(args ...BoolExpr) (BoolExpr, error) {
	flat := make([]BoolExpr, 0, len(args))
	for _, arg := range args {
		if inner, ok := arg.(Or); ok {
			flat = append(flat, inner.Args...)
		} else {
			flat = append(flat, arg)
		}
	}
	if len(flat) < 2 {
		return nil, ErrIncompleteArgs
	}

	return Or{Args: flat}, nil
}

// MakeImplies creates lhs -> rhs, encoded as !lhs || rhs.
func (b *Builder) MakeImplies(lhs, rhs BoolExpr) (BoolExpr, error) {
	return b.MakeOr(b.MakeNot(lhs), rhs)
}

// MakeEquiv creates lhs <-> rhs, encoded as (lhs && rhs) || (!lhs && !rhs).
func (b *Builder) MakeEquiv(lhs, rhs BoolExpr) (BoolExpr, error) {
	both, err := b.MakeAnd(lhs, rhs)
	if err != nil {
		return nil, err
	}
	neither, err := b.MakeAnd(b.MakeNot(lhs), b.MakeNot(rhs))
	if err != nil {
		return nil, err
	}

	return b.MakeOr(both, neither)
}

// MakeXor creates lhs ^ rhs, encoded as !(lhs <-> rhs).
func (b *Builder) MakeXor(lhs, rhs BoolExpr) (BoolExpr, error) {
	equiv, err := b.MakeEquiv(lhs, rhs)
	if err != nil {
		return nil, err
	}

	return b.MakeNot(equiv), nil
}

// MakeNext creates a temporal next expression.
func (b *Builder) MakeNext(arg BoolExpr) BoolExpr { return Next{Arg: arg} }

// MakeOracle creates a steps-ahead look expression; one step is exactly
// Next.
func (b *Builder) MakeOracle(steps int, arg BoolExpr) BoolExpr {
	if steps == 1 {
		return b.MakeNext(arg)
	}

	return Oracle{Steps: steps, Arg: arg}
}

// MakeAlways creates an untimed always expression over [0, ∞).
func (b *Builder) MakeAlways(arg BoolExpr) BoolExpr {
	return Always{Arg: arg, Interval: Untimed()}
}

// MakeTimedAlways creates an always expression over the given interval.
func (b *Builder) MakeTimedAlways(interval Interval, arg BoolExpr) BoolExpr {
	return Always{Arg: arg, Interval: interval}
}

// MakeEventually creates an untimed eventually expression over [0, ∞).
func (b *Builder) MakeEventually(arg BoolExpr) BoolExpr {
	return Eventually{Arg: arg, Interval: Untimed()}
}

// MakeTimedEventually creates an eventually expression over the given
// interval.
func (b *Builder) MakeTimedEventually(interval Interval, arg BoolExpr) BoolExpr {
	return Eventually{Arg: arg, Interval: interval}
}

// MakeUntil creates an untimed until expression over [0, ∞).
func (b *Builder) MakeUntil(lhs, rhs BoolExpr) BoolExpr {
	return Until{Lhs: lhs, Rhs: rhs, Interval: Untimed()}
}

// MakeTimedUntil creates an until expression over the given interval.
func (b *Builder) MakeTimedUntil(interval Interval, lhs, rhs BoolExpr) BoolExpr {
	return Until{Lhs: lhs, Rhs: rhs, Interval: interval}
}
