package monitor

import (
	"github.com/katalvlaran/stlmon/expr"
	"github.com/katalvlaran/stlmon/signal"
)

// EvalNumeric evaluates a numeric expression over the trace into a signal of
// the caller-selected numeric type T (the robustness pipeline uses float64).
//
// Literals become constant signals; variables are fetched from the trace at
// their declared type and cast to T (a missing or differently-typed binding
// is ErrSignalNotPresent); internal nodes apply the corresponding signal
// operation, with the n-ary Add and Mul folding over their identities.
func EvalNumeric[T signal.Num](root expr.NumExpr, tr Trace, in signal.Interpolation) (*signal.Signal[T], error) {
	switch e := root.(type) {
	case expr.IntLit:
		return signal.Cast[T](signal.NewConstant(e.Value))
	case expr.UIntLit:
		return signal.Cast[T](signal.NewConstant(e.Value))
	case expr.FloatLit:
		return signal.Cast[T](signal.NewConstant(e.Value))
	case expr.IntVar:
		sig, ok := Lookup[int64](tr, e.Name)
		if !ok {
			return nil, ErrSignalNotPresent
		}

		return signal.Cast[T](sig)
	case expr.UIntVar:
		sig, ok := Lookup[uint64](tr, e.Name)
		if !ok {
			return nil, ErrSignalNotPresent
		}

		return signal.Cast[T](sig)
	case expr.FloatVar:
		sig, ok := Lookup[float64](tr, e.Name)
		if !ok {
			return nil, ErrSignalNotPresent
		}

		return signal.Cast[T](sig)
	case expr.Neg:
		arg, err := EvalNumeric[T](e.Arg, tr, in)
		if err != nil {
			return nil, err
		}

		return signal.Negate(arg), nil
	case expr.Add:
		acc := signal.Zero[T]()
		for _, arg := range e.Args {
			item, err := EvalNumeric[T](arg, tr, in)
			if err != nil {
				return nil, err
			}
			acc = signal.Add(acc, item, in)
		}

		return acc, nil
	case expr.Sub:
		lhs, err := EvalNumeric[T](e.Lhs, tr, in)
		if err != nil {
			return nil, err
		}
		rhs, err := EvalNumeric[T](e.Rhs, tr, in)
		if err != nil {
			return nil, err
		}

		return signal.Sub(lhs, rhs, in)
	case expr.Mul:
		acc := signal.One[T]()
		for _, arg := range e.Args {
			item, err := EvalNumeric[T](arg, tr, in)
			if err != nil {
				return nil, err
			}
			acc = signal.Mul(acc, item, in)
		}

		return acc, nil
	case expr.Div:
		dividend, err := EvalNumeric[T](e.Dividend, tr, in)
		if err != nil {
			return nil, err
		}
		divisor, err := EvalNumeric[T](e.Divisor, tr, in)
		if err != nil {
			return nil, err
		}

		return signal.Div(dividend, divisor, in), nil
	case expr.Abs:
		arg, err := EvalNumeric[T](e.Arg, tr, in)
		if err != nil {
			return nil, err
		}

		return signal.Abs(arg), nil
	default:
		panic("monitor: unknown numeric expression variant")
	}
}
