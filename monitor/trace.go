package monitor

import (
	"golang.org/x/exp/maps"

	"github.com/katalvlaran/stlmon/signal"
)

// AnySignal is the type-erased handle to a *signal.Signal[T]. It exists only
// at the trace boundary, where a host binds names to signals of differing
// scalar types; every *signal.Signal[T] satisfies it.
type AnySignal interface {
	// Scalar reports the scalar type carried by the signal.
	Scalar() signal.ScalarType
}

// Trace is a read-only mapping from variable names to signals. The
// implementer owns the backing storage.
type Trace interface {
	// SignalNames lists the names bound by this trace.
	SignalNames() []string

	// Signal returns the signal bound to name, or nil if the name is unknown.
	Signal(name string) AnySignal
}

// Lookup fetches the signal bound to name at the concrete sample type T.
// ok is false when the name is unknown or the stored signal carries a
// different scalar type.
func Lookup[T signal.Value](tr Trace, name string) (*signal.Signal[T], bool) {
	bound := tr.Signal(name)
	if bound == nil {
		return nil, false
	}
	sig, ok := bound.(*signal.Signal[T])

	return sig, ok
}

// MapTrace is the map-backed reference Trace implementation.
type MapTrace struct {
	signals map[string]AnySignal
}

// NewMapTrace creates an empty MapTrace.
func NewMapTrace() *MapTrace {
	return &MapTrace{signals: make(map[string]AnySignal)}
}

// Set binds name to the given signal, replacing any previous binding.
func (t *MapTrace) Set(name string, sig AnySignal) {
	t.signals[name] = sig
}

// SignalNames lists the bound names in unspecified order.
func (t *MapTrace) SignalNames() []string {
	return maps.Keys(t.signals)
}

// Signal returns the signal bound to name, or nil.
func (t *MapTrace) Signal(name string) AnySignal {
	return t.signals[name]
}
