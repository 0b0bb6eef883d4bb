// Package stlmon is an offline monitor for Signal Temporal Logic (STL)
// over finitely-sampled, typed, timed traces.
//
// 🚀 What is stlmon?
//
//	Given an STL formula and a trace binding each formula variable to a
//	signal sampled at strictly increasing time points, stlmon computes
//	either a Boolean verdict signal (satisfaction at each time) or a
//	quantitative robustness signal — a real-valued margin whose sign
//	matches the Boolean verdict.
//
// ✨ Key features:
//   - Typed piecewise signals (bool, int64, uint64, float64) with
//     constant, nearest and linear interpolation
//   - Full STL operator set: comparisons, Boolean connectives, next,
//     bounded and unbounded always / eventually / until
//   - Near-linear timed operators via a streaming min/max wedge
//     (Lemire / Donzé)
//   - Pure functions over immutable inputs; all failures are error values
//
// Everything is organized under three subpackages:
//
//	signal/  — piecewise signal data model, interpolation, signal algebra
//	expr/    — expression IR, time intervals, and the formula builder
//	monitor/ — trace boundary and the Boolean / quantitative evaluators
//
// A quick sketch:
//
//	b := expr.NewBuilder()
//	x, _ := b.FloatVar("x")
//	spec := b.MakeEventually(b.MakeGt(x, b.FloatConst(0)))
//
//	trace := monitor.NewMapTrace()
//	trace.Set("x", sig) // a *signal.Signal[float64]
//
//	verdict, err := monitor.EvalBoolean(spec, trace, signal.Linear)
//
// The surface-syntax parser and any command-line driver are external
// collaborators: their only contract with this module is that they produce a
// well-typed expression tree and a trace of signals.
package stlmon
