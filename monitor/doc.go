// Package monitor evaluates STL formulas over traces of sampled signals.
//
// 🚀 What is monitor?
//
//	The offline evaluation engine: given a Boolean expression tree from the
//	expr package and a Trace binding each variable to a signal, it computes
//
//	  EvalQuantitative — a robustness signal (Signal[float64]) whose value
//	                     at each time is the margin by which the formula is
//	                     satisfied (positive) or violated (negative), with
//	                     ±Inf for definite verdicts, and
//	  EvalBoolean      — the Boolean verdict signal, defined as the
//	                     robustness being non-negative sample-wise.
//
// ✨ Under the hood:
//   - bottom-up, post-order evaluation delegating numeric subtrees to
//     EvalNumeric and all signal algebra to the signal package
//   - untimed always/eventually as right-to-left running min/max sweeps
//     over a zero-crossing-augmented time axis
//   - timed always/eventually in near-linear time via MonoWedge, the
//     Lemire/Donzé streaming min-max filter, after a left shift of the
//     argument signal
//   - until via the Donzé–Ferrère–Maler rewrite
//     min(F[a,b] rhs, G[0,a](lhs U rhs)), with the always guard applied
//     only when a > 0
//
// All evaluation is pure and single-threaded: inputs are never mutated and
// every result is freshly allocated, so distinct goroutines may evaluate
// concurrently with their own builders, traces and expressions.
package monitor
