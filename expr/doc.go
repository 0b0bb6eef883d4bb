// Package expr defines the expression IR consumed by the STL evaluators:
// numeric expressions, Boolean expressions, temporal intervals, and the
// Builder used to construct well-formed formulas.
//
// 🚀 What is expr?
//
//	Two mutually referencing families of expression nodes:
//
//	  NumExpr  — literals, typed variables, negation, n-ary addition and
//	             multiplication, subtraction, division, absolute value
//	  BoolExpr — literals, boolean variables, numeric comparisons, logical
//	             connectives, and the temporal operators Next, Oracle,
//	             Always, Eventually and Until
//
// Expressions form trees: every node exclusively owns its children, and
// trees compare structurally. Build them through Builder, which
//
//   - tracks variable declarations so a name keeps one scalar type forever
//     (ErrIdentifierRedeclaration otherwise), and
//   - flattens nested same-kind n-ary connectives at construction, so
//     And(And(a,b), c) becomes And(a,b,c); fewer than two operands after
//     flattening is ErrIncompleteArgs.
//
// Interval-less temporal constructors produce operators over the untimed
// interval [0, ∞).
package expr
