package expr

import "errors"

// Sentinel errors for formula construction.
var (
	// ErrIdentifierRedeclaration indicates a variable name declared twice with
	// different scalar types on the same Builder.
	ErrIdentifierRedeclaration = errors.New("expr: redeclaration of identifier")

	// ErrIncompleteArgs indicates an n-ary connective built with fewer than
	// two operands after flattening.
	ErrIncompleteArgs = errors.New("expr: insufficient number of arguments")
)
