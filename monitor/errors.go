package monitor

import "errors"

// Sentinel errors for evaluation.
var (
	// ErrSignalNotPresent indicates a formula variable that the trace does not
	// bind, or binds at a different scalar type than declared.
	ErrSignalNotPresent = errors.New("monitor: signal not present in trace")

	// ErrInvalidInterval indicates a temporal operator whose interval is empty
	// or a singleton.
	ErrInvalidInterval = errors.New("monitor: temporal interval is empty or singleton")
)
