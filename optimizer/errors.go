package optimizer

import "errors"

// Sentinel errors for contract violations of an Optimize call.
var (
	// ErrTargetMismatch is returned when the focus and amplitude lists
	// have different lengths at the time Optimize runs.
	ErrTargetMismatch = errors.New("optimizer: focus and amplitude counts differ")

	// ErrNoEmitters is returned when targets are present but the
	// emitter slice is empty.
	ErrNoEmitters = errors.New("optimizer: emitter slice is empty")
)
