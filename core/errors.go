package core

import "errors"

// Sentinel errors for transfer-table construction.
var (
	// ErrNonPositiveRange is returned when the table range is not
	// strictly positive.
	ErrNonPositiveRange = errors.New("core: transfer table range must be positive")

	// ErrNonPositiveStep is returned when the squared-distance
	// quantization step is not strictly positive.
	ErrNonPositiveStep = errors.New("core: transfer table step must be positive")
)
