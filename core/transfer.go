package core

import (
	"math"
	"math/cmplx"
	"sync"
	"sync/atomic"

	"gonum.org/v1/gonum/spatial/r3"
)

// Transfer returns the transfer function
//
//	g(src, dst) = (1/r)·exp(i·k·r),  r = ‖dst − src‖,  k = WaveNumber:
//
// the complex field amplitude observed at dst when a unit drive sits at
// src. The model is a free-field omnidirectional point source with 1/r
// spreading; no attenuation or directivity.
func Transfer(src, dst Vec3) complex128 {
	return TransferAt(src, dst, WaveNumber)
}

// TransferAt is Transfer with an explicit wave number.
func TransferAt(src, dst Vec3, waveNum Float) complex128 {
	r := r3.Norm(r3.Sub(dst, src))
	return cmplx.Rect(1/r, waveNum*r)
}

// TransferTable memoizes the transfer function over a lattice of
// squared distances quantized to a fixed step. Lookups inside the table
// range cost one division and one index; distances at or beyond the
// range fall back to the exact Transfer. The table is read-only after
// construction.
type TransferTable struct {
	step   Float // quantization step on squared distance
	maxSqr Float // squared range bound; lookups require r² < maxSqr
	values []complex128
}

// NewTransferTable builds a table covering distances in (0, maxDist)
// with the squared distance quantized to step. Each cell holds the
// transfer value at the midpoint of its squared-distance interval, so a
// lookup is off by at most half a step in squared distance.
//
// Returns ErrNonPositiveRange or ErrNonPositiveStep on invalid
// arguments.
func NewTransferTable(maxDist, step Float) (*TransferTable, error) {
	if maxDist <= 0 {
		return nil, ErrNonPositiveRange
	}
	if step <= 0 {
		return nil, ErrNonPositiveStep
	}
	maxSqr := maxDist * maxDist
	values := make([]complex128, int(maxSqr/step)+1)
	for k := range values {
		r := math.Sqrt((Float(k) + 0.5) * step)
		values[k] = cmplx.Rect(1/r, WaveNumber*r)
	}
	return &TransferTable{step: step, maxSqr: maxSqr, values: values}, nil
}

// At returns the memoized transfer value for the pair (src, dst),
// falling back to the exact function outside the table range.
func (t *TransferTable) At(src, dst Vec3) complex128 {
	rr := r3.Norm2(r3.Sub(dst, src))
	if rr >= t.maxSqr {
		return Transfer(src, dst)
	}
	return t.values[int(rr/t.step)]
}

// The process-wide table: published at most once, then immutable.
var (
	defaultOnce  sync.Once
	defaultErr   error
	defaultTable atomic.Pointer[TransferTable]
)

// InitDefaultTable builds and publishes the process-wide transfer table.
// Only the first call constructs anything; subsequent calls return the
// outcome of the first regardless of their arguments. A construction
// error from the first call is sticky and leaves the table unpublished.
func InitDefaultTable(maxDist, step Float) (*TransferTable, error) {
	defaultOnce.Do(func() {
		var t *TransferTable
		if t, defaultErr = NewTransferTable(maxDist, step); defaultErr == nil {
			defaultTable.Store(t)
		}
	})
	return defaultTable.Load(), defaultErr
}

// DefaultTable returns the process-wide table published by
// InitDefaultTable, or nil when none has been published.
func DefaultTable() *TransferTable {
	return defaultTable.Load()
}
