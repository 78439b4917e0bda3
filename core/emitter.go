package core

import "math/cmplx"

// Emitter is a single drive element of the array: an omnidirectional
// point radiator at Pos with complex drive Q. The drive carries both
// amplitude (|Q|) and phase (arg Q) in one value.
//
// Memory layout is (Pos.X, Pos.Y, Pos.Z, real(Q), imag(Q)) as five
// contiguous float64 scalars with platform-native alignment.
//
// Pos is fixed once the array geometry is set; optimizers mutate only
// Q, and after a successful Optimize every emitter satisfies |Q| ≤ 1.
type Emitter struct {
	Pos Vec3
	Q   complex128
}

// NewEmitter returns an emitter at pos with a zero drive.
func NewEmitter(pos Vec3) Emitter {
	return Emitter{Pos: pos}
}

// Amp returns the drive amplitude |Q|.
func (e Emitter) Amp() Float {
	return cmplx.Abs(e.Q)
}

// Phase returns the drive phase arg Q in (−π, π].
func (e Emitter) Phase() Float {
	return cmplx.Phase(e.Q)
}

// SetAmpPhase sets the drive from the legacy split representation
// Q = amp·exp(i·phase).
func (e *Emitter) SetAmpPhase(amp, phase Float) {
	e.Q = cmplx.Rect(amp, phase)
}
