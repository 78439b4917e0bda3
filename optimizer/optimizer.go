package optimizer

import (
	"math/cmplx"
	"slices"

	"gonum.org/v1/gonum/mat"

	"github.com/shinolab/greedy-holographic-reconstruction/core"
)

// Optimizer is the capability every algorithm in this package exposes.
// SetTargetFoci and SetTargetAmps copy their arguments and may be
// called in any order; their lengths must agree by the time Optimize
// runs. Optimize reads emitter positions and writes drives in place.
type Optimizer interface {
	SetTargetFoci(foci []core.Vec3)
	SetTargetAmps(amps []core.Float)
	Optimize(emitters []core.Emitter) error
}

// Targets pairs focal positions with desired magnitudes, with the
// equal-length invariant established at construction instead of at the
// two setters.
type Targets struct {
	Foci []core.Vec3
	Amps []core.Float
}

// NewTargets copies both lists into a Targets value. Returns
// ErrTargetMismatch when the lengths differ.
func NewTargets(foci []core.Vec3, amps []core.Float) (Targets, error) {
	if len(foci) != len(amps) {
		return Targets{}, ErrTargetMismatch
	}
	return Targets{Foci: slices.Clone(foci), Amps: slices.Clone(amps)}, nil
}

// Apply feeds both lists to o.
func (t Targets) Apply(o Optimizer) {
	o.SetTargetFoci(t.Foci)
	o.SetTargetAmps(t.Amps)
}

// targets is the setter state shared by every optimizer in the package.
type targets struct {
	foci []core.Vec3
	amps []core.Float
}

// SetTargetFoci copies the focal positions.
func (t *targets) SetTargetFoci(foci []core.Vec3) {
	t.foci = slices.Clone(foci)
}

// SetTargetAmps copies the target magnitudes.
func (t *targets) SetTargetAmps(amps []core.Float) {
	t.amps = slices.Clone(amps)
}

// begin validates the shared preconditions of an Optimize call. It
// reports the target count and whether the algorithm body should run:
// a zero target count short-circuits to a successful no-op.
func (t *targets) begin(emitterCount int) (m int, proceed bool, err error) {
	if len(t.foci) != len(t.amps) {
		return 0, false, ErrTargetMismatch
	}
	if len(t.foci) == 0 {
		return 0, false, nil
	}
	if emitterCount == 0 {
		return 0, false, ErrNoEmitters
	}
	return len(t.foci), true, nil
}

// allZero reports whether every target magnitude is zero.
func (t *targets) allZero() bool {
	for _, a := range t.amps {
		if a != 0 {
			return false
		}
	}
	return true
}

// transferMatrix builds G ∈ C^{m×n} with G[i][j] = g(posⱼ, focusᵢ).
// Column j depends only on emitter j; the matrix is rebuilt on every
// Optimize call from the current geometry.
func transferMatrix(foci []core.Vec3, emitters []core.Emitter) *mat.CDense {
	g := mat.NewCDense(len(foci), len(emitters), nil)
	for i, fp := range foci {
		for j := range emitters {
			g.Set(i, j, core.Transfer(emitters[j].Pos, fp))
		}
	}
	return g
}

// clampDrive caps the drive magnitude at the admissible bound,
// preserving phase. Zero stays zero.
func clampDrive(q complex128) complex128 {
	if a := cmplx.Abs(q); a > 1 {
		return q * complex(1/a, 0)
	}
	return q
}

// writeZeroDrives zeroes every drive.
func writeZeroDrives(emitters []core.Emitter) {
	for j := range emitters {
		emitters[j].Q = 0
	}
}
