package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shinolab/greedy-holographic-reconstruction/core"
)

// TestEmitter_ZeroDrive verifies that a fresh emitter carries no drive.
func TestEmitter_ZeroDrive(t *testing.T) {
	e := core.NewEmitter(core.Vec3{X: 1, Y: 2, Z: 3})
	assert.Equal(t, core.Vec3{X: 1, Y: 2, Z: 3}, e.Pos)
	assert.Equal(t, complex128(0), e.Q)
	assert.Equal(t, 0.0, e.Amp())
}

// TestEmitter_AmpPhaseRoundTrip verifies the legacy split view against
// the combined drive.
func TestEmitter_AmpPhaseRoundTrip(t *testing.T) {
	var e core.Emitter
	e.SetAmpPhase(0.5, math.Pi/3)

	assert.InDelta(t, 0.5, e.Amp(), 1e-15)
	assert.InDelta(t, math.Pi/3, e.Phase(), 1e-15)
	assert.InDelta(t, 0.25, real(e.Q), 1e-15, "0.5·cos(π/3)")
	assert.InDelta(t, 0.5*math.Sin(math.Pi/3), imag(e.Q), 1e-15)
}
