package core_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinolab/greedy-holographic-reconstruction/core"
)

// TestTransfer_MagnitudeAndPhase verifies the 1/r spreading and the
// k·r phase of the transfer model on an axis-aligned pair.
func TestTransfer_MagnitudeAndPhase(t *testing.T) {
	src := core.Vec3{}
	dst := core.Vec3{Z: 10}

	g := core.Transfer(src, dst)
	assert.InDelta(t, 0.1, cmplx.Abs(g), 1e-15, "magnitude must be 1/r")

	wantPhase := math.Mod(core.WaveNumber*10, 2*math.Pi)
	if wantPhase > math.Pi {
		wantPhase -= 2 * math.Pi
	}
	assert.InDelta(t, wantPhase, cmplx.Phase(g), 1e-12, "phase must be k·r")
}

// TestTransfer_Symmetry verifies that only the distance matters:
// swapping source and destination leaves the value unchanged.
func TestTransfer_Symmetry(t *testing.T) {
	a := core.Vec3{X: 3, Y: -2, Z: 7}
	b := core.Vec3{X: -1, Y: 4, Z: 12}
	assert.Equal(t, core.Transfer(a, b), core.Transfer(b, a))
}

// TestTransferAt_WaveNumber verifies the explicit-wave-number variant
// against the hand-written formula.
func TestTransferAt_WaveNumber(t *testing.T) {
	src := core.Vec3{X: 1}
	dst := core.Vec3{X: 4, Y: 4}
	r := 5.0 // 3-4-5 triangle
	k := 0.7

	g := core.TransferAt(src, dst, k)
	assert.InDelta(t, math.Cos(k*r)/r, real(g), 1e-12)
	assert.InDelta(t, math.Sin(k*r)/r, imag(g), 1e-12)
}

// TestNewTransferTable_Validation checks the constructor sentinels.
func TestNewTransferTable_Validation(t *testing.T) {
	_, err := core.NewTransferTable(0, 1e-3)
	assert.ErrorIs(t, err, core.ErrNonPositiveRange)

	_, err = core.NewTransferTable(-5, 1e-3)
	assert.ErrorIs(t, err, core.ErrNonPositiveRange)

	_, err = core.NewTransferTable(10, 0)
	assert.ErrorIs(t, err, core.ErrNonPositiveStep)
}

// TestTransferTable_Lookup verifies that memoized values agree with the
// exact function to within the quantization error, and that
// out-of-range distances fall back exactly.
func TestTransferTable_Lookup(t *testing.T) {
	tab, err := core.NewTransferTable(20, 1e-3)
	require.NoError(t, err)

	src := core.Vec3{}
	for _, dst := range []core.Vec3{
		{Z: 5}, {X: 3, Y: 4, Z: 8}, {X: -7, Y: 2, Z: 11}, {X: 9, Y: 9, Z: 9},
	} {
		got := tab.At(src, dst)
		want := core.Transfer(src, dst)
		assert.InDelta(t, real(want), real(got), 1e-4)
		assert.InDelta(t, imag(want), imag(got), 1e-4)
	}

	// Beyond the range the exact function answers.
	far := core.Vec3{Z: 100}
	assert.Equal(t, core.Transfer(src, far), tab.At(src, far))
}

// TestInitDefaultTable_PublishOnce verifies the one-time publication:
// the first call wins and later calls return the same table.
func TestInitDefaultTable_PublishOnce(t *testing.T) {
	first, err := core.InitDefaultTable(20, 1e-3)
	require.NoError(t, err)
	require.NotNil(t, first)

	again, err := core.InitDefaultTable(50, 1e-2)
	require.NoError(t, err)
	assert.Same(t, first, again, "second init must return the published table")
	assert.Same(t, first, core.DefaultTable())
}
