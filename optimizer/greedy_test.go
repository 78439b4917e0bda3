package optimizer_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinolab/greedy-holographic-reconstruction/core"
	"github.com/shinolab/greedy-holographic-reconstruction/optimizer"
)

// TestGreedyBruteForce_SingleFocus runs the reference single-focus
// scenario: all drives at full amplitude, phases within one grid step
// of the matched filter (up to a common global phase), field magnitude
// within 5% of the matched-filter bound.
func TestGreedyBruteForce_SingleFocus(t *testing.T) {
	em := gridEmitters()
	focus := core.Vec3{X: 45, Y: 45, Z: 150}

	opt := optimizer.NewGreedyBruteForce(16, 1, false)
	opt.SetTargetFoci([]core.Vec3{focus})
	opt.SetTargetAmps([]core.Float{1})
	require.NoError(t, opt.Optimize(em))

	// Full amplitude on every emitter (ampDiv = 1).
	for j, e := range em {
		assert.InDelta(t, 1.0, e.Amp(), 1e-12, "emitter %d", j)
	}

	// Phases track −arg(G[0,j]) up to a common offset, within one
	// phase-grid step 2π/16.
	offset := func(j int) core.Float {
		return wrapAngle(em[j].Phase() + cmplx.Phase(core.Transfer(em[j].Pos, focus)))
	}
	ref := offset(0)
	step := 2 * math.Pi / 16
	for j := range em {
		assert.LessOrEqual(t, math.Abs(wrapAngle(offset(j)-ref)), step+1e-9, "emitter %d", j)
	}

	// Focus recovery against the matched-filter bound.
	got := cmplx.Abs(fieldAt(em, focus))
	assert.GreaterOrEqual(t, got, 0.95*matchedBound(em, focus))
}

// TestGreedyBruteForce_AmplitudeGrid verifies that with ampDiv = 2
// every committed drive magnitude lies on the grid {0.5, 1.0}.
func TestGreedyBruteForce_AmplitudeGrid(t *testing.T) {
	em := gridEmitters()
	foci, amps := ringFoci()

	opt := optimizer.NewGreedyBruteForce(8, 2, false)
	opt.SetTargetFoci(foci)
	opt.SetTargetAmps(amps)
	require.NoError(t, opt.Optimize(em))

	for j, e := range em {
		a := e.Amp()
		onGrid := math.Abs(a-0.5) < 1e-12 || math.Abs(a-1.0) < 1e-12
		assert.True(t, onGrid, "emitter %d: |q| = %v off the amplitude grid", j, a)
	}
}

// TestGreedyBruteForce_Deterministic verifies bit-stability of the
// non-randomized sweep and of the shuffled sweep under a pinned seed.
func TestGreedyBruteForce_Deterministic(t *testing.T) {
	foci, amps := ringFoci()

	run := func(opt optimizer.Optimizer) []complex128 {
		em := gridEmitters()
		opt.SetTargetFoci(foci)
		opt.SetTargetAmps(amps)
		require.NoError(t, opt.Optimize(em))
		return drives(em)
	}

	assert.Equal(t,
		run(optimizer.NewGreedyBruteForce(16, 2, false)),
		run(optimizer.NewGreedyBruteForce(16, 2, false)))

	assert.Equal(t,
		run(optimizer.NewGreedyBruteForce(16, 2, true, optimizer.WithSeed(42))),
		run(optimizer.NewGreedyBruteForce(16, 2, true, optimizer.WithSeed(42))))
}

// TestGreedyBruteForce_ZeroTargets verifies the all-zero-amplitude
// short circuit: the grid excludes zero, the answer must not.
func TestGreedyBruteForce_ZeroTargets(t *testing.T) {
	em := gridEmitters()
	em[3].Q = 0.5 // stale drive to be overwritten

	opt := optimizer.NewGreedyBruteForce(16, 4, false)
	opt.SetTargetFoci([]core.Vec3{{X: 45, Y: 45, Z: 150}, {X: 20, Y: 20, Z: 150}})
	opt.SetTargetAmps([]core.Float{0, 0})
	require.NoError(t, opt.Optimize(em))

	for j, e := range em {
		assert.Equal(t, complex128(0), e.Q, "emitter %d", j)
	}
}

// TestNewGreedyBruteForce_PanicsOnBadGrid documents the fail-fast
// constructor contract.
func TestNewGreedyBruteForce_PanicsOnBadGrid(t *testing.T) {
	assert.Panics(t, func() { optimizer.NewGreedyBruteForce(0, 1, false) })
	assert.Panics(t, func() { optimizer.NewGreedyBruteForce(16, 0, false) })
}
