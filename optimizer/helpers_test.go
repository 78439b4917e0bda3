package optimizer_test

import (
	"math"
	"math/cmplx"

	"github.com/shinolab/greedy-holographic-reconstruction/core"
	"github.com/shinolab/greedy-holographic-reconstruction/field"
)

// gridEmitters builds the reference array: a 10×10 grid with spacing
// 10.0 on the z = 0 plane, positions (10·x, 10·y, 0) for x, y ∈ 0..9.
func gridEmitters() []core.Emitter {
	em := make([]core.Emitter, 0, 100)
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			em = append(em, core.NewEmitter(core.Vec3{X: 10 * core.Float(x), Y: 10 * core.Float(y)}))
		}
	}
	return em
}

// ringFoci builds the five-focus ring of the reference scenarios:
// (80+40·cos(2πk/5), 80+40·sin(2πk/5), 150) with unit targets.
func ringFoci() ([]core.Vec3, []core.Float) {
	foci := make([]core.Vec3, 5)
	amps := make([]core.Float, 5)
	for k := 0; k < 5; k++ {
		th := 2 * math.Pi * core.Float(k) / 5
		foci[k] = core.Vec3{X: 80 + 40*math.Cos(th), Y: 80 + 40*math.Sin(th), Z: 150}
		amps[k] = 1
	}
	return foci, amps
}

// fieldAt evaluates the complex field of the array at p.
func fieldAt(em []core.Emitter, p core.Vec3) complex128 {
	return field.NewCalculator(em).Complex(p)
}

// matchedBound is the matched-filter upper bound Σⱼ|G[0,j]| on the
// achievable field magnitude at p with unit drives.
func matchedBound(em []core.Emitter, p core.Vec3) core.Float {
	var s core.Float
	for _, e := range em {
		s += cmplx.Abs(core.Transfer(e.Pos, p))
	}
	return s
}

// wrapAngle maps an angle onto (−π, π].
func wrapAngle(a core.Float) core.Float {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// drives copies the drive vector of the array.
func drives(em []core.Emitter) []complex128 {
	qs := make([]complex128, len(em))
	for j, e := range em {
		qs[j] = e.Q
	}
	return qs
}
