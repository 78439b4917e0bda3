package optimizer

import (
	"math"
	"math/cmplx"

	"github.com/shinolab/greedy-holographic-reconstruction/core"
)

// GreedyBruteForce sweeps the emitters in order (optionally shuffled)
// and, for each one, commits the drive from a discrete amplitude × phase
// grid that minimizes the L1 residual between the accumulated field
// magnitudes and the targets.
//
// The grid enumerates amplitudes k/ampDiv for k = 1..ampDiv (zero
// excluded) in the outer loop and phaseDiv phase samples on the unit
// circle in the inner loop; the first candidate at the minimum score
// wins. Complexity is O(N·ampDiv·phaseDiv·M) complex multiplies with no
// factorizations.
type GreedyBruteForce struct {
	targets
	opts      options
	phaseDiv  int
	ampDiv    int
	randomize bool
}

// NewGreedyBruteForce returns a GBS optimizer with phaseDiv phase
// samples and ampDiv amplitude samples. With randomize, the emitter
// visit order is a uniform permutation drawn from the per-call RNG
// (pin it with WithSeed). Panics if either division is below 1.
func NewGreedyBruteForce(phaseDiv, ampDiv int, randomize bool, opts ...Option) *GreedyBruteForce {
	if phaseDiv < 1 || ampDiv < 1 {
		panic("optimizer: grid divisions must be at least 1")
	}
	return &GreedyBruteForce{
		opts:      newOptions(opts),
		phaseDiv:  phaseDiv,
		ampDiv:    ampDiv,
		randomize: randomize,
	}
}

// Optimize implements Optimizer.
func (g *GreedyBruteForce) Optimize(emitters []core.Emitter) error {
	m, proceed, err := g.begin(len(emitters))
	if err != nil || !proceed {
		return err
	}
	// The grid excludes the zero amplitude, so the all-zero target case
	// is answered directly.
	if g.allZero() {
		writeZeroDrives(emitters)
		return nil
	}
	n := len(emitters)

	// 1) Visit order: identity, or a uniform permutation.
	var order []int
	if g.randomize {
		order = g.opts.rng().Perm(n)
	} else {
		order = make([]int, n)
		for j := range order {
			order[j] = j
		}
	}

	// 2) Grid steps.
	ampStep := 1 / core.Float(g.ampDiv)
	phaseStep := cmplx.Rect(1, 2*math.Pi/core.Float(g.phaseDiv))

	// 3) Greedy sweep with an accumulated-field cache.
	cache := make([]complex128, m)
	col := make([]complex128, m)   // transfer column of the current emitter
	trial := make([]complex128, m) // field contribution of the candidate
	best := make([]complex128, m)  // contribution of the committed candidate
	for _, j := range order {
		src := emitters[j].Pos
		for i, fp := range g.foci {
			col[i] = core.Transfer(src, fp)
		}

		minV := math.Inf(1)
		var minQ complex128
		for k := 1; k <= g.ampDiv; k++ {
			q := complex(core.Float(k)*ampStep, 0)
			for p := 0; p < g.phaseDiv; p++ {
				v := 0.0
				for i := range col {
					r := col[i] * q
					trial[i] = r
					v += math.Abs(cmplx.Abs(r+cache[i]) - g.amps[i])
				}
				if v < minV {
					minV = v
					minQ = q
					copy(best, trial)
				}
				q *= phaseStep
			}
		}

		for i := range cache {
			cache[i] += best[i]
		}
		emitters[j].Q = minQ
	}
	return nil
}
