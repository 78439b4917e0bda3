package optimizer

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/shinolab/greedy-holographic-reconstruction/core"
	"github.com/shinolab/greedy-holographic-reconstruction/linalg"
)

// Horn solves a semidefinite relaxation of the multi-focus matching
// problem: random coordinate updates drive a Hermitian matrix X toward
// the relaxation optimum, and a rank-1 recovery through the dominant
// eigenvector of X yields the drives.
//
// repeat counts the coordinate updates, alpha is the Tikhonov floor of
// the pseudo-inverse of the transfer matrix, and lambda the step size
// of the semidefinite update. The recovered drive vector is
// max-normalized (the largest magnitude lands exactly on the admissible
// bound) before the phase-preserving clamp.
type Horn struct {
	targets
	opts   options
	repeat int
	alpha  core.Float
	lambda core.Float
}

// NewHorn returns an SDP optimizer with the given iteration count,
// Tikhonov parameter and update step. The coordinate draws come from
// the per-call RNG (pin with WithSeed).
func NewHorn(repeat int, alpha, lambda core.Float, opts ...Option) *Horn {
	return &Horn{opts: newOptions(opts), repeat: repeat, alpha: alpha, lambda: lambda}
}

// Optimize implements Optimizer.
func (h *Horn) Optimize(emitters []core.Emitter) error {
	m, proceed, err := h.begin(len(emitters))
	if err != nil || !proceed {
		return err
	}
	n := len(emitters)

	// 1) Transfer matrix and its regularized pseudo-inverse.
	g := transferMatrix(h.foci, emitters)
	pinv, err := linalg.TikhonovPinv(g, h.alpha)
	if err != nil {
		return err
	}

	// 2) MM = P·(I − G·pinv)·P with P = diag(amps).
	var gp mat.CDense
	gp.Mul(g, pinv)
	mm := mat.NewCDense(m, m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			v := -gp.At(i, j)
			if i == j {
				v += 1
			}
			mm.Set(i, j, complex(h.amps[i], 0)*v*complex(h.amps[j], 0))
		}
	}

	// 3) Random coordinate updates on X, starting from the identity.
	rng := h.opts.rng()
	x := mat.NewCDense(m, m, nil)
	for i := 0; i < m; i++ {
		x.Set(i, i, 1)
	}
	xb := make([]complex128, m-1)
	mmc := make([]complex128, m-1)
	for it := 0; it < h.repeat; it++ {
		ii := rng.Intn(m)

		// mm_c: column ii of MM with entry ii removed.
		idx := 0
		for r := 0; r < m; r++ {
			if r == ii {
				continue
			}
			mmc[idx] = mm.At(r, ii)
			idx++
		}
		// x_b = X_c · mm_c, with X_c the principal submatrix without ii.
		ri := 0
		for r := 0; r < m; r++ {
			if r == ii {
				continue
			}
			var s complex128
			ci := 0
			for c := 0; c < m; c++ {
				if c == ii {
					continue
				}
				s += x.At(r, c) * mmc[ci]
				ci++
			}
			xb[ri] = s
			ri++
		}
		var gamma complex128
		for k := 0; k < m-1; k++ {
			gamma += cmplx.Conj(xb[k]) * mmc[k]
		}

		// A non-finite step degenerates to the zeroing branch.
		if s := real(gamma); s > 0 && !math.IsInf(math.Sqrt(h.lambda/s), 0) {
			scale := complex(-math.Sqrt(h.lambda/s), 0)
			idx = 0
			for r := 0; r < m; r++ {
				if r == ii {
					continue
				}
				v := scale * xb[idx]
				idx++
				x.Set(r, ii, v)
				x.Set(ii, r, cmplx.Conj(v))
			}
		} else {
			for r := 0; r < m; r++ {
				if r != ii {
					x.Set(r, ii, 0)
					x.Set(ii, r, 0)
				}
			}
		}
	}

	// 4) Rank-1 recovery via the dominant eigenvector.
	val, u, err := linalg.DominantEigHerm(x)
	if err != nil {
		return err
	}
	var q []complex128
	if val == 0 {
		// Degenerate spectrum: single-focus matched filter on focus 0.
		q = matchedFilter(g, h.amps[0])
	} else {
		pu := make([]complex128, m)
		for i := 0; i < m; i++ {
			pu[i] = complex(h.amps[i], 0) * u[i]
		}
		q = linalg.MulVec(pinv, pu)
	}

	// 5) Max-normalize, then clamp.
	maxCoef := 0.0
	for _, v := range q {
		maxCoef = math.Max(maxCoef, cmplx.Abs(v))
	}
	if maxCoef > 0 {
		inv := complex(1/maxCoef, 0)
		for j := range q {
			q[j] *= inv
		}
	}
	for j := 0; j < n; j++ {
		emitters[j].Q = clampDrive(q[j])
	}
	return nil
}

// matchedFilter is the single-focus closed form
// qⱼ = a·conj(G₀ⱼ)/Σₖ|G₀ₖ|².
func matchedFilter(g *mat.CDense, amp core.Float) []complex128 {
	_, n := g.Dims()
	denom := 0.0
	for j := 0; j < n; j++ {
		v := g.At(0, j)
		denom += real(v)*real(v) + imag(v)*imag(v)
	}
	q := make([]complex128, n)
	for j := 0; j < n; j++ {
		q[j] = complex(amp, 0) * cmplx.Conj(g.At(0, j)) / complex(denom, 0)
	}
	return q
}
