package optimizer

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/shinolab/greedy-holographic-reconstruction/core"
	"github.com/shinolab/greedy-holographic-reconstruction/linalg"
)

// GSPAT runs the Gerchberg–Saxton fixed point in the reduced M×M basis
// R = G·B (B the scaled back-projection), then applies the GS-PAT
// acceleration step that compensates the systematic under-amplitude
// bias of the plain iteration.
//
// repeat counts the fixed-point iterations. A zero γᵢ during the
// iteration is treated as unit phase, so targets momentarily orthogonal
// to the reduced state never divide by zero.
type GSPAT struct {
	targets
	repeat int
}

// NewGSPAT returns a GSPAT optimizer with the given iteration count.
func NewGSPAT(repeat int) *GSPAT {
	return &GSPAT{repeat: repeat}
}

// Optimize implements Optimizer.
func (s *GSPAT) Optimize(emitters []core.Emitter) error {
	m, proceed, err := s.begin(len(emitters))
	if err != nil || !proceed {
		return err
	}
	n := len(emitters)

	// 1) Transfer matrix and back-projection B ∈ C^{n×m}.
	g := transferMatrix(s.foci, emitters)
	b := mat.NewCDense(n, m, nil)
	for i := 0; i < m; i++ {
		denom := 0.0
		for j := 0; j < n; j++ {
			v := g.At(i, j)
			denom += real(v)*real(v) + imag(v)*imag(v)
		}
		for j := 0; j < n; j++ {
			b.Set(j, i, complex(s.amps[i], 0)*cmplx.Conj(g.At(i, j))/complex(denom, 0))
		}
	}

	// 2) Fixed point in the reduced basis R = G·B.
	var r mat.CDense
	r.Mul(g, b)
	p := make([]complex128, m)
	for i := 0; i < m; i++ {
		p[i] = complex(s.amps[i], 0)
	}
	gamma := linalg.MulVec(&r, p)
	for it := 0; it < s.repeat; it++ {
		for i := 0; i < m; i++ {
			p[i] = unitPhase(gamma[i]) * complex(s.amps[i], 0)
		}
		gamma = linalg.MulVec(&r, p)
	}

	// 3) Acceleration: pᵢ ← (γᵢ/|γᵢ|²)·aᵢ².
	for i := 0; i < m; i++ {
		aa := complex(s.amps[i]*s.amps[i], 0)
		if gamma[i] == 0 {
			p[i] = aa
			continue
		}
		abs := cmplx.Abs(gamma[i])
		p[i] = gamma[i] / complex(abs*abs, 0) * aa
	}

	// 4) Drives and clamp.
	q := linalg.MulVec(b, p)
	for j := 0; j < n; j++ {
		emitters[j].Q = clampDrive(q[j])
	}
	return nil
}

// unitPhase returns z/|z|, or 1 for z = 0.
func unitPhase(z complex128) complex128 {
	if z == 0 {
		return 1
	}
	return z / complex(cmplx.Abs(z), 0)
}
