package optimizer

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/shinolab/greedy-holographic-reconstruction/core"
	"github.com/shinolab/greedy-holographic-reconstruction/linalg"
)

// DefaultGamma is the default regularization exponent of Long.
const DefaultGamma core.Float = 1.0

// Long recovers per-focus phases from the dominant eigenvector of the
// reduced operator R = G·X (X the matched-filter back-projection), then
// solves a row-regularized least-squares system for the drives.
//
// gamma is the exponent on the diagonal regularizer: row j of the
// stacked system carries ((Σᵢ|G[i,j]|·aᵢ)/M)^(γ/2). The solution gets
// the GS-PAT amplitude correction q ← q·M/ρ with ρ = Σᵢ|zᵢ|/aᵢ, a
// phase-preserving magnitude clamp, and the legacy global phase
// rotation of +π.
type Long struct {
	targets
	gamma core.Float
}

// NewLong returns an LSS optimizer with regularization exponent gamma
// (DefaultGamma for the reference behavior).
func NewLong(gamma core.Float) *Long {
	return &Long{gamma: gamma}
}

// Optimize implements Optimizer.
func (l *Long) Optimize(emitters []core.Emitter) error {
	m, proceed, err := l.begin(len(emitters))
	if err != nil || !proceed {
		return err
	}
	// All-zero targets zero the regularizer and make the normal matrix
	// singular; the answer is the zero drive either way.
	if l.allZero() {
		writeZeroDrives(emitters)
		return nil
	}
	n := len(emitters)

	// 1) Transfer matrix and back-projection X ∈ C^{n×m}.
	g := transferMatrix(l.foci, emitters)
	x := mat.NewCDense(n, m, nil)
	for i := 0; i < m; i++ {
		denom := 0.0
		for j := 0; j < n; j++ {
			v := g.At(i, j)
			denom += real(v)*real(v) + imag(v)*imag(v)
		}
		for j := 0; j < n; j++ {
			x.Set(j, i, complex(l.amps[i], 0)*cmplx.Conj(g.At(i, j))/complex(denom, 0))
		}
	}

	// 2) Dominant eigenvector of R = G·X fixes the per-focus phases.
	var r mat.CDense
	r.Mul(g, x)
	_, emV, err := linalg.DominantEig(&r)
	if err != nil {
		return err
	}

	// 3) Normal equations of the stacked system [G; Σ]·q = [f; 0]:
	// (G*G + Σ²)·q = G*·f, with Σ the diagonal row regularizer.
	var gtg mat.CDense
	gtg.Mul(g.H(), g)
	for j := 0; j < n; j++ {
		sum := 0.0
		for i := 0; i < m; i++ {
			sum += cmplx.Abs(g.At(i, j)) * l.amps[i]
		}
		sigma := math.Pow(sum/core.Float(m), 0.5*l.gamma)
		gtg.Set(j, j, gtg.At(j, j)+complex(sigma*sigma, 0))
	}
	f := make([]complex128, m)
	for i := 0; i < m; i++ {
		f[i] = cmplx.Rect(l.amps[i], cmplx.Phase(emV[i]))
	}
	rhs := linalg.MulVec(g.H(), f)
	q, err := linalg.SolveHerm(&gtg, rhs)
	if err != nil {
		return err
	}

	// 4) GS-PAT amplitude correction against the realized field.
	z := linalg.MulVec(g, q)
	rho := 0.0
	for i := 0; i < m; i++ {
		if l.amps[i] > 0 {
			rho += cmplx.Abs(z[i]) / l.amps[i]
		}
	}
	if rho > 0 && !math.IsInf(rho, 1) {
		scale := complex(core.Float(m)/rho, 0)
		for j := range q {
			q[j] *= scale
		}
	}

	// 5) Clamp magnitudes, rotate the global phase by +π.
	for j := 0; j < n; j++ {
		amp := math.Min(cmplx.Abs(q[j]), 1)
		emitters[j].Q = cmplx.Rect(amp, cmplx.Phase(q[j])+math.Pi)
	}
	return nil
}
