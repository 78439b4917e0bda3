package optimizer

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/shinolab/greedy-holographic-reconstruction/core"
)

// The phase objective shared by LM and GD:
//
//	F(θ) = (e^{iθ})* · BhB · (e^{iθ}),  BhB = B*·B,  B = [G | −P]
//
// over θ ∈ ℝ^{N+M}, with P = diag(amps). The kernels below evaluate the
// Gramian, the objective, and its exact derivatives through the
// real/imaginary split of BhB ⊙ (T·T*), T = e^{−iθ}.

// makeBhB builds the (n+m)×(n+m) Gramian of the stacked operator.
func makeBhB(foci []core.Vec3, amps []core.Float, emitters []core.Emitter) *mat.CDense {
	m, n := len(foci), len(emitters)
	b := mat.NewCDense(m, n+m, nil)
	for i, fp := range foci {
		for j := range emitters {
			b.Set(i, j, core.Transfer(emitters[j].Pos, fp))
		}
		b.Set(i, n+i, complex(-amps[i], 0))
	}
	var bhb mat.CDense
	bhb.Mul(b.H(), b)
	return &bhb
}

// calcJtJJtf fills JᵀJ = Re(X) and Jᵀf = row sums of Im(X) for
// X = BhB ⊙ (T·T*). JᵀJ is real symmetric positive semidefinite.
func calcJtJJtf(bhb *mat.CDense, theta []core.Float, jtj *mat.SymDense, jtf []core.Float) {
	nm := len(theta)
	t := make([]complex128, nm)
	for i := 0; i < nm; i++ {
		t[i] = cmplx.Rect(1, -theta[i])
	}
	for r := 0; r < nm; r++ {
		im := 0.0
		for c := 0; c < nm; c++ {
			v := bhb.At(r, c) * t[r] * cmplx.Conj(t[c])
			if c >= r {
				jtj.SetSym(r, c, real(v))
			}
			im += imag(v)
		}
		jtf[r] = im
	}
}

// calcJtf fills only the gradient term Jᵀf.
func calcJtf(bhb *mat.CDense, theta []core.Float, jtf []core.Float) {
	nm := len(theta)
	t := make([]complex128, nm)
	for i := 0; i < nm; i++ {
		t[i] = cmplx.Rect(1, -theta[i])
	}
	for r := 0; r < nm; r++ {
		im := 0.0
		for c := 0; c < nm; c++ {
			im += imag(bhb.At(r, c) * t[r] * cmplx.Conj(t[c]))
		}
		jtf[r] = im
	}
}

// calcFx evaluates the objective F(θ).
func calcFx(bhb *mat.CDense, theta []core.Float) core.Float {
	nm := len(theta)
	e := make([]complex128, nm)
	for i := 0; i < nm; i++ {
		e[i] = cmplx.Rect(1, theta[i])
	}
	var acc complex128
	for r := 0; r < nm; r++ {
		var row complex128
		for c := 0; c < nm; c++ {
			row += bhb.At(r, c) * e[c]
		}
		acc += cmplx.Conj(e[r]) * row
	}
	return real(acc)
}
