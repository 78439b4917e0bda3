package optimizer

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/shinolab/greedy-holographic-reconstruction/core"
	"github.com/shinolab/greedy-holographic-reconstruction/linalg"
)

// Reference defaults for LM.
const (
	DefaultEps1 core.Float = 1e-8
	DefaultEps2 core.Float = 1e-8
	DefaultTau  core.Float = 1e-3
	DefaultKMax            = 200
)

// LM minimizes the phase objective F(θ) = (e^{iθ})*·BhB·(e^{iθ}) with
// the Levenberg–Marquardt damping schedule and exact derivatives.
//
// eps1 is the tolerance on ‖Jᵀf‖∞, eps2 the step-norm tolerance, tau
// the initial damping as a fraction of the largest JᵀJ diagonal, and
// kMax the iteration budget. The initial θ is uniform in [0, 2π) from
// the per-call RNG (pin with WithSeed). Recovery is phase-only:
// qⱼ = e^{iθⱼ}, so every drive has unit magnitude exactly.
type LM struct {
	targets
	opts options
	eps1 core.Float
	eps2 core.Float
	tau  core.Float
	kMax int
}

// NewLM returns an LM optimizer; the Default* constants reproduce the
// reference configuration.
func NewLM(eps1, eps2, tau core.Float, kMax int, opts ...Option) *LM {
	return &LM{opts: newOptions(opts), eps1: eps1, eps2: eps2, tau: tau, kMax: kMax}
}

// Optimize implements Optimizer.
func (l *LM) Optimize(emitters []core.Emitter) error {
	m, proceed, err := l.begin(len(emitters))
	if err != nil || !proceed {
		return err
	}
	n := len(emitters)
	nm := n + m

	// 1) Gramian and random initial phases.
	bhb := makeBhB(l.foci, l.amps, emitters)
	rng := l.opts.rng()
	theta := make([]core.Float, nm)
	for i := range theta {
		theta[i] = rng.Float64() * 2 * math.Pi
	}

	// 2) Initial derivatives, damping, and objective.
	jtj := mat.NewSymDense(nm, nil)
	jtf := make([]core.Float, nm)
	calcJtJJtf(bhb, theta, jtj, jtf)
	maxDiag := math.Inf(-1)
	for i := 0; i < nm; i++ {
		maxDiag = math.Max(maxDiag, jtj.At(i, i))
	}
	mu := l.tau * maxDiag
	nu := 2.0
	fx := calcFx(bhb, theta)
	l.opts.iter(0, fx)

	// 3) Damped Gauss–Newton loop.
	found := floats.Norm(jtf, math.Inf(1)) <= l.eps1
	damped := mat.NewSymDense(nm, nil)
	neg := make([]core.Float, nm)
	thetaNew := make([]core.Float, nm)
	for k := 1; k <= l.kMax && !found; k++ {
		// Solve (JᵀJ + μI)·h = −Jᵀf. The +μI term keeps the system
		// positive definite; a numeric solve failure halts with the
		// last accepted θ.
		damped.CopySym(jtj)
		for i := 0; i < nm; i++ {
			damped.SetSym(i, i, damped.At(i, i)+mu)
		}
		for i := 0; i < nm; i++ {
			neg[i] = -jtf[i]
		}
		h, solveErr := linalg.SolveSymPD(damped, neg)
		if solveErr != nil {
			break
		}
		if floats.Norm(h, 2) <= l.eps2*(floats.Norm(theta, 2)+l.eps2) {
			break
		}

		floats.AddTo(thetaNew, theta, h)
		fxNew := calcFx(bhb, thetaNew)
		predicted := 0.5 * (mu*floats.Dot(h, h) - floats.Dot(h, jtf))
		rho := (fx - fxNew) / predicted
		if rho > 0 {
			copy(theta, thetaNew)
			fx = fxNew
			calcJtJJtf(bhb, theta, jtj, jtf)
			l.opts.iter(k, fx)
			found = floats.Norm(jtf, math.Inf(1)) <= l.eps1
			mu *= math.Max(1.0/3.0, 1-math.Pow(2*rho-1, 3))
			nu = 2
		} else {
			mu *= nu
			nu *= 2
		}
	}

	// 4) Phase-only recovery.
	for j := 0; j < n; j++ {
		emitters[j].Q = cmplx.Rect(1, theta[j])
	}
	return nil
}
