package optimizer

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"

	"github.com/shinolab/greedy-holographic-reconstruction/core"
)

// Reference defaults for GD.
const (
	DefaultGDStep core.Float = 0.1
	DefaultGDEps  core.Float = math.Pi / 256
	DefaultGDKMax            = 10000
)

// GD minimizes the same phase objective as LM by fixed-step gradient
// descent from a zero initial θ, making it fully deterministic. The
// descent stops when ‖Jᵀf‖∞ drops to DefaultGDEps or the iteration
// budget runs out. Recovery is phase-only with the legacy +π rotation:
// qⱼ = e^{i(θⱼ+π)}, unit magnitude.
type GD struct {
	targets
	opts options
}

// NewGD returns a gradient-descent optimizer with the reference
// configuration.
func NewGD(opts ...Option) *GD {
	return &GD{opts: newOptions(opts)}
}

// Optimize implements Optimizer.
func (g *GD) Optimize(emitters []core.Emitter) error {
	m, proceed, err := g.begin(len(emitters))
	if err != nil || !proceed {
		return err
	}
	n := len(emitters)
	nm := n + m

	bhb := makeBhB(g.foci, g.amps, emitters)
	theta := make([]core.Float, nm)
	jtf := make([]core.Float, nm)
	if g.opts.observing() {
		g.opts.iter(0, calcFx(bhb, theta))
	}
	for k := 0; k < DefaultGDKMax; k++ {
		calcJtf(bhb, theta, jtf)
		if floats.Norm(jtf, math.Inf(1)) <= DefaultGDEps {
			break
		}
		floats.AddScaled(theta, -DefaultGDStep, jtf)
		if g.opts.observing() {
			g.opts.iter(k+1, calcFx(bhb, theta))
		}
	}

	for j := 0; j < n; j++ {
		emitters[j].Q = cmplx.Rect(1, theta[j]+math.Pi)
	}
	return nil
}
