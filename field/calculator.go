package field

import (
	"math/cmplx"
	"sort"

	"github.com/shinolab/greedy-holographic-reconstruction/core"
)

// Option configures a Calculator.
type Option func(*Calculator)

// WithWaveNumber overrides the wave number used for every transfer
// evaluation. The default is core.WaveNumber. Non-positive values are
// ignored.
func WithWaveNumber(k core.Float) Option {
	return func(c *Calculator) {
		if k > 0 {
			c.waveNum = k
		}
	}
}

// WithAccurateSum switches the calculator to magnitude-ordered
// summation: per-source contributions are accumulated smallest first,
// which bounds cancellation error when many nearly-opposite terms meet.
func WithAccurateSum() Option {
	return func(c *Calculator) {
		c.accurate = true
	}
}

// WithTransferTable routes transfer evaluations through the given
// memo table. A nil table leaves the exact function in place. The
// table is bypassed when the calculator's wave number differs from
// core.WaveNumber.
func WithTransferTable(t *core.TransferTable) Option {
	return func(c *Calculator) {
		if t != nil {
			c.table = t
		}
	}
}

// Calculator evaluates the superposed field of an emitter array. It
// holds its own copy of the emitters; construct one per array snapshot.
type Calculator struct {
	sources  []core.Emitter
	waveNum  core.Float
	accurate bool
	table    *core.TransferTable
}

// NewCalculator returns a calculator over a copy of emitters.
func NewCalculator(emitters []core.Emitter, opts ...Option) *Calculator {
	c := &Calculator{
		sources: append([]core.Emitter(nil), emitters...),
		waveNum: core.WaveNumber,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddEmitters appends a copy of more emitters to the snapshot.
func (c *Calculator) AddEmitters(emitters []core.Emitter) {
	c.sources = append(c.sources, emitters...)
}

// Emitters returns the calculator's snapshot of the array.
func (c *Calculator) Emitters() []core.Emitter {
	return c.sources
}

// transfer evaluates one source→point transfer, through the memo table
// when one is configured.
func (c *Calculator) transfer(src, dst core.Vec3) complex128 {
	if c.table != nil && c.waveNum == core.WaveNumber {
		return c.table.At(src, dst)
	}
	return core.TransferAt(src, dst, c.waveNum)
}

// Complex returns the complex field Σⱼ qⱼ·g(posⱼ, p) at p.
func (c *Calculator) Complex(p core.Vec3) complex128 {
	if c.accurate {
		return c.complexAccurate(p)
	}
	var acc complex128
	for _, s := range c.sources {
		acc += s.Q * c.transfer(s.Pos, p)
	}
	return acc
}

// complexAccurate sums contributions in ascending magnitude order.
func (c *Calculator) complexAccurate(p core.Vec3) complex128 {
	terms := make([]complex128, len(c.sources))
	for i, s := range c.sources {
		terms[i] = s.Q * c.transfer(s.Pos, p)
	}
	sort.Slice(terms, func(i, j int) bool {
		return cmplx.Abs(terms[i]) < cmplx.Abs(terms[j])
	})
	var acc complex128
	for _, t := range terms {
		acc += t
	}
	return acc
}

// Amplitude returns |field| at p.
func (c *Calculator) Amplitude(p core.Vec3) core.Float {
	return cmplx.Abs(c.Complex(p))
}

// Intensity returns |field|² at p.
func (c *Calculator) Intensity(p core.Vec3) core.Float {
	v := c.Complex(p)
	return real(v)*real(v) + imag(v)*imag(v)
}

// ComplexField evaluates the complex field at every point of ps.
func (c *Calculator) ComplexField(ps []core.Vec3) []complex128 {
	out := make([]complex128, len(ps))
	for i, p := range ps {
		out[i] = c.Complex(p)
	}
	return out
}

// AmplitudeField evaluates |field| at every point of ps.
func (c *Calculator) AmplitudeField(ps []core.Vec3) []core.Float {
	out := make([]core.Float, len(ps))
	for i, p := range ps {
		out[i] = c.Amplitude(p)
	}
	return out
}

// IntensityField evaluates |field|² at every point of ps.
func (c *Calculator) IntensityField(ps []core.Vec3) []core.Float {
	out := make([]core.Float, len(ps))
	for i, p := range ps {
		out[i] = c.Intensity(p)
	}
	return out
}
