package optimizer

import (
	"golang.org/x/exp/rand"

	"github.com/shinolab/greedy-holographic-reconstruction/core"
)

// Option adjusts cross-cutting optimizer behavior at construction time.
type Option func(*options)

// options holds the cross-cutting knobs shared by the algorithms.
type options struct {
	seed *uint64
	hook func(iter int, fx core.Float)
}

// WithSeed pins the per-call random source to a fixed seed, making the
// randomized optimizers (GreedyBruteForce with randomize, Horn, LM)
// bit-deterministic across calls. Without it, each Optimize call draws
// a fresh seed from the global generator.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		s := seed
		o.seed = &s
	}
}

// WithIterationHook registers fn on the iterative optimizers (LM, GD).
// It is invoked once with the initial objective value, then after every
// accepted step, with the iteration index and the current objective.
// The other algorithms ignore the hook.
func WithIterationHook(fn func(iter int, fx core.Float)) Option {
	return func(o *options) {
		o.hook = fn
	}
}

// newOptions folds opts into their default state.
func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// rng returns a fresh source for one Optimize call: deterministic when
// a seed was pinned, drawn from the global generator otherwise.
func (o *options) rng() *rand.Rand {
	if o.seed != nil {
		return rand.New(rand.NewSource(*o.seed))
	}
	return rand.New(rand.NewSource(rand.Uint64()))
}

// observing reports whether an iteration hook is registered.
func (o *options) observing() bool {
	return o.hook != nil
}

// iter invokes the iteration hook when one is registered.
func (o *options) iter(k int, fx core.Float) {
	if o.hook != nil {
		o.hook(k, fx)
	}
}
