// Package field evaluates the superposed wave field of an emitter
// array at arbitrary observation points.
//
// What
//
//   - Calculator — owns a snapshot of the emitter array and a wave
//     number, and produces the complex field, its amplitude |p|, or its
//     intensity |p|² at single points or point slices.
//   - WithAccurateSum — orders the per-source contributions by magnitude
//     (smallest first) before summing, trading speed for reduced
//     cancellation error on large arrays.
//   - WithTransferTable — routes per-source transfer evaluations through
//     a core.TransferTable cache.
//
// Why
//
//	The optimizers write drives; this package is how their output is
//	verified. The field at p is the plain superposition
//
//	    field(p) = Σⱼ qⱼ · g(posⱼ, p)
//
//	with g the core transfer function.
//
// Determinism
//
//	Evaluation is a pure function of the snapshot; AddEmitters copies
//	its input, so later mutation of the caller's slice does not alter
//	results.
package field
