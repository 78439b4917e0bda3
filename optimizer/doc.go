// Package optimizer solves the inverse problem of multi-point
// holographic reconstruction: choose N complex drives so the field the
// array induces matches M target magnitudes at M focal positions.
//
// What
//
// Six algorithms behind one capability:
//
//   - GreedyBruteForce (GBS) — greedy sweep over a discrete
//     amplitude × phase grid, scored by the L1 field residual.
//   - Horn (SDP) — semidefinite relaxation with random coordinate
//     updates and a rank-1 recovery via the dominant eigenvector.
//   - Long (LSS) — per-focus phases from the dominant eigenvector of a
//     reduced operator, then a row-regularized least-squares solve.
//   - LM — Levenberg–Marquardt on the nonlinear phase residual with
//     exact derivatives.
//   - GSPAT — Gerchberg–Saxton fixed-point iteration with the GS-PAT
//     analytic acceleration step.
//   - GD — fixed-step gradient descent on the LM objective.
//
// Shared contract
//
// Construct an optimizer, feed it targets, run it against the array:
//
//	opt := optimizer.NewLong(optimizer.DefaultGamma)
//	opt.SetTargetFoci(foci) // copies M positions
//	opt.SetTargetAmps(amps) // copies M magnitudes, aᵢ ≥ 0
//	err := opt.Optimize(emitters)
//
// Post-conditions every algorithm honors:
//
//   - |Q| ≤ 1 for every emitter after a successful Optimize.
//   - Optimize never resizes the slice and never touches Pos.
//   - M = 0 is a no-op: the call succeeds and the array is untouched.
//   - Mismatched focus/amplitude lengths return ErrTargetMismatch; an
//     empty emitter slice with targets present returns ErrNoEmitters.
//   - Backend decomposition failures propagate as *linalg.Failure; the
//     array may then be partially written and must be discarded.
//
// Determinism
//
// Long, GSPAT, GD, and GreedyBruteForce without randomization are
// bit-stable across runs given identical inputs. Horn, LM, and
// randomized GreedyBruteForce draw from a per-call source: pass
// WithSeed to pin it, after which they are bit-stable too.
//
// Concurrency
//
// One Optimize call runs on one goroutine; an optimizer instance must
// not be driven from two goroutines at once. Distinct instances over
// disjoint emitter slices may run concurrently. There is no
// cancellation inside a call — bound wall time by bounding the
// iteration counts.
package optimizer
