// Package core provides the fundamental types and the physical model
// shared by every other package in the module: the working precision,
// 3-D positions, emitters, wave constants, and the transfer function of
// a monochromatic omnidirectional point source.
//
// What
//
//   - Float — the working precision (float64); complex quantities are
//     complex128. Every public API in the module uses these uniformly.
//   - Vec3 — a position in 3-D space (alias of gonum's r3.Vec, so
//     positions interoperate with the gonum ecosystem directly).
//   - Emitter — a point radiator {Pos, Q}: the complex drive Q carries
//     both amplitude |Q| and phase arg Q. Amp/Phase/SetAmpPhase expose
//     the legacy split view.
//   - Transfer — g(s, t) = (1/r)·exp(i·k·r) with r = ‖t−s‖ and
//     k = WaveNumber: the complex amplitude at t of a unit drive at s.
//   - TransferTable — an optional read-only memo of the transfer
//     function indexed by squared distance quantized to a fixed step.
//     A process-wide table is published at most once via
//     InitDefaultTable; correctness never depends on it.
//
// Physical constants
//
//	WaveLength = 8.5 in the same length unit as positions, and
//	WaveNumber = 2π/WaveLength. Both are compile-time; changing the
//	wavelength requires a rebuild.
//
// Determinism
//
//	Everything here is a pure function of its inputs. The default
//	transfer table is immutable after its one-time publication.
package core
