// Package ghr computes transducer drive signals for multi-point
// holographic reconstruction of harmonic scalar wave fields.
//
// 🎯 What is greedy-holographic-reconstruction?
//
//	A library that answers one inverse problem: given N point emitters at
//	fixed positions and M focal targets (position + desired pressure
//	magnitude), choose the N complex drives so the superposed field
//	matches the targets. The canonical application is an ultrasound
//	phased array forming multiple acoustic foci, but the radiator model
//	is any monochromatic omnidirectional point source.
//
// ✨ What you get
//
//   - Six interchangeable optimizers behind one small interface:
//     greedy brute-force (GBS), semidefinite relaxation (Horn),
//     eigenvector + regularized least-squares (Long), Levenberg–Marquardt
//     (LM), Gerchberg–Saxton with acceleration (GSPAT), and plain
//     gradient descent (GD).
//   - A shared post-condition across all of them: every produced drive
//     satisfies |q| ≤ 1, positions are never touched, and the non-random
//     parts are bit-deterministic.
//   - A field calculator for verifying the reconstruction at arbitrary
//     observation points.
//
// Everything is organized under four subpackages:
//
//	core/      — scalars, 3-vectors, emitters, wave constants, transfer function
//	linalg/    — complex dense eigen/solve/pseudo-inverse helpers on gonum
//	field/     — field evaluation (complex, amplitude, intensity)
//	optimizer/ — the Optimizer interface and the six algorithms
//
// Quick sketch:
//
//	emitters := ...                  // N emitters on a grid, drives zero
//	opt := optimizer.NewGSPAT(100)   // pick an algorithm
//	opt.SetTargetFoci(foci)          // M focal positions
//	opt.SetTargetAmps(amps)          // M desired magnitudes
//	err := opt.Optimize(emitters)    // emitters now carry the drives
//
// See each subpackage's doc.go for the algorithm-level contracts.
package ghr
