// Package linalg provides the dense complex linear-algebra helpers the
// optimizers are built on: conjugate transposition, dominant eigenpairs
// (Hermitian and general), Hermitian positive-definite solves, and the
// Tikhonov-regularized pseudo-inverse.
//
// What
//
//   - Adjoint, MulVec — small complex matrix utilities.
//   - DominantEigHerm / DominantEig — the eigenpair whose eigenvalue has
//     the largest squared magnitude, for Hermitian and for arbitrary
//     complex matrices respectively.
//   - SolveHerm / SolveHermMat — Hermitian positive-definite solves with
//     a dense least-squares fallback when the Cholesky factorization
//     reports non-positive pivots.
//   - SolveSymPD — the real symmetric counterpart.
//   - TikhonovPinv — V·diag(σᵢ/(σᵢ²+α²))·U* without forming an SVD.
//
// How
//
//	Every complex decomposition routes through the standard real
//	embedding Φ(A+iB) = [[A, −B], [B, A]], which is symmetric exactly
//	when the input is Hermitian. Eigenvectors and solutions come back
//	through z = x + i·y from the stacked real halves. The backing
//	decompositions are gonum's mat.EigenSym, mat.Eigen and mat.Cholesky.
//
// Failure
//
//	Backend decomposition failures surface as *Failure{Op, Dim}, a
//	structured error discriminated with errors.As. Numerically benign
//	edge cases (semi-definite solves) resolve through the documented
//	fallbacks instead.
package linalg
