package linalg

import "gonum.org/v1/gonum/mat"

// TikhonovPinv returns the Tikhonov-regularized pseudo-inverse of g: in
// SVD terms V·diag(σᵢ/(σᵢ²+α²))·U*, the n×m matrix that maps field
// targets back to drives with the small singular values damped by α.
//
// The computation uses the normal-equation identities
//
//	pinv = G*·(G·G* + α²I)⁻¹   (m ≤ n)
//	pinv = (G*·G + α²I)⁻¹·G*   (m > n)
//
// which are algebraically identical to the SVD form and reduce to a
// Hermitian positive-definite solve on the smaller Gramian. With α > 0
// the Gramian is strictly positive definite; α = 0 survives through the
// least-squares fallback of SolveHermMat.
func TikhonovPinv(g *mat.CDense, alpha float64) (*mat.CDense, error) {
	m, n := g.Dims()
	a2 := complex(alpha*alpha, 0)

	if m <= n {
		var gram mat.CDense
		gram.Mul(g, g.H())
		addDiag(&gram, a2)
		w, err := SolveHermMat(&gram, g) // w = (GG*+α²I)⁻¹·G
		if err != nil {
			return nil, err
		}
		return Adjoint(w), nil
	}

	gh := Adjoint(g)
	var gram mat.CDense
	gram.Mul(gh, g)
	addDiag(&gram, a2)
	return SolveHermMat(&gram, gh)
}

// addDiag adds v to every diagonal entry of a.
func addDiag(a *mat.CDense, v complex128) {
	n, _ := a.Dims()
	for i := 0; i < n; i++ {
		a.Set(i, i, a.At(i, i)+v)
	}
}
