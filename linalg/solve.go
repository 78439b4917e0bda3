package linalg

import "gonum.org/v1/gonum/mat"

// SolveHermMat solves a·X = B for a Hermitian positive-definite a and a
// complex right-hand side B with any number of columns. The solve is a
// Cholesky factorization of the symmetric real embedding; when the
// factorization reports non-positive pivots (a only semi-definite from
// rounding), a dense least-squares solve on the embedding takes over.
// Returns *Failure{"solveh", n} when both paths fail.
func SolveHermMat(a, b *mat.CDense) (*mat.CDense, error) {
	n, _ := a.Dims()
	sym := symEmbed(a)
	rhs := stackEmbed(b)

	var sol mat.Dense
	var ch mat.Cholesky
	if ch.Factorize(sym) {
		if err := ch.SolveTo(&sol, rhs); err == nil {
			return stackUnembed(&sol), nil
		}
	}
	if err := sol.Solve(sym, rhs); err != nil {
		return nil, fail("solveh", n)
	}
	return stackUnembed(&sol), nil
}

// SolveHerm solves a·x = b for a single complex right-hand side.
func SolveHerm(a *mat.CDense, b []complex128) ([]complex128, error) {
	n := len(b)
	rhs := mat.NewCDense(n, 1, nil)
	for i, v := range b {
		rhs.Set(i, 0, v)
	}
	x, err := SolveHermMat(a, rhs)
	if err != nil {
		return nil, err
	}
	out := make([]complex128, n)
	for i := range out {
		out[i] = x.At(i, 0)
	}
	return out, nil
}

// SolveSymPD solves the real symmetric positive-definite system
// a·x = b, with the same Cholesky-then-least-squares strategy as
// SolveHermMat. Returns *Failure{"solve", n} when both paths fail.
func SolveSymPD(a *mat.SymDense, b []float64) ([]float64, error) {
	n := len(b)
	bv := mat.NewVecDense(n, b)

	var ch mat.Cholesky
	if ch.Factorize(a) {
		var x mat.VecDense
		if err := ch.SolveVecTo(&x, bv); err == nil {
			out := make([]float64, n)
			for i := range out {
				out[i] = x.AtVec(i)
			}
			return out, nil
		}
	}
	var xd mat.Dense
	if err := xd.Solve(a, bv); err != nil {
		return nil, fail("solve", n)
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = xd.At(i, 0)
	}
	return out, nil
}
