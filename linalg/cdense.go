package linalg

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// Adjoint materializes the conjugate transpose of a.
func Adjoint(a mat.CMatrix) *mat.CDense {
	r, c := a.Dims()
	h := mat.NewCDense(c, r, nil)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			h.Set(j, i, cmplx.Conj(a.At(i, j)))
		}
	}
	return h
}

// MulVec returns the matrix-vector product a·x. The length of x must
// equal the column count of a.
func MulVec(a mat.CMatrix, x []complex128) []complex128 {
	m, n := a.Dims()
	if len(x) != n {
		panic("linalg: dimension mismatch in MulVec")
	}
	y := make([]complex128, m)
	for i := 0; i < m; i++ {
		var s complex128
		for j := 0; j < n; j++ {
			s += a.At(i, j) * x[j]
		}
		y[i] = s
	}
	return y
}
