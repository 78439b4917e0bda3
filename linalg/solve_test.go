package linalg_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/shinolab/greedy-holographic-reconstruction/linalg"
)

// hermPD builds the Hermitian positive-definite matrix A·A* + I for a
// fixed complex seed matrix.
func hermPD() *mat.CDense {
	seed := mat.NewCDense(3, 3, []complex128{
		1 + 2i, 0.5, -1i,
		2 - 1i, 3, 0.25 + 0.75i,
		0, 1 + 1i, -2,
	})
	var h mat.CDense
	h.Mul(seed, seed.H())
	for i := 0; i < 3; i++ {
		h.Set(i, i, h.At(i, i)+1)
	}
	return &h
}

// TestSolveHerm_Residual verifies H·x = b on a well-conditioned
// Hermitian PD system.
func TestSolveHerm_Residual(t *testing.T) {
	h := hermPD()
	b := []complex128{1, -2i, 3 + 1i}

	x, err := linalg.SolveHerm(h, b)
	require.NoError(t, err)

	hx := linalg.MulVec(h, x)
	for i := range b {
		assert.InDelta(t, real(b[i]), real(hx[i]), 1e-9)
		assert.InDelta(t, imag(b[i]), imag(hx[i]), 1e-9)
	}
}

// TestSolveHermMat_MultiRHS verifies the matrix right-hand-side form.
func TestSolveHermMat_MultiRHS(t *testing.T) {
	h := hermPD()
	b := mat.NewCDense(3, 2, []complex128{
		1, 0,
		0, 1i,
		-1, 2,
	})

	x, err := linalg.SolveHermMat(h, b)
	require.NoError(t, err)

	var hx mat.CDense
	hx.Mul(h, x)
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			d := hx.At(i, j) - b.At(i, j)
			assert.Less(t, math.Hypot(real(d), imag(d)), 1e-9)
		}
	}
}

// TestSolveHerm_SingularFailure checks that an unsolvable system
// surfaces as a *Failure with the solve op recorded.
func TestSolveHerm_SingularFailure(t *testing.T) {
	zero := mat.NewCDense(2, 2, nil)

	_, err := linalg.SolveHerm(zero, []complex128{1, 1})
	require.Error(t, err)

	var f *linalg.Failure
	require.True(t, errors.As(err, &f), "error must be a *linalg.Failure")
	assert.Equal(t, "solveh", f.Op)
	assert.Equal(t, 2, f.Dim)
	assert.Contains(t, f.Error(), "solveh")
}

// TestSolveSymPD_Residual verifies the real symmetric solve.
func TestSolveSymPD_Residual(t *testing.T) {
	a := mat.NewSymDense(3, []float64{
		4, 1, 0,
		1, 3, 1,
		0, 1, 2,
	})
	b := []float64{1, 2, 3}

	x, err := linalg.SolveSymPD(a, b)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got := 0.0
		for j := 0; j < 3; j++ {
			got += a.At(i, j) * x[j]
		}
		assert.InDelta(t, b[i], got, 1e-10)
	}
}
