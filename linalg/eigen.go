package linalg

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// DominantEigHerm returns the eigenpair of the Hermitian matrix a whose
// eigenvalue has the largest squared magnitude. The eigenvector is
// returned with unit 2-norm.
//
// The decomposition runs on the symmetric real embedding of a; a real
// eigenvector [x; y] of the embedding maps back to the complex
// eigenvector x + i·y, and this map is injective for Hermitian inputs.
func DominantEigHerm(a *mat.CDense) (float64, []complex128, error) {
	n, _ := a.Dims()
	var es mat.EigenSym
	if ok := es.Factorize(symEmbed(a), true); !ok {
		return 0, nil, fail("eigh", n)
	}
	// Eigenvalues come back in ascending order, so the largest squared
	// magnitude sits at one of the two ends.
	vals := es.Values(nil)
	idx := 0
	if last := len(vals) - 1; vals[last]*vals[last] >= vals[0]*vals[0] {
		idx = last
	}
	var vecs mat.Dense
	es.VectorsTo(&vecs)
	z := make([]complex128, n)
	for i := 0; i < n; i++ {
		z[i] = complex(vecs.At(i, idx), vecs.At(n+i, idx))
	}
	return vals[idx], z, nil
}

// DominantEig returns the eigenpair of an arbitrary complex matrix a
// whose eigenvalue has the largest squared magnitude. The eigenvector
// is returned with unit 2-norm.
//
// The decomposition runs on the real embedding of a, whose spectrum is
// the union of spec(a) and its conjugate. An embedding eigenvector
// w = [w₁; w₂] at an eigenvalue of a projects onto the complex
// eigenvector w₁ + i·w₂; when w belongs entirely to the conjugate part
// that projection vanishes and the conjugate pairing is used instead.
func DominantEig(a *mat.CDense) (complex128, []complex128, error) {
	n, _ := a.Dims()
	var eig mat.Eigen
	if ok := eig.Factorize(denseEmbed(a), mat.EigenRight); !ok {
		return 0, nil, fail("eig", n)
	}
	vals := eig.Values(nil)
	idx, best := 0, math.Inf(-1)
	for i, v := range vals {
		if m := real(v)*real(v) + imag(v)*imag(v); m > best {
			best, idx = m, i
		}
	}
	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	val := vals[idx]
	z := make([]complex128, n)
	for i := 0; i < n; i++ {
		z[i] = vecs.At(i, idx) + 1i*vecs.At(n+i, idx)
	}
	if vecNorm(z) <= 1e-8 {
		// The conjugate pairing is an eigenvector of a at conj(val).
		val = cmplx.Conj(val)
		for i := 0; i < n; i++ {
			z[i] = cmplx.Conj(vecs.At(i, idx)) + 1i*cmplx.Conj(vecs.At(n+i, idx))
		}
	}
	nrm := vecNorm(z)
	if nrm == 0 {
		return 0, nil, fail("eig", n)
	}
	inv := complex(1/nrm, 0)
	for i := range z {
		z[i] *= inv
	}
	return val, z, nil
}

// vecNorm returns the 2-norm of z.
func vecNorm(z []complex128) float64 {
	var s float64
	for _, v := range z {
		s += real(v)*real(v) + imag(v)*imag(v)
	}
	return math.Sqrt(s)
}
