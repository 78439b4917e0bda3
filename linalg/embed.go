package linalg

import "gonum.org/v1/gonum/mat"

// symEmbed maps a Hermitian n×n matrix H = A + iB onto its real
// symmetric 2n×2n embedding [[A, −B], [B, A]]. Only the upper triangle
// of h is read, so rounding-level Hermitian asymmetry in the input is
// squashed rather than propagated.
func symEmbed(h *mat.CDense) *mat.SymDense {
	n, _ := h.Dims()
	s := mat.NewSymDense(2*n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			c := h.At(i, j)
			a, b := real(c), imag(c)
			if i == j {
				b = 0 // Hermitian diagonal is real
			}
			s.SetSym(i, j, a)
			s.SetSym(n+i, n+j, a)
			s.SetSym(i, n+j, -b)
			if i != j {
				s.SetSym(j, n+i, b)
			}
		}
	}
	return s
}

// denseEmbed maps an arbitrary m×n complex matrix onto its real
// 2m×2n embedding [[A, −B], [B, A]].
func denseEmbed(c *mat.CDense) *mat.Dense {
	m, n := c.Dims()
	d := mat.NewDense(2*m, 2*n, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			v := c.At(i, j)
			a, b := real(v), imag(v)
			d.Set(i, j, a)
			d.Set(m+i, n+j, a)
			d.Set(i, n+j, -b)
			d.Set(m+i, j, b)
		}
	}
	return d
}

// stackEmbed maps a complex m×k right-hand side onto the stacked real
// form [Re; Im] of shape 2m×k.
func stackEmbed(c *mat.CDense) *mat.Dense {
	m, k := c.Dims()
	d := mat.NewDense(2*m, k, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < k; j++ {
			v := c.At(i, j)
			d.Set(i, j, real(v))
			d.Set(m+i, j, imag(v))
		}
	}
	return d
}

// stackUnembed reads the complex solution z = x + i·y back from its
// stacked real halves of shape 2n×k.
func stackUnembed(d *mat.Dense) *mat.CDense {
	r, k := d.Dims()
	n := r / 2
	c := mat.NewCDense(n, k, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			c.Set(i, j, complex(d.At(i, j), d.At(n+i, j)))
		}
	}
	return c
}
