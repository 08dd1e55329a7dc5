package cubic

// Eval evaluates the cubic at λ by Horner's method.
func (c Cubic) Eval(lam float64) float64 {
	a := c.A
	return a[0] + lam*(a[1]+lam*(a[2]+lam*a[3]))
}

// Deriv evaluates dc/dλ at λ.
func (c Cubic) Deriv(lam float64) float64 {
	a := c.A
	return a[1] + lam*(2*a[2]+3*lam*a[3])
}

// Fit recovers the bicubic coefficient matrix A from a 4×4 corner datum
// via the tensor-Hermite transfer A = V⁻¹·D·(V⁻¹)ᵀ.
//
// A naive port applies V⁻¹ a second time on the right instead of its
// transpose, which contracts on the wrong index; that is only correct
// when V⁻¹ is symmetric, and it is not. Fit computes the mathematically
// correct tensor product instead.
func Fit(d Datum) Bicubic {
	D := newMat4([4][4]float64(d))
	tmp := vInv.mul(D)
	A := tmp.mul(vInv.transpose())
	return Bicubic{A: A.toArray()}
}

// Eval evaluates p(λ, μ) = Σ A[α][β] λ^α μ^β.
func (b Bicubic) Eval(lam, mu float64) float64 {
	var sum float64
	// Horner in μ for each power of λ, then Horner in λ.
	for alpha := 3; alpha >= 0; alpha-- {
		row := b.A[alpha]
		rowVal := row[0] + mu*(row[1]+mu*(row[2]+mu*row[3]))
		sum = sum*lam + rowVal
	}
	return sum
}

// Restrict returns the cubic obtained by freezing the other variable at
// edge 0, or by summing across it for edge 1 (the value at the far
// edge of the cell).
func (b Bicubic) Restrict(v Variable, edge int) Cubic {
	var out Cubic
	switch v {
	case Lambda:
		for alpha := 0; alpha < 4; alpha++ {
			if edge == 0 {
				out.A[alpha] = b.A[alpha][0]
			} else {
				for beta := 0; beta < 4; beta++ {
					out.A[alpha] += b.A[alpha][beta]
				}
			}
		}
	case Mu:
		for beta := 0; beta < 4; beta++ {
			if edge == 0 {
				out.A[beta] = b.A[0][beta]
			} else {
				for alpha := 0; alpha < 4; alpha++ {
					out.A[beta] += b.A[alpha][beta]
				}
			}
		}
	}
	return out
}
