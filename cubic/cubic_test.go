package cubic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCubicEvalDeriv(t *testing.T) {
	c := Cubic{A: [4]float64{1, 2, 3, 4}}
	// p(λ) = 1 + 2λ + 3λ² + 4λ³; p'(λ) = 2 + 6λ + 12λ².
	for _, lam := range []float64{0, 0.25, 0.5, 1, 2} {
		want := 1 + 2*lam + 3*lam*lam + 4*lam*lam*lam
		assert.InDelta(t, want, c.Eval(lam), 1e-12, "Eval(%v)", lam)
		wantD := 2 + 6*lam + 12*lam*lam
		assert.InDelta(t, wantD, c.Deriv(lam), 1e-12, "Deriv(%v)", lam)
	}
}

// evalJet independently evaluates f, fx, fy, fxy of the bicubic A at
// (lam, mu), by direct term-by-term differentiation -- deliberately not
// sharing code with Bicubic.Eval/Fit, so it can serve as ground truth.
func evalJet(A [4][4]float64, lam, mu float64) (f, fx, fy, fxy float64) {
	for alpha := 0; alpha < 4; alpha++ {
		for beta := 0; beta < 4; beta++ {
			coef := A[alpha][beta]
			f += coef * math.Pow(lam, float64(alpha)) * math.Pow(mu, float64(beta))
			if alpha >= 1 {
				fx += coef * float64(alpha) * math.Pow(lam, float64(alpha-1)) * math.Pow(mu, float64(beta))
			}
			if beta >= 1 {
				fy += coef * float64(beta) * math.Pow(lam, float64(alpha)) * math.Pow(mu, float64(beta-1))
			}
			if alpha >= 1 && beta >= 1 {
				fxy += coef * float64(alpha*beta) * math.Pow(lam, float64(alpha-1)) * math.Pow(mu, float64(beta-1))
			}
		}
	}
	return f, fx, fy, fxy
}

// corners in (0,0),(1,0),(0,1),(1,1) order, matching the cell-vertex
// offset convention used throughout the grid package.
var corners = [4][2]float64{{0, 0}, {1, 0}, {0, 1}, {1, 1}}

// datumFrom builds the corner datum Fit expects directly from corner
// jets, mirroring the original reference's data[4][4] construction.
func datumFrom(A [4][4]float64) Datum {
	f := make([]float64, 4)
	fx := make([]float64, 4)
	fy := make([]float64, 4)
	fxy := make([]float64, 4)
	for k, c := range corners {
		f[k], fx[k], fy[k], fxy[k] = evalJet(A, c[0], c[1])
	}
	var d Datum
	d[0] = [4]float64{f[0], f[2], fy[0], fy[2]}
	d[1] = [4]float64{f[1], f[3], fy[1], fy[3]}
	d[2] = [4]float64{fx[0], fx[2], fxy[0], fxy[2]}
	d[3] = [4]float64{fx[1], fx[3], fxy[1], fxy[3]}
	return d
}

// TestFitRecoversKnownPolynomial builds jets from a known bicubic,
// refits, and verifies the recovered A equals the original closely.
func TestFitRecoversKnownPolynomial(t *testing.T) {
	want := [4][4]float64{
		{1, 2, -1, 0.5},
		{0.3, -2, 1, 0},
		{4, 0, 0.2, -0.7},
		{-1, 1, 1, 1},
	}
	got := Fit(datumFrom(want)).A
	for alpha := 0; alpha < 4; alpha++ {
		for beta := 0; beta < 4; beta++ {
			assert.InDelta(t, want[alpha][beta], got[alpha][beta], 1e-10, "A[%d][%d]", alpha, beta)
		}
	}
}

// TestFitReproducesCornerJets checks that a refit cell evaluated at its
// four corners reproduces the corner jets (f, fx, fy, fxy).
func TestFitReproducesCornerJets(t *testing.T) {
	A := [4][4]float64{
		{0, 1, 2, 0}, {1, -1, 0, 1}, {0.5, 0, -1, 2}, {1, 1, 1, -1},
	}
	b := Fit(datumFrom(A))
	for _, c := range corners {
		wantF, wantFx, wantFy, wantFxy := evalJet(A, c[0], c[1])
		assert.InDelta(t, wantF, b.Eval(c[0], c[1]), 1e-10, "Eval%v", c)
		_, gotFx, gotFy, gotFxy := evalJet(b.A, c[0], c[1])
		assert.InDelta(t, wantFx, gotFx, 1e-10, "fx%v", c)
		assert.InDelta(t, wantFy, gotFy, 1e-10, "fy%v", c)
		assert.InDelta(t, wantFxy, gotFxy, 1e-10, "fxy%v", c)
	}
}

// TestRestrictRoundTrip checks that restrict(fit(D), LAMBDA, 0)
// evaluated at {0,1} returns f at corners (0,0) and (1,0): λ is the
// free variable and μ is held at 0.
func TestRestrictRoundTrip(t *testing.T) {
	A := [4][4]float64{
		{2, 1, 0, 0}, {0, 1, 1, 0}, {1, 0, 1, 1}, {0, 0, 0, 1},
	}
	b := Fit(datumFrom(A))
	edge0 := b.Restrict(Lambda, 0)
	f00, _, _, _ := evalJet(A, 0, 0)
	f10, _, _, _ := evalJet(A, 1, 0)
	assert.InDelta(t, f00, edge0.Eval(0), 1e-10, "Restrict(Lambda,0).Eval(0)")
	assert.InDelta(t, f10, edge0.Eval(1), 1e-10, "Restrict(Lambda,0).Eval(1)")
}
