package slowness

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstant(t *testing.T) {
	f := Constant(2.5)
	assert.Equal(t, 2.5, f.Value(3, -7))
	dx, dy := f.Gradient(3, -7)
	assert.Equal(t, 0.0, dx)
	assert.Equal(t, 0.0, dy)
}

func TestLinear(t *testing.T) {
	// Scenario S2: s(x,y) = 1 + 0.3x - 0.2y.
	f := Linear(1, 0.3, -0.2)
	cases := []struct {
		x, y, want float64
	}{
		{0, 0, 1},
		{1, 0, 1.3},
		{0, 1, 0.8},
		{2, 3, 1 + 0.6 - 0.6},
	}
	for _, c := range cases {
		assert.InDelta(t, c.want, f.Value(c.x, c.y), 1e-12, "Value(%v,%v)", c.x, c.y)
	}
	dx, dy := f.Gradient(10, 10)
	assert.Equal(t, 0.3, dx)
	assert.Equal(t, -0.2, dy)
}

func TestNumericGradientMatchesAnalytic(t *testing.T) {
	// s(x,y) = 1 + 0.3x - 0.2y, sampled as a plain function so the
	// numeric estimator has no access to the analytic gradient.
	value := func(x, y float64) float64 { return 1 + 0.3*x - 0.2*y }
	f := NumericGradient(value)

	assert.Equal(t, value(2, -1), f.Value(2, -1))
	dx, dy := f.Gradient(2, -1)
	assert.InDelta(t, 0.3, dx, 1e-6)
	assert.InDelta(t, -0.2, dy, 1e-6)
}

func TestNumericGradientNonlinear(t *testing.T) {
	// s(x,y) = x^2 + y^2; ∇s = (2x, 2y).
	f := NumericGradient(func(x, y float64) float64 { return x*x + y*y })
	dx, dy := f.Gradient(1.5, -2.0)
	assert.InDelta(t, 3.0, dx, 1e-5)
	assert.InDelta(t, -4.0, dy, 1e-5)
}
