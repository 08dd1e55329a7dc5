package slowness

import "gonum.org/v1/gonum/diff/fd"

// constantField is s(x,y) = c for every point.
type constantField struct{ c float64 }

// Constant returns a Field of uniform slowness c, as used by scenario
// S1 (a circular wavefront expanding at unit speed).
func Constant(c float64) Field {
	return constantField{c: c}
}

func (f constantField) Value(x, y float64) float64 { return f.c }

func (f constantField) Gradient(x, y float64) (dx, dy float64) { return 0, 0 }

// linearField is s(x,y) = a + bx*x + by*y.
type linearField struct {
	a, bx, by float64
}

// Linear returns a Field affine in x and y, s(x,y) = a + bx*x + by*y.
func Linear(a, bx, by float64) Field {
	return linearField{a: a, bx: bx, by: by}
}

func (f linearField) Value(x, y float64) float64 {
	return f.a + f.bx*x + f.by*y
}

func (f linearField) Gradient(x, y float64) (dx, dy float64) {
	return f.bx, f.by
}

// numericField wraps a value-only function, estimating its gradient by
// central finite differences via gonum.org/v1/gonum/diff/fd.
type numericField struct {
	value func(x, y float64) float64
}

// NumericGradient adapts value into a Field, estimating its gradient
// with a central-difference stencil. Use this for slowness functions
// with no convenient closed-form derivative -- tomography-derived
// velocity models, for instance.
func NumericGradient(value func(x, y float64) float64) Field {
	return numericField{value: value}
}

func (f numericField) Value(x, y float64) float64 {
	return f.value(x, y)
}

func (f numericField) Gradient(x, y float64) (dx, dy float64) {
	g := fd.Gradient(nil, func(p []float64) float64 {
		return f.value(p[0], p[1])
	}, []float64{x, y}, &fd.Settings{Formula: fd.Central})
	return g[0], g[1]
}
