package cubic

import "gonum.org/v1/gonum/mat"

// mat4 is a fixed 4×4 matrix, used only to carry out the Hermite
// transfer-matrix multiply in Fit. It wraps gonum's mat.Dense rather
// than hand-rolling the product/transpose, sized for exactly four rows
// and columns since the bicubic fit never operates on anything else.
type mat4 struct {
	d *mat.Dense
}

// newMat4 builds a mat4 from a [4][4]float64 datum in (row, col) order.
func newMat4(d [4][4]float64) mat4 {
	data := make([]float64, 0, 16)
	for i := 0; i < 4; i++ {
		data = append(data, d[i][:]...)
	}
	return mat4{d: mat.NewDense(4, 4, data)}
}

// at retrieves the element at (row, col).
func (m mat4) at(row, col int) (float64, error) {
	if row < 0 || row >= 4 || col < 0 || col >= 4 {
		return 0, ErrIndexOutOfBounds
	}
	return m.d.At(row, col), nil
}

// transpose returns mᵀ.
func (m mat4) transpose() mat4 {
	var out mat.Dense
	out.CloneFrom(m.d.T())
	return mat4{d: &out}
}

// mul returns m·other.
func (m mat4) mul(other mat4) mat4 {
	var out mat.Dense
	out.Mul(m.d, other.d)
	return mat4{d: &out}
}

// toArray converts back to [4][4]float64 for callers that don't need to
// know about gonum's representation.
func (m mat4) toArray() [4][4]float64 {
	var out [4][4]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m.d.At(i, j)
		}
	}
	return out
}
