package cubic

// vInv is the fixed Hermite transfer matrix, a compile-time constant
// never mutated at runtime: V⁻¹ = [[1,0,0,0],[0,0,1,0],[-3,3,-2,-1],[2,-2,1,1]].
var vInv = newMat4([4][4]float64{
	{1, 0, 0, 0},
	{0, 0, 1, 0},
	{-3, 3, -2, -1},
	{2, -2, 1, 1},
})

// Cubic is a single-variable cubic polynomial a0 + a1·λ + a2·λ² + a3·λ³.
type Cubic struct {
	A [4]float64
}

// Bicubic is a degree-(3,3) Hermite polynomial over [0,1]²:
// p(λ, μ) = Σ A[α][β] λ^α μ^β.
type Bicubic struct {
	A [4][4]float64
}

// Variable selects which bicubic parameter a restricted cubic varies in:
// Lambda (the cell's first local coordinate) or Mu (the second). The
// other parameter is the one held at the chosen edge.
type Variable int

const (
	// Lambda restricts along the cell's first local coordinate.
	Lambda Variable = iota
	// Mu restricts along the cell's second local coordinate.
	Mu
)

// Datum is the 4×4 corner datum Fit consumes. Row and column each
// encode a (derivative order, position) pair along one axis: row
// 2a+i is the a-th λ-derivative (a ∈ {0,1}) at corner-index i ∈ {0,1},
// and column 2b+j is the b-th μ-derivative at corner-index j ∈ {0,1}.
// So Datum[2a+i][2b+j] = ∂ᵃ/∂λᵃ ∂ᵇ/∂μᵇ f evaluated at corner (i,j):
//
//	Datum[0][0]=f(0,0)   Datum[0][1]=f(0,1)   Datum[0][2]=fy(0,0)  Datum[0][3]=fy(0,1)
//	Datum[1][0]=f(1,0)   Datum[1][1]=f(1,1)   Datum[1][2]=fy(1,0)  Datum[1][3]=fy(1,1)
//	Datum[2][0]=fx(0,0)  Datum[2][1]=fx(0,1)  Datum[2][2]=fxy(0,0) Datum[2][3]=fxy(0,1)
//	Datum[3][0]=fx(1,0)  Datum[3][1]=fx(1,1)  Datum[3][2]=fxy(1,0) Datum[3][3]=fxy(1,1)
type Datum [4][4]float64
