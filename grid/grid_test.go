package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		shape Shape
		h     float64
		err   error
	}{
		{"ZeroM", Shape{0, 5}, 0.1, ErrBadShape},
		{"ZeroN", Shape{5, 0}, 0.1, ErrBadShape},
		{"NegativeStep", Shape{5, 5}, -1, ErrBadStep},
		{"ZeroStep", Shape{5, 5}, 0, ErrBadStep},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.shape, tc.h)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestIndexCoordinateRoundTrip(t *testing.T) {
	g, err := New(Shape{5, 7}, 1.0)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		for j := 0; j < 7; j++ {
			c := Coord{I: i, J: j}
			l := g.Index(c)
			assert.Equal(t, c, g.Coordinate(l))
		}
	}
}

func TestNeighbourOffsetsAreRelative(t *testing.T) {
	g, err := New(Shape{5, 5}, 0.5)
	require.NoError(t, err)
	// The centre node plus a neighbour offset must land on the coordinate
	// the base offset table describes.
	centre := Coord{I: 2, J: 2}
	l := g.Index(centre)
	for i, off := range g.NB {
		got := g.Coordinate(l + g.NBLinear[i])
		want := Coord{I: centre.I + off.I, J: centre.J + off.J}
		assert.Equal(t, want, got, "NB[%d]", i)
	}
	assert.Equal(t, g.NBLinear[0], g.NBLinear[8], "NB[8] must repeat NB[0] for modular access")
}

func TestInBounds(t *testing.T) {
	g, err := New(Shape{3, 2}, 1.0)
	require.NoError(t, err)
	valid := []Coord{{0, 0}, {2, 1}, {1, 1}}
	for _, c := range valid {
		assert.True(t, g.InBounds(c), "InBounds(%v)", c)
	}
	invalid := []Coord{{-1, 0}, {3, 1}, {1, 2}}
	for _, c := range invalid {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
	}
}

func TestPosition(t *testing.T) {
	g, err := New(Shape{5, 5}, 0.25)
	require.NoError(t, err)
	l := g.Index(Coord{I: 3, J: 4})
	x, y := g.Position(l)
	assert.Equal(t, 0.75, x)
	assert.Equal(t, 1.0, y)
}
