package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetRoundTrip(t *testing.T) {
	o := Offset{12.5, -3.25, 1.e-3}
	points := [][3]float64{
		{0, 0, 0},
		{1.5, -2.5, 3.75},
		{-1.e6, 2.e-8, 42},
	}
	for _, p := range points {
		back := o.ToInternal(o.ToUser(p))
		for d := 0; d < 3; d++ {
			assert.InDelta(t, p[d], back[d], 1.e-9)
		}
		back = o.ToUser(o.ToInternal(p))
		for d := 0; d < 3; d++ {
			assert.InDelta(t, p[d], back[d], 1.e-9)
		}
	}
}

func TestOffsetCoordsRoundTrip(t *testing.T) {
	o := Offset{1, 2, 3}
	user := []float64{0, 0, 0, 4, 5, 6}
	internal := o.ToInternalCoords(user)
	assert.Equal(t, []float64{-1, -2, -3, 3, 3, 3}, internal)
	assert.Equal(t, user, o.ToUserCoords(internal))
}

func TestCentroid(t *testing.T) {
	// Arithmetic mean of the four scenario points
	coords := []float64{
		0, 0, 0,
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
	c, err := Centroid(coords)
	assert.NoError(t, err)
	assert.InDelta(t, 0.25, c[0], 1.e-12)
	assert.InDelta(t, 0.25, c[1], 1.e-12)
	assert.InDelta(t, 0.25, c[2], 1.e-12)

	_, err = Centroid(nil)
	assert.ErrorIs(t, err, ErrNoPoints)
}

func TestBBoxMidpoint(t *testing.T) {
	c := BBoxMidpoint([3]float64{-1, 0, 2}, [3]float64{3, 4, 6})
	assert.Equal(t, Offset{1, 2, 4}, c)
}

func TestOffsetIsZero(t *testing.T) {
	assert.True(t, Offset{}.IsZero())
	assert.True(t, Offset{1.e-13, -1.e-13, 0}.IsZero())
	assert.False(t, Offset{1.e-11, 0, 0}.IsZero())

	neg := Offset{1, -2, 3}.Neg()
	assert.Equal(t, Offset{-1, 2, -3}, neg)
	if !math.Signbit(neg[0]) {
		t.Error("expected negated x to be negative")
	}
}
