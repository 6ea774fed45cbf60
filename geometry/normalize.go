package geometry

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

const (
	// ORIGINTOL is the absolute tolerance below which an origin offset is
	// treated as zero and no kernel translation is requested.
	ORIGINTOL = 1.e-12
)

// Offset is the 3-vector added to internal coordinates to recover the
// user's original coordinate system. It is fixed at import time and
// reapplied identically on every regeneration of the same source.
type Offset [3]float64

func (o Offset) IsZero() bool {
	return math.Abs(o[0]) < ORIGINTOL &&
		math.Abs(o[1]) < ORIGINTOL &&
		math.Abs(o[2]) < ORIGINTOL
}

func (o Offset) Neg() Offset {
	return Offset{-o[0], -o[1], -o[2]}
}

// ToUser converts one internal-frame point to user coordinates.
func (o Offset) ToUser(p [3]float64) [3]float64 {
	return [3]float64{p[0] + o[0], p[1] + o[1], p[2] + o[2]}
}

// ToInternal converts one user-frame point to internal coordinates.
func (o Offset) ToInternal(p [3]float64) [3]float64 {
	return [3]float64{p[0] - o[0], p[1] - o[1], p[2] - o[2]}
}

// ToUserCoords converts a flat coordinate array (xyz per node) from the
// internal frame to user coordinates, returning a new array.
func (o Offset) ToUserCoords(internal []float64) (user []float64) {
	user = make([]float64, len(internal))
	for i := 0; i < len(internal); i += 3 {
		user[i] = internal[i] + o[0]
		user[i+1] = internal[i+1] + o[1]
		user[i+2] = internal[i+2] + o[2]
	}
	return
}

// ToInternalCoords converts a flat coordinate array from user to internal
// coordinates, returning a new array.
func (o Offset) ToInternalCoords(user []float64) (internal []float64) {
	internal = make([]float64, len(user))
	for i := 0; i < len(user); i += 3 {
		internal[i] = user[i] - o[0]
		internal[i+1] = user[i+1] - o[1]
		internal[i+2] = user[i+2] - o[2]
	}
	return
}

// Centroid computes the arithmetic mean of a flat point array.
func Centroid(coords []float64) (c Offset, err error) {
	if len(coords) == 0 {
		err = ErrNoPoints
		return
	}
	var (
		n = len(coords) / 3
		x = make([]float64, n)
	)
	for d := 0; d < 3; d++ {
		for i := 0; i < n; i++ {
			x[i] = coords[3*i+d]
		}
		c[d] = floats.Sum(x) / float64(n)
	}
	return
}

// BBoxMidpoint computes the bounding-box midpoint origin used for CAD
// sources.
func BBoxMidpoint(min, max [3]float64) (c Offset) {
	for d := 0; d < 3; d++ {
		c[d] = 0.5 * (min[d] + max[d])
	}
	return
}
