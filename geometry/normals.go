package geometry

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/threadmesh/meshcore/kernel"
)

// UndefinedNormals returns a flat normal array with every entry set to
// the undefined sentinel (NaN).
func UndefinedNormals(nNodes int) (normals []float64) {
	normals = make([]float64, 3*nNodes)
	for i := range normals {
		normals[i] = math.NaN()
	}
	return
}

// HasNormal reports whether node i carries a defined normal.
func HasNormal(normals []float64, i int) bool {
	return !math.IsNaN(normals[3*i])
}

// KernelNormals evaluates surface normals through the kernel's
// parametric surface evaluation, one surface entity at a time. A node
// classified Surface belongs to exactly one entity's interior (boundary
// nodes are reclassified Edge or Corner), so normals are written
// directly, never averaged across entities.
//
// A failed evaluation marks that entity's patch degenerate: its nodes
// keep the undefined sentinel, the skip is counted, and processing
// continues with the remaining entities.
func KernelNormals(k kernel.Kernel, tr *TagIndexResolver, nNodes int) (normals []float64, degenerate int, err error) {
	normals = UndefinedNormals(nNodes)
	for _, ent := range k.Entities(2) {
		tags, _, params, nerr := k.NodesOf(2, ent.Tag)
		if nerr != nil {
			err = fmt.Errorf("surface entity %d: %w", ent.Tag, nerr)
			return
		}
		if len(tags) == 0 {
			continue
		}
		nrm, eerr := k.EvaluateNormals(ent.Tag, params)
		if eerr != nil || len(nrm) != 3*len(tags) {
			degenerate++
			continue
		}
		for i, tag := range tags {
			idx := tr.Lookup(tag)
			if idx == UnknownIndex {
				continue
			}
			copy(normals[3*idx:3*idx+3], nrm[3*i:3*i+3])
		}
	}
	return
}

// SoupNormals computes per-vertex normals for a topology-less triangle
// soup. Each triangle contributes its edge cross product - magnitude
// proportional to area, an intentional area weighting - to its three
// vertices' running sums, which are then normalized to unit length. A
// vertex whose accumulated magnitude is zero (isolated, or mutually
// cancelling faces) keeps the zero vector rather than dividing by zero.
//
// tris holds flat zero-based vertex indices, three per triangle.
func SoupNormals(coords []float64, tris []int64) (normals []float64) {
	normals = make([]float64, len(coords))
	for t := 0; t+2 < len(tris); t += 3 {
		var (
			a = 3 * tris[t]
			b = 3 * tris[t+1]
			c = 3 * tris[t+2]
		)
		e1x, e1y, e1z := coords[b]-coords[a], coords[b+1]-coords[a+1], coords[b+2]-coords[a+2]
		e2x, e2y, e2z := coords[c]-coords[a], coords[c+1]-coords[a+1], coords[c+2]-coords[a+2]
		fx := e1y*e2z - e1z*e2y
		fy := e1z*e2x - e1x*e2z
		fz := e1x*e2y - e1y*e2x
		for _, v := range [3]int64{a, b, c} {
			normals[v] += fx
			normals[v+1] += fy
			normals[v+2] += fz
		}
	}
	for i := 0; i < len(normals); i += 3 {
		v := normals[i : i+3]
		if mag := floats.Norm(v, 2); mag > 0 {
			floats.Scale(1/mag, v)
		}
	}
	return
}
