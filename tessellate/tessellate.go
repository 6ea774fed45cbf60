// Package tessellate converts the heterogeneous element batches of a
// MeshState into uniform, render- or solver-ready index buffers. It is
// read-only over the state.
package tessellate

import (
	"errors"
	"fmt"

	"github.com/threadmesh/meshcore/geometry"
)

// ErrNothingToTessellate signals that zero elements survived filtering
// for the requested target, so callers can tell "no geometry" apart from
// a degenerate buffer.
var ErrNothingToTessellate = errors.New("no elements to tessellate for the requested target")

// TriangleBuffer is a contiguous triangle index buffer over the state's
// node arrays, three indices per triangle.
type TriangleBuffer struct {
	Indices []uint32
}

func (tb *TriangleBuffer) NumTriangles() int {
	return len(tb.Indices) / 3
}

// CellBlock is one uniform batch of volume cells with native per-kind
// node ordering, Arity indices per cell.
type CellBlock struct {
	Kind    geometry.ElementKind
	Arity   int
	Indices []uint32
}

func (cb *CellBlock) NumCells() int {
	return len(cb.Indices) / cb.Arity
}

// SurfaceTriangles produces the surface-render buffer. Triangles pass
// through unchanged; quads split along the fixed diagonal from the
// element table, a deliberate shape-independent rule. Within a batch all
// native triangles come first, then all split quads; elements with any
// unresolved node are dropped whole.
func SurfaceTriangles(s *geometry.MeshState) (tb *TriangleBuffer, err error) {
	var (
		tr      = s.Resolver()
		indices []uint32
	)
	// Two passes: all native triangles first, then all split quads. No
	// ordering is guaranteed beyond that.
	for _, native := range [2]bool{true, false} {
		for _, b := range s.Surface {
			spec := geometry.ElementTable[b.Kind]
			if spec.Dim != 2 || spec.TriSplit == nil {
				continue
			}
			if (b.Kind == geometry.Triangle) != native {
				continue
			}
			arity := spec.Arity
		elements:
			for e := 0; e < b.NumElements(); e++ {
				I := tr.Resolve(b.Conn[e*arity : (e+1)*arity])
				if I.Count(geometry.UnknownIndex) > 0 {
					continue elements
				}
				for _, t := range spec.TriSplit {
					indices = append(indices,
						uint32(I[t[0]]), uint32(I[t[1]]), uint32(I[t[2]]))
				}
			}
		}
	}
	if len(indices) == 0 {
		err = ErrNothingToTessellate
		return
	}
	tb = &TriangleBuffer{Indices: indices}
	return
}

// VolumeCells produces solver-ready volume cell batches, preserving
// native per-kind node ordering and arity. No tessellation is applied to
// volume cells. Elements with any unresolved node are dropped whole.
func VolumeCells(s *geometry.MeshState) (blocks []*CellBlock, err error) {
	tr := s.Resolver()
	for _, b := range s.Volume {
		spec, ok := geometry.ElementTable[b.Kind]
		if !ok || spec.Dim != 3 {
			err = fmt.Errorf("%s is not a volume cell kind", b.Kind)
			return
		}
		out := &CellBlock{Kind: b.Kind, Arity: spec.Arity}
	elements:
		for e := 0; e < b.NumElements(); e++ {
			I := tr.Resolve(b.Conn[e*spec.Arity : (e+1)*spec.Arity])
			for _, idx := range I {
				if idx == geometry.UnknownIndex {
					continue elements
				}
			}
			for _, idx := range I {
				out.Indices = append(out.Indices, uint32(idx))
			}
		}
		if out.NumCells() > 0 {
			blocks = append(blocks, out)
		}
	}
	if len(blocks) == 0 {
		err = ErrNothingToTessellate
	}
	return
}
