package geometry

import (
	"github.com/james-bowman/sparse"
)

// NodeAdjacency builds the symmetric node-to-node adjacency matrix of a
// state from its element connectivity: entry (i,j) is 1 when nodes i and
// j share an element. Volume batches are used when present, surface
// batches otherwise. The matrix is assembled in DOK form and returned as
// CSR for the downstream solver.
func NodeAdjacency(s *MeshState) *sparse.CSR {
	var (
		n      = s.NumNodes()
		dok    = sparse.NewDOK(n, n)
		blocks = s.Volume
	)
	if len(blocks) == 0 {
		blocks = s.Surface
	}
	for _, b := range blocks {
		arity := b.Arity()
		for e := 0; e < b.NumElements(); e++ {
			conn := b.Conn[e*arity : (e+1)*arity]
			I := s.resolver.Resolve(conn)
			for a := 0; a < len(I); a++ {
				for bb := a + 1; bb < len(I); bb++ {
					// assembly already dropped unresolved elements
					dok.Set(I[a], I[bb], 1)
					dok.Set(I[bb], I[a], 1)
				}
			}
		}
	}
	return dok.ToCSR()
}
