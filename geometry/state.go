package geometry

import (
	"fmt"
)

// SourceKind records the provenance of a MeshState.
type SourceKind int

const (
	// SourceCAD - parametric geometry with true topology (vertices,
	// curves, surfaces, solids).
	SourceCAD SourceKind = iota
	// SourceTriangleSoup - bare triangles with no topological entities.
	SourceTriangleSoup
)

func (k SourceKind) String() string {
	return [...]string{"CAD", "TriangleSoup"}[k]
}

// MeshState holds all geometry and mesh data for one import or
// regeneration stage. It is immutable once constructed: a later stage
// produces a brand-new MeshState reusing SourcePath and Origin from its
// predecessor, and the owner swaps the published state only after
// construction fully succeeds.
//
// Coordinate convention: NodeCoords are internal (origin-zeroed);
// internal + Origin recovers the user's original coordinate system.
type MeshState struct {
	SourcePath string
	SourceKind SourceKind
	Origin     Offset

	NodeTags   []int64     // unique, 1-based external identifiers
	NodeCoords []float64   // flat xyz per node, internal frame
	Classes    []NodeClass // one per node
	Normals    []float64   // flat xyz per node, NaN triple where undefined

	Surface []ElementBlock
	Volume  []ElementBlock

	// Dropped counts elements discarded at assembly because their
	// connectivity referenced tags outside the node universe.
	Dropped int

	resolver *TagIndexResolver
}

// NewMeshState assembles and validates a state. Per-node array lengths
// must match and node tags must be unique and positive. Element batches
// are filtered: any element whose connectivity does not fully resolve is
// dropped whole, never inserted partially. On error no state is
// produced, leaving any previously published state untouched.
func NewMeshState(path string, kind SourceKind, origin Offset,
	nodeTags []int64, nodeCoords []float64, classes []NodeClass, normals []float64,
	surface, volume []ElementBlock) (s *MeshState, err error) {

	tr, err := NewTagIndexResolver(nodeTags)
	if err != nil {
		return
	}
	n := len(nodeTags)
	if len(nodeCoords) != 3*n {
		err = fmt.Errorf("have %d coordinate values for %d nodes, want %d", len(nodeCoords), n, 3*n)
		return
	}
	if len(classes) != n {
		err = fmt.Errorf("have %d classes for %d nodes", len(classes), n)
		return
	}
	if len(normals) != 3*n {
		err = fmt.Errorf("have %d normal values for %d nodes, want %d", len(normals), n, 3*n)
		return
	}

	s = &MeshState{
		SourcePath: path,
		SourceKind: kind,
		Origin:     origin,
		NodeTags:   nodeTags,
		NodeCoords: nodeCoords,
		Classes:    classes,
		Normals:    normals,
		resolver:   tr,
	}
	var dropped int
	if s.Surface, dropped, err = filterBlocks(tr, surface); err != nil {
		s = nil
		return
	}
	s.Dropped += dropped
	if s.Volume, dropped, err = filterBlocks(tr, volume); err != nil {
		s = nil
		return
	}
	s.Dropped += dropped
	return
}

// filterBlocks drops every element whose connectivity includes a tag
// absent from the node universe, keeping whole elements only.
func filterBlocks(tr *TagIndexResolver, blocks []ElementBlock) (kept []ElementBlock, dropped int, err error) {
	for _, b := range blocks {
		arity := b.Arity()
		if len(b.Conn) != arity*len(b.Tags) {
			err = fmt.Errorf("%s batch: %d connectivity entries for %d elements of arity %d",
				b.Kind, len(b.Conn), len(b.Tags), arity)
			return
		}
		out := ElementBlock{Kind: b.Kind}
	elements:
		for e := 0; e < len(b.Tags); e++ {
			conn := b.Conn[e*arity : (e+1)*arity]
			for _, tag := range conn {
				if tr.Lookup(tag) == UnknownIndex {
					dropped++
					continue elements
				}
			}
			out.Tags = append(out.Tags, b.Tags[e])
			out.Conn = append(out.Conn, conn...)
		}
		if out.NumElements() > 0 {
			kept = append(kept, out)
		}
	}
	return
}

// Resolver returns the tag-to-index lookup built at assembly.
func (s *MeshState) Resolver() *TagIndexResolver {
	return s.resolver
}

func (s *MeshState) NumNodes() int {
	return len(s.NodeTags)
}

func (s *MeshState) NumSurfaceElements() (n int) {
	for _, b := range s.Surface {
		n += b.NumElements()
	}
	return
}

func (s *MeshState) NumVolumeElements() (n int) {
	for _, b := range s.Volume {
		n += b.NumElements()
	}
	return
}

// NumElements is the working element count: volume elements once a
// volume mesh exists, surface elements before that.
func (s *MeshState) NumElements() int {
	if nv := s.NumVolumeElements(); nv > 0 {
		return nv
	}
	return s.NumSurfaceElements()
}

// Coord returns node i's internal-frame position.
func (s *MeshState) Coord(i int) [3]float64 {
	return [3]float64{s.NodeCoords[3*i], s.NodeCoords[3*i+1], s.NodeCoords[3*i+2]}
}

// UserCoords returns all node positions converted to the user frame.
func (s *MeshState) UserCoords() []float64 {
	return s.Origin.ToUserCoords(s.NodeCoords)
}

// ClassCounts tallies nodes per classification.
func (s *MeshState) ClassCounts() map[NodeClass]int {
	counts := make(map[NodeClass]int)
	for _, c := range s.Classes {
		counts[c]++
	}
	return counts
}

// PrintStatistics prints a summary of the state.
func (s *MeshState) PrintStatistics() {
	fmt.Printf("Mesh Statistics (%s, %s):\n", s.SourceKind, s.SourcePath)
	fmt.Printf("  Nodes: %d\n", s.NumNodes())
	fmt.Printf("  Surface elements: %d\n", s.NumSurfaceElements())
	fmt.Printf("  Volume elements: %d\n", s.NumVolumeElements())
	if s.Dropped > 0 {
		fmt.Printf("  Dropped elements: %d\n", s.Dropped)
	}
	fmt.Printf("  Node classes:\n")
	counts := s.ClassCounts()
	for _, c := range []NodeClass{ClassCorner, ClassEdge, ClassSurface, ClassInterior, ClassInterface} {
		if counts[c] > 0 {
			fmt.Printf("    %s: %d\n", c, counts[c])
		}
	}
}
