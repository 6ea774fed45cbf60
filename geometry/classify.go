package geometry

// NodeClass is the degrees-of-freedom classification assigned to every
// node from the topological dimension of its lowest-dimensional owning
// entity. The numeric value is the DOF count of the node.
//
//	ClassInterior (3 DOF): free to move in 3D - interior volume nodes
//	ClassSurface  (2 DOF): constrained to the surface tangent plane
//	ClassEdge     (1 DOF): constrained to a feature curve tangent
//	ClassCorner   (0 DOF): fixed - geometry vertex point
//	ClassInterface       : reserved for assembly dual-surface contact;
//	                       no assignment pass exists yet
type NodeClass int8

const (
	ClassCorner    NodeClass = 0
	ClassEdge      NodeClass = 1
	ClassSurface   NodeClass = 2
	ClassInterior  NodeClass = 3
	ClassInterface NodeClass = 4
)

func (c NodeClass) String() string {
	return [...]string{"Corner", "Edge", "Surface", "Interior", "Interface"}[c]
}

// EntityNodes lists the node tags owned by the interior of one
// topological entity, as reported by the geometry kernel.
type EntityNodes struct {
	Dim      int // topological dimension, 0..2
	Tag      int // entity tag, carried for diagnostics
	NodeTags []int64
}

// classPasses fixes the override order: dimension 2 first, then 1, then 0.
// Each pass unconditionally overwrites, so the lowest topological
// dimension always wins. This order reproduces shared-boundary semantics
// and must not change.
var classPasses = [3]struct {
	dim   int
	class NodeClass
}{
	{2, ClassSurface},
	{1, ClassEdge},
	{0, ClassCorner},
}

// ClassifyNodes assigns a class to each of nNodes nodes. Every node
// starts Interior; entity-owned nodes are overridden per classPasses.
// Owner tags outside the resolver's universe are dropped, not an error.
func ClassifyNodes(nNodes int, tr *TagIndexResolver, owners []EntityNodes) (classes []NodeClass) {
	classes = make([]NodeClass, nNodes)
	for i := range classes {
		classes[i] = ClassInterior
	}
	for _, pass := range classPasses {
		for _, ent := range owners {
			if ent.Dim != pass.dim {
				continue
			}
			for _, tag := range ent.NodeTags {
				if idx := tr.Lookup(tag); idx != UnknownIndex {
					classes[idx] = pass.class
				}
			}
		}
	}
	return
}

// AllSurface classifies every node Surface. Triangle-soup sources carry
// no topological entities, so all of their nodes are surface nodes.
func AllSurface(nNodes int) (classes []NodeClass) {
	classes = make([]NodeClass, nNodes)
	for i := range classes {
		classes[i] = ClassSurface
	}
	return
}
