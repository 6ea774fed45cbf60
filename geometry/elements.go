package geometry

// ElementKind identifies the cell topology of an element batch.
type ElementKind int

const (
	Triangle ElementKind = iota
	Quad
	Tet
	Hex
	Wedge
	Pyramid
	Tet10
)

func (e ElementKind) String() string {
	return [...]string{"Triangle", "Quad", "Tet", "Hex", "Wedge", "Pyramid", "Tet10"}[e]
}

// ElementSpec holds the per-kind facts the engine needs: topological
// dimension, node count, the kernel's wire type code, and the surface
// tessellation rule. Adding a cell kind is a table edit, not a logic
// change.
type ElementSpec struct {
	Dim        int
	Arity      int
	KernelCode int      // element type code used by the geometry kernel
	TriSplit   [][3]int // local-node triangles for surface rendering; nil for volume cells
}

// ElementTable is the exhaustive kind registry. The quad split is a fixed
// diagonal, independent of quad shape or planarity.
var ElementTable = map[ElementKind]ElementSpec{
	Triangle: {Dim: 2, Arity: 3, KernelCode: 2, TriSplit: [][3]int{{0, 1, 2}}},
	Quad:     {Dim: 2, Arity: 4, KernelCode: 3, TriSplit: [][3]int{{0, 1, 2}, {0, 2, 3}}},
	Tet:      {Dim: 3, Arity: 4, KernelCode: 4},
	Hex:      {Dim: 3, Arity: 8, KernelCode: 5},
	Wedge:    {Dim: 3, Arity: 6, KernelCode: 6},
	Pyramid:  {Dim: 3, Arity: 5, KernelCode: 7},
	Tet10:    {Dim: 3, Arity: 10, KernelCode: 11},
}

var kindByKernelCode = make(map[int]ElementKind)

func init() {
	for kind, spec := range ElementTable {
		kindByKernelCode[spec.KernelCode] = kind
	}
}

// KindFromKernelCode maps a kernel element type code to its ElementKind.
func KindFromKernelCode(code int) (kind ElementKind, ok bool) {
	kind, ok = kindByKernelCode[code]
	return
}

// ElementBlock is one typed batch of elements. Conn lists, per element,
// the node tags (not indices) that compose it, Arity entries per element.
type ElementBlock struct {
	Kind ElementKind
	Tags []int64 // element tags, one per element
	Conn []int64 // flat node tag connectivity
}

func (b ElementBlock) NumElements() int {
	return len(b.Tags)
}

func (b ElementBlock) Arity() int {
	return ElementTable[b.Kind].Arity
}
