package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestElementTable(t *testing.T) {
	// native arities per kind
	arities := map[ElementKind]int{
		Triangle: 3, Quad: 4, Tet: 4, Hex: 8, Wedge: 6, Pyramid: 5, Tet10: 10,
	}
	for kind, want := range arities {
		assert.Equal(t, want, ElementTable[kind].Arity, kind.String())
	}

	// volume kinds never carry a surface split rule
	for kind, spec := range ElementTable {
		if spec.Dim == 3 {
			assert.Nil(t, spec.TriSplit, kind.String())
		} else {
			assert.NotNil(t, spec.TriSplit, kind.String())
		}
	}

	// the quad split is the fixed diagonal
	assert.Equal(t, [][3]int{{0, 1, 2}, {0, 2, 3}}, ElementTable[Quad].TriSplit)
}

func TestKindFromKernelCode(t *testing.T) {
	for kind, spec := range ElementTable {
		got, ok := KindFromKernelCode(spec.KernelCode)
		assert.True(t, ok)
		assert.Equal(t, kind, got)
	}
	_, ok := KindFromKernelCode(999)
	assert.False(t, ok)
}

func TestElementBlockCounts(t *testing.T) {
	b := ElementBlock{Kind: Quad, Tags: []int64{1, 2}, Conn: make([]int64, 8)}
	assert.Equal(t, 2, b.NumElements())
	assert.Equal(t, 4, b.Arity())
}
