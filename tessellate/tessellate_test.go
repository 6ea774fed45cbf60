package tessellate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/threadmesh/meshcore/geometry"
)

func stateWith(t *testing.T, surface, volume []geometry.ElementBlock) *geometry.MeshState {
	t.Helper()
	var (
		n       = 8
		tags    = make([]int64, n)
		coords  = make([]float64, 3*n)
		classes = geometry.AllSurface(n)
		normals = geometry.UndefinedNormals(n)
	)
	for i := range tags {
		tags[i] = int64(i + 1)
	}
	s, err := geometry.NewMeshState("part.step", geometry.SourceCAD, geometry.Offset{},
		tags, coords, classes, normals, surface, volume)
	if err != nil {
		t.Fatalf("failed to assemble state: %v", err)
	}
	return s
}

func TestQuadSplit(t *testing.T) {
	surface := []geometry.ElementBlock{{
		Kind: geometry.Quad,
		Tags: []int64{1},
		Conn: []int64{1, 2, 3, 4},
	}}
	s := stateWith(t, surface, nil)

	tb, err := SurfaceTriangles(s)
	assert.NoError(t, err)
	assert.Equal(t, 2, tb.NumTriangles())
	// fixed diagonal: [v0,v1,v2] then [v0,v2,v3]
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, tb.Indices)
}

func TestMixedBatchTriangleCount(t *testing.T) {
	// T triangles + Q quads yield T + 2Q output triangles, all native
	// triangles first.
	surface := []geometry.ElementBlock{
		{Kind: geometry.Quad, Tags: []int64{10, 11}, Conn: []int64{1, 2, 3, 4, 5, 6, 7, 8}},
		{Kind: geometry.Triangle, Tags: []int64{12, 13, 14}, Conn: []int64{1, 2, 3, 2, 3, 4, 5, 6, 7}},
	}
	s := stateWith(t, surface, nil)

	tb, err := SurfaceTriangles(s)
	assert.NoError(t, err)
	assert.Equal(t, 3+2*2, tb.NumTriangles())
	// triangles precede split quads even though the quad batch came first
	assert.Equal(t, []uint32{0, 1, 2}, tb.Indices[:3])
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, tb.Indices[9:15])
}

func TestDroppedElementsAbsent(t *testing.T) {
	surface := []geometry.ElementBlock{{
		Kind: geometry.Triangle,
		Tags: []int64{1, 2},
		Conn: []int64{1, 2, 3, 2, 3, 99}, // second references unknown tag 99
	}}
	s := stateWith(t, surface, nil)

	tb, err := SurfaceTriangles(s)
	assert.NoError(t, err)
	assert.Equal(t, 1, tb.NumTriangles())
	assert.Equal(t, []uint32{0, 1, 2}, tb.Indices)
}

func TestNothingToTessellate(t *testing.T) {
	s := stateWith(t, nil, nil)

	_, err := SurfaceTriangles(s)
	assert.ErrorIs(t, err, ErrNothingToTessellate)

	_, err = VolumeCells(s)
	assert.ErrorIs(t, err, ErrNothingToTessellate)
}

func TestVolumeCellsNativeOrdering(t *testing.T) {
	volume := []geometry.ElementBlock{
		{Kind: geometry.Tet, Tags: []int64{1}, Conn: []int64{1, 2, 3, 4}},
		{Kind: geometry.Hex, Tags: []int64{2}, Conn: []int64{1, 2, 3, 4, 5, 6, 7, 8}},
		{Kind: geometry.Pyramid, Tags: []int64{3}, Conn: []int64{1, 2, 3, 4, 5}},
	}
	s := stateWith(t, nil, volume)

	blocks, err := VolumeCells(s)
	assert.NoError(t, err)
	assert.Len(t, blocks, 3)

	assert.Equal(t, geometry.Tet, blocks[0].Kind)
	assert.Equal(t, 4, blocks[0].Arity)
	assert.Equal(t, []uint32{0, 1, 2, 3}, blocks[0].Indices)

	assert.Equal(t, geometry.Hex, blocks[1].Kind)
	assert.Equal(t, 8, blocks[1].Arity)
	assert.Equal(t, 1, blocks[1].NumCells())
	// connectivity passes through in native node order, untessellated
	assert.Equal(t, []uint32{0, 1, 2, 3, 4, 5, 6, 7}, blocks[1].Indices)

	assert.Equal(t, geometry.Pyramid, blocks[2].Kind)
	assert.Equal(t, 5, blocks[2].Arity)
}

func TestVolumeCellsRejectSurfaceKind(t *testing.T) {
	s := stateWith(t, nil, nil)
	// hand-built block with a surface kind in the volume set
	s2 := *s
	s2.Volume = []geometry.ElementBlock{{Kind: geometry.Triangle, Tags: []int64{1}, Conn: []int64{1, 2, 3}}}
	_, err := VolumeCells(&s2)
	if err == nil {
		t.Error("expected error for surface kind in volume batch")
	}
}
