package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyPrecedence(t *testing.T) {
	tr, err := NewTagIndexResolver([]int64{1, 2, 3, 4})
	assert.NoError(t, err)

	// Node 2 is owned by a surface and an edge entity; node 3 by
	// entities of all three dimensions. Lower dimension always wins,
	// regardless of the order owners are listed in.
	owners := []EntityNodes{
		{Dim: 0, Tag: 1, NodeTags: []int64{3}},
		{Dim: 2, Tag: 1, NodeTags: []int64{2, 3, 4}},
		{Dim: 1, Tag: 1, NodeTags: []int64{2, 3}},
	}
	classes := ClassifyNodes(4, tr, owners)

	assert.Equal(t, ClassInterior, classes[0]) // untouched
	assert.Equal(t, ClassEdge, classes[1])     // surface + edge -> edge
	assert.Equal(t, ClassCorner, classes[2])   // all three -> corner
	assert.Equal(t, ClassSurface, classes[3])
}

func TestClassifyUnknownTagsIgnored(t *testing.T) {
	tr, _ := NewTagIndexResolver([]int64{1, 2})
	owners := []EntityNodes{
		{Dim: 2, Tag: 7, NodeTags: []int64{2, 999, -3}},
	}
	classes := ClassifyNodes(2, tr, owners)
	if classes[0] != ClassInterior {
		t.Errorf("expected node 1 Interior, got %s", classes[0])
	}
	if classes[1] != ClassSurface {
		t.Errorf("expected node 2 Surface, got %s", classes[1])
	}
}

func TestAllSurface(t *testing.T) {
	for _, c := range AllSurface(5) {
		assert.Equal(t, ClassSurface, c)
	}
}

func TestNodeClassOrder(t *testing.T) {
	// The numeric value is the DOF count, so corner < edge < surface <
	// interior holds numerically.
	assert.True(t, ClassCorner < ClassEdge)
	assert.True(t, ClassEdge < ClassSurface)
	assert.True(t, ClassSurface < ClassInterior)
	assert.Equal(t, "Interface", ClassInterface.String())
}
