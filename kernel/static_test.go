package kernel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoxModelLayout(t *testing.T) {
	m := BoxModel([3]float64{0, 0, 0}, 2)

	assert.Len(t, m.NodeTags, 27)
	assert.Equal(t, [3]float64{-1, -1, -1}, m.Min)
	assert.Equal(t, [3]float64{1, 1, 1}, m.Max)

	counts := map[int]int{}
	for _, ent := range m.Entities {
		counts[ent.Dim]++
	}
	assert.Equal(t, 8, counts[0], "vertex entities")
	assert.Equal(t, 12, counts[1], "edge entities")
	assert.Equal(t, 6, counts[2], "face entities")
	assert.Equal(t, 1, counts[3], "region entities")

	// 4 triangle faces x 8 + 2 quad faces x 4
	assert.Equal(t, 32, len(m.Surface[0].Tags))
	assert.Equal(t, 8, len(m.Surface[1].Tags))
	assert.Equal(t, 8, len(m.Volume[0].Tags))
}

func TestStaticLifecycle(t *testing.T) {
	k := NewStatic()
	k.AddModel("box.step", BoxModel([3]float64{5, 5, 5}, 2))

	_, err := k.ImportSource("missing.step")
	assert.Error(t, err)

	ents, err := k.ImportSource("box.step")
	assert.NoError(t, err)
	assert.Len(t, ents, 27)

	// nodes are unavailable until a mesh is generated
	_, _, err = k.Nodes()
	assert.Error(t, err)

	min, max, err := k.BoundingBox()
	assert.NoError(t, err)
	assert.Equal(t, [3]float64{4, 4, 4}, min)
	assert.Equal(t, [3]float64{6, 6, 6}, max)

	assert.NoError(t, k.Translate([3]float64{-5, -5, -5}))
	min, max, _ = k.BoundingBox()
	assert.Equal(t, [3]float64{-1, -1, -1}, min)
	assert.Equal(t, [3]float64{1, 1, 1}, max)

	assert.NoError(t, k.GenerateMesh(2, MeshOptions{TargetSize: 1}))
	assert.Equal(t, 1.0, k.LastOptions.TargetSize)

	_, coords, err := k.Nodes()
	assert.NoError(t, err)
	// translation is applied to reported coordinates
	assert.Equal(t, -1.0, coords[0])

	// surface elements only; no volume until GenerateMesh(3)
	blocks, _ := k.ElementsOf(3)
	assert.Empty(t, blocks)
	assert.NoError(t, k.GenerateMesh(3, MeshOptions{TargetSize: 1}))
	blocks, _ = k.ElementsOf(3)
	assert.Len(t, blocks, 1)
}

func TestStaticNormalEvaluation(t *testing.T) {
	k := NewStatic()
	m := BoxModel([3]float64{0, 0, 0}, 2)
	k.AddModel("box.step", m)
	_, err := k.ImportSource("box.step")
	assert.NoError(t, err)

	tags, _, params, err := k.NodesOf(2, 1)
	assert.NoError(t, err)
	assert.Len(t, tags, 1)
	assert.Len(t, params, 2)

	normals, err := k.EvaluateNormals(1, params)
	assert.NoError(t, err)
	assert.Len(t, normals, 3)

	m.Entity(2, 1).Normals = nil
	_, err = k.EvaluateNormals(1, params)
	assert.Error(t, err)

	assert.NoError(t, k.Optimize("Netgen"))
	k.FailOptimize = true
	assert.Error(t, k.Optimize("Netgen"))
}
