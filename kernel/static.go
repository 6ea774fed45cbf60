package kernel

import (
	"fmt"
)

// Entity is one model entity of a Static kernel, holding the nodes its
// interior owns. Surface entities (Dim 2) carry parametric coordinates
// and precomputed normals; a surface with nil Normals behaves as a
// degenerate patch and fails normal evaluation.
type Entity struct {
	Dim      int
	Tag      int
	NodeTags []int64
	Params   []float64 // 2 per node for surfaces
	Normals  []float64 // 3 per node; nil marks the patch degenerate
}

// Model is a fully meshed model held in memory, expressed in the user
// coordinate frame.
type Model struct {
	Min, Max   [3]float64
	NodeTags   []int64
	NodeCoords []float64 // flat xyz, user frame
	Entities   []Entity
	Surface    []ElementBlockRaw
	Volume     []ElementBlockRaw
}

// Entity returns the entity with the given dimension and tag, or nil.
func (m *Model) Entity(dim, tag int) *Entity {
	for i := range m.Entities {
		if m.Entities[i].Dim == dim && m.Entities[i].Tag == tag {
			return &m.Entities[i]
		}
	}
	return nil
}

// Static is an in-memory Kernel backed by prebuilt models, keyed by
// source path. It is deterministic and carries no external process,
// which makes it the kernel used by tests and the demo command.
type Static struct {
	models      map[string]*Model
	cur         *Model
	translation [3]float64
	meshedDim   int

	// LastOptions records the options of the most recent GenerateMesh
	// call, for assertions.
	LastOptions MeshOptions

	// FailOptimize makes Optimize return an error, mimicking a kernel
	// built without the requested optimizer.
	FailOptimize bool
}

func NewStatic() *Static {
	return &Static{models: make(map[string]*Model)}
}

// AddModel registers a model under a source path.
func (s *Static) AddModel(path string, m *Model) {
	s.models[path] = m
}

func (s *Static) ImportSource(path string) (entities []DimTag, err error) {
	m, ok := s.models[path]
	if !ok {
		err = fmt.Errorf("unknown source %q", path)
		return
	}
	s.cur = m
	s.translation = [3]float64{}
	s.meshedDim = 0
	for _, ent := range m.Entities {
		entities = append(entities, DimTag{Dim: ent.Dim, Tag: ent.Tag})
	}
	return
}

func (s *Static) BoundingBox() (min, max [3]float64, err error) {
	if s.cur == nil {
		err = fmt.Errorf("no model loaded")
		return
	}
	for d := 0; d < 3; d++ {
		min[d] = s.cur.Min[d] + s.translation[d]
		max[d] = s.cur.Max[d] + s.translation[d]
	}
	return
}

func (s *Static) Translate(by [3]float64) error {
	if s.cur == nil {
		return fmt.Errorf("no model loaded")
	}
	for d := 0; d < 3; d++ {
		s.translation[d] += by[d]
	}
	return nil
}

func (s *Static) GenerateMesh(dim int, opts MeshOptions) error {
	if s.cur == nil {
		return fmt.Errorf("no model loaded")
	}
	s.meshedDim = dim
	s.LastOptions = opts
	return nil
}

func (s *Static) Optimize(method string) error {
	if s.FailOptimize {
		return fmt.Errorf("optimizer %q not available in this build", method)
	}
	return nil
}

func (s *Static) Entities(dim int) (out []DimTag) {
	if s.cur == nil {
		return
	}
	for _, ent := range s.cur.Entities {
		if ent.Dim == dim {
			out = append(out, DimTag{Dim: ent.Dim, Tag: ent.Tag})
		}
	}
	return
}

func (s *Static) Nodes() (tags []int64, coords []float64, err error) {
	if s.cur == nil || s.meshedDim == 0 {
		err = fmt.Errorf("no mesh generated")
		return
	}
	tags = s.cur.NodeTags
	coords = make([]float64, len(s.cur.NodeCoords))
	for i := 0; i < len(coords); i += 3 {
		coords[i] = s.cur.NodeCoords[i] + s.translation[0]
		coords[i+1] = s.cur.NodeCoords[i+1] + s.translation[1]
		coords[i+2] = s.cur.NodeCoords[i+2] + s.translation[2]
	}
	return
}

func (s *Static) NodesOf(dim, tag int) (tags []int64, coords []float64, params []float64, err error) {
	if s.cur == nil {
		err = fmt.Errorf("no model loaded")
		return
	}
	ent := s.cur.Entity(dim, tag)
	if ent == nil {
		err = fmt.Errorf("no entity with dim %d tag %d", dim, tag)
		return
	}
	tags = ent.NodeTags
	params = ent.Params
	return
}

func (s *Static) EvaluateNormals(surfaceTag int, params []float64) (normals []float64, err error) {
	if s.cur == nil {
		err = fmt.Errorf("no model loaded")
		return
	}
	ent := s.cur.Entity(2, surfaceTag)
	if ent == nil {
		err = fmt.Errorf("no surface entity with tag %d", surfaceTag)
		return
	}
	if ent.Normals == nil {
		err = fmt.Errorf("degenerate surface patch %d: normal evaluation failed", surfaceTag)
		return
	}
	if len(params)/2 != len(ent.Normals)/3 {
		err = fmt.Errorf("parametric count %d does not match surface %d node count %d",
			len(params)/2, surfaceTag, len(ent.Normals)/3)
		return
	}
	normals = ent.Normals
	return
}

func (s *Static) ElementsOf(dim int) (blocks []ElementBlockRaw, err error) {
	if s.cur == nil {
		err = fmt.Errorf("no model loaded")
		return
	}
	switch {
	case dim == 2 && s.meshedDim >= 2:
		blocks = s.cur.Surface
	case dim == 3 && s.meshedDim >= 3:
		blocks = s.cur.Volume
	}
	return
}
