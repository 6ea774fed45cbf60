// Package importer drives the geometry kernel and soup reader
// collaborators to produce MeshState stages: CAD import, triangle-soup
// import, and volume-mesh regeneration. Every operation builds a brand
// new state and never mutates a previous one, so a failed operation
// leaves the caller's published state untouched.
package importer

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/threadmesh/meshcore/geometry"
	"github.com/threadmesh/meshcore/kernel"
	"github.com/threadmesh/meshcore/soup"
)

// Diagnostics counts the local degradations absorbed during an
// operation. They are not errors, but they are countable.
type Diagnostics struct {
	DroppedElements    int // connectivity referenced unknown tags
	DegenerateSurfaces int // surface patches whose normal evaluation failed
}

// Importer holds the collaborators. The kernel must only ever be driven
// from one goroutine (see package kernel); the importer adds no
// concurrency of its own.
type Importer struct {
	Kernel kernel.Kernel
	Soup   soup.Reader
	Log    *zap.Logger
}

func New(k kernel.Kernel, r soup.Reader, log *zap.Logger) *Importer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Importer{Kernel: k, Soup: r, Log: log}
}

// ImportFile dispatches on the file extension.
func (im *Importer) ImportFile(path string, opts kernel.MeshOptions) (*geometry.MeshState, Diagnostics, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".step", ".stp":
		return im.Import(path, opts)
	case ".stl":
		return im.ImportSoup(path)
	default:
		return nil, Diagnostics{}, fmt.Errorf("unsupported source format: %s", ext)
	}
}

// Import loads a CAD source, establishes the internal coordinate frame,
// generates a surface mesh and assembles the first MeshState of the
// source.
func (im *Importer) Import(path string, opts kernel.MeshOptions) (s *geometry.MeshState, diag Diagnostics, err error) {
	var (
		k = im.Kernel
	)
	ents, err := k.ImportSource(path)
	if err != nil {
		err = fmt.Errorf("import %s: %w", path, err)
		return
	}
	if len(ents) == 0 {
		err = fmt.Errorf("import %s: %w", path, geometry.ErrNoEntities)
		return
	}

	min, max, err := k.BoundingBox()
	if err != nil {
		return
	}
	origin := geometry.BBoxMidpoint(min, max)
	if err = im.center(origin); err != nil {
		return
	}

	if err = k.GenerateMesh(2, opts); err != nil {
		err = fmt.Errorf("surface meshing %s: %w", path, err)
		return
	}

	s, diag, err = im.collect(path, geometry.SourceCAD, origin, false)
	if err != nil {
		return
	}
	im.Log.Info("imported CAD source",
		zap.String("path", path),
		zap.Int("nodes", s.NumNodes()),
		zap.Int("surfaceElements", s.NumSurfaceElements()))
	return
}

// Regenerate re-imports a previously imported CAD source, reapplies the
// stored origin offset so the new stage's internal coordinates stay
// comparable to the prior stage's, and generates a volume mesh. The
// previous state is only read, never modified.
func (im *Importer) Regenerate(prev *geometry.MeshState, opts kernel.MeshOptions) (s *geometry.MeshState, diag Diagnostics, err error) {
	// Rejected before any kernel call is issued.
	if prev.SourceKind != geometry.SourceCAD {
		err = fmt.Errorf("volume meshing %s source %s: %w",
			prev.SourceKind, prev.SourcePath, geometry.ErrUnsupportedSourceKind)
		return
	}
	var (
		k    = im.Kernel
		path = prev.SourcePath
	)
	ents, err := k.ImportSource(path)
	if err != nil {
		err = fmt.Errorf("re-import %s: %w", path, err)
		return
	}
	if len(ents) == 0 {
		err = fmt.Errorf("re-import %s: %w", path, geometry.ErrNoEntities)
		return
	}
	if err = im.center(prev.Origin); err != nil {
		return
	}

	if err = k.GenerateMesh(3, opts); err != nil {
		err = fmt.Errorf("volume meshing %s: %w", path, err)
		return
	}
	// Tet quality pass; optimizers may be missing from a kernel build.
	if oerr := k.Optimize("Netgen"); oerr != nil {
		im.Log.Debug("mesh optimization skipped", zap.Error(oerr))
	}

	s, diag, err = im.collect(path, geometry.SourceCAD, prev.Origin, true)
	if err != nil {
		return
	}
	im.Log.Info("regenerated volume mesh",
		zap.String("path", path),
		zap.Int("nodes", s.NumNodes()),
		zap.Int("volumeElements", s.NumVolumeElements()))
	return
}

// ImportSoup loads a topology-less triangle source. All nodes classify
// Surface and normals come from area-weighted face accumulation.
func (im *Importer) ImportSoup(path string) (s *geometry.MeshState, diag Diagnostics, err error) {
	pts, err := im.Soup.ReadPoints(path)
	if err != nil {
		err = fmt.Errorf("import %s: %w", path, err)
		return
	}
	if len(pts) == 0 {
		err = fmt.Errorf("import %s: %w", path, geometry.ErrNoPoints)
		return
	}
	origin, err := geometry.Centroid(pts)
	if err != nil {
		return
	}
	coords := origin.ToInternalCoords(pts)
	n := len(coords) / 3

	// 1-based tags for consistency with kernel sources
	tags := make([]int64, n)
	for i := range tags {
		tags[i] = int64(i + 1)
	}

	cells, err := im.Soup.ReadCellBlocks(path)
	if err != nil {
		err = fmt.Errorf("import %s: %w", path, err)
		return
	}
	tris, dropped := validTriangles(soup.Triangles(cells), n)
	if dropped > 0 {
		im.Log.Warn("triangles dropped for unresolved connectivity",
			zap.String("path", path), zap.Int("count", dropped))
	}

	var (
		normals []float64
		surface []geometry.ElementBlock
	)
	if len(tris) > 0 {
		normals = geometry.SoupNormals(coords, tris)
		m := len(tris) / 3
		etags := make([]int64, m)
		conn := make([]int64, len(tris))
		for i := range etags {
			etags[i] = int64(i + 1)
		}
		for i, v := range tris {
			conn[i] = v + 1 // zero-based reader indices to 1-based tags
		}
		surface = []geometry.ElementBlock{{Kind: geometry.Triangle, Tags: etags, Conn: conn}}
	} else {
		normals = geometry.UndefinedNormals(n)
	}

	s, err = geometry.NewMeshState(path, geometry.SourceTriangleSoup, origin,
		tags, coords, geometry.AllSurface(n), normals, surface, nil)
	if err != nil {
		return
	}
	diag.DroppedElements = s.Dropped + dropped
	im.Log.Info("imported triangle soup",
		zap.String("path", path),
		zap.Int("nodes", n),
		zap.Int("triangles", len(tris)/3))
	return
}

// validTriangles filters soup triangle connectivity against the point
// count. A triangle referencing any point index outside [0, n) is
// dropped whole before normals or element batches are built from it.
func validTriangles(tris []int64, n int) (kept []int64, dropped int) {
triangles:
	for t := 0; t+3 <= len(tris); t += 3 {
		for _, v := range tris[t : t+3] {
			if v < 0 || v >= int64(n) {
				dropped++
				continue triangles
			}
		}
		kept = append(kept, tris[t:t+3]...)
	}
	return
}

// center asks the kernel to translate the model into the internal frame.
// Skipped when the offset is already within tolerance of zero, to avoid
// needless numerical churn.
func (im *Importer) center(origin geometry.Offset) error {
	if origin.IsZero() {
		return nil
	}
	neg := origin.Neg()
	return im.Kernel.Translate([3]float64{neg[0], neg[1], neg[2]})
}

// collect gathers nodes, classification, normals and element batches
// from the kernel's current mesh and assembles a state.
func (im *Importer) collect(path string, kind geometry.SourceKind, origin geometry.Offset,
	withVolume bool) (s *geometry.MeshState, diag Diagnostics, err error) {

	var (
		k = im.Kernel
	)
	tags, coords, err := k.Nodes()
	if err != nil {
		return
	}
	tr, err := geometry.NewTagIndexResolver(tags)
	if err != nil {
		return
	}
	n := len(tags)

	owners, err := im.gatherOwners()
	if err != nil {
		return
	}
	classes := geometry.ClassifyNodes(n, tr, owners)

	normals, degenerate, err := geometry.KernelNormals(k, tr, n)
	if err != nil {
		return
	}
	if degenerate > 0 {
		im.Log.Warn("degenerate surface patches skipped",
			zap.String("path", path), zap.Int("count", degenerate))
	}

	surface, err := im.elementBlocks(2)
	if err != nil {
		return
	}
	var volume []geometry.ElementBlock
	if withVolume {
		if volume, err = im.elementBlocks(3); err != nil {
			return
		}
		total := 0
		for _, b := range volume {
			total += b.NumElements()
		}
		if total == 0 {
			err = fmt.Errorf("volume meshing %s: %w", path, geometry.ErrNoVolumeElements)
			return
		}
	}

	s, err = geometry.NewMeshState(path, kind, origin, tags, coords, classes, normals, surface, volume)
	if err != nil {
		return
	}
	diag.DroppedElements = s.Dropped
	diag.DegenerateSurfaces = degenerate
	if s.Dropped > 0 {
		im.Log.Warn("elements dropped for unresolved connectivity",
			zap.String("path", path), zap.Int("count", s.Dropped))
	}
	return
}

// gatherOwners queries the entity-owned node tags the classifier needs,
// one list per entity for dimensions 0 through 2.
func (im *Importer) gatherOwners() (owners []geometry.EntityNodes, err error) {
	for dim := 0; dim <= 2; dim++ {
		for _, ent := range im.Kernel.Entities(dim) {
			var tags []int64
			if tags, _, _, err = im.Kernel.NodesOf(ent.Dim, ent.Tag); err != nil {
				err = fmt.Errorf("entity dim %d tag %d: %w", ent.Dim, ent.Tag, err)
				return
			}
			if len(tags) == 0 {
				continue
			}
			owners = append(owners, geometry.EntityNodes{Dim: ent.Dim, Tag: ent.Tag, NodeTags: tags})
		}
	}
	return
}

// elementBlocks fetches one dimension's raw batches and maps kernel type
// codes to element kinds. Unknown codes are skipped with a warning.
func (im *Importer) elementBlocks(dim int) (blocks []geometry.ElementBlock, err error) {
	raw, err := im.Kernel.ElementsOf(dim)
	if err != nil {
		return
	}
	for _, rb := range raw {
		kind, ok := geometry.KindFromKernelCode(rb.TypeCode)
		if !ok {
			im.Log.Warn("skipping unsupported element type",
				zap.Int("typeCode", rb.TypeCode), zap.Int("dim", dim))
			continue
		}
		blocks = append(blocks, geometry.ElementBlock{Kind: kind, Tags: rb.Tags, Conn: rb.Conn})
	}
	return
}
