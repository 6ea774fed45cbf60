// Package kernel defines the geometry kernel collaborator interface.
// The real kernel (CAD import, parametric surfaces, meshing) lives
// outside this module; implementations wrap it behind this interface so
// the topology engine never depends on a concrete kernel.
//
// Kernels are assumed not to be safe for concurrent use: real kernels
// register process-wide signal handlers at initialization and must be
// driven from one designated goroutine, typically the one locked to the
// application's primary thread. Calls block until the kernel finishes;
// there is no cancellation and a hung kernel call is a fatal
// external-collaborator failure.
package kernel

// DimTag identifies one model entity by topological dimension and tag.
type DimTag struct {
	Dim int
	Tag int
}

// MeshOptions carries the sizing and algorithm knobs forwarded to the
// kernel mesher.
type MeshOptions struct {
	TargetSize float64 // target element characteristic length, model units
	Algorithm  string  // "delaunay" (faster) or "frontal" (higher quality)
}

// ElementBlockRaw is one typed element batch as reported by the kernel:
// a wire type code, element tags, and flat node tag connectivity.
type ElementBlockRaw struct {
	TypeCode int
	Tags     []int64
	Conn     []int64
}

// Kernel is the geometry kernel capability consumed by the import and
// regeneration operations.
type Kernel interface {
	// ImportSource loads a source file and returns the model entities.
	// Importing replaces any previously loaded model.
	ImportSource(path string) ([]DimTag, error)

	// BoundingBox returns the axis-aligned bounds of the loaded model.
	BoundingBox() (min, max [3]float64, err error)

	// Translate shifts all model entities by the given vector.
	Translate(by [3]float64) error

	// GenerateMesh meshes the model up to the given dimension (2 for a
	// surface mesh, 3 for a volume mesh).
	GenerateMesh(dim int, opts MeshOptions) error

	// Optimize runs a named mesh optimization pass. Best effort: callers
	// treat failure as non-fatal since optimizers may be absent from a
	// given kernel build.
	Optimize(method string) error

	// Entities lists model entities of one dimension.
	Entities(dim int) []DimTag

	// Nodes returns all mesh node tags and their flat coordinates.
	Nodes() (tags []int64, coords []float64, err error)

	// NodesOf returns the nodes owned by the interior of one entity,
	// excluding its boundary, with parametric coordinates where the
	// entity carries them (2 per node for surfaces).
	NodesOf(dim, tag int) (tags []int64, coords []float64, params []float64, err error)

	// EvaluateNormals evaluates surface normals at parametric locations
	// on one surface entity. May fail per entity for degenerate patches.
	EvaluateNormals(surfaceTag int, params []float64) (normals []float64, err error)

	// ElementsOf returns the element batches of one dimension.
	ElementsOf(dim int) ([]ElementBlockRaw, error)
}
