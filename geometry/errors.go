package geometry

import "errors"

// Operation-level failures. Local degradations (degenerate surface
// patches, unresolvable connectivity) are absorbed and counted instead.
var (
	// ErrNoEntities - the kernel returned zero entities for a source.
	ErrNoEntities = errors.New("no geometry entities found in source")

	// ErrNoPoints - a triangle-soup source contains no vertices.
	ErrNoPoints = errors.New("source contains no points")

	// ErrNoVolumeElements - volume meshing yielded nothing, typically a
	// non-watertight input.
	ErrNoVolumeElements = errors.New("mesh generation produced no volume elements: check that the geometry is a closed solid (watertight)")

	// ErrUnsupportedSourceKind - volume meshing requested on a source
	// without solid topology.
	ErrUnsupportedSourceKind = errors.New("source kind does not carry solid topology")

	// ErrEmptyTagUniverse - a tag index cannot be built over zero tags.
	ErrEmptyTagUniverse = errors.New("cannot build a tag index over an empty tag set")
)
