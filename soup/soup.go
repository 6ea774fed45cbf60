// Package soup defines the triangle-soup reader collaborator interface
// for topology-less sources (STL and friends). The file parser itself is
// an external collaborator; this package carries the contract and an
// in-memory implementation used by tests and the demo command.
package soup

import "fmt"

// CellBlock is one batch of same-type cells with flat zero-based point
// index connectivity, mirroring what soup readers report.
type CellBlock struct {
	CellType string // "triangle", "quad", ...
	Conn     []int64
}

// Reader provides raw point and cell access for a soup source.
type Reader interface {
	// ReadPoints returns the flat xyz point array of a source.
	ReadPoints(path string) ([]float64, error)

	// ReadCellBlocks returns the cell batches of a source.
	ReadCellBlocks(path string) ([]CellBlock, error)
}

// Triangles extracts the flat triangle connectivity from cell blocks,
// ignoring non-triangle batches. Returns nil when the source carries no
// triangles.
func Triangles(blocks []CellBlock) []int64 {
	for _, b := range blocks {
		if b.CellType == "triangle" {
			return b.Conn
		}
	}
	return nil
}

// Memory is an in-memory Reader keyed by source path.
type Memory struct {
	points map[string][]float64
	cells  map[string][]CellBlock
}

func NewMemory() *Memory {
	return &Memory{
		points: make(map[string][]float64),
		cells:  make(map[string][]CellBlock),
	}
}

// AddSource registers a source under a path.
func (m *Memory) AddSource(path string, points []float64, cells []CellBlock) {
	m.points[path] = points
	m.cells[path] = cells
}

func (m *Memory) ReadPoints(path string) ([]float64, error) {
	pts, ok := m.points[path]
	if !ok {
		return nil, fmt.Errorf("unknown source %q", path)
	}
	return pts, nil
}

func (m *Memory) ReadCellBlocks(path string) ([]CellBlock, error) {
	cells, ok := m.cells[path]
	if !ok {
		return nil, fmt.Errorf("unknown source %q", path)
	}
	return cells, nil
}
