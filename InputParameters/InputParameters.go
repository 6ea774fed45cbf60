package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type MeshParameters struct {
	Title                        string  `yaml:"Title"`
	TargetSize                   float64 `yaml:"TargetSize"` // element characteristic length, model units
	Algorithm                    string  `yaml:"Algorithm"`  // "delaunay" or "frontal"
	DeviationThresholdStructural float64 `yaml:"DeviationThresholdStructural"`
	DeviationThresholdCFD        float64 `yaml:"DeviationThresholdCFD"`
	DeviationEdgeFactor          float64 `yaml:"DeviationEdgeFactor"` // edge nodes: threshold / 10
	ProximityToleranceFactor     float64 `yaml:"ProximityToleranceFactor"`
	ConvergenceThreshold         float64 `yaml:"ConvergenceThreshold"`
	IterationMin                 int     `yaml:"IterationMin"`
	IterationMax                 int     `yaml:"IterationMax"`
	RAMMaxFraction               float64 `yaml:"RAMMaxFraction"`
	CPUReserveCores              int     `yaml:"CPUReserveCores"`
	LogLevel                     string  `yaml:"LogLevel"`
	LogFile                      string  `yaml:"LogFile"`
}

// NewMeshParameters returns the default parameter set.
func NewMeshParameters() *MeshParameters {
	return &MeshParameters{
		Title:                        "Untitled",
		TargetSize:                   1.0,
		Algorithm:                    "delaunay",
		DeviationThresholdStructural: 0.01,
		DeviationThresholdCFD:        0.001,
		DeviationEdgeFactor:          0.1,
		ProximityToleranceFactor:     0.01,
		ConvergenceThreshold:         1.e-4,
		IterationMin:                 5,
		IterationMax:                 100,
		RAMMaxFraction:               0.40,
		CPUReserveCores:              1,
		LogLevel:                     "info",
	}
}

func (mp *MeshParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, mp)
}

func (mp *MeshParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", mp.Title)
	fmt.Printf("%8.5f\t\t= TargetSize\n", mp.TargetSize)
	fmt.Printf("[%s]\t\t= Algorithm\n", mp.Algorithm)
	fmt.Printf("%8.5f\t\t= DeviationThresholdStructural\n", mp.DeviationThresholdStructural)
	fmt.Printf("%8.5f\t\t= DeviationThresholdCFD\n", mp.DeviationThresholdCFD)
	fmt.Printf("%8.5f\t\t= ProximityToleranceFactor\n", mp.ProximityToleranceFactor)
	fmt.Printf("%8.2g\t\t= ConvergenceThreshold\n", mp.ConvergenceThreshold)
	fmt.Printf("[%d,%d]\t\t\t= Iteration bounds\n", mp.IterationMin, mp.IterationMax)
	fmt.Printf("%8.2f\t\t= RAMMaxFraction\n", mp.RAMMaxFraction)
	fmt.Printf("[%d]\t\t\t\t= CPUReserveCores\n", mp.CPUReserveCores)
}
