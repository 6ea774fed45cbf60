/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/threadmesh/meshcore/InputParameters"
	"github.com/threadmesh/meshcore/compute"
	"github.com/threadmesh/meshcore/geometry"
	"github.com/threadmesh/meshcore/importer"
	"github.com/threadmesh/meshcore/kernel"
	"github.com/threadmesh/meshcore/logger"
	"github.com/threadmesh/meshcore/tessellate"
)

// demoCmd represents the demo command
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the full pipeline on the built-in box model and print statistics",
	Long: `
Imports the built-in box model through the in-memory kernel, regenerates
a volume mesh with the stored origin offset, derives render and solver
buffers, and prints statistics for every stage.`,
	Run: func(cmd *cobra.Command, args []string) {
		mp := InputParameters.NewMeshParameters()
		if pf, _ := cmd.Flags().GetString("paramsFile"); len(pf) != 0 {
			data, err := ioutil.ReadFile(pf)
			if err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
			if err = mp.Parse(data); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
		}
		if ts, _ := cmd.Flags().GetFloat64("targetSize"); ts > 0 {
			mp.TargetSize = ts
		}
		if prof, _ := cmd.Flags().GetBool("profile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		mp.Print()
		RunDemo(mp)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
	demoCmd.Flags().StringP("paramsFile", "I", "", "YAML file for engine parameters like:\n\t- TargetSize\n\t- Algorithm")
	demoCmd.Flags().Float64P("targetSize", "t", 0, "target element characteristic length, overrides the parameters file")
	demoCmd.Flags().BoolP("profile", "p", false, "write a CPU profile for the run")
}

func RunDemo(mp *InputParameters.MeshParameters) {
	log := logger.New(mp.LogLevel, mp.LogFile)
	defer func() { _ = log.Sync() }()

	ctx := compute.NewContext(mp.CPUReserveCores, mp.RAMMaxFraction)
	fmt.Printf("Compute backend: %s\n", ctx.Label())

	k := kernel.NewStatic()
	k.AddModel("demo.step", kernel.BoxModel([3]float64{40, 25, 10}, 20))
	im := importer.New(k, nil, log)
	opts := kernel.MeshOptions{TargetSize: mp.TargetSize, Algorithm: mp.Algorithm}

	state, _, err := im.Import("demo.step", opts)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	state.PrintStatistics()

	volState, _, err := im.Regenerate(state, opts)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	volState.PrintStatistics()

	tb, err := tessellate.SurfaceTriangles(volState)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	fmt.Printf("Render buffer: %d triangles\n", tb.NumTriangles())

	cells, err := tessellate.VolumeCells(volState)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	for _, cb := range cells {
		fmt.Printf("Solver buffer: %d %s cells\n", cb.NumCells(), cb.Kind)
	}

	adj := geometry.NodeAdjacency(volState)
	fmt.Printf("Node adjacency: %d nonzeros\n", adj.NNZ())
}
