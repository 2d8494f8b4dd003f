/*
	Copyright (C) 2023 flxj(https://github.com/flxj)

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

package driver

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/flxj/mstlib"
	"github.com/flxj/mstlib/cohort"
	"github.com/flxj/mstlib/maze"
)

// Run executes the configured algorithm over the configured graph and
// writes the spec §6 report to out: a "Starting" line, an optional
// verbose Graph: dump, the elapsed wall time, the MST (optionally
// dumped in full), its total weight, an optional Maze: rendering, and
// a closing "Finished" line.
func Run(cfg *Config, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	graph, err := loadGraph(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Starting")
	if cfg.Verbose {
		fmt.Fprintln(out, "Graph:")
		if err := mstlib.WriteGraph(out, graph.Edges); err != nil {
			return err
		}
	}

	envs := cohort.NewLocalCohort(cfg.CohortSize)

	var (
		mst     []mstlib.Edge
		elapsed float64
	)
	start := envs[0].WallTime()

	switch cfg.Algorithm {
	case AlgorithmKruskal:
		mst, err = mstlib.Kruskal(envs, graph)
	case AlgorithmPrimFibonacci:
		mst, err = mstlib.PrimFibonacci(graph)
	case AlgorithmPrimBinary:
		mst, err = mstlib.PrimBinary(graph)
	case AlgorithmBoruvka:
		mst, err = mstlib.Boruvka(envs, graph)
	default:
		return mstlib.ErrUnknownAlgorithm
	}
	if err != nil {
		return err
	}
	elapsed = (envs[0].WallTime() - start).Seconds()

	fmt.Fprintf(out, "Time elapsed: %f s\n", elapsed)
	if cfg.Verbose {
		fmt.Fprintln(out, "MST:")
		if err := mstlib.WriteGraph(out, mst); err != nil {
			return err
		}
	}
	fmt.Fprintf(out, "MST weight: %d\n", mstlib.TotalWeight(mst))

	if cfg.RenderMaze && cfg.Rows > 0 && cfg.Columns > 0 {
		fmt.Fprintln(out, "Maze:")
		fmt.Fprintln(out, maze.Render(mst, cfg.Rows, cfg.Columns))
	}
	fmt.Fprintln(out, "Finished")
	return nil
}

func loadGraph(cfg *Config) (*mstlib.WeightedGraph, error) {
	if cfg.GenerateMaze {
		src := rand.NewSource(cfg.Seed)
		return maze.Generate(cfg.Rows, cfg.Columns, rand.New(src))
	}
	return mstlib.LoadGraphFile(cfg.GraphFile)
}
