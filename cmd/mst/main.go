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

// Command mst is the thin CLI wrapper around package driver. CLI
// parsing and option plumbing sit outside spec §1's core scope, so
// this file stays a minimal flag-to-Config translation.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/flxj/mstlib/driver"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	algorithm := flag.Int("algorithm", -1, "0=kruskal 1=prim-fibonacci 2=prim-binary 3=boruvka")
	graphFile := flag.String("graph", "", "path to an edge-list graph file")
	genMaze := flag.Bool("maze", false, "generate a random grid graph instead of reading -graph")
	rows := flag.Int("rows", 0, "maze rows")
	columns := flag.Int("columns", 0, "maze columns")
	render := flag.Bool("render", false, "render the resulting MST as an ASCII maze")
	verbose := flag.Bool("verbose", false, "dump the graph and MST edge lists")
	cohortSize := flag.Int("cohort", 1, "number of cooperating ranks")
	statusAddr := flag.String("status", "", "address for the optional status HTTP server, empty disables it")
	seed := flag.Int64("seed", 1, "random seed for -maze")
	flag.Parse()

	cfg, err := driver.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *algorithm >= 0 {
		cfg.Algorithm = driver.Algorithm(*algorithm)
	}
	if *graphFile != "" {
		cfg.GraphFile = *graphFile
	}
	if *genMaze {
		cfg.GenerateMaze = true
	}
	if *rows > 0 {
		cfg.Rows = *rows
	}
	if *columns > 0 {
		cfg.Columns = *columns
	}
	if *render {
		cfg.RenderMaze = true
	}
	if *verbose {
		cfg.Verbose = true
	}
	if *cohortSize > 0 {
		cfg.CohortSize = *cohortSize
	}
	if *statusAddr != "" {
		cfg.StatusAddr = *statusAddr
	}
	cfg.Seed = *seed

	var status *driver.StatusServer
	if cfg.StatusAddr != "" {
		status = driver.NewStatusServer(cfg.StatusAddr)
		go func() {
			if err := status.Start(); err != nil {
				fmt.Fprintln(os.Stderr, "status server:", err)
			}
		}()
	}

	if err := driver.Run(cfg, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
