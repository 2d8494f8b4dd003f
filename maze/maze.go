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

// Package maze is the "convenience generator" spec §1 places outside
// THE CORE: it builds a 2-D grid graph with randomised edge weights
// and can render a graph (or an MST over one) back as an ASCII grid.
package maze

import (
	"math/rand"

	"github.com/flxj/mstlib"
)

// MaxRandomWeight bounds the randomised edge weight, mirroring the
// source's MAXIMUM_RANDOM constant.
const MaxRandomWeight = 100

// Generate builds a rows x columns grid graph: vertex (i,j) is
// numbered i*columns+j and connects to its right neighbour (i,j+1)
// and its down neighbour (i+1,j) when they exist, each with a weight
// drawn from rng in [0, MaxRandomWeight). rng is injectable so tests
// can reproduce a fixed maze deterministically.
func Generate(rows, columns int, rng *rand.Rand) (*mstlib.WeightedGraph, error) {
	vertices := rows * columns
	edgeCount := vertices*2 - rows - columns
	if edgeCount < 0 {
		edgeCount = 0
	}
	edges := make([]mstlib.Edge, 0, edgeCount)

	for i := 0; i < rows; i++ {
		for j := 0; j < columns; j++ {
			vertex := i*columns + j
			if j != columns-1 {
				edges = append(edges, mstlib.Edge{From: vertex, To: vertex + 1, Weight: rng.Intn(MaxRandomWeight)})
			}
			if i != rows-1 {
				edges = append(edges, mstlib.Edge{From: vertex, To: vertex + columns, Weight: rng.Intn(MaxRandomWeight)})
			}
		}
	}

	return mstlib.NewWeightedGraph(vertices, len(edges), edges)
}
