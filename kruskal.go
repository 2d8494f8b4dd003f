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

package mstlib

import (
	"sync"

	"github.com/flxj/mstlib/cohort"
)

// Kruskal runs Kruskal's algorithm across envs: the edge list (only
// meaningful on rank 0) is sorted by the distributed merge-sort of
// spec §4.6, then rank 0 greedily unions edges in sorted order. Other
// ranks contribute no output (spec §4.7).
func Kruskal(envs []cohort.Environment, graph *WeightedGraph) ([]Edge, error) {
	var (
		wg      sync.WaitGroup
		results = make([][]Edge, len(envs))
		errs    = make([]error, len(envs))
	)
	for i, env := range envs {
		wg.Add(1)
		go func(i int, env cohort.Environment) {
			defer wg.Done()
			var edges []Edge
			if env.Rank() == 0 {
				edges = graph.Edges
			}
			sorted, err := distributedSort(env, edges)
			results[i] = sorted
			errs[i] = err
		}(i, env)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	sorted := results[0]
	uf := NewUnionFind(graph.V)
	target := graph.V - 1
	if target < 0 {
		target = 0
	}
	mst := make([]Edge, 0, target)

	// The source's loop guard is the disjunction
	// `edgesMST < V-1 || currentEdge < E` (spec §9): on a connected
	// graph the two conjuncts agree, but on a disconnected graph the
	// first disjunct alone would keep the loop alive forever. Go has
	// no equivalent of reading past the end of the source's C array,
	// so instead of hanging we signal ErrDisconnected once the sorted
	// list is exhausted without having emitted V-1 edges.
	edgesMST, currentEdge := 0, 0
	for edgesMST < target && currentEdge < len(sorted) {
		e := sorted[currentEdge]
		currentEdge++
		if uf.Union(e.From, e.To) {
			mst = append(mst, e)
			edgesMST++
		}
	}
	if edgesMST < target {
		return nil, ErrDisconnected
	}

	return mst, nil
}
