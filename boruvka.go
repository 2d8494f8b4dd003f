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
	"math/bits"
	"sync"

	"github.com/flxj/mstlib/cohort"
)

// bestEdge is one slot of the per-vertex "best edge leaving my current
// component" table (spec §4.9).
type bestEdge struct {
	from, to, weight int
}

// Boruvka runs Borůvka's algorithm across envs. The edge list (only
// meaningful on rank 0) is scattered once; every rank then maintains
// its own forest over V and repeatedly elects each component's
// cheapest outgoing edge until V-1 edges have been unioned or the
// phase budget of ceil(log2 V) is exhausted.
func Boruvka(envs []cohort.Environment, graph *WeightedGraph) ([]Edge, error) {
	var (
		wg      sync.WaitGroup
		results = make([][]Edge, len(envs))
		errs    = make([]error, len(envs))
	)
	for i, env := range envs {
		wg.Add(1)
		go func(i int, env cohort.Environment) {
			defer wg.Done()
			var mst []Edge
			var err error
			if env.Rank() == 0 {
				mst, err = boruvkaRank(env, graph.V, graph.Edges)
			} else {
				mst, err = boruvkaRank(env, graph.V, nil)
			}
			results[i] = mst
			errs[i] = err
		}(i, env)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results[0], nil
}

func boruvkaRank(env cohort.Environment, v int, edges []Edge) ([]Edge, error) {
	rank, size := env.Rank(), env.Size()

	vBuf := env.Broadcast(0, encodeCount(v))
	v = int(decodeInts(vBuf)[0])
	eCount := len(edges)
	eBuf := env.Broadcast(0, encodeCount(eCount))
	eCount = int(decodeInts(eBuf)[0])

	if err := checkTopology(eCount, size); err != nil {
		return nil, err
	}

	c := chunkSize(eCount, size)
	var flat []byte
	if rank == 0 {
		flat = encodeEdges(edges)
	}
	chunk := env.Scatter(0, flat, c*EdgeFields*8)
	local := decodeEdges(chunk)
	if rank == size-1 && c != 0 && eCount%c != 0 && len(local) > eCount%c {
		local = local[:eCount%c]
	}

	uf := NewUnionFind(v)
	target := v - 1
	if target < 0 {
		target = 0
	}

	var mst []Edge
	if rank == 0 {
		mst = make([]Edge, 0, target)
	}

	phases := 0
	if v > 1 {
		phases = bits.Len(uint(v - 1))
	}

	edgesMST := 0
	for p := 0; edgesMST < target && p < phases; p++ {
		best := make([]bestEdge, v)
		for i := range best {
			best[i] = bestEdge{weight: infiniteWeight}
		}

		// local per-component cheapest-edge election (spec §4.9 step 2).
		for _, e := range local {
			ru, rv := uf.Find(e.From), uf.Find(e.To)
			if ru == rv {
				continue
			}
			if e.Weight < best[ru].weight {
				best[ru] = bestEdge{from: e.From, to: e.To, weight: e.Weight}
			}
			if e.Weight < best[rv].weight {
				best[rv] = bestEdge{from: e.From, to: e.To, weight: e.Weight}
			}
		}

		combined, err := treeReduceBest(env, best)
		if err != nil {
			return nil, err
		}

		for _, be := range combined {
			if be.weight == infiniteWeight {
				continue
			}
			if uf.Union(be.from, be.to) {
				edgesMST++
				if rank == 0 {
					mst = append(mst, Edge{From: be.from, To: be.to, Weight: be.weight})
				}
			}
		}
	}

	if rank != 0 {
		return nil, nil
	}
	if edgesMST < target {
		return nil, ErrDisconnected
	}
	return mst, nil
}

// treeReduceBest combines every rank's best-edge table slot-wise
// (lower weight wins) via the tree-reduction pattern of spec §4.6/
// §4.9, then broadcasts the fully combined table from rank 0.
func treeReduceBest(env cohort.Environment, local []bestEdge) ([]bestEdge, error) {
	rank, size := env.Rank(), env.Size()

	for step := 1; step < size; step *= 2 {
		if rank%(2*step) == 0 {
			partner := rank + step
			if partner < size {
				incoming := decodeBestTable(env.Recv(partner))
				for i := range local {
					if incoming[i].weight < local[i].weight {
						local[i] = incoming[i]
					}
				}
			}
		} else if rank%step == 0 {
			partner := rank - step
			env.Send(partner, encodeBestTable(local))
			break
		}
	}

	buf := env.Broadcast(0, encodeBestTable(local))
	return decodeBestTable(buf), nil
}

func encodeBestTable(table []bestEdge) []byte {
	flat := make([]int, 0, 3*len(table))
	for _, be := range table {
		flat = append(flat, be.from, be.to, be.weight)
	}
	return encodeInts(flat)
}

func decodeBestTable(buf []byte) []bestEdge {
	flat := decodeInts(buf)
	table := make([]bestEdge, len(flat)/3)
	for i := range table {
		table[i] = bestEdge{from: flat[i*3], to: flat[i*3+1], weight: flat[i*3+2]}
	}
	return table
}
