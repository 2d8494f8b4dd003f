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

// adjacencyEntry is one (neighbour, weight) pair in a vertex's list.
type adjacencyEntry struct {
	to     int
	weight int
}

// adjacencyBucket is a growable per-vertex sequence of entries. It
// starts at capacity 4 and doubles on overflow, mirroring the source's
// two independent slot-vs-capacity checks (spec §9): growth of the
// "to" bucket and the "from" bucket are decided separately, each time
// an edge is pushed.
type adjacencyBucket struct {
	entries []adjacencyEntry
}

func newAdjacencyBucket() *adjacencyBucket {
	return &adjacencyBucket{entries: make([]adjacencyEntry, 0, 4)}
}

func (b *adjacencyBucket) append(to, weight int) {
	if len(b.entries) == cap(b.entries) {
		grown := make([]adjacencyEntry, len(b.entries), 2*cap(b.entries))
		copy(grown, b.entries)
		b.entries = grown
	}
	b.entries = append(b.entries, adjacencyEntry{to: to, weight: weight})
}

// AdjacencyList is the adjacency-list representation used by both Prim
// variants. Iteration order within a bucket is insertion order; MST
// algorithms must not depend on any finer order (spec §4.2).
type AdjacencyList struct {
	buckets []*adjacencyBucket
}

// BuildAdjacencyList allocates V empty buckets and pushes every edge
// of graph into both endpoints' buckets.
func BuildAdjacencyList(graph *WeightedGraph) *AdjacencyList {
	al := &AdjacencyList{buckets: make([]*adjacencyBucket, graph.V)}
	for i := range al.buckets {
		al.buckets[i] = newAdjacencyBucket()
	}
	for _, e := range graph.Edges {
		al.Push(e.From, e.To, e.Weight)
	}
	return al
}

// Push records one undirected edge (u,v,w): it appends (v,w) to u's
// bucket and (u,w) to v's bucket. One call per input edge.
func (al *AdjacencyList) Push(u, v, w int) {
	al.buckets[u].append(v, w)
	al.buckets[v].append(u, w)
}

// Neighbours returns the (neighbour, weight) pairs of vertex u in
// insertion order.
func (al *AdjacencyList) Neighbours(u int) []adjacencyEntry {
	return al.buckets[u].entries
}

// Order returns the number of vertices the list was built over.
func (al *AdjacencyList) Order() int {
	return len(al.buckets)
}
