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

// minHeap is the subset of BinaryHeap/FibHeap that the two Prim
// drivers need; both heaps already satisfy it.
type minHeap interface {
	Push(vertex, via, weight int)
	Decrease(vertex, via, weight int)
	Pop() (BinaryHeapEntry, bool)
	Len() int
}

// PrimBinary runs Prim's algorithm using the indexed binary min-heap.
func PrimBinary(graph *WeightedGraph) ([]Edge, error) {
	return prim(graph, NewBinaryHeap(graph.V))
}

// PrimFibonacci runs Prim's algorithm using the indexed Fibonacci
// min-heap.
func PrimFibonacci(graph *WeightedGraph) ([]Edge, error) {
	return prim(graph, NewFibHeap(graph.V))
}

// prim is sequential and runs on a single rank; the cohort has no
// role in either Prim variant (spec §4.8 — other ranks idle).
func prim(graph *WeightedGraph, h minHeap) ([]Edge, error) {
	if graph.V == 0 {
		return nil, nil
	}
	al := BuildAdjacencyList(graph)

	for v := 0; v < graph.V; v++ {
		h.Push(v, infiniteWeight, infiniteWeight)
	}
	h.Decrease(0, 0, 0)

	mst := make([]Edge, 0, graph.V-1)

	root, ok := h.Pop()
	if !ok {
		return mst, nil
	}
	relax(al, h, root.Vertex)

	for h.Len() > 0 {
		next, ok := h.Pop()
		if !ok {
			break
		}
		mst = append(mst, Edge{From: next.Vertex, To: next.Via, Weight: next.Weight})
		relax(al, h, next.Vertex)
	}

	if len(mst) < graph.V-1 {
		return nil, ErrDisconnected
	}
	return mst, nil
}

// relax decreases every neighbour of v that the heap still holds.
func relax(al *AdjacencyList, h minHeap, v int) {
	for _, nb := range al.Neighbours(v) {
		h.Decrease(nb.to, v, nb.weight)
	}
}
