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

import "math"

// infiniteWeight is the sentinel standing in for "unknown/unreached"
// edge weight (spec §9: any sufficiently large finite value behaves
// as +infinity under comparison with real weights).
const infiniteWeight = math.MaxInt32

// unset marks a vertex that is not currently present in a heap.
const unset = -1

// BinaryHeapEntry is one slot of the indexed binary min-heap: via is
// the neighbour through which the cheapest known edge reaches vertex.
type BinaryHeapEntry struct {
	Vertex int
	Via    int
	Weight int
}

// BinaryHeap is a dynamic-array, indexed min-heap ordered on Weight.
// positions[vertex] gives the entry's array index, or unset if the
// vertex has been popped or never inserted.
type BinaryHeap struct {
	entries   []BinaryHeapEntry
	positions []int
}

// NewBinaryHeap allocates an empty heap over n vertices.
func NewBinaryHeap(n int) *BinaryHeap {
	h := &BinaryHeap{
		entries:   make([]BinaryHeapEntry, 0, n),
		positions: make([]int, n),
	}
	for i := range h.positions {
		h.positions[i] = unset
	}
	return h
}

// Len reports the current number of entries in the heap.
func (h *BinaryHeap) Len() int {
	return len(h.entries)
}

// Push appends a new entry at the tail and sifts it up. Callers must
// not push a vertex already present in the heap.
func (h *BinaryHeap) Push(vertex, via, weight int) {
	idx := len(h.entries)
	h.entries = append(h.entries, BinaryHeapEntry{Vertex: vertex, Via: via, Weight: weight})
	h.positions[vertex] = idx
	h.siftUp(idx)
}

// Decrease lowers the weight of vertex's entry when it is still in
// the heap and the new weight strictly improves on the current one.
func (h *BinaryHeap) Decrease(vertex, via, weight int) {
	idx := h.positions[vertex]
	if idx == unset || weight >= h.entries[idx].Weight {
		return
	}
	h.entries[idx].Via = via
	h.entries[idx].Weight = weight
	h.siftUp(idx)
}

// Pop removes and returns the minimum-weight entry, marking its
// vertex's position unset.
func (h *BinaryHeap) Pop() (BinaryHeapEntry, bool) {
	if len(h.entries) == 0 {
		return BinaryHeapEntry{}, false
	}
	top := h.entries[0]
	h.positions[top.Vertex] = unset

	last := len(h.entries) - 1
	h.entries[0] = h.entries[last]
	h.entries = h.entries[:last]
	if len(h.entries) > 0 {
		h.positions[h.entries[0].Vertex] = 0
		h.siftDown(0)
	}
	return top, true
}

func (h *BinaryHeap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.entries[parent].Weight <= h.entries[i].Weight {
			return
		}
		h.swap(parent, i)
		i = parent
	}
}

// siftDown moves element i down; when both children are strictly
// smaller it goes toward the smaller child, and on a tie it prefers
// the left child (spec §4.3).
func (h *BinaryHeap) siftDown(i int) {
	n := len(h.entries)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.entries[left].Weight < h.entries[smallest].Weight {
			smallest = left
		}
		if right < n && h.entries[right].Weight < h.entries[smallest].Weight {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.swap(i, smallest)
		i = smallest
	}
}

func (h *BinaryHeap) swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
	h.positions[h.entries[i].Vertex] = i
	h.positions[h.entries[j].Vertex] = j
}
