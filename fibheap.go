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

// fibNode is one node of the Fibonacci heap. Nodes live in circular
// doubly-linked sibling lists; left/right are never nil — a solo node
// points to itself. degree equals the number of direct children.
type fibNode struct {
	vertex int
	via    int
	weight int
	marked bool
	degree int

	parent *fibNode
	child  *fibNode
	left   *fibNode
	right  *fibNode
}

func newFibNode(vertex, via, weight int) *fibNode {
	n := &fibNode{vertex: vertex, via: via, weight: weight}
	n.left, n.right = n, n
	return n
}

// FibHeap is an amortised-O(1)-decrease-key indexed min-priority
// queue over vertices, realised as a set of heap-ordered trees linked
// by a root list (spec §3/§4.4).
type FibHeap struct {
	size      int
	minimum   *fibNode
	positions []*fibNode
}

// NewFibHeap allocates an empty heap over n vertices.
func NewFibHeap(n int) *FibHeap {
	return &FibHeap{positions: make([]*fibNode, n)}
}

// Len reports the number of vertices currently in the heap.
func (h *FibHeap) Len() int {
	return h.size
}

// spliceIntoRootList inserts node n into the circular root list
// immediately to the left of ref, returning the (possibly unchanged)
// list anchor. A nil ref means the list is currently empty.
func spliceIntoRootList(ref, n *fibNode) *fibNode {
	if ref == nil {
		n.left, n.right = n, n
		return n
	}
	n.right = ref
	n.left = ref.left
	ref.left.right = n
	ref.left = n
	return ref
}

// removeFromList unlinks n from whatever circular list it is part of.
// It does not touch n.parent/n.child/n.marked.
func removeFromList(n *fibNode) {
	n.left.right = n.right
	n.right.left = n.left
	n.left, n.right = n, n
}

// insert splices node into the root list immediately left of the
// current minimum (spec §4.4 insert).
func (h *FibHeap) insert(n *fibNode) {
	h.minimum = spliceIntoRootList(h.minimum, n)
	if n.weight < h.minimum.weight {
		h.minimum = n
	}
}

// Push allocates a solo node for vertex and inserts it.
func (h *FibHeap) Push(vertex, via, weight int) {
	n := newFibNode(vertex, via, weight)
	h.positions[vertex] = n
	h.insert(n)
	h.size++
}

// Decrease lowers vertex's key when it is live in the heap and the
// new weight strictly improves on the current one.
func (h *FibHeap) Decrease(vertex, via, weight int) {
	n := h.positions[vertex]
	if n == nil || weight >= n.weight {
		return
	}
	n.via = via
	n.weight = weight

	if n.parent == nil {
		if n.weight < h.minimum.weight {
			h.minimum = n
		}
		return
	}
	if n.weight < n.parent.weight {
		parent := n.parent
		h.cut(n)
		h.cascadingCut(parent)
	}
}

// cut detaches node from its parent's child list and splices it into
// the root list, clearing its parent link and mark (spec §4.4 cut).
func (h *FibHeap) cut(node *fibNode) {
	parent := node.parent
	if parent != nil {
		parent.degree--
		if node.right == node {
			parent.child = nil
		} else {
			if parent.child == node {
				parent.child = node.right
			}
			removeFromList(node)
		}
	}
	node.parent = nil
	node.marked = false
	h.minimum = spliceIntoRootList(h.minimum, node)
	if node.weight < h.minimum.weight {
		h.minimum = node
	}
}

// cascadingCut propagates the cut upward through marked ancestors.
func (h *FibHeap) cascadingCut(node *fibNode) {
	if node.parent == nil {
		return
	}
	if !node.marked {
		node.marked = true
		return
	}
	parent := node.parent
	h.cut(node)
	h.cascadingCut(parent)
}

// link makes root the child of newParent. Callers guarantee
// newParent.weight <= root.weight.
func (h *FibHeap) link(root, newParent *fibNode) {
	removeFromList(root)
	root.parent = newParent
	root.marked = false
	newParent.child = spliceIntoRootList(newParent.child, root)
	newParent.degree++
}

// degreeTableSize returns the initial degree-table length for n nodes:
// 2*(floor(log2(n))+1)+1 slots, two more than the 2*floor(log2(n))+1
// that suffice (spec §4.4). consolidate grows the table if a degree
// ever reaches its end.
func degreeTableSize(n int) int {
	size := 1
	for k := n; k > 1; k >>= 1 {
		size++
	}
	return 2*size + 1
}

// Pop removes and returns the minimum entry, promoting its children to
// the root list and consolidating the remaining trees (spec §4.4 pop).
func (h *FibHeap) Pop() (BinaryHeapEntry, bool) {
	min := h.minimum
	if min == nil {
		return BinaryHeapEntry{}, false
	}

	if min.child != nil {
		// collect the child list before splicing any of them into the
		// root list: once spliced, a node's left/right point into the
		// root list, so the original circular child list can no
		// longer be walked mid-traversal.
		var children []*fibNode
		for n := min.child; ; {
			next := n.right
			children = append(children, n)
			if next == min.child {
				break
			}
			n = next
		}
		for _, n := range children {
			n.parent = nil
			h.minimum = spliceIntoRootList(h.minimum, n)
		}
	}

	if min.right == min {
		h.minimum = nil
	} else {
		h.minimum = min.right
		removeFromList(min)
		h.consolidate()
	}

	h.positions[min.vertex] = nil
	h.size--
	return BinaryHeapEntry{Vertex: min.vertex, Via: min.via, Weight: min.weight}, true
}

// consolidate walks the root list once, merging trees of equal degree
// until every root has a distinct degree, then re-elects the minimum.
// Ties are broken by the order in which a root is first visited: the
// earlier root keeps its identity and the later becomes its child
// (spec §4.4).
func (h *FibHeap) consolidate() {
	if h.minimum == nil {
		return
	}

	table := make([]*fibNode, degreeTableSize(h.size))

	var roots []*fibNode
	start := h.minimum
	for n := start; ; {
		next := n.right
		roots = append(roots, n)
		if next == start {
			break
		}
		n = next
	}

	for _, x := range roots {
		d := x.degree
		for d < len(table) && table[d] != nil {
			y := table[d]
			// on a weight tie the traversal-earlier root (already
			// resident in the table) keeps its identity as parent.
			if y.weight <= x.weight {
				x, y = y, x
			}
			h.link(y, x)
			table[d] = nil
			d = x.degree
		}
		if d >= len(table) {
			grown := make([]*fibNode, d+1)
			copy(grown, table)
			table = grown
		}
		table[d] = x
	}

	h.minimum = nil
	for _, x := range table {
		if x == nil {
			continue
		}
		x.left, x.right = x, x
		h.minimum = spliceIntoRootList(h.minimum, x)
		if x.weight < h.minimum.weight {
			h.minimum = x
		}
	}
}
