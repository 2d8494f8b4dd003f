package mstlib

import (
	"math/rand"
	"sort"
	"testing"
)

func TestMergeSortOrdersByWeight(t *testing.T) {
	edges := []Edge{
		{Weight: 5}, {Weight: 1}, {Weight: 4}, {Weight: 2}, {Weight: 3},
	}
	mergeSort(edges, 0, len(edges)-1)
	for i := 1; i < len(edges); i++ {
		if edges[i-1].Weight > edges[i].Weight {
			t.Fatalf("not sorted at %d: %v", i, edges)
		}
	}
}

func TestMergeSortSingleAndEmptyRanges(t *testing.T) {
	edges := []Edge{{Weight: 1}}
	mergeSort(edges, 0, 0)
	if edges[0].Weight != 1 {
		t.Fatalf("single-element sort mutated the element: %v", edges)
	}

	empty := []Edge{}
	mergeSort(empty, 0, -1)
	if len(empty) != 0 {
		t.Fatalf("empty-range sort changed the slice: %v", empty)
	}
}

func TestMergeSortMatchesStdlibOnRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 200
	edges := make([]Edge, n)
	for i := range edges {
		edges[i] = Edge{From: i, To: i + 1, Weight: rng.Intn(1000)}
	}

	want := make([]Edge, n)
	copy(want, edges)
	sort.Slice(want, func(i, j int) bool { return want[i].Weight < want[j].Weight })

	mergeSort(edges, 0, n-1)
	for i := range edges {
		if edges[i].Weight != want[i].Weight {
			t.Fatalf("position %d: got weight %d, want %d", i, edges[i].Weight, want[i].Weight)
		}
	}
}

func TestMergeSortIsIdempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	n := 64
	edges := make([]Edge, n)
	for i := range edges {
		edges[i] = Edge{Weight: rng.Intn(50)}
	}

	mergeSort(edges, 0, n-1)
	once := make([]Edge, n)
	copy(once, edges)

	mergeSort(edges, 0, n-1)
	for i := range edges {
		if edges[i] != once[i] {
			t.Fatalf("second sort changed position %d: %v vs %v", i, edges[i], once[i])
		}
	}
}
