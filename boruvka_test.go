package mstlib

import (
	"testing"

	"github.com/flxj/mstlib/cohort"
)

func TestBoruvkaTriangle(t *testing.T) {
	g := triangleGraph(t)
	envs := cohort.NewLocalCohort(1)
	mst, err := Boruvka(envs, g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mst) != 2 || TotalWeight(mst) != 3 {
		t.Fatalf("got %v (weight %d), want 2 edges of total weight 3", mst, TotalWeight(mst))
	}
}

func TestBoruvkaCohortEquivalence(t *testing.T) {
	g := grid2x3Graph(t)
	var weights []uint64
	for _, size := range []int{1, 2, 3} {
		envs := cohort.NewLocalCohort(size)
		mst, err := Boruvka(envs, g)
		if err != nil {
			t.Fatalf("cohort size %d: unexpected error: %v", size, err)
		}
		if len(mst) != g.V-1 {
			t.Fatalf("cohort size %d: got %d edges, want %d", size, len(mst), g.V-1)
		}
		weights = append(weights, TotalWeight(mst))
	}
	for i := 1; i < len(weights); i++ {
		if weights[i] != weights[0] {
			t.Fatalf("cohort sizes disagree on MST weight: %v", weights)
		}
	}
}

func TestBoruvkaAgreesWithKruskalOnWeight(t *testing.T) {
	g := grid2x3Graph(t)

	kEnvs := cohort.NewLocalCohort(2)
	kMST, err := Kruskal(kEnvs, g)
	if err != nil {
		t.Fatalf("kruskal: unexpected error: %v", err)
	}

	bEnvs := cohort.NewLocalCohort(2)
	bMST, err := Boruvka(bEnvs, g)
	if err != nil {
		t.Fatalf("boruvka: unexpected error: %v", err)
	}

	if TotalWeight(kMST) != TotalWeight(bMST) {
		t.Fatalf("kruskal weight %d != boruvka weight %d", TotalWeight(kMST), TotalWeight(bMST))
	}
	if TotalWeight(bMST) != 14 {
		t.Fatalf("got weight %d, want 14", TotalWeight(bMST))
	}
}

func TestBoruvkaTwoByTwoGrid(t *testing.T) {
	g := twoByTwoGridGraph(t)
	envs := cohort.NewLocalCohort(1)
	mst, err := Boruvka(envs, g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if TotalWeight(mst) != 6 {
		t.Fatalf("got weight %d, want 6", TotalWeight(mst))
	}
}

func TestBoruvkaEqualWeightChain(t *testing.T) {
	g := equalWeightChainGraph(t)
	for _, size := range []int{1, 2, 3} {
		envs := cohort.NewLocalCohort(size)
		mst, err := Boruvka(envs, g)
		if err != nil {
			t.Fatalf("cohort size %d: unexpected error: %v", size, err)
		}
		if len(mst) != 3 || TotalWeight(mst) != 3 {
			t.Fatalf("cohort size %d: got %v (weight %d), want 3 edges of total weight 3", size, mst, TotalWeight(mst))
		}
	}
}

func TestBoruvkaDisconnectedGraphSignalsError(t *testing.T) {
	g, err := NewWeightedGraph(4, 2, []Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error building graph: %v", err)
	}
	envs := cohort.NewLocalCohort(1)
	if _, err := Boruvka(envs, g); err == nil {
		t.Fatal("expected an error for a disconnected graph")
	}
}

func TestBoruvkaSingleEdge(t *testing.T) {
	g := singleEdgeGraph(t)
	envs := cohort.NewLocalCohort(1)
	mst, err := Boruvka(envs, g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mst) != 1 || mst[0].Weight != 42 {
		t.Fatalf("got %v, want a single edge of weight 42", mst)
	}
}
