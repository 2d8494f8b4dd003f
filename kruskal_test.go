package mstlib

import (
	"testing"

	"github.com/flxj/mstlib/cohort"
)

func TestKruskalTriangle(t *testing.T) {
	g := triangleGraph(t)
	envs := cohort.NewLocalCohort(1)
	mst, err := Kruskal(envs, g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mst) != 2 {
		t.Fatalf("got %d edges, want 2", len(mst))
	}
	if TotalWeight(mst) != 3 {
		t.Fatalf("got weight %d, want 3", TotalWeight(mst))
	}
}

func TestKruskalCohortEquivalence(t *testing.T) {
	g := grid2x3Graph(t)
	var weights []uint64
	for _, size := range []int{1, 2, 3} {
		envs := cohort.NewLocalCohort(size)
		mst, err := Kruskal(envs, g)
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

func TestKruskalGrid2x3Weight(t *testing.T) {
	g := grid2x3Graph(t)
	envs := cohort.NewLocalCohort(1)
	mst, err := Kruskal(envs, g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if TotalWeight(mst) != 14 {
		t.Fatalf("got weight %d, want 14", TotalWeight(mst))
	}
}

func TestKruskalTwoByTwoGrid(t *testing.T) {
	g := twoByTwoGridGraph(t)
	envs := cohort.NewLocalCohort(1)
	mst, err := Kruskal(envs, g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if TotalWeight(mst) != 6 {
		t.Fatalf("got weight %d, want 6", TotalWeight(mst))
	}
}

func TestKruskalEqualWeightChain(t *testing.T) {
	g := equalWeightChainGraph(t)
	for _, size := range []int{1, 2, 3} {
		envs := cohort.NewLocalCohort(size)
		mst, err := Kruskal(envs, g)
		if err != nil {
			t.Fatalf("cohort size %d: unexpected error: %v", size, err)
		}
		if len(mst) != 3 || TotalWeight(mst) != 3 {
			t.Fatalf("cohort size %d: got %v (weight %d), want 3 edges of total weight 3", size, mst, TotalWeight(mst))
		}
	}
}

func TestKruskalSingleEdge(t *testing.T) {
	g := singleEdgeGraph(t)
	envs := cohort.NewLocalCohort(1)
	mst, err := Kruskal(envs, g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mst) != 1 || mst[0].Weight != 42 {
		t.Fatalf("got %v, want a single edge of weight 42", mst)
	}
}

func TestKruskalDisconnectedGraphSignalsError(t *testing.T) {
	// Two isolated vertex pairs: no edge connects {0,1} to {2,3}.
	g, err := NewWeightedGraph(4, 2, []Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: 1},
	})
	if err != nil {
		t.Fatalf("unexpected error building graph: %v", err)
	}
	envs := cohort.NewLocalCohort(1)
	if _, err := Kruskal(envs, g); err == nil {
		t.Fatal("expected an error for a disconnected graph")
	}
}

func TestKruskalAcyclicAndSpanning(t *testing.T) {
	g := grid2x3Graph(t)
	envs := cohort.NewLocalCohort(2)
	mst, err := Kruskal(envs, g)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	uf := NewUnionFind(g.V)
	for _, e := range mst {
		if !uf.Union(e.From, e.To) {
			t.Fatalf("edge %v closes a cycle: MST is not acyclic", e)
		}
	}
	root := uf.Find(0)
	for v := 1; v < g.V; v++ {
		if uf.Find(v) != root {
			t.Fatalf("vertex %d is not spanned by the MST", v)
		}
	}
}
