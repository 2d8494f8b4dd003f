package mstlib

// Shared literal test graphs (spec §8 scenarios), used across the
// Kruskal/Prim/Borůvka test files to check weight-minimality and
// cohort-size equivalence against the same inputs.

func triangleGraph(t testingT) *WeightedGraph {
	g, err := NewWeightedGraph(3, 3, []Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 2},
		{From: 0, To: 2, Weight: 3},
	})
	if err != nil {
		t.Fatalf("triangleGraph: %v", err)
	}
	return g
}

// grid2x3Graph builds the 2x3 grid of spec §8: vertices numbered
// row-major (v = i*3+j), edges (0,1),(1,2),(0,3),(1,4),(2,5),(3,4),(4,5)
// with the literal weight sequence [5,1,4,2,3,6,2]. The minimum
// spanning tree over this edge set drops (2,5) and (3,4) and weighs 14.
func grid2x3Graph(t testingT) *WeightedGraph {
	g, err := NewWeightedGraph(6, 7, []Edge{
		{From: 0, To: 1, Weight: 5},
		{From: 1, To: 2, Weight: 1},
		{From: 0, To: 3, Weight: 4},
		{From: 1, To: 4, Weight: 2},
		{From: 2, To: 5, Weight: 3},
		{From: 3, To: 4, Weight: 6},
		{From: 4, To: 5, Weight: 2},
	})
	if err != nil {
		t.Fatalf("grid2x3Graph: %v", err)
	}
	return g
}

// twoByTwoGridGraph is spec §8's 2x2 grid scenario: V=4, E=4, MST
// weight 6 (every edge is load-bearing except (1,3)).
func twoByTwoGridGraph(t testingT) *WeightedGraph {
	g, err := NewWeightedGraph(4, 4, []Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 2, To: 3, Weight: 2},
		{From: 0, To: 2, Weight: 3},
		{From: 1, To: 3, Weight: 4},
	})
	if err != nil {
		t.Fatalf("twoByTwoGridGraph: %v", err)
	}
	return g
}

func singleEdgeGraph(t testingT) *WeightedGraph {
	g, err := NewWeightedGraph(2, 1, []Edge{{From: 0, To: 1, Weight: 42}})
	if err != nil {
		t.Fatalf("singleEdgeGraph: %v", err)
	}
	return g
}

// equalWeightChainGraph is spec §8's equal-weight scenario: V=4, E=5,
// every edge weight 1, with two edges ((0,2) and (1,3)) redundant to
// exercise tie-break robustness. MST weight is 3 regardless of which
// spanning subset an algorithm's tie-break happens to pick.
func equalWeightChainGraph(t testingT) *WeightedGraph {
	g, err := NewWeightedGraph(4, 5, []Edge{
		{From: 0, To: 1, Weight: 1},
		{From: 1, To: 2, Weight: 1},
		{From: 2, To: 3, Weight: 1},
		{From: 0, To: 2, Weight: 1},
		{From: 1, To: 3, Weight: 1},
	})
	if err != nil {
		t.Fatalf("equalWeightChainGraph: %v", err)
	}
	return g
}

// testingT is the subset of *testing.T these helpers need, so they
// can be called from any _test.go file in the package.
type testingT interface {
	Fatalf(format string, args ...interface{})
}
