package graph_test

import (
	"math"
	"testing"

	"github.com/jurikuronen/pangwes/graph"
)

func TestAddEdgeSymmetryAndMinMerge(t *testing.T) {
	g := graph.New()
	g.Resize(2)
	if err := g.AddEdge(0, 1, 5); err != nil {
		t.Fatal(err)
	}
	if err := g.AddEdge(0, 1, 3); err != nil {
		t.Fatal(err)
	}
	if w, ok := g.Neighbors(0)[1]; !ok || w != 3 {
		t.Fatalf("forward weight = %v, ok=%v, want 3", w, ok)
	}
	if w, ok := g.Neighbors(1)[0]; !ok || w != 3 {
		t.Fatalf("reverse weight = %v, ok=%v, want 3", w, ok)
	}
}

func TestAddEdgeSelfLoopNoOp(t *testing.T) {
	g := graph.New()
	g.Resize(1)
	if err := g.AddEdge(0, 0, 7); err != nil {
		t.Fatal(err)
	}
	if g.Degree(0) != 0 {
		t.Fatalf("degree = %d, want 0", g.Degree(0))
	}
}

func TestPathOfThreeDistances(t *testing.T) {
	g := graph.New()
	g.Resize(3)
	mustAdd(t, g, 0, 1, 2)
	mustAdd(t, g, 1, 2, 3)

	got := g.Distance([]graph.Source{{Port: 0, Dist: 0}}, []int64{2, 0, 1}, math.MaxFloat64)
	want := []float64{5, 0, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("distance[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	// distance(2, 1) should equal distance(1, 2): symmetry.
	d21 := g.Distance([]graph.Source{{Port: 2, Dist: 0}}, []int64{1}, math.MaxFloat64)[0]
	if d21 != 3 {
		t.Fatalf("distance(2,1) = %v, want 3", d21)
	}
}

func TestTwoSidedSelfEdgePreservation(t *testing.T) {
	g := graph.New(graph.WithTwoSided(true))
	left, right := g.AddTwoSidedNode(7)
	d := g.Distance([]graph.Source{{Port: left, Dist: 0}}, []int64{right}, math.MaxFloat64)[0]
	if d != 7 {
		t.Fatalf("self-edge distance = %v, want 7 (isolated vertex: equality must hold)", d)
	}
	w, ok := g.SelfWeight(0)
	if !ok || w != 7 {
		t.Fatalf("SelfWeight = %v, ok=%v, want 7", w, ok)
	}
}

func TestMaxDistanceCap(t *testing.T) {
	g := graph.New()
	g.Resize(2)
	mustAdd(t, g, 0, 1, 100)
	d := g.Distance([]graph.Source{{Port: 0, Dist: 0}}, []int64{1}, 10)[0]
	if d != 10 {
		t.Fatalf("capped distance = %v, want 10 (cap sentinel)", d)
	}
}

func mustAdd(t *testing.T, g *graph.Graph, v, w int64, weight float64) {
	t.Helper()
	if err := g.AddEdge(v, w, weight); err != nil {
		t.Fatal(err)
	}
}

func allPorts(n int) []int64 {
	ports := make([]int64, n)
	for i := range ports {
		ports[i] = int64(i)
	}
	return ports
}

func bellmanFord(n int, edges []struct {
	v, w   int64
	weight float64
}, src int64) []float64 {
	const inf = math.MaxFloat64
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = inf
	}
	dist[src] = 0
	for i := 0; i < n-1; i++ {
		for _, e := range edges {
			if dist[e.v]+e.weight < dist[e.w] {
				dist[e.w] = dist[e.v] + e.weight
			}
			if dist[e.w]+e.weight < dist[e.v] {
				dist[e.v] = dist[e.w] + e.weight
			}
		}
	}
	return dist
}
