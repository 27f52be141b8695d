package graphbuilder_test

import (
	"math"
	"strings"
	"testing"

	"github.com/jurikuronen/pangwes/config"
	"github.com/jurikuronen/pangwes/graph"
	"github.com/jurikuronen/pangwes/graphbuilder"
)

func TestBuildOrdinaryPathOfThree(t *testing.T) {
	r := strings.NewReader("0 1 2\n1 2 3\n")
	g, err := graphbuilder.BuildOrdinary(r, config.New())
	if err != nil {
		t.Fatal(err)
	}
	d := g.Distance([]graph.Source{{Port: 0, Dist: 0}}, []int64{2}, math.MaxFloat64)[0]
	if d != 5 {
		t.Fatalf("distance(0,2) = %v, want 5", d)
	}
}

func TestBuildOrdinaryDefaultWeight(t *testing.T) {
	r := strings.NewReader("0 1\n")
	g, err := graphbuilder.BuildOrdinary(r, config.New())
	if err != nil {
		t.Fatal(err)
	}
	if w, ok := g.Neighbors(0)[1]; !ok || w != 1 {
		t.Fatalf("default weight = %v, ok=%v, want 1", w, ok)
	}
}

func TestBuildCDBGTwoSidedSelfEdge(t *testing.T) {
	unitigs := strings.NewReader("0 AAAAAAAAAA\n") // length 10
	edges := strings.NewReader("")
	cfg := config.New(config.WithKmerLength(3))
	g, err := graphbuilder.BuildCDBG(unitigs, edges, cfg)
	if err != nil {
		t.Fatal(err)
	}
	d := g.Distance([]graph.Source{{Port: g.Left(0), Dist: 0}}, []int64{g.Right(0)}, math.MaxFloat64)[0]
	if d != 7 {
		t.Fatalf("self-edge distance = %v, want 7", d)
	}
}

func TestBuildCDBGRejectsNegativeSelfWeight(t *testing.T) {
	unitigs := strings.NewReader("0 AA\n") // length 2, k=5 -> negative
	edges := strings.NewReader("")
	cfg := config.New(config.WithKmerLength(5))
	if _, err := graphbuilder.BuildCDBG(unitigs, edges, cfg); err == nil {
		t.Fatal("expected error for negative self-weight")
	}
}

func TestBuildCDBGEdgesSkipsNonZeroOverlap(t *testing.T) {
	unitigs := strings.NewReader("0 AAAAAAAAAA\n1 AAAAAAAAAA\n")
	edges := strings.NewReader("0 1 FR 5\n") // overlap != 0, discarded
	cfg := config.New(config.WithKmerLength(3))
	g, err := graphbuilder.BuildCDBG(unitigs, edges, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if g.HasEdge(g.Right(0), g.Right(1)) {
		t.Fatal("non-zero overlap row should have been discarded")
	}
}

func TestBuildCDBGEdgesKeepsZeroOverlap(t *testing.T) {
	unitigs := strings.NewReader("0 AAAAAAAAAA\n1 AAAAAAAAAA\n")
	edges := strings.NewReader("0 1 FR 0\n")
	cfg := config.New(config.WithKmerLength(3))
	g, err := graphbuilder.BuildCDBG(unitigs, edges, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !g.HasEdge(g.Right(0), g.Right(1)) {
		t.Fatal("zero-overlap row should have been kept")
	}
}
