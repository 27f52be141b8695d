package graphbuilder

import (
	"io"

	"github.com/jurikuronen/pangwes/config"
	"github.com/jurikuronen/pangwes/graph"
)

// BuildCDBGSubgraph builds the edge-induced cdBG subgraph for a single
// genome from its own edges file, starting from an empty two-sided graph
// sized to just cover the highest port referenced. Before a real edge first
// touches either endpoint's logical vertex, that vertex's intrinsic
// self-weight is copied in from the base graph, preserving it even though
// only a fraction of the base graph's edges survive into the subgraph.
func BuildCDBGSubgraph(base *graph.Graph, edgesR io.Reader, cfg config.Config) (*graph.Graph, error) {
	links, err := parseCDBGLinks(edgesR, cfg)
	if err != nil {
		return nil, err
	}

	maxPort := int64(-1)
	for _, l := range links {
		if l.fromPort > maxPort {
			maxPort = l.fromPort
		}
		if l.toPort > maxPort {
			maxPort = l.toPort
		}
	}

	g := graph.New(graph.WithTwoSided(true), graph.WithOneBased(cfg.GraphsOneBased))
	if maxPort >= 0 {
		g.Resize((maxPort | 1) + 1)
	}

	ensureSelfEdge := func(port int64) error {
		u := port / 2
		if g.Degree(port) == 0 && g.Degree(g.OtherSide(port)) == 0 {
			weight, _ := base.SelfWeight(u)
			return g.SetSelfEdge(u, weight)
		}
		return nil
	}

	for _, l := range links {
		if err := ensureSelfEdge(l.fromPort); err != nil {
			return nil, err
		}
		if err := ensureSelfEdge(l.toPort); err != nil {
			return nil, err
		}
		if err := g.AddEdge(l.fromPort, l.toPort, 1.0); err != nil {
			return nil, err
		}
	}
	return g, nil
}
