// Package graph implements the port-indexed adjacency structure at the
// bottom of the dependency chain: an undirected, non-negative-weighted graph
// with an optional "two-sided" mode that doubles every logical vertex into a
// pair of ports joined by an intrinsic self-edge.
package graph

import (
	"errors"
	"fmt"
)

var (
	// ErrVertexOutOfRange is returned when a port id is not within [0, Size()).
	ErrVertexOutOfRange = errors.New("graph: vertex out of range")
	// ErrNegativeWeight is returned when a caller attempts to add an edge
	// with a negative weight; the core never produces these itself.
	ErrNegativeWeight = errors.New("graph: negative edge weight")
	// ErrNotTwoSided is returned by two-sided-only operations on a plain graph.
	ErrNotTwoSided = errors.New("graph: not a two-sided graph")
)

func outOfRangeErrf(op string, v int64) error {
	return fmt.Errorf("%w: %s: vertex %d", ErrVertexOutOfRange, op, v)
}

// Graph holds an ordered-by-id adjacency of non-negative weighted edges.
// Edges are stored on both endpoints; the two directions are kept in sync by
// every mutating method, never by the caller.
type Graph struct {
	adj         []map[int64]float64
	selfWeights map[int64]float64 // logical vertex id -> self-edge weight; two-sided only
	oneBased    bool
	twoSided    bool
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithOneBased marks the graph's external ids as one-based; New still
// allocates and indexes zero-based ports, callers shift on ingestion.
func WithOneBased(v bool) Option {
	return func(g *Graph) { g.oneBased = v }
}

// WithTwoSided enables the two-sided vertex encoding used by compacted de
// Bruijn graphs: logical vertex u owns ports 2u (left) and 2u+1 (right).
func WithTwoSided(v bool) Option {
	return func(g *Graph) {
		g.twoSided = v
		if v && g.selfWeights == nil {
			g.selfWeights = make(map[int64]float64)
		}
	}
}

// New builds an empty Graph.
func New(opts ...Option) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// OneBased reports whether external ids for this graph are one-based.
func (g *Graph) OneBased() bool { return g.oneBased }

// TwoSided reports whether this graph uses the two-sided port encoding.
func (g *Graph) TwoSided() bool { return g.twoSided }

// Size returns the number of ports (for a two-sided graph, 2x the number of
// logical vertices).
func (g *Graph) Size() int64 { return int64(len(g.adj)) }

// TrueSize returns the number of logical vertices in a two-sided graph.
func (g *Graph) TrueSize() int64 {
	if !g.twoSided {
		return g.Size()
	}
	return g.Size() / 2
}
