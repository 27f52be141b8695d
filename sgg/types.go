// Package sgg implements the compressed single-genome graph: an
// edge-induced two-sided subgraph with every degree-2 chain contracted into
// a weighted macro-edge plus a prefix-sum lookup table for intra-chain
// distance queries.
package sgg

import (
	"errors"

	"github.com/jurikuronen/pangwes/graph"
)

// ErrEmptyGraph is returned when compression yields zero compressed nodes,
// the "construction failure" case: a single genome graph must carry at
// least one node to be usable downstream.
var ErrEmptyGraph = errors.New("sgg: compressed graph has zero nodes")

// Path is a maximal degree-2 chain contracted into a macro-edge. Prefix[i]
// is the cumulative distance from Start to the i-th node walked along the
// chain; Prefix[len(Prefix)-1] is the total chain length, i.e. the weight
// of the edge (Start, End) in the compressed graph.
type Path struct {
	Start, End int64
	Prefix     []float64
}

// DistanceToStart returns the distance from the path's start node to the
// interior node at position pos.
func (p Path) DistanceToStart(pos int64) float64 { return p.Prefix[pos] }

// DistanceToEnd returns the distance from the interior node at position pos
// to the path's end node.
func (p Path) DistanceToEnd(pos int64) float64 {
	return p.Prefix[len(p.Prefix)-1] - p.Prefix[pos]
}

// DistanceInPath returns the distance between two interior nodes on the
// same path.
func (p Path) DistanceInPath(posA, posB int64) float64 {
	d := p.Prefix[posA] - p.Prefix[posB]
	if d < 0 {
		return -d
	}
	return d
}

// NodeRef locates an original port within the compressed graph: either it
// is absent from this SGG entirely, it survived as its own compressed node
// (OnPath == false, Compressed is its id), or it is interior to a
// contracted chain (OnPath == true, PathIdx/Pos locate it within Paths).
type NodeRef struct {
	Present    bool
	OnPath     bool
	PathIdx    int64
	Pos        int64
	Compressed int64
}

// SGG is a compressed single-genome graph: a compact Graph over contracted
// node ids, the chains that were contracted to reach it, and a lookup from
// every original port to its place in the compressed structure.
type SGG struct {
	Base    *graph.Graph
	Paths   []Path
	NodeMap []NodeRef
}

// ContainsOriginal reports whether original port p is part of this SGG.
func (s *SGG) ContainsOriginal(p int64) bool {
	return p >= 0 && p < int64(len(s.NodeMap)) && s.NodeMap[p].Present
}
