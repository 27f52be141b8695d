package graph

import "math"

// AddNode appends one empty-adjacency port and returns its id.
func (g *Graph) AddNode() int64 {
	id := int64(len(g.adj))
	g.adj = append(g.adj, make(map[int64]float64))
	return id
}

// Resize grows the graph to exactly n ports, appending empty adjacencies.
// Resize never shrinks an already-larger graph.
func (g *Graph) Resize(n int64) {
	for int64(len(g.adj)) < n {
		g.adj = append(g.adj, make(map[int64]float64))
	}
}

// Left returns the canonical (left) port of logical vertex u.
func (g *Graph) Left(u int64) int64 { return 2 * u }

// Right returns the reverse (right) port of logical vertex u.
func (g *Graph) Right(u int64) int64 { return 2*u + 1 }

// OtherSide returns the port on the opposite side of p's logical vertex.
func (g *Graph) OtherSide(p int64) int64 { return p ^ 1 }

// AddTwoSidedNode appends a logical vertex's two ports, connects them with a
// self-edge of the given weight, and returns (left, right).
func (g *Graph) AddTwoSidedNode(selfWeight float64) (int64, int64) {
	left := g.AddNode()
	right := g.AddNode()
	g.adj[left][right] = selfWeight
	g.adj[right][left] = selfWeight
	u := left / 2
	g.selfWeights[u] = selfWeight
	return left, right
}

// SelfWeight returns the intrinsic self-edge weight of logical vertex u in a
// two-sided graph.
func (g *Graph) SelfWeight(u int64) (float64, bool) {
	w, ok := g.selfWeights[u]
	return w, ok
}

// SetSelfEdge installs the self-edge between logical vertex u's two ports in
// an already-sized two-sided graph. Unlike AddTwoSidedNode, it does not
// allocate new ports; it indexes directly into 2u/2u+1, which is what
// builders that already know the final vertex count need.
func (g *Graph) SetSelfEdge(u int64, weight float64) error {
	if !g.twoSided {
		return ErrNotTwoSided
	}
	left, right := g.Left(u), g.Right(u)
	if right < 0 || right >= g.Size() {
		return outOfRangeErrf("SetSelfEdge", u)
	}
	g.adj[left][right] = weight
	g.adj[right][left] = weight
	g.selfWeights[u] = weight
	return nil
}

// AddEdge adds an undirected edge between v and w. A self-loop (v == w) is
// silently ignored. Adding an edge that already exists keeps the minimum of
// the old and new weight on both endpoints.
func (g *Graph) AddEdge(v, w int64, weight float64) error {
	if v == w {
		return nil
	}
	if v < 0 || v >= g.Size() {
		return outOfRangeErrf("AddEdge", v)
	}
	if w < 0 || w >= g.Size() {
		return outOfRangeErrf("AddEdge", w)
	}
	if weight < 0 {
		return ErrNegativeWeight
	}
	if cur, ok := g.adj[v][w]; ok {
		weight = math.Min(cur, weight)
	}
	g.adj[v][w] = weight
	g.adj[w][v] = weight
	return nil
}

// HasEdge reports whether v and w are directly connected.
func (g *Graph) HasEdge(v, w int64) bool {
	if v < 0 || v >= g.Size() {
		return false
	}
	_, ok := g.adj[v][w]
	return ok
}

// RemoveEdge removes the (v, w) edge from both endpoints, if present.
func (g *Graph) RemoveEdge(v, w int64) error {
	if v < 0 || v >= g.Size() {
		return outOfRangeErrf("RemoveEdge", v)
	}
	if w < 0 || w >= g.Size() {
		return outOfRangeErrf("RemoveEdge", w)
	}
	delete(g.adj[v], w)
	delete(g.adj[w], v)
	return nil
}

// DisconnectNode removes every edge incident to v, leaving it isolated.
func (g *Graph) DisconnectNode(v int64) error {
	if v < 0 || v >= g.Size() {
		return outOfRangeErrf("DisconnectNode", v)
	}
	for w := range g.adj[v] {
		delete(g.adj[w], v)
	}
	g.adj[v] = make(map[int64]float64)
	return nil
}

// Degree returns the number of edges incident to v.
func (g *Graph) Degree(v int64) int {
	if v < 0 || v >= g.Size() {
		return 0
	}
	return len(g.adj[v])
}

// Neighbors returns the (read-only) adjacency map of v. Callers must not
// mutate the returned map.
func (g *Graph) Neighbors(v int64) map[int64]float64 {
	if v < 0 || v >= g.Size() {
		return nil
	}
	return g.adj[v]
}

// Contains reports whether port v is a valid, allocated port in this graph.
func (g *Graph) Contains(v int64) bool {
	return v >= 0 && v < g.Size()
}
