package sgg

import "github.com/jurikuronen/pangwes/graph"

// frame is one pending DFS edge: the walk arrived at node carrying weight
// from the already-compressed parent.
type frame struct {
	parentOriginal   int64
	parentCompressed int64
	node             int64
	weight           float64
}

// Build compresses edge-induced two-sided subgraph h into an SGG by
// depth-first search: every degree-2 chain between branching or leaf nodes
// is contracted into a single macro-edge with an attached prefix-sum table.
func Build(h *graph.Graph) (*SGG, error) {
	n := h.Size()
	nodeMap := make([]NodeRef, n)
	visited := make([]bool, n)
	compressed := graph.New()
	var paths []Path

	allocNonPath := func(port int64) int64 {
		id := compressed.AddNode()
		nodeMap[port] = NodeRef{Present: true, OnPath: false, Compressed: id}
		visited[port] = true
		return id
	}

	otherNeighbor := func(v, cameFrom int64) (int64, float64, bool) {
		for nb, w := range h.Neighbors(v) {
			if nb == cameFrom {
				continue
			}
			return nb, w, true
		}
		return 0, 0, false
	}

	for v := int64(0); v < n; v++ {
		if visited[v] || h.Degree(v) == 0 {
			continue
		}
		parentCompressed := allocNonPath(v)

		var stack []frame
		for nb, w := range h.Neighbors(v) {
			stack = append(stack, frame{parentOriginal: v, parentCompressed: parentCompressed, node: nb, weight: w})
		}

		for len(stack) > 0 {
			f := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			u := f.node

			if visited[u] {
				if !nodeMap[u].OnPath {
					if err := compressed.AddEdge(f.parentCompressed, nodeMap[u].Compressed, f.weight); err != nil {
						return nil, err
					}
				}
				continue
			}

			if h.Degree(u) != 2 {
				uc := allocNonPath(u)
				if err := compressed.AddEdge(f.parentCompressed, uc, f.weight); err != nil {
					return nil, err
				}
				for nb, w := range h.Neighbors(u) {
					if nb == f.parentOriginal {
						continue
					}
					stack = append(stack, frame{parentOriginal: u, parentCompressed: uc, node: nb, weight: w})
				}
				continue
			}

			// u has degree 2: walk the chain until a branching/leaf/already-
			// mapped node is reached.
			var interior []int64
			var prefix []float64
			cameFrom := f.parentOriginal
			cur := u
			cum := f.weight
			for !visited[cur] && h.Degree(cur) == 2 {
				interior = append(interior, cur)
				prefix = append(prefix, cum)
				visited[cur] = true
				next, w, ok := otherNeighbor(cur, cameFrom)
				if !ok {
					break
				}
				cameFrom = cur
				cur = next
				cum += w
			}
			end := cur
			closedLoop := end == f.parentOriginal
			// cum is now the cumulative distance to end itself; the prefix
			// table must cover it too so Prefix.back() is the full path
			// length, not just the distance to the last interior node.
			prefix = append(prefix, cum)

			pathIdx := int64(len(paths))
			for i, node := range interior {
				nodeMap[node] = NodeRef{Present: true, OnPath: true, PathIdx: pathIdx, Pos: int64(i)}
			}

			var endCompressed int64
			endIsFresh := false
			switch {
			case closedLoop:
				endCompressed = f.parentCompressed
			case visited[end] && nodeMap[end].Present && !nodeMap[end].OnPath:
				endCompressed = nodeMap[end].Compressed
			default:
				endCompressed = allocNonPath(end)
				endIsFresh = true
			}

			paths = append(paths, Path{Start: f.parentCompressed, End: endCompressed, Prefix: prefix})
			if !closedLoop {
				if err := compressed.AddEdge(f.parentCompressed, endCompressed, cum); err != nil {
					return nil, err
				}
				if endIsFresh {
					for nb, w := range h.Neighbors(end) {
						if nb == cameFrom {
							continue
						}
						stack = append(stack, frame{parentOriginal: end, parentCompressed: endCompressed, node: nb, weight: w})
					}
				}
			}
		}
	}

	if compressed.Size() == 0 {
		return nil, ErrEmptyGraph
	}
	return &SGG{Base: compressed, Paths: paths, NodeMap: nodeMap}, nil
}
