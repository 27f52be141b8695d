package graph

import "container/heap"

// Source is an entry point for a multi-source Dijkstra query: port Port is
// seeded with an initial tentative distance of Dist (not necessarily zero,
// since SGG sources are reached through an already-walked path prefix).
type Source struct {
	Port int64
	Dist float64
}

// portItem is one entry in the priority queue. Stale entries (superseded by
// a smaller distance pushed later) are discarded lazily on pop rather than
// updated in place, the idiomatic replacement for an explicit
// erase-then-reinsert decrease-key.
type portItem struct {
	port int64
	dist float64
}

type portHeap []*portItem

func (h portHeap) Len() int { return len(h) }

// Less ties distance, breaking on port id so that results are reproducible
// for a fixed adjacency order.
func (h portHeap) Less(i, j int) bool {
	if h[i].dist != h[j].dist {
		return h[i].dist < h[j].dist
	}
	return h[i].port < h[j].port
}

func (h portHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *portHeap) Push(x any) { *h = append(*h, x.(*portItem)) }

func (h *portHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Distance runs a multi-source, multi-target Dijkstra search capped at
// maxDistance and returns, aligned with targets, the shortest distance from
// any source to each target (maxDistance itself means "unreachable within
// budget"). Duplicate source ports keep the minimum initial distance.
//
// For a two-sided graph a target's logical vertex is considered reached as
// soon as either of its ports is popped as a target: both of its ports are
// then taken off the remaining-target count, so the search can terminate
// before the second port is settled. The count assumes both ports of every
// such vertex are listed in targets; a target listed by one port alone
// still takes its unlisted twin off the count when it is popped.
func (g *Graph) Distance(sources []Source, targets []int64, maxDistance float64) []float64 {
	dist := make(map[int64]float64, len(sources))
	for _, s := range sources {
		if !g.Contains(s.Port) {
			continue
		}
		if cur, ok := dist[s.Port]; !ok || s.Dist < cur {
			dist[s.Port] = s.Dist
		}
	}

	remaining := make(map[int64]bool, len(targets))
	for _, t := range targets {
		if g.Contains(t) {
			remaining[t] = true
		}
	}
	remainingCount := len(remaining)

	pq := make(portHeap, 0, len(dist))
	for port, d := range dist {
		pq = append(pq, &portItem{port: port, dist: d})
	}
	heap.Init(&pq)

	settled := make(map[int64]bool, len(dist))
	for pq.Len() > 0 && remainingCount > 0 {
		it := heap.Pop(&pq).(*portItem)
		v := it.port
		if settled[v] || it.dist > dist[v] {
			continue
		}
		settled[v] = true

		if remaining[v] {
			delete(remaining, v)
			remainingCount--
			if g.twoSided {
				o := g.OtherSide(v)
				delete(remaining, o)
				remainingCount--
			}
		}
		if remainingCount <= 0 {
			break
		}

		base := dist[v]
		for w, weight := range g.adj[v] {
			if settled[w] {
				continue
			}
			nd := base + weight
			if nd >= maxDistance {
				continue
			}
			if cur, ok := dist[w]; !ok || nd < cur {
				dist[w] = nd
				heap.Push(&pq, &portItem{port: w, dist: nd})
			}
		}
	}

	result := make([]float64, len(targets))
	for i, t := range targets {
		if d, ok := dist[t]; ok && d < maxDistance {
			result[i] = d
		} else {
			result[i] = maxDistance
		}
	}
	return result
}
