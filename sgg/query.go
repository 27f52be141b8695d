package sgg

import (
	"math"
	"sort"

	"github.com/jurikuronen/pangwes/graph"
)

// Sources builds the compressed-graph source set for logical vertex v: each
// of v's two original ports contributes either itself (if it survived
// compression as its own node) or both endpoints of the path it is interior
// to, at the distance already walked along that path. Duplicate compressed
// ids keep the smaller distance.
func (s *SGG) Sources(v int64) []graph.Source {
	var out []graph.Source
	add := func(port int64, d float64) {
		for i := range out {
			if out[i].Port == port {
				if d < out[i].Dist {
					out[i].Dist = d
				}
				return
			}
		}
		out = append(out, graph.Source{Port: port, Dist: d})
	}
	for _, p := range [2]int64{2 * v, 2*v + 1} {
		ref, ok := s.lookup(p)
		if !ok {
			continue
		}
		if !ref.OnPath {
			add(ref.Compressed, 0)
			continue
		}
		path := s.Paths[ref.PathIdx]
		add(path.Start, path.DistanceToStart(ref.Pos))
		add(path.End, path.DistanceToEnd(ref.Pos))
	}
	return out
}

// Targets builds the de-duplicated compressed-node target set for a job's
// ws: both path endpoints for an interior port, or the compressed id itself
// for a non-path port. The result is NOT aligned to ws.
func (s *SGG) Targets(ws []int64) []int64 {
	set := make(map[int64]bool)
	for _, w := range ws {
		for _, p := range [2]int64{2 * w, 2*w + 1} {
			ref, ok := s.lookup(p)
			if !ok {
				continue
			}
			if ref.OnPath {
				path := s.Paths[ref.PathIdx]
				set[path.Start] = true
				set[path.End] = true
			} else {
				set[ref.Compressed] = true
			}
		}
	}
	out := make([]int64, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// CorrectDistance resolves the distance from one side of v (vOnPath,
// vPathIdx, vPos describe that side, as found by the caller in NodeMap) to
// original port wSide, given the compressed-graph distances already
// computed from v's source set. When both sides sit on the same path, the
// direct in-path distance is considered alongside the via-endpoint routes.
func (s *SGG) CorrectDistance(vOnPath bool, vPathIdx, vPos int64, wSide int64, dist map[int64]float64, maxDistance float64) float64 {
	wRef, ok := s.lookup(wSide)
	if !ok {
		return maxDistance
	}
	if !wRef.OnPath {
		if d, ok := dist[wRef.Compressed]; ok {
			return d
		}
		return maxDistance
	}
	wPath := s.Paths[wRef.PathIdx]
	candidate := maxDistance
	if vOnPath && vPathIdx == wRef.PathIdx {
		candidate = wPath.DistanceInPath(vPos, wRef.Pos)
	}
	if d, ok := dist[wPath.Start]; ok {
		candidate = math.Min(candidate, d+wPath.DistanceToStart(wRef.Pos))
	}
	if d, ok := dist[wPath.End]; ok {
		candidate = math.Min(candidate, d+wPath.DistanceToEnd(wRef.Pos))
	}
	return candidate
}

// RefAt exposes the NodeRef for an original port, for callers (the job
// solver) that need OnPath/PathIdx/Pos directly.
func (s *SGG) RefAt(port int64) (NodeRef, bool) {
	return s.lookup(port)
}

func (s *SGG) lookup(port int64) (NodeRef, bool) {
	if port < 0 || port >= int64(len(s.NodeMap)) || !s.NodeMap[port].Present {
		return NodeRef{}, false
	}
	return s.NodeMap[port], true
}
