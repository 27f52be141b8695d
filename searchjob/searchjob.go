// Package searchjob turns a flat list of point-to-point queries into a
// minimal set of single-source, multi-target Dijkstra jobs by repeatedly
// peeling the vertex of maximum residual degree, a greedy heuristic for the
// underlying set-cover-shaped scheduling problem.
package searchjob

import "container/heap"

// Query is the minimal shape the scheduler needs from a parsed query row.
type Query struct {
	V, W  int64
	Index int64
}

// Job is a single-source Dijkstra request: Ws[i] is the i-th target for
// source V, and OriginalIndices[i] is that pair's position in the original
// query list.
type Job struct {
	V                int64
	Ws               []int64
	OriginalIndices  []int64
}

type residualEntry struct {
	vertex int64
	count  int
}

type residualHeap []*residualEntry

func (h residualHeap) Len() int { return len(h) }

// Less orders by descending count, ties broken by larger vertex id, so that
// heap.Pop always yields the current maximum-residual-degree vertex.
func (h residualHeap) Less(i, j int) bool {
	if h[i].count != h[j].count {
		return h[i].count > h[j].count
	}
	return h[i].vertex > h[j].vertex
}

func (h residualHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *residualHeap) Push(x any) { *h = append(*h, x.(*residualEntry)) }

func (h *residualHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Schedule builds the covering set of jobs for queries. Every query appears
// in exactly one job, as a target of either its v or its w, whichever is
// peeled first.
func Schedule(queries []Query) []Job {
	type adj struct {
		w     int64
		index int64
	}
	queriesMap := make(map[int64][]adj)
	for _, q := range queries {
		queriesMap[q.V] = append(queriesMap[q.V], adj{w: q.W, index: q.Index})
		if q.W != q.V {
			queriesMap[q.W] = append(queriesMap[q.W], adj{w: q.V, index: q.Index})
		}
	}

	pq := make(residualHeap, 0, len(queriesMap))
	for v, adjs := range queriesMap {
		pq = append(pq, &residualEntry{vertex: v, count: len(adjs)})
	}
	heap.Init(&pq)

	processed := make(map[int64]bool, len(queriesMap))
	residual := make(map[int64]int, len(queriesMap))
	for v, adjs := range queriesMap {
		residual[v] = len(adjs)
	}

	var jobs []Job
	for pq.Len() > 0 {
		top := heap.Pop(&pq).(*residualEntry)
		source := top.vertex
		if top.count != residual[source] {
			continue // stale entry, residual count has since dropped
		}
		if residual[source] == 0 {
			break
		}

		job := Job{V: source}
		for _, a := range queriesMap[source] {
			if processed[a.w] {
				continue
			}
			job.Ws = append(job.Ws, a.w)
			job.OriginalIndices = append(job.OriginalIndices, a.index)
			residual[a.w]--
			heap.Push(&pq, &residualEntry{vertex: a.w, count: residual[a.w]})
		}
		processed[source] = true
		residual[source] = 0

		if len(job.Ws) > 0 {
			jobs = append(jobs, job)
		}
	}
	return jobs
}
