package distengine

import (
	"math"
	"sync"

	"github.com/jurikuronen/pangwes/config"
	"github.com/jurikuronen/pangwes/graph"
	"github.com/jurikuronen/pangwes/searchjob"
)

const blockSize = 10000

// SolveBase runs every job against the base graph and returns a dense
// distance vector aligned with the original query list, initialized to
// cfg.MaxDistance (the "unreachable" sentinel).
//
// Work is split across cfg.NThreads workers by `job index mod n_threads`,
// processed in blocks of up to 10,000 jobs; the block boundary is a
// synchronization barrier used only for progress reporting and must never
// change the result.
func SolveBase(jobs []searchjob.Job, g *graph.Graph, nQueries int, cfg config.Config, progress Progress) []float64 {
	if progress == nil {
		progress = NoProgress{}
	}
	res := make([]float64, nQueries)
	for i := range res {
		res[i] = cfg.MaxDistance
	}

	nThreads := cfg.NThreads
	if nThreads < 1 {
		nThreads = 1
	}

	for blockStart := 0; blockStart < len(jobs); blockStart += blockSize {
		blockEnd := blockStart + blockSize
		if blockEnd > len(jobs) {
			blockEnd = len(jobs)
		}

		var wg sync.WaitGroup
		for thr := 0; thr < nThreads; thr++ {
			wg.Add(1)
			go func(thr int) {
				defer wg.Done()
				for i := blockStart + thr; i < blockEnd; i += nThreads {
					solveBaseJob(g, jobs[i], res, cfg.MaxDistance)
				}
			}(thr)
		}
		wg.Wait()
		progress.Block("base-graph-distances", blockEnd, len(jobs))
	}
	return res
}

func solveBaseJob(g *graph.Graph, job searchjob.Job, res []float64, maxDistance float64) {
	missing := !g.Contains(job.V)
	if g.TwoSided() {
		missing = !g.Contains(g.Right(job.V))
	}
	if missing {
		return
	}

	var sources []graph.Source
	if g.TwoSided() {
		sources = []graph.Source{{Port: g.Left(job.V), Dist: 0}, {Port: g.Right(job.V), Dist: 0}}
	} else {
		sources = []graph.Source{{Port: job.V, Dist: 0}}
	}

	var targets []int64
	if g.TwoSided() {
		targets = make([]int64, 0, 2*len(job.Ws))
		for _, w := range job.Ws {
			targets = append(targets, g.Left(w), g.Right(w))
		}
	} else {
		targets = job.Ws
	}

	dist := g.Distance(sources, targets, maxDistance)

	if g.TwoSided() {
		for i := range job.Ws {
			res[job.OriginalIndices[i]] = math.Min(dist[2*i], dist[2*i+1])
		}
	} else {
		for i := range job.Ws {
			res[job.OriginalIndices[i]] = dist[i]
		}
	}
}
