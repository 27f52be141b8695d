package distengine

import (
	"io"
	"math"
	"sync"

	"github.com/jurikuronen/pangwes/aggregate"
	"github.com/jurikuronen/pangwes/config"
	"github.com/jurikuronen/pangwes/graph"
	"github.com/jurikuronen/pangwes/graphbuilder"
	"github.com/jurikuronen/pangwes/searchjob"
	"github.com/jurikuronen/pangwes/sgg"
)

// SolveSGGBatches builds one compressed single-genome graph per entry in
// edgesReaders, computes distances for every job against it, and folds the
// per-SGG samples into a shared aggregate per query.
//
// SGGs are processed in batches of cfg.NThreads: within a batch, each SGG is
// constructed and compressed on its own goroutine; the batch's SGGs are
// then solved one at a time (each solve itself spread over cfg.NThreads job
// partitions), and every batch is fully released - to free its adjacency
// and prefix-sum memory - before the next batch is built. This batching is
// the only backpressure mechanism in the engine and must be preserved.
func SolveSGGBatches(base *graph.Graph, edgesReaders []io.Reader, jobs []searchjob.Job, nQueries int, cfg config.Config, progress Progress) ([]aggregate.Dist, error) {
	if progress == nil {
		progress = NoProgress{}
	}
	nThreads := cfg.NThreads
	if nThreads < 1 {
		nThreads = 1
	}

	result := make([]aggregate.Dist, nQueries)
	n := len(edgesReaders)

	for batchStart := 0; batchStart < n; batchStart += nThreads {
		batchEnd := batchStart + nThreads
		if batchEnd > n {
			batchEnd = n
		}

		batch := make([]*sgg.SGG, batchEnd-batchStart)
		errs := make([]error, len(batch))
		var wg sync.WaitGroup
		for i := range batch {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				sub, err := graphbuilder.BuildCDBGSubgraph(base, edgesReaders[batchStart+i], cfg)
				if err != nil {
					errs[i] = err
					return
				}
				compressed, err := sgg.Build(sub)
				if err != nil {
					errs[i] = err
					return
				}
				batch[i] = compressed
			}(i)
		}
		wg.Wait()
		for _, err := range errs {
			if err != nil {
				return nil, err
			}
		}

		for _, sg := range batch {
			perThread := make([]map[int64]aggregate.Dist, nThreads)
			for t := range perThread {
				perThread[t] = make(map[int64]aggregate.Dist)
			}

			var wg2 sync.WaitGroup
			for thr := 0; thr < nThreads; thr++ {
				wg2.Add(1)
				go func(thr int) {
					defer wg2.Done()
					for i := thr; i < len(jobs); i += nThreads {
						solveSGGJob(sg, jobs[i], cfg.MaxDistance, perThread[thr])
					}
				}(thr)
			}
			wg2.Wait()

			// Single-writer merge: the driver goroutine is the only writer
			// of result during this fold, per thread in a fixed order.
			for _, m := range perThread {
				for idx, d := range m {
					result[idx] = aggregate.Merge(result[idx], d)
				}
			}
		}
		progress.Block("sgg-distances", batchEnd, n)
		batch = nil // release before the next batch is constructed
	}

	for i := range result {
		if result[i].Count == 0 {
			result[i] = aggregate.Unreached(cfg.MaxDistance)
		}
	}
	return result, nil
}

func solveSGGJob(s *sgg.SGG, job searchjob.Job, maxDistance float64, out map[int64]aggregate.Dist) {
	if _, ok := s.RefAt(2 * job.V); !ok {
		if _, ok := s.RefAt(2*job.V + 1); !ok {
			return
		}
	}

	sources := s.Sources(job.V)
	targets := s.Targets(job.Ws)
	distVals := s.Base.Distance(sources, targets, maxDistance)
	dist := make(map[int64]float64, len(targets))
	for i, t := range targets {
		dist[t] = distVals[i]
	}

	jobDist := make([]float64, len(job.Ws))
	for i := range jobDist {
		jobDist[i] = maxDistance
	}

	for _, vSide := range [2]int64{2 * job.V, 2*job.V + 1} {
		vRef, ok := s.RefAt(vSide)
		if !ok {
			continue
		}
		for wIdx, w := range job.Ws {
			best := jobDist[wIdx]
			for _, wSide := range [2]int64{2 * w, 2*w + 1} {
				cand := s.CorrectDistance(vRef.OnPath, vRef.PathIdx, vRef.Pos, wSide, dist, maxDistance)
				best = math.Min(best, cand)
			}
			jobDist[wIdx] = best
		}
	}

	for i, d := range jobDist {
		if d < maxDistance {
			idx := job.OriginalIndices[i]
			out[idx] = aggregate.Merge(out[idx], aggregate.Sample(d))
		}
	}
}
