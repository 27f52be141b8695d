// Package outlier computes Tukey-style thresholds over a per-vertex score
// distribution, with an optional bisection search that auto-selects the
// linkage-disequilibrium (LD) distance cutoff.
package outlier

import (
	"sort"

	"github.com/jurikuronen/pangwes/aggregate"
	"github.com/jurikuronen/pangwes/config"
)

// ScoredQuery is the minimal shape the outlier engine needs from a query
// row: the pair plus its carried score.
type ScoredQuery struct {
	V, W  int64
	Score float64
}

// Parameters bundles the thresholds a run settles on.
type Parameters struct {
	LDDistance              float64
	OutlierThreshold        float64
	ExtremeOutlierThreshold float64
	CountThreshold          int64
}

// Determine computes outlier thresholds for distances (aligned with
// queries) and returns them alongside the indices of queries that qualify
// as outliers. When cfg.LDDistance is negative, the LD cutoff is chosen by
// bisection instead of being taken literally.
func Determine(distances []aggregate.Dist, queries []ScoredQuery, cfg config.Config) (Parameters, []int64) {
	ld := cfg.LDDistance
	if ld < 0 {
		ld = autoLD(distances, queries, cfg)
	}
	params := computeParameters(distances, queries, ld, cfg)
	return params, collect(distances, queries, params, cfg)
}

func qualifies(d aggregate.Dist, ld float64, cfg config.Config) (float64, bool) {
	if d.Count < cfg.SGGCountThreshold {
		return 0, false
	}
	fixed := aggregate.Fixed(d.Mean, cfg.MaxDistance)
	if fixed < 0 || fixed < ld {
		return fixed, false
	}
	return fixed, true
}

func distribution(distances []aggregate.Dist, queries []ScoredQuery, ld float64, cfg config.Config) []float64 {
	vScores := make(map[int64]float64)
	for i, q := range queries {
		if i >= len(distances) {
			break
		}
		if _, ok := qualifies(distances[i], ld, cfg); !ok {
			continue
		}
		if q.Score > vScores[q.V] {
			vScores[q.V] = q.Score
		}
		if q.Score > vScores[q.W] {
			vScores[q.W] = q.Score
		}
	}
	var out []float64
	for _, s := range vScores {
		if s > 0 {
			out = append(out, s)
		}
	}
	return out
}

// quartiles returns Q1 and Q3 by sorting the distribution and indexing at
// size/4 and 3*size/4. A full sort is simpler than a hand-rolled quickselect
// and gives identical results; see DESIGN.md.
func quartiles(dist []float64) (float64, float64) {
	if len(dist) == 0 {
		return 0, 0
	}
	sorted := append([]float64(nil), dist...)
	sort.Float64s(sorted)
	return sorted[len(sorted)/4], sorted[3*len(sorted)/4]
}

func nthLargest(sorted []float64, n int64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	idx := int64(len(sorted)) - n
	if idx < 0 {
		idx = 0
	}
	if idx >= int64(len(sorted)) {
		idx = int64(len(sorted)) - 1
	}
	return sorted[idx]
}

func computeParameters(distances []aggregate.Dist, queries []ScoredQuery, ld float64, cfg config.Config) Parameters {
	q1, q3 := quartiles(distribution(distances, queries, ld, cfg))
	return Parameters{
		LDDistance:              ld,
		OutlierThreshold:        q3 + 1.5*(q3-q1),
		ExtremeOutlierThreshold: q3 + 3.0*(q3-q1),
		CountThreshold:          cfg.SGGCountThreshold,
	}
}

func autoLD(distances []aggregate.Dist, queries []ScoredQuery, cfg config.Config) float64 {
	largestObserved := 0.0
	for i := range queries {
		if i >= len(distances) {
			break
		}
		d := distances[i]
		if d.Count < cfg.SGGCountThreshold {
			continue
		}
		if fixed := aggregate.Fixed(d.Mean, cfg.MaxDistance); fixed > largestObserved {
			largestObserved = fixed
		}
	}
	largestOverallScore := 0.0
	for _, q := range queries {
		if q.Score > largestOverallScore {
			largestOverallScore = q.Score
		}
	}

	a := cfg.LDDistanceMin
	if a > largestObserved {
		a = 0
	}
	b := largestObserved
	requiredScore := cfg.LDDistanceScore * largestOverallScore

	for b-a > 1 {
		mid := (a + b) / 2
		dist := distribution(distances, queries, mid, cfg)
		sorted := append([]float64(nil), dist...)
		sort.Float64s(sorted)
		if nthLargest(sorted, cfg.LDDistanceNthScore) < requiredScore {
			b = mid
		} else {
			a = mid
		}
	}
	return a
}

func collect(distances []aggregate.Dist, queries []ScoredQuery, params Parameters, cfg config.Config) []int64 {
	var out []int64
	for i, q := range queries {
		if i >= len(distances) {
			break
		}
		if _, ok := qualifies(distances[i], params.LDDistance, cfg); !ok {
			continue
		}
		if q.Score >= params.OutlierThreshold {
			out = append(out, int64(i))
		}
	}
	return out
}
