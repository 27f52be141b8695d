package outlier_test

import (
	"testing"

	"github.com/jurikuronen/pangwes/aggregate"
	"github.com/jurikuronen/pangwes/config"
	"github.com/jurikuronen/pangwes/outlier"
)

// TestQuartilesOfSkewedScores reproduces the scenario where five queries
// share score 1 and one stands out at 10 (each query touches two fresh
// vertices, so the distribution holds ten 1s and two 10s): Q1 = Q3 = 1, so
// the outlier threshold collapses to exactly 1 and every score at or above
// it qualifies.
func TestQuartilesOfSkewedScores(t *testing.T) {
	cfg := config.New(config.WithLDDistance(0), config.WithSGGCountThreshold(1))
	distances := make([]aggregate.Dist, 6)
	queries := make([]outlier.ScoredQuery, 6)
	scores := []float64{1, 1, 1, 1, 1, 10}
	for i, sc := range scores {
		distances[i] = aggregate.Sample(5) // well above ld=0, count=1
		queries[i] = outlier.ScoredQuery{V: int64(i), W: int64(i) + 100, Score: sc}
	}

	params, indices := outlier.Determine(distances, queries, cfg)
	if params.OutlierThreshold != 1 {
		t.Fatalf("outlier threshold = %v, want 1", params.OutlierThreshold)
	}
	if len(indices) != 6 {
		t.Fatalf("expected every query to qualify as an outlier, got %d", len(indices))
	}
}

func TestQualifyingFilterExcludesLowCountAndShortDistance(t *testing.T) {
	cfg := config.New(config.WithLDDistance(4), config.WithSGGCountThreshold(2))
	distances := []aggregate.Dist{
		aggregate.Merge(aggregate.Sample(5), aggregate.Sample(5)), // count 2, mean 5: qualifies
		aggregate.Sample(5),                                       // count 1: excluded
		aggregate.Merge(aggregate.Sample(1), aggregate.Sample(1)), // mean 1 < ld: excluded
	}
	queries := []outlier.ScoredQuery{
		{V: 0, W: 1, Score: 9},
		{V: 2, W: 3, Score: 9},
		{V: 4, W: 5, Score: 9},
	}

	_, indices := outlier.Determine(distances, queries, cfg)
	if len(indices) != 1 || indices[0] != 0 {
		t.Fatalf("indices = %v, want [0]", indices)
	}
}

// TestAutoLDIsMonotonicInRequiredScore checks property 10: the retained max
// score never grows with the LD cutoff, so raising the fraction of the top
// score that must be retained can only lower (never raise) the
// automatically chosen LD cutoff.
func TestAutoLDIsMonotonicInRequiredScore(t *testing.T) {
	distances := make([]aggregate.Dist, 0, 20)
	queries := make([]outlier.ScoredQuery, 0, 20)
	for i := 0; i < 20; i++ {
		d := float64(i + 1)
		distances = append(distances, aggregate.Sample(d))
		queries = append(queries, outlier.ScoredQuery{V: int64(i), W: int64(i) + 1000, Score: d})
	}

	loose := config.New(config.WithLDDistance(-1), config.WithLDDistanceScore(0.1), config.WithSGGCountThreshold(1))
	strict := config.New(config.WithLDDistance(-1), config.WithLDDistanceScore(0.9), config.WithSGGCountThreshold(1))

	pLoose, _ := outlier.Determine(distances, queries, loose)
	pStrict, _ := outlier.Determine(distances, queries, strict)

	if pStrict.LDDistance > pLoose.LDDistance {
		t.Fatalf("strict ld = %v should be <= loose ld = %v", pStrict.LDDistance, pLoose.LDDistance)
	}
}
