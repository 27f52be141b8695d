package query

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jurikuronen/pangwes/aggregate"
	"github.com/jurikuronen/pangwes/config"
	"github.com/jurikuronen/pangwes/outlier"
)

func outputVertex(v int64, cfg config.Config) int64 {
	if cfg.OutputOneBased {
		return v + 1
	}
	return v
}

// WriteResults writes one row per query for a dense, single-graph distance
// vector: v' w' d, plus flag/score when the input format carried them.
func WriteResults(w io.Writer, queries []Query, distances []float64, cfg config.Config) error {
	bw := bufio.NewWriter(w)
	for i, q := range queries {
		d := int64(aggregate.Fixed(distances[i], cfg.MaxDistance))
		if _, err := fmt.Fprintf(bw, "%d %d %d", outputVertex(q.V, cfg), outputVertex(q.W, cfg), d); err != nil {
			return err
		}
		if q.HasFlag {
			if _, err := fmt.Fprintf(bw, " %d", q.Flag); err != nil {
				return err
			}
		}
		if q.HasScore {
			if _, err := fmt.Fprintf(bw, " %g", q.Score); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteAggregateResults writes one row per query for a folded per-SGG
// aggregate: v' w' d flag? score? count M2 min max, with M2/min/max set to
// -1 when the aggregate never saw a sample.
func WriteAggregateResults(w io.Writer, queries []Query, distances []aggregate.Dist, cfg config.Config) error {
	bw := bufio.NewWriter(w)
	for i, q := range queries {
		d := distances[i]
		fixed := int64(aggregate.Fixed(d.Mean, cfg.MaxDistance))
		if d.Count == 0 {
			fixed = -1
		}
		if _, err := fmt.Fprintf(bw, "%d %d %d", outputVertex(q.V, cfg), outputVertex(q.W, cfg), fixed); err != nil {
			return err
		}
		if q.HasFlag {
			if _, err := fmt.Fprintf(bw, " %d", q.Flag); err != nil {
				return err
			}
		}
		if q.HasScore {
			if _, err := fmt.Fprintf(bw, " %g", q.Score); err != nil {
				return err
			}
		}
		m2, min, max := d.M2, d.Min, d.Max
		if d.Count == 0 {
			m2, min, max = -1, -1, -1
		}
		if _, err := fmt.Fprintf(bw, " %d %g %g %g\n", d.Count, m2, min, max); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteOutlierStats writes the single-line outlier parameter summary:
// ld_distance outlier_threshold extreme_outlier_threshold count_threshold.
func WriteOutlierStats(w io.Writer, p outlier.Parameters) error {
	_, err := fmt.Fprintf(w, "%g %g %g %d\n", p.LDDistance, p.OutlierThreshold, p.ExtremeOutlierThreshold, p.CountThreshold)
	return err
}
