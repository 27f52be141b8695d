// Package graphbuilder constructs Graph values from the three tabular input
// shapes the engine consumes: an ordinary weighted-edge list, a compacted de
// Bruijn graph (unitigs + typed edges), and an edge-induced cdBG subgraph
// for a single genome.
package graphbuilder

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/jurikuronen/pangwes/config"
	"github.com/jurikuronen/pangwes/graph"
)

// BuildOrdinary parses a whitespace-separated `v w [weight]` edge list into
// a plain weighted Graph. A missing or non-numeric weight column defaults
// to 1.0.
func BuildOrdinary(r io.Reader, cfg config.Config) (*graph.Graph, error) {
	g := graph.New(graph.WithOneBased(cfg.GraphsOneBased))

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, builderErrorf(ErrMalformedInput, lineNo, "expected at least 2 fields, got %d", len(fields))
		}
		v, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, builderErrorf(ErrMalformedInput, lineNo, "non-numeric v %q", fields[0])
		}
		w, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, builderErrorf(ErrMalformedInput, lineNo, "non-numeric w %q", fields[1])
		}
		weight := 1.0
		if len(fields) >= 3 {
			if parsed, err := strconv.ParseFloat(fields[2], 64); err == nil {
				weight = parsed
			}
		}
		if cfg.GraphsOneBased {
			v--
			w--
		}
		max := v
		if w > max {
			max = w
		}
		g.Resize(max + 1)
		if err := g.AddEdge(v, w, weight); err != nil {
			return nil, builderErrorf(ErrMalformedInput, lineNo, "%v", err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return g, nil
}
