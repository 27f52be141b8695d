package graphbuilder

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/jurikuronen/pangwes/config"
	"github.com/jurikuronen/pangwes/graph"
)

type unitig struct {
	id     int64
	length int64
}

// BuildCDBG parses a unitigs file (`id sequence`) and an edges file
// (`from to edge_type [overlap]`) into a two-sided compacted de Bruijn
// graph. Each unitig's self-weight is len(sequence) - k; a negative result
// is a malformed-input error, not a silently clamped zero. Rows whose
// overlap column is non-zero are discarded.
func BuildCDBG(unitigsR, edgesR io.Reader, cfg config.Config) (*graph.Graph, error) {
	unitigs, maxID, err := parseUnitigs(unitigsR, cfg)
	if err != nil {
		return nil, err
	}

	g := graph.New(graph.WithTwoSided(true), graph.WithOneBased(cfg.GraphsOneBased))
	g.Resize(2 * (maxID + 1))

	for _, u := range unitigs {
		selfWeight := float64(u.length - cfg.KmerLength)
		if selfWeight < 0 {
			return nil, builderErrorf(ErrNegativeSelfWeight, 0,
				"unitig %d: sequence length %d shorter than k=%d", u.id, u.length, cfg.KmerLength)
		}
		if err := g.SetSelfEdge(u.id, selfWeight); err != nil {
			return nil, err
		}
	}

	if err := parseCDBGEdges(g, edgesR, cfg); err != nil {
		return nil, err
	}
	return g, nil
}

func parseUnitigs(r io.Reader, cfg config.Config) ([]unitig, int64, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	maxID := int64(-1)
	var unitigs []unitig
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, 0, builderErrorf(ErrMalformedInput, lineNo, "expected id and sequence, got %d fields", len(fields))
		}
		id, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, 0, builderErrorf(ErrMalformedInput, lineNo, "non-numeric id %q", fields[0])
		}
		if cfg.GraphsOneBased {
			id--
		}
		seqLen := int64(len(fields[1]))
		unitigs = append(unitigs, unitig{id: id, length: seqLen})
		if id > maxID {
			maxID = id
		}
	}
	if err := sc.Err(); err != nil {
		return nil, 0, err
	}
	return unitigs, maxID, nil
}

type cdbgLink struct {
	fromPort, toPort int64
}

// parseCDBGLinks reads `from to edge_type [overlap]` rows and resolves each
// to the ports its two-character edge type names: a leading 'F' (resp.
// trailing 'R') attaches to the right port of from (resp. to), any other
// letter to the left port. Rows whose overlap column is non-zero are
// discarded.
func parseCDBGLinks(r io.Reader, cfg config.Config) ([]cdbgLink, error) {
	sc := bufio.NewScanner(r)
	lineNo := 0
	var links []cdbgLink
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, builderErrorf(ErrMalformedInput, lineNo, "expected from, to, edge_type, got %d fields", len(fields))
		}
		from, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return nil, builderErrorf(ErrMalformedInput, lineNo, "non-numeric from %q", fields[0])
		}
		to, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return nil, builderErrorf(ErrMalformedInput, lineNo, "non-numeric to %q", fields[1])
		}
		edgeType := fields[2]
		if len(edgeType) != 2 {
			return nil, builderErrorf(ErrUnknownEdgeType, lineNo, "edge type %q is not 2 characters", edgeType)
		}
		if len(fields) >= 4 {
			overlap, err := strconv.ParseFloat(fields[3], 64)
			if err == nil && overlap != 0 {
				continue // non-zero overlap rows are discarded
			}
		}
		if cfg.GraphsOneBased {
			from--
			to--
		}
		fromPort := 2 * from
		if edgeType[0] == 'F' {
			fromPort++
		}
		toPort := 2 * to
		if edgeType[1] == 'R' {
			toPort++
		}
		links = append(links, cdbgLink{fromPort: fromPort, toPort: toPort})
	}
	return links, sc.Err()
}

// parseCDBGEdges reads the cdBG edges file and adds each resolved link
// directly to an already-sized two-sided graph.
func parseCDBGEdges(g *graph.Graph, r io.Reader, cfg config.Config) error {
	links, err := parseCDBGLinks(r, cfg)
	if err != nil {
		return err
	}
	for _, l := range links {
		if err := g.AddEdge(l.fromPort, l.toPort, 1.0); err != nil {
			return err
		}
	}
	return nil
}
