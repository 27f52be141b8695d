package query

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Queries is a parsed query batch plus the format it was detected as, kept
// together since every row in a batch shares one shape.
type Queries struct {
	Format  int
	Entries []Query
}

// LargestVertex returns the maximum id across every v and w in the batch,
// or -1 for an empty batch.
func (qs Queries) LargestVertex() int64 {
	largest := int64(-1)
	for _, q := range qs.Entries {
		if q.V > largest {
			largest = q.V
		}
		if q.W > largest {
			largest = q.W
		}
	}
	return largest
}

// ReadQueries parses a whitespace-separated queries file, auto-detecting the
// format from the field count of the first non-empty line and requiring
// every subsequent line to match it. outlierMode resolves the 5-column
// ambiguity per DecodeFormat.
func ReadQueries(r io.Reader, oneBased bool, outlierMode bool) (Queries, error) {
	scanner := bufio.NewScanner(r)
	var out Queries
	out.Format = FormatAmbiguous

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		if out.Format == FormatAmbiguous {
			out.Format = DecodeFormat(len(fields), outlierMode)
			if out.Format == FormatAmbiguous {
				return Queries{}, parseErrorf(lineNo, "unrecognized field count %d", len(fields))
			}
		} else if want := fieldCountForFormat(out.Format); want != len(fields) {
			return Queries{}, parseErrorf(lineNo, "expected %d fields, got %d", want, len(fields))
		}

		q, err := parseRow(fields, out.Format, lineNo)
		if err != nil {
			return Queries{}, err
		}
		if oneBased {
			q.V--
			q.W--
		}
		out.Entries = append(out.Entries, q)
	}
	if err := scanner.Err(); err != nil {
		return Queries{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return out, nil
}

func parseRow(fields []string, format int, lineNo int) (Query, error) {
	var q Query
	var err error
	if q.V, err = parseID(fields[0], lineNo); err != nil {
		return Query{}, err
	}
	if q.W, err = parseID(fields[1], lineNo); err != nil {
		return Query{}, err
	}

	switch format {
	case FormatVW:
		// no tail fields
	case FormatVWScore:
		q.HasScore = true
		if q.Score, err = parseFloat(fields[2], lineNo); err != nil {
			return Query{}, err
		}
	case FormatVWDistScore:
		q.HasDistance, q.HasScore = true, true
		if q.Distance, err = parseFloat(fields[2], lineNo); err != nil {
			return Query{}, err
		}
		if q.Score, err = parseFloat(fields[3], lineNo); err != nil {
			return Query{}, err
		}
	case FormatVWDistFlagScore:
		q.HasDistance, q.HasFlag, q.HasScore = true, true, true
		if q.Distance, err = parseFloat(fields[2], lineNo); err != nil {
			return Query{}, err
		}
		if q.Flag, err = parseID(fields[3], lineNo); err != nil {
			return Query{}, err
		}
		if q.Score, err = parseFloat(fields[4], lineNo); err != nil {
			return Query{}, err
		}
	case FormatVWDistScoreCount:
		q.HasDistance, q.HasScore, q.HasCount = true, true, true
		if q.Distance, err = parseFloat(fields[2], lineNo); err != nil {
			return Query{}, err
		}
		if q.Score, err = parseFloat(fields[3], lineNo); err != nil {
			return Query{}, err
		}
		if q.Count, err = parseID(fields[4], lineNo); err != nil {
			return Query{}, err
		}
	case FormatVWDistFlagScoreCount:
		q.HasDistance, q.HasFlag, q.HasScore, q.HasCount = true, true, true, true
		if q.Distance, err = parseFloat(fields[2], lineNo); err != nil {
			return Query{}, err
		}
		if q.Flag, err = parseID(fields[3], lineNo); err != nil {
			return Query{}, err
		}
		if q.Score, err = parseFloat(fields[4], lineNo); err != nil {
			return Query{}, err
		}
		if q.Count, err = parseID(fields[5], lineNo); err != nil {
			return Query{}, err
		}
	default:
		return Query{}, parseErrorf(lineNo, "unknown format %d", format)
	}
	return q, nil
}

func parseID(s string, lineNo int) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, parseErrorf(lineNo, "non-numeric id %q", s)
	}
	return v, nil
}

func parseFloat(s string, lineNo int) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, parseErrorf(lineNo, "non-numeric value %q", s)
	}
	return v, nil
}
