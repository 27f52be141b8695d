package query_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jurikuronen/pangwes/aggregate"
	"github.com/jurikuronen/pangwes/config"
	"github.com/jurikuronen/pangwes/query"
)

func TestDecodeFormatAmbiguity(t *testing.T) {
	if f := query.DecodeFormat(5, true); f != query.FormatVWDistScoreCount {
		t.Fatalf("outlier-mode 5 cols = %d, want FormatVWDistScoreCount", f)
	}
	if f := query.DecodeFormat(5, false); f != query.FormatVWDistFlagScore {
		t.Fatalf("non-outlier 5 cols = %d, want FormatVWDistFlagScore", f)
	}
}

func TestReadQueriesPlainPairs(t *testing.T) {
	r := strings.NewReader("0 2\n0 0\n2 1\n")
	qs, err := query.ReadQueries(r, false, false)
	if err != nil {
		t.Fatal(err)
	}
	if qs.Format != query.FormatVW {
		t.Fatalf("format = %d, want FormatVW", qs.Format)
	}
	if len(qs.Entries) != 3 {
		t.Fatalf("len = %d, want 3", len(qs.Entries))
	}
	if qs.Entries[0].V != 0 || qs.Entries[0].W != 2 {
		t.Fatalf("entry 0 = %+v", qs.Entries[0])
	}
}

func TestReadQueriesOneBasedShift(t *testing.T) {
	r := strings.NewReader("1 3\n")
	qs, err := query.ReadQueries(r, true, false)
	if err != nil {
		t.Fatal(err)
	}
	if qs.Entries[0].V != 0 || qs.Entries[0].W != 2 {
		t.Fatalf("entry = %+v, want V=0 W=2", qs.Entries[0])
	}
}

func TestReadQueriesRejectsInconsistentFieldCount(t *testing.T) {
	r := strings.NewReader("0 2\n0 2 9\n")
	if _, err := query.ReadQueries(r, false, false); err == nil {
		t.Fatal("expected error for inconsistent field count")
	}
}

func TestWriteResultsRoundTrip(t *testing.T) {
	qs := []query.Query{{V: 0, W: 2}, {V: 0, W: 0}}
	var buf bytes.Buffer
	cfg := config.New()
	if err := query.WriteResults(&buf, qs, []float64{5, 0}, cfg); err != nil {
		t.Fatal(err)
	}
	want := "0 2 5\n0 0 0\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteAggregateResultsUnreached(t *testing.T) {
	qs := []query.Query{{V: 0, W: 1}}
	cfg := config.New()
	dists := []aggregate.Dist{aggregate.Unreached(cfg.MaxDistance)}
	var buf bytes.Buffer
	if err := query.WriteAggregateResults(&buf, qs, dists, cfg); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "0 1 -1 0 -1 -1 -1\n") {
		t.Fatalf("got %q", buf.String())
	}
}
