package searchjob_test

import (
	"testing"

	"github.com/jurikuronen/pangwes/searchjob"
)

func TestScheduleCoversEveryQueryExactlyOnce(t *testing.T) {
	queries := []searchjob.Query{
		{V: 0, W: 2, Index: 0},
		{V: 0, W: 0, Index: 1},
		{V: 2, W: 1, Index: 2},
	}
	jobs := searchjob.Schedule(queries)

	seen := map[int64]int{}
	for _, job := range jobs {
		for i, w := range job.Ws {
			idx := job.OriginalIndices[i]
			seen[idx]++
			q := queries[idx]
			if job.V != q.V && job.V != q.W {
				t.Fatalf("job source %d does not match query %v", job.V, q)
			}
			other := q.V
			if job.V == q.V {
				other = q.W
			}
			if w != other {
				t.Fatalf("job target %d does not match expected %d for query %v", w, other, q)
			}
		}
	}
	for idx := range queries {
		if seen[int64(idx)] != 1 {
			t.Fatalf("query %d covered %d times, want exactly 1", idx, seen[int64(idx)])
		}
	}
}

func TestScheduleHandlesManyQueriesFromOneSource(t *testing.T) {
	var queries []searchjob.Query
	for i := int64(1); i <= 5; i++ {
		queries = append(queries, searchjob.Query{V: 0, W: i, Index: i - 1})
	}
	jobs := searchjob.Schedule(queries)
	total := 0
	for _, job := range jobs {
		total += len(job.Ws)
	}
	if total != len(queries) {
		t.Fatalf("total targets = %d, want %d", total, len(queries))
	}
	// The greedy scheduler should find vertex 0 has the highest residual
	// degree and cover all five queries from a single job.
	if len(jobs) != 1 {
		t.Fatalf("jobs = %d, want 1 (single source covers a star)", len(jobs))
	}
}
