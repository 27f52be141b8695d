package aggregate_test

import (
	"testing"

	"github.com/jurikuronen/pangwes/aggregate"
)

func TestMergeAggregatesThreeSamples(t *testing.T) {
	d := aggregate.Empty()
	for _, x := range []float64{3, 5, 7} {
		d = aggregate.Merge(d, aggregate.Sample(x))
	}
	if d.Count != 3 {
		t.Fatalf("count = %d, want 3", d.Count)
	}
	if d.Mean != 5 {
		t.Fatalf("mean = %v, want 5", d.Mean)
	}
	if d.Min != 3 {
		t.Fatalf("min = %v, want 3", d.Min)
	}
	if d.Max != 7 {
		t.Fatalf("max = %v, want 7", d.Max)
	}
}

func TestMergeOrderIndependentMeanAndCount(t *testing.T) {
	samples := [][]float64{
		{1, 2, 3, 4},
		{4, 3, 2, 1},
		{2, 4, 1, 3},
	}
	var means []float64
	var counts []int64
	for _, order := range samples {
		d := aggregate.Empty()
		for _, x := range order {
			d = aggregate.Merge(d, aggregate.Sample(x))
		}
		means = append(means, d.Mean)
		counts = append(counts, d.Count)
	}
	for i := 1; i < len(means); i++ {
		if means[i] != means[0] || counts[i] != counts[0] {
			t.Fatalf("order dependence detected: means=%v counts=%v", means, counts)
		}
	}
}

func TestFixedCapsAtMaxDistance(t *testing.T) {
	if got := aggregate.Fixed(4, 10); got != 4 {
		t.Fatalf("Fixed(4,10) = %v, want 4", got)
	}
	if got := aggregate.Fixed(10, 10); got != -1 {
		t.Fatalf("Fixed(10,10) = %v, want -1", got)
	}
	if got := aggregate.Fixed(15, 10); got != -1 {
		t.Fatalf("Fixed(15,10) = %v, want -1", got)
	}
}
