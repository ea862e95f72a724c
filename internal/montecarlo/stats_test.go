package montecarlo

import (
	"errors"
	"math"
	"testing"
)

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestSummarizeKnownSample(t *testing.T) {
	s, err := Summarize([]int{0, 1, 2, 3})
	if err != nil {
		t.Fatal(err)
	}
	if s.N != 4 {
		t.Fatalf("N=%d want 4", s.N)
	}
	if !near(s.Mean, 1.5, 1e-12) {
		t.Fatalf("mean=%f want 1.5", s.Mean)
	}
	if !near(s.StdDev, 1.2910, 1e-4) {
		t.Fatalf("stddev=%f want ~1.2910", s.StdDev)
	}
	if !near(s.StdErr, 0.6455, 1e-4) {
		t.Fatalf("stderr=%f want ~0.6455", s.StdErr)
	}
	if s.Min != 0 || s.Max != 3 {
		t.Fatalf("min/max=%d/%d want 0/3", s.Min, s.Max)
	}
	if !near(s.P50, 1.5, 1e-12) {
		t.Fatalf("p50=%f want 1.5", s.P50)
	}
}

func TestSummarizeOrderInvariant(t *testing.T) {
	a, _ := Summarize([]int{3, 0, 2, 1, 1})
	b, _ := Summarize([]int{1, 1, 0, 2, 3})
	if a.Mean != b.Mean || a.StdDev != b.StdDev || a.StdErr != b.StdErr || a.P90 != b.P90 {
		t.Fatalf("stats depend on order: %+v vs %+v", a, b)
	}
}

func TestSummarizeDistribution(t *testing.T) {
	s, err := Summarize([]int{2, 0, 0, 5, 2, 0})
	if err != nil {
		t.Fatal(err)
	}
	want := []Bucket{{0, 3}, {2, 2}, {5, 1}}
	if len(s.Distribution) != len(want) {
		t.Fatalf("distribution=%v want %v", s.Distribution, want)
	}
	for i := range want {
		if s.Distribution[i] != want[i] {
			t.Fatalf("bucket %d = %v want %v", i, s.Distribution[i], want[i])
		}
	}
}

func TestSummarizeSingle(t *testing.T) {
	s, err := Summarize([]int{4})
	if err != nil {
		t.Fatal(err)
	}
	if s.Mean != 4 || s.StdDev != 0 || s.StdErr != 0 {
		t.Fatalf("single sample stats: %+v", s)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if _, err := Summarize(nil); !errors.Is(err, ErrEmptySample) {
		t.Fatalf("expected ErrEmptySample, got %v", err)
	}
}
