package inning

import (
	"bytes"
	"errors"
	"log"
	"math"
	"strings"
	"testing"

	"github.com/xtding233/inning-sim/internal/montecarlo"
)

func TestSimulateAllOuts(t *testing.T) {
	rep, err := Simulate(mustModel(t, Probabilities{}), Options{Trials: 1000, Workers: 4, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	if rep.Stats.N != 1000 {
		t.Fatalf("N=%d", rep.Stats.N)
	}
	if rep.Stats.Mean != 0 || rep.Stats.StdDev != 0 || rep.Stats.StdErr != 0 {
		t.Fatalf("all-out stats: %+v", rep.Stats)
	}
	if rep.MeanPlateAppearances != 3 {
		t.Fatalf("mean PA = %v, want 3", rep.MeanPlateAppearances)
	}
}

// With only home runs (p) and outs, runs per inning are the successes before
// the third failure: mean 3p/(1-p), variance 3p/(1-p)^2.
func TestSimulateHomeRunOnlyMatchesNegativeBinomial(t *testing.T) {
	const p = 0.25
	const n = 40000
	rep, err := Simulate(mustModel(t, Probabilities{HomeRun: p}), Options{Trials: n, Seed: 2024})
	if err != nil {
		t.Fatal(err)
	}
	wantMean := 3 * p / (1 - p)
	wantSD := math.Sqrt(3 * p / ((1 - p) * (1 - p)))
	se := wantSD / math.Sqrt(n)
	if math.Abs(rep.Stats.Mean-wantMean) > 5*se {
		t.Fatalf("mean=%f want %f±%f", rep.Stats.Mean, wantMean, 5*se)
	}
	if math.Abs(rep.Stats.StdDev-wantSD) > 0.05 {
		t.Fatalf("stddev=%f want ~%f", rep.Stats.StdDev, wantSD)
	}
	if math.Abs(rep.MeanPlateAppearances-(3+wantMean)) > 5*se {
		t.Fatalf("mean PA=%f want ~%f", rep.MeanPlateAppearances, 3+wantMean)
	}
}

func TestSimulateReproducibleAcrossWorkers(t *testing.T) {
	m := mustModel(t, DefaultProbabilities())
	a, err := Simulate(m, Options{Trials: 5000, Workers: 1, Seed: 77})
	if err != nil {
		t.Fatal(err)
	}
	b, err := Simulate(m, Options{Trials: 5000, Workers: 6, Seed: 77})
	if err != nil {
		t.Fatal(err)
	}
	if a.Stats.Mean != b.Stats.Mean || a.Stats.StdDev != b.Stats.StdDev || a.MeanPlateAppearances != b.MeanPlateAppearances {
		t.Fatalf("seeded runs differ: %+v vs %+v", a.Stats, b.Stats)
	}
	if a.Seed != 77 || len(a.Weights) != len(Expand(m)) {
		t.Fatalf("report metadata: seed=%d weights=%d", a.Seed, len(a.Weights))
	}
}

func TestSimulateDefaultModelIsPlausible(t *testing.T) {
	rep, err := Simulate(mustModel(t, DefaultProbabilities()), Options{Trials: 20000, Seed: 5})
	if err != nil {
		t.Fatal(err)
	}
	s := rep.Stats
	if s.Mean <= 0 || s.Mean > 2 {
		t.Fatalf("implausible mean %f", s.Mean)
	}
	if s.Min != 0 {
		t.Fatalf("some innings should be scoreless, min=%d", s.Min)
	}
	total := 0
	for _, b := range s.Distribution {
		total += b.Count
	}
	if total != 20000 {
		t.Fatalf("distribution covers %d trials", total)
	}
	if math.Abs(s.StdErr-s.StdDev/math.Sqrt(20000)) > 1e-12 {
		t.Fatalf("stderr %f inconsistent with stddev %f", s.StdErr, s.StdDev)
	}
}

func TestSimulateRejectsNoTrials(t *testing.T) {
	_, err := Simulate(mustModel(t, DefaultProbabilities()), Options{Trials: 0})
	if !errors.Is(err, montecarlo.ErrInvalidTrials) {
		t.Fatalf("expected ErrInvalidTrials, got %v", err)
	}
}

func TestSimulateLogsRunID(t *testing.T) {
	var buf bytes.Buffer
	rep, err := Simulate(mustModel(t, DefaultProbabilities()), Options{
		Trials: 10,
		Seed:   1,
		Logger: log.New(&buf, "", 0),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), rep.RunID) {
		t.Fatalf("log does not mention run id %s:\n%s", rep.RunID, buf.String())
	}
}

func TestSimulateRejectsUnvalidatedModel(t *testing.T) {
	m := Model{Outcomes: Probabilities{HomeRun: 1}, Advance: DefaultAdvancement()}
	_, err := Simulate(m, Options{Trials: 10, Seed: 1})
	if !errors.Is(err, ErrInvalidModel) {
		t.Fatalf("expected ErrInvalidModel, got %v", err)
	}
}
