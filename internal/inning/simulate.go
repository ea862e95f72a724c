package inning

import (
	"log"
	"time"

	"github.com/xtding233/inning-sim/internal/montecarlo"
	"github.com/xtding233/inning-sim/internal/rng"
)

// Options controls a simulation run.
type Options struct {
	Trials   int
	Workers  int    // <= 0 means one per CPU
	Seed     uint64 // 0 means a fresh random seed
	Progress time.Duration
	Logger   *log.Logger
}

// Report summarizes a finished run.
type Report struct {
	RunID   string
	Seed    uint64
	Workers int
	Elapsed time.Duration
	Weights []Weighted

	// Runs per inning
	Stats montecarlo.Stats
	// Average batters to come up per inning
	MeanPlateAppearances float64
}

// Simulate estimates the distribution of runs per half-inning under m.
// A Model built without NewModel is validated here, so an out probability of
// zero cannot produce an inning that never ends.
func Simulate(m Model, opts Options) (Report, error) {
	if _, err := NewModel(m.Outcomes, m.Advance); err != nil {
		return Report{}, err
	}
	sampler := NewSampler(m)
	trial := func(src rng.RandomSource) (montecarlo.Outcome, error) {
		inn, err := PlayInning(sampler, src)
		if err != nil {
			return montecarlo.Outcome{}, err
		}
		return montecarlo.Outcome{Value: inn.Runs, Steps: inn.PlateAppearances}, nil
	}

	res, err := montecarlo.Run(trial, montecarlo.Config{
		Trials:   opts.Trials,
		Workers:  opts.Workers,
		Seed:     opts.Seed,
		Progress: opts.Progress,
		Logger:   opts.Logger,
	})
	if err != nil {
		return Report{}, err
	}
	stats, err := montecarlo.Summarize(res.Values())
	if err != nil {
		return Report{}, err
	}
	return Report{
		RunID:                res.RunID,
		Seed:                 res.Seed,
		Workers:              res.Workers,
		Elapsed:              res.Elapsed,
		Weights:              sampler.Weights(),
		Stats:                stats,
		MeanPlateAppearances: res.MeanSteps(),
	}, nil
}
