// Package montecarlo runs independent trials in parallel and reduces their
// results to summary statistics.
package montecarlo

import (
	"errors"
	"fmt"
	"io"
	"log"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/xtding233/inning-sim/internal/rng"
)

var ErrInvalidTrials = errors.New("trial count must be >= 1")

// Outcome is one finished trial.
type Outcome struct {
	Value int // metric recorded for the trial, e.g. runs scored
	Steps int // random draws the trial consumed
}

// TrialFunc runs one trial to completion using only src for randomness.
type TrialFunc func(src rng.RandomSource) (Outcome, error)

// Config controls one batch of trials.
type Config struct {
	Trials  int
	Workers int    // <= 0 means runtime.NumCPU()
	Seed    uint64 // 0 means draw a fresh seed

	// Progress is the heartbeat interval; 0 disables it.
	Progress time.Duration
	Logger   *log.Logger
}

// Result holds one outcome per requested trial, in trial index order.
type Result struct {
	RunID    string
	Seed     uint64
	Workers  int
	Elapsed  time.Duration
	Outcomes []Outcome
}

// Values returns the recorded metric of every trial.
func (r Result) Values() []int {
	out := make([]int, len(r.Outcomes))
	for i, o := range r.Outcomes {
		out[i] = o.Value
	}
	return out
}

// MeanSteps returns the average number of draws per trial.
func (r Result) MeanSteps() float64 {
	if len(r.Outcomes) == 0 {
		return 0
	}
	var sum float64
	for _, o := range r.Outcomes {
		sum += float64(o.Steps)
	}
	return sum / float64(len(r.Outcomes))
}

// progress counter batch size; keeps atomic traffic low
const bump = 1024

// Run executes cfg.Trials independent calls of trial across a fixed worker pool.
// Trial i draws from stream i of the seed, so a given seed yields the same
// outcomes whatever the worker count. The first trial error aborts the run.
func Run(trial TrialFunc, cfg Config) (Result, error) {
	if cfg.Trials <= 0 {
		return Result{}, ErrInvalidTrials
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > cfg.Trials {
		workers = cfg.Trials
	}
	seed := cfg.Seed
	if seed == 0 {
		s, err := rng.NewSeed()
		if err != nil {
			return Result{}, err
		}
		seed = s
	}

	res := Result{
		RunID:    uuid.NewString(),
		Seed:     seed,
		Workers:  workers,
		Outcomes: make([]Outcome, cfg.Trials),
	}
	logger.Printf("[RUN %s] %d trials on %d workers (seed %d)", res.RunID, cfg.Trials, workers, seed)

	var (
		done    atomic.Int64
		stopped atomic.Bool
		errOnce sync.Once
		runErr  error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			runErr = err
			stopped.Store(true)
		})
	}

	start := time.Now()
	stopHb := startProgress(logger, res.RunID, int64(cfg.Trials), cfg.Progress, &done)

	var wg sync.WaitGroup
	wg.Add(workers)
	chunk := cfg.Trials / workers
	rem := cfg.Trials % workers
	lo := 0
	for w := 0; w < workers; w++ {
		n := chunk
		if w < rem {
			n++
		}
		go func(lo, hi int) {
			defer wg.Done()
			pending := int64(0)
			for i := lo; i < hi; i++ {
				if stopped.Load() {
					break
				}
				out, err := trial(rng.NewStream(seed, uint64(i)))
				if err != nil {
					fail(fmt.Errorf("trial %d: %w", i, err))
					break
				}
				res.Outcomes[i] = out
				if pending++; pending == bump {
					done.Add(pending)
					pending = 0
				}
			}
			done.Add(pending)
		}(lo, lo+n)
		lo += n
	}
	wg.Wait()
	stopHb()
	res.Elapsed = time.Since(start)

	if runErr != nil {
		logger.Printf("[RUN %s] aborted: %v", res.RunID, runErr)
		return Result{}, runErr
	}
	logger.Printf("[RUN %s] finished %d trials in %s", res.RunID, cfg.Trials, res.Elapsed.Round(time.Millisecond))
	return res, nil
}

// startProgress logs a heartbeat every interval until the returned func is called.
func startProgress(logger *log.Logger, runID string, total int64, interval time.Duration, done *atomic.Int64) func() {
	if interval <= 0 {
		return func() {}
	}
	start := time.Now()
	tk := time.NewTicker(interval)
	stop := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		defer tk.Stop()
		for {
			select {
			case <-tk.C:
				n := done.Load()
				elapsed := time.Since(start).Seconds()
				speed := float64(n) / (elapsed + 1e-9)
				eta := float64(total-n) / (speed + 1e-9)
				logger.Printf("[PROGRESS %s] %d/%d (%.2f%%) | %.0f trials/s | ETA %.0fs",
					runID, n, total, 100*float64(n)/float64(total), speed, eta)
			case <-stop:
				return
			}
		}
	}()
	return func() {
		close(stop)
		<-exited
	}
}
