// Package inningsim implements the inningsim command: estimate runs scored in
// a half-inning by Monte Carlo simulation.
package inningsim

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/xtding233/inning-sim/internal/inning"
	"github.com/xtding233/inning-sim/internal/profile"
)

// Config holds inningsim command configuration.
type Config struct {
	Trials     int           `env:"INNINGSIM_TRIALS"`
	Workers    int           `env:"INNINGSIM_WORKERS"`
	Seed       uint64        `env:"INNINGSIM_SEED"`
	ProfileDir string        `env:"INNINGSIM_PROFILE_DIR"`
	Profile    string        `env:"INNINGSIM_PROFILE"`
	Progress   time.Duration `env:"INNINGSIM_PROGRESS"  envDefault:"0s"`
	Histogram  bool          `env:"INNINGSIM_HISTOGRAM"`
	Verbose    bool          `env:"INNINGSIM_VERBOSE"`

	Walk        *float64 `env:"INNINGSIM_BB"`
	Single      *float64 `env:"INNINGSIM_1B"`
	Double      *float64 `env:"INNINGSIM_2B"`
	Triple      *float64 `env:"INNINGSIM_3B"`
	HomeRun     *float64 `env:"INNINGSIM_HR"`
	SingleHome  *float64 `env:"INNINGSIM_SINGLE_HOME"`
	SingleThird *float64 `env:"INNINGSIM_SINGLE_THIRD"`
	DoubleHome  *float64 `env:"INNINGSIM_DOUBLE_HOME"`
}

// optFloat is a flag that stays nil unless given.
type optFloat struct{ p **float64 }

func (o optFloat) String() string {
	if o.p == nil || *o.p == nil {
		return ""
	}
	return strconv.FormatFloat(**o.p, 'g', -1, 64)
}

func (o optFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*o.p = &v
	return nil
}

// ParseConfig reads the environment, then lets flags override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.Trials, "n", cfg.Trials, "number of simulated innings (required)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel workers (0 = one per CPU)")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducibility (0 = random)")
	fs.StringVar(&cfg.ProfileDir, "profile-dir", cfg.ProfileDir, "directory holding default.yaml and profiles/")
	fs.StringVar(&cfg.Profile, "profile", cfg.Profile, "named profile under profile-dir/profiles")
	fs.DurationVar(&cfg.Progress, "progress", cfg.Progress, "progress log interval (0 = off)")
	fs.BoolVar(&cfg.Histogram, "histogram", cfg.Histogram, "print the runs-per-inning distribution")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "log the resolved outcome weights")
	fs.Var(optFloat{&cfg.Walk}, "bb", "walk probability")
	fs.Var(optFloat{&cfg.Single}, "1b", "single probability")
	fs.Var(optFloat{&cfg.Double}, "2b", "double probability")
	fs.Var(optFloat{&cfg.Triple}, "3b", "triple probability")
	fs.Var(optFloat{&cfg.HomeRun}, "hr", "home run probability")
	fs.Var(optFloat{&cfg.SingleHome}, "single-home", "P(runner from second scores | single)")
	fs.Var(optFloat{&cfg.SingleThird}, "single-third", "P(runner from first takes third | single)")
	fs.Var(optFloat{&cfg.DoubleHome}, "double-home", "P(runner from first scores | double)")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Trials <= 0 {
		return Config{}, errors.New("-n must be a positive number of trials")
	}
	return cfg, nil
}

func (c Config) overrides() profile.Overrides {
	return profile.Overrides{
		Walk:        c.Walk,
		Single:      c.Single,
		Double:      c.Double,
		Triple:      c.Triple,
		HomeRun:     c.HomeRun,
		SingleHome:  c.SingleHome,
		SingleThird: c.SingleThird,
		DoubleHome:  c.DoubleHome,
	}
}

// Run executes the inningsim command.
func Run(cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	logger := log.New(errOut, "", log.LstdFlags)

	_, model, err := profile.NewLoader(cfg.ProfileDir).Resolve(cfg.Profile, cfg.overrides())
	if err != nil {
		return err
	}
	if cfg.Verbose {
		weights := inning.Expand(model)
		var total float64
		for _, w := range weights {
			total += w.Weight
		}
		for _, w := range weights {
			logger.Printf("weight %-24s %.6f  p=%.6f", w.Event, w.Weight, w.Weight/total)
		}
	}

	rep, err := inning.Simulate(model, inning.Options{
		Trials:   cfg.Trials,
		Workers:  cfg.Workers,
		Seed:     cfg.Seed,
		Progress: cfg.Progress,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	return Render(out, rep, cfg.Histogram)
}
