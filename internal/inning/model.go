// Package inning simulates the runs scored in one half-inning from a
// stationary plate-appearance probability model.
package inning

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidModel = errors.New("invalid probability model")

// Probabilities are the unconditional outcome probabilities of one plate
// appearance. Whatever they leave over is the probability of an out.
type Probabilities struct {
	Walk    float64 // BB
	Single  float64 // 1B
	Double  float64 // 2B
	Triple  float64 // 3B
	HomeRun float64 // HR
}

// Sum returns the combined probability of reaching base.
func (p Probabilities) Sum() float64 {
	return p.Walk + p.Single + p.Double + p.Triple + p.HomeRun
}

// Advancement holds the conditional runner-advancement probabilities that
// split a hit into its resolved events.
type Advancement struct {
	SingleHome  float64 // single: runner from second scores
	SingleThird float64 // single: runner from first reaches third
	DoubleHome  float64 // double: runner from first scores
}

// DefaultAdvancement returns the fixed advancement constants of the model.
func DefaultAdvancement() Advancement {
	return Advancement{SingleHome: 0.5, SingleThird: 0.25, DoubleHome: 0.75}
}

// DefaultProbabilities is a league-flavored baseline used when nothing is configured.
func DefaultProbabilities() Probabilities {
	return Probabilities{Walk: 0.15, Single: 0.08, Double: 0.05, Triple: 0.005, HomeRun: 0.03}
}

// Model is a validated outcome probability model. It is a read-only value
// and safe to share across goroutines.
type Model struct {
	Outcomes Probabilities
	Advance  Advancement
}

// NewModel validates p and a. Every probability must lie in [0,1] and the
// out probability 1-p.Sum() must stay strictly positive, otherwise an inning
// could never reach three outs.
func NewModel(p Probabilities, a Advancement) (Model, error) {
	var errs []string
	check := func(name string, v float64) {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v > 1 {
			errs = append(errs, fmt.Sprintf("%s=%v must be in [0,1]", name, v))
		}
	}
	check("walk", p.Walk)
	check("single", p.Single)
	check("double", p.Double)
	check("triple", p.Triple)
	check("home_run", p.HomeRun)
	check("single_home", a.SingleHome)
	check("single_third", a.SingleThird)
	check("double_home", a.DoubleHome)
	if len(errs) == 0 && 1-p.Sum() <= 0 {
		errs = append(errs, fmt.Sprintf("outcome probabilities sum to %v; out probability must be > 0", p.Sum()))
	}
	if len(errs) > 0 {
		return Model{}, fmt.Errorf("%w: %s", ErrInvalidModel, strings.Join(errs, "; "))
	}
	return Model{Outcomes: p, Advance: a}, nil
}

// Out returns the probability that a plate appearance ends in an out.
func (m Model) Out() float64 {
	return 1 - m.Outcomes.Sum()
}
