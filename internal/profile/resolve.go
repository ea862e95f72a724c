// resolve.go
package profile

import "github.com/xtding233/inning-sim/internal/inning"

// Overrides carries per-run values, e.g. from command-line flags. They win
// over every file layer.
type Overrides struct {
	Walk        *float64
	Single      *float64
	Double      *float64
	Triple      *float64
	HomeRun     *float64
	SingleHome  *float64
	SingleThird *float64
	DoubleHome  *float64
}

type Resolver interface {
	// Returns the merged RawConfig and the validated model built from it
	Resolve(name string, o Overrides) (RawConfig, inning.Model, error)
}

var _ Resolver = (*Loader)(nil)

// Resolve merges default → profile → overrides, validates the result and
// fills anything still unset from the built-in defaults.
func (l *Loader) Resolve(name string, o Overrides) (RawConfig, inning.Model, error) {
	raw, err := l.LoadMerged(name)
	if err != nil {
		return RawConfig{}, inning.Model{}, err
	}
	raw = mergeRaw(raw, RawConfig{
		Outcomes: OutcomeConfig{
			Walk:    o.Walk,
			Single:  o.Single,
			Double:  o.Double,
			Triple:  o.Triple,
			HomeRun: o.HomeRun,
		},
		Advancement: &AdvancementConfig{
			SingleHome:  o.SingleHome,
			SingleThird: o.SingleThird,
			DoubleHome:  o.DoubleHome,
		},
	})
	if err := ValidateRaw(raw); err != nil {
		return raw, inning.Model{}, err
	}
	m, err := inning.NewModel(probabilities(raw), advancement(raw))
	if err != nil {
		return raw, inning.Model{}, err
	}
	return raw, m, nil
}

// probabilities reads outcome probabilities; unset ones take the built-in baseline.
func probabilities(raw RawConfig) inning.Probabilities {
	p := inning.DefaultProbabilities()
	o := raw.Outcomes
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&p.Walk, o.Walk)
	set(&p.Single, o.Single)
	set(&p.Double, o.Double)
	set(&p.Triple, o.Triple)
	set(&p.HomeRun, o.HomeRun)
	return p
}

func advancement(raw RawConfig) inning.Advancement {
	a := inning.DefaultAdvancement()
	if raw.Advancement == nil {
		return a
	}
	if v := raw.Advancement.SingleHome; v != nil {
		a.SingleHome = *v
	}
	if v := raw.Advancement.SingleThird; v != nil {
		a.SingleThird = *v
	}
	if v := raw.Advancement.DoubleHome; v != nil {
		a.DoubleHome = *v
	}
	return a
}
