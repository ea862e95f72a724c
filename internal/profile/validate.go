package profile

import (
	"fmt"
	"math"
	"strings"
)

// ValidateRaw checks the semantic constraints of a RawConfig and reports
// every violation at once. Unset fields are not checked.
func ValidateRaw(cfg RawConfig) error {
	var errs []string

	inUnit := func(name string, v *float64) {
		if v == nil {
			return
		}
		if math.IsNaN(*v) || *v < 0 || *v > 1 {
			errs = append(errs, fmt.Sprintf("%s must be in [0,1]", name))
		}
	}
	o := cfg.Outcomes
	inUnit("outcomes.walk", o.Walk)
	inUnit("outcomes.single", o.Single)
	inUnit("outcomes.double", o.Double)
	inUnit("outcomes.triple", o.Triple)
	inUnit("outcomes.home_run", o.HomeRun)

	var sum float64
	for _, v := range []*float64{o.Walk, o.Single, o.Double, o.Triple, o.HomeRun} {
		if v != nil {
			sum += *v
		}
	}
	if sum >= 1 {
		errs = append(errs, fmt.Sprintf("outcomes sum to %g; must leave a positive out probability", sum))
	}

	if a := cfg.Advancement; a != nil {
		inUnit("advancement.single_home", a.SingleHome)
		inUnit("advancement.single_third", a.SingleThird)
		inUnit("advancement.double_home", a.DoubleHome)
	}

	if len(errs) > 0 {
		return fmt.Errorf("profile validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
