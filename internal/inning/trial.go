package inning

import "github.com/xtding233/inning-sim/internal/rng"

// EventSource yields the next plate appearance of an inning.
type EventSource interface {
	Next(src rng.RandomSource) Event
}

// Inning is the result of one simulated half-inning.
type Inning struct {
	Runs             int
	PlateAppearances int
}

// PlayInning plays from the empty state until three outs, accumulating runs.
func PlayInning(events EventSource, src rng.RandomSource) (Inning, error) {
	var res Inning
	state := Start()
	for !state.Terminal() {
		ev := events.Next(src)
		next, err := state.Evolve(ev)
		if err != nil {
			return res, err
		}
		res.Runs += RunsScored(next, state)
		res.PlateAppearances++
		state = next
	}
	return res, nil
}
