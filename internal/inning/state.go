package inning

import (
	"errors"
	"fmt"
)

// MaxOuts ends a half-inning.
const MaxOuts = 3

var (
	ErrIllegalAdvancement = errors.New("illegal advancement: trailing runner cannot take a base unless the lead runner does")
	ErrTerminalState      = errors.New("inning is over: no play after three outs")
	ErrUnknownEvent       = errors.New("unknown event kind")
)

// State is the base-out state of a half-inning. Bases[0..2] are first,
// second and third, each 0 (empty) or 1 (occupied). States are values:
// Evolve never modifies its receiver.
type State struct {
	Bases [3]int
	Outs  int
}

// Start returns the empty-bases, no-out state every inning begins from.
func Start() State { return State{} }

// Terminal reports whether the inning is over.
func (s State) Terminal() bool { return s.Outs >= MaxOuts }

// Runners counts occupied bases.
func (s State) Runners() int { return s.Bases[0] + s.Bases[1] + s.Bases[2] }

func (s State) String() string {
	return fmt.Sprintf("%v %d out", s.Bases, s.Outs)
}

// Evolve returns the state after ev.
func (s State) Evolve(ev Event) (State, error) {
	if s.Terminal() {
		return s, ErrTerminalState
	}
	b := s.Bases
	switch ev.Kind {
	case Out:
		return State{Bases: b, Outs: s.Outs + 1}, nil

	case Walk:
		// forced runners only
		b2 := b[1]
		if b[0] == 1 {
			b2 = 1
		}
		b3 := b[2]
		if b[0] == 1 && b[1] == 1 {
			b3 = 1
		}
		return State{Bases: [3]int{1, b2, b3}, Outs: s.Outs}, nil

	case Single:
		switch {
		case ev.Home && ev.Third:
			return State{Bases: [3]int{1, 0, b[0]}, Outs: s.Outs}, nil
		case ev.Home:
			return State{Bases: [3]int{1, b[0], 0}, Outs: s.Outs}, nil
		case ev.Third:
			return s, fmt.Errorf("%w: %s", ErrIllegalAdvancement, ev)
		default:
			return State{Bases: [3]int{1, b[0], b[1]}, Outs: s.Outs}, nil
		}

	case Double:
		if ev.Home {
			return State{Bases: [3]int{0, 1, 0}, Outs: s.Outs}, nil
		}
		return State{Bases: [3]int{0, 1, b[0]}, Outs: s.Outs}, nil

	case Triple:
		return State{Bases: [3]int{0, 0, 1}, Outs: s.Outs}, nil

	case HomeRun:
		return State{Outs: s.Outs}, nil
	}
	return s, fmt.Errorf("%w: %d", ErrUnknownEvent, ev.Kind)
}

// RunsScored returns the runs that crossed the plate going from prev to next.
// Before the play there are the runners plus the batter; afterwards each of
// them is on base, scored or out, so runs = 1 - Δouts - Δrunners.
func RunsScored(next, prev State) int {
	return 1 - (next.Outs - prev.Outs) - (next.Runners() - prev.Runners())
}
