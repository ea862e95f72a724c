package inning

import "fmt"

// Kind is the plate-appearance category of an Event.
type Kind uint8

const (
	Out Kind = iota
	Walk
	Single
	Double
	Triple
	HomeRun
)

var kindNames = [...]string{
	Out:     "OUT",
	Walk:    "BB",
	Single:  "1B",
	Double:  "2B",
	Triple:  "3B",
	HomeRun: "HR",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Event is a fully resolved plate appearance.
//
// Home and Third only carry meaning for Single (Home and Third) and Double
// (Home). On a single, Third without Home is not a legal play: a trailing
// runner cannot pass a base the lead runner did not clear.
type Event struct {
	Kind  Kind
	Home  bool // lead runner scores (single: from second; double: from first)
	Third bool // single only: runner from first reaches third
}

var (
	EventOut     = Event{Kind: Out}
	EventWalk    = Event{Kind: Walk}
	EventTriple  = Event{Kind: Triple}
	EventHomeRun = Event{Kind: HomeRun}
)

// SingleEvent returns a single with the given runner advancement.
func SingleEvent(home, third bool) Event {
	return Event{Kind: Single, Home: home, Third: third}
}

// DoubleEvent returns a double; home reports whether the runner from first scores.
func DoubleEvent(home bool) Event {
	return Event{Kind: Double, Home: home}
}

func (e Event) String() string {
	switch e.Kind {
	case Single:
		return fmt.Sprintf("%s(home=%t,third=%t)", e.Kind, e.Home, e.Third)
	case Double:
		return fmt.Sprintf("%s(home=%t)", e.Kind, e.Home)
	default:
		return e.Kind.String()
	}
}
