package inning

import (
	"sort"

	"github.com/xtding233/inning-sim/internal/rng"
)

// Weighted pairs a resolved event with its probability.
type Weighted struct {
	Event  Event
	Weight float64
}

// Sampler draws resolved events from a compiled model. It is immutable after
// construction; all per-draw state lives in the RandomSource.
type Sampler struct {
	table []Weighted
	cum   []float64 // cum[i] = sum of table[0..i] weights
}

// Expand splits the model's outcome categories into resolved events.
// Single(home=false, third=true) is listed with weight 0 so the table covers
// every combination while never producing it.
func Expand(m Model) []Weighted {
	p, a := m.Outcomes, m.Advance
	return []Weighted{
		{SingleEvent(true, true), p.Single * a.SingleHome * a.SingleThird},
		{SingleEvent(true, false), p.Single * a.SingleHome * (1 - a.SingleThird)},
		{SingleEvent(false, true), 0},
		{SingleEvent(false, false), p.Single * (1 - a.SingleHome) * (1 - a.SingleThird)},
		{DoubleEvent(true), p.Double * a.DoubleHome},
		{DoubleEvent(false), p.Double * (1 - a.DoubleHome)},
		{EventTriple, p.Triple},
		{EventHomeRun, p.HomeRun},
		{EventWalk, p.Walk},
		{EventOut, m.Out()},
	}
}

// NewSampler compiles m into a cumulative weight table.
func NewSampler(m Model) *Sampler {
	table := Expand(m)
	cum := make([]float64, len(table))
	var acc float64
	for i, w := range table {
		acc += w.Weight
		cum[i] = acc
	}
	return &Sampler{table: table, cum: cum}
}

// Weights returns a copy of the expanded table.
func (s *Sampler) Weights() []Weighted {
	return append([]Weighted(nil), s.table...)
}

// Next draws one event with probability proportional to its weight.
// A nil src falls back to the crypto-backed default source.
func (s *Sampler) Next(src rng.RandomSource) Event {
	if src == nil {
		src = rng.Default()
	}
	total := s.cum[len(s.cum)-1]
	u := src.Float64() * total
	i := sort.Search(len(s.cum), func(i int) bool { return s.cum[i] > u })
	if i == len(s.cum) {
		// u rounded up to total; take the last event that carries weight
		i = len(s.table) - 1
		for i > 0 && s.table[i].Weight == 0 {
			i--
		}
	}
	return s.table[i].Event
}
