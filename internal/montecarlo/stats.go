package montecarlo

import (
	"errors"
	"math"
	"sort"
)

var ErrEmptySample = errors.New("statistics over an empty sample are undefined")

// Bucket counts how many trials produced Value.
type Bucket struct {
	Value int
	Count int
}

// Stats summarizes simulation results.
type Stats struct {
	N      int
	Mean   float64
	StdDev float64 // sample standard deviation (n-1)
	StdErr float64 // StdDev / sqrt(N)
	Min    int
	Max    int
	P50    float64
	P90    float64
	P99    float64
	// Distribution is ordered by Value ascending.
	Distribution []Bucket
}

// Summarize computes mean, sample deviation, standard error, percentiles and
// the value distribution of xs. Order of xs does not matter.
func Summarize(xs []int) (Stats, error) {
	n := len(xs)
	if n == 0 {
		return Stats{}, ErrEmptySample
	}
	m := Mean(xs)
	sd := StdDev(xs, m)

	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if n == 1 || p <= 0 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	var dist []Bucket
	for _, v := range cp {
		if k := len(dist); k > 0 && dist[k-1].Value == v {
			dist[k-1].Count++
			continue
		}
		dist = append(dist, Bucket{Value: v, Count: 1})
	}

	return Stats{
		N:            n,
		Mean:         m,
		StdDev:       sd,
		StdErr:       sd / math.Sqrt(float64(n)),
		Min:          cp[0],
		Max:          cp[n-1],
		P50:          percentile(0.50),
		P90:          percentile(0.90),
		P99:          percentile(0.99),
		Distribution: dist,
	}, nil
}

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	return sum / float64(len(xs))
}

// StdDev returns the sample standard deviation of xs around the supplied mean.
// A single observation has no spread and yields 0.
func StdDev(xs []int, mean float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	return math.Sqrt(acc / float64(len(xs)-1))
}
