// Package rng provides the random sources used by the simulation engine.
package rng

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

// RandomSource abstracts a uniform generator on [0, 1).
type RandomSource interface {
	Float64() float64
}

// crypto random: default when no seed is requested
type cryptoRNG struct{}

func (cryptoRNG) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	u := binary.BigEndian.Uint64(buf[:]) >> 11 // 53 bits
	return float64(u) / (1 << 53)
}

// Default returns a non-reproducible crypto-backed source.
func Default() RandomSource { return cryptoRNG{} }

// seeded PCG source; replicable
type seededRNG struct{ r *rand.Rand }

func (s *seededRNG) Float64() float64 { return s.r.Float64() }

// NewSeeded returns a reproducible source for seed.
func NewSeeded(seed uint64) RandomSource {
	return NewStream(seed, 0)
}

// NewStream returns the stream-th independent PCG sequence of seed.
// Trials use their index as stream so a run does not depend on scheduling.
func NewStream(seed, stream uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, stream))}
}

// NewSeed draws a fresh non-zero seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := cryptoRand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	seed := binary.LittleEndian.Uint64(b[:])
	if seed == 0 {
		seed = 1
	}
	return seed, nil
}
