// Package rng provides the random source seam used by map generation and
// layout, plus a small weighted discrete sampler.
//
// Production code uses [Global], which draws from the unseeded process-wide
// generator: maps are not meant to be reproducible. Tests and the --seed
// flag use [New], which returns a seeded PCG generator.
package rng

import (
	"math/rand/v2"
)

// Source is the subset of *rand.Rand the engine needs.
type Source interface {
	Float64() float64
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

// New returns a reproducible source for the given seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

type global struct{}

func (global) Float64() float64                   { return rand.Float64() }
func (global) IntN(n int) int                     { return rand.IntN(n) }
func (global) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Global returns the unseeded process-wide source.
func Global() Source { return global{} }

// OrGlobal returns src, or the global source when src is nil.
func OrGlobal(src Source) Source {
	if src == nil {
		return Global()
	}
	return src
}

// IntBetween returns a uniform integer in [lo, hi]. If hi < lo it returns lo.
func IntBetween(src Source, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + src.IntN(hi-lo+1)
}
