// Package rand provides the random primitives the evolutionary core draws
// on: uniform integers and doubles, Gaussian draws, a weighted binary
// choice, and a uniform choice from a sequence. It mirrors the RNG class of
// the source NEAT-Snake implementation (include/NEAT/rng.hpp), wrapped
// around Go's math/rand so genomes can either share a seeded instance for
// determinism or construct one ad-hoc at the call site.
package rand

import (
	"math/rand"
)

// Source is the RNG surface used throughout neat/genetics and neat/network.
// A *Source is safe to share across genomes that must draw from the same
// stream; it is not safe for concurrent use by multiple goroutines.
type Source struct {
	r *rand.Rand
}

// New constructs a Source seeded with the given value. Two Sources
// constructed with the same seed produce identical sequences.
func New(seed int64) *Source {
	return &Source{r: rand.New(rand.NewSource(seed))}
}

// NewFromEntropy constructs a Source seeded from the system entropy, for
// call sites that do not need reproducibility - a fresh RNG per call rather
// than a shared seeded stream.
func NewFromEntropy() *Source {
	return New(rand.Int63())
}

// Intn returns a uniform integer in [0, n). Panics if n <= 0, matching
// math/rand.Intn.
func (s *Source) Intn(n int) int {
	return s.r.Intn(n)
}

// IntRange returns a uniform integer in [min, max], inclusive on both ends,
// the same convention as RNG::next_int(max, min) in the source.
func (s *Source) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.r.Intn(max-min+1)
}

// Float64 returns a uniform double in [0, 1).
func (s *Source) Float64() float64 {
	return s.r.Float64()
}

// UniformRange returns a uniform double in [min, max).
func (s *Source) UniformRange(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + s.r.Float64()*(max-min)
}

// Gaussian returns a draw from a normal distribution with the given mean
// and standard deviation.
func (s *Source) Gaussian(mean, stddev float64) float64 {
	return mean + s.r.NormFloat64()*stddev
}

// Bool returns true with probability p, false otherwise - the weighted
// binary choice used e.g. to decide whether a mutation fires.
func (s *Source) Bool(p float64) bool {
	return s.r.Float64() < p
}

// Choose returns a with probability p and b otherwise.
func Choose[T any](s *Source, p float64, a, b T) T {
	if s.Bool(p) {
		return a
	}
	return b
}

// ChooseFrom returns a uniformly random element of a non-empty slice.
// Panics if the slice is empty.
func ChooseFrom[T any](s *Source, items []T) T {
	return items[s.r.Intn(len(items))]
}

// Sign returns +1 or -1 with equal probability.
func (s *Source) Sign() float64 {
	if s.r.Intn(2) == 0 {
		return -1.0
	}
	return 1.0
}

// Clamp restricts v to [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
