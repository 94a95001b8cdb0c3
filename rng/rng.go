package rng

import (
	"errors"
	"math/rand"
)

// DefaultSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// ErrSampleSize indicates a negative sample size or one larger than the
// candidate population.
var ErrSampleSize = errors.New("rng: sample size out of range")

// FromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func FromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// OrDefault returns r, or a fresh DefaultSeed stream when r is nil.
func OrDefault(r *rand.Rand) *rand.Rand {
	if r != nil {
		return r
	}

	return FromSeed(0)
}

// Point draws x then y uniformly from [0,1).
//
// Complexity: O(1).
func Point(r *rand.Rand) (x, y float64) {
	x = r.Float64()
	y = r.Float64()

	return x, y
}

// Sample returns k distinct elements of candidates chosen uniformly at random
// without replacement, in selection order. candidates is not modified.
// k<0 or k>len(candidates) returns ErrSampleSize. A nil r uses the
// DefaultSeed stream.
//
// The selection is a partial Fisher–Yates shuffle over a private copy, so
// exactly k draws are consumed from r.
//
// Complexity: O(len(candidates)) time and space.
func Sample(candidates []int, k int, r *rand.Rand) ([]int, error) {
	n := len(candidates)
	if k < 0 || k > n {
		return nil, ErrSampleSize
	}
	if k == 0 {
		return []int{}, nil
	}
	r = OrDefault(r)

	pool := make([]int, n)
	copy(pool, candidates)

	var i, j int
	for i = 0; i < k; i++ {
		j = i + r.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return pool[:k:k], nil
}
