// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"sync"

	"gonum.org/v1/gonum/mathext/prng"
)

// float64Scale maps the top 53 bits of a uniform uint64 onto [0, 1).
const float64Scale = 1.0 / (1 << 53)

// newRNG returns a generator whose trajectory is fully determined by [seed].
func newRNG(seed int64) *rng {
	// We don't use a cryptographically secure source of randomness here, as
	// there's no need to ensure a truly random sampling.
	source := prng.NewMT19937()
	source.Seed(uint64(seed))
	return &rng{rng: source}
}

type rng struct {
	lock sync.Mutex
	rng  Source
}

type Source interface {
	// Uint64 returns a random number in [0, MaxUint64] and advances the
	// generator's state.
	Uint64() uint64
}

// Float64 returns a pseudo-random number in [0, 1).
func (r *rng) Float64() float64 {
	return float64(r.uint64()>>11) * float64Scale
}

// uint64 returns a random number in [0, MaxUint64]
func (r *rng) uint64() uint64 {
	// Note: We must grab a write lock here because rng.Uint64 internally
	// modifies state.
	r.lock.Lock()
	n := r.rng.Uint64()
	r.lock.Unlock()
	return n
}
