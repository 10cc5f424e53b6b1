// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"fmt"
	"sync"

	"github.com/ava-labs/candidatesampler/utils/set"
)

var _ Unique = (*uniqueResample)(nil)

// Unique samples distinct values from a skewed distribution
type Unique interface {
	// SampleUnique returns [count] distinct classes in the order they were
	// accepted, along with the total number of draws performed, including
	// the draws that were rejected as duplicates.
	SampleUnique(count int) ([]uint64, int, error)
}

// NewUnique returns a sampler drawing from [dist]. Two samplers created with
// the same distribution and [seed] produce identical sequences of results.
func NewUnique(dist *LogUniform, seed int64) Unique {
	return &uniqueResample{
		dist:  dist,
		rng:   newRNG(seed),
		drawn: set.NewSet[uint64](0),
	}
}

// uniqueResample allows for sampling over a log-uniform distribution without
// replacement.
//
// Sampling is performed by sampling with replacement and resampling if a
// duplicate is sampled.
//
// Sampling is performed in O(attempts) time and O(count) space. The expected
// number of attempts grows as count approaches the size of the support.
type uniqueResample struct {
	// lock serializes the draw loop so that concurrent callers observe a
	// single seed trajectory.
	lock  sync.Mutex
	dist  *LogUniform
	rng   *rng
	drawn set.Set[uint64]
}

func (s *uniqueResample) SampleUnique(count int) ([]uint64, int, error) {
	if count <= 0 {
		return nil, 0, fmt.Errorf("%w: sample count must be positive but got %d", ErrInvalidArgument, count)
	}
	if uint64(count) > s.dist.rangeMax {
		return nil, 0, fmt.Errorf("%w: can't sample %d unique values from a range of %d",
			ErrInvalidArgument,
			count,
			s.dist.rangeMax,
		)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	s.drawn.Clear()

	var (
		results  = make([]uint64, 0, count)
		attempts int
	)
	for len(results) < count {
		draw := s.dist.sample(s.rng)
		attempts++
		if s.drawn.Contains(draw) {
			continue
		}
		s.drawn.Add(draw)
		results = append(results, draw)
	}
	return results, attempts, nil
}
