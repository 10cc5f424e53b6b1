// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package candidate

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/exp/constraints"

	"github.com/ava-labs/candidatesampler/utils/logging"
	"github.com/ava-labs/candidatesampler/utils/sampler"
)

// Namespace of the metrics registered by a LogUniformSampler.
const Namespace = "candidate_sampler"

// Number is any output type a sampler can cast its results to.
type Number interface {
	constraints.Integer | constraints.Float
}

// Result of a single Sample call.
type Result[T Number] struct {
	// Sampled holds NumSampled distinct classes in the order they were drawn.
	Sampled Array[T] `json:"sampled"`
	// ExpectedTrue has the shape of the true classes passed to Sample.
	ExpectedTrue Array[T] `json:"expectedTrue"`
	// ExpectedSampled has the shape of Sampled.
	ExpectedSampled Array[T] `json:"expectedSampled"`
	// Attempts is the number of draws needed to collect Sampled.
	Attempts int `json:"attempts"`
}

// LogUniformSampler draws candidate classes from an approximately
// log-uniform distribution and reports the expected counts of both the true
// and the sampled classes. Results are cast to T.
//
// A LogUniformSampler is safe for concurrent use. Concurrent callers share a
// single generator trajectory.
type LogUniformSampler[T Number] struct {
	config  Config
	log     logging.Logger
	metrics *metrics
	dist    *sampler.LogUniform
	unique  sampler.Unique
}

// New returns a sampler casting its results to T.
func New[T Number](
	config Config,
	log logging.Logger,
	registerer prometheus.Registerer,
) (*LogUniformSampler[T], error) {
	if err := config.Verify(); err != nil {
		return nil, err
	}
	dist, err := sampler.NewLogUniform(config.RangeMax)
	if err != nil {
		return nil, err
	}
	m, err := newMetrics(Namespace, registerer)
	if err != nil {
		return nil, fmt.Errorf("couldn't register metrics: %w", err)
	}

	log.Info("initialized log-uniform sampler",
		zap.Int("rangeMax", config.RangeMax),
		zap.Int("numSampled", config.NumSampled),
		zap.Int64("seed", config.Seed),
		zap.Float64("logRange", dist.LogRange()),
	)
	return &LogUniformSampler[T]{
		config:  config,
		log:     log,
		metrics: m,
		dist:    dist,
		unique:  sampler.NewUnique(dist, config.Seed),
	}, nil
}

// NewFloat32 returns a sampler with the default float32 output.
func NewFloat32(
	config Config,
	log logging.Logger,
	registerer prometheus.Registerer,
) (*LogUniformSampler[float32], error) {
	return New[float32](config, log, registerer)
}

// Probability returns the base probability of [class].
func (s *LogUniformSampler[_]) Probability(class uint64) float64 {
	return s.dist.Probability(class)
}

// SampleFlat is Sample over a rank-1 array of true classes.
func (s *LogUniformSampler[T]) SampleFlat(trueClasses []int64) (*Result[T], error) {
	return s.Sample(Vector(trueClasses))
}

// Sample draws NumSampled distinct classes and computes the expected counts of
// [trueClasses] and of the drawn classes. Every expected count of a call is
// computed from the same number of draws.
//
// If any true class is outside of [0, RangeMax), no classes are drawn and an
// error wrapping sampler.ErrInvalidArgument is returned.
func (s *LogUniformSampler[T]) Sample(trueClasses Array[int64]) (*Result[T], error) {
	if err := s.verifyClasses(trueClasses); err != nil {
		s.metrics.fail()
		return nil, err
	}

	numSampled := s.config.NumSampled
	sampled, attempts, err := s.unique.SampleUnique(numSampled)
	if err != nil {
		s.metrics.fail()
		return nil, err
	}
	s.metrics.observe(numSampled, attempts)

	expectedCount := func(class uint64) T {
		p := s.dist.Probability(class)
		return T(ExpectedCount(p, attempts, numSampled))
	}
	sampledClasses := Vector(sampled)
	result := &Result[T]{
		Sampled: convert(sampledClasses, func(class uint64) T {
			return T(class)
		}),
		ExpectedTrue: convert(trueClasses, func(class int64) T {
			return expectedCount(uint64(class))
		}),
		ExpectedSampled: convert(sampledClasses, expectedCount),
		Attempts:        attempts,
	}

	if s.log.Enabled(logging.Verbo) {
		s.log.Verbo("sampled candidates",
			zap.Int("numTrue", trueClasses.Len()),
			zap.Int("numSampled", numSampled),
			zap.Int("attempts", attempts),
			zap.Uint64s("sampled", sampled),
		)
	}
	return result, nil
}

func (s *LogUniformSampler[_]) verifyClasses(classes Array[int64]) error {
	if err := classes.Verify(); err != nil {
		return fmt.Errorf("invalid true classes: %w", err)
	}
	rangeMax := int64(s.config.RangeMax)
	for i, class := range classes.Data {
		if class < 0 || class >= rangeMax {
			return fmt.Errorf("%w: true class %d at index %d is outside of [0, %d)",
				sampler.ErrInvalidArgument,
				class,
				i,
				rangeMax,
			)
		}
	}
	return nil
}
