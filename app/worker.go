// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/ava-labs/candidatesampler/candidate"
	"github.com/ava-labs/candidatesampler/config"
	"github.com/ava-labs/candidatesampler/utils/logging"
)

type worker interface {
	run(ctx context.Context) error
}

// record is a single line of output.
type record[T candidate.Number] struct {
	Worker    int                  `json:"worker"`
	Iteration int                  `json:"iteration"`
	Seed      int64                `json:"seed"`
	Result    *candidate.Result[T] `json:"result"`
}

type samplerWorker[T candidate.Number] struct {
	id          int
	seed        int64
	log         logging.Logger
	sampler     *candidate.LogUniformSampler[T]
	trueClasses []int64
	iterations  int
	// limiter is nil when the call rate is unlimited.
	limiter *rate.Limiter
	out     *resultWriter
}

// newWorker creates the [id]th worker. Each worker owns an independent
// sampler seeded with seed+id whose metrics are labeled with the worker id.
func newWorker(
	id int,
	c config.Config,
	log logging.Logger,
	registerer prometheus.Registerer,
	out *resultWriter,
) (worker, error) {
	samplerConfig := c.Sampler
	samplerConfig.Seed += int64(id)

	log = log.With(zap.Int("worker", id))
	registerer = prometheus.WrapRegistererWith(
		prometheus.Labels{"worker": strconv.Itoa(id)},
		registerer,
	)

	switch c.OutputType {
	case config.Float32:
		return newSamplerWorker[float32](id, samplerConfig, c, log, registerer, out)
	case config.Float64:
		return newSamplerWorker[float64](id, samplerConfig, c, log, registerer, out)
	case config.Int32:
		return newSamplerWorker[int32](id, samplerConfig, c, log, registerer, out)
	case config.Int64:
		return newSamplerWorker[int64](id, samplerConfig, c, log, registerer, out)
	default:
		return nil, fmt.Errorf("unsupported output type %q", c.OutputType)
	}
}

func newSamplerWorker[T candidate.Number](
	id int,
	samplerConfig candidate.Config,
	c config.Config,
	log logging.Logger,
	registerer prometheus.Registerer,
	out *resultWriter,
) (*samplerWorker[T], error) {
	s, err := candidate.New[T](samplerConfig, log, registerer)
	if err != nil {
		return nil, err
	}
	w := &samplerWorker[T]{
		id:          id,
		seed:        samplerConfig.Seed,
		log:         log,
		sampler:     s,
		trueClasses: c.TrueClasses,
		iterations:  c.Iterations,
		out:         out,
	}
	if c.CallsPerSecond > 0 {
		w.limiter = rate.NewLimiter(rate.Limit(c.CallsPerSecond), 1)
	}
	return w, nil
}

// run logs any panic raised while sampling before re-panicking.
func (w *samplerWorker[T]) run(ctx context.Context) error {
	var err error
	w.log.RecoverAndPanic(func() {
		err = w.sampleAll(ctx)
	})
	return err
}

func (w *samplerWorker[T]) sampleAll(ctx context.Context) error {
	for i := 0; i < w.iterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if w.limiter != nil {
			if err := w.limiter.Wait(ctx); err != nil {
				return err
			}
		}

		result, err := w.sampler.SampleFlat(w.trueClasses)
		if err != nil {
			return fmt.Errorf("worker %d failed on iteration %d: %w", w.id, i, err)
		}
		if err := w.out.writeResult(record[T]{
			Worker:    w.id,
			Iteration: i,
			Seed:      w.seed,
			Result:    result,
		}); err != nil {
			return fmt.Errorf("couldn't write result: %w", err)
		}
	}
	w.log.Debug("worker finished",
		zap.Int("iterations", w.iterations),
	)
	return nil
}
