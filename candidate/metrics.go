// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package candidate

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/ava-labs/candidatesampler/utils/timer/mockable"
	"github.com/ava-labs/candidatesampler/utils/wrappers"

	safemath "github.com/ava-labs/candidatesampler/utils/math"
)

const attemptRatioHalflife = time.Minute

type metrics struct {
	calls      prometheus.Counter
	draws      prometheus.Counter
	rejections prometheus.Counter
	failures   prometheus.Counter

	// attemptRatioLock keeps the gauge equal to the averager's latest value.
	attemptRatioLock sync.Mutex
	// attemptRatio reports the smoothed number of draws needed per accepted
	// class. It approaches 1 when rejections are rare.
	attemptRatio         prometheus.Gauge
	attemptRatioAverager safemath.Averager
	clock                mockable.Clock
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		calls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calls",
			Help:      "number of successful sample calls",
		}),
		draws: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "draws",
			Help:      "number of draws from the base distribution, including rejected duplicates",
		}),
		rejections: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rejections",
			Help:      "number of draws rejected as duplicates",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures",
			Help:      "number of sample calls rejected due to invalid arguments",
		}),
		attemptRatio: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "attempt_ratio",
			Help:      "exponential moving average of draws per sampled class",
		}),
		attemptRatioAverager: safemath.NewUninitializedAverager(attemptRatioHalflife),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.calls),
		registerer.Register(m.draws),
		registerer.Register(m.rejections),
		registerer.Register(m.failures),
		registerer.Register(m.attemptRatio),
	)
	return m, errs.Err
}

func (m *metrics) observe(numSampled, attempts int) {
	m.calls.Inc()
	m.draws.Add(float64(attempts))
	m.rejections.Add(float64(attempts - numSampled))

	m.attemptRatioLock.Lock()
	defer m.attemptRatioLock.Unlock()

	m.attemptRatioAverager.Observe(float64(attempts)/float64(numSampled), m.clock.Time())
	m.attemptRatio.Set(m.attemptRatioAverager.Read())
}

func (m *metrics) fail() {
	m.failures.Inc()
}
