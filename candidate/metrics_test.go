// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package candidate

import (
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	dto "github.com/prometheus/client_model/go"

	"github.com/ava-labs/candidatesampler/utils/logging"
)

func gaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	metric := &dto.Metric{}
	require.NoError(t, gauge.Write(metric))
	return metric.GetGauge().GetValue()
}

func TestMetricsObserve(t *testing.T) {
	require := require.New(t)

	m, err := newMetrics("test", prometheus.NewRegistry())
	require.NoError(err)

	now := time.Unix(1_000_000, 0)
	m.clock.Set(now)

	m.observe(4, 4)
	require.Equal(1.0, testutil.ToFloat64(m.calls))
	require.Equal(4.0, testutil.ToFloat64(m.draws))
	require.Zero(testutil.ToFloat64(m.rejections))
	require.Equal(1.0, gaugeValue(t, m.attemptRatio))

	m.clock.Set(now.Add(attemptRatioHalflife))
	m.observe(4, 12)
	require.Equal(2.0, testutil.ToFloat64(m.calls))
	require.Equal(16.0, testutil.ToFloat64(m.draws))
	require.Equal(8.0, testutil.ToFloat64(m.rejections))

	// After one halflife the first observation carries half the weight.
	require.InDelta((3+0.5*1)/1.5, gaugeValue(t, m.attemptRatio), 1e-9)

	m.fail()
	require.Equal(1.0, testutil.ToFloat64(m.failures))
}

func TestSamplerMetrics(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	config := Config{
		RangeMax:   20,
		NumSampled: 10,
		Seed:       6,
	}
	s, err := NewFloat32(config, logging.NoLog{}, registry)
	require.NoError(err)

	totalAttempts := 0
	for i := 0; i < 5; i++ {
		result, err := s.SampleFlat([]int64{0})
		require.NoError(err)
		totalAttempts += result.Attempts
	}
	_, err = s.SampleFlat([]int64{20})
	require.Error(err)

	require.Equal(5.0, testutil.ToFloat64(s.metrics.calls))
	require.Equal(float64(totalAttempts), testutil.ToFloat64(s.metrics.draws))
	require.Equal(float64(totalAttempts-5*config.NumSampled), testutil.ToFloat64(s.metrics.rejections))
	require.Equal(1.0, testutil.ToFloat64(s.metrics.failures))

	families, err := registry.Gather()
	require.NoError(err)
	require.Len(families, 5)
}

func TestMetricsObserveConcurrent(t *testing.T) {
	require := require.New(t)

	m, err := newMetrics("test", prometheus.NewRegistry())
	require.NoError(err)
	m.clock.Set(time.Unix(1_000_000, 0))

	const (
		callers = 8
		calls   = 100
	)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < calls; j++ {
				m.observe(4, 4+i)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(float64(callers*calls), testutil.ToFloat64(m.calls))
	// Every observation shares one instant, so the average is the plain mean
	// of (4+i)/4 over the callers.
	require.InDelta(1+float64(callers-1)/8, gaugeValue(t, m.attemptRatio), 1e-9)
	require.Equal(m.attemptRatioAverager.Read(), gaugeValue(t, m.attemptRatio))
}
