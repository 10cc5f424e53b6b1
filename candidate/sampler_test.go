// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package candidate

import (
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ava-labs/candidatesampler/utils/logging"
	"github.com/ava-labs/candidatesampler/utils/sampler"
	"github.com/ava-labs/candidatesampler/utils/set"
)

func newTestSampler[T Number](t *testing.T, config Config) *LogUniformSampler[T] {
	s, err := New[T](config, logging.NoLog{}, prometheus.NewRegistry())
	require.NoError(t, err)
	return s
}

func TestNewInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		config Config
	}{
		{
			name: "zero range",
			config: Config{
				RangeMax:   0,
				NumSampled: 1,
			},
		},
		{
			name: "negative range",
			config: Config{
				RangeMax:   -5,
				NumSampled: 1,
			},
		},
		{
			name: "zero samples",
			config: Config{
				RangeMax:   10,
				NumSampled: 0,
			},
		},
		{
			name: "more samples than classes",
			config: Config{
				RangeMax:   10,
				NumSampled: 11,
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewFloat32(test.config, logging.NoLog{}, prometheus.NewRegistry())
			require.ErrorIs(t, err, sampler.ErrInvalidArgument)
		})
	}
}

func TestNewDuplicateMetrics(t *testing.T) {
	require := require.New(t)

	registry := prometheus.NewRegistry()
	config := Config{
		RangeMax:   10,
		NumSampled: 3,
	}
	_, err := NewFloat32(config, logging.NoLog{}, registry)
	require.NoError(err)

	_, err = NewFloat32(config, logging.NoLog{}, registry)
	require.Error(err)
}

func TestSampleEndToEnd(t *testing.T) {
	require := require.New(t)

	config := Config{
		RangeMax:   10,
		NumSampled: 3,
		Seed:       1,
	}
	s0 := newTestSampler[float32](t, config)
	s1 := newTestSampler[float32](t, config)

	trueClasses := []int64{0, 0, 5}
	r0, err := s0.SampleFlat(trueClasses)
	require.NoError(err)
	r1, err := s1.SampleFlat(trueClasses)
	require.NoError(err)

	require.Equal(r0.Sampled, r1.Sampled)
	require.Equal(r0.ExpectedSampled, r1.ExpectedSampled)
	require.Equal(r0.ExpectedTrue, r1.ExpectedTrue)
	require.Equal(r0.Attempts, r1.Attempts)

	require.Equal([]int{3}, r0.Sampled.Shape)
	require.Len(r0.Sampled.Data, 3)
	require.Equal([]int{3}, r0.ExpectedSampled.Shape)

	expectedTrue := r0.ExpectedTrue
	require.Equal([]int{3}, expectedTrue.Shape)
	require.Len(expectedTrue.Data, 3)
	require.Equal(expectedTrue.Data[0], expectedTrue.Data[1])
	require.Greater(expectedTrue.Data[0], expectedTrue.Data[2])
}

func TestSampleInvariants(t *testing.T) {
	config := Config{
		RangeMax:   1000,
		NumSampled: 50,
		Seed:       9,
	}
	s := newTestSampler[float64](t, config)

	trueClasses := []int64{0, 1, 10, 100, 999}
	for i := 0; i < 20; i++ {
		result, err := s.SampleFlat(trueClasses)
		require.NoError(t, err)
		require.GreaterOrEqual(t, result.Attempts, config.NumSampled)

		classes := set.NewSet[float64](config.NumSampled)
		for _, class := range result.Sampled.Data {
			require.GreaterOrEqual(t, class, 0.0)
			require.Less(t, class, float64(config.RangeMax))
			classes.Add(class)
		}
		require.Equal(t, config.NumSampled, classes.Len())

		for _, count := range append(result.ExpectedTrue.Data, result.ExpectedSampled.Data...) {
			require.GreaterOrEqual(t, count, 0.0)
			require.LessOrEqual(t, count, float64(config.NumSampled))
		}
	}
}

func TestSampleExpectedCounts(t *testing.T) {
	require := require.New(t)

	config := Config{
		RangeMax:   100,
		NumSampled: 20,
		Seed:       3,
	}
	s := newTestSampler[float64](t, config)

	result, err := s.SampleFlat([]int64{4, 17})
	require.NoError(err)

	for i, class := range []uint64{4, 17} {
		expected := ExpectedCount(s.Probability(class), result.Attempts, config.NumSampled)
		require.Equal(expected, result.ExpectedTrue.Data[i])
	}
	for i, class := range result.Sampled.Data {
		expected := ExpectedCount(s.Probability(uint64(class)), result.Attempts, config.NumSampled)
		require.Equal(expected, result.ExpectedSampled.Data[i])
	}
}

func TestSamplePreservesShape(t *testing.T) {
	require := require.New(t)

	s := newTestSampler[float32](t, Config{
		RangeMax:   50,
		NumSampled: 4,
	})

	trueClasses, err := NewArray([]int{2, 3}, []int64{0, 1, 2, 3, 4, 5})
	require.NoError(err)

	result, err := s.Sample(trueClasses)
	require.NoError(err)
	require.Equal([]int{2, 3}, result.ExpectedTrue.Shape)
	require.Len(result.ExpectedTrue.Data, 6)
	require.Equal([]int{4}, result.Sampled.Shape)
}

func TestSampleInvalidTrueClasses(t *testing.T) {
	tests := []struct {
		name        string
		trueClasses Array[int64]
	}{
		{
			name:        "negative class",
			trueClasses: Vector([]int64{0, -1}),
		},
		{
			name:        "class equal to range",
			trueClasses: Vector([]int64{10}),
		},
		{
			name: "shape mismatch",
			trueClasses: Array[int64]{
				Shape: []int{2, 2},
				Data:  []int64{0, 1, 2},
			},
		},
		{
			name: "negative dimension",
			trueClasses: Array[int64]{
				Shape: []int{-1},
				Data:  []int64{},
			},
		},
		{
			name: "shape overflowing to empty",
			trueClasses: Array[int64]{
				Shape: []int{1 << 62, 4},
				Data:  []int64{},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require := require.New(t)

			config := Config{
				RangeMax:   10,
				NumSampled: 3,
				Seed:       4,
			}
			s := newTestSampler[float32](t, config)
			_, err := s.Sample(test.trueClasses)
			require.ErrorIs(err, sampler.ErrInvalidArgument)

			// The failed call must not have advanced the generator.
			fresh := newTestSampler[float32](t, config)
			expected, err := fresh.SampleFlat([]int64{1})
			require.NoError(err)
			got, err := s.SampleFlat([]int64{1})
			require.NoError(err)
			require.Equal(expected, got)
		})
	}
}

func TestSampleOutputTypes(t *testing.T) {
	require := require.New(t)

	config := Config{
		RangeMax:   1000,
		NumSampled: 10,
		Seed:       11,
	}
	s64 := newTestSampler[float64](t, config)
	s32 := newTestSampler[float32](t, config)
	sInt := newTestSampler[int64](t, config)

	trueClasses := []int64{3, 300}
	r64, err := s64.SampleFlat(trueClasses)
	require.NoError(err)
	r32, err := s32.SampleFlat(trueClasses)
	require.NoError(err)
	rInt, err := sInt.SampleFlat(trueClasses)
	require.NoError(err)

	for i, class := range r64.Sampled.Data {
		require.Equal(float32(class), r32.Sampled.Data[i])
		require.Equal(int64(class), rInt.Sampled.Data[i])
		require.Equal(float32(r64.ExpectedSampled.Data[i]), r32.ExpectedSampled.Data[i])
	}
	for i, count := range r64.ExpectedTrue.Data {
		require.Equal(float32(count), r32.ExpectedTrue.Data[i])
	}
}

func TestSampleConcurrent(t *testing.T) {
	const callers = 8
	config := Config{
		RangeMax:   5000,
		NumSampled: 64,
		Seed:       2,
	}
	s := newTestSampler[float32](t, config)

	var (
		wg      sync.WaitGroup
		results = make([]*Result[float32], callers)
		errs    = make([]error, callers)
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.SampleFlat([]int64{0, 1, 2})
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		require.Len(t, results[i].Sampled.Data, config.NumSampled)
	}
}

// verboRecorder records the fields of every Verbo entry.
type verboRecorder struct {
	logging.NoLog
	enabled bool
	entries [][]zap.Field
}

func (r *verboRecorder) Enabled(lvl logging.Level) bool {
	return r.enabled && lvl == logging.Verbo
}

func (r *verboRecorder) Verbo(_ string, fields ...zap.Field) {
	r.entries = append(r.entries, fields)
}

func TestSampleLogsOnlyWhenVerbose(t *testing.T) {
	require := require.New(t)

	config := Config{
		RangeMax:   50,
		NumSampled: 4,
		Seed:       3,
	}

	quiet := &verboRecorder{}
	s, err := NewFloat32(config, quiet, prometheus.NewRegistry())
	require.NoError(err)
	_, err = s.SampleFlat([]int64{1})
	require.NoError(err)
	require.Empty(quiet.entries)

	verbose := &verboRecorder{enabled: true}
	s, err = NewFloat32(config, verbose, prometheus.NewRegistry())
	require.NoError(err)
	result, err := s.SampleFlat([]int64{1})
	require.NoError(err)
	require.Len(verbose.entries, 1)

	fields := verbose.entries[0]
	require.Equal("attempts", fields[2].Key)
	require.Equal(int64(result.Attempts), fields[2].Integer)
	require.Equal("sampled", fields[3].Key)
}
