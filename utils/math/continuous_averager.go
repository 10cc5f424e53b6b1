// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import (
	"math"
	"time"
)

var _ Averager = (*decayingAverager)(nil)

// decayingAverager weighs an observation made d before the most recent one by
// 2^(-d/halflife).
type decayingAverager struct {
	// meanLife is halflife / ln(2) in nanoseconds.
	meanLife float64
	sum      float64
	weight   float64
	latest   time.Time
}

// NewUninitializedAverager returns an averager whose first observation fully
// replaces the zero starting value.
func NewUninitializedAverager(halflife time.Duration) Averager {
	return &decayingAverager{
		meanLife: float64(halflife) / math.Ln2,
	}
}

func (a *decayingAverager) Observe(value float64, currentTime time.Time) {
	if a.weight == 0 {
		a.sum = value
		a.weight = 1
		a.latest = currentTime
		return
	}

	elapsed := float64(currentTime.Sub(a.latest))
	if elapsed > 0 {
		// Age everything seen so far and move the reference point forward.
		decay := math.Exp(-elapsed / a.meanLife)
		a.sum = decay*a.sum + value
		a.weight = decay*a.weight + 1
		a.latest = currentTime
		return
	}

	// Late observations are discounted relative to the current reference
	// point instead.
	decay := math.Exp(elapsed / a.meanLife)
	a.sum += decay * value
	a.weight += decay
}

func (a *decayingAverager) Read() float64 {
	if a.weight == 0 {
		return 0
	}
	return a.sum / a.weight
}
