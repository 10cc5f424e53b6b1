// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package sampler

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidArgument = errors.New("invalid argument")

// LogUniform is the approximately log-uniform (Zipfian) distribution over
// [0, rangeMax):
//
//	P(class) = (ln(class+2) - ln(class+1)) / ln(rangeMax+1)
//
// Mass is strictly decreasing in the class index, which models vocabularies
// sorted by decreasing frequency.
type LogUniform struct {
	rangeMax uint64
	logRange float64
}

func NewLogUniform(rangeMax int) (*LogUniform, error) {
	if rangeMax <= 0 {
		return nil, fmt.Errorf("%w: range max must be positive but got %d", ErrInvalidArgument, rangeMax)
	}
	return &LogUniform{
		rangeMax: uint64(rangeMax),
		logRange: math.Log(float64(rangeMax) + 1),
	}, nil
}

// RangeMax returns the number of classes in the support.
func (d *LogUniform) RangeMax() int { return int(d.rangeMax) }

// LogRange returns ln(rangeMax+1), the normalizing constant.
func (d *LogUniform) LogRange() float64 { return d.logRange }

// Probability returns the mass of [class].
//
// ln((c+2)/(c+1)) is evaluated as log1p(1/(c+1)) so that large classes don't
// lose every significant digit to the subtraction of two nearby logarithms.
func (d *LogUniform) Probability(class uint64) float64 {
	return math.Log1p(1/(float64(class)+1)) / d.logRange
}

// sample draws a single class with replacement by inverting the CDF:
// class = floor(exp(u * logRange)) - 1 for u ~ U[0, 1).
func (d *LogUniform) sample(r *rng) uint64 {
	value := math.Exp(r.Float64()*d.logRange) - 1
	if value <= 0 {
		return 0
	}
	class := uint64(value)
	// exp(u * logRange) < rangeMax+1 in exact arithmetic, rounding can still
	// land on the boundary.
	if class >= d.rangeMax {
		return d.rangeMax - 1
	}
	return class
}
