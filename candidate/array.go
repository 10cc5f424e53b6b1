// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package candidate

import (
	"fmt"
	"math"

	"github.com/ava-labs/candidatesampler/utils/sampler"
)

// Array is a dense, row-major array of any rank.
type Array[T any] struct {
	Shape []int `json:"shape"`
	Data  []T   `json:"data"`
}

// NewArray returns an array viewing [data] with the provided [shape]. The
// product of the dimensions must equal len(data).
func NewArray[T any](shape []int, data []T) (Array[T], error) {
	a := Array[T]{
		Shape: shape,
		Data:  data,
	}
	return a, a.Verify()
}

// Vector returns a rank-1 array over [data].
func Vector[T any](data []T) Array[T] {
	return Array[T]{
		Shape: []int{len(data)},
		Data:  data,
	}
}

// Verify that the shape describes exactly the provided data.
func (a Array[T]) Verify() error {
	size := 1
	for i, dim := range a.Shape {
		if dim < 0 {
			return fmt.Errorf("%w: dimension %d has negative size %d", sampler.ErrInvalidArgument, i, dim)
		}
		if dim != 0 && size > math.MaxInt/dim {
			return fmt.Errorf("%w: shape %v holds more than %d elements", sampler.ErrInvalidArgument, a.Shape, math.MaxInt)
		}
		size *= dim
	}
	if size != len(a.Data) {
		return fmt.Errorf("%w: shape %v holds %d elements but got %d",
			sampler.ErrInvalidArgument,
			a.Shape,
			size,
			len(a.Data),
		)
	}
	return nil
}

// Len returns the number of elements in the array.
func (a Array[_]) Len() int {
	return len(a.Data)
}

// convert applies [f] to every element, preserving the shape.
func convert[T, U any](a Array[T], f func(T) U) Array[U] {
	data := make([]U, len(a.Data))
	for i, v := range a.Data {
		data[i] = f(v)
	}
	shape := make([]int, len(a.Shape))
	copy(shape, a.Shape)
	return Array[U]{
		Shape: shape,
		Data:  data,
	}
}
