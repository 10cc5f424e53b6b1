// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	OutputTypes = []OutputType{
		Float32,
		Float64,
		Int32,
		Int64,
	}

	errUnknownOutputType = errors.New("unknown output type")
)

// OutputType names the numeric type sampler results are cast to.
type OutputType string

const (
	Float32 OutputType = "float32"
	Float64 OutputType = "float64"
	Int32   OutputType = "int32"
	Int64   OutputType = "int64"
)

func ToOutputType(s string) (OutputType, error) {
	t := OutputType(strings.ToLower(s))
	for _, known := range OutputTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", errUnknownOutputType, s)
}

func (t OutputType) String() string {
	return string(t)
}
