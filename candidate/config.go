// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package candidate

import (
	"fmt"

	"github.com/ava-labs/candidatesampler/utils/sampler"
)

// Config is fixed for the lifetime of a sampler.
type Config struct {
	// RangeMax is the number of possible classes.
	RangeMax int `json:"rangeMax"`
	// NumSampled is the number of distinct classes drawn per call.
	NumSampled int `json:"numSampled"`
	// Seed fixes the trajectory of the underlying generator.
	Seed int64 `json:"seed"`
}

func (c Config) Verify() error {
	switch {
	case c.RangeMax <= 0:
		return fmt.Errorf("%w: range max must be positive but got %d", sampler.ErrInvalidArgument, c.RangeMax)
	case c.NumSampled <= 0:
		return fmt.Errorf("%w: num sampled must be positive but got %d", sampler.ErrInvalidArgument, c.NumSampled)
	case c.NumSampled > c.RangeMax:
		return fmt.Errorf("%w: num sampled (%d) exceeds range max (%d)",
			sampler.ErrInvalidArgument,
			c.NumSampled,
			c.RangeMax,
		)
	default:
		return nil
	}
}
