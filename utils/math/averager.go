// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package math

import "time"

// Averager smooths a stream of observations into an exponentially decaying
// average over wall clock time.
type Averager interface {
	// Observe records [value] as seen at [currentTime].
	Observe(value float64, currentTime time.Time)

	// Read returns the current average, or 0 if nothing was observed.
	Read() float64
}
