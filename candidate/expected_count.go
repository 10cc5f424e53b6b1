// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package candidate

import "math"

// ExpectedCount returns the expected number of occurrences of a class with
// base probability [p] after [attempts] draws were needed to collect
// [numSampled] unique classes.
//
// When no draw was rejected the count is p * numSampled. Otherwise it is the
// probability that the class shows up at least once in [attempts] independent
// draws, 1 - (1-p)^attempts, which only approximates the expected count for
// small p.
func ExpectedCount(p float64, attempts, numSampled int) float64 {
	if attempts == numSampled {
		return p * float64(numSampled)
	}
	if p >= 1 {
		return 1
	}
	return -math.Expm1(float64(attempts) * math.Log1p(-p))
}
