// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package candidate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigVerify(t *testing.T) {
	require := require.New(t)

	require.NoError(Config{RangeMax: 1, NumSampled: 1}.Verify())
	require.NoError(Config{RangeMax: 10, NumSampled: 10, Seed: -3}.Verify())
	require.ErrorContains(Config{RangeMax: 10, NumSampled: 11}.Verify(), "exceeds range max")
}
