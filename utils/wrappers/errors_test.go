// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package wrappers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrsKeepsFirst(t *testing.T) {
	require := require.New(t)

	var (
		errs = Errs{}
		err1 = errors.New("first")
		err2 = errors.New("second")
	)
	require.NoError(errs.Err)

	errs.Add(nil, nil)
	require.NoError(errs.Err)

	errs.Add(nil, err1, err2)
	require.ErrorIs(errs.Err, err1)

	errs.Add(err2)
	require.ErrorIs(errs.Err, err1)
}
