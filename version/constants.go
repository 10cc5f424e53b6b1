// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "github.com/ava-labs/candidatesampler/utils/constants"

// Current is the version of this build
var Current = &Application{
	Name:  constants.AppName,
	Major: 0,
	Minor: 1,
	Patch: 0,
}
