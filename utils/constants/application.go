// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package constants

// Const variables to be exported
const (
	// AppName exports the name of the candidatesampler application
	AppName = "candidatesampler"

	// EnvPrefix is prepended to configuration keys read from the environment
	EnvPrefix = "CANDIDATESAMPLER"
)
