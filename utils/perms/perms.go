// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package perms holds the file modes used for files the sampler creates.
package perms

// ReadWriteExecute is used for directories.
const ReadWriteExecute = 0o750
