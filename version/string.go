// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import (
	"fmt"
	"runtime"
	"strings"
)

// GitCommit is set in the build script at compile time
var GitCommit string

// String is displayed when the version flag is passed
var String string

func init() {
	format := "%s [go=%s"
	args := []interface{}{
		Current,
		strings.TrimPrefix(runtime.Version(), "go"),
	}
	if GitCommit != "" {
		format += ", commit=%s"
		args = append(args, GitCommit)
	}
	format += "]\n"
	String = fmt.Sprintf(format, args...)
}
