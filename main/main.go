// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/ava-labs/candidatesampler/app"
	"github.com/ava-labs/candidatesampler/config"
	"github.com/ava-labs/candidatesampler/version"
)

func main() {
	fs := config.BuildFlagSet()
	v, err := config.BuildViper(fs, os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Printf("couldn't configure flags: %s\n", err)
		os.Exit(1)
	}

	if v.GetBool(config.VersionKey) {
		fmt.Print(version.String)
		os.Exit(0)
	}

	samplerConfig, err := config.GetConfig(v)
	if err != nil {
		fmt.Printf("couldn't load config: %s\n", err)
		os.Exit(1)
	}

	samplerApp, err := app.New(samplerConfig, os.Stdout)
	if err != nil {
		fmt.Printf("couldn't start sampler: %s\n", err)
		os.Exit(1)
	}

	exitCode := app.Run(samplerApp)
	os.Exit(exitCode)
}
