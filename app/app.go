// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

// App is a long running sampling job.
type App interface {
	// Start launches the job and returns without waiting for it to finish.
	Start() error

	// Stop asks the job to finish early and returns without waiting.
	Stop() error

	// ExitCode blocks until the job finishes. It may only be called after
	// [Start] succeeded.
	ExitCode() (int, error)
}

// Run starts [app], stops it on SIGINT or SIGTERM, and returns the exit code
// the process should report.
func Run(app App) int {
	if err := app.Start(); err != nil {
		return 1
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	var eg errgroup.Group
	eg.Go(func() error {
		if _, ok := <-signals; ok {
			return app.Stop()
		}
		return nil
	})

	exitCode, err := app.ExitCode()

	// Unblock the signal handler if no signal was received.
	signal.Stop(signals)
	close(signals)

	stopErr := eg.Wait()
	if err != nil || stopErr != nil {
		return 1
	}
	return exitCode
}
