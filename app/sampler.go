// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	dto "github.com/prometheus/client_model/go"

	"github.com/ava-labs/candidatesampler/config"
	"github.com/ava-labs/candidatesampler/utils/logging"
	"github.com/ava-labs/candidatesampler/utils/perms"
)

var (
	_ App = (*samplerApp)(nil)

	errNotStarted = errors.New("app not started")
)

// samplerApp runs [config.Workers] independent samplers, each making
// [config.Iterations] calls, and writes every result to [out] as a JSON line.
type samplerApp struct {
	config     config.Config
	logFactory logging.Factory
	log        logging.Logger
	registry   *prometheus.Registry
	out        *resultWriter

	cancel context.CancelFunc
	eg     *errgroup.Group
}

func New(config config.Config, out io.Writer) (App, error) {
	if dir := config.Logging.Directory; dir != "" {
		if err := os.MkdirAll(dir, perms.ReadWriteExecute); err != nil {
			return nil, fmt.Errorf("couldn't create log directory %q: %w", dir, err)
		}
	}

	logFactory := logging.NewFactory(config.Logging)
	log, err := logFactory.Make("main")
	if err != nil {
		logFactory.Close()
		return nil, fmt.Errorf("failed to initialize log: %w", err)
	}

	return &samplerApp{
		config:     config,
		logFactory: logFactory,
		log:        log,
		registry:   prometheus.NewRegistry(),
		out:        newResultWriter(out),
	}, nil
}

func (a *samplerApp) Start() error {
	a.log.Info("starting sampler workers",
		zap.Int("workers", a.config.Workers),
		zap.Int("iterations", a.config.Iterations),
		zap.Stringer("outputType", a.config.OutputType),
	)

	ctx, cancel := context.WithCancel(context.Background())
	eg, ctx := errgroup.WithContext(ctx)

	workers := make([]worker, a.config.Workers)
	for i := range workers {
		w, err := newWorker(i, a.config, a.log, a.registry, a.out)
		if err != nil {
			cancel()
			a.log.Error("failed to initialize worker",
				zap.Int("worker", i),
				zap.Error(err),
			)
			a.logFactory.Close()
			return err
		}
		workers[i] = w
	}

	for _, w := range workers {
		w := w
		eg.Go(func() error {
			return w.run(ctx)
		})
	}
	a.cancel = cancel
	a.eg = eg
	return nil
}

func (a *samplerApp) Stop() error {
	if a.cancel == nil {
		return errNotStarted
	}
	a.log.Info("stopping sampler workers")
	a.cancel()
	return nil
}

func (a *samplerApp) ExitCode() (int, error) {
	if a.eg == nil {
		return 1, errNotStarted
	}
	defer a.logFactory.Close()

	err := a.eg.Wait()
	a.cancel()

	if a.config.PrintMetrics {
		if err := a.printMetrics(); err != nil {
			a.log.Error("failed to print metrics", zap.Error(err))
			return 1, nil
		}
	}

	switch {
	case errors.Is(err, context.Canceled):
		a.log.Info("sampler workers stopped early")
		return 0, nil
	case err != nil:
		a.log.Error("sampler workers failed", zap.Error(err))
		return 1, nil
	default:
		a.log.Info("sampler workers finished")
		return 0, nil
	}
}

func (a *samplerApp) printMetrics() error {
	families, err := a.registry.Gather()
	if err != nil {
		return err
	}
	return a.out.writeMetrics(families)
}

// resultWriter serializes writes from concurrent workers.
type resultWriter struct {
	lock sync.Mutex
	w    io.Writer
	enc  *json.Encoder
}

func newResultWriter(w io.Writer) *resultWriter {
	return &resultWriter{
		w:   w,
		enc: json.NewEncoder(w),
	}
}

func (r *resultWriter) writeResult(v interface{}) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	return r.enc.Encode(v)
}

func (r *resultWriter) writeMetrics(families []*dto.MetricFamily) error {
	r.lock.Lock()
	defer r.lock.Unlock()

	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(r.w, family); err != nil {
			return err
		}
	}
	return nil
}
