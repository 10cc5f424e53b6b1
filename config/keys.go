// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

const (
	ConfigFileKey         = "config-file"
	VersionKey            = "version"
	RangeMaxKey           = "range-max"
	NumSampledKey         = "num-sampled"
	SeedKey               = "seed"
	OutputTypeKey         = "output-type"
	TrueClassesKey        = "true-classes"
	IterationsKey         = "iterations"
	WorkersKey            = "workers"
	CallsPerSecondKey     = "calls-per-second"
	PrintMetricsKey       = "print-metrics"
	LogsDirKey            = "log-dir"
	LogLevelKey           = "log-level"
	LogDisplayLevelKey    = "log-display-level"
	LogFormatKey          = "log-format"
	LogRotaterMaxSizeKey  = "log-rotater-max-size"
	LogRotaterMaxFilesKey = "log-rotater-max-files"
	LogRotaterMaxAgeKey   = "log-rotater-max-age"
	LogRotaterCompressKey = "log-rotater-compress-enabled"
	LogDisableDisplayKey  = "log-disable-display"
)
