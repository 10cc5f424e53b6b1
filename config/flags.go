// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ava-labs/candidatesampler/utils/constants"
	"github.com/ava-labs/candidatesampler/utils/logging"
)

// BuildFlagSet returns the complete set of flags for candidatesampler
func BuildFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet(constants.AppName, pflag.ContinueOnError)
	addFlags(fs)
	return fs
}

func addFlags(fs *pflag.FlagSet) {
	// If true, print the version and quit.
	fs.Bool(VersionKey, false, "If true, print version and quit")

	// Config
	fs.String(ConfigFileKey, "", fmt.Sprintf("Specifies a config file. Every key may also be set with the %s_ environment prefix", constants.EnvPrefix))

	// Sampler
	fs.Int(RangeMaxKey, 0, "Number of possible classes. Classes are drawn from [0, range-max)")
	fs.Int(NumSampledKey, 0, "Number of distinct classes drawn per call. Must not exceed range-max")
	fs.Int64(SeedKey, 0, "Seed of the pseudo-random generator")
	fs.String(OutputTypeKey, Float32.String(), fmt.Sprintf("Numeric type of the results. Should be one of %v", OutputTypes))

	// Run
	fs.IntSlice(TrueClassesKey, nil, "True classes to compute expected counts for")
	fs.Int(IterationsKey, 1, "Number of sample calls per worker")
	fs.Int(WorkersKey, 1, "Number of independent samplers to run concurrently. Worker i is seeded with seed+i")
	fs.Float64(CallsPerSecondKey, 0, "Maximum number of sample calls per second per worker. 0 disables the limit")
	fs.Bool(PrintMetricsKey, false, "If true, print the sampler metrics after the run")

	// Logging
	fs.String(LogsDirKey, "", "Logging directory. Logs are only written to files when set")
	fs.String(LogLevelKey, logging.Info.String(), "The log level. Should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogDisplayLevelKey, "", "The log display level. If left blank, will inherit the value of log-level. Otherwise, should be one of {verbo, debug, trace, info, warn, error, fatal, off}")
	fs.String(LogFormatKey, "auto", fmt.Sprintf("The structure of log format. Defaults to 'auto' which formats terminal-like logs, when the output is a terminal. Otherwise, should be one of %v", logging.Formats))
	fs.Uint(LogRotaterMaxSizeKey, 8, "The maximum file size in megabytes of the log file before it gets rotated.")
	fs.Uint(LogRotaterMaxFilesKey, 7, "The maximum number of old log files to retain. 0 means retain all old log files.")
	fs.Uint(LogRotaterMaxAgeKey, 0, "The maximum number of days to retain old log files based on the timestamp encoded in their filename. 0 means retain all old log files.")
	fs.Bool(LogRotaterCompressKey, false, "Enables the compression of rotated log files through gzip.")
	fs.Bool(LogDisableDisplayKey, false, "Disables displaying logs on stdout.")
}

// BuildViper returns the viper environment from parsing config file from
// default search paths and any parsed command line flags
func BuildViper(fs *pflag.FlagSet, args []string) (*viper.Viper, error) {
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.SetEnvPrefix(constants.EnvPrefix)
	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if v.IsSet(ConfigFileKey) {
		configFile := os.ExpandEnv(v.GetString(ConfigFileKey))
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("couldn't read config file %q: %w", configFile, err)
		}
	}
	return v, nil
}
