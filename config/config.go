// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/viper"

	"github.com/ava-labs/candidatesampler/candidate"
	"github.com/ava-labs/candidatesampler/utils/logging"
)

// Config of a candidatesampler run
type Config struct {
	Sampler        candidate.Config `json:"sampler"`
	OutputType     OutputType       `json:"outputType"`
	TrueClasses    []int64          `json:"trueClasses"`
	Iterations     int              `json:"iterations"`
	Workers        int              `json:"workers"`
	CallsPerSecond float64          `json:"callsPerSecond"`
	PrintMetrics   bool             `json:"printMetrics"`
	Logging        logging.Config   `json:"loggingConfig"`
}

func GetConfig(v *viper.Viper) (Config, error) {
	var (
		config = Config{
			Sampler: candidate.Config{
				RangeMax:   v.GetInt(RangeMaxKey),
				NumSampled: v.GetInt(NumSampledKey),
				Seed:       v.GetInt64(SeedKey),
			},
			Iterations:     v.GetInt(IterationsKey),
			Workers:        v.GetInt(WorkersKey),
			CallsPerSecond: v.GetFloat64(CallsPerSecondKey),
			PrintMetrics:   v.GetBool(PrintMetricsKey),
		}
		err error
	)
	if err := config.Sampler.Verify(); err != nil {
		return Config{}, err
	}

	config.TrueClasses, err = getTrueClasses(v)
	if err != nil {
		return Config{}, err
	}

	config.OutputType, err = ToOutputType(v.GetString(OutputTypeKey))
	if err != nil {
		return Config{}, err
	}

	if config.Iterations <= 0 {
		return Config{}, fmt.Errorf("%q must be positive but got %d", IterationsKey, config.Iterations)
	}
	if config.Workers <= 0 {
		return Config{}, fmt.Errorf("%q must be positive but got %d", WorkersKey, config.Workers)
	}

	if config.CallsPerSecond < 0 {
		return Config{}, fmt.Errorf("%q must not be negative but got %g", CallsPerSecondKey, config.CallsPerSecond)
	}
	config.Logging, err = getLoggingConfig(v)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// getTrueClasses supports both a native list, as produced by flags and
// structured config files, and a comma separated string, as produced by the
// environment.
func getTrueClasses(v *viper.Viper) ([]int64, error) {
	raw, ok := v.Get(TrueClassesKey).(string)
	if !ok {
		ints := v.GetIntSlice(TrueClassesKey)
		classes := make([]int64, len(ints))
		for i, class := range ints {
			classes[i] = int64(class)
		}
		return classes, nil
	}

	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '[' || r == ']' || unicode.IsSpace(r)
	})
	classes := make([]int64, len(fields))
	for i, field := range fields {
		class, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("couldn't parse %q: %w", TrueClassesKey, err)
		}
		classes[i] = class
	}
	return classes, nil
}

func getLoggingConfig(v *viper.Viper) (logging.Config, error) {
	loggingConfig := logging.Config{}
	loggingConfig.Directory = os.ExpandEnv(v.GetString(LogsDirKey))
	var err error
	loggingConfig.LogLevel, err = logging.ToLevel(v.GetString(LogLevelKey))
	if err != nil {
		return loggingConfig, err
	}
	logDisplayLevel := v.GetString(LogLevelKey)
	if v.IsSet(LogDisplayLevelKey) && v.GetString(LogDisplayLevelKey) != "" {
		logDisplayLevel = v.GetString(LogDisplayLevelKey)
	}
	loggingConfig.DisplayLevel, err = logging.ToLevel(logDisplayLevel)
	if err != nil {
		return loggingConfig, err
	}
	loggingConfig.LogFormat, err = logging.ToFormat(v.GetString(LogFormatKey), os.Stdout.Fd())
	if err != nil {
		return loggingConfig, err
	}
	loggingConfig.DisableWriterDisplaying = v.GetBool(LogDisableDisplayKey)
	loggingConfig.MaxSize = int(v.GetUint(LogRotaterMaxSizeKey))
	loggingConfig.MaxFiles = int(v.GetUint(LogRotaterMaxFilesKey))
	loggingConfig.MaxAge = int(v.GetUint(LogRotaterMaxAgeKey))
	loggingConfig.Compress = v.GetBool(LogRotaterCompressKey)
	return loggingConfig, nil
}
