// Licensed to Elasticsearch B.V. under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. Elasticsearch B.V. licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing,
// software distributed under the License is distributed on an
// "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
// KIND, either express or implied.  See the License for the
// specific language governing permissions and limitations
// under the License.

// Command queuestats prints the average and 99th percentile queue length of
// a queue trace log.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	flag "github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/elastic/queuestats"
	"github.com/elastic/queuestats/report"
	"github.com/elastic/queuestats/samples"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	start := time.Now()

	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	logger := logging(cfg.verbose, stderr)
	defer logger.Sync()
	logger.Debug("parsed config",
		zap.String("file.path", cfg.path),
		zap.String("output", cfg.output),
	)

	mp, rdr := metering()
	defer mp.Shutdown(context.Background())

	summary, err := queuestats.Analyze(ctx, cfg.path, queuestats.Config{
		Logger:        logger,
		MeterProvider: mp,
	})
	if cfg.verbose {
		logMetrics(ctx, rdr, logger)
	}
	if err != nil {
		logger.Error("cannot analyze trace log", zap.Error(err))
		return exitError
	}

	if err := report.Print(stdout, summary); err != nil {
		logger.Error("cannot print summary", zap.Error(err))
		return exitError
	}

	if cfg.output != "" {
		result := report.NewResult(report.Meta{
			RunID:        fmt.Sprintf("%d", start.Unix()),
			File:         cfg.path,
			StartTime:    start.UTC(),
			EndTime:      time.Now().UTC(),
			HeaderLines:  samples.HeaderLines,
			TrailerLines: samples.TrailerLines,
		}, summary)
		if err := persist(cfg.output, result); err != nil {
			logger.Error("cannot persist result", zap.Error(err), zap.String("output", cfg.output))
			return exitError
		}
		logger.Debug("persisted result", zap.String("output", cfg.output))
	}
	return exitOK
}

// logging returns a development logger writing to w. Errors are always
// logged; verbose enables debug output.
func logging(verbose bool, w io.Writer) *zap.Logger {
	level := zapcore.ErrorLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core, zap.Development())
}
