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

// Package queuestats computes the average and 99th percentile queue length
// of queue trace logs.
package queuestats

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/elastic/queuestats/samples"
	"github.com/elastic/queuestats/stats"
)

// Config holds the configuration for Analyze.
type Config struct {
	// Logger to use for any errors.
	Logger *zap.Logger
	// MeterProvider allows specifying a custom otel meter provider.
	// Defaults to the global one.
	MeterProvider metric.MeterProvider
	// TracerProvider allows specifying a custom otel tracer provider.
	// Defaults to the global one.
	TracerProvider trace.TracerProvider
}

// Analyze loads the samples of the trace log at path and summarizes them
// at the 99th percentile. A trace log without records returns
// stats.ErrNoSamples.
func Analyze(ctx context.Context, path string, cfg Config) (stats.Summary, error) {
	loader, err := samples.NewLoader(samples.Config{
		Logger:         cfg.Logger,
		MeterProvider:  cfg.MeterProvider,
		TracerProvider: cfg.TracerProvider,
	})
	if err != nil {
		return stats.Summary{}, err
	}
	values, err := loader.Load(ctx, path)
	if err != nil {
		return stats.Summary{}, err
	}
	summary, err := stats.Compute(values, stats.P99)
	if err != nil {
		return stats.Summary{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Logger.Debug("computed summary",
		zap.Int("count", summary.Count),
		zap.Float64("mean", summary.Mean),
		zap.Int64("p99", summary.Percentile),
	)
	return summary, nil
}
