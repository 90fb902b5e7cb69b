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

package main

import (
	"context"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/zap"

	"github.com/elastic/queuestats/samples"
)

func metering() (*sdkmetric.MeterProvider, *sdkmetric.ManualReader) {
	rdr := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(rdr))
	return mp, rdr
}

func filterMetrics(instrumentName string, sm []metricdata.ScopeMetrics) []metricdata.Metrics {
	for _, m := range sm {
		if m.Scope.Name == instrumentName {
			return m.Metrics
		}
	}
	return []metricdata.Metrics{}
}

func sum(dps []metricdata.DataPoint[int64]) (val int64) {
	for _, dp := range dps {
		val += dp.Value
	}
	return val
}

func getSumInt64Metric(instrument string, metric string, rm metricdata.ResourceMetrics) int64 {
	for _, m := range filterMetrics(instrument, rm.ScopeMetrics) {
		if m.Name != metric {
			continue
		}
		if data, ok := m.Data.(metricdata.Sum[int64]); ok {
			return sum(data.DataPoints)
		}
	}
	return 0
}

// logMetrics collects the loader counters and logs them at debug level.
func logMetrics(ctx context.Context, rdr sdkmetric.Reader, logger *zap.Logger) {
	var rm metricdata.ResourceMetrics
	if err := rdr.Collect(ctx, &rm); err != nil {
		// NOTE: metrics are informational, never fail the run on them.
		logger.Warn("cannot collect otel metrics", zap.Error(err))
		return
	}
	logger.Debug("loader metrics",
		zap.Int64(samples.LinesReadCounterKey, getSumInt64Metric(samples.InstrumentName, samples.LinesReadCounterKey, rm)),
		zap.Int64(samples.LinesDiscardedCounterKey, getSumInt64Metric(samples.InstrumentName, samples.LinesDiscardedCounterKey, rm)),
		zap.Int64(samples.SamplesParsedCounterKey, getSumInt64Metric(samples.InstrumentName, samples.SamplesParsedCounterKey, rm)),
	)
}
