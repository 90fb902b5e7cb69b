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

// Package metrictest provides an in-memory otel meter provider for tests.
package metrictest

import (
	"context"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// TestMetric wraps a MeterProvider backed by a manual reader.
type TestMetric struct {
	Reader        sdkmetric.Reader
	MeterProvider *sdkmetric.MeterProvider
}

// New returns a TestMetric using cumulative temporality, so every Collect
// reports totals since creation.
func New() (tm TestMetric) {
	tm.Reader = sdkmetric.NewManualReader()
	tm.MeterProvider = sdkmetric.NewMeterProvider(sdkmetric.WithReader(tm.Reader))
	return
}

// Collect gathers the current state of every instrument.
func (tm TestMetric) Collect(ctx context.Context) (
	rm metricdata.ResourceMetrics, err error,
) {
	err = tm.Reader.Collect(ctx, &rm)
	return
}

// Int64Sums maps metric names to the sum of their data points.
type Int64Sums map[string]int64

// GatherInt64Sums returns the int64 sums recorded under the given
// instrumentation scope. Other metric kinds are skipped.
func GatherInt64Sums(rm metricdata.ResourceMetrics, scope string) Int64Sums {
	observed := Int64Sums{}
	for _, sm := range rm.ScopeMetrics {
		if sm.Scope.Name != scope {
			continue
		}
		for _, m := range sm.Metrics {
			data, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				continue
			}
			for _, dp := range data.DataPoints {
				observed[m.Name] += dp.Value
			}
		}
	}
	return observed
}
