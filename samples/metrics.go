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

package samples

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

const (
	// InstrumentName is the otel instrumentation scope of the loader metrics.
	InstrumentName = "github.com/elastic/queuestats/samples"

	unitCount = "1"

	// LinesReadCounterKey counts every line read from a trace log.
	LinesReadCounterKey = "loader.lines.read"
	// LinesDiscardedCounterKey counts header and trailer lines.
	LinesDiscardedCounterKey = "loader.lines.discarded"
	// SamplesParsedCounterKey counts samples parsed from record lines.
	SamplesParsedCounterKey = "loader.samples.parsed"
)

type loaderMetrics struct {
	linesRead      metric.Int64Counter
	linesDiscarded metric.Int64Counter
	samplesParsed  metric.Int64Counter
}

func newLoaderMetrics(mp metric.MeterProvider) (*loaderMetrics, error) {
	m := mp.Meter(InstrumentName)

	linesRead, err := m.Int64Counter(
		LinesReadCounterKey,
		metric.WithDescription("The number of lines read from trace logs"),
		metric.WithUnit(unitCount),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create %s metric: %w", LinesReadCounterKey, err)
	}

	linesDiscarded, err := m.Int64Counter(
		LinesDiscardedCounterKey,
		metric.WithDescription("The number of header and trailer lines discarded"),
		metric.WithUnit(unitCount),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create %s metric: %w", LinesDiscardedCounterKey, err)
	}

	samplesParsed, err := m.Int64Counter(
		SamplesParsedCounterKey,
		metric.WithDescription("The number of samples parsed from record lines"),
		metric.WithUnit(unitCount),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create %s metric: %w", SamplesParsedCounterKey, err)
	}

	return &loaderMetrics{
		linesRead:      linesRead,
		linesDiscarded: linesDiscarded,
		samplesParsed:  samplesParsed,
	}, nil
}
