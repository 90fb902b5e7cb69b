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

// Package samples loads queue length samples from queue trace logs.
//
// A trace log has a fixed shape: HeaderLines lines of header, one record
// per line, and TrailerLines lines of trailer. Each record line carries the
// sample as its second whitespace separated field:
//
//	<time> <queue length> [ignored remainder]
package samples

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// HeaderLines is the number of leading lines discarded from a trace log.
	HeaderLines = 4
	// TrailerLines is the number of trailing lines discarded from a trace log.
	TrailerLines = 1
)

var (
	// ErrMissingField is returned when a record line has no second field.
	ErrMissingField = errors.New("samples: record has no sample field")
	// ErrInvalidSample is returned when the sample field is not a base-10
	// integer.
	ErrInvalidSample = errors.New("samples: invalid sample")
)

// Config holds the configuration for a Loader.
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

// Validate ensures the configuration is valid, otherwise, returns an error.
func (cfg Config) Validate() error {
	var errs []error
	if cfg.Logger == nil {
		errs = append(errs, errors.New("samples: logger must be set"))
	}
	return errors.Join(errs...)
}

func (cfg Config) meterProvider() metric.MeterProvider {
	if cfg.MeterProvider != nil {
		return cfg.MeterProvider
	}
	return otel.GetMeterProvider()
}

func (cfg Config) tracerProvider() trace.TracerProvider {
	if cfg.TracerProvider != nil {
		return cfg.TracerProvider
	}
	return otel.GetTracerProvider()
}

// Loader reads trace logs into sample sequences.
type Loader struct {
	logger  *zap.Logger
	tracer  trace.Tracer
	metrics *loaderMetrics
}

// NewLoader returns a new Loader for the given config.
func NewLoader(cfg Config) (*Loader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("samples: invalid loader config: %w", err)
	}
	m, err := newLoaderMetrics(cfg.meterProvider())
	if err != nil {
		return nil, err
	}
	return &Loader{
		logger:  cfg.Logger,
		tracer:  cfg.tracerProvider().Tracer(InstrumentName),
		metrics: m,
	}, nil
}

// Load reads the trace log at path and returns its samples in file order.
//
// The header and trailer lines are discarded without looking at them. A file
// too short to hold any record yields an empty sequence and no error.
func (l *Loader) Load(ctx context.Context, path string) ([]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ctx, span := l.tracer.Start(ctx, "samples.Load", trace.WithAttributes(
		attribute.String("file.path", path),
	))
	defer span.End()

	logger := l.logger.With(zap.String("file.path", path))
	logger.Debug("reading samples")

	lines, err := readLines(path)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	body := Body(lines)
	l.metrics.linesRead.Add(ctx, int64(len(lines)))
	l.metrics.linesDiscarded.Add(ctx, int64(len(lines)-len(body)))
	span.SetAttributes(attribute.Int("lines", len(lines)))
	logger.Debug("read trace log",
		zap.Int("lines", len(lines)),
		zap.Int("records", len(body)),
	)

	samples, err := Parse(body, HeaderLines+1)
	l.metrics.samplesParsed.Add(ctx, int64(len(samples)))
	span.SetAttributes(attribute.Int("samples", len(samples)))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("parsed samples", zap.Int("samples", len(samples)))
	return samples, nil
}

// readLines returns every line of the file at path. The file is closed
// before returning.
func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("samples: cannot open trace log: %w", err)
	}
	defer f.Close()

	var lines []string
	r := bufio.NewReader(f)
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			line = strings.TrimSuffix(line, "\n")
			lines = append(lines, strings.TrimSuffix(line, "\r"))
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return nil, fmt.Errorf("samples: cannot read trace log %s: %w", path, err)
		}
	}
}

// Body returns the record lines of a trace log, dropping HeaderLines from
// the start and TrailerLines from the end.
func Body(lines []string) []string {
	if len(lines) <= HeaderLines+TrailerLines {
		return nil
	}
	return lines[HeaderLines : len(lines)-TrailerLines]
}

// Parse converts record lines into samples. firstLine is the 1-based line
// number of lines[0] in the source file and is only used in errors.
func Parse(lines []string, firstLine int) ([]int64, error) {
	samples := make([]int64, 0, len(lines))
	for i, line := range lines {
		v, err := parseRecord(line)
		if err != nil {
			return samples, fmt.Errorf("line %d: %w", firstLine+i, err)
		}
		samples = append(samples, v)
	}
	return samples, nil
}

func parseRecord(line string) (int64, error) {
	// The first field ends at the first whitespace, even when it is empty.
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMissingField, line)
	}
	var field string
	if rest := strings.Fields(line[i:]); len(rest) > 0 {
		field = rest[0]
	}
	v, err := strconv.ParseInt(field, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidSample, err)
	}
	return v, nil
}
