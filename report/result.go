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

// Package report holds the results of a queuestats run and renders them.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/elastic/queuestats/stats"
)

// Result represents all information for a successful run.
type Result struct {
	// Meta contains metadata about the run.
	Meta Meta `json:"meta" yaml:"meta"`
	// Count is the number of samples read from the trace log.
	Count int `json:"count" yaml:"count"`
	// Sum is the sum of all samples.
	Sum int64 `json:"sum" yaml:"sum"`
	// Mean is the average queue length.
	Mean float64 `json:"mean" yaml:"mean"`
	Min  int64   `json:"min" yaml:"min"`
	Max  int64   `json:"max" yaml:"max"`
	// Rank is the rank fraction Percentile was taken at.
	Rank float64 `json:"rank" yaml:"rank"`
	// Percentile is the queue length at Rank.
	Percentile int64 `json:"percentile" yaml:"percentile"`
}

type Meta struct {
	// RunID is the unique ID of the run.
	RunID string `json:"run_id" yaml:"run_id"`
	// File is the path of the analyzed trace log.
	File string `json:"file" yaml:"file"`
	// StartTime is the UTC time the run started.
	StartTime time.Time `json:"start_time" yaml:"start_time"`
	// EndTime is the UTC time the run ended.
	EndTime time.Time `json:"end_time" yaml:"end_time"`
	// HeaderLines is the number of leading lines discarded from the file.
	HeaderLines int `json:"header_lines" yaml:"header_lines"`
	// TrailerLines is the number of trailing lines discarded from the file.
	TrailerLines int `json:"trailer_lines" yaml:"trailer_lines"`
}

// NewResult builds a Result from run metadata and a computed summary.
func NewResult(meta Meta, s stats.Summary) Result {
	return Result{
		Meta:       meta,
		Count:      s.Count,
		Sum:        s.Sum,
		Mean:       s.Mean,
		Min:        s.Min,
		Max:        s.Max,
		Rank:       s.Rank,
		Percentile: s.Percentile,
	}
}

// Print writes the average and 99th percentile queue lengths to w, one per
// line. The percentile is printed as a float.
func Print(w io.Writer, s stats.Summary) error {
	if _, err := fmt.Fprintf(w, "The average queue length: %f\n", s.Mean); err != nil {
		return fmt.Errorf("cannot print summary: %w", err)
	}
	if _, err := fmt.Fprintf(w, "The 99 queue length: %f\n", float64(s.Percentile)); err != nil {
		return fmt.Errorf("cannot print summary: %w", err)
	}
	return nil
}
