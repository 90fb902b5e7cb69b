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

// Package stats computes summary statistics over queue length samples.
package stats

import (
	"errors"
	"fmt"
	"math"
	"slices"
)

// P99 is the rank fraction used to report the 99th percentile.
const P99 = 0.99

var (
	// ErrNoSamples is returned when a statistic is requested over an empty
	// sample sequence. It takes the place of a division by zero.
	ErrNoSamples = errors.New("stats: no samples")
	// ErrInvalidRank is returned when a rank fraction is outside [0, 1).
	ErrInvalidRank = errors.New("stats: rank must be in [0, 1)")
	// ErrSumOverflow is returned when the sample sum does not fit in an int64.
	ErrSumOverflow = errors.New("stats: sample sum overflows int64")
)

// Summary holds the statistics computed over a sample sequence.
type Summary struct {
	// Count is the number of samples.
	Count int
	// Sum is the sum of all samples.
	Sum int64
	// Mean is Sum / Count using floating point division.
	Mean float64
	Min  int64
	Max  int64
	// Rank is the rank fraction Percentile was computed at.
	Rank float64
	// Percentile is the sample at ascending rank floor(Count * Rank).
	Percentile int64
}

// Mean returns the arithmetic mean of samples. The order of samples does
// not affect the result.
func Mean(samples []int64) (float64, error) {
	sum, err := sum(samples)
	if err != nil {
		return 0, err
	}
	return float64(sum) / float64(len(samples)), nil
}

// Percentile returns the element of the ascending sorted slice at index
// int(len(sorted) * rank). No interpolation between adjacent ranks is done.
func Percentile(sorted []int64, rank float64) (int64, error) {
	if len(sorted) == 0 {
		return 0, ErrNoSamples
	}
	if math.IsNaN(rank) || rank < 0 || rank >= 1 {
		return 0, fmt.Errorf("%w: got %v", ErrInvalidRank, rank)
	}
	return sorted[int(float64(len(sorted))*rank)], nil
}

// Compute returns the Summary of samples with the percentile taken at rank.
// samples is left untouched; the percentile lookup sorts a copy.
func Compute(samples []int64, rank float64) (Summary, error) {
	total, err := sum(samples)
	if err != nil {
		return Summary{}, err
	}
	sorted := slices.Clone(samples)
	slices.Sort(sorted)

	p, err := Percentile(sorted, rank)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Count:      len(sorted),
		Sum:        total,
		Mean:       float64(total) / float64(len(sorted)),
		Min:        sorted[0],
		Max:        sorted[len(sorted)-1],
		Rank:       rank,
		Percentile: p,
	}, nil
}

func sum(samples []int64) (int64, error) {
	if len(samples) == 0 {
		return 0, ErrNoSamples
	}
	var total int64
	for _, v := range samples {
		next := total + v
		if (v > 0 && next < total) || (v < 0 && next > total) {
			return 0, ErrSumOverflow
		}
		total = next
	}
	return total, nil
}
