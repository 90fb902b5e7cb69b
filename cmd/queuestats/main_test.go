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
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elastic/queuestats/codec/json"
	"github.com/elastic/queuestats/codec/yaml"
	"github.com/elastic/queuestats/report"
)

func runCmd(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun(t *testing.T) {
	for name, tc := range map[string]struct {
		file string
		want string
	}{
		"five samples": {
			file: "testdata/scenario_a.tr",
			want: "The average queue length: 40.000000\nThe 99 queue length: 100.000000\n",
		},
		"single sample": {
			file: "testdata/single.tr",
			want: "The average queue length: 5.000000\nThe 99 queue length: 5.000000\n",
		},
		"hundred samples": {
			file: "testdata/hundred.tr",
			want: "The average queue length: 50.500000\nThe 99 queue length: 100.000000\n",
		},
	} {
		t.Run(name, func(t *testing.T) {
			code, stdout, stderr := runCmd(t, tc.file)
			assert.Equal(t, exitOK, code)
			assert.Equal(t, tc.want, stdout)
			assert.Empty(t, stderr)
		})
	}
}

func TestRunFailures(t *testing.T) {
	for name, tc := range map[string]struct {
		file    string
		wantErr string
	}{
		"missing field": {
			file:    "testdata/missing_field.tr",
			wantErr: "record has no sample field",
		},
		"no records": {
			file:    "testdata/empty.tr",
			wantErr: "no samples",
		},
		"file does not exist": {
			file:    "testdata/does_not_exist.tr",
			wantErr: "no such file or directory",
		},
	} {
		t.Run(name, func(t *testing.T) {
			code, stdout, stderr := runCmd(t, tc.file)
			assert.Equal(t, exitError, code)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, "cannot analyze trace log")
			assert.Contains(t, stderr, tc.wantErr)
		})
	}
}

func TestRunUsage(t *testing.T) {
	code, stdout, stderr := runCmd(t)
	assert.Equal(t, exitUsage, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "usage: queuestats")

	code, _, _ = runCmd(t, "a.tr", "b.tr")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCmd(t, "--no-such-flag", "a.tr")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCmd(t, "--help")
	assert.Equal(t, exitOK, code)
}

func TestRunVerbose(t *testing.T) {
	code, stdout, stderr := runCmd(t, "-v", "testdata/scenario_a.tr")
	require.Equal(t, exitOK, code)
	// Logs never go to stdout.
	assert.Equal(t, "The average queue length: 40.000000\nThe 99 queue length: 100.000000\n", stdout)
	assert.Contains(t, stderr, "reading samples")
	assert.Contains(t, stderr, "loader metrics")
	assert.Contains(t, stderr, `"loader.samples.parsed": 5`)
	assert.Contains(t, stderr, `"loader.lines.discarded": 5`)
}

func TestRunPersist(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "result.json")
		code, _, stderr := runCmd(t, "--output", output, "testdata/scenario_a.tr")
		require.Equal(t, exitOK, code, stderr)

		b, err := os.ReadFile(output)
		require.NoError(t, err)
		var r report.Result
		require.NoError(t, json.JSON{}.Decode(b, &r))
		assertResult(t, r, "testdata/scenario_a.tr")
	})

	t.Run("yaml", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "result.yml")
		code, _, stderr := runCmd(t, "-o", output, "testdata/scenario_a.tr")
		require.Equal(t, exitOK, code, stderr)

		b, err := os.ReadFile(output)
		require.NoError(t, err)
		var r report.Result
		require.NoError(t, yaml.YAML{}.Decode(b, &r))
		assertResult(t, r, "testdata/scenario_a.tr")
	})

	t.Run("env", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "result.yaml")
		t.Setenv(envOutput, output)
		code, _, stderr := runCmd(t, "testdata/scenario_a.tr")
		require.Equal(t, exitOK, code, stderr)
		assert.FileExists(t, output)
	})

	t.Run("unwritable", func(t *testing.T) {
		output := filepath.Join(t.TempDir(), "missing", "result.json")
		code, stdout, stderr := runCmd(t, "-o", output, "testdata/scenario_a.tr")
		assert.Equal(t, exitError, code)
		assert.NotEmpty(t, stdout)
		assert.Contains(t, stderr, "cannot persist result")
	})
}

func assertResult(t *testing.T, r report.Result, file string) {
	t.Helper()
	assert.Equal(t, file, r.Meta.File)
	assert.NotEmpty(t, r.Meta.RunID)
	assert.False(t, r.Meta.StartTime.IsZero())
	assert.False(t, r.Meta.EndTime.Before(r.Meta.StartTime))
	assert.Equal(t, 4, r.Meta.HeaderLines)
	assert.Equal(t, 1, r.Meta.TrailerLines)
	assert.Equal(t, 5, r.Count)
	assert.Equal(t, int64(200), r.Sum)
	assert.Equal(t, 40.0, r.Mean)
	assert.Equal(t, int64(10), r.Min)
	assert.Equal(t, int64(100), r.Max)
	assert.Equal(t, 0.99, r.Rank)
	assert.Equal(t, int64(100), r.Percentile)
}
