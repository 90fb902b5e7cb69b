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
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv(envOutput, "")
		t.Setenv(envVerbose, "")
		cfg, err := parseConfig([]string{"queue.tr"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, config{path: "queue.tr"}, cfg)
	})

	t.Run("flags", func(t *testing.T) {
		cfg, err := parseConfig([]string{"-v", "--output=out.json", "queue.tr"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, config{path: "queue.tr", output: "out.json", verbose: true}, cfg)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv(envOutput, "env.yaml")
		t.Setenv(envVerbose, "true")
		cfg, err := parseConfig([]string{"queue.tr"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, config{path: "queue.tr", output: "env.yaml", verbose: true}, cfg)
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv(envOutput, "env.yaml")
		t.Setenv(envVerbose, "true")
		cfg, err := parseConfig([]string{"--verbose=false", "-o", "", "queue.tr"}, io.Discard)
		require.NoError(t, err)
		assert.Equal(t, config{path: "queue.tr"}, cfg)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := parseConfig(nil, io.Discard)
		assert.ErrorIs(t, err, errUsage)
	})
}
