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
	"errors"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"
)

const (
	envOutput  = "QUEUESTATS_OUTPUT"
	envVerbose = "QUEUESTATS_VERBOSE"
)

var errUsage = errors.New("usage: queuestats [flags] <path-to-trace-log>")

type config struct {
	path    string
	output  string
	verbose bool
}

// parseConfig parses command line arguments. Flags that are not set fall
// back to their environment variables.
func parseConfig(args []string, stderr io.Writer) (config, error) {
	fs := flag.NewFlagSet("queuestats", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, errUsage)
		fs.PrintDefaults()
	}
	o := fs.StringP("output", "o", "", "The path where to save the run result. The .yaml or .yml extension selects YAML, anything else JSON. Empty disables it.")
	v := fs.BoolP("verbose", "v", false, "Enable debug logging and print loader metrics")

	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if fs.NArg() != 1 {
		return config{}, fmt.Errorf("%w: expected 1 argument, got %d", errUsage, fs.NArg())
	}

	cfg := config{
		path:    fs.Arg(0),
		output:  *o,
		verbose: *v,
	}
	if !fs.Changed("output") {
		cfg.output = os.Getenv(envOutput)
	}
	if !fs.Changed("verbose") {
		cfg.verbose = os.Getenv(envVerbose) == "true"
	}
	return cfg, nil
}
