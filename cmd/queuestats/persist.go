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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/elastic/queuestats/codec/json"
	"github.com/elastic/queuestats/codec/yaml"
	"github.com/elastic/queuestats/encoding"
	"github.com/elastic/queuestats/report"
)

func codecFor(file string) encoding.Codec {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return yaml.YAML{}
	default:
		return json.JSON{}
	}
}

func persist(file string, r report.Result) error {
	b, err := codecFor(file).Encode(r)
	if err != nil {
		return fmt.Errorf("cannot encode result: %w", err)
	}
	if !strings.HasSuffix(string(b), "\n") {
		b = append(b, '\n')
	}
	if err := os.WriteFile(file, b, 0644); err != nil {
		return fmt.Errorf("cannot write result file: %w", err)
	}
	return nil
}
