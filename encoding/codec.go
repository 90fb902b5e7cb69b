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

// Package encoding defines the interfaces used to persist run results.
package encoding

import "github.com/elastic/queuestats/report"

// Codec encodes and decodes run results.
type Codec interface {
	Encoder
	Decoder
}

// Encoder encodes a report.Result.
type Encoder interface {
	// Encode accepts a report.Result and returns the encoded representation.
	Encode(report.Result) ([]byte, error)
}

// Decoder decodes a report.Result.
type Decoder interface {
	// Decode decodes an encoded report.Result into its struct form.
	Decode([]byte, *report.Result) error
}
