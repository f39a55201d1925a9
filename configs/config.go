/*
 * Copyright 2023 Wang Min Xiang
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * 	http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package configs

import (
	"github.com/aacfactory/cryptopals/commons/encodings"
	"github.com/aacfactory/cryptopals/logs"
)

type ProcsConfig struct {
	Min int `json:"min" yaml:"min,omitempty" validate:"min=0" message:"min procs must not be negative"`
}

type RuntimeConfig struct {
	Procs       ProcsConfig `json:"procs,omitempty" yaml:"procs,omitempty"`
	Concurrency int         `json:"concurrency,omitempty" yaml:"concurrency,omitempty" validate:"min=0" message:"concurrency must not be negative"`
}

// EncodingConfig holds the default text encodings of command inputs and outputs.
type EncodingConfig struct {
	Input  encodings.Encoding `json:"input,omitempty" yaml:"input,omitempty" validate:"omitempty,oneof=raw hex base64" message:"input must be one of raw, hex or base64"`
	Output encodings.Encoding `json:"output,omitempty" yaml:"output,omitempty" validate:"omitempty,oneof=raw hex base64" message:"output must be one of raw, hex or base64"`
	Key    encodings.Encoding `json:"key,omitempty" yaml:"key,omitempty" validate:"omitempty,oneof=raw hex base64" message:"key must be one of raw, hex or base64"`
}

type Config struct {
	Runtime  RuntimeConfig  `json:"runtime,omitempty" yaml:"runtime,omitempty"`
	Log      logs.Config    `json:"log,omitempty" yaml:"log,omitempty"`
	Encoding EncodingConfig `json:"encoding,omitempty" yaml:"encoding,omitempty"`
}

func Default() Config {
	return Config{
		Runtime: RuntimeConfig{
			Procs:       ProcsConfig{},
			Concurrency: 0,
		},
		Log: logs.Config{
			Level:     logs.Warn,
			Formatter: logs.TextConsoleFormatter,
			Console:   logs.Stderr,
		},
		Encoding: EncodingConfig{
			Input:  encodings.Raw,
			Output: encodings.Hex,
			Key:    encodings.Raw,
		},
	}
}

// Concurrency is the number of inputs a command processes at once, at least one.
func (config Config) Concurrency() int {
	if n := config.Runtime.Concurrency; n > 0 {
		return n
	}
	return 1
}
