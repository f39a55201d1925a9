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

package runner

import (
	"context"
	"github.com/aacfactory/cryptopals/commons/encodings"
	"github.com/aacfactory/errors"
	"github.com/aacfactory/json"
	"golang.org/x/sync/errgroup"
	"io"
	"strconv"
)

type Input struct {
	Name string
	Data []byte
}

type Result struct {
	Name   string `json:"name"`
	Output string `json:"output,omitempty"`
	Failed bool   `json:"failed,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Cause  string `json:"cause,omitempty"`
	err    error
}

func (result Result) Err() error {
	return result.err
}

// Transform maps one decoded input to its output bytes.
type Transform func(p []byte) ([]byte, error)

// Process decodes every input, applies fn and encodes the output, config.Runtime.Concurrency inputs at a time.
// A failed input is recorded in its result and never stops the others. Results keep the input order.
func Process(ctx context.Context, env *Env, inputs []Input, in encodings.Encoding, out encodings.Encoding, fn Transform) (results []Result) {
	results = make([]Result, len(inputs))
	group, _ := errgroup.WithContext(ctx)
	group.SetLimit(env.Config.Concurrency())
	for i, input := range inputs {
		i, input := i, input
		group.Go(func() error {
			results[i] = process(env, input, in, out, fn)
			return nil
		})
	}
	_ = group.Wait()
	return
}

func process(env *Env, input Input, in encodings.Encoding, out encodings.Encoding, fn Transform) (result Result) {
	result.Name = input.Name
	log := env.Log.With("file", input.Name)
	p, decodeErr := in.Decode(input.Data)
	if decodeErr != nil {
		return failed(env, result, decodeErr)
	}
	p, err := fn(p)
	if err != nil {
		return failed(env, result, err)
	}
	text, encodeErr := out.Encode(p)
	if encodeErr != nil {
		return failed(env, result, encodeErr)
	}
	result.Output = string(text)
	if log.DebugEnabled() {
		log.Debug().With("bytes", strconv.Itoa(len(p))).Message("modes: input processed")
	}
	return
}

func failed(env *Env, result Result, err error) Result {
	result.Failed = true
	result.Kind = describe(err)
	result.Cause = cause(err)
	result.err = err
	if env.Log.WarnEnabled() {
		env.Log.With("file", result.Name).Warn().Cause(err).Message("modes: input failed")
	}
	return result
}

func cause(err error) string {
	if codeErr, ok := err.(errors.CodeError); ok {
		return codeErr.Message()
	}
	return err.Error()
}

// Write prints a single result as text, several as a json report.
// A single failed result is returned as the command error.
func Write(w io.Writer, results []Result, out encodings.Encoding) (err error) {
	if len(results) == 1 {
		result := results[0]
		if result.Failed {
			err = result.err
			return
		}
		_, err = io.WriteString(w, result.Output)
		if err == nil && out != encodings.Raw {
			_, err = io.WriteString(w, "\n")
		}
		return
	}
	p, encodeErr := json.Marshal(results)
	if encodeErr != nil {
		err = encodeErr
		return
	}
	_, err = w.Write(append(p, '\n'))
	return
}
