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
	"fmt"
	"github.com/aacfactory/cryptopals/cmd/internal/files"
	"github.com/aacfactory/cryptopals/commons/encodings"
	"github.com/aacfactory/cryptopals/commons/procs"
	"github.com/aacfactory/cryptopals/configs"
	"github.com/aacfactory/cryptopals/logs"
	"github.com/aacfactory/errors"
	"github.com/cespare/xxhash/v2"
	"github.com/rs/xid"
	"github.com/urfave/cli/v2"
	"strconv"
)

var (
	ConfigFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "config dir holding modes.yaml, MODES-ACTIVE selects modes-{active}.yaml",
		EnvVars: []string{"MODES_CONFIG"},
	}
	VerboseFlag = &cli.BoolFlag{
		Name:  "verbose",
		Usage: "debug logging",
	}
	InputFlag = &cli.StringFlag{
		Name:  "in",
		Usage: "input encoding, raw, hex or base64",
	}
	OutputFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "output encoding, raw, hex or base64",
	}
)

// Env is what a command needs for one run.
type Env struct {
	Id     string
	Config configs.Config
	Log    logs.Logger
	procs  *procs.AutoMaxProcs
}

func New(ctx *cli.Context) (env *Env, err error) {
	config, configErr := configs.Load(ctx.String(ConfigFlag.Name))
	if configErr != nil {
		err = configErr
		return
	}
	if ctx.Bool(VerboseFlag.Name) {
		config.Log.Level = logs.Debug
	}
	logger, logErr := logs.New(config.Log)
	if logErr != nil {
		err = logErr
		return
	}
	id := xid.New().String()
	logger = logger.With("run", id)
	amp := procs.New(config.Runtime.Procs.Min, func(message string) {
		if logger.DebugEnabled() {
			logger.Debug().Message(message)
		}
	})
	amp.Enable()
	env = &Env{
		Id:     id,
		Config: config,
		Log:    logger,
		procs:  amp,
	}
	return
}

func (env *Env) Close() {
	env.procs.Reset()
	env.Log.Shutdown(context.Background())
}

// InputEncoding returns the --in encoding, or the configured one.
func (env *Env) InputEncoding(ctx *cli.Context) (encodings.Encoding, error) {
	return env.encoding(ctx, InputFlag.Name, env.Config.Encoding.Input)
}

// OutputEncoding returns the --out encoding, or the configured one.
func (env *Env) OutputEncoding(ctx *cli.Context) (encodings.Encoding, error) {
	return env.encoding(ctx, OutputFlag.Name, env.Config.Encoding.Output)
}

// KeyEncoding returns the encoding of --key and --iv values.
func (env *Env) KeyEncoding(ctx *cli.Context, flag string) (encodings.Encoding, error) {
	return env.encoding(ctx, flag, env.Config.Encoding.Key)
}

func (env *Env) encoding(ctx *cli.Context, flag string, def encodings.Encoding) (encodings.Encoding, error) {
	if ctx.IsSet(flag) {
		return encodings.Parse(ctx.String(flag))
	}
	return encodings.Parse(def.String())
}

// Fingerprint identifies key material in logs without writing it.
func Fingerprint(key []byte) string {
	return strconv.FormatUint(xxhash.Sum64(key), 16)
}

// Inputs reads every named file, standard input when there is none.
func Inputs(names []string) (inputs []Input, err error) {
	if len(names) == 0 {
		names = []string{files.Stdin}
	}
	inputs = make([]Input, 0, len(names))
	for _, name := range names {
		p, readErr := files.Read(name)
		if readErr != nil {
			err = errors.Warning("modes: read input failed").WithCause(readErr).WithMeta("file", name)
			return
		}
		inputs = append(inputs, Input{
			Name: name,
			Data: p,
		})
	}
	return
}

func describe(err error) string {
	if err == nil {
		return ""
	}
	if codeErr, ok := err.(errors.CodeError); ok {
		return codeErr.Name()
	}
	return fmt.Sprintf("%T", err)
}
