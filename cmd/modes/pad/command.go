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

package pad

import (
	"github.com/aacfactory/cryptopals/cmd/modes/internal/runner"
	"github.com/aacfactory/cryptopals/commons/cryptos/ciphers"
	"github.com/aacfactory/errors"
	"github.com/urfave/cli/v2"
)

var sizeFlag = &cli.IntFlag{
	Name:    "size",
	Aliases: []string{"s"},
	Value:   ciphers.BlockSize,
	Usage:   "block size, 1 to 255",
}

var Command = &cli.Command{
	Name:        "pad",
	Usage:       "modes pad --size=20 [--in=raw] [--out=hex] {text}",
	Description: "pkcs#7 pad text, read from standard input when text is empty",
	ArgsUsage:   "text",
	Flags: []cli.Flag{
		sizeFlag,
		runner.InputFlag,
		runner.OutputFlag,
	},
	Action: func(ctx *cli.Context) (err error) {
		size := ctx.Int(sizeFlag.Name)
		err = run(ctx, Transform(size, false))
		if err != nil {
			err = errors.Warning("modes: pad failed").WithCause(err)
		}
		return
	},
}

var UnPadCommand = &cli.Command{
	Name:        "unpad",
	Usage:       "modes unpad --size=16 [--in=hex] [--out=raw] {text}",
	Description: "strip pkcs#7 padding, read from standard input when text is empty",
	ArgsUsage:   "text",
	Flags: []cli.Flag{
		sizeFlag,
		runner.InputFlag,
		runner.OutputFlag,
	},
	Action: func(ctx *cli.Context) (err error) {
		size := ctx.Int(sizeFlag.Name)
		err = run(ctx, Transform(size, true))
		if err != nil {
			err = errors.Warning("modes: unpad failed").WithCause(err)
		}
		return
	},
}

func Transform(size int, unpad bool) runner.Transform {
	if unpad {
		return func(p []byte) ([]byte, error) {
			return ciphers.UnPadding(ciphers.PKCS7, p, size)
		}
	}
	return func(p []byte) ([]byte, error) {
		return ciphers.Padding(ciphers.PKCS7, p, size)
	}
}

func run(ctx *cli.Context, fn runner.Transform) (err error) {
	env, envErr := runner.New(ctx)
	if envErr != nil {
		err = envErr
		return
	}
	defer env.Close()
	in, inErr := env.InputEncoding(ctx)
	if inErr != nil {
		err = inErr
		return
	}
	out, outErr := env.OutputEncoding(ctx)
	if outErr != nil {
		err = outErr
		return
	}
	var inputs []runner.Input
	if text := ctx.Args().First(); text != "" {
		inputs = []runner.Input{{Name: "text", Data: []byte(text)}}
	} else {
		inputs, err = runner.Inputs(nil)
		if err != nil {
			return
		}
	}
	results := runner.Process(ctx.Context, env, inputs, in, out, fn)
	err = runner.Write(ctx.App.Writer, results, out)
	return
}
