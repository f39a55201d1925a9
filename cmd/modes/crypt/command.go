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

package crypt

import (
	"github.com/aacfactory/cryptopals/cmd/modes/internal/runner"
	"github.com/aacfactory/cryptopals/commons/cryptos/aes"
	"github.com/aacfactory/cryptopals/commons/cryptos/ciphers"
	"github.com/aacfactory/errors"
	"github.com/urfave/cli/v2"
	"strconv"
)

var (
	keyFlag = &cli.StringFlag{
		Name:     "key",
		Aliases:  []string{"k"},
		Required: true,
		Usage:    "16 bytes key",
	}
	ivFlag = &cli.StringFlag{
		Name:  "iv",
		Usage: "16 bytes iv",
	}
	keyEncodingFlag = &cli.StringFlag{
		Name:  "key-encoding",
		Usage: "encoding of key and iv, raw, hex or base64",
	}
	decryptFlag = &cli.BoolFlag{
		Name:    "decrypt",
		Aliases: []string{"d"},
		Usage:   "decrypt instead of encrypt",
	}
	pkcs7Flag = &cli.BoolFlag{
		Name:  "pkcs7",
		Usage: "pad with pkcs#7 before encrypting, unpad after decrypting",
	}
)

var ECBCommand = &cli.Command{
	Name:        "ecb",
	Usage:       "modes ecb --key={KEY} [--decrypt] [--pkcs7] [--in=raw] [--out=hex] {file...}",
	Description: "encrypt or decrypt full blocks with aes-128 ecb, every block on its own",
	ArgsUsage:   "files, standard input when empty or -",
	Flags: []cli.Flag{
		keyFlag,
		keyEncodingFlag,
		decryptFlag,
		pkcs7Flag,
		runner.InputFlag,
		runner.OutputFlag,
	},
	Action: func(ctx *cli.Context) (err error) {
		err = run(ctx, ciphers.ECB)
		if err != nil {
			err = errors.Warning("modes: ecb failed").WithCause(err)
		}
		return
	},
}

var CBCCommand = &cli.Command{
	Name:        "cbc",
	Usage:       "modes cbc --key={KEY} --iv={IV} [--decrypt] [--in=raw] [--out=hex] {file...}",
	Description: "encrypt or decrypt with aes-128 cbc and pkcs#7 padding",
	ArgsUsage:   "files, standard input when empty or -",
	Flags: []cli.Flag{
		keyFlag,
		&cli.StringFlag{
			Name:     ivFlag.Name,
			Required: true,
			Usage:    ivFlag.Usage,
		},
		keyEncodingFlag,
		decryptFlag,
		runner.InputFlag,
		runner.OutputFlag,
	},
	Action: func(ctx *cli.Context) (err error) {
		err = run(ctx, ciphers.CBC)
		if err != nil {
			err = errors.Warning("modes: cbc failed").WithCause(err)
		}
		return
	},
}

func run(ctx *cli.Context, mode int) (err error) {
	env, envErr := runner.New(ctx)
	if envErr != nil {
		err = envErr
		return
	}
	defer env.Close()
	keyEncoding, keyEncodingErr := env.KeyEncoding(ctx, keyEncodingFlag.Name)
	if keyEncodingErr != nil {
		err = keyEncodingErr
		return
	}
	key, keyErr := keyEncoding.DecodeString(ctx.String(keyFlag.Name))
	if keyErr != nil {
		err = errors.Warning("modes: decode key failed").WithCause(keyErr)
		return
	}
	var iv []byte
	if mode == ciphers.CBC {
		iv, err = keyEncoding.DecodeString(ctx.String(ivFlag.Name))
		if err != nil {
			err = errors.Warning("modes: decode iv failed").WithCause(err)
			return
		}
	}
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
	inputs, inputsErr := runner.Inputs(ctx.Args().Slice())
	if inputsErr != nil {
		err = inputsErr
		return
	}
	fn := Transform(mode, key, iv, ctx.Bool(decryptFlag.Name), ctx.Bool(pkcs7Flag.Name))
	if env.Log.DebugEnabled() {
		env.Log.Debug().
			With("key", runner.Fingerprint(key)).
			With("decrypt", strconv.FormatBool(ctx.Bool(decryptFlag.Name))).
			With("inputs", strconv.Itoa(len(inputs))).
			Message("modes: run")
	}
	results := runner.Process(ctx.Context, env, inputs, in, out, fn)
	err = runner.Write(ctx.App.Writer, results, out)
	return
}

// Transform builds the per-input operation. ECB honours pkcs7, CBC always pads.
func Transform(mode int, key []byte, iv []byte, decrypt bool, pkcs7 bool) runner.Transform {
	if mode == ciphers.ECB && pkcs7 {
		return func(p []byte) ([]byte, error) {
			block, blockErr := aes.NewBlock(key)
			if blockErr != nil {
				return nil, blockErr
			}
			if decrypt {
				return ciphers.ECBDecryptWithPadding(block, p, ciphers.PKCS7)
			}
			return ciphers.ECBEncryptWithPadding(block, p, ciphers.PKCS7)
		}
	}
	return func(p []byte) ([]byte, error) {
		if decrypt {
			return aes.Decrypt(mode, key, iv, p)
		}
		return aes.Encrypt(mode, key, iv, p)
	}
}
