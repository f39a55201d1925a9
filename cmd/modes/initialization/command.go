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

package initialization

import (
	"fmt"
	"github.com/aacfactory/cryptopals/cmd/internal/files"
	"github.com/aacfactory/cryptopals/configs"
	"github.com/aacfactory/cryptopals/logs"
	"github.com/aacfactory/errors"
	"github.com/goccy/go-yaml"
	"github.com/urfave/cli/v2"
	"os"
	"path/filepath"
	"strings"
)

var Command = &cli.Command{
	Name:        "config",
	Usage:       "modes config [--active=dev] [--force] {dir}",
	Description: "write a default modes.yaml, or modes-{active}.yaml",
	ArgsUsage:   "dir",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "active",
			Usage: "profile name, selected at run time by MODES-ACTIVE",
		},
		&cli.BoolFlag{
			Name:  "force",
			Usage: "overwrite an existing file",
		},
	},
	Action: func(ctx *cli.Context) (err error) {
		dir := strings.TrimSpace(ctx.Args().First())
		if dir == "" {
			dir = "."
		}
		if !filepath.IsAbs(dir) {
			dir, err = filepath.Abs(dir)
			if err != nil {
				err = errors.Warning("modes: write config failed").WithCause(err).WithMeta("dir", dir)
				return
			}
		}
		active := strings.TrimSpace(strings.ToLower(ctx.String("active")))
		filename, writeErr := Write(dir, active, Defaults(active), ctx.Bool("force"))
		if writeErr != nil {
			err = writeErr
			return
		}
		fmt.Println("modes: config written to", filename)
		return
	},
}

// Defaults is the config written for a profile. Unknown profiles get the plain defaults.
func Defaults(active string) configs.Config {
	config := configs.Default()
	switch active {
	case "dev":
		config.Log.Level = logs.Debug
		config.Log.Formatter = logs.TextColorfulConsoleFormatter
	case "batch":
		config.Log.Formatter = logs.JsonConsoleFormatter
		config.Runtime.Procs.Min = 2
		config.Runtime.Concurrency = 8
	}
	return config
}

func Write(dir string, active string, config configs.Config, force bool) (filename string, err error) {
	name := "modes.yaml"
	if active != "" {
		name = fmt.Sprintf("modes-%s.yaml", active)
	}
	filename = filepath.ToSlash(filepath.Join(dir, name))
	if files.ExistFile(filename) && !force {
		err = errors.Warning("modes: write config failed").WithCause(errors.Warning("file exists")).WithMeta("file", filename)
		return
	}
	if !files.ExistFile(dir) {
		mdErr := os.MkdirAll(dir, 0755)
		if mdErr != nil {
			err = errors.Warning("modes: write config failed").WithCause(mdErr).WithMeta("dir", dir)
			return
		}
	}
	p, encodeErr := yaml.Marshal(config)
	if encodeErr != nil {
		err = errors.Warning("modes: write config failed").WithCause(encodeErr).WithMeta("file", filename)
		return
	}
	writeErr := os.WriteFile(filename, p, 0644)
	if writeErr != nil {
		err = errors.Warning("modes: write config failed").WithCause(writeErr).WithMeta("file", filename)
		return
	}
	return
}
