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

package main

import (
	"context"
	"fmt"
	"github.com/aacfactory/cryptopals/cmd/modes/crypt"
	"github.com/aacfactory/cryptopals/cmd/modes/initialization"
	"github.com/aacfactory/cryptopals/cmd/modes/internal/runner"
	"github.com/aacfactory/cryptopals/cmd/modes/pad"
	"github.com/urfave/cli/v2"
	"os"
)

const (
	Name      = "MODES"
	Version   = "v0.1.0"
	Usage     = "aes-128 ecb and cbc with pkcs#7 padding, see COMMANDS"
	Copyright = `Copyright 2023 Wang Min Xiang

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.`
)

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = Name
	app.Version = Version
	app.Usage = Usage
	app.Authors = []*cli.Author{
		{
			Name:  "Wang Min Xiang",
			Email: "wangminxiang@aacfactory.co",
		},
	}
	app.Copyright = Copyright
	app.Flags = []cli.Flag{
		runner.ConfigFlag,
		runner.VerboseFlag,
	}
	app.Commands = []*cli.Command{
		pad.Command,
		pad.UnPadCommand,
		crypt.ECBCommand,
		crypt.CBCCommand,
		initialization.Command,
	}
	return app
}

func main() {
	app := newApp()
	if err := app.RunContext(context.Background(), os.Args); err != nil {
		fmt.Println(fmt.Sprintf("%+v", err))
		os.Exit(1)
	}
}
