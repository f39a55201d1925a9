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
	"github.com/aacfactory/configures"
	"github.com/aacfactory/cryptopals/commons"
	"github.com/aacfactory/errors"
	"os"
	"path/filepath"
	"strings"
)

const (
	activeSystemEnvKey = "MODES-ACTIVE"
	configFilePrefix   = "modes"
)

func ConfigRetrieverOption(dir string) (option configures.RetrieverOption, err error) {
	path, pathErr := filepath.Abs(dir)
	if pathErr != nil {
		err = errors.Warning("modes: create config retriever failed").WithCause(pathErr).WithMeta("dir", dir)
		return
	}
	active, _ := os.LookupEnv(activeSystemEnvKey)
	active = strings.TrimSpace(active)
	store := configures.NewFileStore(path, configFilePrefix, '-')
	option = configures.RetrieverOption{
		Active: active,
		Format: "YAML",
		Store:  store,
	}
	return
}

// Load reads modes.yaml (and modes-{MODES-ACTIVE}.yaml) under dir over the defaults.
// An empty dir returns the defaults.
func Load(dir string) (config Config, err error) {
	config = Default()
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return
	}
	option, optionErr := ConfigRetrieverOption(dir)
	if optionErr != nil {
		err = optionErr
		return
	}
	retriever, retrieverErr := configures.NewRetriever(option)
	if retrieverErr != nil {
		err = errors.Warning("modes: load config failed").WithCause(retrieverErr).WithMeta("dir", dir)
		return
	}
	configure, configureErr := retriever.Get()
	if configureErr != nil {
		err = errors.Warning("modes: load config failed").WithCause(configureErr).WithMeta("dir", dir)
		return
	}
	decodeErr := configure.As(&config)
	if decodeErr != nil {
		err = errors.Warning("modes: load config failed").WithCause(decodeErr).WithMeta("dir", dir)
		return
	}
	if validateErr := commons.Validate(config); validateErr != nil {
		err = validateErr
		return
	}
	return
}
