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

package logs_test

import (
	"github.com/aacfactory/cryptopals/logs"
	"testing"
)

func TestNewInvalidTimeout(t *testing.T) {
	_, err := logs.New(logs.Config{SendTimeout: "soon"})
	if err == nil {
		t.Error("expected invalid send timeout")
		return
	}
	_, err = logs.New(logs.Config{ShutdownTimeout: "later"})
	if err == nil {
		t.Error("expected invalid shutdown timeout")
	}
}

func TestNew(t *testing.T) {
	logger, err := logs.New(logs.Config{
		Level:          logs.Debug,
		DisableConsole: true,
		SendTimeout:    "1s",
	})
	if err != nil {
		t.Errorf("%+v", err)
		return
	}
	logger.Debug().With("mode", "cbc").Message("logs: ready")
}
