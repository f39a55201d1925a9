/*
 * Copyright 2021 Wang Min Xiang
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
 */

package procs_test

import (
	"github.com/aacfactory/cryptopals/commons/procs"
	"runtime"
	"testing"
)

func TestAutoMaxProcs(t *testing.T) {
	before := runtime.GOMAXPROCS(0)
	messages := make([]string, 0, 1)
	p := procs.New(1, func(message string) {
		messages = append(messages, message)
	})
	n := p.Enable()
	if n < 1 {
		t.Errorf("unexpected procs %d", n)
	}
	p.Reset()
	if after := runtime.GOMAXPROCS(0); after != before {
		t.Errorf("reset must restore procs, before %d after %d", before, after)
	}
	t.Log(n, messages)
}
