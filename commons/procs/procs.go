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

package procs

import (
	"fmt"
	"go.uber.org/automaxprocs/maxprocs"
	"runtime"
)

// Printer receives maxprocs reports, nil drops them.
type Printer func(message string)

func New(min int, printer Printer) *AutoMaxProcs {
	if min < 0 {
		min = 0
	}
	return &AutoMaxProcs{
		min:     min,
		printer: printer,
		resetFn: nil,
	}
}

type AutoMaxProcs struct {
	min     int
	printer Printer
	resetFn func()
}

// Enable sets GOMAXPROCS from the cpu quota, never below min, and returns the value in use.
func (p *AutoMaxProcs) Enable() int {
	options := []maxprocs.Option{maxprocs.Logger(func(format string, args ...interface{}) {
		if p.printer != nil {
			p.printer(fmt.Sprintf(format, args...))
		}
	})}
	if p.min > 0 {
		options = append(options, maxprocs.Min(p.min))
	}
	reset, setErr := maxprocs.Set(options...)
	if setErr != nil {
		return runtime.GOMAXPROCS(0)
	}
	p.resetFn = reset
	return runtime.GOMAXPROCS(0)
}

func (p *AutoMaxProcs) Reset() {
	if p.resetFn != nil {
		p.resetFn()
		p.resetFn = nil
	}
}
