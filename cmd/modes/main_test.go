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
	"bytes"
	"github.com/aacfactory/cryptopals/cmd/modes/internal/runner"
	"github.com/aacfactory/json"
	"strings"
	"testing"
)

const yellowSubmarineHex = "59454c4c4f57205355424d4152494e45"

func run(args ...string) (string, error) {
	app := newApp()
	buf := bytes.NewBuffer(nil)
	app.Writer = buf
	err := app.Run(append([]string{"modes"}, args...))
	return buf.String(), err
}

func TestPad(t *testing.T) {
	out, err := run("pad", "--size", "20", "YELLOW SUBMARINE")
	if err != nil {
		t.Errorf("%+v", err)
		return
	}
	if out != yellowSubmarineHex+"04040404\n" {
		t.Errorf("unexpected output %q", out)
		return
	}
	out, err = run("unpad", "--size", "20", "--in", "hex", "--out", "raw", strings.TrimSpace(out))
	if err != nil {
		t.Errorf("%+v", err)
		return
	}
	if out != "YELLOW SUBMARINE" {
		t.Errorf("unexpected output %q", out)
	}
}

func TestUnPadCorrupt(t *testing.T) {
	if _, err := run("unpad", "--in", "hex", "616263"); err == nil {
		t.Error("expected corrupt padding")
	}
}

func TestCBCDecryptFile(t *testing.T) {
	out, err := run(
		"--verbose", "cbc", "-d",
		"--key-encoding", "hex", "--key", yellowSubmarineHex, "--iv", strings.Repeat("00", 16),
		"--in", "base64", "--out", "raw",
		"../../commons/cryptos/aes/testdata/10.txt",
	)
	if err != nil {
		t.Errorf("%+v", err)
		return
	}
	if !strings.HasPrefix(out, "I'm back and I'm ringin' the bell") {
		t.Errorf("unexpected output %q", out[:min(len(out), 64)])
	}
}

func TestECBReport(t *testing.T) {
	fixture := "../../commons/cryptos/aes/testdata/10.txt"
	out, err := run("ecb", "--pkcs7", "--key", "YELLOW SUBMARINE", "--in", "base64", fixture, fixture)
	if err != nil {
		t.Errorf("%+v", err)
		return
	}
	report := make([]runner.Result, 0, 2)
	if err = json.Unmarshal([]byte(strings.TrimSpace(out)), &report); err != nil {
		t.Error(err)
		return
	}
	if len(report) != 2 || report[0].Failed || report[0].Output == "" || report[0].Output != report[1].Output {
		t.Errorf("unexpected report %s", out)
	}
}
