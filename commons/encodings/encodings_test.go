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

package encodings_test

import (
	"bytes"
	"github.com/aacfactory/cryptopals/commons/encodings"
	"testing"
)

func TestParse(t *testing.T) {
	cases := map[string]encodings.Encoding{
		"":        encodings.Raw,
		"raw":     encodings.Raw,
		" HEX ":   encodings.Hex,
		"base64":  encodings.Base64,
		"Base64 ": encodings.Base64,
	}
	for s, expected := range cases {
		e, err := encodings.Parse(s)
		if err != nil {
			t.Error(err)
			return
		}
		if e != expected {
			t.Errorf("%q: parsed %s, expected %s", s, e, expected)
		}
	}
	if _, err := encodings.Parse("base32"); err == nil {
		t.Error("expected unsupported encoding")
	}
}

func TestHex(t *testing.T) {
	p, err := encodings.Hex.DecodeString("49276d206b696c6c\n696e6720796f7572")
	if err != nil {
		t.Error(err)
		return
	}
	if string(p) != "I'm killing your" {
		t.Errorf("unexpected decoded %q", p)
		return
	}
	text, encodeErr := encodings.Hex.Encode(p)
	if encodeErr != nil {
		t.Error(encodeErr)
		return
	}
	if string(text) != "49276d206b696c6c696e6720796f7572" {
		t.Errorf("unexpected encoded %s", text)
	}
	if _, err = encodings.Hex.DecodeString("zz"); err == nil {
		t.Error("expected invalid hex")
	}
}

func TestBase64(t *testing.T) {
	p, err := encodings.Base64.DecodeString("WUVMTE9XIFNV\r\nQk1BUklORQ==\n")
	if err != nil {
		t.Error(err)
		return
	}
	if string(p) != "YELLOW SUBMARINE" {
		t.Errorf("unexpected decoded %q", p)
		return
	}
	text, encodeErr := encodings.Base64.Encode(p)
	if encodeErr != nil {
		t.Error(encodeErr)
		return
	}
	if string(text) != "WUVMTE9XIFNVQk1BUklORQ==" {
		t.Errorf("unexpected encoded %s", text)
	}
}

func TestRaw(t *testing.T) {
	src := []byte("raw bytes\n")
	p, err := encodings.Raw.Decode(src)
	if err != nil {
		t.Error(err)
		return
	}
	if !bytes.Equal(p, src) {
		t.Errorf("raw must keep bytes as is, got %q", p)
	}
	p[0] = 'R'
	if src[0] != 'r' {
		t.Error("raw decode must copy")
	}
}
