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

package pad_test

import (
	"bytes"
	"github.com/aacfactory/cryptopals/cmd/modes/pad"
	"github.com/aacfactory/cryptopals/commons/cryptos/ciphers"
	"testing"
)

func TestTransform(t *testing.T) {
	padded, padErr := pad.Transform(20, false)([]byte("YELLOW SUBMARINE"))
	if padErr != nil {
		t.Error(padErr)
		return
	}
	if !bytes.Equal(padded, []byte("YELLOW SUBMARINE\x04\x04\x04\x04")) {
		t.Errorf("padded %q", padded)
		return
	}
	plain, unpadErr := pad.Transform(20, true)(padded)
	if unpadErr != nil {
		t.Error(unpadErr)
		return
	}
	if string(plain) != "YELLOW SUBMARINE" {
		t.Errorf("unpadded %q", plain)
	}
}

func TestTransformFailures(t *testing.T) {
	if _, err := pad.Transform(0, false)([]byte("x")); !ciphers.IsInvalidParameter(err) {
		t.Errorf("expected invalid parameter, got %v", err)
	}
	if _, err := pad.Transform(16, true)([]byte("abc\x00")); !ciphers.IsCorruptPadding(err) {
		t.Errorf("expected corrupt padding, got %v", err)
	}
}
