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

package crypt_test

import (
	"bytes"
	"github.com/aacfactory/cryptopals/cmd/modes/crypt"
	"github.com/aacfactory/cryptopals/commons/cryptos/ciphers"
	"testing"
)

func TestTransform(t *testing.T) {
	key := []byte("YELLOW SUBMARINE")
	iv := make([]byte, ciphers.BlockSize)
	cases := []struct {
		mode  int
		pkcs7 bool
		plain []byte
	}{
		{mode: ciphers.ECB, plain: []byte("1234123412341234")},
		{mode: ciphers.ECB, pkcs7: true, plain: []byte("123412341234123412")},
		{mode: ciphers.CBC, plain: []byte("123412341234123412")},
	}
	for _, c := range cases {
		encrypted, encryptErr := crypt.Transform(c.mode, key, iv, false, c.pkcs7)(c.plain)
		if encryptErr != nil {
			t.Error(encryptErr)
			return
		}
		decrypted, decryptErr := crypt.Transform(c.mode, key, iv, true, c.pkcs7)(encrypted)
		if decryptErr != nil {
			t.Error(decryptErr)
			return
		}
		if !bytes.Equal(decrypted, c.plain) {
			t.Errorf("mode %d: decrypted %q, expected %q", c.mode, decrypted, c.plain)
		}
	}
}

func TestTransformFailures(t *testing.T) {
	iv := make([]byte, ciphers.BlockSize)
	if _, err := crypt.Transform(ciphers.ECB, []byte("YELLOW SUBMARINE"), iv, false, false)([]byte("short")); !ciphers.IsInvalidParameter(err) {
		t.Errorf("expected invalid parameter, got %v", err)
	}
	if _, err := crypt.Transform(ciphers.CBC, []byte("YELLOW"), iv, false, false)([]byte("abc")); !ciphers.IsInvalidParameter(err) {
		t.Errorf("expected invalid parameter, got %v", err)
	}
	if _, err := crypt.Transform(ciphers.ECB, []byte("YELLOW"), iv, false, true)([]byte("abc")); !ciphers.IsInvalidParameter(err) {
		t.Errorf("expected invalid parameter, got %v", err)
	}
}
