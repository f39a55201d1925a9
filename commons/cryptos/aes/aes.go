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

package aes

import (
	"crypto/aes"
	"crypto/cipher"
	"github.com/aacfactory/cryptopals/commons/cryptos/ciphers"
	"strconv"
)

// NewBlock builds the AES-128 permutation for key. Nothing in this package keeps key after the call returns.
func NewBlock(key []byte) (block cipher.Block, err error) {
	if len(key) != ciphers.BlockSize {
		err = ciphers.InvalidParameter("aes: key length must equal block size").
			WithMeta("length", strconv.Itoa(len(key))).
			WithMeta("blockSize", strconv.Itoa(ciphers.BlockSize))
		return
	}
	b, parseErr := aes.NewCipher(key)
	if parseErr != nil {
		err = ciphers.PrimitiveFailure("aes: parse key failed", parseErr)
		return
	}
	block = b
	return
}

// ECBEncrypt enciphers full blocks of plain under key, without padding.
func ECBEncrypt(key []byte, plain []byte) (encrypted []byte, err error) {
	block, blockErr := NewBlock(key)
	if blockErr != nil {
		err = blockErr
		return
	}
	encrypted, err = ciphers.ECBEncrypt(block, plain)
	return
}

// ECBDecrypt deciphers full blocks of encrypted under key, without unpadding.
func ECBDecrypt(key []byte, encrypted []byte) (plain []byte, err error) {
	block, blockErr := NewBlock(key)
	if blockErr != nil {
		err = blockErr
		return
	}
	plain, err = ciphers.ECBDecrypt(block, encrypted)
	return
}

// CBCEncrypt pads plain with PKCS#7 and chains it from iv under key.
func CBCEncrypt(key []byte, iv []byte, plain []byte) (encrypted []byte, err error) {
	block, blockErr := NewBlock(key)
	if blockErr != nil {
		err = blockErr
		return
	}
	encrypted, err = ciphers.CBCEncrypt(block, iv, plain)
	return
}

// CBCDecrypt reverses CBCEncrypt.
func CBCDecrypt(key []byte, iv []byte, encrypted []byte) (plain []byte, err error) {
	block, blockErr := NewBlock(key)
	if blockErr != nil {
		err = blockErr
		return
	}
	plain, err = ciphers.CBCDecrypt(block, iv, encrypted)
	return
}

// Encrypt dispatches on mode, ciphers.ECB or ciphers.CBC. ECB ignores iv.
func Encrypt(mode int, key []byte, iv []byte, plain []byte) (encrypted []byte, err error) {
	switch mode {
	case ciphers.CBC:
		encrypted, err = CBCEncrypt(key, iv, plain)
	case ciphers.ECB:
		encrypted, err = ECBEncrypt(key, plain)
	default:
		err = ciphers.InvalidParameter("aes: unsupported mode").WithMeta("mode", strconv.Itoa(mode))
	}
	return
}

// Decrypt dispatches on mode, ciphers.ECB or ciphers.CBC. ECB ignores iv.
func Decrypt(mode int, key []byte, iv []byte, encrypted []byte) (plain []byte, err error) {
	switch mode {
	case ciphers.CBC:
		plain, err = CBCDecrypt(key, iv, encrypted)
	case ciphers.ECB:
		plain, err = ECBDecrypt(key, encrypted)
	default:
		err = ciphers.InvalidParameter("aes: unsupported mode").WithMeta("mode", strconv.Itoa(mode))
	}
	return
}
