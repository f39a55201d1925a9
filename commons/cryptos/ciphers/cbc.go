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

package ciphers

import (
	"crypto/cipher"
)

// CBCEncrypt pads plain with PKCS#7 and chains every block with the previous ciphertext block, iv for the first one.
// iv is copied and never written.
func CBCEncrypt(block cipher.Block, iv []byte, plain []byte) (encrypted []byte, err error) {
	if err = checkCipher(block); err != nil {
		return
	}
	if err = checkIV(iv); err != nil {
		return
	}
	padded, padErr := Padding(PKCS7, plain, BlockSize)
	if padErr != nil {
		err = padErr
		return
	}
	out := make([]byte, 0, len(padded))
	running := make([]byte, BlockSize)
	copy(running, iv)
	for len(padded) > 0 {
		combined, xorErr := Xor(running, padded[:BlockSize])
		if xorErr != nil {
			err = xorErr
			return
		}
		cipherBlock, encryptErr := EncryptBlock(block, combined)
		if encryptErr != nil {
			err = encryptErr
			return
		}
		out = append(out, cipherBlock...)
		running = cipherBlock
		padded = padded[BlockSize:]
	}
	encrypted = out
	return
}

// CBCDecrypt reverses CBCEncrypt. After each block the running value becomes the ciphertext block just consumed.
func CBCDecrypt(block cipher.Block, iv []byte, encrypted []byte) (plain []byte, err error) {
	if err = checkCipher(block); err != nil {
		return
	}
	if err = checkIV(iv); err != nil {
		return
	}
	if err = checkAligned(encrypted); err != nil {
		return
	}
	out := make([]byte, 0, len(encrypted))
	running := make([]byte, BlockSize)
	copy(running, iv)
	for len(encrypted) > 0 {
		c := encrypted[:BlockSize]
		decrypted, decryptErr := DecryptBlock(block, c)
		if decryptErr != nil {
			err = decryptErr
			return
		}
		plainBlock, xorErr := Xor(running, decrypted)
		if xorErr != nil {
			err = xorErr
			return
		}
		out = append(out, plainBlock...)
		copy(running, c)
		encrypted = encrypted[BlockSize:]
	}
	plain, err = UnPadding(PKCS7, out, BlockSize)
	if err != nil {
		plain = nil
	}
	return
}
