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

// ECBEncrypt enciphers every block of plain independently, in order.
// plain must already be full blocks, so equal plaintext blocks give equal ciphertext blocks.
func ECBEncrypt(block cipher.Block, plain []byte) (encrypted []byte, err error) {
	if err = checkCipher(block); err != nil {
		return
	}
	if err = checkAligned(plain); err != nil {
		return
	}
	out := make([]byte, 0, len(plain))
	for len(plain) > 0 {
		p, encryptErr := EncryptBlock(block, plain[:BlockSize])
		if encryptErr != nil {
			err = encryptErr
			return
		}
		out = append(out, p...)
		plain = plain[BlockSize:]
	}
	encrypted = out
	return
}

// ECBDecrypt deciphers every block of encrypted independently, in order.
func ECBDecrypt(block cipher.Block, encrypted []byte) (plain []byte, err error) {
	if err = checkCipher(block); err != nil {
		return
	}
	if err = checkAligned(encrypted); err != nil {
		return
	}
	out := make([]byte, 0, len(encrypted))
	for len(encrypted) > 0 {
		p, decryptErr := DecryptBlock(block, encrypted[:BlockSize])
		if decryptErr != nil {
			err = decryptErr
			return
		}
		out = append(out, p...)
		encrypted = encrypted[BlockSize:]
	}
	plain = out
	return
}

// ECBEncryptWithPadding pads plain before enciphering it block by block.
func ECBEncryptWithPadding(block cipher.Block, plain []byte, padding int) (encrypted []byte, err error) {
	padded, padErr := Padding(padding, plain, BlockSize)
	if padErr != nil {
		err = padErr
		return
	}
	encrypted, err = ECBEncrypt(block, padded)
	return
}

// ECBDecryptWithPadding deciphers encrypted and strips its padding.
func ECBDecryptWithPadding(block cipher.Block, encrypted []byte, padding int) (plain []byte, err error) {
	padded, decryptErr := ECBDecrypt(block, encrypted)
	if decryptErr != nil {
		err = decryptErr
		return
	}
	plain, err = UnPadding(padding, padded, BlockSize)
	return
}
