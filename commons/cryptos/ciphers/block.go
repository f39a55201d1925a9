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
	"strconv"
)

// BlockSize is the block size of the target cipher, AES, in bytes.
// Keys and ivs are BlockSize long as well.
const BlockSize = 16

const (
	ECB = iota
	CBC
)

// EncryptBlock enciphers exactly one block into a new buffer.
func EncryptBlock(block cipher.Block, src []byte) (dst []byte, err error) {
	if err = checkBlock(block, src); err != nil {
		return
	}
	defer func() {
		if v := recover(); v != nil {
			dst = nil
			err = PrimitiveFailure("cipher: encrypt block failed", recovered(v))
		}
	}()
	dst = make([]byte, BlockSize)
	block.Encrypt(dst, src)
	return
}

// DecryptBlock deciphers exactly one block into a new buffer.
func DecryptBlock(block cipher.Block, src []byte) (dst []byte, err error) {
	if err = checkBlock(block, src); err != nil {
		return
	}
	defer func() {
		if v := recover(); v != nil {
			dst = nil
			err = PrimitiveFailure("cipher: decrypt block failed", recovered(v))
		}
	}()
	dst = make([]byte, BlockSize)
	block.Decrypt(dst, src)
	return
}

func checkBlock(block cipher.Block, src []byte) error {
	if err := checkCipher(block); err != nil {
		return err
	}
	if len(src) != BlockSize {
		return InvalidParameter("cipher: input must be exactly one block").
			WithMeta("length", strconv.Itoa(len(src))).
			WithMeta("blockSize", strconv.Itoa(BlockSize))
	}
	return nil
}

func checkCipher(block cipher.Block) error {
	if block == nil {
		return InvalidParameter("cipher: block cipher is required")
	}
	if size := block.BlockSize(); size != BlockSize {
		return InvalidParameter("cipher: block cipher has unexpected block size").
			WithMeta("blockSize", strconv.Itoa(size)).
			WithMeta("expected", strconv.Itoa(BlockSize))
	}
	return nil
}

func checkIV(iv []byte) error {
	if len(iv) != BlockSize {
		return InvalidParameter("cipher: iv length must equal block size").
			WithMeta("length", strconv.Itoa(len(iv))).
			WithMeta("blockSize", strconv.Itoa(BlockSize))
	}
	return nil
}

func checkAligned(src []byte) error {
	if len(src)%BlockSize != 0 {
		return InvalidParameter("cipher: input not full blocks").
			WithMeta("length", strconv.Itoa(len(src))).
			WithMeta("blockSize", strconv.Itoa(BlockSize))
	}
	return nil
}
