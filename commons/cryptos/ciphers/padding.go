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
	"bytes"
	"fmt"
	"strconv"
)

const (
	ZEROS = iota
	PKCS5
	PKCS7
)

const (
	maxPaddingBlockSize = 255
)

// Padding appends padding to a copy of src so that its length is a multiple of blockSize.
// The src backing array is never written.
func Padding(padding int, src []byte, blockSize int) (dst []byte, err error) {
	if blockSize <= 0 || blockSize > maxPaddingBlockSize {
		err = InvalidParameter(fmt.Sprintf("padding: block size must be in [1, %d]", maxPaddingBlockSize)).
			WithMeta("blockSize", strconv.Itoa(blockSize))
		return
	}
	switch padding {
	case PKCS5, PKCS7:
		dst = pkcs7Padding(src, blockSize)
	case ZEROS:
		dst = zerosPadding(src, blockSize)
	default:
		err = InvalidParameter("padding: unsupported padding").WithMeta("padding", strconv.Itoa(padding))
	}
	return
}

// UnPadding strips the padding added by Padding. The result shares src's backing array.
func UnPadding(padding int, src []byte, blockSize int) (dst []byte, err error) {
	if blockSize <= 0 || blockSize > maxPaddingBlockSize {
		err = InvalidParameter(fmt.Sprintf("padding: block size must be in [1, %d]", maxPaddingBlockSize)).
			WithMeta("blockSize", strconv.Itoa(blockSize))
		return
	}
	switch padding {
	case PKCS5, PKCS7:
		dst, err = pkcs7UnPadding(src, blockSize)
	case ZEROS:
		dst = zerosUnPadding(src)
	default:
		err = InvalidParameter("padding: unsupported padding").WithMeta("padding", strconv.Itoa(padding))
	}
	return
}

// pkcs7Padding always adds at least one byte, a whole block when src is aligned.
func pkcs7Padding(src []byte, blockSize int) []byte {
	padding := blockSize - len(src)%blockSize
	dst := make([]byte, len(src), len(src)+padding)
	copy(dst, src)
	return append(dst, bytes.Repeat([]byte{byte(padding)}, padding)...)
}

func pkcs7UnPadding(src []byte, blockSize int) ([]byte, error) {
	length := len(src)
	if length == 0 {
		return nil, CorruptPadding("padding: nothing to unpad")
	}
	unPadding := int(src[length-1])
	if unPadding == 0 {
		return nil, CorruptPadding("padding: padding byte is zero")
	}
	if unPadding > blockSize {
		return nil, CorruptPadding("padding: padding byte exceeds block size").
			WithMeta("padding", strconv.Itoa(unPadding)).
			WithMeta("blockSize", strconv.Itoa(blockSize))
	}
	if unPadding > length {
		return nil, CorruptPadding("padding: padding byte exceeds input length").
			WithMeta("padding", strconv.Itoa(unPadding)).
			WithMeta("length", strconv.Itoa(length))
	}
	return src[:(length - unPadding)], nil
}

func zerosPadding(src []byte, blockSize int) []byte {
	paddingCount := (blockSize - len(src)%blockSize) % blockSize
	dst := make([]byte, len(src)+paddingCount)
	copy(dst, src)
	return dst
}

func zerosUnPadding(src []byte) []byte {
	for i := len(src) - 1; i >= 0; i-- {
		if src[i] != 0 {
			return src[:i+1]
		}
	}
	return src[:0]
}
