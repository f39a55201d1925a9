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

import "strconv"

// Xor combines two equal-length buffers byte by byte into a new buffer.
func Xor(a []byte, b []byte) (dst []byte, err error) {
	if len(a) != len(b) {
		err = InvalidParameter("xor: operands must have equal length").
			WithMeta("left", strconv.Itoa(len(a))).
			WithMeta("right", strconv.Itoa(len(b)))
		return
	}
	dst = make([]byte, len(a))
	for i := range a {
		dst[i] = a[i] ^ b[i]
	}
	return
}
