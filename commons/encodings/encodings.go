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

package encodings

import (
	"encoding/base64"
	"encoding/hex"
	"github.com/aacfactory/errors"
	"github.com/valyala/bytebufferpool"
	"strings"
)

const (
	Raw    = Encoding("raw")
	Hex    = Encoding("hex")
	Base64 = Encoding("base64")
)

// Encoding is the text form fixtures, keys and ivs are written in.
type Encoding string

func Parse(s string) (e Encoding, err error) {
	switch Encoding(strings.ToLower(strings.TrimSpace(s))) {
	case Raw, "":
		e = Raw
	case Hex:
		e = Hex
	case Base64:
		e = Base64
	default:
		err = errors.Warning("encodings: unsupported encoding").WithMeta("encoding", s)
	}
	return
}

func (e Encoding) String() string {
	return string(e)
}

// Decode turns text into bytes. Hex and base64 ignore whitespace, so wrapped fixtures decode as is.
func (e Encoding) Decode(text []byte) (p []byte, err error) {
	switch e {
	case Raw, "":
		p = make([]byte, len(text))
		copy(p, text)
	case Hex:
		bb := bytebufferpool.Get()
		defer bytebufferpool.Put(bb)
		stripSpace(bb, text)
		p = make([]byte, hex.DecodedLen(bb.Len()))
		n, decodeErr := hex.Decode(p, bb.B)
		if decodeErr != nil {
			p = nil
			err = errors.Warning("encodings: decode hex failed").WithCause(decodeErr)
			return
		}
		p = p[:n]
	case Base64:
		bb := bytebufferpool.Get()
		defer bytebufferpool.Put(bb)
		stripSpace(bb, text)
		p = make([]byte, base64.StdEncoding.DecodedLen(bb.Len()))
		n, decodeErr := base64.StdEncoding.Decode(p, bb.B)
		if decodeErr != nil {
			p = nil
			err = errors.Warning("encodings: decode base64 failed").WithCause(decodeErr)
			return
		}
		p = p[:n]
	default:
		err = errors.Warning("encodings: unsupported encoding").WithMeta("encoding", string(e))
	}
	return
}

func (e Encoding) DecodeString(text string) (p []byte, err error) {
	p, err = e.Decode([]byte(text))
	return
}

// Encode turns bytes into text.
func (e Encoding) Encode(p []byte) (text []byte, err error) {
	switch e {
	case Raw, "":
		text = make([]byte, len(p))
		copy(text, p)
	case Hex:
		text = make([]byte, hex.EncodedLen(len(p)))
		hex.Encode(text, p)
	case Base64:
		text = make([]byte, base64.StdEncoding.EncodedLen(len(p)))
		base64.StdEncoding.Encode(text, p)
	default:
		err = errors.Warning("encodings: unsupported encoding").WithMeta("encoding", string(e))
	}
	return
}

func stripSpace(bb *bytebufferpool.ByteBuffer, text []byte) {
	for _, c := range text {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		default:
			_ = bb.WriteByte(c)
		}
	}
}
