// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package byteview provides a mechanism to handle strings and []byte as immutable byte views.
package byteview

import (
	"slices"
	"sync"
	"unicode"
	"unicode/utf8"
	"unsafe"
)

type ByteView struct {
	data string
}

func From[T string | []byte](in T) ByteView {
	switch in := any(in).(type) {
	case string:
		return ByteView{in}
	case []byte:
		return ByteView{unsafe.String(unsafe.SliceData(in), len(in))}
	}
	panic("never reached")
}

func (v ByteView) Len() int { return len(v.data) }

// String returns the view as a string. If the view was created from a []byte, the string shares
// memory with that slice.
func (v ByteView) String() string { return v.data }

// Words splits the input around each run of one or more whitespace characters.
//
// The input is not trimmed: leading or trailing whitespace results in a leading or trailing empty
// word and an empty input results in a single empty word. The result is never empty.
func Words(v ByteView) []ByteView {
	s := v.data
	words := make([]ByteView, 0, 1+len(s)/6)
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !IsSpace(r) {
			i += size
			continue
		}
		words = append(words, ByteView{s[start:i]})
		i += size
		for i < len(s) {
			r, size = utf8.DecodeRuneInString(s[i:])
			if !IsSpace(r) {
				break
			}
			i += size
		}
		start = i
	}
	return append(words, ByteView{s[start:]})
}

// IsSpace reports whether r is a whitespace character as understood by regular expressions in
// ECMAScript (\s). This is unicode.IsSpace, except that U+0085 (NEL) is not a space and U+FEFF
// (BOM) is.
func IsSpace(r rune) bool {
	switch r {
	case '\u0085':
		return false
	case '\ufeff':
		return true
	}
	return unicode.IsSpace(r)
}

// Builder builds a string from byte views. The zero value is ready to use.
type Builder struct {
	_   [0]sync.Mutex // don't copy
	buf []byte
}

func (b *Builder) Grow(n int) {
	b.buf = slices.Grow(b.buf, n)
}

func (b *Builder) WriteByteView(v ByteView) (n int, err error) {
	b.buf = append(b.buf, v.data...)
	return len(v.data), nil
}

func (b *Builder) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// Build returns the built string and resets the builder.
func (b *Builder) Build() string {
	defer func() {
		b.buf = nil
	}()
	return unsafe.String(unsafe.SliceData(b.buf), len(b.buf))
}
