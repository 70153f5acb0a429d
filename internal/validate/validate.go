// Copyright 2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package validate is the external UTF-8 validator the codec delegates to
// (spec.md §4.5): "validate a byte slice as UTF-8, returning either success
// or the byte offset of the first invalid byte". It is a narrow interface
// so that a faster validator can be swapped in without touching the codec.
package validate

import "unicode/utf8"

// UTF8 reports whether b is valid UTF-8. On failure, offset is the byte
// offset of the first byte that is not part of a well-formed encoding.
//
// None of the retrieval pack's examples vendor a byte-parallel UTF-8
// validator (the Rust original delegates to the simdutf8 crate for this);
// the standard library's utf8.Valid is the only candidate in scope, so the
// stdlib is used here deliberately rather than as a fallback of last resort.
func UTF8(b []byte) (ok bool, offset int) {
	if utf8.Valid(b) {
		return true, -1
	}
	return false, firstInvalid(b)
}

// firstInvalid walks b one rune at a time to find the offset of the first
// invalid byte. utf8.Valid itself does not report a position, so this is
// only called on the (rare) invalid path.
func firstInvalid(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(b)
}
