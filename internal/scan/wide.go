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

//go:build wide_simd

package scan

import (
	"encoding/binary"
	"math/bits"
)

// wideSize is the number of bytes processed per step by the wide tier: two
// machine words, the widest lane this module expresses in portable Go
// (real 128-/256-bit vector compares would require per-ISA assembly, which
// is out of scope here; see DESIGN.md).
const wideSize = 2 * wordSize

// wideEnabled gates whether the wide tier is actually installed as the
// active dispatch target. It is true unless a std_integration build also
// detects, via runtime CPU feature bits, that the wide tier isn't worth it
// on this machine (see cpu_detect.go, which runs its init before this one).
var wideEnabled = true

func init() {
	if wideEnabled {
		active = wideIndexAny
	}
}

// wideIndexAny processes wideSize bytes per step as two independent SWAR
// words, then falls back to the single-word tier for the remainder.
func wideIndexAny(b []byte, class Class) int {
	n := len(b)
	if n < wideSize {
		return wordIndexAny(b, class)
	}

	i := 0
	for ; i+wideSize <= n; i += wideSize {
		w0 := binary.LittleEndian.Uint64(b[i:])
		w1 := binary.LittleEndian.Uint64(b[i+wordSize:])

		if wordHasClass(w0, class) {
			mask := wordClassMask(w0, class)
			return i + bits.TrailingZeros64(mask)/8
		}
		if wordHasClass(w1, class) {
			mask := wordClassMask(w1, class)
			return i + wordSize + bits.TrailingZeros64(mask)/8
		}
	}

	if i < n {
		if idx := wordIndexAny(b[i:], class); idx >= 0 {
			return i + idx
		}
	}
	return -1
}
