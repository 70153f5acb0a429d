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

// Package scan implements the byte-class scanner (spec.md §4.1): given a
// byte slice and a class predicate, find the offset of the first byte
// matching that class, or report that none exists.
//
// Three tiers exist, from widest to narrowest: a two-word tier gated by the
// wide_simd build tag, a single machine-word SWAR tier (the default), and a
// byte-at-a-time tier used for short inputs and unaligned tails. The active
// tier is chosen once at init time, the same dispatch-table shape used by
// go-highway's package-level function variables, so the encoder/decoder
// above the scanner is unaware of which tier is active.
package scan

// Class identifies which byte pattern the scanner should look for.
type Class int

const (
	// FourByteLead matches the lead byte of a 4-byte UTF-8 sequence.
	FourByteLead Class = iota
	// FourByteLeadOrNUL matches FourByteLead or the NUL byte.
	FourByteLeadOrNUL
	// EDLead matches the byte 0xED, a possible CESU-8 surrogate introducer.
	EDLead
	// EDOrC0Lead matches EDLead or 0xC0, a possible MUTF-8 overlong-null
	// introducer.
	EDOrC0Lead
	// EDOrC0OrNULLead matches EDOrC0Lead or a literal NUL byte. MUTF-8
	// decoding needs this third alternative: a literal 0x00 is never valid
	// MUTF-8 (NUL must appear as the overlong pair 0xC0 0x80), but a plain
	// UTF-8 validator would accept it, so the fast borrow path must not be
	// taken when one is present. Not part of spec.md's original class list;
	// see DESIGN.md for why it was added.
	EDOrC0OrNULLead
)

// active is the dispatch point: it starts out as the word tier and may be
// overridden by another file's init() to the wide tier.
var active = wordIndexAny

// IndexAny returns the offset of the first byte in b matching class, or -1
// if no such byte exists. Ties are broken by always preferring the lowest
// offset; scanning proceeds in strictly ascending order.
func IndexAny(b []byte, class Class) int {
	return active(b, class)
}

// matches reports whether a single byte belongs to class. This is the
// ground truth every tier must agree with, and is what the byte-at-a-time
// tier uses directly.
func matches(b byte, class Class) bool {
	switch class {
	case FourByteLead:
		return b&0b1111_1000 == 0b1111_0000
	case FourByteLeadOrNUL:
		return b == 0x00 || b&0b1111_1000 == 0b1111_0000
	case EDLead:
		return b == 0xed
	case EDOrC0Lead:
		return b == 0xed || b == 0xc0
	case EDOrC0OrNULLead:
		return b == 0xed || b == 0xc0 || b == 0x00
	default:
		panic("scan: unknown class")
	}
}

// byteIndexAny is the byte-at-a-time tier: the tail of any wider tier, and
// the entirety of the scan for inputs shorter than a machine word.
func byteIndexAny(b []byte, class Class) int {
	for i, c := range b {
		if matches(c, class) {
			return i
		}
	}
	return -1
}
