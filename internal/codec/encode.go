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

package codec

import "buf.build/go/cesu8/internal/scan"

// EncodeBytes transcodes valid UTF-8 input into flavor's encoding (spec.md
// §4.2). It allocates at most once: when input needs no transcoding at all,
// it is returned unmodified with borrowed set to true.
//
// input is assumed to already be well-formed UTF-8. Neither this function
// nor the public Encode functions check that: they accept Go strings, which
// may hold arbitrary bytes, and pass those bytes through unvalidated.
func EncodeBytes(input []byte, flavor Flavor) (out []byte, borrowed bool) {
	p := scan.IndexAny(input, flavor.encodeClass())
	if p < 0 {
		return input, true
	}

	buf := make([]byte, p, encodeCapacity(input, p, flavor))
	copy(buf, input[:p])

	for i := p; i < len(input); {
		c := input[i]
		switch {
		case flavor == MUTF8 && c == 0x00:
			buf = append(buf, 0xc0, 0x80)
			i++
		case c < 0x80:
			buf = append(buf, c)
			i++
		case c < 0xe0:
			buf = append(buf, input[i], input[i+1])
			i += 2
		case c < 0xf0:
			buf = append(buf, input[i], input[i+1], input[i+2])
			i += 3
		default:
			cp := decodeUTF8Scalar4(input[i : i+4])
			hi, lo := toSurrogatePair(cp)
			buf = appendSurrogate(buf, hi)
			buf = appendSurrogate(buf, lo)
			i += 4
		}
	}

	return buf, false
}

// NeedsEncoding reports whether input contains any byte that would force
// EncodeBytes onto its allocating path, without doing the transcoding
// itself.
func NeedsEncoding(input []byte, flavor Flavor) bool {
	return scan.IndexAny(input, flavor.encodeClass()) >= 0
}

// encodeCapacity is an upper bound on the final output length, computed
// once so the transcode loop above never triggers a second allocation.
//
// For CESU-8 the only source of growth is a 4-byte UTF-8 sequence becoming
// a 6-byte surrogate pair: 2 extra bytes per 4 consumed, i.e. growth bounded
// by ceil(remaining/2), matching spec.md §4.2 exactly.
//
// For MUTF-8 a literal NUL also grows, from 1 byte to 2 (the overlong pair
// 0xC0 0x80): that is a full extra byte per single byte consumed, twice the
// growth rate the 4-byte case produces. Using the CESU-8 formula here would
// under-allocate for a long run of NUL bytes and force a second allocation,
// breaking the "at most one allocation" contract, so MUTF-8 uses the looser
// remaining-bytes bound instead.
func encodeCapacity(input []byte, p int, flavor Flavor) int {
	remaining := len(input) - p
	if flavor == MUTF8 {
		return len(input) + remaining
	}
	return len(input) + (remaining+1)/2
}

// decodeUTF8Scalar4 extracts the 21-bit code point packed into a 4-byte
// UTF-8 sequence (lead byte 0xf0-0xf4).
func decodeUTF8Scalar4(b []byte) uint32 {
	return uint32(b[0]&0x07)<<18 | uint32(b[1]&0x3f)<<12 | uint32(b[2]&0x3f)<<6 | uint32(b[3]&0x3f)
}

// toSurrogatePair converts an astral code point (U+10000-U+10FFFF) to its
// UTF-16 surrogate pair, mirroring the original implementation's
// to_surrogate_pair in internal.rs.
func toSurrogatePair(cp uint32) (hi, lo uint16) {
	cp -= 0x10000
	hi = uint16(cp>>10) | 0xd800
	lo = uint16(cp&0x3ff) | 0xdc00
	return hi, lo
}

// appendSurrogate appends the 3-byte CESU-8/MUTF-8 encoding of a single
// UTF-16 code unit s (always in the surrogate range), mirroring
// encode_surrogate in internal.rs.
func appendSurrogate(buf []byte, s uint16) []byte {
	return append(buf,
		0xe0|byte(s>>12),
		0x80|byte((s>>6)&0x3f),
		0x80|byte(s&0x3f),
	)
}
