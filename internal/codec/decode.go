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

import (
	"unicode/utf8"

	"buf.build/go/cesu8/internal/scan"
	"buf.build/go/cesu8/internal/validate"
)

// replacementChar is the UTF-8 encoding of U+FFFD, emitted by lossy decoding
// in place of each malformed sequence.
var replacementChar = [3]byte{0xef, 0xbf, 0xbd}

// DecodeBytes transcodes flavor-encoded input into UTF-8 (spec.md §4.3). In
// strict mode (lossy == false) the first malformed sequence aborts decoding
// and err carries its kind and byte offset. In lossy mode decoding never
// fails: every malformed sequence is replaced with U+FFFD.
//
// It allocates at most once. When the input is valid UTF-8 and contains no
// byte of the flavor's decode scan class (0xED; for MUTF-8 also 0xC0 and
// NUL), the input is returned unmodified with borrowed set to true. Any
// such byte, even the 0xED lead of an ordinary U+D000-U+D7FF scalar, sends
// decoding down the allocating path.
func DecodeBytes(input []byte, flavor Flavor, lossy bool) (out []byte, borrowed bool, err *DecodeError) {
	return decodeBytes(input, flavor, lossy, false)
}

// DecodeLossyStrictBytes is DecodeBytes(input, flavor, true) with one extra
// rule: a raw 4-byte UTF-8 lead byte is itself treated as a violation
// (replaced with U+FFFD) rather than accepted verbatim. Well-formed
// CESU-8/MUTF-8 never contains a 4-byte sequence - any 4-byte scalar is
// always the product of decoding a surrogate pair, never raw input - so a
// caller who wants decoding to double as a conformance check for "is this
// actually CESU-8/MUTF-8, not merely valid UTF-8" uses this instead of
// DecodeBytes(..., true). It never fails; see DESIGN.md for why this
// exists alongside plain lossy decoding.
func DecodeLossyStrictBytes(input []byte, flavor Flavor) (out []byte, borrowed bool) {
	out, borrowed, _ = decodeBytes(input, flavor, true, true)
	return out, borrowed
}

// DecodeStrictBytes is DecodeBytes(input, flavor, false) with the same
// conformance rule DecodeLossyStrictBytes adds: a raw 4-byte UTF-8 lead byte
// is a violation rather than passed through. Where DecodeBytes treats
// already-valid UTF-8 as a successful borrow regardless of whether it is
// valid CESU-8/MUTF-8, DecodeStrictBytes rejects it, carrying the violation
// in err the same way strict DecodeBytes does. Grounded on
// original_source's decode_strict (lib.rs, mutf8.rs).
func DecodeStrictBytes(input []byte, flavor Flavor) (out []byte, borrowed bool, err *DecodeError) {
	return decodeBytes(input, flavor, false, true)
}

func decodeBytes(input []byte, flavor Flavor, lossy, rejectFourByte bool) (out []byte, borrowed bool, err *DecodeError) {
	p := scan.IndexAny(input, flavor.decodeClass())
	if rejectFourByte {
		if q := scan.IndexAny(input, flavor.encodeClass()); q >= 0 && (p < 0 || q < p) {
			p = q
		}
	}

	if p < 0 {
		if ok, _ := validate.UTF8(input); ok {
			return input, true, nil
		}
		if !lossy {
			_, offset := validate.UTF8(input)
			return nil, false, newErr(ErrInvalidUTF8, offset)
		}
		p = 0
	}

	buf := make([]byte, 0, decodeCapacity(input, lossy))

	start := 0
	if p > 0 {
		if ok, _ := validate.UTF8(input[:p]); ok {
			buf = append(buf, input[:p]...)
			start = p
		}
	}

	return decodeWalk(input, buf, start, flavor, lossy, rejectFourByte)
}

// decodeCapacity is an upper bound on the final output length.
//
// Strict decoding never grows the input: every CESU-8/MUTF-8 construct
// (surrogate pair, overlong NUL) decodes to fewer or equal bytes than it
// consumed, so input.len() is a safe bound, matching spec.md §4.3.
//
// Lossy decoding can grow the input: a single malformed byte is replaced by
// the 3-byte U+FFFD encoding. The worst case is every byte being its own
// violation, so the safe bound is input.len() * 3, the same worst case the
// original Rust decoder budgets for.
func decodeCapacity(input []byte, lossy bool) int {
	if lossy {
		return len(input) * 3
	}
	return len(input)
}

// decodeWalk processes input[start:], having already copied input[:start]
// verbatim into buf, and returns the final decode result.
func decodeWalk(input, buf []byte, start int, flavor Flavor, lossy, rejectFourByte bool) ([]byte, bool, *DecodeError) {
	i := start
	for i < len(input) {
		b0 := input[i]

		switch {
		case flavor == MUTF8 && b0 == 0x00:
			// A literal NUL is never valid MUTF-8: NUL must be encoded as
			// the overlong pair 0xC0 0x80.
			if !lossy {
				return nil, false, newErr(ErrInvalidNullEncoding, i)
			}
			buf = append(buf, replacementChar[:]...)
			i++

		case flavor == MUTF8 && b0 == 0xc0:
			if i+1 >= len(input) {
				if !lossy {
					return nil, false, newErr(ErrUnexpectedEnd, i)
				}
				buf = append(buf, replacementChar[:]...)
				i++
				continue
			}
			if input[i+1] == 0x80 {
				buf = append(buf, 0x00)
				i += 2
				continue
			}
			if !lossy {
				return nil, false, newErr(ErrInvalidNullEncoding, i)
			}
			buf = append(buf, replacementChar[:]...)
			i++

		case b0 == 0xed:
			next, consumed, err := decodeED(input, buf, i, lossy)
			if err != nil {
				return nil, false, err
			}
			buf = next
			i += consumed

		default:
			r, size := utf8.DecodeRune(input[i:])
			malformed := r == utf8.RuneError && size <= 1
			fourByteRejected := !malformed && rejectFourByte && size == 4
			if malformed || fourByteRejected {
				if !lossy {
					return nil, false, newErr(ErrInvalidUTF8, i)
				}
				buf = append(buf, replacementChar[:]...)
				if fourByteRejected {
					i += size
				} else {
					i++
				}
				continue
			}
			buf = append(buf, input[i:i+size]...)
			i += size
		}
	}

	return buf, false, nil
}

// decodeED handles a 3-byte sequence beginning with 0xED: either an
// ordinary scalar in U+D000-U+D7FF, a CESU-8 surrogate pair, or a malformed
// sequence. i is the offset of the 0xED byte. It returns the updated
// buffer and how many input bytes were consumed.
func decodeED(input, buf []byte, i int, lossy bool) ([]byte, int, *DecodeError) {
	if i+1 >= len(input) {
		if !lossy {
			return nil, 0, newErr(ErrUnexpectedEnd, i)
		}
		return append(buf, replacementChar[:]...), 1, nil
	}
	b1 := input[i+1]

	switch {
	case b1 >= 0x80 && b1 <= 0x9f:
		// Ordinary 3-byte scalar, U+D000-U+D7FF: not a surrogate.
		if i+2 >= len(input) {
			if !lossy {
				return nil, 0, newErr(ErrUnexpectedEnd, i)
			}
			return append(buf, replacementChar[:]...), 1, nil
		}
		b2 := input[i+2]
		if !isContinuation(b2) {
			if !lossy {
				return nil, 0, newErr(ErrInvalidUTF8, i)
			}
			return append(buf, replacementChar[:]...), 1, nil
		}
		return append(buf, input[i], input[i+1], input[i+2]), 3, nil

	case (b1 >= 0xa0 && b1 <= 0xaf) || (b1 >= 0xb0 && b1 <= 0xbf):
		if i+2 >= len(input) {
			if !lossy {
				return nil, 0, newErr(ErrUnexpectedEnd, i)
			}
			return append(buf, replacementChar[:]...), 1, nil
		}
		if !isContinuation(input[i+2]) {
			if !lossy {
				return nil, 0, newErr(ErrInvalidUTF8, i)
			}
			return append(buf, replacementChar[:]...), 1, nil
		}
		isHigh := b1 <= 0xaf
		if !isHigh {
			// A low surrogate with no preceding high surrogate.
			if !lossy {
				return nil, 0, newErr(ErrInvalidSurrogatePair, i)
			}
			return append(buf, replacementChar[:]...), 3, nil
		}

		hi := decodeSurrogateHalf(b1, input[i+2])
		if i+6 > len(input) {
			if !lossy {
				return nil, 0, newErr(ErrInvalidSurrogatePair, i)
			}
			return append(buf, replacementChar[:]...), 3, nil
		}
		b3, b4, b5 := input[i+3], input[i+4], input[i+5]
		if b3 != 0xed || b4 < 0xb0 || b4 > 0xbf || !isContinuation(b5) {
			if !lossy {
				return nil, 0, newErr(ErrInvalidSurrogatePair, i)
			}
			return append(buf, replacementChar[:]...), 3, nil
		}
		lo := decodeSurrogateHalf(b4, b5)
		cp := 0x10000 + (uint32(hi-0xd800)<<10 | uint32(lo-0xdc00))
		return appendUTF8Scalar4(buf, cp), 6, nil

	default:
		if !lossy {
			return nil, 0, newErr(ErrInvalidUTF8, i)
		}
		return append(buf, replacementChar[:]...), 1, nil
	}
}

func isContinuation(b byte) bool {
	return b >= 0x80 && b <= 0xbf
}

// decodeSurrogateHalf reconstructs one UTF-16 code unit from the second and
// third bytes of its 3-byte CESU-8 encoding (the first byte is always
// 0xED and contributes no bits), mirroring decode_surrogate in internal.rs.
func decodeSurrogateHalf(b1, b2 byte) uint16 {
	return 0xd000 | uint16(b1&0x3f)<<6 | uint16(b2&0x3f)
}

// appendUTF8Scalar4 appends the 4-byte UTF-8 encoding of an astral code
// point reconstructed from a surrogate pair.
func appendUTF8Scalar4(buf []byte, cp uint32) []byte {
	return append(buf,
		0xf0|byte(cp>>18),
		0x80|byte((cp>>12)&0x3f),
		0x80|byte((cp>>6)&0x3f),
		0x80|byte(cp&0x3f),
	)
}
