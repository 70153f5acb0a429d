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

// Package mutf8 transcodes between UTF-8 and Modified UTF-8 (MUTF-8), the
// encoding used internally by the JVM's class file format and by
// Android's JNI string APIs.
//
// MUTF-8 is CESU-8 (see the parent cesu8 package) plus one more rule: the
// NUL byte is never encoded as a literal 0x00; it is always encoded as
// the overlong two-byte sequence 0xC0 0x80. This lets MUTF-8 strings be
// safely handled by C APIs that treat 0x00 as a terminator, since a real
// embedded NUL never appears as a raw byte.
package mutf8

import (
	"buf.build/go/cesu8/internal/bytesconv"
	"buf.build/go/cesu8/internal/codec"
	"buf.build/go/cesu8/internal/xlog"
	"go.uber.org/zap"
)

// Bytes is the result of [Encode]: MUTF-8 bytes that are either a view
// directly onto the input string's backing array (see [Bytes.Borrowed])
// or a freshly allocated buffer.
type Bytes struct {
	data     []byte
	borrowed bool
}

// Bytes returns the encoded MUTF-8 byte slice. The caller must not mutate
// it: when Borrowed reports true, it may be backed by the same memory as
// the string that was encoded.
func (b Bytes) Bytes() []byte { return b.data }

// String reinterprets the encoded bytes as a string without copying them.
func (b Bytes) String() string { return bytesconv.BytesToString(b.data) }

// Borrowed reports whether Bytes shares memory with the input that was
// encoded, meaning Encode performed no allocation at all.
func (b Bytes) Borrowed() bool { return b.borrowed }

// Text is the result of decoding: a UTF-8 string that is either a view
// directly onto the input MUTF-8 bytes (see [Text.Borrowed]) or a freshly
// allocated buffer.
type Text struct {
	data     []byte
	borrowed bool
}

// Bytes returns the decoded UTF-8 bytes. The caller must not mutate them:
// when Borrowed reports true, they are the same memory as the input that
// was decoded.
func (t Text) Bytes() []byte { return t.data }

// String reinterprets the decoded bytes as a string without copying them.
func (t Text) String() string { return bytesconv.BytesToString(t.data) }

// Borrowed reports whether Text shares memory with the input that was
// decoded, meaning decoding performed no allocation at all.
func (t Text) Borrowed() bool { return t.borrowed }

// DecodeError is returned by [Decode] when input is not well-formed
// MUTF-8. It always carries the byte offset of the first violation.
type DecodeError = codec.DecodeError

// Sentinel errors identifying why decoding failed. Use [errors.Is] against
// a returned [*DecodeError] to test for one of these.
var (
	// ErrInvalidSurrogatePair is returned for a lone, mismatched, or
	// malformed CESU-8 surrogate pair.
	ErrInvalidSurrogatePair = codec.Sentinel(codec.ErrInvalidSurrogatePair)
	// ErrInvalidNullEncoding is returned for a literal NUL byte, or a 0xC0
	// not followed by 0x80.
	ErrInvalidNullEncoding = codec.Sentinel(codec.ErrInvalidNullEncoding)
	// ErrInvalidUTF8 is returned when a non-surrogate sequence is not
	// valid UTF-8.
	ErrInvalidUTF8 = codec.Sentinel(codec.ErrInvalidUTF8)
	// ErrUnexpectedEnd is returned when input ends right after a 0xC0
	// byte or before a 3-byte sequence beginning with 0xED is complete.
	// Any other truncated multi-byte sequence is reported as
	// ErrInvalidUTF8.
	ErrUnexpectedEnd = codec.Sentinel(codec.ErrUnexpectedEnd)
)

// Encode transcodes a UTF-8 string into MUTF-8.
//
// If s contains no code point outside the Basic Multilingual Plane and no
// NUL byte, the result borrows s's own bytes and no allocation occurs.
func Encode(s string) Bytes {
	input := bytesconv.StringToBytes(s)
	data, borrowed := codec.EncodeBytes(input, codec.MUTF8)
	xlog.Trace("mutf8.Encode", zap.Int("input_len", len(s)), zap.Bool("borrowed", borrowed))
	return Bytes{data: data, borrowed: borrowed}
}

// NeedsEncoding reports whether s contains a code point outside the Basic
// Multilingual Plane or a NUL byte, i.e. whether [Encode] would need to
// allocate.
func NeedsEncoding(s string) bool {
	return codec.NeedsEncoding(bytesconv.StringToBytes(s), codec.MUTF8)
}

// Decode transcodes MUTF-8 bytes into a UTF-8 [Text].
//
// It fails if b is not well-formed MUTF-8: a lone or mismatched surrogate
// half, a literal NUL byte, a 0xC0 not followed by 0x80, or a sequence
// that is not valid UTF-8 once those rules are accounted for. Use
// [DecodeLossy] for input that should never be rejected.
//
// If b is valid UTF-8 and contains no 0xED byte and no NUL byte, the
// result borrows b directly and no allocation occurs.
func Decode(b []byte) (Text, error) {
	data, borrowed, err := codec.DecodeBytes(b, codec.MUTF8, false)
	if err != nil {
		xlog.Trace("mutf8.Decode failed", zap.Int("offset", err.Offset))
		return Text{}, err
	}
	return Text{data: data, borrowed: borrowed}, nil
}

// DecodeLossy transcodes MUTF-8 bytes into a UTF-8 [Text], replacing every
// malformed sequence with U+FFFD instead of failing.
func DecodeLossy(b []byte) Text {
	data, borrowed, _ := codec.DecodeBytes(b, codec.MUTF8, true)
	return Text{data: data, borrowed: borrowed}
}

// DecodeStrict is [Decode] with one additional rule: a raw 4-byte UTF-8
// sequence in b - something well-formed MUTF-8 can never contain, since
// code points above the Basic Multilingual Plane only ever appear as
// surrogate pairs - is itself treated as a violation instead of being
// accepted as a successful borrow. Where [Decode] treats any input that is
// already valid UTF-8 as a successful result regardless of
// whether it is valid MUTF-8, DecodeStrict additionally requires that it be
// valid MUTF-8 (which also means a literal NUL byte is rejected, the same
// as [Decode]). Use this when b's MUTF-8-ness needs to be enforced rather
// than merely tolerated.
func DecodeStrict(b []byte) (Text, error) {
	data, borrowed, err := codec.DecodeStrictBytes(b, codec.MUTF8)
	if err != nil {
		xlog.Trace("mutf8.DecodeStrict failed", zap.Int("offset", err.Offset))
		return Text{}, err
	}
	return Text{data: data, borrowed: borrowed}, nil
}

// DecodeLossyStrict is [DecodeLossy] with one additional rule: a raw
// 4-byte UTF-8 sequence in b - something well-formed MUTF-8 can never
// contain, since code points above the Basic Multilingual Plane only ever
// appear as surrogate pairs - is itself treated as a violation instead of
// being passed through. Use this when b's MUTF-8-ness needs to be
// enforced rather than merely tolerated.
func DecodeLossyStrict(b []byte) Text {
	data, borrowed := codec.DecodeLossyStrictBytes(b, codec.MUTF8)
	return Text{data: data, borrowed: borrowed}
}
