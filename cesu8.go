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

package cesu8

import (
	"buf.build/go/cesu8/internal/bytesconv"
	"buf.build/go/cesu8/internal/codec"
	"buf.build/go/cesu8/internal/xlog"
	"go.uber.org/zap"
)

// Encode transcodes a UTF-8 string into CESU-8.
//
// If s contains no code point outside the Basic Multilingual Plane, the
// result borrows s's own bytes and no allocation occurs.
func Encode(s string) Bytes {
	input := bytesconv.StringToBytes(s)
	data, borrowed := codec.EncodeBytes(input, codec.CESU8)
	xlog.Trace("cesu8.Encode", zap.Int("input_len", len(s)), zap.Bool("borrowed", borrowed))
	return Bytes{data: data, borrowed: borrowed}
}

// NeedsEncoding reports whether s contains any code point outside the
// Basic Multilingual Plane, i.e. whether [Encode] would need to allocate.
// Callers that only want to skip unnecessary work can check this instead
// of inspecting [Bytes.Borrowed] after the fact.
func NeedsEncoding(s string) bool {
	return codec.NeedsEncoding(bytesconv.StringToBytes(s), codec.CESU8)
}

// Decode transcodes CESU-8 bytes into a UTF-8 [Text].
//
// It fails if b is not well-formed CESU-8: a lone or mismatched surrogate
// half, or a sequence that is not valid UTF-8 once surrogate handling is
// accounted for. Use [DecodeLossy] for input that should never be
// rejected.
//
// If b is valid UTF-8 and contains no 0xED byte, the result borrows b
// directly and no allocation occurs.
func Decode(b []byte) (Text, error) {
	data, borrowed, err := codec.DecodeBytes(b, codec.CESU8, false)
	if err != nil {
		xlog.Trace("cesu8.Decode failed", zap.Int("offset", err.Offset))
		return Text{}, err
	}
	return Text{data: data, borrowed: borrowed}, nil
}

// DecodeLossy transcodes CESU-8 bytes into a UTF-8 [Text], replacing every
// malformed sequence with U+FFFD instead of failing.
func DecodeLossy(b []byte) Text {
	data, borrowed, _ := codec.DecodeBytes(b, codec.CESU8, true)
	return Text{data: data, borrowed: borrowed}
}

// DecodeStrict is [Decode] with one additional rule: a raw 4-byte UTF-8
// sequence in b - something well-formed CESU-8 can never contain, since
// code points above the Basic Multilingual Plane only ever appear as
// surrogate pairs - is itself treated as a violation instead of being
// accepted as a successful borrow. Where [Decode] treats any input that is
// already valid UTF-8 as a successful result regardless of
// whether it is valid CESU-8, DecodeStrict additionally requires that it be
// valid CESU-8. Use this when b's CESU-8-ness needs to be enforced rather
// than merely tolerated.
func DecodeStrict(b []byte) (Text, error) {
	data, borrowed, err := codec.DecodeStrictBytes(b, codec.CESU8)
	if err != nil {
		xlog.Trace("cesu8.DecodeStrict failed", zap.Int("offset", err.Offset))
		return Text{}, err
	}
	return Text{data: data, borrowed: borrowed}, nil
}

// DecodeLossyStrict is [DecodeLossy] with one additional rule: a raw
// 4-byte UTF-8 sequence in b - something well-formed CESU-8 can never
// contain, since code points above the Basic Multilingual Plane only ever
// appear as surrogate pairs - is itself treated as a violation instead of
// being passed through. Use this when b's CESU-8-ness needs to be
// enforced rather than merely tolerated.
func DecodeLossyStrict(b []byte) Text {
	data, borrowed := codec.DecodeLossyStrictBytes(b, codec.CESU8)
	return Text{data: data, borrowed: borrowed}
}
