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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeBytesBorrowsPlainUTF8(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "hello", "hello, 世界"} {
		out, borrowed, err := DecodeBytes([]byte(s), CESU8, false)
		assert.Nil(t, err)
		assert.True(t, borrowed)
		assert.Equal(t, s, string(out))
	}
}

func TestDecodeBytesCESU8SurrogatePair(t *testing.T) {
	t.Parallel()

	input := []byte{0xed, 0xa0, 0x81, 0xed, 0xb0, 0x80}
	out, borrowed, err := DecodeBytes(input, CESU8, false)
	assert.Nil(t, err)
	assert.False(t, borrowed)
	assert.Equal(t, "\U00010400", string(out))
}

func TestDecodeBytesMUTF8OverlongNUL(t *testing.T) {
	t.Parallel()

	input := []byte{'a', 0xc0, 0x80, 'b'}
	out, borrowed, err := DecodeBytes(input, MUTF8, false)
	assert.Nil(t, err)
	assert.False(t, borrowed)
	assert.Equal(t, "a\x00b", string(out))
}

func TestDecodeBytesMUTF8RejectsLiteralNUL(t *testing.T) {
	t.Parallel()

	input := []byte{'a', 0x00, 'b'}
	_, _, err := DecodeBytes(input, MUTF8, false)
	if assert.NotNil(t, err) {
		assert.Equal(t, 1, err.Offset)
		assert.True(t, errors.Is(err, Sentinel(ErrInvalidNullEncoding)))
	}
}

func TestDecodeBytesCESU8AcceptsLiteralNUL(t *testing.T) {
	t.Parallel()

	input := []byte{'a', 0x00, 'b'}
	out, borrowed, err := DecodeBytes(input, CESU8, false)
	assert.Nil(t, err)
	assert.True(t, borrowed)
	assert.Equal(t, input, out)
}

func TestDecodeBytesLoneSurrogateStrictError(t *testing.T) {
	t.Parallel()

	input := []byte{'x', 0xed, 0xa0, 0x81, 'y'}
	_, _, err := DecodeBytes(input, CESU8, false)
	if assert.NotNil(t, err) {
		assert.Equal(t, 1, err.Offset)
		assert.True(t, errors.Is(err, Sentinel(ErrInvalidSurrogatePair)))
	}
}

func TestDecodeBytesLoneSurrogateLossyAdvancesThreeBytes(t *testing.T) {
	t.Parallel()

	input := []byte{'x', 0xed, 0xa0, 0x81, 'y'}
	out, borrowed, err := DecodeBytes(input, CESU8, true)
	assert.Nil(t, err)
	assert.False(t, borrowed)
	assert.Equal(t, "x�y", string(out))
}

func TestDecodeBytesInvalidUTF8StrictError(t *testing.T) {
	t.Parallel()

	input := []byte{'a', 0xff, 'b'}
	_, _, err := DecodeBytes(input, CESU8, false)
	if assert.NotNil(t, err) {
		assert.Equal(t, 1, err.Offset)
		assert.True(t, errors.Is(err, Sentinel(ErrInvalidUTF8)))
	}
}

func TestDecodeBytesInvalidUTF8Lossy(t *testing.T) {
	t.Parallel()

	input := []byte{'a', 0xff, 'b'}
	out, _, err := DecodeBytes(input, CESU8, true)
	assert.Nil(t, err)
	assert.Equal(t, "a�b", string(out))
}

func TestDecodeBytesUnexpectedEnd(t *testing.T) {
	t.Parallel()

	input := []byte{'a', 0xed, 0xa0}
	_, _, err := DecodeBytes(input, CESU8, false)
	if assert.NotNil(t, err) {
		assert.Equal(t, 1, err.Offset)
		assert.True(t, errors.Is(err, Sentinel(ErrUnexpectedEnd)))
	}
}

func TestDecodeStrictBytesRejectsRawFourByteSequence(t *testing.T) {
	t.Parallel()

	input := []byte("x" + "\U00010400" + "y")
	_, _, err := DecodeStrictBytes(input, CESU8)
	if assert.NotNil(t, err) {
		assert.Equal(t, 1, err.Offset)
		assert.True(t, errors.Is(err, Sentinel(ErrInvalidUTF8)))
	}
}

func TestDecodeStrictBytesAcceptsSurrogatePair(t *testing.T) {
	t.Parallel()

	input := []byte{0xed, 0xa0, 0x81, 0xed, 0xb0, 0x80}
	out, borrowed, err := DecodeStrictBytes(input, CESU8)
	assert.Nil(t, err)
	assert.False(t, borrowed)
	assert.Equal(t, "\U00010400", string(out))
}

func TestDecodeStrictBytesRejectsLiteralNULInMUTF8(t *testing.T) {
	t.Parallel()

	_, _, err := DecodeStrictBytes([]byte{0x00}, MUTF8)
	if assert.NotNil(t, err) {
		assert.Equal(t, 0, err.Offset)
		assert.True(t, errors.Is(err, Sentinel(ErrInvalidNullEncoding)))
	}
}

func TestDecodeStrictBytesBorrowsPlainUTF8(t *testing.T) {
	t.Parallel()

	input := []byte("hello, 世界")
	out, borrowed, err := DecodeStrictBytes(input, CESU8)
	assert.Nil(t, err)
	assert.True(t, borrowed)
	assert.Equal(t, input, out)
}

func TestDecodeLossyStrictBytesRejectsRawFourByteSequence(t *testing.T) {
	t.Parallel()

	input := []byte("x" + "\U00010400" + "y")
	out, borrowed := DecodeLossyStrictBytes(input, CESU8)
	assert.False(t, borrowed)
	assert.Equal(t, "x�y", string(out))
}

func TestDecodeLossyStrictBytesAcceptsSurrogatePair(t *testing.T) {
	t.Parallel()

	input := []byte{0xed, 0xa0, 0x81, 0xed, 0xb0, 0x80}
	out, _ := DecodeLossyStrictBytes(input, CESU8)
	assert.Equal(t, "\U00010400", string(out))
}
