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

package cesu8_test

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"buf.build/go/cesu8"
)

func TestEncodeBorrowsASCII(t *testing.T) {
	t.Parallel()

	b := cesu8.Encode("hello, world")
	assert.True(t, b.Borrowed())
	assert.Equal(t, "hello, world", b.String())
}

func TestEncodeAllocatesForAstral(t *testing.T) {
	t.Parallel()

	b := cesu8.Encode("\U0001F600")
	assert.False(t, b.Borrowed())
	assert.NotEmpty(t, b.Bytes())
}

func TestNeedsEncoding(t *testing.T) {
	t.Parallel()

	assert.False(t, cesu8.NeedsEncoding("hello, 世界"))
	assert.True(t, cesu8.NeedsEncoding("\U0001F600"))
}

func TestDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"hello", "世界", "\U0001F600\U0010FFFF"} {
		encoded := cesu8.Encode(s)
		text, err := cesu8.Decode(encoded.Bytes())
		assert.Nil(t, err)
		assert.Equal(t, s, text.String())
	}
}

func TestDecodeRejectsLoneSurrogate(t *testing.T) {
	t.Parallel()

	_, err := cesu8.Decode([]byte{0xed, 0xa0, 0x81})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, cesu8.ErrInvalidSurrogatePair))

	var decodeErr *cesu8.DecodeError
	assert.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, 0, decodeErr.Offset)
}

func TestDecodeStrictRejectsRawFourByteSequence(t *testing.T) {
	t.Parallel()

	raw := []byte("x\U0001F600y")
	_, err := cesu8.DecodeStrict(raw)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, cesu8.ErrInvalidUTF8))
}

func TestDecodeStrictAcceptsWellFormedCESU8(t *testing.T) {
	t.Parallel()

	s := "hello, \U0001F600"
	encoded := cesu8.Encode(s)
	text, err := cesu8.DecodeStrict(encoded.Bytes())
	assert.Nil(t, err)
	assert.Equal(t, s, text.String())
}

func TestDecodeLossyNeverFails(t *testing.T) {
	t.Parallel()

	text := cesu8.DecodeLossy([]byte{0xed, 0xa0, 0x81, 'x'})
	assert.True(t, utf8.ValidString(text.String()))
}

func TestDecodeLossyStrictRejectsRawFourByteSequence(t *testing.T) {
	t.Parallel()

	raw := []byte("x\U0001F600y")
	text := cesu8.DecodeLossyStrict(raw)
	assert.NotEqual(t, string(raw), text.String())
	assert.True(t, utf8.ValidString(text.String()))
}
