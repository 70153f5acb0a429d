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

import "buf.build/go/cesu8/internal/bytesconv"

// Bytes is the result of [Encode]: CESU-8 bytes that are either a view
// directly onto the input string's backing array (see [Bytes.Borrowed]) or
// a freshly allocated buffer.
type Bytes struct {
	data     []byte
	borrowed bool
}

// Bytes returns the encoded CESU-8 byte slice. The caller must not mutate
// it: when Borrowed reports true, it may be backed by the same memory as
// the string that was encoded.
func (b Bytes) Bytes() []byte { return b.data }

// String reinterprets the encoded bytes as a string without copying them.
func (b Bytes) String() string { return bytesconv.BytesToString(b.data) }

// Borrowed reports whether Bytes shares memory with the input that was
// encoded, meaning Encode performed no allocation at all.
func (b Bytes) Borrowed() bool { return b.borrowed }

// Text is the result of decoding: a UTF-8 string that is either a view
// directly onto the input CESU-8 bytes (see [Text.Borrowed]) or a freshly
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
