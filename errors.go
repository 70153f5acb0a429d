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

import "buf.build/go/cesu8/internal/codec"

// DecodeError is returned by [Decode] when input is not well-formed
// CESU-8. It always carries the byte offset of the first violation.
type DecodeError = codec.DecodeError

// Sentinel errors identifying why decoding failed. Use [errors.Is] against
// a returned [*DecodeError] to test for one of these.
var (
	// ErrInvalidSurrogatePair is returned for a lone, mismatched, or
	// malformed CESU-8 surrogate pair.
	ErrInvalidSurrogatePair = codec.Sentinel(codec.ErrInvalidSurrogatePair)
	// ErrInvalidUTF8 is returned when a non-surrogate sequence is not
	// valid UTF-8.
	ErrInvalidUTF8 = codec.Sentinel(codec.ErrInvalidUTF8)
	// ErrUnexpectedEnd is returned when input ends before a 3-byte
	// sequence beginning with 0xED is complete. Any other truncated
	// multi-byte sequence is reported as ErrInvalidUTF8.
	ErrUnexpectedEnd = codec.Sentinel(codec.ErrUnexpectedEnd)
)
