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

// Package cesu8 transcodes between UTF-8 and CESU-8, the Compatibility
// Encoding Scheme for UTF-16: 8-bit.
//
// CESU-8 differs from UTF-8 only in how it represents code points outside
// the Basic Multilingual Plane (U+10000 and above): UTF-8 spends 4 bytes on
// them directly, while CESU-8 first splits the code point into a UTF-16
// surrogate pair and then encodes each surrogate as its own 3-byte
// sequence, 6 bytes total. Every other code point is identical in both
// encodings.
//
// # Allocation policy
//
// Both [Encode] and [Decode] return a value that may be backed directly by
// the input it was given - no copy, no allocation - whenever no byte of the
// input needs transcoding: for [Encode], when the input has no code point
// outside the Basic Multilingual Plane; for [Decode], when the input is
// valid UTF-8 with no 0xED byte. [Bytes.Borrowed] and
// [Text.Borrowed] report whether that happened. When transcoding is
// required, exactly one buffer is allocated, sized to a precomputed upper
// bound so the transcode pass never needs to grow it.
//
// # Strict and lossy decoding
//
// [Decode] rejects malformed input: a lone surrogate half, a mismatched
// surrogate pair, or a byte sequence that is not valid UTF-8 once
// surrogate handling is accounted for. It still accepts input that is
// already valid UTF-8 even if that input could never have come from a
// real CESU-8 encoder; [DecodeStrict] additionally rejects that case.
// [DecodeLossy] never fails: every malformed sequence is replaced with
// U+FFFD and decoding resumes after it. [DecodeLossyStrict] combines
// the two: the conformance check of [DecodeStrict] without ever
// failing.
//
// For MUTF-8 (CESU-8 plus an overlong encoding of the NUL byte, as used by
// the JVM and by Android's native interfaces), see the mutf8 subpackage.
package cesu8
