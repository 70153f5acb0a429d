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

// Package codec is the shared transcoding engine behind the cesu8 and
// mutf8 packages. It implements spec.md §4.2-§4.3: the UTF-8 <-> CESU-8/
// MUTF-8 encode and decode pipelines, parameterized by Flavor so the two
// public packages are thin wrappers around one engine, the way the
// teacher's errParse/errCode pair is shared by every field-parsing file.
package codec

import "buf.build/go/cesu8/internal/scan"

// Flavor selects which of the two encodings the engine targets.
type Flavor int

const (
	// CESU8 is the Compatibility Encoding Scheme for UTF-16: 8-bit.
	CESU8 Flavor = iota
	// MUTF8 is Modified UTF-8: CESU8 plus an overlong encoding of NUL.
	MUTF8
)

func (f Flavor) String() string {
	if f == MUTF8 {
		return "mutf8"
	}
	return "cesu8"
}

// encodeClass returns the scan class that finds the first byte forcing the
// encoder onto the transcode path for this flavor.
func (f Flavor) encodeClass() scan.Class {
	if f == MUTF8 {
		return scan.FourByteLeadOrNUL
	}
	return scan.FourByteLead
}

// decodeClass returns the scan class that finds the first byte forcing the
// decoder onto the transcode path for this flavor.
func (f Flavor) decodeClass() scan.Class {
	if f == MUTF8 {
		return scan.EDOrC0OrNULLead
	}
	return scan.EDLead
}
