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

// Package bytesconv provides the two zero-copy conversions the codec needs
// to honor its "no further allocation" contract on the borrowed path.
package bytesconv

import "unsafe"

// BytesToString reinterprets b as a string without copying it.
//
// The caller must not mutate b for as long as the returned string is alive:
// this is only safe to use on bytes that are never written to again, which
// is exactly the case for a borrowed transcoder result.
func BytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// StringToBytes reinterprets s as a []byte without copying it.
//
// The returned slice must never be written to; Go strings are immutable and
// the runtime assumes this invariant holds for the backing array too.
func StringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
