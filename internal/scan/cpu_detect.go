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

//go:build wide_simd && std_integration

package scan

import "golang.org/x/sys/cpu"

// init runs before wide.go's init (file names sort "cpu_detect.go" before
// "wide.go"), so wideEnabled is settled before the dispatch table is built.
//
// This is a Go stand-in for the original's runtime CPU-feature detection:
// with std_integration off, tier selection is purely a compile-time
// decision (wide_simd present or absent); with it on, a real ISA check
// additionally gets a vote, the way a genuine AVX2/NEON dispatcher would
// refuse the wide path on a CPU that lacks it.
func init() {
	wideEnabled = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD
}
