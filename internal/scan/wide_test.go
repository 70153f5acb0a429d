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

//go:build wide_simd

package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWideIndexAnyAgreesWithWordTier(t *testing.T) {
	t.Parallel()

	for n := 0; n < 80; n++ {
		for pos := -1; pos < n; pos++ {
			input := make([]byte, n)
			for i := range input {
				input[i] = 0x41
			}
			if pos >= 0 {
				input[pos] = 0xed
			}
			assert.Equal(t, wordIndexAny(input, EDLead), wideIndexAny(input, EDLead), "n=%d pos=%d", n, pos)
		}
	}
}

func TestActiveDispatchesToWideTier(t *testing.T) {
	t.Parallel()

	assert.True(t, wideEnabled)
}
