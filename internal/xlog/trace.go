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

//go:build debug

package xlog

import (
	"github.com/timandy/routine"
	"go.uber.org/zap"
)

// Enabled is true when the module is built with the debug tag.
const Enabled = true

// Trace emits a Debug-level log line tagged with the calling goroutine's id,
// the way the teacher's internal/debug.Log tags every line with "g%04d".
func Trace(operation string, fields ...zap.Field) {
	Logger().Debug(operation, append([]zap.Field{zap.Int64("goid", routine.Goid())}, fields...)...)
}
