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

// Package xlog is the package-scoped logger for the transcoding kernel.
//
// Like any library, this module does not log anything by default: Logger
// returns a no-op [zap.Logger] until SetLogger is called. This package is
// internal and neither public package re-exports SetLogger, so only code
// inside this module can install a logger. This mirrors the linker
// package's logger in wippyai's wasm runtime.
package xlog

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	loggerOnce sync.Once
)

// Logger returns the package's logger instance. It defaults to a no-op
// logger, so importing this module never produces output on its own.
func Logger() *zap.Logger {
	loggerOnce.Do(func() {
		if logger == nil {
			logger = zap.NewNop()
		}
	})
	return logger
}

// SetLogger installs l as the package logger. Call this before transcoding
// if diagnostic events are wanted. The only events are Debug-level [Trace]
// lines for each public Encode call and each failed strict decode, and they
// are emitted only in builds with the debug tag.
func SetLogger(l *zap.Logger) {
	logger = l
}
