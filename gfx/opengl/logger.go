// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package opengl

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/ggsample/internal/logging"
)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(logging.NewNop())
}

// SetLogger configures the logger used by the device.
// By default the device produces no log output. Pass nil to restore that.
//
// Log levels used:
//   - [slog.LevelInfo]: API loaded (GL version, renderer)
//   - [slog.LevelDebug]: setup and shutdown of GL objects
//   - [slog.LevelWarn]: GL errors drained at commit
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = logging.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current device logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
