// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package batch

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/ggsample/internal/logging"
)

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(logging.NewNop())
}

// SetLogger configures the logger used by the drawing layer.
// By default the layer produces no log output. Pass nil to restore that.
//
// Log levels used:
//   - [slog.LevelDebug]: setup and shutdown
//   - [slog.LevelWarn]: batches dropped for exceeding limits, playback errors
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = logging.NewNop()
	}
	loggerPtr.Store(l)
}

// Logger returns the current drawing layer logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
