// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsample

import (
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/ggsample/batch"
	"github.com/gogpu/ggsample/internal/logging"
)

// loggerPtr stores the active logger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(logging.NewNop())
}

// SetLogger configures the logger for the shell and the drawing layer.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: startup and shutdown steps, drawable size changes
//   - [slog.LevelInfo]: selected backend
//   - [slog.LevelWarn]: swap interval rejected, batches dropped
//
// The graphics device keeps its own logger; desktop.WithLogger sets both.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = logging.NewNop()
	}
	loggerPtr.Store(l)
	batch.SetLogger(l)
}

// Logger returns the current shell logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
