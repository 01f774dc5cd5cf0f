// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package desktop

import (
	"io"
	"log/slog"

	"github.com/gogpu/ggsample"
)

// VerboseFlag enables debug logging in samples.
const VerboseFlag = "-v"

// ArgsLogger returns a text logger on w. It logs at Debug when args carry
// VerboseFlag, else at Warn.
func ArgsLogger(w io.Writer, args []string) *slog.Logger {
	level := slog.LevelWarn
	if ggsample.HasFlag(args, VerboseFlag) {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
