// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsample

// NoVSyncFlag disables vertical sync when present in argv.
const NoVSyncFlag = "-no-vsync"

// HasFlag reports whether flag appears in args after the program name.
// Arguments are matched verbatim, so "-no-vsync=true" does not match.
func HasFlag(args []string, flag string) bool {
	if len(args) < 2 {
		return false
	}
	for _, a := range args[1:] {
		if a == flag {
			return true
		}
	}
	return false
}

// swapInterval returns 0 when vsync is disabled on the command line, else 1.
func swapInterval(args []string) int {
	if HasFlag(args, NoVSyncFlag) {
		return 0
	}
	return 1
}
