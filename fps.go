// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsample

// fpsWindow is the reporting period in milliseconds.
const fpsWindow = 1000

// fpsCounter counts frames per reporting window.
type fpsCounter struct {
	last   uint32
	frames int
}

func newFPSCounter(now uint32) fpsCounter {
	return fpsCounter{last: now}
}

// tick counts one frame. When at least one window has elapsed since the
// last report it returns the count and starts a new window.
// Unsigned subtraction keeps it correct across clock wraparound.
func (c *fpsCounter) tick(now uint32) (int, bool) {
	c.frames++
	if now-c.last < fpsWindow {
		return 0, false
	}
	n := c.frames
	c.last = now
	c.frames = 0
	return n, true
}
