// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gfx defines the value types shared by graphics device
// implementations: device setup descriptors and render pass actions.
//
// The types mirror the attachment model of gputypes (load operations and
// clear values per attachment) but add a "don't care" action, which GL-family
// devices use to skip clearing a buffer whose contents will not be read.
//
// A typical default pass clears colour and ignores depth and stencil:
//
//	action := gfx.DefaultPassAction(gputypes.Color{R: 0.05, G: 0.05, B: 0.05, A: 1})
//	dev.BeginDefaultPass(action, width, height)
//
// The GL implementation lives in [github.com/gogpu/ggsample/gfx/opengl].
package gfx
