// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gfx

import "github.com/gogpu/gputypes"

// Desc configures a graphics device at setup.
type Desc struct {
	// DepthFormat is the depth buffer format of the default pass.
	// TextureFormatUndefined disables the depth buffer.
	DepthFormat gputypes.TextureFormat
}

// HasDepth reports whether the descriptor requests a depth buffer.
func (d Desc) HasDepth() bool {
	return d.DepthFormat != gputypes.TextureFormatUndefined
}
