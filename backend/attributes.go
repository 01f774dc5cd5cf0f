// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

// Profile is the GL context profile requested from the context provider.
type Profile uint8

const (
	// ProfileCore requests a desktop core profile context.
	ProfileCore Profile = iota
	// ProfileES requests an OpenGL ES context.
	ProfileES
)

// ContextDesc collects the attributes negotiated with the context provider
// before window creation.
type ContextDesc struct {
	// SampleCount is the MSAA sample count. 0 and 1 both mean no multisampling.
	SampleCount int

	// Backend is the variant the attributes were prepared for.
	Backend Backend

	// Major and Minor are the requested context version.
	Major, Minor int

	// Profile is the requested context profile.
	Profile Profile

	// ForwardCompatible drops deprecated functionality (desktop GL only).
	ForwardCompatible bool

	// DoubleBuffer requests a double-buffered drawable.
	DoubleBuffer bool

	// DepthSize and StencilSize are the requested bit depths of the
	// default framebuffer's depth and stencil buffers.
	DepthSize, StencilSize int
}

// Multisampled reports whether the descriptor asks for an MSAA drawable.
func (d ContextDesc) Multisampled() bool {
	return d.SampleCount > 1
}

// PrepareAttributes fills the version and profile fields of desc for b.
// SampleCount is left untouched. The default framebuffer is requested
// without depth or stencil bits, since the device renders without a
// depth buffer.
func PrepareAttributes(desc *ContextDesc, b Backend) {
	desc.Backend = b
	desc.DoubleBuffer = true
	desc.DepthSize = 0
	desc.StencilSize = 0

	switch b {
	case GLES2:
		desc.Major, desc.Minor = 2, 0
		desc.Profile = ProfileES
		desc.ForwardCompatible = false
	case GLES3:
		desc.Major, desc.Minor = 3, 0
		desc.Profile = ProfileES
		desc.ForwardCompatible = false
	default:
		desc.Major, desc.Minor = 3, 3
		desc.Profile = ProfileCore
		desc.ForwardCompatible = true
	}
}
