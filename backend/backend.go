// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package backend

// Backend identifies a GL-family rendering API variant.
type Backend uint8

const (
	// GLCore33 is desktop OpenGL 3.3, core profile, forward compatible.
	GLCore33 Backend = iota
	// GLES2 is OpenGL ES 2.0.
	GLES2
	// GLES3 is OpenGL ES 3.0.
	GLES3
)

// Build tag names, in Backend order.
const (
	TagGLCore33 = "glcore33"
	TagGLES2    = "gles2"
	TagGLES3    = "gles3"
)

var backendTags = [...]string{
	GLCore33: TagGLCore33,
	GLES2:    TagGLES2,
	GLES3:    TagGLES3,
}

var backendAPINames = [...]string{
	GLCore33: "OpenGL 3.3",
	GLES2:    "OpenGL ES 2.0",
	GLES3:    "OpenGL ES 3.0",
}

// String returns the build tag that selects b.
func (b Backend) String() string {
	if int(b) < len(backendTags) {
		return backendTags[b]
	}
	return "unknown"
}

// APIName returns the human-readable API name used in diagnostics.
func (b Backend) APIName() string {
	if int(b) < len(backendAPINames) {
		return backendAPINames[b]
	}
	return "unknown API"
}

// HasVertexArrays reports whether vertex array objects are part of the API.
// GLES2 only has them through an extension, so the device never uses them there.
func (b Backend) HasVertexArrays() bool {
	return b != GLES2
}
