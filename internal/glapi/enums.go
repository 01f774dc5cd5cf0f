// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glapi

// Enum values shared by desktop GL and GLES.
const (
	NoError = 0

	ColorBufferBit   = 0x00004000
	DepthBufferBit   = 0x00000100
	StencilBufferBit = 0x00000400

	Blend            = 0x0BE2
	DepthTest        = 0x0B71
	CullFace         = 0x0B44
	ScissorTest      = 0x0C11
	One              = 1
	OneMinusSrcAlpha = 0x0303

	Texture2D        = 0x0DE1
	Texture0         = 0x84C0
	TextureMinFilter = 0x2801
	TextureMagFilter = 0x2800
	TextureWrapS     = 0x2802
	TextureWrapT     = 0x2803
	Nearest          = 0x2600
	ClampToEdge      = 0x812F
	UnpackAlignment  = 0x0CF5

	RGBA         = 0x1908
	UnsignedByte = 0x1401
	Float        = 0x1406

	VertexShader   = 0x8B31
	FragmentShader = 0x8B30
	CompileStatus  = 0x8B81
	LinkStatus     = 0x8B82
	InfoLogLength  = 0x8B84

	ArrayBuffer   = 0x8892
	StaticDraw    = 0x88E4
	TriangleStrip = 0x0005
	Framebuffer   = 0x8D40

	Vendor   = 0x1F00
	Renderer = 0x1F01
	Version  = 0x1F02
)

// ErrorString names a glGetError code.
func ErrorString(code uint32) string {
	switch code {
	case NoError:
		return "GL_NO_ERROR"
	case 0x0500:
		return "GL_INVALID_ENUM"
	case 0x0501:
		return "GL_INVALID_VALUE"
	case 0x0502:
		return "GL_INVALID_OPERATION"
	case 0x0505:
		return "GL_OUT_OF_MEMORY"
	case 0x0506:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return "GL_UNKNOWN_ERROR"
}
