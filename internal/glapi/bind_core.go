// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !gles2 && !gles3

package glapi

import "github.com/go-gl/gl/v3.3-core/gl"

// Init loads the entry points of the current context. A nil lookup uses
// the binding's own loader.
func Init(lookup ProcAddrFunc) error {
	if lookup == nil {
		return gl.Init()
	}
	return gl.InitWithProcAddrFunc(lookup)
}

// String helpers.
var (
	Str   = gl.Str
	Strs  = gl.Strs
	GoStr = gl.GoStr
	Ptr   = gl.Ptr
)

// State.
var (
	ClearColor   = gl.ClearColor
	Clear        = gl.Clear
	ClearStencil = gl.ClearStencil
	Viewport     = gl.Viewport
	Enable       = gl.Enable
	Disable      = gl.Disable
	BlendFunc    = gl.BlendFunc
	GetError     = gl.GetError
	GetString    = gl.GetString
	PixelStorei  = gl.PixelStorei
)

// Textures.
var (
	GenTextures    = gl.GenTextures
	BindTexture    = gl.BindTexture
	ActiveTexture  = gl.ActiveTexture
	TexParameteri  = gl.TexParameteri
	TexImage2D     = gl.TexImage2D
	TexSubImage2D  = gl.TexSubImage2D
	DeleteTextures = gl.DeleteTextures
)

// Shaders and programs.
var (
	CreateShader       = gl.CreateShader
	ShaderSource       = gl.ShaderSource
	CompileShader      = gl.CompileShader
	GetShaderiv        = gl.GetShaderiv
	GetShaderInfoLog   = gl.GetShaderInfoLog
	DeleteShader       = gl.DeleteShader
	CreateProgram      = gl.CreateProgram
	AttachShader       = gl.AttachShader
	BindAttribLocation = gl.BindAttribLocation
	LinkProgram        = gl.LinkProgram
	GetProgramiv       = gl.GetProgramiv
	GetProgramInfoLog  = gl.GetProgramInfoLog
	DeleteProgram      = gl.DeleteProgram
	UseProgram         = gl.UseProgram
	GetUniformLocation = gl.GetUniformLocation
	Uniform1i          = gl.Uniform1i
)

// Buffers, vertex arrays and draws.
var (
	GenBuffers                    = gl.GenBuffers
	BindBuffer                    = gl.BindBuffer
	BufferData                    = gl.BufferData
	DeleteBuffers                 = gl.DeleteBuffers
	GenVertexArrays               = gl.GenVertexArrays
	BindVertexArray               = gl.BindVertexArray
	DeleteVertexArrays            = gl.DeleteVertexArrays
	EnableVertexAttribArray       = gl.EnableVertexAttribArray
	VertexAttribPointerWithOffset = gl.VertexAttribPointerWithOffset
	DrawArrays                    = gl.DrawArrays
	BindFramebuffer               = gl.BindFramebuffer
)
