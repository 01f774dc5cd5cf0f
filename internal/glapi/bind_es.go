// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build gles2 || gles3

package glapi

import (
	gl "github.com/go-gl/gl/v3.1/gles2"

	"github.com/gogpu/ggsample/backend"
)

// Init loads the entry points of the current context through lookup.
//
// The binding covers GLES 3.1 and rejects a driver missing any of its
// symbols, so a strict ES 2.0 or 3.0 driver would fail. Missing symbols are
// tolerated during the load, then only the ones the device calls are
// required.
func Init(lookup ProcAddrFunc) error {
	if lookup == nil {
		return ErrNoProcAddr
	}
	r := newResolver(lookup)
	if err := gl.InitWithProcAddrFunc(r.resolve); err != nil {
		return err
	}
	return r.check(RequiredProcs(backend.Current.HasVertexArrays()))
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
