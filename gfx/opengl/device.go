// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package opengl

import (
	"errors"
	"fmt"
	"image"
	"strings"
	"unsafe"

	"github.com/gogpu/ggsample/backend"
	"github.com/gogpu/ggsample/gfx"
	"github.com/gogpu/ggsample/internal/glapi"
)

// Common errors returned by Device operations.
var (
	// ErrLoadAPI is returned when GL entry points cannot be resolved.
	ErrLoadAPI = errors.New("opengl: failed to load GL entry points")

	// ErrNotLoaded is returned by Setup when LoadAPI has not succeeded.
	ErrNotLoaded = errors.New("opengl: GL entry points not loaded")

	// ErrShaderCompile is returned when the quad shaders fail to compile.
	ErrShaderCompile = errors.New("opengl: shader compilation failed")

	// ErrProgramLink is returned when the quad program fails to link.
	ErrProgramLink = errors.New("opengl: program link failed")
)

// maxDrainedErrors bounds the glGetError loop at commit. A lost context
// can report errors forever.
const maxDrainedErrors = 16

// Device is a graphics device over the GL context current on the calling
// thread. It records nothing: every call is issued to GL immediately.
//
// Device is NOT safe for concurrent use, and must be used from the thread
// that owns the GL context.
type Device struct {
	backend backend.Backend
	desc    gfx.Desc
	lookup  glapi.ProcAddrFunc

	loaded bool
	valid  bool
	inPass bool

	program uint32
	texLoc  int32
	vbo     uint32
	vao     uint32
	tex     uint32
	texW    int
	texH    int
}

// New creates a device for the backend this binary was built for.
// getProcAddress resolves entry points of the current context, such as
// sdl.GLGetProcAddress. It is required on GLES; on desktop GL nil falls back
// to the binding's own loader.
// The device is unusable until LoadAPI and Setup succeed.
func New(getProcAddress func(name string) unsafe.Pointer) *Device {
	return &Device{backend: backend.Current, lookup: getProcAddress}
}

// LoadAPI resolves GL entry points for the current context. It fails with
// ErrLoadAPI naming the first entry point the device needs and the driver
// lacks.
func (d *Device) LoadAPI() error {
	if err := glapi.Init(d.lookup); err != nil {
		return fmt.Errorf("%w: %v", ErrLoadAPI, err)
	}
	d.loaded = true

	Logger().Info("opengl: API loaded",
		"backend", d.backend.String(),
		"version", glString(glapi.Version),
		"renderer", glString(glapi.Renderer),
		"vendor", glString(glapi.Vendor))
	return nil
}

// Setup creates the GL objects the device draws with.
func (d *Device) Setup(desc gfx.Desc) error {
	if !d.loaded {
		return ErrNotLoaded
	}
	d.desc = desc

	program, err := linkQuadProgram(d.backend)
	if err != nil {
		return err
	}
	d.program = program
	d.texLoc = glapi.GetUniformLocation(program, glapi.Str("u_tex\x00"))

	glapi.GenBuffers(1, &d.vbo)
	glapi.BindBuffer(glapi.ArrayBuffer, d.vbo)
	glapi.BufferData(glapi.ArrayBuffer, len(quadVertices)*4, glapi.Ptr(quadVertices), glapi.StaticDraw)

	if d.backend.HasVertexArrays() {
		glapi.GenVertexArrays(1, &d.vao)
		glapi.BindVertexArray(d.vao)
		glapi.EnableVertexAttribArray(0)
		glapi.VertexAttribPointerWithOffset(0, 2, glapi.Float, false, 2*4, 0)
		glapi.BindVertexArray(0)
	}
	glapi.BindBuffer(glapi.ArrayBuffer, 0)

	glapi.GenTextures(1, &d.tex)
	glapi.BindTexture(glapi.Texture2D, d.tex)
	glapi.TexParameteri(glapi.Texture2D, glapi.TextureMinFilter, glapi.Nearest)
	glapi.TexParameteri(glapi.Texture2D, glapi.TextureMagFilter, glapi.Nearest)
	glapi.TexParameteri(glapi.Texture2D, glapi.TextureWrapS, glapi.ClampToEdge)
	glapi.TexParameteri(glapi.Texture2D, glapi.TextureWrapT, glapi.ClampToEdge)
	glapi.BindTexture(glapi.Texture2D, 0)
	d.texW, d.texH = 0, 0

	if !desc.HasDepth() {
		glapi.Disable(glapi.DepthTest)
	}
	glapi.Disable(glapi.CullFace)
	glapi.Disable(glapi.ScissorTest)

	d.valid = true
	Logger().Debug("opengl: device setup",
		"program", d.program, "vbo", d.vbo, "vao", d.vao, "texture", d.tex,
		"depth", desc.HasDepth())
	return nil
}

// Valid reports whether Setup succeeded and Shutdown has not been called.
func (d *Device) Valid() bool {
	return d.valid
}

// BeginDefaultPass starts a pass on the window's default framebuffer.
func (d *Device) BeginDefaultPass(action gfx.PassAction, width, height int) {
	if !d.valid {
		return
	}
	d.inPass = true

	glapi.BindFramebuffer(glapi.Framebuffer, 0)
	glapi.Viewport(0, 0, int32(width), int32(height))

	mask := action.ClearMask()
	var bits uint32
	if mask.Has(gfx.ClearColor) {
		c := action.ClearValue()
		glapi.ClearColor(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
		bits |= glapi.ColorBufferBit
	}
	if mask.Has(gfx.ClearDepth) && d.desc.HasDepth() {
		bits |= glapi.DepthBufferBit
	}
	if mask.Has(gfx.ClearStencil) {
		glapi.ClearStencil(int32(action.Stencil.Value))
		bits |= glapi.StencilBufferBit
	}
	if bits != 0 {
		glapi.Clear(bits)
	}
}

// DrawImage composites img over the current pass, stretched to the
// viewport. img holds premultiplied RGBA, as image.RGBA does.
func (d *Device) DrawImage(img *image.RGBA) {
	if !d.inPass || img == nil {
		return
	}
	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w <= 0 || h <= 0 {
		return
	}
	pix := tightPixels(img)

	glapi.ActiveTexture(glapi.Texture0)
	glapi.BindTexture(glapi.Texture2D, d.tex)
	glapi.PixelStorei(glapi.UnpackAlignment, 4)
	if w != d.texW || h != d.texH {
		glapi.TexImage2D(glapi.Texture2D, 0, glapi.RGBA, int32(w), int32(h), 0,
			glapi.RGBA, glapi.UnsignedByte, glapi.Ptr(pix))
		d.texW, d.texH = w, h
	} else {
		glapi.TexSubImage2D(glapi.Texture2D, 0, 0, 0, int32(w), int32(h),
			glapi.RGBA, glapi.UnsignedByte, glapi.Ptr(pix))
	}

	glapi.Enable(glapi.Blend)
	glapi.BlendFunc(glapi.One, glapi.OneMinusSrcAlpha)

	glapi.UseProgram(d.program)
	glapi.Uniform1i(d.texLoc, 0)
	if d.backend.HasVertexArrays() {
		glapi.BindVertexArray(d.vao)
	} else {
		glapi.BindBuffer(glapi.ArrayBuffer, d.vbo)
		glapi.EnableVertexAttribArray(0)
		glapi.VertexAttribPointerWithOffset(0, 2, glapi.Float, false, 2*4, 0)
	}
	glapi.DrawArrays(glapi.TriangleStrip, 0, 4)

	if d.backend.HasVertexArrays() {
		glapi.BindVertexArray(0)
	} else {
		glapi.BindBuffer(glapi.ArrayBuffer, 0)
	}
	glapi.Disable(glapi.Blend)
	glapi.BindTexture(glapi.Texture2D, 0)
}

// EndPass ends the current pass.
func (d *Device) EndPass() {
	if !d.inPass {
		return
	}
	glapi.UseProgram(0)
	d.inPass = false
}

// Commit finishes the frame. GL errors raised during the frame are drained
// and logged; they never abort the frame.
func (d *Device) Commit() {
	if !d.valid {
		return
	}
	for i := 0; i < maxDrainedErrors; i++ {
		code := glapi.GetError()
		if code == glapi.NoError {
			return
		}
		Logger().Warn("opengl: GL error", "code", code, "error", glapi.ErrorString(code))
	}
}

// Shutdown deletes every GL object the device created.
func (d *Device) Shutdown() {
	if !d.valid {
		return
	}
	if d.tex != 0 {
		glapi.DeleteTextures(1, &d.tex)
		d.tex = 0
	}
	if d.vao != 0 {
		glapi.DeleteVertexArrays(1, &d.vao)
		d.vao = 0
	}
	if d.vbo != 0 {
		glapi.DeleteBuffers(1, &d.vbo)
		d.vbo = 0
	}
	if d.program != 0 {
		glapi.DeleteProgram(d.program)
		d.program = 0
	}
	d.texW, d.texH = 0, 0
	d.valid = false
	d.inPass = false
	Logger().Debug("opengl: device shutdown")
}

// tightPixels returns img's pixels with stride 4*width, copying only when
// img is a sub-image.
func tightPixels(img *image.RGBA) []uint8 {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	row := 4 * w
	if img.Stride == row {
		start := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y)
		return img.Pix[start : start+row*h]
	}
	out := make([]uint8, row*h)
	for y := 0; y < h; y++ {
		src := img.PixOffset(img.Rect.Min.X, img.Rect.Min.Y+y)
		copy(out[y*row:(y+1)*row], img.Pix[src:src+row])
	}
	return out
}

func glString(name uint32) string {
	p := glapi.GetString(name)
	if p == nil {
		return ""
	}
	return glapi.GoStr(p)
}

func linkQuadProgram(b backend.Backend) (uint32, error) {
	vsrc, fsrc := shaderSources(b)

	vs, err := compileShader(vsrc, glapi.VertexShader)
	if err != nil {
		return 0, err
	}
	defer glapi.DeleteShader(vs)

	fs, err := compileShader(fsrc, glapi.FragmentShader)
	if err != nil {
		return 0, err
	}
	defer glapi.DeleteShader(fs)

	program := glapi.CreateProgram()
	glapi.AttachShader(program, vs)
	glapi.AttachShader(program, fs)
	glapi.BindAttribLocation(program, 0, glapi.Str("a_pos\x00"))
	glapi.LinkProgram(program)

	var status int32
	glapi.GetProgramiv(program, glapi.LinkStatus, &status)
	if status == 0 {
		var logLength int32
		glapi.GetProgramiv(program, glapi.InfoLogLength, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		glapi.GetProgramInfoLog(program, logLength, nil, glapi.Str(infoLog))
		glapi.DeleteProgram(program)
		return 0, fmt.Errorf("%w: %s", ErrProgramLink, strings.TrimRight(infoLog, "\x00"))
	}
	return program, nil
}

func compileShader(source string, kind uint32) (uint32, error) {
	shader := glapi.CreateShader(kind)

	csources, free := glapi.Strs(source + "\x00")
	glapi.ShaderSource(shader, 1, csources, nil)
	free()
	glapi.CompileShader(shader)

	var status int32
	glapi.GetShaderiv(shader, glapi.CompileStatus, &status)
	if status == 0 {
		var logLength int32
		glapi.GetShaderiv(shader, glapi.InfoLogLength, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		glapi.GetShaderInfoLog(shader, logLength, nil, glapi.Str(infoLog))
		glapi.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s", ErrShaderCompile, strings.TrimRight(infoLog, "\x00"))
	}
	return shader, nil
}
