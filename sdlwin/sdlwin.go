// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sdlwin provides the platform window and GL context for the sample
// shell, on top of SDL2.
//
// Every function must be called from the main OS thread. The desktop
// package locks it.
package sdlwin

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/gogpu/ggsample/backend"
)

// Common errors returned by sdlwin operations.
var (
	// ErrNoWindow is returned when a context is requested for a window that
	// was not created by this package.
	ErrNoWindow = errors.New("sdlwin: no SDL window")

	// ErrAttribute is returned when a GL attribute is rejected before
	// window creation.
	ErrAttribute = errors.New("sdlwin: GL attribute rejected")
)

// Platform is the SDL video subsystem.
type Platform struct {
	peek []sdl.Event
}

// New returns an uninitialised platform.
func New() *Platform {
	return &Platform{peek: make([]sdl.Event, 1)}
}

// Init initialises the SDL video subsystem.
func (p *Platform) Init() error {
	return sdl.Init(sdl.INIT_VIDEO)
}

// CreateWindow applies desc's GL attributes and creates a centred,
// resizable, OpenGL-capable window.
func (p *Platform) CreateWindow(title string, width, height int, desc backend.ContextDesc) (*Window, error) {
	if err := applyAttributes(desc); err != nil {
		return nil, err
	}
	w, err := sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		int32(width), int32(height),
		uint32(sdl.WINDOW_OPENGL|sdl.WINDOW_RESIZABLE))
	if err != nil {
		return nil, err
	}
	return &Window{w: w}, nil
}

// CreateContext creates a GL context for win and makes it current.
func (p *Platform) CreateContext(win *Window, desc backend.ContextDesc) (*Context, error) {
	if win == nil || win.w == nil {
		return nil, ErrNoWindow
	}
	ctx, err := win.w.GLCreateContext()
	if err != nil {
		return nil, err
	}
	if err := win.w.GLMakeCurrent(ctx); err != nil {
		sdl.GLDeleteContext(ctx)
		return nil, err
	}
	return &Context{win: win.w, ctx: ctx}, nil
}

// PollEvents drains the event queue. Events are discarded.
func (p *Platform) PollEvents() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
	}
}

// QuitRequested reports whether a quit event is pending, without
// removing it from the queue.
func (p *Platform) QuitRequested() bool {
	sdl.PumpEvents()
	n, err := sdl.PeepEvents(p.peek, sdl.PEEKEVENT, sdl.QUIT, sdl.QUIT)
	return err == nil && n > 0
}

// Ticks returns milliseconds since Init.
func (p *Platform) Ticks() uint32 {
	return sdl.GetTicks()
}

// Quit shuts down SDL.
func (p *Platform) Quit() {
	sdl.Quit()
}

// ProcAddress resolves a GL entry point of the current context.
func ProcAddress(name string) unsafe.Pointer {
	return sdl.GLGetProcAddress(name)
}

// Window is an SDL window.
type Window struct {
	w *sdl.Window
}

// Destroy destroys the window.
func (w *Window) Destroy() {
	if w.w == nil {
		return
	}
	_ = w.w.Destroy()
	w.w = nil
}

// Context is a GL context bound to a window.
type Context struct {
	win *sdl.Window
	ctx sdl.GLContext
}

// SetSwapInterval sets the number of refreshes to wait per swap.
func (c *Context) SetSwapInterval(interval int) error {
	return sdl.GLSetSwapInterval(interval)
}

// DrawableSize returns the drawable size in pixels, which differs from
// the window size on high-DPI displays.
func (c *Context) DrawableSize() (width, height int) {
	w, h := c.win.GLGetDrawableSize()
	return int(w), int(h)
}

// Swap presents the back buffer.
func (c *Context) Swap() error {
	if c.win == nil {
		return ErrNoWindow
	}
	c.win.GLSwap()
	return nil
}

// Destroy deletes the GL context.
func (c *Context) Destroy() {
	if c.ctx == nil {
		return
	}
	sdl.GLDeleteContext(c.ctx)
	c.ctx = nil
	c.win = nil
}

func applyAttributes(desc backend.ContextDesc) error {
	profile := sdl.GL_CONTEXT_PROFILE_CORE
	if desc.Profile == backend.ProfileES {
		profile = sdl.GL_CONTEXT_PROFILE_ES
	}
	flags := 0
	if desc.ForwardCompatible {
		flags |= sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG
	}
	doubleBuffer := 0
	if desc.DoubleBuffer {
		doubleBuffer = 1
	}
	msBuffers, msSamples := 0, 0
	if desc.Multisampled() {
		msBuffers, msSamples = 1, desc.SampleCount
	}

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_PROFILE_MASK, int(profile)},
		{sdl.GL_CONTEXT_MAJOR_VERSION, desc.Major},
		{sdl.GL_CONTEXT_MINOR_VERSION, desc.Minor},
		{sdl.GL_CONTEXT_FLAGS, flags},
		{sdl.GL_DOUBLEBUFFER, doubleBuffer},
		{sdl.GL_DEPTH_SIZE, desc.DepthSize},
		{sdl.GL_STENCIL_SIZE, desc.StencilSize},
		{sdl.GL_MULTISAMPLEBUFFERS, msBuffers},
		{sdl.GL_MULTISAMPLESAMPLES, msSamples},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return fmt.Errorf("%w: %d=%d: %v", ErrAttribute, a.attr, a.value, err)
		}
	}
	return nil
}
