// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package desktop runs a ggsample application on SDL2 and OpenGL.
//
// Importing desktop locks the main goroutine to the main OS thread, as SDL
// and GL require. Main must be called from main.main.
package desktop

import (
	"log/slog"
	"runtime"

	"github.com/gogpu/ggsample"
	"github.com/gogpu/ggsample/backend"
	"github.com/gogpu/ggsample/batch"
	"github.com/gogpu/ggsample/gfx/opengl"
	"github.com/gogpu/ggsample/sdlwin"
)

func init() {
	runtime.LockOSThread()
}

// Option configures Main.
type Option func(*options)

type options struct {
	logger *slog.Logger
	limits batch.Desc
}

// WithLogger sets the logger for the shell, the drawing layer and the
// graphics device.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithLimits overrides the drawing layer capacity.
func WithLimits(desc batch.Desc) Option {
	return func(o *options) {
		o.limits = desc
	}
}

func newOptions(opts []Option) options {
	o := options{limits: batch.DefaultDesc()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Main runs cfg and returns the process exit code.
//
//	func main() {
//	    os.Exit(desktop.Main(cfg))
//	}
func Main(cfg ggsample.Config, opts ...Option) int {
	o := newOptions(opts)
	if o.logger != nil {
		ggsample.SetLogger(o.logger)
		opengl.SetLogger(o.logger)
	}

	dev := opengl.New(sdlwin.ProcAddress)
	return ggsample.Run(cfg, ggsample.Driver{
		Platform: &platform{p: sdlwin.New()},
		Device:   dev,
		Layer:    batch.New(dev),
		Limits:   o.limits,
	})
}

// platform adapts sdlwin to the shell's interfaces.
type platform struct {
	p *sdlwin.Platform
}

func (a *platform) Init() error         { return a.p.Init() }
func (a *platform) PollEvents()         { a.p.PollEvents() }
func (a *platform) QuitRequested() bool { return a.p.QuitRequested() }
func (a *platform) Ticks() uint32       { return a.p.Ticks() }
func (a *platform) Quit()               { a.p.Quit() }

func (a *platform) CreateWindow(title string, w, h int, desc backend.ContextDesc) (ggsample.Window, error) {
	win, err := a.p.CreateWindow(title, w, h, desc)
	if err != nil {
		return nil, err
	}
	return win, nil
}

func (a *platform) CreateContext(win ggsample.Window, desc backend.ContextDesc) (ggsample.Context, error) {
	sw, ok := win.(*sdlwin.Window)
	if !ok {
		return nil, sdlwin.ErrNoWindow
	}
	ctx, err := a.p.CreateContext(sw, desc)
	if err != nil {
		return nil, err
	}
	return ctx, nil
}
