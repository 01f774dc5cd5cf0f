// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsample

import (
	"io"
	"os"

	"github.com/gogpu/gg/recording"
)

// Default window parameters.
const (
	DefaultWidth  = 512
	DefaultHeight = 512
	DefaultTitle  = "gg sample"
)

// Config describes a sample application. Run copies it before startup.
type Config struct {
	// Init sets up user resources once, after every subsystem is ready.
	// A non-nil error aborts startup. Nil succeeds.
	Init func(app *App) error

	// Terminate releases user resources. It is called exactly once at
	// shutdown, and only if Init succeeded.
	Terminate func(app *App)

	// Draw records the current frame through app.Canvas().
	Draw func(app *App)

	// Width and Height are the requested window size. Zero means 512.
	Width  int
	Height int

	// Title is the window title.
	Title string

	// Args is the process argv, program name first.
	Args []string

	// Stdout receives FPS lines and Stderr receives diagnostics.
	// They default to os.Stdout and os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

func (c Config) withDefaults() Config {
	if c.Width <= 0 {
		c.Width = DefaultWidth
	}
	if c.Height <= 0 {
		c.Height = DefaultHeight
	}
	if c.Title == "" {
		c.Title = DefaultTitle
	}
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}
	c.Args = append([]string(nil), c.Args...)
	return c
}

// App is the state of a running sample. Run creates one per call and
// passes it to every callback.
//
// App is NOT safe for concurrent use.
type App struct {
	cfg    Config
	width  int
	height int
	frame  uint64
	canvas *recording.Recorder
}

func newApp(cfg Config) *App {
	return &App{cfg: cfg, width: cfg.Width, height: cfg.Height}
}

// Config returns the configuration the app was started with.
func (a *App) Config() Config {
	return a.cfg
}

// Width returns the drawable width in pixels.
func (a *App) Width() int {
	return a.width
}

// Height returns the drawable height in pixels.
func (a *App) Height() int {
	return a.height
}

// Frame returns the number of frames completed so far.
func (a *App) Frame() uint64 {
	return a.frame
}

// Canvas returns the recorder for the frame being drawn. It is nil outside
// Config.Draw.
func (a *App) Canvas() *recording.Recorder {
	return a.canvas
}

// Args returns the process argv.
func (a *App) Args() []string {
	return a.cfg.Args
}
