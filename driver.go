// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsample

import (
	"github.com/gogpu/gg/recording"

	"github.com/gogpu/ggsample/backend"
	"github.com/gogpu/ggsample/batch"
	"github.com/gogpu/ggsample/gfx"
)

// Platform creates windows and drains the OS event queue.
type Platform interface {
	Init() error
	CreateWindow(title string, width, height int, desc backend.ContextDesc) (Window, error)
	CreateContext(win Window, desc backend.ContextDesc) (Context, error)

	// PollEvents drains every pending event without inspecting it.
	PollEvents()

	// QuitRequested reports whether the user asked to close the application.
	QuitRequested() bool

	// Ticks returns a millisecond clock.
	Ticks() uint32

	Quit()
}

// Window is an OS window.
type Window interface {
	Destroy()
}

// Context is a rendering context bound to a window.
type Context interface {
	SetSwapInterval(interval int) error

	// DrawableSize returns the size of the drawable in pixels.
	DrawableSize() (width, height int)

	Swap() error
	Destroy()
}

// Device is the low-level graphics device.
type Device interface {
	LoadAPI() error
	Setup(desc gfx.Desc) error
	Valid() bool
	BeginDefaultPass(action gfx.PassAction, width, height int)
	EndPass()
	Commit()
	Shutdown()
}

// DrawingLayer is the immediate-mode 2D drawing layer.
type DrawingLayer interface {
	Setup(desc batch.Desc) error

	// Begin opens the frame's batch and returns the recorder that
	// Config.Draw records into.
	Begin(width, height int) *recording.Recorder

	Flush()
	End()
	Shutdown()
}

// Driver bundles the subsystems Run drives.
type Driver struct {
	Platform Platform
	Device   Device
	Layer    DrawingLayer

	// Limits overrides the drawing layer capacity when non-zero.
	Limits batch.Desc
}

func (d Driver) validate() error {
	switch {
	case d.Platform == nil:
		return newError(ErrDriver, nil, "Incomplete driver: no platform")
	case d.Device == nil:
		return newError(ErrDriver, nil, "Incomplete driver: no graphics device")
	case d.Layer == nil:
		return newError(ErrDriver, nil, "Incomplete driver: no drawing layer")
	}
	return nil
}

func (d Driver) limits() batch.Desc {
	if d.Limits == (batch.Desc{}) {
		return batch.DefaultDesc()
	}
	return d.Limits
}
