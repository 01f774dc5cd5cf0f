// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsample

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/ggsample/backend"
	"github.com/gogpu/ggsample/gfx"
)

// clearColor is the background of every frame.
var clearColor = gputypes.Color{R: 0.05, G: 0.05, B: 0.05, A: 1.0}

// Run runs the application until the platform reports a quit request.
// It prints a diagnostic line to Config.Stderr on failure and returns the
// process exit code: 0 on a normal quit, 1 on any failure.
func Run(cfg Config, drv Driver) int {
	cfg = cfg.withDefaults()
	if err := RunE(cfg, drv); err != nil {
		fmt.Fprintln(cfg.Stderr, err)
		return 1
	}
	return 0
}

// RunE is like Run but returns the failure instead of printing it.
// A non-nil result is an *Error.
//
// Every subsystem acquired before a failure is released in reverse order
// before RunE returns.
func RunE(cfg Config, drv Driver) error {
	if err := drv.validate(); err != nil {
		return err
	}
	s := &shell{
		cfg: cfg.withDefaults(),
		drv: drv,
	}
	s.app = newApp(s.cfg)

	if err := s.startup(); err != nil {
		Logger().Debug("ggsample: startup failed", "error", err)
		s.release()
		return err
	}
	err := s.loop()
	s.release()
	return err
}

// shell sequences one run.
type shell struct {
	cfg Config
	drv Driver
	app *App
	ctx Context

	cleanup []cleanupStep
}

type cleanupStep struct {
	name string
	fn   func()
}

// acquired registers fn to run at shutdown. Steps run in reverse order of
// registration.
func (s *shell) acquired(name string, fn func()) {
	s.cleanup = append(s.cleanup, cleanupStep{name: name, fn: fn})
}

func (s *shell) release() {
	for i := len(s.cleanup) - 1; i >= 0; i-- {
		step := s.cleanup[i]
		Logger().Debug("ggsample: release", "step", step.name)
		step.fn()
	}
	s.cleanup = nil
}

func (s *shell) startup() error {
	log := Logger()
	p := s.drv.Platform

	log.Debug("ggsample: platform init")
	if err := p.Init(); err != nil {
		return newError(ErrWindow, err, "Failed to initialize platform: %v", err)
	}
	s.acquired("platform", p.Quit)

	desc := backend.ContextDesc{SampleCount: 0}
	backend.PrepareAttributes(&desc, backend.Current)
	log.Info("ggsample: backend selected",
		"backend", desc.Backend.String(),
		"api", desc.Backend.APIName(),
		"version", fmt.Sprintf("%d.%d", desc.Major, desc.Minor))

	log.Debug("ggsample: create window",
		"title", s.cfg.Title, "width", s.cfg.Width, "height", s.cfg.Height)
	win, err := p.CreateWindow(s.cfg.Title, s.cfg.Width, s.cfg.Height, desc)
	if err != nil {
		return newError(ErrWindow, err, "Failed to create SDL window: %v", err)
	}
	s.acquired("window", win.Destroy)

	log.Debug("ggsample: create context")
	ctx, err := p.CreateContext(win, desc)
	if err != nil {
		return newError(ErrContext, err, "Failed to create GL context: %v", err)
	}
	s.ctx = ctx
	s.acquired("context", ctx.Destroy)

	interval := swapInterval(s.cfg.Args)
	if err := ctx.SetSwapInterval(interval); err != nil {
		log.Warn("ggsample: swap interval rejected", "interval", interval, "error", err)
	}

	dev := s.drv.Device
	log.Debug("ggsample: load graphics API")
	if err := dev.LoadAPI(); err != nil {
		return newError(ErrAPILoad, err, "%s unsupported: %v", desc.Backend.APIName(), err)
	}

	log.Debug("ggsample: device setup")
	if err := dev.Setup(gfx.Desc{DepthFormat: gputypes.TextureFormatUndefined}); err != nil {
		return newError(ErrDevice, err, "Failed to create graphics device: context invalid")
	}
	s.acquired("device", dev.Shutdown)
	if !dev.Valid() {
		return newError(ErrDevice, nil, "Failed to create graphics device: context invalid")
	}

	layer := s.drv.Layer
	limits := s.drv.limits()
	log.Debug("ggsample: drawing layer setup",
		"max_vertices", limits.MaxVertices, "max_commands", limits.MaxCommands)
	if err := layer.Setup(limits); err != nil {
		return newError(ErrDrawingLayer, err, "Failed to create drawing layer: %v", err)
	}
	s.acquired("drawing layer", layer.Shutdown)

	if s.cfg.Init != nil {
		log.Debug("ggsample: app init")
		if err := s.cfg.Init(s.app); err != nil {
			return newError(ErrInit, err, "Failed to initialize app: %v", err)
		}
	}
	if s.cfg.Terminate != nil {
		s.acquired("app", func() { s.cfg.Terminate(s.app) })
	}
	return nil
}

func (s *shell) loop() error {
	p := s.drv.Platform
	dev := s.drv.Device
	layer := s.drv.Layer
	action := gfx.DefaultPassAction(clearColor)
	fps := newFPSCounter(p.Ticks())

	for !p.QuitRequested() {
		s.refreshSize()
		p.PollEvents()

		w, h := s.app.width, s.app.height
		s.app.canvas = layer.Begin(w, h)
		if s.cfg.Draw != nil {
			s.cfg.Draw(s.app)
		}
		s.app.canvas = nil

		dev.BeginDefaultPass(action, w, h)
		layer.Flush()
		dev.EndPass()
		layer.End()
		dev.Commit()
		s.app.frame++

		if err := s.ctx.Swap(); err != nil {
			return newError(ErrSwap, err, "Failed to swap window buffers: %v", err)
		}

		if n, ok := fps.tick(p.Ticks()); ok {
			fmt.Fprintf(s.cfg.Stdout, "FPS: %d\n", n)
		}
	}
	Logger().Debug("ggsample: quit requested", "frames", s.app.frame)
	return nil
}

func (s *shell) refreshSize() {
	w, h := s.ctx.DrawableSize()
	if w == s.app.width && h == s.app.height {
		return
	}
	Logger().Debug("ggsample: drawable resized",
		"width", w, "height", h, "frame", s.app.frame)
	s.app.width, s.app.height = w, h
}
