// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggsample is a minimal application shell for gg sample programs.
//
// # Overview
//
// The shell creates a window and an OpenGL-family context, sets up a
// graphics device and an immediate-mode drawing layer, then runs a fixed
// render loop that calls user callbacks once per frame. Samples use it so
// they do not repeat windowing and context boilerplate.
//
// # Quick Start
//
//	import (
//	    "os"
//
//	    "github.com/gogpu/ggsample"
//	    "github.com/gogpu/ggsample/desktop"
//	)
//
//	func main() {
//	    os.Exit(desktop.Main(ggsample.Config{
//	        Draw: func(app *ggsample.App) {
//	            dc := app.Canvas()
//	            dc.SetRGB(1, 0, 0)
//	            dc.DrawRectangle(10, 10, 100, 50)
//	            dc.Fill()
//	        },
//	        Args: os.Args,
//	    }))
//	}
//
// # Lifecycle
//
// Run executes three phases:
//   - Startup: platform, window, context, swap interval, GL entry points,
//     device, drawing layer, then Config.Init. The first failure aborts.
//   - Loop: until the platform reports a quit request, each frame refreshes
//     the drawable size, drains events, records Config.Draw into a batch,
//     clears the default pass, flushes the batch, commits and swaps.
//   - Shutdown: Config.Terminate (only if Init succeeded), then every
//     acquired subsystem in reverse acquisition order.
//
// Every failure prints one diagnostic line and yields exit code 1. Nothing
// is retried.
//
// # Command Line
//
// The shell reads a single flag, "-no-vsync", anywhere after the program
// name. It sets the swap interval to 0 instead of 1. Other arguments are
// left to the callbacks through App.Args.
//
// # Subsystems
//
// The shell only sees the Platform, Context, Device and DrawingLayer
// interfaces. The desktop package binds them to SDL2, go-gl and gg's
// recording system. Tests bind them to fakes.
package ggsample
