// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package backend describes the rendering backend variant the sample shell is
// built for, and the GL context attributes that variant needs.
//
// The variant is chosen once, at build time, from three mutually exclusive
// choices:
//
//	go build ./...               // OpenGL 3.3 core (default)
//	go build -tags gles2 ./...   // OpenGL ES 2.0
//	go build -tags gles3 ./...   // OpenGL ES 3.0
//
// [Current] holds the selected variant. There is no runtime switch.
//
// # Context Attributes
//
// The context provider reads a [ContextDesc] before it creates the window,
// because pixel format and context version must be requested up front:
//
//	desc := backend.ContextDesc{SampleCount: 0}
//	backend.PrepareAttributes(&desc, backend.Current)
package backend
