// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package opengl implements a graphics device over an OpenGL, OpenGL ES 2.0
// or OpenGL ES 3.0 context, matching the variant selected by
// [github.com/gogpu/ggsample/backend.Current].
//
// The device does not create the context. The host makes a context current,
// then calls LoadAPI and Setup:
//
//	dev := opengl.New(sdl.GLGetProcAddress)
//	if err := dev.LoadAPI(); err != nil { ... }
//	if err := dev.Setup(gfx.Desc{DepthFormat: gputypes.TextureFormatUndefined}); err != nil { ... }
//	defer dev.Shutdown()
//
// Each frame is one default pass. DrawImage uploads a CPU-rendered image into
// a texture and composites it over the cleared framebuffer:
//
//	dev.BeginDefaultPass(action, w, h)
//	dev.DrawImage(img)
//	dev.EndPass()
//	dev.Commit()
package opengl
