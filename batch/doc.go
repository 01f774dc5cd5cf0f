// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package batch is an immediate-mode 2D drawing layer built on gg's
// recording system.
//
// Each frame is one batch. Begin hands out a fresh recording.Recorder sized
// to the drawable; drawing calls on it are retained as commands. Flush plays
// the commands back through gg's raster backend and hands the resulting
// image to a Target, typically a graphics device inside an open pass:
//
//	gg.Recorder (draw) -> Recording -> raster playback -> *image.RGBA -> Target
//
// # Limits
//
// A layer is set up with fixed capacity limits, in the spirit of a GPU
// vertex and command buffer. A batch that exceeds either limit is dropped
// whole at Flush, and Err reports why until the next Begin:
//
//	layer := batch.New(device)
//	if err := layer.Setup(batch.DefaultDesc()); err != nil { ... }
//
//	rec := layer.Begin(w, h)
//	rec.SetRGB(1, 0, 0)
//	rec.DrawRectangle(10, 10, 100, 50)
//	rec.Fill()
//	layer.Flush()
//	layer.End()
//
// # Thread Safety
//
// Layer is NOT safe for concurrent use.
package batch
