// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command sample-rectangle draws a rotating rectangle in the middle of the
// window.
//
// Usage:
//
//	sample-rectangle [-no-vsync] [-v]
package main

import (
	"math"
	"os"

	"github.com/gogpu/gg/recording"

	"github.com/gogpu/ggsample"
	"github.com/gogpu/ggsample/desktop"
)

// radiansPerFrame is the rotation speed.
const radiansPerFrame = math.Pi / 180

func main() {
	cfg := ggsample.Config{
		Title: "Rectangle (gg sample)",
		Draw: func(app *ggsample.App) {
			draw(app.Canvas(), app.Width(), app.Height(), app.Frame())
		},
		Args: os.Args,
	}
	os.Exit(desktop.Main(cfg, desktop.WithLogger(desktop.ArgsLogger(os.Stderr, os.Args))))
}

func draw(dc *recording.Recorder, w, h int, frame uint64) {
	if dc == nil {
		return
	}
	cx, cy := float64(w)/2, float64(h)/2
	size := math.Min(float64(w), float64(h)) / 2
	angle := float64(frame%360) * radiansPerFrame

	// The colour cycles every 120 frames.
	t := float64(frame%120) / 120
	dc.SetRGB(1-t, t, 0.5)

	corners := rotatedRect(cx, cy, size, size/2, angle)
	dc.MoveTo(corners[0][0], corners[0][1])
	for _, p := range corners[1:] {
		dc.LineTo(p[0], p[1])
	}
	dc.ClosePath()
	dc.Fill()
}

// rotatedRect returns the corners of a w x h rectangle centred on (cx, cy)
// and rotated by angle radians.
func rotatedRect(cx, cy, w, h, angle float64) [4][2]float64 {
	sin, cos := math.Sincos(angle)
	hw, hh := w/2, h/2
	local := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}

	var out [4][2]float64
	for i, p := range local {
		out[i][0] = cx + p[0]*cos - p[1]*sin
		out[i][1] = cy + p[0]*sin + p[1]*cos
	}
	return out
}
