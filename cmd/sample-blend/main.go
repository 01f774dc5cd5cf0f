// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command sample-blend draws translucent circles that orbit and overlap,
// showing source-over blending of the drawing layer.
//
// Usage:
//
//	sample-blend [-no-vsync] [-v]
package main

import (
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"golang.org/x/image/colornames"

	"github.com/gogpu/ggsample"
	"github.com/gogpu/ggsample/desktop"
)

// circleAlpha is the opacity of every circle.
const circleAlpha = 0.5

var circleColors = []gg.RGBA{
	gg.FromColor(colornames.Red),
	gg.FromColor(colornames.Lime),
	gg.FromColor(colornames.Blue),
}

func main() {
	cfg := ggsample.Config{
		Title: "Blend (gg sample)",
		Draw: func(app *ggsample.App) {
			draw(app.Canvas(), app.Width(), app.Height(), app.Frame())
		},
		Args: os.Args,
	}
	os.Exit(desktop.Main(cfg, desktop.WithLogger(desktop.ArgsLogger(os.Stderr, os.Args))))
}

func draw(dc *recording.Recorder, w, h int, frame uint64) {
	if dc == nil || w <= 0 || h <= 0 {
		return
	}
	cx, cy := float64(w)/2, float64(h)/2
	unit := math.Min(float64(w), float64(h))

	// An opaque backdrop so the blend is visible over the clear colour.
	dc.SetColor(gg.FromColor(colornames.Whitesmoke))
	dc.FillRectangle(cx-unit*0.45, cy-unit*0.45, unit*0.9, unit*0.9)

	for i, c := range circleColors {
		x, y := orbit(cx, cy, unit*0.12, frame, i, len(circleColors))
		dc.SetColor(translucent(c, circleAlpha))
		dc.DrawCircle(x, y, unit*0.25)
		dc.Fill()
	}
}

// orbit returns the centre of circle i of n, evenly spaced on a circle of
// radius r that turns one degree per frame.
func orbit(cx, cy, r float64, frame uint64, i, n int) (float64, float64) {
	a := float64(frame%360)*math.Pi/180 + float64(i)*2*math.Pi/float64(n)
	return cx + r*math.Cos(a), cy + r*math.Sin(a)
}

func translucent(c gg.RGBA, alpha float64) gg.RGBA {
	c.A = alpha
	return c
}
