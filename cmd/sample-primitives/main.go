// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Command sample-primitives draws points, lines, a triangle strip and
// rectangles, one kind per quadrant of the window.
//
// Usage:
//
//	sample-primitives [-no-vsync] [-v]
package main

import (
	"image/color"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
	"golang.org/x/image/colornames"

	"github.com/gogpu/ggsample"
	"github.com/gogpu/ggsample/desktop"
)

// palette is cycled by every quadrant.
var palette = []color.RGBA{
	colornames.Tomato,
	colornames.Gold,
	colornames.Mediumseagreen,
	colornames.Deepskyblue,
	colornames.Mediumorchid,
	colornames.Hotpink,
}

func main() {
	cfg := ggsample.Config{
		Title: "Primitives (gg sample)",
		Draw: func(app *ggsample.App) {
			draw(app.Canvas(), app.Width(), app.Height(), app.Frame())
		},
		Args: os.Args,
	}
	os.Exit(desktop.Main(cfg, desktop.WithLogger(desktop.ArgsLogger(os.Stderr, os.Args))))
}

// quadrant is a sub-rectangle of the drawable.
type quadrant struct {
	x, y, w, h float64
}

func quadrants(w, h int) [4]quadrant {
	hw, hh := float64(w)/2, float64(h)/2
	return [4]quadrant{
		{0, 0, hw, hh},
		{hw, 0, hw, hh},
		{0, hh, hw, hh},
		{hw, hh, hw, hh},
	}
}

func draw(dc *recording.Recorder, w, h int, frame uint64) {
	if dc == nil || w <= 0 || h <= 0 {
		return
	}
	q := quadrants(w, h)
	drawPoints(dc, q[0])
	drawLines(dc, q[1], frame)
	drawTriangleStrip(dc, q[2])
	drawRects(dc, q[3])
}

func setColor(dc *recording.Recorder, i int) {
	dc.SetColor(gg.FromColor(palette[i%len(palette)]))
}

// drawPoints fills a grid of small dots.
func drawPoints(dc *recording.Recorder, q quadrant) {
	const step = 16
	i := 0
	for y := q.y + step/2; y < q.y+q.h; y += step {
		setColor(dc, i)
		for x := q.x + step/2; x < q.x+q.w; x += step {
			dc.DrawPoint(x, y, 2)
		}
		dc.Fill()
		i++
	}
}

// drawLines strokes a fan of lines that turns with the frame number.
func drawLines(dc *recording.Recorder, q quadrant, frame uint64) {
	const spokes = 24
	cx, cy := q.x+q.w/2, q.y+q.h/2
	r := math.Min(q.w, q.h) / 2 * 0.9
	offset := float64(frame%360) * math.Pi / 180

	dc.SetLineWidth(2)
	for i := range spokes {
		a := offset + float64(i)*2*math.Pi/spokes
		setColor(dc, i)
		dc.DrawLine(cx, cy, cx+r*math.Cos(a), cy+r*math.Sin(a))
		dc.Stroke()
	}
}

// drawTriangleStrip fills a zigzag strip, one triangle per path.
func drawTriangleStrip(dc *recording.Recorder, q quadrant) {
	const columns = 8
	pts := stripPoints(q, columns)
	for i := 0; i+2 < len(pts); i++ {
		setColor(dc, i)
		dc.MoveTo(pts[i][0], pts[i][1])
		dc.LineTo(pts[i+1][0], pts[i+1][1])
		dc.LineTo(pts[i+2][0], pts[i+2][1])
		dc.ClosePath()
		dc.Fill()
	}
}

// stripPoints returns strip vertices alternating between the top and bottom
// edge of a band through the middle of q.
func stripPoints(q quadrant, columns int) [][2]float64 {
	top := q.y + q.h*0.25
	bottom := q.y + q.h*0.75
	dx := q.w / float64(columns)

	pts := make([][2]float64, 0, 2*(columns+1))
	for i := 0; i <= columns; i++ {
		x := q.x + float64(i)*dx
		pts = append(pts, [2]float64{x, top}, [2]float64{x, bottom})
	}
	return pts
}

// drawRects fills nested rectangles with an outline.
func drawRects(dc *recording.Recorder, q quadrant) {
	const rings = 5
	inset := math.Min(q.w, q.h) / (2 * rings)
	for i := range rings {
		d := float64(i) * inset
		setColor(dc, i)
		dc.FillRectangle(q.x+d, q.y+d, q.w-2*d, q.h-2*d)
	}
	dc.SetColor(gg.FromColor(colornames.White))
	dc.SetLineWidth(1)
	dc.StrokeRectangle(q.x+1, q.y+1, q.w-2, q.h-2)
}
