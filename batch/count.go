// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package batch

import (
	"unicode/utf8"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// quadVertices is the vertex cost of an axis-aligned quad drawn as two
// triangles.
const quadVertices = 6

// Stats summarises one flushed batch.
type Stats struct {
	// Commands is the number of recorded commands, state commands included.
	Commands int
	// Vertices is the estimated vertex count of the drawing commands.
	Vertices int
}

// Count estimates the size of a recording.
//
// Path commands cost one vertex per path point: MoveTo and LineTo count 1,
// QuadTo 2, CubicTo 3. Rectangles and images cost a quad; text costs a quad
// per rune. State and style commands cost no vertices.
func Count(r *recording.Recording) Stats {
	cmds := r.Commands()
	st := Stats{Commands: len(cmds)}
	res := r.Resources()
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case recording.FillPathCommand:
			st.Vertices += pathVertices(res.GetPath(c.Path))
		case recording.StrokePathCommand:
			st.Vertices += pathVertices(res.GetPath(c.Path))
		case recording.SetClipCommand:
			st.Vertices += pathVertices(res.GetPath(c.Path))
		case recording.FillRectCommand, recording.StrokeRectCommand, recording.DrawImageCommand:
			st.Vertices += quadVertices
		case recording.DrawTextCommand:
			st.Vertices += quadVertices * utf8.RuneCountInString(c.Text)
		}
	}
	return st
}

func pathVertices(p *gg.Path) int {
	if p == nil {
		return 0
	}
	n := 0
	for _, el := range p.Elements() {
		switch el.(type) {
		case gg.MoveTo, gg.LineTo:
			n++
		case gg.QuadTo:
			n += 2
		case gg.CubicTo:
			n += 3
		}
	}
	return n
}
