// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package opengl

import "github.com/gogpu/ggsample/backend"

// The quad program samples the uploaded batch image over the whole viewport.
// Vertex positions are clip-space corners; texture row 0 is the image's top
// row, so v is flipped.

const vertexCore = `#version 330 core
in vec2 a_pos;
out vec2 v_uv;
void main() {
	v_uv = vec2(a_pos.x * 0.5 + 0.5, 0.5 - a_pos.y * 0.5);
	gl_Position = vec4(a_pos, 0.0, 1.0);
}
`

const fragmentCore = `#version 330 core
in vec2 v_uv;
out vec4 frag_color;
uniform sampler2D u_tex;
void main() {
	frag_color = texture(u_tex, v_uv);
}
`

const vertexES2 = `#version 100
attribute vec2 a_pos;
varying vec2 v_uv;
void main() {
	v_uv = vec2(a_pos.x * 0.5 + 0.5, 0.5 - a_pos.y * 0.5);
	gl_Position = vec4(a_pos, 0.0, 1.0);
}
`

const fragmentES2 = `#version 100
precision mediump float;
varying vec2 v_uv;
uniform sampler2D u_tex;
void main() {
	gl_FragColor = texture2D(u_tex, v_uv);
}
`

const vertexES3 = `#version 300 es
in vec2 a_pos;
out vec2 v_uv;
void main() {
	v_uv = vec2(a_pos.x * 0.5 + 0.5, 0.5 - a_pos.y * 0.5);
	gl_Position = vec4(a_pos, 0.0, 1.0);
}
`

const fragmentES3 = `#version 300 es
precision mediump float;
in vec2 v_uv;
out vec4 frag_color;
uniform sampler2D u_tex;
void main() {
	frag_color = texture(u_tex, v_uv);
}
`

// shaderSources returns the quad program in b's GLSL dialect.
func shaderSources(b backend.Backend) (vertex, fragment string) {
	switch b {
	case backend.GLES2:
		return vertexES2, fragmentES2
	case backend.GLES3:
		return vertexES3, fragmentES3
	default:
		return vertexCore, fragmentCore
	}
}

// quadVertices is a full-viewport triangle strip.
var quadVertices = []float32{
	-1, -1,
	1, -1,
	-1, 1,
	1, 1,
}
