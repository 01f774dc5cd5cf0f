// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glapi

import (
	"errors"
	"fmt"
	"unsafe"
)

// Errors returned by Init.
var (
	// ErrNoProcAddr is returned when Init needs a lookup function and got nil.
	ErrNoProcAddr = errors.New("glapi: no proc address function")

	// ErrMissingProc is returned when an entry point the device calls is not
	// exported by the driver.
	ErrMissingProc = errors.New("glapi: entry point not found")
)

// ProcAddrFunc resolves a GL entry point by name, such as "glClear".
// It returns nil for unknown names.
type ProcAddrFunc func(name string) unsafe.Pointer

// baseProcs are the entry points the device calls on every variant.
var baseProcs = []string{
	"glActiveTexture",
	"glAttachShader",
	"glBindAttribLocation",
	"glBindBuffer",
	"glBindFramebuffer",
	"glBindTexture",
	"glBlendFunc",
	"glBufferData",
	"glClear",
	"glClearColor",
	"glClearStencil",
	"glCompileShader",
	"glCreateProgram",
	"glCreateShader",
	"glDeleteBuffers",
	"glDeleteProgram",
	"glDeleteShader",
	"glDeleteTextures",
	"glDisable",
	"glDrawArrays",
	"glEnable",
	"glEnableVertexAttribArray",
	"glGenBuffers",
	"glGenTextures",
	"glGetError",
	"glGetProgramInfoLog",
	"glGetProgramiv",
	"glGetShaderInfoLog",
	"glGetShaderiv",
	"glGetString",
	"glGetUniformLocation",
	"glLinkProgram",
	"glPixelStorei",
	"glShaderSource",
	"glTexImage2D",
	"glTexParameteri",
	"glTexSubImage2D",
	"glUniform1i",
	"glUseProgram",
	"glVertexAttribPointer",
	"glViewport",
}

// vertexArrayProcs are only called where vertex array objects exist.
var vertexArrayProcs = []string{
	"glBindVertexArray",
	"glDeleteVertexArrays",
	"glGenVertexArrays",
}

// RequiredProcs returns the entry points the device calls.
func RequiredProcs(vertexArrays bool) []string {
	procs := append([]string(nil), baseProcs...)
	if vertexArrays {
		procs = append(procs, vertexArrayProcs...)
	}
	return procs
}

// unresolved stands in for entry points the driver does not export, so the
// binding's all-or-nothing load accepts symbols above the context version.
// The device never calls them.
var unresolved byte

// resolver wraps a ProcAddrFunc and remembers what it could not find.
type resolver struct {
	lookup  ProcAddrFunc
	missing map[string]bool
}

func newResolver(lookup ProcAddrFunc) *resolver {
	return &resolver{lookup: lookup, missing: make(map[string]bool)}
}

func (r *resolver) resolve(name string) unsafe.Pointer {
	if p := r.lookup(name); p != nil {
		return p
	}
	r.missing[name] = true
	return unsafe.Pointer(&unresolved)
}

// check fails on the first required entry point that was not resolved.
func (r *resolver) check(required []string) error {
	for _, name := range required {
		if r.missing[name] {
			return fmt.Errorf("%w: %s", ErrMissingProc, name)
		}
	}
	return nil
}
