// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsample

import (
	"errors"
	"fmt"
)

// Failure kinds. Every error returned by RunE matches exactly one of them
// with errors.Is.
var (
	// ErrDriver is returned when the Driver is missing a subsystem.
	ErrDriver = errors.New("ggsample: incomplete driver")

	// ErrWindow is returned when the platform or its window cannot be created.
	ErrWindow = errors.New("ggsample: window creation failed")

	// ErrContext is returned when the rendering context cannot be created.
	ErrContext = errors.New("ggsample: context creation failed")

	// ErrAPILoad is returned when graphics API entry points cannot be loaded.
	ErrAPILoad = errors.New("ggsample: graphics API unsupported")

	// ErrDevice is returned when the graphics device fails setup or is
	// invalid afterwards.
	ErrDevice = errors.New("ggsample: graphics device invalid")

	// ErrDrawingLayer is returned when the drawing layer fails setup.
	ErrDrawingLayer = errors.New("ggsample: drawing layer setup failed")

	// ErrInit is returned when Config.Init fails.
	ErrInit = errors.New("ggsample: app init failed")

	// ErrSwap is returned when presenting a frame fails.
	ErrSwap = errors.New("ggsample: buffer swap failed")
)

// Error is a fatal shell failure.
//
// Error() is the one-line diagnostic Run prints. errors.Is matches both the
// failure kind and the subsystem cause.
type Error struct {
	Kind  error
	Cause error
	line  string
}

func newError(kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Cause: cause, line: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	return e.line
}

// Unwrap returns the kind and, if present, the cause.
func (e *Error) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}
