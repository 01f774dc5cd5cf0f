// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glapi exposes the subset of GL entry points the device uses,
// bound at build time to either the desktop core bindings or the GLES
// bindings from github.com/go-gl/gl.
//
// Both binding packages are generated from the same registry, so the
// function signatures and enum values match. Only the package differs.
package glapi
