// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build gles3

package backend

// Current is the variant this binary was built for.
const Current = GLES3
