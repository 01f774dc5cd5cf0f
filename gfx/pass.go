// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gfx

import "github.com/gogpu/gputypes"

// MaxColorAttachments is the number of colour attachments a pass action
// describes. The default framebuffer has exactly one.
const MaxColorAttachments = 4

// Action specifies what a pass does with an attachment when it begins.
type Action uint8

const (
	// ActionDefault picks the attachment's default: clear for colour,
	// don't care for depth and stencil.
	ActionDefault Action = iota
	// ActionClear clears the attachment to the action's Value.
	ActionClear
	// ActionLoad keeps the attachment's previous contents.
	ActionLoad
	// ActionDontCare leaves the contents undefined.
	ActionDontCare
)

var actionNames = [...]string{
	ActionDefault:  "default",
	ActionClear:    "clear",
	ActionLoad:     "load",
	ActionDontCare: "dontcare",
}

// String returns the action name.
func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return "unknown"
}

// ColorAttachmentAction is the begin action for one colour attachment.
type ColorAttachmentAction struct {
	Action Action
	Value  gputypes.Color
}

// DepthAttachmentAction is the begin action for the depth attachment.
type DepthAttachmentAction struct {
	Action Action
	Value  float32
}

// StencilAttachmentAction is the begin action for the stencil attachment.
type StencilAttachmentAction struct {
	Action Action
	Value  uint8
}

// PassAction describes how every attachment of a pass is initialised.
type PassAction struct {
	Colors  [MaxColorAttachments]ColorAttachmentAction
	Depth   DepthAttachmentAction
	Stencil StencilAttachmentAction
}

// DefaultPassAction returns an action that clears colour attachment 0 to c
// and does not care about depth or stencil.
func DefaultPassAction(c gputypes.Color) PassAction {
	var pa PassAction
	pa.Colors[0] = ColorAttachmentAction{Action: ActionClear, Value: c}
	pa.Depth.Action = ActionDontCare
	pa.Stencil.Action = ActionDontCare
	return pa
}

// ClearMask is a set of buffers a pass must clear when it begins.
type ClearMask uint8

const (
	ClearColor ClearMask = 1 << iota
	ClearDepth
	ClearStencil
)

// Has reports whether every bit of b is set in m.
func (m ClearMask) Has(b ClearMask) bool {
	return m&b == b
}

// ClearMask resolves default actions and reports which buffers of the
// default framebuffer must be cleared. Only colour attachment 0 is
// considered, since the default framebuffer has a single colour buffer.
func (pa PassAction) ClearMask() ClearMask {
	var m ClearMask
	switch pa.Colors[0].Action {
	case ActionDefault, ActionClear:
		m |= ClearColor
	}
	if pa.Depth.Action == ActionClear {
		m |= ClearDepth
	}
	if pa.Stencil.Action == ActionClear {
		m |= ClearStencil
	}
	return m
}

// ClearValue returns the colour attachment 0 clear value, resolving the
// default action to opaque black.
func (pa PassAction) ClearValue() gputypes.Color {
	if pa.Colors[0].Action == ActionDefault {
		return gputypes.Color{R: 0, G: 0, B: 0, A: 1}
	}
	return pa.Colors[0].Value
}
