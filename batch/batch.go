// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package batch

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/recording/backends/raster"
)

// Default capacity limits.
const (
	DefaultMaxVertices = 262144
	DefaultMaxCommands = 32768
)

// Common errors returned by Layer operations.
var (
	// ErrNilTarget is returned by Setup when the layer has no target.
	ErrNilTarget = errors.New("batch: nil target")

	// ErrInvalidDesc is returned by Setup for non-positive limits.
	ErrInvalidDesc = errors.New("batch: invalid descriptor")

	// ErrNotSetup is reported when a batch is begun on a layer that was
	// never set up or has been shut down.
	ErrNotSetup = errors.New("batch: layer not set up")

	// ErrCommandsFull is reported when a batch records more commands than
	// Desc.MaxCommands.
	ErrCommandsFull = errors.New("batch: command limit exceeded")

	// ErrVerticesFull is reported when a batch needs more vertices than
	// Desc.MaxVertices.
	ErrVerticesFull = errors.New("batch: vertex limit exceeded")

	// ErrPlayback is reported when the raster backend rejects a recording.
	ErrPlayback = errors.New("batch: playback failed")
)

// Desc configures a Layer's capacity limits.
type Desc struct {
	MaxVertices int
	MaxCommands int
}

// DefaultDesc returns the default capacity limits.
func DefaultDesc() Desc {
	return Desc{
		MaxVertices: DefaultMaxVertices,
		MaxCommands: DefaultMaxCommands,
	}
}

// Validate reports whether both limits are positive.
func (d Desc) Validate() error {
	if d.MaxVertices <= 0 || d.MaxCommands <= 0 {
		return fmt.Errorf("%w: max vertices=%d, max commands=%d",
			ErrInvalidDesc, d.MaxVertices, d.MaxCommands)
	}
	return nil
}

// Target receives the rendered image of a flushed batch.
// The image is only valid for the duration of the call.
type Target interface {
	DrawImage(img *image.RGBA)
}

// Layer is the immediate-mode drawing layer. One batch is open between
// Begin and End.
type Layer struct {
	target Target
	desc   Desc
	valid  bool

	raster *raster.Backend

	rec     *recording.Recorder
	inBatch bool
	flushed bool
	width   int
	height  int

	stats Stats
	err   error
}

// New creates a layer that flushes into target.
// The layer is unusable until Setup succeeds.
func New(target Target) *Layer {
	return &Layer{target: target}
}

// Setup validates desc and prepares the raster playback backend.
func (l *Layer) Setup(desc Desc) error {
	if l.target == nil {
		return ErrNilTarget
	}
	if err := desc.Validate(); err != nil {
		return err
	}
	l.desc = desc
	l.raster = raster.NewBackend()
	l.valid = true
	l.err = nil

	Logger().Debug("batch: setup",
		"max_vertices", desc.MaxVertices, "max_commands", desc.MaxCommands)
	return nil
}

// Valid reports whether Setup succeeded and Shutdown has not been called.
func (l *Layer) Valid() bool {
	return l.valid
}

// Begin opens a batch sized to the drawable and returns its recorder.
// An already open batch is discarded. Begin returns nil if the layer is
// not set up.
func (l *Layer) Begin(width, height int) *recording.Recorder {
	if !l.valid {
		l.err = ErrNotSetup
		return nil
	}
	l.width, l.height = width, height
	l.rec = recording.NewRecorder(width, height)
	l.inBatch = true
	l.flushed = false
	l.err = nil
	l.stats = Stats{}
	return l.rec
}

// Flush renders the open batch and hands the image to the target.
// It does nothing outside a batch, on an empty batch, on a zero-sized
// drawable, or if the batch was already flushed.
func (l *Layer) Flush() {
	if !l.inBatch || l.flushed {
		return
	}
	l.flushed = true

	r := l.rec.FinishRecording()
	l.stats = Count(r)
	if l.stats.Commands == 0 {
		return
	}

	if l.stats.Commands > l.desc.MaxCommands {
		l.drop(fmt.Errorf("%w: %d > %d", ErrCommandsFull, l.stats.Commands, l.desc.MaxCommands))
		return
	}
	if l.stats.Vertices > l.desc.MaxVertices {
		l.drop(fmt.Errorf("%w: %d > %d", ErrVerticesFull, l.stats.Vertices, l.desc.MaxVertices))
		return
	}
	if l.width <= 0 || l.height <= 0 {
		return
	}

	if err := r.Playback(l.raster); err != nil {
		l.drop(fmt.Errorf("%w: %v", ErrPlayback, err))
		return
	}
	l.target.DrawImage(toRGBA(l.raster.Image()))
}

// End closes the open batch.
func (l *Layer) End() {
	l.inBatch = false
	l.rec = nil
}

// Err returns the error recorded by the last Begin or Flush, if any.
func (l *Layer) Err() error {
	return l.err
}

// Stats returns the size of the last flushed batch.
func (l *Layer) Stats() Stats {
	return l.stats
}

// Shutdown releases the playback backend. The layer must be set up again
// before further use.
func (l *Layer) Shutdown() {
	if !l.valid {
		return
	}
	l.End()
	l.raster = nil
	l.valid = false
	Logger().Debug("batch: shutdown")
}

func (l *Layer) drop(err error) {
	l.err = err
	Logger().Warn("batch: dropped",
		"error", err, "commands", l.stats.Commands, "vertices", l.stats.Vertices)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}
