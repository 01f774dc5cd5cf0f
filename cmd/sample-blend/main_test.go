package main

import (
	"image"
	"math"
	"testing"

	"github.com/gogpu/gg/recording"
	"github.com/gogpu/gg/recording/backends/raster"

	"github.com/gogpu/ggsample/batch"
)

func TestOrbitSpacing(t *testing.T) {
	for frame := range uint64(3) {
		var pts [3][2]float64
		for i := range pts {
			pts[i][0], pts[i][1] = orbit(0, 0, 10, frame, i, 3)
			if d := math.Hypot(pts[i][0], pts[i][1]); math.Abs(d-10) > 1e-9 {
				t.Errorf("frame %d: circle %d at distance %v, want 10", frame, i, d)
			}
		}
		// Equilateral: all pairwise distances match.
		d01 := math.Hypot(pts[0][0]-pts[1][0], pts[0][1]-pts[1][1])
		d12 := math.Hypot(pts[1][0]-pts[2][0], pts[1][1]-pts[2][1])
		if math.Abs(d01-d12) > 1e-9 {
			t.Errorf("frame %d: uneven spacing %v vs %v", frame, d01, d12)
		}
	}
}

func TestDrawBlendsOverlap(t *testing.T) {
	const size = 200
	rec := recording.NewRecorder(size, size)
	draw(rec, size, size, 0)
	r := rec.FinishRecording()

	st := batch.Count(r)
	d := batch.DefaultDesc()
	if st.Commands > d.MaxCommands || st.Vertices > d.MaxVertices {
		t.Fatalf("stats %+v exceed default limits %+v", st, d)
	}

	be := raster.NewBackend()
	if err := r.Playback(be); err != nil {
		t.Fatalf("Playback() = %v", err)
	}
	img, ok := be.Image().(*image.RGBA)
	if !ok {
		t.Skipf("raster image is %T", be.Image())
	}

	// The centre is covered by all three circles over the backdrop, so no
	// single channel saturates and none vanishes.
	c := img.RGBAAt(size/2, size/2)
	if c.A != 255 {
		t.Errorf("centre alpha = %d, want 255", c.A)
	}
	if c.R == 0 || c.G == 0 || c.B == 0 {
		t.Errorf("centre = %+v, want a mix of all three circles", c)
	}
}
