package main

import (
	"math"
	"testing"

	"github.com/gogpu/gg/recording"

	"github.com/gogpu/ggsample/batch"
)

func TestRotatedRect(t *testing.T) {
	got := rotatedRect(10, 20, 4, 2, 0)
	want := [4][2]float64{{8, 19}, {12, 19}, {12, 21}, {8, 21}}
	if got != want {
		t.Errorf("rotatedRect(angle 0) = %v, want %v", got, want)
	}

	quarter := rotatedRect(0, 0, 4, 2, math.Pi/2)
	// (-2, -1) rotated by 90 degrees is (1, -2).
	if math.Abs(quarter[0][0]-1) > 1e-9 || math.Abs(quarter[0][1]+2) > 1e-9 {
		t.Errorf("rotatedRect(angle pi/2)[0] = %v, want (1, -2)", quarter[0])
	}
}

func TestDrawWithinLimits(t *testing.T) {
	rec := recording.NewRecorder(512, 512)
	draw(rec, 512, 512, 45)

	st := batch.Count(rec.FinishRecording())
	if st.Commands == 0 {
		t.Fatal("draw recorded nothing")
	}
	d := batch.DefaultDesc()
	if st.Commands > d.MaxCommands || st.Vertices > d.MaxVertices {
		t.Errorf("stats %+v exceed default limits %+v", st, d)
	}
}

func TestDrawNilCanvas(t *testing.T) {
	draw(nil, 512, 512, 0)
}
