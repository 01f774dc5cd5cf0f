package main

import (
	"testing"

	"github.com/gogpu/gg/recording"

	"github.com/gogpu/ggsample/batch"
)

func TestQuadrantsCoverDrawable(t *testing.T) {
	q := quadrants(200, 100)
	var area float64
	for _, r := range q {
		area += r.w * r.h
	}
	if area != 200*100 {
		t.Errorf("quadrant area = %v, want %v", area, 200*100)
	}
	if q[3].x != 100 || q[3].y != 50 {
		t.Errorf("bottom-right quadrant at (%v, %v), want (100, 50)", q[3].x, q[3].y)
	}
}

func TestStripPoints(t *testing.T) {
	pts := stripPoints(quadrant{0, 0, 80, 40}, 4)
	if len(pts) != 10 {
		t.Fatalf("len = %d, want 10", len(pts))
	}
	for i, p := range pts {
		wantY := 10.0
		if i%2 == 1 {
			wantY = 30
		}
		if p[1] != wantY {
			t.Errorf("pts[%d].y = %v, want %v", i, p[1], wantY)
		}
	}
	if pts[9][0] != 80 {
		t.Errorf("last x = %v, want 80", pts[9][0])
	}
}

func TestDrawWithinLimits(t *testing.T) {
	for _, size := range [][2]int{{512, 512}, {1920, 1080}} {
		rec := recording.NewRecorder(size[0], size[1])
		draw(rec, size[0], size[1], 10)

		st := batch.Count(rec.FinishRecording())
		if st.Commands == 0 {
			t.Fatal("draw recorded nothing")
		}
		d := batch.DefaultDesc()
		if st.Commands > d.MaxCommands || st.Vertices > d.MaxVertices {
			t.Errorf("%v: stats %+v exceed default limits %+v", size, st, d)
		}
	}
}

func TestDrawZeroSize(t *testing.T) {
	rec := recording.NewRecorder(1, 1)
	draw(rec, 0, 0, 0)
	if n := len(rec.FinishRecording().Commands()); n != 0 {
		t.Errorf("zero-sized draw recorded %d commands", n)
	}
}
