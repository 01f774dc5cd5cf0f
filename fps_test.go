package ggsample

import "testing"

func TestFPSCounterWindow(t *testing.T) {
	c := newFPSCounter(100)

	for now := uint32(200); now < 1100; now += 100 {
		if _, ok := c.tick(now); ok {
			t.Fatalf("tick(%d) reported before a full window", now)
		}
	}
	n, ok := c.tick(1100)
	if !ok || n != 10 {
		t.Fatalf("tick(1100) = %d, %v; want 10, true", n, ok)
	}
	if _, ok := c.tick(1200); ok {
		t.Error("the window should restart after a report")
	}
}

func TestFPSCounterLongFrame(t *testing.T) {
	c := newFPSCounter(0)
	// One frame spanning several windows reports once.
	n, ok := c.tick(5000)
	if !ok || n != 1 {
		t.Errorf("tick(5000) = %d, %v; want 1, true", n, ok)
	}
	if _, ok := c.tick(5001); ok {
		t.Error("second tick reported again")
	}
}

func TestFPSCounterWraparound(t *testing.T) {
	c := newFPSCounter(^uint32(0) - 499)
	if _, ok := c.tick(100); ok {
		t.Error("600 ms across wraparound reported as a full window")
	}
	if n, ok := c.tick(500); !ok || n != 2 {
		t.Errorf("tick(500) = %d, %v; want 2, true", n, ok)
	}
}

func TestHasFlag(t *testing.T) {
	args := []string{"prog", "-v", "-no-vsync"}
	if !HasFlag(args, "-v") || !HasFlag(args, NoVSyncFlag) {
		t.Error("HasFlag missed a present flag")
	}
	if HasFlag(args, "prog") {
		t.Error("HasFlag matched the program name")
	}
	if HasFlag(args, "-x") {
		t.Error("HasFlag matched an absent flag")
	}
}
