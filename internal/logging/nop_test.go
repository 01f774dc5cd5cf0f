package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestNopHandler(t *testing.T) {
	h := NopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("NopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("NopHandler.Handle() = %v, want nil", err)
	}
	if _, ok := h.WithAttrs([]slog.Attr{slog.String("key", "val")}).(NopHandler); !ok {
		t.Error("NopHandler.WithAttrs() did not return NopHandler")
	}
	if _, ok := h.WithGroup("group").(NopHandler); !ok {
		t.Error("NopHandler.WithGroup() did not return NopHandler")
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	if l == nil {
		t.Fatal("NewNop() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("NewNop() logger should be disabled")
	}
}
