package glapi

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"unsafe"
)

// fakeDriver exports every name in procs.
type fakeDriver struct {
	procs   map[string]bool
	symbols [1]byte
	lookups []string
}

func newFakeDriver(procs ...string) *fakeDriver {
	d := &fakeDriver{procs: make(map[string]bool)}
	for _, p := range procs {
		d.procs[p] = true
	}
	return d
}

func (d *fakeDriver) lookup(name string) unsafe.Pointer {
	d.lookups = append(d.lookups, name)
	if !d.procs[name] {
		return nil
	}
	return unsafe.Pointer(&d.symbols[0])
}

func TestResolverToleratesUnusedSymbols(t *testing.T) {
	// An ES 2.0 driver exports what the device needs and nothing from 3.1.
	d := newFakeDriver(RequiredProcs(false)...)
	r := newResolver(d.lookup)

	if p := r.resolve("glDispatchCompute"); p == nil {
		t.Error("resolve() returned nil for a missing symbol; the binding load would abort")
	}
	if p := r.resolve("glActiveShaderProgram"); p == nil {
		t.Error("resolve() returned nil for a missing symbol")
	}
	for _, name := range RequiredProcs(false) {
		if p := r.resolve(name); p != unsafe.Pointer(&d.symbols[0]) {
			t.Errorf("resolve(%q) did not return the driver's pointer", name)
		}
	}

	if err := r.check(RequiredProcs(false)); err != nil {
		t.Errorf("check() = %v, want nil", err)
	}
}

func TestResolverReportsMissingRequired(t *testing.T) {
	procs := slices.DeleteFunc(RequiredProcs(false), func(n string) bool {
		return n == "glTexSubImage2D"
	})
	r := newResolver(newFakeDriver(procs...).lookup)
	for _, name := range RequiredProcs(false) {
		r.resolve(name)
	}

	err := r.check(RequiredProcs(false))
	if !errors.Is(err, ErrMissingProc) {
		t.Fatalf("check() = %v, want ErrMissingProc", err)
	}
	if !strings.Contains(err.Error(), "glTexSubImage2D") {
		t.Errorf("check() = %q, should name the missing entry point", err)
	}
}

func TestResolverVertexArrays(t *testing.T) {
	// An ES 2.0 driver without OES_vertex_array_object under core names.
	r := newResolver(newFakeDriver(RequiredProcs(false)...).lookup)
	for _, name := range RequiredProcs(true) {
		r.resolve(name)
	}

	if err := r.check(RequiredProcs(false)); err != nil {
		t.Errorf("check(without vertex arrays) = %v, want nil", err)
	}
	if err := r.check(RequiredProcs(true)); !errors.Is(err, ErrMissingProc) {
		t.Errorf("check(with vertex arrays) = %v, want ErrMissingProc", err)
	}
}

func TestRequiredProcs(t *testing.T) {
	base := RequiredProcs(false)
	full := RequiredProcs(true)
	if len(full) != len(base)+len(vertexArrayProcs) {
		t.Errorf("len(RequiredProcs(true)) = %d, want %d", len(full), len(base)+len(vertexArrayProcs))
	}
	if slices.Contains(base, "glGenVertexArrays") {
		t.Error("RequiredProcs(false) should not need vertex arrays")
	}
	for _, name := range full {
		if !strings.HasPrefix(name, "gl") {
			t.Errorf("entry point %q lacks the gl prefix", name)
		}
	}

	// The result is a copy.
	base[0] = "changed"
	if RequiredProcs(false)[0] == "changed" {
		t.Error("RequiredProcs returned shared storage")
	}
}
