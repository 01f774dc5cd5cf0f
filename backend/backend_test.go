package backend

import "testing"

func TestBackendString(t *testing.T) {
	tests := []struct {
		b    Backend
		want string
	}{
		{GLCore33, "glcore33"},
		{GLES2, "gles2"},
		{GLES3, "gles3"},
		{Backend(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.b.String(); got != tt.want {
			t.Errorf("Backend(%d).String() = %q, want %q", tt.b, got, tt.want)
		}
	}
}

func TestBackendAPIName(t *testing.T) {
	if got := GLCore33.APIName(); got != "OpenGL 3.3" {
		t.Errorf("GLCore33.APIName() = %q", got)
	}
	if got := GLES2.APIName(); got != "OpenGL ES 2.0" {
		t.Errorf("GLES2.APIName() = %q", got)
	}
	if got := GLES3.APIName(); got != "OpenGL ES 3.0" {
		t.Errorf("GLES3.APIName() = %q", got)
	}
}

func TestCurrentIsKnown(t *testing.T) {
	switch Current {
	case GLCore33, GLES2, GLES3:
	default:
		t.Fatalf("Current = %v is not a known variant", Current)
	}
	if Current.String() == "unknown" {
		t.Errorf("Current.String() = %q", Current.String())
	}
}

func TestVertexArrays(t *testing.T) {
	if GLES2.HasVertexArrays() {
		t.Error("GLES2 should not use vertex array objects")
	}
	if !GLCore33.HasVertexArrays() || !GLES3.HasVertexArrays() {
		t.Error("GLCore33 and GLES3 should use vertex array objects")
	}
}

func TestPrepareAttributes(t *testing.T) {
	tests := []struct {
		b            Backend
		major, minor int
		profile      Profile
		forward      bool
	}{
		{GLCore33, 3, 3, ProfileCore, true},
		{GLES2, 2, 0, ProfileES, false},
		{GLES3, 3, 0, ProfileES, false},
	}
	for _, tt := range tests {
		t.Run(tt.b.String(), func(t *testing.T) {
			desc := ContextDesc{SampleCount: 0}
			PrepareAttributes(&desc, tt.b)

			if desc.Backend != tt.b {
				t.Errorf("Backend = %v, want %v", desc.Backend, tt.b)
			}
			if desc.Major != tt.major || desc.Minor != tt.minor {
				t.Errorf("version = %d.%d, want %d.%d", desc.Major, desc.Minor, tt.major, tt.minor)
			}
			if desc.Profile != tt.profile {
				t.Errorf("Profile = %v, want %v", desc.Profile, tt.profile)
			}
			if desc.ForwardCompatible != tt.forward {
				t.Errorf("ForwardCompatible = %v, want %v", desc.ForwardCompatible, tt.forward)
			}
			if !desc.DoubleBuffer {
				t.Error("DoubleBuffer = false, want true")
			}
			if desc.DepthSize != 0 || desc.StencilSize != 0 {
				t.Errorf("depth/stencil = %d/%d, want 0/0", desc.DepthSize, desc.StencilSize)
			}
			if desc.SampleCount != 0 || desc.Multisampled() {
				t.Errorf("SampleCount = %d, want untouched 0", desc.SampleCount)
			}
		})
	}
}

func TestPrepareAttributesKeepsSampleCount(t *testing.T) {
	desc := ContextDesc{SampleCount: 4}
	PrepareAttributes(&desc, Current)
	if desc.SampleCount != 4 || !desc.Multisampled() {
		t.Errorf("SampleCount = %d, want 4", desc.SampleCount)
	}
}
