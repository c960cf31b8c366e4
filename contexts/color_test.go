package contexts

import (
	"reflect"
	"testing"
)

func TestColorContext_Valid(t *testing.T) {
	c, err := NewColorContext("#ff8000", 30, 1, 0.5)
	if err != nil {
		t.Fatalf("valid context rejected: %v", err)
	}
	if c.Name() != "color" {
		t.Errorf("name: got %q, want color", c.Name())
	}
	if c.IsDark() {
		t.Error("mid-luminance color flagged dark")
	}
	if c.IsMuted() {
		t.Error("saturated color flagged muted")
	}
}

func TestColorContext_Invalid(t *testing.T) {
	tests := []struct {
		name                  string
		hex                   string
		hue, sat, lum         float64
	}{
		{"missing hash", "ff8000", 0, 0, 0},
		{"short hex", "#fff", 0, 0, 0},
		{"hue too large", "#ff8000", 360, 0, 0},
		{"negative hue", "#ff8000", -1, 0, 0},
		{"saturation above one", "#ff8000", 0, 1.1, 0},
		{"luminance above one", "#ff8000", 0, 0, 1.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewColorContext(tt.hex, tt.hue, tt.sat, tt.lum); err == nil {
				t.Error("invalid context accepted")
			}
		})
	}
}

func TestColorContext_RoundTrip(t *testing.T) {
	src, err := NewColorContext("#1a2b3c", 210.5, 0.4, 0.17)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	back, err := src.Restore(src.Data())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !reflect.DeepEqual(src.Data(), back.Data()) {
		t.Errorf("round trip: got %v, want %v", back.Data(), src.Data())
	}
}
