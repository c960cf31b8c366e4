package contexts

import (
	"errors"
	"reflect"
	"testing"

	"github.com/yanrucheng/pilflow"
)

func TestResolutionContext_Valid(t *testing.T) {
	c, err := NewResolutionContext(1920, 1080, CategoryFullHD, 1920.0/1080.0)
	if err != nil {
		t.Fatalf("valid context rejected: %v", err)
	}
	if c.Name() != "resolution" {
		t.Errorf("name: got %q, want resolution", c.Name())
	}
	if c.TotalPixels() != 1920*1080 {
		t.Errorf("total pixels: got %d", c.TotalPixels())
	}
	if !c.IsLandscape() || c.IsPortrait() {
		t.Error("1920x1080 should be landscape")
	}
	if !c.IsHDOrBetter() || c.Is4K() {
		t.Error("Full HD should be HD-or-better but not 4K")
	}
}

func TestResolutionContext_Invalid(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		category       string
		ratio          float64
	}{
		{"zero width", 0, 1080, CategoryFullHD, 1.0},
		{"negative height", 1920, -1, CategoryFullHD, 1.777},
		{"unknown category", 1920, 1080, "8K", 1.777},
		{"non-positive ratio", 1920, 1080, CategoryFullHD, 0},
		{"ratio mismatch", 1920, 1080, CategoryFullHD, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewResolutionContext(tt.width, tt.height, tt.category, tt.ratio)
			if err == nil {
				t.Fatal("invalid context accepted")
			}
			if !errors.Is(err, pilflow.ErrValidation) {
				t.Errorf("error does not wrap ErrValidation: %v", err)
			}
		})
	}
}

func TestResolutionContext_RoundTrip(t *testing.T) {
	src, err := NewResolutionContext(3840, 2160, Category4K, 3840.0/2160.0)
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

func TestResolutionContext_RestoreFromJSONNumbers(t *testing.T) {
	// JSON deserialization produces float64 for every number.
	data := map[string]any{
		"original_width":      float64(1280),
		"original_height":     float64(720),
		"resolution_category": CategoryHD,
		"aspect_ratio":        1280.0 / 720.0,
	}

	ctx, err := (&ResolutionContext{}).Restore(data)
	if err != nil {
		t.Fatalf("restore from JSON-shaped data: %v", err)
	}
	if got := ctx.(*ResolutionContext).OriginalWidth; got != 1280 {
		t.Errorf("width: got %d, want 1280", got)
	}
}
