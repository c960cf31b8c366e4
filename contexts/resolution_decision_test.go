package contexts

import (
	"reflect"
	"testing"
)

func TestResolutionDecisionContext_Name(t *testing.T) {
	c, err := NewResolutionDecisionContext(PresetHD)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if c.Name() != "resolution_decision" {
		t.Errorf("name: got %q, want resolution_decision", c.Name())
	}
}

func TestResolutionDecisionContext_InvalidPreset(t *testing.T) {
	if _, err := NewResolutionDecisionContext("16k"); err == nil {
		t.Error("unknown preset accepted")
	}
	if _, err := NewResolutionDecisionContext(""); err == nil {
		t.Error("empty preset accepted")
	}
}

func TestResolutionDecisionContext_TargetDimensions(t *testing.T) {
	tests := []struct {
		name           string
		preset         string
		width, height  int
		wantW, wantH   int
	}{
		{"original keeps size", PresetOriginal, 4000, 3000, 4000, 3000},
		{"already within bounds", PresetHD, 640, 480, 640, 480},
		{"wide image limited by width", PresetHD, 4000, 2000, 1280, 640},
		{"tall image limited by height", PresetHD, 1000, 2000, 360, 720},
		{"full hd bounds", PresetFullHD, 3840, 2160, 1920, 1080},
		{"sd bounds", PresetSD, 1280, 960, 640, 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewResolutionDecisionContext(tt.preset)
			if err != nil {
				t.Fatalf("build: %v", err)
			}
			gotW, gotH := c.TargetDimensions(tt.width, tt.height)
			if gotW != tt.wantW || gotH != tt.wantH {
				t.Errorf("target: got %dx%d, want %dx%d", gotW, gotH, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestResolutionDecisionContext_RoundTrip(t *testing.T) {
	src, err := NewResolutionDecisionContext(PresetFullHD)
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
