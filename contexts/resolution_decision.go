package contexts

import "github.com/yanrucheng/pilflow"

// Resolution presets a pipeline can target. PresetOriginal leaves the image
// at its source size.
const (
	PresetOriginal = "original"
	Preset4K       = "4k"
	PresetFullHD   = "fullhd"
	PresetHD       = "hd"
	PresetSD       = "sd"
)

// presetBounds maps a preset to the box the image should fit within.
var presetBounds = map[string][2]int{
	Preset4K:     {3840, 2160},
	PresetFullHD: {1920, 1080},
	PresetHD:     {1280, 720},
	PresetSD:     {640, 480},
}

// ResolutionDecisionContext stores the resolution preset a later resize
// operation should target. Deciding and resizing are separate stages so a
// pipeline can inspect or override the decision in between.
type ResolutionDecisionContext struct {
	Preset string
}

// NewResolutionDecisionContext builds and validates a
// ResolutionDecisionContext.
func NewResolutionDecisionContext(preset string) (*ResolutionDecisionContext, error) {
	c := &ResolutionDecisionContext{Preset: preset}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns "resolution_decision".
func (c *ResolutionDecisionContext) Name() string {
	return pilflow.ContextName(c)
}

// Validate checks the preset is one of the known values.
func (c *ResolutionDecisionContext) Validate() error {
	switch c.Preset {
	case PresetOriginal, Preset4K, PresetFullHD, PresetHD, PresetSD:
		return nil
	}
	return badField(c.Name(), "resolution_preset", "must be one of: 'original', '4k', 'fullhd', 'hd', 'sd'")
}

// Data exports the fields under their serialized keys.
func (c *ResolutionDecisionContext) Data() map[string]any {
	return map[string]any{
		"resolution_preset": c.Preset,
	}
}

// Restore builds a new ResolutionDecisionContext from exported data.
func (c *ResolutionDecisionContext) Restore(data map[string]any) (pilflow.Context, error) {
	preset, err := stringField(c.Name(), data, "resolution_preset")
	if err != nil {
		return nil, err
	}
	return NewResolutionDecisionContext(preset)
}

// TargetDimensions scales width x height to fit within the preset's bounds,
// preserving aspect ratio and never scaling up. PresetOriginal (and images
// already inside the bounds) return the input dimensions unchanged.
func (c *ResolutionDecisionContext) TargetDimensions(width, height int) (int, int) {
	bounds, ok := presetBounds[c.Preset]
	if !ok {
		return width, height
	}
	maxW, maxH := bounds[0], bounds[1]
	if width <= maxW && height <= maxH {
		return width, height
	}
	scaleW := float64(maxW) / float64(width)
	scaleH := float64(maxH) / float64(height)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	w := int(float64(width) * scale)
	h := int(float64(height) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
