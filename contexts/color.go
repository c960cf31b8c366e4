package contexts

import (
	"regexp"

	"github.com/yanrucheng/pilflow"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// ColorContext records aggregate color statistics for an image: the average
// color and its position in HSL space. Luminance and saturation range over
// [0, 1]; hue over [0, 360).
type ColorContext struct {
	AverageHex string
	Hue        float64
	Saturation float64
	Luminance  float64
}

// NewColorContext builds and validates a ColorContext.
func NewColorContext(averageHex string, hue, saturation, luminance float64) (*ColorContext, error) {
	c := &ColorContext{
		AverageHex: averageHex,
		Hue:        hue,
		Saturation: saturation,
		Luminance:  luminance,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns "color".
func (c *ColorContext) Name() string {
	return pilflow.ContextName(c)
}

// Validate checks the hex format and the HSL component ranges.
func (c *ColorContext) Validate() error {
	if !hexColorPattern.MatchString(c.AverageHex) {
		return badField(c.Name(), "average_hex", "must be a '#RRGGBB' hex color")
	}
	if c.Hue < 0 || c.Hue >= 360 {
		return badField(c.Name(), "hue", "must be in [0, 360)")
	}
	if c.Saturation < 0 || c.Saturation > 1 {
		return badField(c.Name(), "saturation", "must be in [0, 1]")
	}
	if c.Luminance < 0 || c.Luminance > 1 {
		return badField(c.Name(), "luminance", "must be in [0, 1]")
	}
	return nil
}

// Data exports the fields under their serialized keys.
func (c *ColorContext) Data() map[string]any {
	return map[string]any{
		"average_hex": c.AverageHex,
		"hue":         c.Hue,
		"saturation":  c.Saturation,
		"luminance":   c.Luminance,
	}
}

// Restore builds a new ColorContext from exported data.
func (c *ColorContext) Restore(data map[string]any) (pilflow.Context, error) {
	name := c.Name()
	hex, err := stringField(name, data, "average_hex")
	if err != nil {
		return nil, err
	}
	hue, err := floatField(name, data, "hue")
	if err != nil {
		return nil, err
	}
	sat, err := floatField(name, data, "saturation")
	if err != nil {
		return nil, err
	}
	lum, err := floatField(name, data, "luminance")
	if err != nil {
		return nil, err
	}
	return NewColorContext(hex, hue, sat, lum)
}

// IsDark reports whether the average luminance falls below 0.25.
func (c *ColorContext) IsDark() bool {
	return c.Luminance < 0.25
}

// IsMuted reports whether the average saturation falls below 0.2.
func (c *ColorContext) IsMuted() bool {
	return c.Saturation < 0.2
}
