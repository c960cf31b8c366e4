package contexts

import "github.com/yanrucheng/pilflow"

// Blur intensity buckets returned by BlurContext.Intensity.
const (
	IntensityNone   = "none"
	IntensityLight  = "light"
	IntensityMedium = "medium"
	IntensityHeavy  = "heavy"
)

// BlurContext records a blur applied to the image and its radius.
type BlurContext struct {
	Applied bool
	Radius  float64
}

// NewBlurContext builds and validates a BlurContext.
func NewBlurContext(applied bool, radius float64) (*BlurContext, error) {
	c := &BlurContext{Applied: applied, Radius: radius}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns "blur".
func (c *BlurContext) Name() string {
	return pilflow.ContextName(c)
}

// Validate checks the radius is non-negative and positive when a blur was
// actually applied.
func (c *BlurContext) Validate() error {
	if c.Radius < 0 {
		return badField(c.Name(), "blur_radius", "must be non-negative")
	}
	if c.Applied && c.Radius == 0 {
		return badField(c.Name(), "blur_radius", "must be positive when blur_applied is true")
	}
	return nil
}

// Data exports the fields under their serialized keys.
func (c *BlurContext) Data() map[string]any {
	return map[string]any{
		"blur_applied": c.Applied,
		"blur_radius":  c.Radius,
	}
}

// Restore builds a new BlurContext from exported data.
func (c *BlurContext) Restore(data map[string]any) (pilflow.Context, error) {
	name := c.Name()
	applied, err := boolField(name, data, "blur_applied")
	if err != nil {
		return nil, err
	}
	radius, err := floatField(name, data, "blur_radius")
	if err != nil {
		return nil, err
	}
	return NewBlurContext(applied, radius)
}

// Intensity buckets the blur radius: none, light (<= 2), medium (<= 5) or
// heavy (> 5).
func (c *BlurContext) Intensity() string {
	switch {
	case !c.Applied:
		return IntensityNone
	case c.Radius <= 2:
		return IntensityLight
	case c.Radius <= 5:
		return IntensityMedium
	default:
		return IntensityHeavy
	}
}
