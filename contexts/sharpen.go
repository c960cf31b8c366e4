package contexts

import "github.com/yanrucheng/pilflow"

// SharpenContext records an unsharp-mask pass and its parameters.
type SharpenContext struct {
	Applied   bool
	Radius    float64
	Percent   int
	Threshold int
}

// NewSharpenContext builds and validates a SharpenContext.
func NewSharpenContext(applied bool, radius float64, percent, threshold int) (*SharpenContext, error) {
	c := &SharpenContext{Applied: applied, Radius: radius, Percent: percent, Threshold: threshold}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns "sharpen".
func (c *SharpenContext) Name() string {
	return pilflow.ContextName(c)
}

// Validate checks parameter ranges; an applied sharpen needs a positive
// radius and percent.
func (c *SharpenContext) Validate() error {
	if c.Radius < 0 {
		return badField(c.Name(), "sharpen_radius", "must be non-negative")
	}
	if c.Percent < 0 {
		return badField(c.Name(), "sharpen_percent", "must be non-negative")
	}
	if c.Threshold < 0 {
		return badField(c.Name(), "sharpen_threshold", "must be non-negative")
	}
	if c.Applied && (c.Radius == 0 || c.Percent == 0) {
		return badField(c.Name(), "sharpen_applied", "sharpen_radius and sharpen_percent must be positive when sharpen_applied is true")
	}
	return nil
}

// Data exports the fields under their serialized keys.
func (c *SharpenContext) Data() map[string]any {
	return map[string]any{
		"sharpen_applied":   c.Applied,
		"sharpen_radius":    c.Radius,
		"sharpen_percent":   c.Percent,
		"sharpen_threshold": c.Threshold,
	}
}

// Restore builds a new SharpenContext from exported data.
func (c *SharpenContext) Restore(data map[string]any) (pilflow.Context, error) {
	name := c.Name()
	applied, err := boolField(name, data, "sharpen_applied")
	if err != nil {
		return nil, err
	}
	radius, err := floatField(name, data, "sharpen_radius")
	if err != nil {
		return nil, err
	}
	percent, err := intField(name, data, "sharpen_percent")
	if err != nil {
		return nil, err
	}
	threshold, err := intField(name, data, "sharpen_threshold")
	if err != nil {
		return nil, err
	}
	return NewSharpenContext(applied, radius, percent, threshold)
}
