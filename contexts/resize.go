package contexts

import "github.com/yanrucheng/pilflow"

// ResizeContext records resize provenance: the image's current dimensions,
// the requested target, and the dimensions a completed resize produced.
// Optional dimensions use 0 as the unset value.
type ResizeContext struct {
	CurrentWidth  int
	CurrentHeight int
	Resized       bool
	TargetWidth   int
	TargetHeight  int
	ResizeWidth   int
	ResizeHeight  int
}

// NewResizeContext builds and validates a ResizeContext describing an image
// of the given dimensions that has not been resized. Target and resize
// dimensions are set afterwards by the resize operation.
func NewResizeContext(currentWidth, currentHeight int) (*ResizeContext, error) {
	c := &ResizeContext{CurrentWidth: currentWidth, CurrentHeight: currentHeight}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewResizedContext builds and validates a ResizeContext for a completed
// resize from current to resized dimensions.
func NewResizedContext(currentWidth, currentHeight, resizeWidth, resizeHeight int) (*ResizeContext, error) {
	c := &ResizeContext{
		CurrentWidth:  currentWidth,
		CurrentHeight: currentHeight,
		Resized:       true,
		ResizeWidth:   resizeWidth,
		ResizeHeight:  resizeHeight,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns "resize".
func (c *ResizeContext) Name() string {
	return pilflow.ContextName(c)
}

// Validate checks current dimensions are positive, optional dimensions are
// non-negative, and that a completed resize carries its result dimensions.
func (c *ResizeContext) Validate() error {
	if c.CurrentWidth <= 0 {
		return badField(c.Name(), "current_width", "must be a positive integer")
	}
	if c.CurrentHeight <= 0 {
		return badField(c.Name(), "current_height", "must be a positive integer")
	}
	if c.TargetWidth < 0 {
		return badField(c.Name(), "target_width", "must be a positive integer or unset")
	}
	if c.TargetHeight < 0 {
		return badField(c.Name(), "target_height", "must be a positive integer or unset")
	}
	if c.ResizeWidth < 0 {
		return badField(c.Name(), "resize_width", "must be a positive integer or unset")
	}
	if c.ResizeHeight < 0 {
		return badField(c.Name(), "resize_height", "must be a positive integer or unset")
	}
	if c.Resized && (c.ResizeWidth == 0 || c.ResizeHeight == 0) {
		return badField(c.Name(), "resized", "resize_width and resize_height must be provided when resized is true")
	}
	return nil
}

// Data exports the fields under their serialized keys.
func (c *ResizeContext) Data() map[string]any {
	return map[string]any{
		"current_width":  c.CurrentWidth,
		"current_height": c.CurrentHeight,
		"resized":        c.Resized,
		"target_width":   c.TargetWidth,
		"target_height":  c.TargetHeight,
		"resize_width":   c.ResizeWidth,
		"resize_height":  c.ResizeHeight,
	}
}

// Restore builds a new ResizeContext from exported data.
func (c *ResizeContext) Restore(data map[string]any) (pilflow.Context, error) {
	name := c.Name()
	out := &ResizeContext{}
	var err error
	if out.CurrentWidth, err = intField(name, data, "current_width"); err != nil {
		return nil, err
	}
	if out.CurrentHeight, err = intField(name, data, "current_height"); err != nil {
		return nil, err
	}
	if out.Resized, err = boolField(name, data, "resized"); err != nil {
		return nil, err
	}
	if out.TargetWidth, err = intField(name, data, "target_width"); err != nil {
		return nil, err
	}
	if out.TargetHeight, err = intField(name, data, "target_height"); err != nil {
		return nil, err
	}
	if out.ResizeWidth, err = intField(name, data, "resize_width"); err != nil {
		return nil, err
	}
	if out.ResizeHeight, err = intField(name, data, "resize_height"); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}

// CurrentAspectRatio returns the aspect ratio before the resize.
func (c *ResizeContext) CurrentAspectRatio() float64 {
	return float64(c.CurrentWidth) / float64(c.CurrentHeight)
}

// HasTargetDimensions reports whether both target dimensions are set.
func (c *ResizeContext) HasTargetDimensions() bool {
	return c.TargetWidth > 0 && c.TargetHeight > 0
}

// ScaleFactor returns the width scale of a completed resize, or 0 when no
// resize was performed.
func (c *ResizeContext) ScaleFactor() float64 {
	if !c.Resized || c.ResizeWidth == 0 {
		return 0
	}
	return float64(c.ResizeWidth) / float64(c.CurrentWidth)
}
