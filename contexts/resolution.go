package contexts

import (
	"math"

	"github.com/yanrucheng/pilflow"
)

// Resolution categories, ordered from largest to smallest.
const (
	Category4K     = "4K"
	CategoryFullHD = "Full HD"
	CategoryHD     = "HD"
	CategorySD     = "SD"
)

// ResolutionContext records the outcome of classifying an image's
// resolution: the original dimensions, the category bucket, and the aspect
// ratio.
type ResolutionContext struct {
	OriginalWidth  int
	OriginalHeight int
	Category       string
	AspectRatio    float64
}

// NewResolutionContext builds and validates a ResolutionContext.
func NewResolutionContext(width, height int, category string, aspectRatio float64) (*ResolutionContext, error) {
	c := &ResolutionContext{
		OriginalWidth:  width,
		OriginalHeight: height,
		Category:       category,
		AspectRatio:    aspectRatio,
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Name returns "resolution".
func (c *ResolutionContext) Name() string {
	return pilflow.ContextName(c)
}

// Validate checks dimensions are positive, the category is one of the known
// buckets, and the aspect ratio is consistent with the dimensions.
func (c *ResolutionContext) Validate() error {
	if c.OriginalWidth <= 0 {
		return badField(c.Name(), "original_width", "must be a positive integer")
	}
	if c.OriginalHeight <= 0 {
		return badField(c.Name(), "original_height", "must be a positive integer")
	}
	switch c.Category {
	case Category4K, CategoryFullHD, CategoryHD, CategorySD:
	default:
		return badField(c.Name(), "resolution_category", "must be one of: '4K', 'Full HD', 'HD', 'SD'")
	}
	if c.AspectRatio <= 0 {
		return badField(c.Name(), "aspect_ratio", "must be a positive number")
	}
	// Allow small floating point drift between the stored ratio and the one
	// implied by the dimensions.
	calculated := float64(c.OriginalWidth) / float64(c.OriginalHeight)
	if math.Abs(calculated-c.AspectRatio) > 0.01 {
		return badField(c.Name(), "aspect_ratio", "does not match original dimensions")
	}
	return nil
}

// Data exports the fields under their serialized keys.
func (c *ResolutionContext) Data() map[string]any {
	return map[string]any{
		"original_width":      c.OriginalWidth,
		"original_height":     c.OriginalHeight,
		"resolution_category": c.Category,
		"aspect_ratio":        c.AspectRatio,
	}
}

// Restore builds a new ResolutionContext from exported data.
func (c *ResolutionContext) Restore(data map[string]any) (pilflow.Context, error) {
	name := c.Name()
	width, err := intField(name, data, "original_width")
	if err != nil {
		return nil, err
	}
	height, err := intField(name, data, "original_height")
	if err != nil {
		return nil, err
	}
	category, err := stringField(name, data, "resolution_category")
	if err != nil {
		return nil, err
	}
	ratio, err := floatField(name, data, "aspect_ratio")
	if err != nil {
		return nil, err
	}
	return NewResolutionContext(width, height, category, ratio)
}

// TotalPixels returns the pixel count of the original image.
func (c *ResolutionContext) TotalPixels() int {
	return c.OriginalWidth * c.OriginalHeight
}

// Is4K reports whether the image classified as 4K.
func (c *ResolutionContext) Is4K() bool {
	return c.Category == Category4K
}

// IsHDOrBetter reports whether the image classified as HD, Full HD or 4K.
func (c *ResolutionContext) IsHDOrBetter() bool {
	return c.Category != CategorySD
}

// IsLandscape reports whether the image is wider than tall.
func (c *ResolutionContext) IsLandscape() bool {
	return c.AspectRatio > 1.0
}

// IsPortrait reports whether the image is taller than wide.
func (c *ResolutionContext) IsPortrait() bool {
	return c.AspectRatio < 1.0
}
