package ops

import (
	"github.com/yanrucheng/pilflow"
	"github.com/yanrucheng/pilflow/contexts"
)

// Pixel-count thresholds for the resolution categories.
const (
	pixels4K     = 3840 * 2160
	pixelsFullHD = 1920 * 1080
	pixelsHD     = 1280 * 720
)

// DecideResolutionOperation classifies the image's resolution by total pixel
// count and attaches a ResolutionContext with the category, dimensions and
// aspect ratio. The image itself is untouched.
type DecideResolutionOperation struct{}

// NewDecideResolution creates a DecideResolutionOperation.
func NewDecideResolution() *DecideResolutionOperation {
	return &DecideResolutionOperation{}
}

// Apply classifies the image and returns a copy carrying the result.
func (op *DecideResolutionOperation) Apply(p *pilflow.Pack) (*pilflow.Pack, error) {
	width, height := p.Width(), p.Height()

	var category string
	switch total := width * height; {
	case total >= pixels4K:
		category = contexts.Category4K
	case total >= pixelsFullHD:
		category = contexts.CategoryFullHD
	case total >= pixelsHD:
		category = contexts.CategoryHD
	default:
		category = contexts.CategorySD
	}

	ctx, err := contexts.NewResolutionContext(width, height, category, float64(width)/float64(height))
	if err != nil {
		return nil, err
	}

	out, err := p.Copy(nil, nil)
	if err != nil {
		return nil, err
	}
	out.AddContext(ctx)
	return out, nil
}

func newDecideResolution(pilflow.Args) (pilflow.Transformer, error) {
	return NewDecideResolution(), nil
}
