package ops

import (
	"github.com/anthonynsimon/bild/blur"

	"github.com/yanrucheng/pilflow"
	"github.com/yanrucheng/pilflow/contexts"
)

// DefaultBlurRadius is the Gaussian radius used when none is given.
const DefaultBlurRadius = 2.0

// BlurOperation applies a Gaussian blur and records the radius in a
// BlurContext.
type BlurOperation struct {
	Radius float64
}

// NewBlur creates a BlurOperation; a non-positive radius falls back to
// DefaultBlurRadius.
func NewBlur(radius float64) *BlurOperation {
	if radius <= 0 {
		radius = DefaultBlurRadius
	}
	return &BlurOperation{Radius: radius}
}

// Apply blurs the image and returns a copy carrying the result.
func (op *BlurOperation) Apply(p *pilflow.Pack) (*pilflow.Pack, error) {
	blurred := blur.Gaussian(p.Image, op.Radius)

	ctx, err := contexts.NewBlurContext(true, op.Radius)
	if err != nil {
		return nil, err
	}

	out, err := p.Copy(blurred, nil)
	if err != nil {
		return nil, err
	}
	out.AddContext(ctx)
	return out, nil
}

func newBlur(args pilflow.Args) (pilflow.Transformer, error) {
	radius, err := args.Float("radius", DefaultBlurRadius)
	if err != nil {
		return nil, err
	}
	return NewBlur(radius), nil
}
