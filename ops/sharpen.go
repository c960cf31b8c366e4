package ops

import (
	"github.com/anthonynsimon/bild/effect"

	"github.com/yanrucheng/pilflow"
	"github.com/yanrucheng/pilflow/contexts"
)

// Default unsharp-mask parameters.
const (
	DefaultSharpenRadius    = 2.0
	DefaultSharpenPercent   = 150
	DefaultSharpenThreshold = 3
)

// SharpenOperation applies an unsharp mask and records the parameters in a
// SharpenContext. The threshold is recorded for provenance only: the
// underlying unsharp mask has no threshold parameter.
type SharpenOperation struct {
	Radius    float64
	Percent   int
	Threshold int
}

// NewSharpen creates a SharpenOperation; non-positive radius or percent fall
// back to the defaults.
func NewSharpen(radius float64, percent, threshold int) *SharpenOperation {
	if radius <= 0 {
		radius = DefaultSharpenRadius
	}
	if percent <= 0 {
		percent = DefaultSharpenPercent
	}
	if threshold < 0 {
		threshold = DefaultSharpenThreshold
	}
	return &SharpenOperation{Radius: radius, Percent: percent, Threshold: threshold}
}

// Apply sharpens the image and returns a copy carrying the result.
func (op *SharpenOperation) Apply(p *pilflow.Pack) (*pilflow.Pack, error) {
	amount := float64(op.Percent) / 100.0
	sharpened := effect.UnsharpMask(p.Image, op.Radius, amount)

	ctx, err := contexts.NewSharpenContext(true, op.Radius, op.Percent, op.Threshold)
	if err != nil {
		return nil, err
	}

	out, err := p.Copy(sharpened, nil)
	if err != nil {
		return nil, err
	}
	out.AddContext(ctx)
	return out, nil
}

func newSharpen(args pilflow.Args) (pilflow.Transformer, error) {
	radius, err := args.Float("radius", DefaultSharpenRadius)
	if err != nil {
		return nil, err
	}
	percent, err := args.Int("percent", DefaultSharpenPercent)
	if err != nil {
		return nil, err
	}
	threshold, err := args.Int("threshold", DefaultSharpenThreshold)
	if err != nil {
		return nil, err
	}
	return NewSharpen(radius, percent, threshold), nil
}
