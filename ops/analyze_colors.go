package ops

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/yanrucheng/pilflow"
	"github.com/yanrucheng/pilflow/contexts"
)

// maxColorSamples bounds the sampling grid per axis so analysis cost stays
// flat regardless of image size.
const maxColorSamples = 64

// AnalyzeColorsOperation computes the image's average color and its HSL
// position, attaching the result as a ColorContext. Pixels are sampled on a
// grid of at most 64x64 points; fully transparent pixels are skipped.
type AnalyzeColorsOperation struct{}

// NewAnalyzeColors creates an AnalyzeColorsOperation.
func NewAnalyzeColors() *AnalyzeColorsOperation {
	return &AnalyzeColorsOperation{}
}

// Apply analyzes the image and returns a copy carrying the result.
func (op *AnalyzeColorsOperation) Apply(p *pilflow.Pack) (*pilflow.Pack, error) {
	bounds := p.Image.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("analyze colors: empty image")
	}

	strideX := width / maxColorSamples
	if strideX < 1 {
		strideX = 1
	}
	strideY := height / maxColorSamples
	if strideY < 1 {
		strideY = 1
	}

	var sumR, sumG, sumB float64
	var samples int
	for y := bounds.Min.Y; y < bounds.Max.Y; y += strideY {
		for x := bounds.Min.X; x < bounds.Max.X; x += strideX {
			c, ok := colorful.MakeColor(p.Image.At(x, y))
			if !ok {
				continue
			}
			sumR += c.R
			sumG += c.G
			sumB += c.B
			samples++
		}
	}
	if samples == 0 {
		return nil, fmt.Errorf("analyze colors: image is fully transparent")
	}

	avg := colorful.Color{
		R: sumR / float64(samples),
		G: sumG / float64(samples),
		B: sumB / float64(samples),
	}
	hue, sat, lum := avg.Hsl()

	ctx, err := contexts.NewColorContext(avg.Hex(), hue, sat, lum)
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

func newAnalyzeColors(pilflow.Args) (pilflow.Transformer, error) {
	return NewAnalyzeColors(), nil
}
