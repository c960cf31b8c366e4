package ops

import (
	"github.com/disintegration/imaging"

	"github.com/yanrucheng/pilflow"
	"github.com/yanrucheng/pilflow/contexts"
)

// Default shrink bounds used when a resize has no target at all: anything
// larger than HD is brought down to fit within 1280x720.
const (
	defaultMaxWidth  = 1280
	defaultMaxHeight = 720
)

// ResizeOperation resizes the image with Lanczos resampling. The target is
// resolved in precedence order:
//
//  1. the operation's own Width/Height (0 = unset),
//  2. target_width/target_height in the Pack's legacy values,
//  3. a ResolutionDecisionContext attached by target_resolution,
//  4. the default shrink-to-HD policy for oversized images.
//
// When only one dimension is given the other is derived from the image's
// aspect ratio. A resize that resolves to no target (small image, no policy
// hit) returns a plain copy with no resize context.
type ResizeOperation struct {
	Width  int
	Height int
}

// NewResize creates a ResizeOperation; either dimension may be 0 to derive
// it from the aspect ratio, or both to fall back to context and policy.
func NewResize(width, height int) *ResizeOperation {
	return &ResizeOperation{Width: width, Height: height}
}

// Apply resolves the target dimensions, resizes, and returns a copy carrying
// the resized image, updated legacy dimension values, and a ResizeContext
// with resized set.
func (op *ResizeOperation) Apply(p *pilflow.Pack) (*pilflow.Pack, error) {
	curW, curH := p.Width(), p.Height()
	width, height := op.Width, op.Height

	if width == 0 && height == 0 {
		width = legacyInt(p, "target_width")
		height = legacyInt(p, "target_height")
	}

	if width == 0 && height == 0 {
		if dc, ok := p.GetContext("resolution_decision").(*contexts.ResolutionDecisionContext); ok {
			w, h := dc.TargetDimensions(curW, curH)
			if w == curW && h == curH {
				return p.Copy(nil, nil)
			}
			width, height = w, h
		}
	}

	if width == 0 && height == 0 {
		if curW <= defaultMaxWidth && curH <= defaultMaxHeight {
			// Already small enough, nothing to do.
			return p.Copy(nil, nil)
		}
		aspect := float64(curW) / float64(curH)
		if aspect >= 16.0/9.0 {
			width = defaultMaxWidth
		} else {
			height = defaultMaxHeight
		}
	}

	// Derive the missing dimension from the aspect ratio.
	if width == 0 {
		width = height * curW / curH
	} else if height == 0 {
		height = width * curH / curW
	}

	resized := imaging.Resize(p.Image, width, height, imaging.Lanczos)

	ctx := &contexts.ResizeContext{
		CurrentWidth:  width,
		CurrentHeight: height,
		Resized:       true,
		TargetWidth:   op.Width,
		TargetHeight:  op.Height,
		ResizeWidth:   width,
		ResizeHeight:  height,
	}
	if err := ctx.Validate(); err != nil {
		return nil, err
	}

	out, err := p.Copy(resized, nil)
	if err != nil {
		return nil, err
	}
	out.AddContext(ctx)
	return out, nil
}

func newResize(args pilflow.Args) (pilflow.Transformer, error) {
	width, err := args.Int("width", 0)
	if err != nil {
		return nil, err
	}
	height, err := args.Int("height", 0)
	if err != nil {
		return nil, err
	}
	return NewResize(width, height), nil
}

// legacyInt reads an integer from the Pack's legacy values, tolerating the
// float64 representation JSON restores produce. Anything else counts as
// unset.
func legacyInt(p *pilflow.Pack, key string) int {
	v, ok := p.Value(key)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}
