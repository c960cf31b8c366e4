package ops

import (
	"github.com/yanrucheng/pilflow"
	"github.com/yanrucheng/pilflow/contexts"
)

// TargetResolutionOperation records which resolution preset a later resize
// stage should target, without touching any pixels. Splitting the decision
// from the resize lets a pipeline inspect or override it in between.
type TargetResolutionOperation struct {
	Preset string
}

// NewTargetResolution creates a TargetResolutionOperation for the given
// preset; an empty preset means keep the original size.
func NewTargetResolution(preset string) *TargetResolutionOperation {
	if preset == "" {
		preset = contexts.PresetOriginal
	}
	return &TargetResolutionOperation{Preset: preset}
}

// Apply attaches a ResolutionDecisionContext carrying the preset.
func (op *TargetResolutionOperation) Apply(p *pilflow.Pack) (*pilflow.Pack, error) {
	ctx, err := contexts.NewResolutionDecisionContext(op.Preset)
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

func newTargetResolution(args pilflow.Args) (pilflow.Transformer, error) {
	preset, err := args.String("preset", contexts.PresetOriginal)
	if err != nil {
		return nil, err
	}
	return NewTargetResolution(preset), nil
}
