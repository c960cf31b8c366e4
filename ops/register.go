package ops

import (
	"github.com/yanrucheng/pilflow"
	"github.com/yanrucheng/pilflow/contexts"
)

// Register wires every built-in operation, its context types and its
// producer links into reg. Operation names are derived from the Go type
// names, so BlurOperation dispatches as "blur" and
// DecideResolutionOperation as "decide_resolution".
//
// An init function performs the same registration against pilflow.Default;
// Register exists so tests can populate a private registry.
func Register(reg *pilflow.Registry) {
	contexts.Register(reg)

	reg.RegisterOperationType(&DecideResolutionOperation{}, newDecideResolution)
	reg.RegisterOperationType(&TargetResolutionOperation{}, newTargetResolution)
	reg.RegisterOperationType(&ResizeOperation{}, newResize)
	reg.RegisterOperationType(&BlurOperation{}, newBlur)
	reg.RegisterOperationType(&SharpenOperation{}, newSharpen)
	reg.RegisterOperationType(&AnalyzeColorsOperation{}, newAnalyzeColors)

	reg.RegisterProducerOf(&contexts.ResolutionContext{}, &DecideResolutionOperation{})
	reg.RegisterProducerOf(&contexts.ResolutionDecisionContext{}, &TargetResolutionOperation{})
	reg.RegisterProducerOf(&contexts.ResizeContext{}, &ResizeOperation{})
	reg.RegisterProducerOf(&contexts.BlurContext{}, &BlurOperation{})
	reg.RegisterProducerOf(&contexts.SharpenContext{}, &SharpenOperation{})
	reg.RegisterProducerOf(&contexts.ColorContext{}, &AnalyzeColorsOperation{})
}

func init() {
	Register(pilflow.Default)
}
