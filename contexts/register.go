package contexts

import "github.com/yanrucheng/pilflow"

// Register wires the restore function of every context type in this package
// into reg, keyed by canonical context name. FromJSON needs these entries to
// rebuild structured contexts; everything else resolves types through the
// instances themselves.
func Register(reg *pilflow.Registry) {
	prototypes := []pilflow.Context{
		&ResolutionContext{},
		&ResizeContext{},
		&BlurContext{},
		&SharpenContext{},
		&ResolutionDecisionContext{},
		&ColorContext{},
	}
	for _, proto := range prototypes {
		reg.RegisterContextType(proto.Name(), proto.Restore)
	}
}

func init() {
	Register(pilflow.Default)
}
