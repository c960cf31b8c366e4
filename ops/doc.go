// Package ops implements the built-in pipeline operations: resolution
// classification, resolution-decision presets, resizing, blur, sharpen and
// color analysis.
//
// Every operation is a one-shot pilflow.Transformer: it reads what it needs
// from the incoming Pack and its own parameters, makes exactly one call into
// the underlying imaging library, and returns a copy of the Pack carrying
// the transformed image and a structured context describing what happened.
//
// Importing this package registers all operations, their context types and
// their producer links in the pilflow.Default registry, so named dispatch
// works immediately:
//
//	import _ "github.com/yanrucheng/pilflow/ops"
//
//	pack, err = pack.Invoke("blur", pilflow.Args{"radius": 1.5})
//
// Tests that want isolation call Register with their own registry instead.
package ops
