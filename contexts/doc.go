// Package contexts provides the structured context types attached to Packs
// by the built-in operations: resolution classification, resize provenance,
// blur and sharpen parameters, resolution-decision presets, and color
// statistics.
//
// Every type implements the pilflow.Context contract. Constructors validate
// and refuse to build an invalid instance; code that mutates fields in place
// must call Validate before passing the instance on. Data exports fields
// under stable snake_case keys so serialized packs stay readable across
// implementations.
//
// Register wires the restore function of every type here into a registry so
// pilflow.FromJSON can rebuild them; an init function does this for the
// Default registry.
package contexts
