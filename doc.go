// Package pilflow implements a chainable image-transformation pipeline built
// around named operations and typed, self-validating context data.
//
// The pipeline value is a Pack: an image handle plus a structured context map
// (context name -> Context instance) and a legacy flat key/value map. Packs
// are never mutated in place by a transformation; every operation returns a
// new Pack produced by Copy, which deep-copies every structured context by
// rebuilding it from its own exported data. Mutating a copy's context can
// therefore never leak into the source Pack.
//
// # Registration and Dispatch
//
// Operations are registered by name in a Registry, either the package-level
// Default registry (populated by init functions in the ops package) or an
// explicitly constructed one for test isolation. Pack.Invoke resolves an
// operation name against the registry, builds the operation from its call
// arguments, and applies it:
//
//	pack, err := pilflow.FromFile("photo.jpg", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pack, err = pack.Invoke("resize", pilflow.Args{"width": 800})
//
// Typed Transformers can be chained directly through Pack.Apply when the
// fluent, reflection-free surface is preferred:
//
//	pack, err = pack.Apply(ops.NewDecideResolution(), ops.NewResize(800, 0))
//
// Any code that runs before the first pipeline can register new named stages
// without touching the Pack definition; an unregistered name fails with an
// UnknownOperationError.
//
// # Context Data
//
// Operations communicate through Context values rather than ad hoc maps. A
// Context validates itself at construction, knows its canonical name, exports
// its fields as a plain map, and can rebuild a fresh instance from such a map
// (the Restore method, which is what gives Copy its deep-copy guarantee).
// The registry additionally tracks which operations produce which context
// types, so diagnostics can suggest the operation to run when a required
// context is missing.
//
// # Serialization
//
// A Pack round-trips through JSON: the image as a base64 data URI, the legacy
// values verbatim, and each structured context as its exported field map.
// Restoring structured contexts requires their types to be registered;
// entries with no registered type are skipped.
//
// # Concurrency
//
// Registries are safe for concurrent use. Pack values are not: the
// copy-on-write discipline makes concurrent reads of distinct Packs safe, but
// callers transforming the same source Pack from multiple goroutines must
// serialize externally.
package pilflow
