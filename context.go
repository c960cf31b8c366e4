package pilflow

// Context is the contract every structured context type implements. A Context
// is a named, self-validating bag of attributes attached to a Pack by the
// operation that computed it.
//
// Instances are valid from construction onward: constructors run Validate and
// refuse to return an invalid value, and any code mutating fields in place
// must call Validate again before handing the instance to anyone else.
type Context interface {
	// Name returns the canonical context name, the key used in the
	// structured context map and in both context registries. Implementations
	// typically return ContextName(c) or an equivalent constant.
	Name() string

	// Validate checks the type's invariants, returning a *ValidationError
	// naming the offending field when they are violated.
	Validate() error

	// Data exports the fields as a plain attribute map suitable for JSON
	// serialization. The returned map is a fresh copy each call.
	Data() map[string]any

	// Restore builds a new instance of the same concrete type from an
	// attribute map previously produced by Data. The receiver acts only as a
	// prototype; its own fields are not consulted. Restore validates the
	// result, so Restore(c.Data()) on a valid c always succeeds and is how
	// Pack.Copy guarantees no shared mutable state between parent and child.
	Restore(data map[string]any) (Context, error)
}

// Transformer is an operation that maps a Pack to a new Pack. It must never
// mutate its input; new state travels on the returned copy.
type Transformer interface {
	Apply(p *Pack) (*Pack, error)
}

// Producer is an operation that builds a Pack from external input, such as a
// file path or an encoded string.
type Producer interface {
	Produce() (*Pack, error)
}

// Consumer is an operation that extracts final output of type T from a Pack.
type Consumer[T any] interface {
	Consume(p *Pack) (T, error)
}
