package pilflow

import (
	"sort"
	"sync"
)

// RestoreFunc rebuilds a Context from its exported attribute map. The
// registry stores one per context type so FromJSON can reconstruct
// structured contexts by name.
type RestoreFunc func(data map[string]any) (Context, error)

// Registry maps operation names to factories, context names to restore
// functions, and context names to the set of operations known to produce
// them. It is safe for concurrent use, though the intended pattern is a
// load-time registration phase followed by read-only dispatch.
//
// Most programs use the package-level Default registry, populated by init
// functions in the ops package. Tests that need isolation construct their
// own Registry and hand it to NewWith / FromJSONWith.
type Registry struct {
	mu           sync.RWMutex
	operations   map[string]Factory
	contextTypes map[string]RestoreFunc
	producers    map[string]map[string]struct{}
}

// NewRegistry creates an empty Registry ready for registration.
func NewRegistry() *Registry {
	return &Registry{
		operations:   make(map[string]Factory),
		contextTypes: make(map[string]RestoreFunc),
		producers:    make(map[string]map[string]struct{}),
	}
}

// Default is the process-wide registry used by Pack values constructed
// without an explicit registry.
var Default = NewRegistry()

// RegisterOperation maps name to factory. A later registration under the
// same name replaces the earlier one; replacement is assumed intentional.
func (r *Registry) RegisterOperation(name string, factory Factory) {
	r.mu.Lock()
	r.operations[name] = factory
	r.mu.Unlock()
}

// RegisterOperationType registers factory under the canonical name derived
// from proto's Go type name (see OperationName) and returns that name.
func (r *Registry) RegisterOperationType(proto Transformer, factory Factory) string {
	name := OperationName(proto)
	r.RegisterOperation(name, factory)
	return name
}

// Operation resolves an operation name to its factory.
func (r *Registry) Operation(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.operations[name]
	return f, ok
}

// Operations returns the sorted names of all registered operations.
func (r *Registry) Operations() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.operations))
	for name := range r.operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RegisterContextType maps a context name to the function that rebuilds
// instances of it from exported data. Only deserialization needs this;
// contexts attached in-process carry their own Restore method.
func (r *Registry) RegisterContextType(name string, restore RestoreFunc) {
	r.mu.Lock()
	r.contextTypes[name] = restore
	r.mu.Unlock()
}

// ContextType resolves a context name to its restore function.
func (r *Registry) ContextType(name string) (RestoreFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.contextTypes[name]
	return f, ok
}

// RegisterProducer records that the named operation produces the named
// context. The producer set only grows; registering a second producer for
// the same context keeps both. This is pure bookkeeping for diagnostics and
// has no effect on dispatch.
func (r *Registry) RegisterProducer(contextName, operationName string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	set, ok := r.producers[contextName]
	if !ok {
		set = make(map[string]struct{})
		r.producers[contextName] = set
	}
	set[operationName] = struct{}{}
}

// RegisterProducerOf links proto's canonical operation name as a producer of
// ctx's canonical context name.
func (r *Registry) RegisterProducerOf(ctx Context, proto Transformer) {
	r.RegisterProducer(ctx.Name(), OperationName(proto))
}

// Producers returns the sorted operation names registered as producers of
// the named context. The slice is a copy; mutating it does not affect the
// registry.
func (r *Registry) Producers(contextName string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	set := r.producers[contextName]
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reset clears all three tables. This is primarily useful for test
// isolation when tests share the Default registry.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.operations = make(map[string]Factory)
	r.contextTypes = make(map[string]RestoreFunc)
	r.producers = make(map[string]map[string]struct{})
}

// RegisterOperation maps name to factory in the Default registry.
func RegisterOperation(name string, factory Factory) {
	Default.RegisterOperation(name, factory)
}

// RegisterOperationType registers factory in the Default registry under
// proto's derived canonical name.
func RegisterOperationType(proto Transformer, factory Factory) string {
	return Default.RegisterOperationType(proto, factory)
}

// RegisterContextType maps a context name to its restore function in the
// Default registry.
func RegisterContextType(name string, restore RestoreFunc) {
	Default.RegisterContextType(name, restore)
}

// RegisterProducer records a producer link in the Default registry.
func RegisterProducer(contextName, operationName string) {
	Default.RegisterProducer(contextName, operationName)
}
