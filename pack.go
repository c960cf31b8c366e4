package pilflow

import (
	"fmt"
	"image"
)

// Pack is the pipeline carrier: one exclusively owned image handle, a
// structured context map, a legacy flat key/value map, and an optional
// format tag recording the source encoding ("png", "jpeg", ...).
//
// Transformations never mutate a Pack in place; they build a new one through
// Copy. Copy deep-copies every structured context by rebuilding it from its
// own exported data, so mutating a copy's context entry never affects the
// source. That invariant is what every operation in the pipeline relies on.
type Pack struct {
	// Image is the decoded image handle this Pack owns.
	Image image.Image

	// Format is the source encoding tag, empty when unknown.
	Format string

	values   map[string]any
	contexts map[string]Context
	registry *Registry
}

// New creates a Pack around img, dispatching against the Default registry.
func New(img image.Image) *Pack {
	return NewWith(Default, img)
}

// NewWith creates a Pack around img that dispatches against reg. Tests use
// this to keep registration local to the test.
func NewWith(reg *Registry, img image.Image) *Pack {
	if reg == nil {
		reg = Default
	}
	return &Pack{
		Image:    img,
		values:   make(map[string]any),
		contexts: make(map[string]Context),
		registry: reg,
	}
}

// Registry returns the registry this Pack dispatches against.
func (p *Pack) Registry() *Registry {
	return p.registry
}

// Copy builds a new Pack holding newImage (or the source's image when nil),
// the source's format tag and registry, the legacy values shallow-merged
// with updates (new keys override old), and a deep duplicate of every
// structured context.
//
// Each context is rebuilt via Restore(Data()); a valid context always
// round-trips, so an error here means a context was mutated into an invalid
// state after it was attached.
func (p *Pack) Copy(newImage image.Image, updates map[string]any) (*Pack, error) {
	img := newImage
	if img == nil {
		img = p.Image
	}
	out := NewWith(p.registry, img)
	out.Format = p.Format
	for k, v := range p.values {
		out.values[k] = v
	}
	for k, v := range updates {
		out.values[k] = v
	}
	for name, ctx := range p.contexts {
		dup, err := ctx.Restore(ctx.Data())
		if err != nil {
			return nil, fmt.Errorf("copy context %q: %w", name, err)
		}
		out.contexts[name] = dup
	}
	return out, nil
}

// AddContext attaches ctx under its canonical name, replacing any prior
// entry of that name, and merges its exported fields into the legacy values
// map so code reading the flat map keeps working.
func (p *Pack) AddContext(ctx Context) {
	p.AddContextNamed(ctx.Name(), ctx)
}

// AddContextNamed attaches ctx under an explicit name instead of its
// canonical one.
func (p *Pack) AddContextNamed(name string, ctx Context) {
	p.contexts[name] = ctx
	for k, v := range ctx.Data() {
		p.values[k] = v
	}
}

// GetContext returns the structured context stored under name, or nil when
// absent. Absence is not an error; operations that cannot proceed without a
// context return a MissingContextError themselves.
func (p *Pack) GetContext(name string) Context {
	return p.contexts[name]
}

// HasContext reports whether a structured context is stored under name.
func (p *Pack) HasContext(name string) bool {
	_, ok := p.contexts[name]
	return ok
}

// RemoveContext deletes the structured context stored under name, reporting
// whether an entry existed. The legacy values merged in by AddContext are
// left as they are.
func (p *Pack) RemoveContext(name string) bool {
	if _, ok := p.contexts[name]; !ok {
		return false
	}
	delete(p.contexts, name)
	return true
}

// Contexts returns a copy of the structured context map. The Context values
// themselves are shared; use Copy for an isolated duplicate.
func (p *Pack) Contexts() map[string]Context {
	out := make(map[string]Context, len(p.contexts))
	for name, ctx := range p.contexts {
		out[name] = ctx
	}
	return out
}

// Value returns the legacy flat value stored under key.
func (p *Pack) Value(key string) (any, bool) {
	v, ok := p.values[key]
	return v, ok
}

// SetValue stores a legacy flat value under key.
func (p *Pack) SetValue(key string, v any) {
	p.values[key] = v
}

// Values returns a copy of the legacy flat key/value map.
func (p *Pack) Values() map[string]any {
	out := make(map[string]any, len(p.values))
	for k, v := range p.values {
		out[k] = v
	}
	return out
}

// Invoke resolves name against the Pack's registry, builds the operation
// from args, and applies it to the Pack, returning the operation's new Pack.
// An unregistered name yields an UnknownOperationError; the attempted name
// is carried on the error.
func (p *Pack) Invoke(name string, args Args) (*Pack, error) {
	factory, ok := p.registry.Operation(name)
	if !ok {
		return nil, &UnknownOperationError{Name: name}
	}
	op, err := factory(args)
	if err != nil {
		return nil, fmt.Errorf("build operation %q: %w", name, err)
	}
	out, err := op.Apply(p)
	if err != nil {
		return nil, fmt.Errorf("apply operation %q: %w", name, err)
	}
	return out, nil
}

// Apply runs each Transformer in order, feeding the output of one into the
// next, and returns the final Pack. This is the typed, reflection-free
// counterpart of Invoke for callers holding concrete operations.
func (p *Pack) Apply(ops ...Transformer) (*Pack, error) {
	cur := p
	for _, op := range ops {
		next, err := op.Apply(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Width returns the image width in pixels, 0 when the Pack carries no image.
func (p *Pack) Width() int {
	if p.Image == nil {
		return 0
	}
	return p.Image.Bounds().Dx()
}

// Height returns the image height in pixels, 0 when the Pack carries no image.
func (p *Pack) Height() int {
	if p.Image == nil {
		return 0
	}
	return p.Image.Bounds().Dy()
}
