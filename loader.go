package datacraft

import (
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"
)

// Loader resolves field names into value suppliers, building each one at most once.
// It is not safe for concurrent use.
type Loader struct {
	fields     map[string]FieldSpec
	refs       map[string]FieldSpec
	parent     *Loader
	options    parseOptions
	cache      map[string]ValueSupplier
	inProgress map[string]bool
	chain      []string
}

// NewLoader creates a Loader for the fields and refs. Lookups check fields before refs.
func NewLoader(fields, refs map[string]FieldSpec, options ...ParseOption) *Loader {
	optns := newParseOptions(options...)
	return newLoader(fields, refs, optns)
}

func newLoader(fields, refs map[string]FieldSpec, options parseOptions) *Loader {
	if fields == nil {
		fields = map[string]FieldSpec{}
	}
	if refs == nil {
		refs = map[string]FieldSpec{}
	}
	return &Loader{
		fields:     fields,
		refs:       refs,
		options:    options,
		cache:      map[string]ValueSupplier{},
		inProgress: map[string]bool{},
	}
}

// Get returns the value supplier for a field or ref name, building and caching it on first access.
func (l *Loader) Get(name string) (ValueSupplier, error) {
	if supplier, ok := l.cache[name]; ok {
		return supplier, nil
	}
	if l.inProgress[name] {
		return nil, NewSpecErrorf("%w: %s", ErrCircularReference, strings.Join(append(l.chain, name), " -> "))
	}

	spec, ok := l.Spec(name)
	if !ok {
		if l.parent != nil {
			return l.parent.Get(name)
		}
		return nil, NewSpecErrorf("%w: '%s'", ErrUnknownField, name)
	}

	l.inProgress[name] = true
	l.chain = append(l.chain, name)
	defer func() {
		delete(l.inProgress, name)
		l.chain = l.chain[:len(l.chain)-1]
	}()

	supplier, err := l.Load(spec)
	if err != nil {
		return nil, NewSpecErrorf("error loading field '%s': %w", name, err)
	}

	l.cache[name] = supplier
	l.options.logger.Debug("value supplier created", "field", name, "type", spec.Type())
	return supplier, nil
}

// Load builds a value supplier for the spec without caching it, applying the registry stages.
func (l *Loader) Load(spec FieldSpec) (ValueSupplier, error) {
	typeLoader, ok := l.options.registry.TypeLoader(spec.Type())
	if !ok {
		return nil, NewSpecErrorf("%w: '%s'", ErrUnknownType, spec.Type())
	}
	supplier, err := typeLoader.Load(spec, l)
	if err != nil {
		return nil, err
	}
	for _, stage := range l.options.registry.Stages() {
		supplier, err = stage.Apply(spec, supplier, l)
		if err != nil {
			return nil, err
		}
	}
	return supplier, nil
}

// LoadValue builds a value supplier for a raw field value, like the values of a field config.
func (l *Loader) LoadValue(value any) (ValueSupplier, error) {
	spec, err := FieldSpecFrom(value)
	if err != nil {
		return nil, err
	}
	return l.Load(spec)
}

// Spec returns the field spec for a name, looking in fields and then in refs.
func (l *Loader) Spec(name string) (FieldSpec, bool) {
	if spec, ok := l.fields[name]; ok {
		return spec, true
	}
	spec, ok := l.refs[name]
	return spec, ok
}

func (l *Loader) Registry() *Registry {
	return l.options.registry
}

// Default returns a registry default configuration value.
func (l *Loader) Default(name string) any {
	return l.options.registry.Default(name)
}

func (l *Loader) Rand() *rand.Rand {
	return l.options.rnd
}

// Now returns the current time, in the configured location.
func (l *Loader) Now() time.Time {
	return l.options.now().In(l.options.location)
}

func (l *Loader) Location() *time.Location {
	return l.options.location
}

func (l *Loader) Logger() *slog.Logger {
	return l.options.logger
}
