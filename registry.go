package datacraft

import (
	"maps"
	"slices"
)

// TypeLoader builds value suppliers for one or more field spec types.
type TypeLoader interface {
	TypeNames() []string
	Load(spec FieldSpec, loader *Loader) (ValueSupplier, error)
}

// LoadFunc is the function signature of TypeLoader.Load.
type LoadFunc func(spec FieldSpec, loader *Loader) (ValueSupplier, error)

type typeLoaderFunc struct {
	typeNames []string
	load      LoadFunc
}

// TypeLoaderFunc creates a TypeLoader for the type names from a function.
func TypeLoaderFunc(load LoadFunc, typeNames ...string) TypeLoader {
	return &typeLoaderFunc{
		typeNames: typeNames,
		load:      load,
	}
}

func (t *typeLoaderFunc) TypeNames() []string {
	return t.typeNames
}

func (t *typeLoaderFunc) Load(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
	return t.load(spec, loader)
}

// Registry holds the type loaders, casters, default configuration values and transformation stages
// used to resolve field specs.
type Registry struct {
	types    map[string]TypeLoader
	casters  map[string]Caster
	defaults map[string]any
	stages   []Stage
}

// NewRegistry creates an empty registry with only the cast and decorate stages.
func NewRegistry() *Registry {
	return &Registry{
		types:    make(map[string]TypeLoader),
		casters:  make(map[string]Caster),
		defaults: make(map[string]any),
		stages:   []Stage{CastStage(), DecorateStage()},
	}
}

// NewDefaultRegistry creates a registry with all the builtin types, casters and defaults.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	if err := RegisterBuiltins(r); err != nil {
		panic(err)
	}
	return r
}

// RegisterType registers a type loader for all its type names. Registering a name twice is an error.
func (r *Registry) RegisterType(typeLoader TypeLoader) error {
	names := typeLoader.TypeNames()
	if len(names) == 0 {
		return NewSpecError("type loader must have at least one type name")
	}
	for _, name := range names {
		if _, ok := r.types[name]; ok {
			return NewSpecErrorf("%w: type '%s'", ErrDuplicateRegistration, name)
		}
	}
	for _, name := range names {
		r.types[name] = typeLoader
	}
	return nil
}

// RegisterCaster registers a named caster. Registering a name twice is an error.
func (r *Registry) RegisterCaster(name string, caster Caster) error {
	if _, ok := r.casters[name]; ok {
		return NewSpecErrorf("%w: caster '%s'", ErrDuplicateRegistration, name)
	}
	r.casters[name] = caster
	return nil
}

func (r *Registry) TypeLoader(typeName string) (TypeLoader, bool) {
	t, ok := r.types[typeName]
	return t, ok
}

func (r *Registry) Caster(name string) (Caster, bool) {
	c, ok := r.casters[name]
	return c, ok
}

// TypeNames returns the sorted list of registered type names.
func (r *Registry) TypeNames() []string {
	return slices.Sorted(maps.Keys(r.types))
}

// CasterNames returns the sorted list of registered caster names.
func (r *Registry) CasterNames() []string {
	return slices.Sorted(maps.Keys(r.casters))
}

// SetDefault sets a default configuration value.
func (r *Registry) SetDefault(name string, value any) {
	r.defaults[name] = value
}

// Default returns a default configuration value, or nil if not set.
func (r *Registry) Default(name string) any {
	return r.defaults[name]
}

// AddStage appends a transformation stage, applied after the existing ones.
func (r *Registry) AddStage(stage Stage) {
	r.stages = append(r.stages, stage)
}

func (r *Registry) Stages() []Stage {
	return r.stages
}
