package datacraft

import (
	"errors"
	"fmt"
	"maps"
	"strings"
)

// SpecBuilder builds a canonical spec using a fluent API. Errors are accumulated and returned by Err
// and Build.
type SpecBuilder struct {
	fields      map[string]any
	refs        map[string]any
	fieldGroups any
	err         error
}

// NewSpecBuilder creates a new SpecBuilder.
func NewSpecBuilder() *SpecBuilder {
	return &SpecBuilder{
		fields: map[string]any{},
		refs:   map[string]any{},
	}
}

// Err returns any error generated while building.
func (b *SpecBuilder) Err() error {
	return b.err
}

// Field starts the definition of an output field.
func (b *SpecBuilder) Field(name string) *FieldBuilder {
	return &FieldBuilder{builder: b, name: name}
}

// Ref starts the definition of a ref, which can be referenced by other fields but is not output.
func (b *SpecBuilder) Ref(name string) *FieldBuilder {
	return &FieldBuilder{builder: b, name: name, isRef: true}
}

// FieldByKey defines a field from a key in the "name:type?param=value" format. The type is required.
func (b *SpecBuilder) FieldByKey(key string, data any, config map[string]any) *SpecBuilder {
	return b.byKey(key, data, config, false)
}

// RefByKey defines a ref from a key in the "name:type?param=value" format. The type is required.
func (b *SpecBuilder) RefByKey(key string, data any, config map[string]any) *SpecBuilder {
	return b.byKey(key, data, config, true)
}

// FieldGroups sets the field groups, as a list of lists of field names or a map of weights to lists.
func (b *SpecBuilder) FieldGroups(fieldGroups any) *SpecBuilder {
	b.fieldGroups = normalizeValue(fieldGroups)
	return b
}

// ToSpec returns the built canonical spec.
func (b *SpecBuilder) ToSpec() (map[string]any, error) {
	if b.err != nil {
		return nil, b.err
	}
	ret := maps.Clone(b.fields)
	if len(b.refs) > 0 {
		ret["refs"] = maps.Clone(b.refs)
	}
	if b.fieldGroups != nil {
		ret["field_groups"] = b.fieldGroups
	}
	return ret, nil
}

// Build builds the DataSpec.
func (b *SpecBuilder) Build(options ...ParseOption) (*DataSpec, error) {
	spec, err := b.ToSpec()
	if err != nil {
		return nil, err
	}
	return NewDataSpec(spec, options...)
}

func (b *SpecBuilder) byKey(key string, data any, config map[string]any, isRef bool) *SpecBuilder {
	if !strings.Contains(key, ":") {
		b.addError(NewSpecErrorf("key '%s' must be in the name:type format", key))
		return b
	}
	name, typ, params, err := ParseKey(key)
	if err != nil {
		b.addError(err)
		return b
	}
	mergedConfig := maps.Clone(config)
	if mergedConfig == nil {
		mergedConfig = map[string]any{}
	}
	for k, v := range params {
		mergedConfig[k] = v
	}
	b.add(name, typ, data, mergedConfig, isRef)
	return b
}

func (b *SpecBuilder) add(name string, typ string, data any, config map[string]any, isRef bool, extra ...any) {
	fieldSpec := map[string]any{"type": typ}
	if data != nil {
		fieldSpec["data"] = normalizeValue(data)
	}
	if len(config) > 0 {
		fieldSpec["config"] = normalizeValue(config)
	}
	for i := 0; i+1 < len(extra); i += 2 {
		fieldSpec[extra[i].(string)] = normalizeValue(extra[i+1])
	}
	if _, err := FieldSpecFrom(fieldSpec); err != nil {
		b.addError(fmt.Errorf("invalid spec for '%s': %w", name, err))
		return
	}
	if isRef {
		b.refs[name] = fieldSpec
	} else {
		b.fields[name] = fieldSpec
	}
}

func (b *SpecBuilder) addError(err error) {
	b.err = errors.Join(b.err, err)
}

// FieldBuilder defines the spec of a single field or ref.
type FieldBuilder struct {
	builder *SpecBuilder
	name    string
	isRef   bool
}

// Spec defines a spec of any type.
func (f *FieldBuilder) Spec(typ string, data any, config map[string]any) *SpecBuilder {
	f.builder.add(f.name, typ, data, config, f.isRef)
	return f.builder
}

// Values defines a constant, a cyclic list, or a weighted map of values.
func (f *FieldBuilder) Values(data any, config map[string]any) *SpecBuilder {
	return f.Spec("values", data, config)
}

// Range defines a range from start to end, inclusive.
func (f *FieldBuilder) Range(start, end, step int, config map[string]any) *SpecBuilder {
	return f.Spec("range", []any{start, end, step}, config)
}

func (f *FieldBuilder) RandRange(start, end float64, config map[string]any) *SpecBuilder {
	return f.Spec("rand_range", []any{start, end}, config)
}

func (f *FieldBuilder) RandIntRange(start, end int, config map[string]any) *SpecBuilder {
	return f.Spec("rand_int_range", []any{start, end}, config)
}

func (f *FieldBuilder) Sample(data []any, config map[string]any) *SpecBuilder {
	return f.Spec("sample", data, config)
}

func (f *FieldBuilder) UUID(config map[string]any) *SpecBuilder {
	return f.Spec("uuid", nil, config)
}

// Combine joins the values of the refs.
func (f *FieldBuilder) Combine(refs []string, config map[string]any) *SpecBuilder {
	f.builder.add(f.name, "combine", nil, config, f.isRef, "refs", refs)
	return f.builder
}

// CombineList produces a list with one combined value for each list of refs.
func (f *FieldBuilder) CombineList(refs [][]string, config map[string]any) *SpecBuilder {
	list := make([]any, len(refs))
	for i, r := range refs {
		list[i] = normalizeValue(r)
	}
	f.builder.add(f.name, "combine-list", nil, config, f.isRef, "refs", list)
	return f.builder
}

// RefTo points to another field or ref.
func (f *FieldBuilder) RefTo(ref string, config map[string]any) *SpecBuilder {
	f.builder.add(f.name, "ref", nil, config, f.isRef, "ref", ref)
	return f.builder
}

func (f *FieldBuilder) RefList(refs []string, config map[string]any) *SpecBuilder {
	f.builder.add(f.name, "ref_list", nil, config, f.isRef, "refs", refs)
	return f.builder
}

// WeightedRef selects one of the refs by weight on each iteration.
func (f *FieldBuilder) WeightedRef(weights map[string]any, config map[string]any) *SpecBuilder {
	return f.Spec("weighted_ref", weights, config)
}

// Replace replaces substrings of the value of ref.
func (f *FieldBuilder) Replace(ref string, replacements map[string]any, config map[string]any) *SpecBuilder {
	f.builder.add(f.name, "replace", replacements, config, f.isRef, "ref", ref)
	return f.builder
}

// Nested defines a sub-record from its own fields.
func (f *FieldBuilder) Nested(fields map[string]any, config map[string]any) *SpecBuilder {
	f.builder.add(f.name, "nested", nil, config, f.isRef, "fields", fields)
	return f.builder
}

func (f *FieldBuilder) Date(config map[string]any) *SpecBuilder {
	return f.Spec("date", nil, config)
}

func (f *FieldBuilder) DateISO(config map[string]any) *SpecBuilder {
	return f.Spec("date.iso", nil, config)
}

func (f *FieldBuilder) DateISOMillis(config map[string]any) *SpecBuilder {
	return f.Spec("date.iso.ms", nil, config)
}

func (f *FieldBuilder) DateISOMicros(config map[string]any) *SpecBuilder {
	return f.Spec("date.iso.us", nil, config)
}

func (f *FieldBuilder) DateEpoch(config map[string]any) *SpecBuilder {
	return f.Spec("date.epoch", nil, config)
}

func (f *FieldBuilder) DateEpochMillis(config map[string]any) *SpecBuilder {
	return f.Spec("date.epoch.ms", nil, config)
}

func (f *FieldBuilder) GeoLat(config map[string]any) *SpecBuilder {
	return f.Spec("geo.lat", nil, config)
}

func (f *FieldBuilder) GeoLong(config map[string]any) *SpecBuilder {
	return f.Spec("geo.long", nil, config)
}

func (f *FieldBuilder) GeoPair(config map[string]any) *SpecBuilder {
	return f.Spec("geo.pair", nil, config)
}

func (f *FieldBuilder) IP(config map[string]any) *SpecBuilder {
	return f.Spec("ip", nil, config)
}

// CharClass samples characters from named classes or literal characters.
func (f *FieldBuilder) CharClass(data any, config map[string]any) *SpecBuilder {
	return f.Spec("char_class", data, config)
}

// CharClassAbbrev samples characters from a named class using the "cc-<class>" type.
func (f *FieldBuilder) CharClassAbbrev(class string, config map[string]any) *SpecBuilder {
	if _, ok := CharClasses[class]; !ok {
		f.builder.addError(NewSpecErrorf("unknown character class '%s'", class))
		return f.builder
	}
	return f.Spec("cc-"+class, nil, config)
}
