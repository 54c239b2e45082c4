package datacraft

import (
	"fmt"
	"maps"
)

// FieldSpec is the generation instructions of a single field. The set of implementations is closed.
type FieldSpec interface {
	Type() string
	Data() any
	Config() map[string]any
	isFieldSpec()
}

type fieldSpecBase struct {
	typ    string
	data   any
	config map[string]any
}

func (f fieldSpecBase) Type() string {
	return f.typ
}

func (f fieldSpecBase) Data() any {
	return f.data
}

func (f fieldSpecBase) Config() map[string]any {
	return f.config
}

func (f fieldSpecBase) isFieldSpec() {}

func (f fieldSpecBase) String() string {
	return fmt.Sprintf("FieldSpec(type=%s, data=%v, config=%v)", f.typ, f.data, f.config)
}

// BasicFieldSpec is a field spec of any type with only data and config.
type BasicFieldSpec struct {
	fieldSpecBase
}

// NewBasicFieldSpec creates a BasicFieldSpec. The config map is copied.
func NewBasicFieldSpec(typ string, data any, config map[string]any) *BasicFieldSpec {
	return &BasicFieldSpec{fieldSpecBase{typ: typ, data: data, config: copyConfig(config)}}
}

// ValuesFieldSpec creates a "values" field spec. A list cycles, a map is weighted, anything else is constant.
func ValuesFieldSpec(data any) *BasicFieldSpec {
	return NewBasicFieldSpec("values", data, nil)
}

// CombineFieldSpec joins the values of refs and fields.
type CombineFieldSpec struct {
	fieldSpecBase
	Refs   []string
	Fields []string
}

// CombineListFieldSpec produces a list with one combined value for each list of refs.
type CombineListFieldSpec struct {
	fieldSpecBase
	Refs [][]string
}

// RefFieldSpec points to the supplier of another field or ref.
type RefFieldSpec struct {
	fieldSpecBase
	Ref string
}

// RefListFieldSpec produces the list of the values of other fields or refs.
type RefListFieldSpec struct {
	fieldSpecBase
	Refs []string
}

// ReplaceFieldSpec replaces substrings of the value of a ref. Data maps the substring to its replacement spec.
type ReplaceFieldSpec struct {
	fieldSpecBase
	Ref string
}

// NestedFieldSpec generates a sub-record from its own fields.
type NestedFieldSpec struct {
	fieldSpecBase
	Fields      map[string]any
	FieldGroups any
}

var (
	_ FieldSpec = (*BasicFieldSpec)(nil)
	_ FieldSpec = (*CombineFieldSpec)(nil)
	_ FieldSpec = (*CombineListFieldSpec)(nil)
	_ FieldSpec = (*RefFieldSpec)(nil)
	_ FieldSpec = (*RefListFieldSpec)(nil)
	_ FieldSpec = (*ReplaceFieldSpec)(nil)
	_ FieldSpec = (*NestedFieldSpec)(nil)
)

// FieldSpecFrom builds a field spec from a canonical field value. Objects with a "type" are dispatched by
// type, objects without one are weighted values, lists are cyclic values and scalars are constants.
func FieldSpecFrom(value any) (FieldSpec, error) {
	switch v := normalizeValue(value).(type) {
	case map[string]any, map[any]any:
		m, _ := toMap(v)
		if t, ok := m["type"]; ok && t != nil {
			ts, ok := t.(string)
			if !ok || ts == "" {
				return nil, NewSpecErrorf("field spec type must be a non-empty string: %v", m)
			}
			return FieldSpecForType(ts, m)
		}
		return ValuesFieldSpec(m), nil
	case []any:
		return ValuesFieldSpec(v), nil
	default:
		return ValuesFieldSpec(v), nil
	}
}

// FieldSpecForType builds a field spec of the type from its raw object.
func FieldSpecForType(typ string, raw map[string]any) (FieldSpec, error) {
	var config map[string]any
	if c, ok := raw["config"]; ok && c != nil {
		cm, ok := toMap(c)
		if !ok {
			return nil, NewSpecErrorf("config must be an object for '%s' spec: %v", typ, raw)
		}
		config = copyConfig(cm)
	} else {
		config = map[string]any{}
	}
	base := fieldSpecBase{typ: typ, data: raw["data"], config: config}

	switch typ {
	case "combine":
		refs, err := parseListField("refs", raw)
		if err != nil {
			return nil, err
		}
		fields, err := parseListField("fields", raw)
		if err != nil {
			return nil, err
		}
		if len(refs) == 0 && len(fields) == 0 {
			return nil, NewSpecErrorf("need to specify one of fields or refs for combine spec: %v", raw)
		}
		base.data = nil
		return &CombineFieldSpec{fieldSpecBase: base, Refs: refs, Fields: fields}, nil
	case "combine-list":
		list, ok := raw["refs"].([]any)
		if !ok || len(list) == 0 {
			return nil, NewSpecErrorf(`refs must be a non-empty list of lists, i.e [["ONE", "TWO"]]: %v`, raw)
		}
		var refs [][]string
		for _, item := range list {
			if _, isList := item.([]any); !isList {
				return nil, NewSpecErrorf(`refs must be a non-empty list of lists, i.e [["ONE", "TWO"]]: %v`, raw)
			}
			inner, ok := toStringList(item)
			if !ok || len(inner) == 0 {
				return nil, NewSpecErrorf("refs inner lists must be non-empty lists of strings: %v", raw)
			}
			refs = append(refs, inner)
		}
		base.data = nil
		return &CombineListFieldSpec{fieldSpecBase: base, Refs: refs}, nil
	case "ref":
		ref := raw["ref"]
		if ref == nil {
			ref = raw["data"]
		}
		if ref == nil {
			return nil, NewSpecErrorf("one of ref or data must be defined for ref specs: %v", raw)
		}
		base.data = nil
		return &RefFieldSpec{fieldSpecBase: base, Ref: toString(ref)}, nil
	case "ref_list":
		refs := raw["refs"]
		if refs == nil {
			refs = raw["data"]
		}
		if refs == nil {
			return nil, NewSpecErrorf("one of refs or data must be defined for ref_list specs: %v", raw)
		}
		list, ok := toStringList(refs)
		if !ok {
			return nil, NewSpecErrorf("refs or data must be a string or a list of strings: %v", raw)
		}
		base.data = nil
		return &RefListFieldSpec{fieldSpecBase: base, Refs: list}, nil
	case "replace":
		ref, data := raw["ref"], raw["data"]
		if ref == nil || data == nil {
			return nil, NewSpecErrorf("ref and data must be defined for replace specs: %v", raw)
		}
		return &ReplaceFieldSpec{fieldSpecBase: base, Ref: toString(ref)}, nil
	case "nested":
		fields, ok := toMap(raw["fields"])
		if !ok {
			return nil, NewSpecErrorf("fields must be an object for nested specs: %v", raw)
		}
		base.data = nil
		return &NestedFieldSpec{fieldSpecBase: base, Fields: fields, FieldGroups: raw["field_groups"]}, nil
	default:
		return &BasicFieldSpec{fieldSpecBase: base}, nil
	}
}

func parseListField(key string, raw map[string]any) ([]string, error) {
	v, ok := raw[key]
	if !ok || v == nil {
		return nil, nil
	}
	list, ok := toStringList(v)
	if !ok {
		return nil, NewSpecErrorf("%s must be a string or a list of strings", key)
	}
	return list, nil
}

func copyConfig(config map[string]any) map[string]any {
	if config == nil {
		return map[string]any{}
	}
	return maps.Clone(config)
}
