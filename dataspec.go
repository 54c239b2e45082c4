package datacraft

// DataSpec is a parsed spec, ready to generate records.
type DataSpec struct {
	fields      map[string]FieldSpec
	refs        map[string]FieldSpec
	fieldNames  []string
	keyProvider KeyProvider
	loader      *Loader
	options     parseOptions
}

// Parse preprocesses a raw spec and builds a DataSpec from it.
func Parse(raw any, options ...ParseOption) (*DataSpec, error) {
	canonical, err := Preprocess(raw)
	if err != nil {
		return nil, err
	}
	return NewDataSpec(canonical, options...)
}

// NewDataSpec builds a DataSpec from a canonical spec. The "refs" key contains specs that can be referenced
// but are not output, and "field_groups" selects which fields are output on each record.
func NewDataSpec(canonical map[string]any, options ...ParseOption) (*DataSpec, error) {
	return newDataSpec(canonical, newParseOptions(options...))
}

func newDataSpec(canonical map[string]any, optns parseOptions) (*DataSpec, error) {
	ds := &DataSpec{
		fields:  map[string]FieldSpec{},
		refs:    map[string]FieldSpec{},
		options: optns,
	}

	for name, value := range canonical {
		switch name {
		case "refs":
			refs, ok := toMap(value)
			if !ok {
				return nil, NewSpecErrorf("refs must be an object: %v", value)
			}
			for refName, refValue := range refs {
				spec, err := FieldSpecFrom(refValue)
				if err != nil {
					return nil, NewSpecErrorf("error parsing ref '%s': %w", refName, err)
				}
				ds.refs[refName] = spec
			}
		case "field_groups":
		default:
			spec, err := FieldSpecFrom(value)
			if err != nil {
				return nil, NewSpecErrorf("error parsing field '%s': %w", name, err)
			}
			ds.fields[name] = spec
		}
	}
	ds.fieldNames = sortedKeys(ds.fields)

	keyProvider, err := NewKeyProvider(ds.fieldNames, canonical["field_groups"], optns.rnd)
	if err != nil {
		return nil, err
	}
	ds.keyProvider = keyProvider
	ds.loader = newLoader(ds.fields, ds.refs, optns)

	optns.logger.Debug("spec parsed", "fields", len(ds.fields), "refs", len(ds.refs))
	return ds, nil
}

// FieldNames returns the sorted names of the output fields.
func (d *DataSpec) FieldNames() []string {
	return d.fieldNames
}

// RefNames returns the sorted names of the refs.
func (d *DataSpec) RefNames() []string {
	return sortedKeys(d.refs)
}

// Field returns the spec of a field or ref.
func (d *DataSpec) Field(name string) (FieldSpec, bool) {
	return d.loader.Spec(name)
}

// Supplier returns the resolved value supplier of a field or ref.
func (d *DataSpec) Supplier(name string) (ValueSupplier, error) {
	return d.loader.Get(name)
}

func (d *DataSpec) Loader() *Loader {
	return d.loader
}

// Generator returns a generator of the amount of records. All generators of a DataSpec share the same
// value suppliers.
func (d *DataSpec) Generator(iterations int64, options ...RecordOption) *Generator {
	var optns recordOptions
	for _, opt := range options {
		opt.apply(&optns)
	}
	return &Generator{
		spec:       d,
		iterations: iterations,
		options:    optns,
	}
}

// Entries generates the amount of records.
func (d *DataSpec) Entries(iterations int64, options ...RecordOption) ([]map[string]any, error) {
	var ret []map[string]any
	for record, err := range d.Generator(iterations, options...).All() {
		if err != nil {
			return nil, err
		}
		ret = append(ret, record)
	}
	return ret, nil
}
