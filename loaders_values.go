package datacraft

import (
	"math/rand/v2"

	"github.com/google/uuid"
)

func valuesTypeLoader() TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		return valuesSupplier(loader.Rand(), spec.Data())
	}, "values")
}

// valuesSupplier returns a cyclic supplier for lists, a weighted supplier for maps, and a constant otherwise.
func valuesSupplier(rnd *rand.Rand, data any) (ValueSupplier, error) {
	switch d := normalizeValue(data).(type) {
	case []any:
		return ListSupplier(d)
	case map[string]any, map[any]any:
		m, _ := toMap(d)
		if len(m) == 0 {
			return nil, NewSpecError("weighted values must have at least one entry")
		}
		return WeightedMapSupplier(rnd, m)
	default:
		return ConstantSupplier(data), nil
	}
}

func sampleTypeLoader() TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		list, ok := spec.Data().([]any)
		if !ok {
			return nil, NewSpecErrorf("data must be a list for sample spec: %v", spec)
		}
		return SampleSupplier(loader.Rand(), list)
	}, "sample")
}

// rangeBounds reads [end], [start, end] or [start, end, step] from the spec data.
func rangeBounds(spec FieldSpec) (start, end, step any, err error) {
	list, ok := spec.Data().([]any)
	if !ok || len(list) == 0 {
		return nil, nil, nil, NewSpecErrorf("data for %s spec must be a list with at least one element: %v", spec.Type(), spec)
	}
	for _, item := range list {
		if _, ok := toFloat(item); !ok {
			return nil, nil, nil, NewSpecErrorf("invalid numeric value '%v' for %s spec", item, spec.Type())
		}
	}
	switch len(list) {
	case 1:
		return 0, list[0], 1, nil
	case 2:
		return list[0], list[1], 1, nil
	default:
		return list[0], list[1], list[2], nil
	}
}

func rangeTypeLoader() TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		start, end, step, err := rangeBounds(spec)
		if err != nil {
			return nil, err
		}
		if isIntegral(start) && isIntegral(end) && isIntegral(step) {
			s, _ := toInt(start)
			e, _ := toInt(end)
			st, _ := toInt(step)
			return RangeSupplier(s, e, st)
		}
		s, _ := toFloat(start)
		e, _ := toFloat(end)
		st, _ := toFloat(step)
		return RangeSupplier(s, e, st)
	}, "range")
}

func randomRangeSupplier(spec FieldSpec, loader *Loader) (*RandomRangeSupplierData, error) {
	start, end, _, err := rangeBounds(spec)
	if err != nil {
		return nil, err
	}
	s, _ := toFloat(start)
	e, _ := toFloat(end)
	return RandomRangeSupplier(loader.Rand(), s, e)
}

func randomRangeTypeLoader() TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		return randomRangeSupplier(spec, loader)
	}, "rand_range")
}

func randomIntRangeTypeLoader() TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		supplier, err := randomRangeSupplier(spec, loader)
		if err != nil {
			return nil, err
		}
		return CastSupplier(supplier, IntCaster()), nil
	}, "rand_int_range")
}

func uuidTypeLoader() TypeLoader {
	return TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		return UUIDSupplier(loader.Rand()), nil
	}, "uuid")
}

// UUIDSupplierData returns a random version 4 UUID string, ignoring the iteration.
type UUIDSupplierData struct {
	reader randReader
}

// UUIDSupplier returns a random version 4 UUID string, drawn from the random source.
func UUIDSupplier(rnd *rand.Rand) *UUIDSupplierData {
	return &UUIDSupplierData{reader: randReader{rnd: rnd}}
}

var _ ValueSupplier = (*UUIDSupplierData)(nil)

func (s *UUIDSupplierData) Next(iteration int64) (any, error) {
	u, err := uuid.NewRandomFromReader(s.reader)
	if err != nil {
		return nil, err
	}
	return u.String(), nil
}

// randReader is an io.Reader of random bytes from a math/rand source.
type randReader struct {
	rnd *rand.Rand
}

func (r randReader) Read(p []byte) (int, error) {
	for i := 0; i < len(p); i += 8 {
		v := r.rnd.Uint64()
		for j := 0; j < 8 && i+j < len(p); j++ {
			p[i+j] = byte(v >> (8 * j))
		}
	}
	return len(p), nil
}
