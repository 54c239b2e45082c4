package datacraft

import (
	"strings"
)

// CombineSupplierData renders the values of all suppliers as text and joins them, or returns them as a list.
type CombineSupplierData struct {
	Suppliers []ValueSupplier
	JoinWith  string
	AsList    bool
}

func CombineSupplier(suppliers []ValueSupplier, joinWith string, asList bool) *CombineSupplierData {
	return &CombineSupplierData{Suppliers: suppliers, JoinWith: joinWith, AsList: asList}
}

var _ ValueSupplier = (*CombineSupplierData)(nil)

func (s *CombineSupplierData) Next(iteration int64) (any, error) {
	values := make([]string, 0, len(s.Suppliers))
	for _, supplier := range s.Suppliers {
		v, err := supplier.Next(iteration)
		if err != nil {
			return nil, err
		}
		values = append(values, toString(v))
	}
	if s.AsList {
		ret := make([]any, len(values))
		for i, v := range values {
			ret[i] = v
		}
		return ret, nil
	}
	return strings.Join(values, s.JoinWith), nil
}

// ListOfSuppliersData returns the list of the values of all suppliers, without conversion.
type ListOfSuppliersData struct {
	Suppliers []ValueSupplier
}

func ListOfSuppliers(suppliers []ValueSupplier) *ListOfSuppliersData {
	return &ListOfSuppliersData{Suppliers: suppliers}
}

var _ ValueSupplier = (*ListOfSuppliersData)(nil)

func (s *ListOfSuppliersData) Next(iteration int64) (any, error) {
	ret := make([]any, 0, len(s.Suppliers))
	for _, supplier := range s.Suppliers {
		v, err := supplier.Next(iteration)
		if err != nil {
			return nil, err
		}
		ret = append(ret, v)
	}
	return ret, nil
}

// WeightedRefSupplierData draws a ref name and returns the value of its supplier.
type WeightedRefSupplierData struct {
	Keys ValueSupplier
	Refs map[string]ValueSupplier
}

func WeightedRefSupplier(keys ValueSupplier, refs map[string]ValueSupplier) *WeightedRefSupplierData {
	return &WeightedRefSupplierData{Keys: keys, Refs: refs}
}

var _ ValueSupplier = (*WeightedRefSupplierData)(nil)

func (s *WeightedRefSupplierData) Next(iteration int64) (any, error) {
	key, err := s.Keys.Next(iteration)
	if err != nil {
		return nil, err
	}
	supplier, ok := s.Refs[toString(key)]
	if !ok {
		return nil, NewSpecErrorf("%w: weighted ref '%v'", ErrUnknownField, key)
	}
	return supplier.Next(iteration)
}

// Replacement replaces each occurrence of Old with the next value of New.
type Replacement struct {
	Old string
	New ValueSupplier
}

// ReplaceSupplierData renders the wrapped value as text and applies the replacements in order.
type ReplaceSupplierData struct {
	Wrapped      ValueSupplier
	Replacements []Replacement
}

func ReplaceSupplier(wrapped ValueSupplier, replacements []Replacement) *ReplaceSupplierData {
	return &ReplaceSupplierData{Wrapped: wrapped, Replacements: replacements}
}

var _ ValueSupplier = (*ReplaceSupplierData)(nil)

func (s *ReplaceSupplierData) Next(iteration int64) (any, error) {
	v, err := s.Wrapped.Next(iteration)
	if err != nil {
		return nil, err
	}
	value := toString(v)
	for _, r := range s.Replacements {
		nv, err := r.New.Next(iteration)
		if err != nil {
			return nil, err
		}
		value = strings.ReplaceAll(value, r.Old, toString(nv))
	}
	return value, nil
}

// NestedSupplierData generates a sub-record from a nested spec.
type NestedSupplierData struct {
	spec *DataSpec
}

func NestedSupplier(spec *DataSpec) *NestedSupplierData {
	return &NestedSupplierData{spec: spec}
}

var _ ValueSupplier = (*NestedSupplierData)(nil)

func (s *NestedSupplierData) Next(iteration int64) (any, error) {
	_, fieldNames := s.spec.keyProvider.Next()
	record := make(map[string]any, len(fieldNames))
	for _, name := range fieldNames {
		supplier, err := s.spec.loader.Get(name)
		if err != nil {
			return nil, err
		}
		record[name], err = supplier.Next(iteration)
		if err != nil {
			return nil, err
		}
	}
	return record, nil
}
