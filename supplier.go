package datacraft

import (
	"math/rand/v2"
)

// ValueSupplier produces the value of a field for each iteration. Iterations start at 1.
// Suppliers may keep internal state and are not safe for concurrent use.
type ValueSupplier interface {
	Next(iteration int64) (any, error)
}

// ValueSupplierFunc is a functional implementation of ValueSupplier.
type ValueSupplierFunc func(iteration int64) (any, error)

func (f ValueSupplierFunc) Next(iteration int64) (any, error) {
	return f(iteration)
}

// ConstantSupplierData always returns the same value.
type ConstantSupplierData struct {
	Value any
}

// ConstantSupplier always returns the same value.
func ConstantSupplier(value any) *ConstantSupplierData {
	return &ConstantSupplierData{Value: value}
}

var _ ValueSupplier = (*ConstantSupplierData)(nil)

func (s *ConstantSupplierData) Next(iteration int64) (any, error) {
	return s.Value, nil
}

// ListSupplierData cycles through a list of values using the iteration index.
type ListSupplierData struct {
	Values []any
}

// ListSupplier cycles through a list of values using the iteration index.
func ListSupplier(values []any) (*ListSupplierData, error) {
	if len(values) == 0 {
		return nil, NewSpecError("list supplier requires at least one value")
	}
	return &ListSupplierData{Values: values}, nil
}

var _ ValueSupplier = (*ListSupplierData)(nil)

func (s *ListSupplierData) Next(iteration int64) (any, error) {
	idx := (iteration - 1) % int64(len(s.Values))
	if idx < 0 {
		idx += int64(len(s.Values))
	}
	return s.Values[idx], nil
}

// WeightedSupplierData selects one of the candidates at random, proportionally to its weight.
type WeightedSupplierData struct {
	candidates  []any
	cumulative  []float64
	maxWeighted any
	rnd         *rand.Rand
}

// WeightedSupplier selects one of the candidates at random, proportionally to its weight.
// Weights don't need to sum to 1, they are normalized.
func WeightedSupplier(rnd *rand.Rand, candidates []any, weights []float64) (*WeightedSupplierData, error) {
	if len(candidates) == 0 || len(candidates) != len(weights) {
		return nil, NewSpecError("weighted supplier requires at least one candidate with a weight")
	}
	var total float64
	maxIdx := 0
	for i, w := range weights {
		if w < 0 {
			return nil, NewSpecErrorf("negative weight %v for '%v'", w, candidates[i])
		}
		total += w
		if w > weights[maxIdx] {
			maxIdx = i
		}
	}
	if total <= 0 {
		return nil, NewSpecError("weighted supplier requires a positive total weight")
	}
	cumulative := make([]float64, len(weights))
	var acc float64
	for i, w := range weights {
		acc += w / total
		cumulative[i] = acc
	}
	return &WeightedSupplierData{
		candidates:  candidates,
		cumulative:  cumulative,
		maxWeighted: candidates[maxIdx],
		rnd:         rnd,
	}, nil
}

// WeightedMapSupplier creates a WeightedSupplier from a map of candidate to weight, in sorted key order.
func WeightedMapSupplier(rnd *rand.Rand, data map[string]any) (*WeightedSupplierData, error) {
	keys := sortedKeys(data)
	candidates := make([]any, 0, len(keys))
	weights := make([]float64, 0, len(keys))
	for _, key := range keys {
		w, ok := toFloat(data[key])
		if !ok {
			return nil, NewSpecErrorf("weight for '%s' is not a number: '%v'", key, data[key])
		}
		candidates = append(candidates, key)
		weights = append(weights, w)
	}
	return WeightedSupplier(rnd, candidates, weights)
}

var _ ValueSupplier = (*WeightedSupplierData)(nil)

func (s *WeightedSupplierData) Next(iteration int64) (any, error) {
	r := s.rnd.Float64()
	for i, c := range s.cumulative {
		if r < c {
			return s.candidates[i], nil
		}
	}
	return s.maxWeighted, nil
}

// SampleSupplierData picks a random element of the list on each call, with replacement.
type SampleSupplierData struct {
	Values []any
	rnd    *rand.Rand
}

func SampleSupplier(rnd *rand.Rand, values []any) (*SampleSupplierData, error) {
	if len(values) == 0 {
		return nil, NewSpecError("sample supplier requires at least one value")
	}
	return &SampleSupplierData{Values: values, rnd: rnd}, nil
}

var _ ValueSupplier = (*SampleSupplierData)(nil)

func (s *SampleSupplierData) Next(iteration int64) (any, error) {
	return s.Values[s.rnd.IntN(len(s.Values))], nil
}
