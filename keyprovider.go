package datacraft

import (
	"math/rand/v2"
	"slices"
	"strconv"
)

// KeyProvider selects the field names included in each record, and the label of the selected group.
type KeyProvider interface {
	Next() (label string, fieldNames []string)
}

const AllFieldsGroup = "ALL"

// NewKeyProvider creates a KeyProvider for the field groups, which may be nil (all fields), a list of lists
// of field names (round-robin), or a map of numeric weights to lists of field names (weighted).
func NewKeyProvider(fieldNames []string, fieldGroups any, rnd *rand.Rand) (KeyProvider, error) {
	switch fg := fieldGroups.(type) {
	case nil:
		return &allKeyProvider{fieldNames: slices.Clone(fieldNames)}, nil
	case []any:
		if len(fg) == 0 {
			return nil, NewSpecError("field_groups list must not be empty")
		}
		var groups [][]string
		for i, item := range fg {
			group, err := fieldGroupNames(fieldNames, strconv.Itoa(i), item)
			if err != nil {
				return nil, err
			}
			groups = append(groups, group)
		}
		return &rotatingKeyProvider{groups: groups}, nil
	case map[string]any, map[any]any:
		m, _ := toMap(fg)
		if len(m) == 0 {
			return nil, NewSpecError("field_groups map must not be empty")
		}
		groups := map[string][]string{}
		labels := make([]any, 0, len(m))
		weights := make([]float64, 0, len(m))
		for _, key := range sortedKeys(m) {
			weight, err := strconv.ParseFloat(key, 64)
			if err != nil {
				return nil, NewSpecErrorf("field_groups map keys must be numeric weights, got '%s'", key)
			}
			group, err := fieldGroupNames(fieldNames, key, m[key])
			if err != nil {
				return nil, err
			}
			groups[key] = group
			labels = append(labels, key)
			weights = append(weights, weight)
		}
		selector, err := WeightedSupplier(rnd, labels, weights)
		if err != nil {
			return nil, err
		}
		return &weightedKeyProvider{groups: groups, selector: selector}, nil
	default:
		return nil, NewSpecErrorf("invalid field_groups, must be a list of lists or a map of weights: %v", fieldGroups)
	}
}

// fieldGroupNames validates that the group is a list of declared field names.
func fieldGroupNames(fieldNames []string, label string, group any) ([]string, error) {
	names, ok := toStringList(group)
	if _, isString := group.(string); isString || !ok || names == nil {
		return nil, NewSpecErrorf("field group '%s' must be a list of field names: %v", label, group)
	}
	for _, name := range names {
		if !slices.Contains(fieldNames, name) {
			return nil, NewSpecErrorf("%w: field group '%s' references '%s'", ErrUnknownField, label, name)
		}
	}
	return names, nil
}

type allKeyProvider struct {
	fieldNames []string
}

func (p *allKeyProvider) Next() (string, []string) {
	return AllFieldsGroup, p.fieldNames
}

type rotatingKeyProvider struct {
	groups [][]string
	cnt    int
}

func (p *rotatingKeyProvider) Next() (string, []string) {
	idx := p.cnt % len(p.groups)
	p.cnt++
	return strconv.Itoa(idx), p.groups[idx]
}

type weightedKeyProvider struct {
	groups   map[string][]string
	selector ValueSupplier
}

func (p *weightedKeyProvider) Next() (string, []string) {
	label, _ := p.selector.Next(0)
	key := label.(string)
	return key, p.groups[key]
}
