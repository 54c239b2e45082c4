package datacraft

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func TestGenerate(t *testing.T) {
	generator, err := Generate(map[string]any{
		"id:range": []any{1.0, 100.0},
		"name":     []any{"Ann", "Bob"},
	}, 3, WithSeed(1, 2))
	assert.NilError(t, err)

	var records []map[string]any
	for generator.HasNext() {
		record, err := generator.Next()
		assert.NilError(t, err)
		records = append(records, record)
	}
	assert.Equal(t, int64(3), generator.Iteration())
	assert.DeepEqual(t, []map[string]any{
		{"id": 1, "name": "Ann"},
		{"id": 2, "name": "Bob"},
		{"id": 3, "name": "Ann"},
	}, records)

	_, err = generator.Next()
	assert.ErrorIs(t, err, ErrNoMoreRecords)
}

func TestGenerateZeroIterations(t *testing.T) {
	entries, err := Entries(map[string]any{"a": 1}, 0)
	assert.NilError(t, err)
	assert.Check(t, is.Len(entries, 0))
}

func TestGenerateAll(t *testing.T) {
	ds, err := Parse(map[string]any{"a": []any{"x", "y"}})
	assert.NilError(t, err)

	var values []any
	for record, err := range ds.Generator(4).All() {
		assert.NilError(t, err)
		values = append(values, record["a"])
	}
	assert.DeepEqual(t, []any{"x", "y", "x", "y"}, values)
}

func TestGenerateAllStopsOnError(t *testing.T) {
	ds, err := Parse(map[string]any{"a": map[string]any{"type": "ref", "ref": "missing"}})
	assert.NilError(t, err)

	count := 0
	for _, err := range ds.Generator(5).All() {
		count++
		assert.ErrorIs(t, err, ErrUnknownField)
	}
	assert.Equal(t, 1, count)
}

func TestGenerateSuppliersSharedBetweenGenerators(t *testing.T) {
	ds, err := Parse(map[string]any{"id:range": []any{1.0, 10.0}})
	assert.NilError(t, err)

	first, err := ds.Entries(2)
	assert.NilError(t, err)
	second, err := ds.Entries(2)
	assert.NilError(t, err)

	assert.DeepEqual(t, []map[string]any{{"id": 1}, {"id": 2}}, first)
	assert.DeepEqual(t, []map[string]any{{"id": 3}, {"id": 4}}, second)
}

func TestGenerateSeedIsDeterministic(t *testing.T) {
	raw := map[string]any{
		"id:uuid":         map[string]any{},
		"n:rand_range":    []any{0.0, 100.0},
		"v":               map[string]any{"a": 0.3, "b": 0.7},
		"s:cc-word?cnt=6": map[string]any{},
	}
	e1, err := Entries(raw, 20, WithSeed(42, 7))
	assert.NilError(t, err)
	e2, err := Entries(raw, 20, WithSeed(42, 7))
	assert.NilError(t, err)
	assert.DeepEqual(t, e1, e2)
}

func TestFieldGroupsRoundRobin(t *testing.T) {
	records, err := Entries(map[string]any{
		"a":            "A",
		"b":            "B",
		"c":            "C",
		"field_groups": []any{[]any{"a", "b"}, []any{"c"}},
	}, 4)
	assert.NilError(t, err)
	assert.DeepEqual(t, []map[string]any{
		{"a": "A", "b": "B"},
		{"c": "C"},
		{"a": "A", "b": "B"},
		{"c": "C"},
	}, records)
}

func TestFieldGroupsWeighted(t *testing.T) {
	ds, err := Parse(map[string]any{
		"a": "A",
		"b": "B",
		"field_groups": map[string]any{
			"0.5":       []any{"a"},
			"0.5000001": []any{"a", "b"},
		},
	}, WithSeed(1, 2))
	assert.NilError(t, err)

	output := &testOutput{}
	records, err := ds.Entries(1000, WithOutput(output))
	assert.NilError(t, err)

	labels := map[string]int{}
	for i, record := range records {
		label := output.labels[i]
		labels[label]++
		switch label {
		case "0.5":
			assert.DeepEqual(t, map[string]any{"a": "A"}, record)
		case "0.5000001":
			assert.DeepEqual(t, map[string]any{"a": "A", "b": "B"}, record)
		default:
			t.Fatalf("unexpected label %s", label)
		}
	}
	assert.Assert(t, labels["0.5"] > 400 && labels["0.5000001"] > 400, "unbalanced groups: %v", labels)
}

func TestFieldGroupsInvalid(t *testing.T) {
	tests := []struct {
		name        string
		fieldGroups any
	}{
		{"undeclared field", []any{[]any{"a", "missing"}}},
		{"single string group", []any{"a"}},
		{"empty list", []any{}},
		{"non numeric weight", map[string]any{"heavy": []any{"a"}}},
		{"scalar", "a"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Parse(map[string]any{"a": 1, "field_groups": test.fieldGroups})
			AssertIsSpecError(t, err)
		})
	}

	_, err := Parse(map[string]any{"a": 1, "field_groups": []any{[]any{"missing"}}})
	assert.Assert(t, errors.Is(err, ErrUnknownField))
}

func TestRecordOutput(t *testing.T) {
	var batches [][]map[string]any
	output := RecordOutput(2, func(records []map[string]any) error {
		batches = append(batches, records)
		return nil
	})

	_, err := Entries(map[string]any{"a": []any{"x", "y", "z"}}, 3, WithOutput(output))
	assert.NilError(t, err)
	assert.DeepEqual(t, [][]map[string]any{
		{
			{"a": "x", InternalField: map[string]any{InternalIterationField: int64(1), InternalFieldGroupField: AllFieldsGroup}},
			{"a": "y", InternalField: map[string]any{InternalIterationField: int64(2), InternalFieldGroupField: AllFieldsGroup}},
		},
		{
			{"a": "z", InternalField: map[string]any{InternalIterationField: int64(3), InternalFieldGroupField: AllFieldsGroup}},
		},
	}, batches)
}

func TestRecordOutputExcludeInternal(t *testing.T) {
	var records []map[string]any
	output := RecordOutput(10, func(batch []map[string]any) error {
		records = append(records, batch...)
		return nil
	})

	_, err := Entries(map[string]any{
		"a":            "A",
		"b":            "B",
		"field_groups": []any{[]any{"a"}, []any{"b"}},
	}, 2, WithOutput(output), WithExcludeInternal(true))
	assert.NilError(t, err)
	assert.DeepEqual(t, []map[string]any{{"a": "A"}, {"b": "B"}}, records)
}

func TestFieldOutputFunc(t *testing.T) {
	var handled []string
	output := FieldOutputFunc(func(fieldName string, value any) error {
		handled = append(handled, fieldName+"="+toString(value))
		return nil
	})

	_, err := Entries(map[string]any{"b": "2", "a": "1"}, 2, WithOutput(output))
	assert.NilError(t, err)
	assert.DeepEqual(t, []string{"a=1", "b=2", "a=1", "b=2"}, handled)
}

func TestOutputErrorStopsGeneration(t *testing.T) {
	outputErr := errors.New("output failed")
	output := FieldOutputFunc(func(fieldName string, value any) error {
		return outputErr
	})

	_, err := Entries(map[string]any{"a": 1}, 3, WithOutput(output))
	assert.ErrorIs(t, err, outputErr)
}

func TestFinishedIterationsCalledOnce(t *testing.T) {
	output := &testOutput{}
	generator, err := Generate(map[string]any{"a": 1}, 2, WithOutput(output))
	assert.NilError(t, err)

	for range 4 {
		_, _ = generator.Next()
	}
	assert.Equal(t, 1, output.finished)
	assert.DeepEqual(t, []int64{1, 2}, output.iterations)
}

type testOutput struct {
	labels     []string
	iterations []int64
	finished   int
}

func (o *testOutput) Handle(fieldName string, value any) error {
	return nil
}

func (o *testOutput) FinishedRecord(iteration int64, groupLabel string, excludeInternal bool) error {
	o.labels = append(o.labels, groupLabel)
	o.iterations = append(o.iterations, iteration)
	return nil
}

func (o *testOutput) FinishedIterations() error {
	o.finished++
	return nil
}
