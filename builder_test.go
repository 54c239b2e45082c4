package datacraft

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func TestSpecBuilder(t *testing.T) {
	spec, err := NewSpecBuilder().
		Field("id").Range(1, 10, 1, nil).
		Field("name").Combine([]string{"first", "last"}, map[string]any{"join_with": " "}).
		Ref("first").Values([]string{"Ann", "Bob"}, nil).
		Ref("last").Values("Smith", nil).
		FieldGroups([][]string{{"id"}, {"id", "name"}}).
		ToSpec()
	assert.NilError(t, err)

	expected, err := Preprocess(map[string]any{
		"id:range": []any{1, 10, 1},
		"name": map[string]any{
			"type":   "combine",
			"refs":   []any{"first", "last"},
			"config": map[string]any{"join_with": " "},
		},
		"refs": map[string]any{
			"first": []any{"Ann", "Bob"},
			"last":  "Smith",
		},
		"field_groups": []any{[]any{"id"}, []any{"id", "name"}},
	})
	assert.NilError(t, err)

	if diff := cmp.Diff(expected, spec); diff != "" {
		t.Fatalf("unexpected spec (-want +got):\n%s", diff)
	}
}

func TestSpecBuilderBuild(t *testing.T) {
	ds, err := NewSpecBuilder().
		Field("id").Range(1, 10, 1, nil).
		Field("name").Combine([]string{"first", "last"}, map[string]any{"join_with": " "}).
		Field("code").RandIntRange(10, 11, map[string]any{"prefix": "C"}).
		Ref("first").Values([]string{"Ann", "Bob"}, nil).
		Ref("last").Values("Smith", nil).
		Build(WithSeed(1, 2))
	assert.NilError(t, err)
	assert.DeepEqual(t, []string{"code", "id", "name"}, ds.FieldNames())
	assert.DeepEqual(t, []string{"first", "last"}, ds.RefNames())

	records, err := ds.Entries(2)
	assert.NilError(t, err)
	assert.DeepEqual(t, []map[string]any{
		{"id": 1, "name": "Ann Smith", "code": "C10"},
		{"id": 2, "name": "Bob Smith", "code": "C10"},
	}, records)
}

func TestSpecBuilderTypedData(t *testing.T) {
	ds, err := NewSpecBuilder().
		Field("n").Values([]int{1, 2, 3}, nil).
		Field("f").Values([]float64{0.5, 1.5}, nil).
		Field("w").Values(map[string]int{"only": 1}, nil).
		Build(WithSeed(1, 2))
	assert.NilError(t, err)

	records, err := ds.Entries(4)
	assert.NilError(t, err)
	assert.DeepEqual(t, []map[string]any{
		{"n": 1, "f": 0.5, "w": "only"},
		{"n": 2, "f": 1.5, "w": "only"},
		{"n": 3, "f": 0.5, "w": "only"},
		{"n": 1, "f": 1.5, "w": "only"},
	}, records)
}

func TestSpecBuilderByKey(t *testing.T) {
	spec, err := NewSpecBuilder().
		FieldByKey("n:char_class?count=4", "digits", map[string]any{"join_with": "-"}).
		RefByKey("r:uuid", nil, nil).
		ToSpec()
	assert.NilError(t, err)
	assert.DeepEqual(t, map[string]any{
		"n": map[string]any{
			"type":   "char_class",
			"data":   "digits",
			"config": map[string]any{"count": "4", "join_with": "-"},
		},
		"refs": map[string]any{
			"r": map[string]any{"type": "uuid"},
		},
	}, spec)
}

func TestSpecBuilderAllTypes(t *testing.T) {
	ds, err := NewSpecBuilder().
		Field("sample").Sample([]any{1, 2}, nil).
		Field("rand").RandRange(0, 1, nil).
		Field("uuid").UUID(nil).
		Field("ref").RefTo("base", nil).
		Field("ref_list").RefList([]string{"base", "base"}, nil).
		Field("weighted").WeightedRef(map[string]any{"base": 1}, nil).
		Field("replace").Replace("base", map[string]any{"a": "o"}, nil).
		Field("combine_list").CombineList([][]string{{"base"}, {"base", "base"}}, nil).
		Field("nested").Nested(map[string]any{"x": 1}, nil).
		Field("date").Date(nil).
		Field("date_iso").DateISO(nil).
		Field("date_iso_ms").DateISOMillis(nil).
		Field("date_iso_us").DateISOMicros(nil).
		Field("epoch").DateEpoch(nil).
		Field("epoch_ms").DateEpochMillis(nil).
		Field("lat").GeoLat(nil).
		Field("long").GeoLong(nil).
		Field("pair").GeoPair(nil).
		Field("ip").IP(nil).
		Field("cc").CharClass("lower", map[string]any{"count": 3}).
		Field("cc_abbrev").CharClassAbbrev("digits", map[string]any{"count": 2}).
		Field("spec").Spec("values", "v", nil).
		Ref("base").Values("banana", nil).
		Build(WithSeed(1, 2))
	assert.NilError(t, err)

	records, err := ds.Entries(3)
	assert.NilError(t, err)
	for _, record := range records {
		assert.Equal(t, 22, len(record))
		assert.Equal(t, "banana", record["ref"])
		assert.Equal(t, "bonono", record["replace"])
		assert.DeepEqual(t, []any{"banana", "bananabanana"}, record["combine_list"])
		assert.DeepEqual(t, map[string]any{"x": 1}, record["nested"])
		assert.Equal(t, 3, len(record["cc"].(string)))
		assert.Equal(t, 2, len(record["cc_abbrev"].(string)))
	}
}

func TestSpecBuilderErrors(t *testing.T) {
	builder := NewSpecBuilder().
		FieldByKey("no_type", 1, nil).
		Field("c").Combine(nil, nil).
		Field("cc").CharClassAbbrev("not_a_class", nil)
	err := builder.Err()
	assert.ErrorContains(t, err, "no_type")
	assert.ErrorContains(t, err, "invalid spec for 'c'")
	assert.ErrorContains(t, err, "not_a_class")

	_, err = builder.Build()
	assert.Assert(t, err != nil)
}
