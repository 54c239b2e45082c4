package datacraft

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

const testJSONSpec = `{
  "refs": {"first": ["Ann", "Bob"], "last": "Smith"},
  "name:combine?join_with=%20": {"refs": ["first", "last"]},
  "ratio": {"x": 0.5, "y": 0.5},
  "tags:ref_list": ["first", "last"]
}`

const testYAMLSpec = `
refs:
  first: [Ann, Bob]
  last: Smith
"name:combine?join_with=%20":
  refs: [first, last]
ratio:
  x: 0.5
  y: 0.5
"tags:ref_list": [first, last]
`

func TestParseJSON(t *testing.T) {
	ds, err := ParseJSON([]byte(testJSONSpec), WithSeed(1, 2))
	assert.NilError(t, err)

	records, err := ds.Entries(2)
	assert.NilError(t, err)
	assert.Equal(t, "Ann Smith", records[0]["name"])
	assert.Equal(t, "Bob Smith", records[1]["name"])
	assert.DeepEqual(t, []any{"Bob", "Smith"}, records[1]["tags"])
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := ParseJSON([]byte(`{"a": `))
	AssertIsSpecError(t, err)

	_, err = ParseJSON([]byte(`["a"]`))
	AssertIsSpecError(t, err)
}

func TestJSONAndYAMLCanonicalEqual(t *testing.T) {
	jsonRaw, err := loadJSON([]byte(testJSONSpec))
	assert.NilError(t, err)
	yamlRaw, err := loadYAML([]byte(testYAMLSpec))
	assert.NilError(t, err)

	fromJSON, err := Preprocess(jsonRaw)
	assert.NilError(t, err)
	fromYAML, err := Preprocess(yamlRaw)
	assert.NilError(t, err)

	if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
		t.Fatalf("canonical specs differ (-json +yaml):\n%s", diff)
	}
}

func TestPreprocessJSON(t *testing.T) {
	data, err := PreprocessJSON([]byte(`{"a?prefix=x": [1, 2]}`), false)
	assert.NilError(t, err)

	var canonical map[string]any
	assert.NilError(t, json.Unmarshal(data, &canonical))
	assert.DeepEqual(t, map[string]any{
		"a": map[string]any{
			"type":   "values",
			"data":   []any{1.0, 2.0},
			"config": map[string]any{"prefix": "x"},
		},
	}, canonical)

	pretty, err := PreprocessJSON([]byte(`{"a": 1}`), true)
	assert.NilError(t, err)
	assert.Equal(t, "{\n  \"a\": {\n    \"data\": 1,\n    \"type\": \"values\"\n  }\n}", string(pretty))
}
