package datacraft

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
)

func TestBuiltinCasters(t *testing.T) {
	registry := NewDefaultRegistry()

	tests := []struct {
		caster   string
		input    any
		expected any
	}{
		{"int", "123.45", 123},
		{"int", 1.9, 1},
		{"int", uint64(7), 7},
		{"float", "123.45", 123.45},
		{"string", 123.45, "123.45"},
		{"string", 3.0, "3"},
		{"hex", "255", "ff"},
		{"hex", 255.456, "ff"},
		{"lower", "AbC", "abc"},
		{"upper", "AbC", "ABC"},
		{"trim", "  x  ", "x"},
		{"round0", 2.5, 3.0},
		{"round2", 3.14159, 3.14},
		{"zfill5", 42, "00042"},
		{"zfill5", "-42", "-0042"},
		{"zfill2", "12345", "12345"},
		{"int;hex", 255.456, "ff"},
		{"int;string;zfill4", 7.9, "0007"},
	}
	for _, test := range tests {
		t.Run(test.caster, func(t *testing.T) {
			caster, err := ParseCasters(registry, test.caster)
			assert.NilError(t, err)
			v, err := caster.Cast(test.input)
			assert.NilError(t, err)
			assert.Equal(t, test.expected, v)
		})
	}
}

func TestCastList(t *testing.T) {
	v, err := CastList(IntCaster(), []any{1.5, "2.7", 3})
	assert.NilError(t, err)
	assert.DeepEqual(t, []any{1, 2, 3}, v)
}

func TestCasterInvalidValue(t *testing.T) {
	_, err := IntCaster().Cast("abc")
	AssertIsSpecError(t, err)

	_, err = HexCaster().Cast([]int{1})
	AssertIsSpecError(t, err)
}

func TestParseCastersUnknown(t *testing.T) {
	_, err := ParseCasters(NewDefaultRegistry(), "int;invalidCasterName")
	AssertIsSpecError(t, err)
	assert.Assert(t, errors.Is(err, ErrUnknownCaster))
}
