package datacraft

import (
	"errors"
	"testing"

	"gotest.tools/v3/assert"
)

// AssertIsSpecError asserts that the error is a SpecError.
func AssertIsSpecError(t *testing.T, err error) {
	t.Helper()
	var se *SpecError
	ok := errors.As(err, &se)
	assert.Assert(t, ok, "expected SpecError, got %T (%v)", err, err)
}

// AssertSupplierValues asserts that the supplier produces the values for iterations starting at 1.
func AssertSupplierValues(t *testing.T, supplier ValueSupplier, expected ...any) {
	t.Helper()
	var values []any
	for i := range expected {
		v, err := supplier.Next(int64(i + 1))
		assert.NilError(t, err)
		values = append(values, v)
	}
	assert.DeepEqual(t, expected, values)
}
