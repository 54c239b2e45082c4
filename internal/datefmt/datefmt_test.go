package datefmt

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
)

func TestStrftime(t *testing.T) {
	tests := []struct {
		pattern  string
		expected string
	}{
		{"yyyy-MM-dd", "%Y-%m-%d"},
		{"yyyy-MM-dd'T'HH:mm:ss", "%Y-%m-%dT%H:%M:%S"},
		{"dd/MM/yy hh:mm a", "%d/%m/%y %I:%M %p"},
		{"d MMM yyyy", "%d %b %Y"},
		{"EEEE, MMMM d", "%A, %B %d"},
		{"HH:mm:ss.SSSSSS", "%H:%M:%S.%f"},
		{"yyyy-MM-dd''HH", "%Y-%m-%d'%H"},
		{"yyyy-DDD", "%Y-%j"},
		{"HH:mm XXX", "%H:%M %:z"},
		{"%Y-%m-%d", "%Y-%m-%d"},
		{"%d/%m/%Y %H:%M:%S", "%d/%m/%Y %H:%M:%S"},
	}
	for _, test := range tests {
		t.Run(test.pattern, func(t *testing.T) {
			directives, err := Strftime(test.pattern)
			assert.NilError(t, err)
			assert.Equal(t, test.expected, directives)
		})
	}
}

func TestPatternFormat(t *testing.T) {
	d := time.Date(2024, 3, 7, 9, 5, 1, 0, time.UTC)
	tests := []struct {
		pattern  string
		expected string
	}{
		{"yyyy-MM-dd'T'HH:mm:ss", "2024-03-07T09:05:01"},
		{"dd/MM/yy hh:mm a", "07/03/24 09:05 AM"},
		{"d MMM yyyy", "07 Mar 2024"},
		{"%Y%%", "2024%"},
	}
	for _, test := range tests {
		t.Run(test.pattern, func(t *testing.T) {
			pattern, err := Compile(test.pattern)
			assert.NilError(t, err)
			assert.Equal(t, test.pattern, pattern.String())
			assert.Equal(t, test.expected, pattern.Format(d))
		})
	}
}

func TestPatternParse(t *testing.T) {
	loc := time.FixedZone("test", 3*60*60)

	pattern, err := Compile("dd/MM/yyyy HH:mm")
	assert.NilError(t, err)
	d, err := pattern.Parse("10/01/2024 13:45", loc)
	assert.NilError(t, err)
	assert.Assert(t, d.Equal(time.Date(2024, 1, 10, 13, 45, 0, 0, loc)), "unexpected date: %s", d)

	pattern, err = Compile("%Y-%m-%d")
	assert.NilError(t, err)
	_, err = pattern.Parse("2024/01/10", loc)
	assert.Assert(t, err != nil)
}

func TestCompileErrors(t *testing.T) {
	for _, pattern := range []string{"%Y-%Q", "%Y-%", "yyyy-'MM", "yyyy-qq", "HH:mm:ss.SSS"} {
		t.Run(pattern, func(t *testing.T) {
			_, err := Compile(pattern)
			assert.Assert(t, err != nil)
		})
	}
}
