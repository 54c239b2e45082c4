package datacraft

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func testLoader(t *testing.T, raw map[string]any, options ...ParseOption) *Loader {
	t.Helper()
	ds, err := Parse(raw, append([]ParseOption{WithSeed(1, 2)}, options...)...)
	require.NoError(t, err)
	return ds.Loader()
}

func TestLoaderCachesSuppliers(t *testing.T) {
	loader := testLoader(t, map[string]any{
		"a": []any{1.0, 2.0},
	})

	s1, err := loader.Get("a")
	require.NoError(t, err)
	s2, err := loader.Get("a")
	require.NoError(t, err)
	require.Same(t, s1, s2)
}

func TestLoaderRefsAreResolvable(t *testing.T) {
	loader := testLoader(t, map[string]any{
		"refs": map[string]any{"r": "ref value"},
		"a":    map[string]any{"type": "ref", "ref": "r"},
	})

	supplier, err := loader.Get("a")
	require.NoError(t, err)
	v, err := supplier.Next(1)
	require.NoError(t, err)
	require.Equal(t, "ref value", v)

	_, ok := loader.Spec("r")
	require.True(t, ok)
}

func TestLoaderFieldsBeforeRefs(t *testing.T) {
	loader := testLoader(t, map[string]any{
		"refs": map[string]any{"x": "from ref"},
		"x":    "from field",
	})

	supplier, err := loader.Get("x")
	require.NoError(t, err)
	v, err := supplier.Next(1)
	require.NoError(t, err)
	require.Equal(t, "from field", v)
}

func TestLoaderUnknownField(t *testing.T) {
	loader := testLoader(t, map[string]any{
		"a": map[string]any{"type": "ref", "ref": "missing"},
	})

	_, err := loader.Get("a")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnknownField))
	AssertIsSpecError(t, err)
}

func TestLoaderUnknownType(t *testing.T) {
	loader := testLoader(t, map[string]any{
		"a": map[string]any{"type": "invalid_type"},
	})

	_, err := loader.Get("a")
	require.ErrorIs(t, err, ErrUnknownType)
}

func TestLoaderCircularReference(t *testing.T) {
	loader := testLoader(t, map[string]any{
		"a": map[string]any{"type": "ref", "ref": "b"},
		"b": map[string]any{"type": "ref", "ref": "a"},
	})

	_, err := loader.Get("a")
	require.ErrorIs(t, err, ErrCircularReference)
	require.ErrorContains(t, err, "a -> b -> a")

	_, err = loader.Get("b")
	require.ErrorIs(t, err, ErrCircularReference)
}

func TestLoaderSelfReference(t *testing.T) {
	loader := testLoader(t, map[string]any{
		"a": map[string]any{"type": "combine", "refs": []any{"a"}},
	})

	_, err := loader.Get("a")
	require.ErrorIs(t, err, ErrCircularReference)
}

func TestLoaderCastAndDecorate(t *testing.T) {
	loader := testLoader(t, map[string]any{
		"num?cast=int&prefix=num": 1.23456,
	})

	supplier, err := loader.Get("num")
	require.NoError(t, err)
	v, err := supplier.Next(1)
	require.NoError(t, err)
	require.Equal(t, "num1", v)
}

func TestLoaderCastList(t *testing.T) {
	loader := testLoader(t, map[string]any{
		"refs":                  map[string]any{"one": 1.5, "two": 2.5},
		"a:ref_list?cast=int":   []any{"one", "two"},
		"b:ref_list?cast=float": []any{"one", "two"},
	})

	supplier, err := loader.Get("a")
	require.NoError(t, err)
	v, err := supplier.Next(1)
	require.NoError(t, err)
	require.Equal(t, []any{1, 2}, v)
}

func TestLoaderUnknownCaster(t *testing.T) {
	loader := testLoader(t, map[string]any{
		"a?cast=notacaster": 1,
	})

	_, err := loader.Get("a")
	require.ErrorIs(t, err, ErrUnknownCaster)
}

func TestLoaderCustomStage(t *testing.T) {
	registry := NewDefaultRegistry()
	registry.AddStage(StageFunc(func(spec FieldSpec, supplier ValueSupplier, loader *Loader) (ValueSupplier, error) {
		if _, ok := spec.Config()["wrap"]; !ok {
			return supplier, nil
		}
		return DecoratedSupplier(supplier, "[", "]"), nil
	}))

	loader := testLoader(t, map[string]any{
		"a?wrap=true&prefix=x": "value",
		"b":                    "value",
	}, WithRegistry(registry))

	supplier, err := loader.Get("a")
	require.NoError(t, err)
	v, err := supplier.Next(1)
	require.NoError(t, err)
	require.Equal(t, "[xvalue]", v)

	supplier, err = loader.Get("b")
	require.NoError(t, err)
	v, err = supplier.Next(1)
	require.NoError(t, err)
	require.Equal(t, "value", v)
}

func TestLoaderCustomType(t *testing.T) {
	registry := NewDefaultRegistry()
	err := registry.RegisterType(TypeLoaderFunc(func(spec FieldSpec, loader *Loader) (ValueSupplier, error) {
		return ValueSupplierFunc(func(iteration int64) (any, error) {
			return iteration * 10, nil
		}), nil
	}, "tens"))
	require.NoError(t, err)

	loader := testLoader(t, map[string]any{
		"a:tens": map[string]any{},
	}, WithRegistry(registry))

	supplier, err := loader.Get("a")
	require.NoError(t, err)
	AssertSupplierValues(t, supplier, int64(10), int64(20), int64(30))
}

func TestLoaderLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := Entries(map[string]any{"a:uuid": map[string]any{}}, 1, WithLogger(logger))
	require.NoError(t, err)
	require.Contains(t, buf.String(), "value supplier created")
	require.Contains(t, buf.String(), "field=a")
	require.Contains(t, buf.String(), "type=uuid")
	require.Contains(t, buf.String(), "generation finished")
}
