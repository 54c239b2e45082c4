package datacraft

import (
	"fmt"
	"maps"
	"math"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml/ast"
)

// getStringNode gets the string value of a string node, or an error if not a string node.
func getStringNode(node ast.Node) (string, error) {
	switch n := node.(type) {
	case *ast.StringNode:
		return n.Value, nil
	case *ast.IntegerNode, *ast.FloatNode, *ast.BoolNode:
		return n.GetToken().Value, nil
	default:
		return "", NewParseError("node is not string", node.GetPath(), node.GetToken().Position)
	}
}

// toFloat converts any numeric value, or a string containing one, to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	case fmt.Stringer:
		return toFloat(n.String())
	default:
		return 0, false
	}
}

// toInt converts any numeric value to int, truncating decimals.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	}
	f, ok := toFloat(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// isIntegral returns whether the value is an integer type, or a float without decimals.
func isIntegral(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		return n == math.Trunc(n)
	case float32:
		return float64(n) == math.Trunc(float64(n))
	case string:
		_, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return err == nil
	}
	return false
}

func toBool(v any) (bool, bool) {
	switch b := v.(type) {
	case bool:
		return b, true
	case string:
		pb, err := strconv.ParseBool(strings.TrimSpace(b))
		if err != nil {
			return false, false
		}
		return pb, true
	}
	if f, ok := toFloat(v); ok {
		return f != 0, true
	}
	return false, false
}

// toString renders a generated value as text.
func toString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case []any:
		items := make([]string, len(s))
		for i, item := range s {
			items[i] = toString(item)
		}
		return "[" + strings.Join(items, ", ") + "]"
	default:
		return fmt.Sprint(v)
	}
}

// toStringList accepts either a single string or a list of strings.
func toStringList(v any) ([]string, bool) {
	switch s := v.(type) {
	case nil:
		return nil, true
	case string:
		return []string{s}, true
	case []string:
		return s, true
	case []any:
		ret := make([]string, 0, len(s))
		for _, item := range s {
			is, ok := item.(string)
			if !ok {
				return nil, false
			}
			ret = append(ret, is)
		}
		return ret, true
	default:
		return nil, false
	}
}

// toMap returns v as a string-keyed map, converting map[any]any keys.
func toMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		ret := make(map[string]any, len(m))
		for k, mv := range m {
			ret[fmt.Sprint(k)] = mv
		}
		return ret, true
	default:
		return nil, false
	}
}

// normalizeValue deep-copies a decoded document, converting every slice or array to []any and every map to
// map[string]any.
func normalizeValue(v any) any {
	switch n := v.(type) {
	case nil, string, []byte:
		return v
	case map[string]any, map[any]any:
		m, _ := toMap(n)
		ret := make(map[string]any, len(m))
		for k, mv := range m {
			ret[k] = normalizeValue(mv)
		}
		return ret
	case []any:
		ret := make([]any, len(n))
		for i, item := range n {
			ret[i] = normalizeValue(item)
		}
		return ret
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		ret := make([]any, rv.Len())
		for i := range rv.Len() {
			ret[i] = normalizeValue(rv.Index(i).Interface())
		}
		return ret
	case reflect.Map:
		ret := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			ret[fmt.Sprint(iter.Key().Interface())] = normalizeValue(iter.Value().Interface())
		}
		return ret
	default:
		return v
	}
}

func sortedKeys[V any](m map[string]V) []string {
	return slices.Sorted(maps.Keys(m))
}

// configGet returns the config value for key, or the default.
func configGet(config map[string]any, key string, def any) any {
	if v, ok := config[key]; ok && v != nil {
		return v
	}
	return def
}

func configFloat(config map[string]any, key string, def float64) (float64, error) {
	v, ok := config[key]
	if !ok || v == nil {
		return def, nil
	}
	f, ok := toFloat(v)
	if !ok {
		return 0, NewSpecErrorf("config '%s' must be a number, got '%v'", key, v)
	}
	return f, nil
}

func configInt(config map[string]any, key string, def int) (int, error) {
	v, ok := config[key]
	if !ok || v == nil {
		return def, nil
	}
	i, ok := toInt(v)
	if !ok {
		return 0, NewSpecErrorf("config '%s' must be an integer, got '%v'", key, v)
	}
	return i, nil
}

func configBool(config map[string]any, key string, def bool) bool {
	v, ok := config[key]
	if !ok || v == nil {
		return def
	}
	b, ok := toBool(v)
	if !ok {
		return def
	}
	return b
}

func configString(config map[string]any, key string, def string) string {
	v, ok := config[key]
	if !ok || v == nil {
		return def
	}
	return toString(v)
}
