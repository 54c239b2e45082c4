package datacraft

import (
	"maps"
	"net/url"
	"strings"

	"github.com/goccy/go-json"
)

var coreSpecKeys = []string{"type", "data", "config", "ref", "refs", "fields"}

// Preprocess expands the shorthand spec syntax into the canonical form, where each field key is a bare name
// and each field value is an object with a "type".
//
// A field key may be in the "name:type?param=value&..." format, where the type and the params are optional.
// Params are merged into the field config, with "cnt" renamed to "count".
func Preprocess(raw any) (map[string]any, error) {
	spec, ok := toMap(normalizeValue(raw))
	if !ok {
		return nil, NewSpecErrorf("cannot process non object specs: %v", raw)
	}

	ret := make(map[string]any, len(spec))
	for _, key := range sortedKeys(spec) {
		value := spec[key]
		switch {
		case key == "refs":
			if s, isString := value.(string); isString {
				var decoded any
				if err := json.Unmarshal([]byte(s), &decoded); err != nil {
					return nil, NewSpecErrorf("error decoding refs: %w", err)
				}
				value = decoded
			}
			refs, err := Preprocess(value)
			if err != nil {
				return nil, err
			}
			ret[key] = refs
		case key == "field_groups":
			ret[key] = value
		case strings.Contains(key, "?"):
			name, fieldSpec, err := preprocessWithParams(key, value)
			if err != nil {
				return nil, err
			}
			ret[name] = fieldSpec
		default:
			name, fieldSpec := preprocessNoParams(key, value)
			ret[name] = fieldSpec
		}
	}
	return ret, nil
}

// ParseKey parses a field key in the "name:type?param=value&..." format.
func ParseKey(key string) (name string, typ string, params map[string]string, err error) {
	keyType, query, hasQuery := strings.Cut(key, "?")
	name, typ, _ = strings.Cut(keyType, ":")
	params = map[string]string{}
	if !hasQuery {
		return name, typ, params, nil
	}
	for _, part := range strings.Split(query, "&") {
		k, v, ok := strings.Cut(part, "=")
		if !ok {
			continue
		}
		uv, uerr := url.QueryUnescape(v)
		if uerr != nil {
			return "", "", nil, NewSpecErrorf("invalid param value '%s' in key '%s': %w", v, key, uerr)
		}
		params[strings.TrimSpace(k)] = uv
	}
	return name, typ, params, nil
}

func preprocessWithParams(key string, value any) (string, map[string]any, error) {
	name, typ, params, err := ParseKey(key)
	if err != nil {
		return "", nil, err
	}

	var fieldSpec map[string]any
	if isSpecData(value, typ) {
		fieldSpec = map[string]any{"type": "values", "data": value}
	} else {
		m, _ := toMap(value)
		fieldSpec = maps.Clone(m)
		if fieldSpec == nil {
			fieldSpec = map[string]any{}
		}
	}

	config := map[string]any{}
	if c, ok := toMap(fieldSpec["config"]); ok {
		maps.Copy(config, c)
	}
	for pk, pv := range params {
		config[pk] = pv
	}
	if cnt, ok := config["cnt"]; ok {
		delete(config, "cnt")
		config["count"] = cnt
	}

	if typ != "" {
		fieldSpec["type"] = typ
	}
	fieldSpec["config"] = config
	return name, fieldSpec, nil
}

func preprocessNoParams(key string, value any) (string, map[string]any) {
	name, typ, _ := strings.Cut(key, ":")
	if typ == "" {
		typ = extractType(value)
	}
	if isSpecData(value, typ) {
		if typ == "" {
			typ = "values"
		}
		return name, map[string]any{"type": typ, "data": value}
	}
	m, _ := toMap(value)
	fieldSpec := maps.Clone(m)
	if fieldSpec == nil {
		fieldSpec = map[string]any{}
	}
	if typ != "" {
		fieldSpec["type"] = typ
	}
	return name, fieldSpec
}

// isSpecData returns whether the value is raw data instead of a structured field spec.
func isSpecData(value any, typ string) bool {
	if typ == "nested" || extractType(value) == "nested" {
		return false
	}
	m, ok := toMap(value)
	if !ok {
		return true
	}
	for _, k := range coreSpecKeys {
		if _, ok := m[k]; ok {
			return false
		}
	}
	return len(m) > 0
}

func extractType(value any) string {
	m, ok := toMap(value)
	if !ok {
		return ""
	}
	if t, ok := m["type"].(string); ok {
		return t
	}
	return ""
}
