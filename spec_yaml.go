package datacraft

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"
)

// ParseYAML parses a YAML spec document. Multiple documents in the same data are merged, with later
// documents overriding fields of the same name.
func ParseYAML(data []byte, options ...ParseOption) (*DataSpec, error) {
	raw, err := loadYAML(data)
	if err != nil {
		return nil, err
	}
	return Parse(raw, options...)
}

// PreprocessYAML returns the canonical form of a YAML spec document, as YAML.
func PreprocessYAML(data []byte) ([]byte, error) {
	raw, err := loadYAML(data)
	if err != nil {
		return nil, err
	}
	canonical, err := Preprocess(raw)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(canonical)
}

func loadYAML(data []byte) (map[string]any, error) {
	fileParser, err := parser.ParseBytes(data, 0)
	if err != nil {
		return nil, err
	}

	spec := map[string]any{}
	for _, doc := range fileParser.Docs {
		if doc.Body == nil {
			continue
		}
		err := loadYAMLDoc(doc.Body, spec)
		if err != nil {
			return nil, err
		}
	}
	return spec, nil
}

func loadYAMLDoc(node ast.Node, spec map[string]any) error {
	switch n := node.(type) {
	case *ast.MappingValueNode:
		key, err := getStringNode(n.Key)
		if err != nil {
			return err
		}
		value, err := loadYAMLValue(n.Value)
		if err != nil {
			return fmt.Errorf("error loading field '%s': %w", key, err)
		}
		spec[key] = value
	case *ast.MappingNode:
		for _, value := range n.Values {
			err := loadYAMLDoc(value, spec)
			if err != nil {
				return err
			}
		}
	default:
		return NewParseError(fmt.Sprintf("invalid spec node '%s', spec must be an object", n.Type().String()),
			n.GetPath(), n.GetToken().Position)
	}
	return nil
}

func loadYAMLValue(node ast.Node) (any, error) {
	if n, ok := node.(*ast.TagNode); ok && !strings.HasPrefix(n.Start.Value, "!!") {
		return nil, NewParseError(fmt.Sprintf("unsupported tag '%s'", n.Start.Value), n.GetPath(), n.GetToken().Position)
	}

	var value any
	err := yaml.NodeToValue(node, &value)
	if err != nil {
		return nil, err
	}
	return normalizeValue(value), nil
}
