package datacraft

import (
	"github.com/goccy/go-json"
)

// ParseJSON parses a JSON spec document.
func ParseJSON(data []byte, options ...ParseOption) (*DataSpec, error) {
	raw, err := loadJSON(data)
	if err != nil {
		return nil, err
	}
	return Parse(raw, options...)
}

// PreprocessJSON returns the canonical form of a JSON spec document, as JSON.
func PreprocessJSON(data []byte, pretty bool) ([]byte, error) {
	raw, err := loadJSON(data)
	if err != nil {
		return nil, err
	}
	canonical, err := Preprocess(raw)
	if err != nil {
		return nil, err
	}
	if pretty {
		return json.MarshalIndent(canonical, "", "  ")
	}
	return json.Marshal(canonical)
}

func loadJSON(data []byte) (any, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, NewSpecErrorf("error parsing JSON spec: %w", err)
	}
	return raw, nil
}
