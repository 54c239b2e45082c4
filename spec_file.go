package datacraft

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ParseFile parses a spec file from the local filesystem. See ParseFS for the supported formats.
func ParseFile(name string, options ...ParseOption) (*DataSpec, error) {
	return ParseFS(os.DirFS(filepath.Dir(name)), filepath.Base(name), options...)
}

// ParseFS parses a spec file from a [fs.FS]. Files with the ".json" extension are parsed as JSON,
// files with the ".yaml" or ".yml" extension as YAML.
func ParseFS(fsys fs.FS, name string, options ...ParseOption) (*DataSpec, error) {
	parse, err := specFileParser(name)
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("error reading spec file '%s': %w", name, err)
	}

	ds, err := parse(data, options...)
	if err != nil {
		return nil, fmt.Errorf("error processing spec file '%s': %w", name, err)
	}
	return ds, nil
}

func specFileParser(name string) (func([]byte, ...ParseOption) (*DataSpec, error), error) {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return ParseJSON, nil
	case ".yaml", ".yml":
		return ParseYAML, nil
	default:
		return nil, NewSpecErrorf("unsupported spec file extension: '%s'", name)
	}
}
