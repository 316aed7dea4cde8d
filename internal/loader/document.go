package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDocument reads a YAML file into generic structured data.
// A null or empty document is rejected; an empty list or mapping is not.
func LoadDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigLoadError{Path: path, Reason: "file not found"}
		}
		return nil, &ConfigLoadError{Path: path, Reason: "failed to read file", Cause: err}
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ConfigLoadError{Path: path, Reason: "invalid YAML syntax", Cause: err}
	}
	if doc == nil {
		return nil, &ConfigLoadError{Path: path, Reason: "file is empty"}
	}

	return doc, nil
}

// asMapping returns the document root as a string-keyed mapping.
func asMapping(doc any) (map[string]any, error) {
	root, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("document root must be a mapping, got %T", doc)
	}
	return root, nil
}

// LoadMapping loads a YAML file whose root must be a mapping.
func LoadMapping(path string) (map[string]any, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	root, err := asMapping(doc)
	if err != nil {
		return nil, &ConfigLoadError{Path: path, Reason: err.Error()}
	}
	return root, nil
}
