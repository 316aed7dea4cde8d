package webdata

import (
	"os"
	"path/filepath"

	"github.com/jonathan/skills-matrix/internal/schemas"
)

// WriteResult describes a written bundle.
type WriteResult struct {
	Path  string
	Bytes int
	// SchemaWarning is set when the bundle does not match the embedded
	// schema or the schema could not be loaded. The file is written either
	// way since the sources pass through unvalidated.
	SchemaWarning error
}

// Write checks the bundle against the embedded schema and writes it to
// path, creating parent directories.
func Write(b *Bundle, path string) (*WriteResult, error) {
	data, err := b.Encode()
	if err != nil {
		return nil, err
	}

	result := &WriteResult{Path: path, Bytes: len(data)}
	result.SchemaWarning = schemas.ValidateSkillsData(data)

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &BuildError{Message: "failed to create output directory " + dir, Cause: err}
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return nil, &BuildError{Message: "failed to write " + path, Cause: err}
	}

	return result, nil
}
