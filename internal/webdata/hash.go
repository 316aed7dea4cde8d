package webdata

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// HashLength is the number of hex characters kept from the digest.
const HashLength = 16

// SourceHash fingerprints every *.yaml file under dataRoot. Relative paths
// are hashed along with contents, so adding, removing, renaming or editing
// any file changes the result.
func SourceHash(dataRoot string) (string, error) {
	files, err := yamlFiles(dataRoot)
	if err != nil {
		return "", &BuildError{Message: "failed to scan " + dataRoot, Cause: err}
	}

	hasher := sha256.New()
	for _, rel := range files {
		content, err := os.ReadFile(filepath.Join(dataRoot, filepath.FromSlash(rel)))
		if err != nil {
			return "", &BuildError{Message: "failed to read " + rel, Cause: err}
		}
		hasher.Write([]byte(rel))
		hasher.Write([]byte{0})
		hasher.Write(content)
		hasher.Write([]byte{0})
	}

	return hex.EncodeToString(hasher.Sum(nil))[:HashLength], nil
}

// yamlFiles returns slash-separated paths relative to root, sorted
// component by component. A missing root has no files.
func yamlFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipAll
			}
			return err
		}
		if d.IsDir() || filepath.Ext(d.Name()) != ".yaml" {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(files, func(i, j int) bool {
		return lessPath(files[i], files[j])
	})
	return files, nil
}

func lessPath(a, b string) bool {
	pa, pb := strings.Split(a, "/"), strings.Split(b, "/")
	for i := 0; i < len(pa) && i < len(pb); i++ {
		if pa[i] != pb[i] {
			return pa[i] < pb[i]
		}
	}
	return len(pa) < len(pb)
}
