package webdata

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
)

// Status is the outcome of a staleness check.
type Status string

const (
	StatusUpToDate Status = "up_to_date"
	StatusMissing  Status = "missing"
	StatusInvalid  Status = "invalid"
	StatusStale    Status = "stale"
)

// CheckResult compares a written bundle with its sources.
type CheckResult struct {
	Status      Status
	Path        string
	StoredHash  string
	CurrentHash string
}

// UpToDate reports whether the bundle matches its sources.
func (r *CheckResult) UpToDate() bool {
	return r.Status == StatusUpToDate
}

// Check recomputes the source hash of dataRoot and compares it with the
// _source_hash stored in jsonPath. It never writes.
func Check(dataRoot, jsonPath string) (*CheckResult, error) {
	current, err := SourceHash(dataRoot)
	if err != nil {
		return nil, err
	}
	result := &CheckResult{Path: jsonPath, CurrentHash: current}

	data, err := os.ReadFile(jsonPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Status = StatusMissing
			return result, nil
		}
		return nil, &BuildError{Message: "failed to read " + jsonPath, Cause: err}
	}

	var stored struct {
		SourceHash string `json:"_source_hash"`
	}
	if err := json.Unmarshal(data, &stored); err != nil {
		result.Status = StatusInvalid
		return result, nil
	}
	result.StoredHash = stored.SourceHash

	if stored.SourceHash != current {
		result.Status = StatusStale
	} else {
		result.Status = StatusUpToDate
	}
	return result, nil
}
