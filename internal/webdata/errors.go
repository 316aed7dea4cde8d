// Package webdata builds the JSON bundle consumed by the web front end and
// detects when a written bundle has gone stale.
package webdata

import "fmt"

// BuildError represents a failure reading sources or writing the bundle.
type BuildError struct {
	Message string
	Cause   error
}

func (e *BuildError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("web data error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("web data error: %s", e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}
