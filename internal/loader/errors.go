// Package loader reads the YAML source documents into the skills matrix model
// and checks their referential integrity.
package loader

import (
	"fmt"
	"strings"
)

// ConfigLoadError represents a missing, unparseable, empty or malformed
// configuration document.
type ConfigLoadError struct {
	Path   string
	Reason string
	Cause  error
}

func (e *ConfigLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("error loading %s: %s: %v", e.Path, e.Reason, e.Cause)
	}
	return fmt.Sprintf("error loading %s: %s", e.Path, e.Reason)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Cause
}

// SkillLoadError represents a missing or invalid field in a category file.
type SkillLoadError struct {
	Path   string
	Reason string
	Cause  error
}

func (e *SkillLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("error loading skill from %s: %s: %v", e.Path, e.Reason, e.Cause)
	}
	return fmt.Sprintf("error loading skill from %s: %s", e.Path, e.Reason)
}

func (e *SkillLoadError) Unwrap() error {
	return e.Cause
}

// ValidationError aggregates every reference-integrity violation found in
// one run.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s)", len(e.Errors))
}

// Details lists every violation, one per line.
func (e *ValidationError) Details() string {
	var sb strings.Builder
	for _, msg := range e.Errors {
		sb.WriteString("  - ")
		sb.WriteString(msg)
		sb.WriteString("\n")
	}
	return sb.String()
}

// NewValidationError returns nil when errs is empty.
func NewValidationError(errs []string) error {
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Errors: errs}
}
