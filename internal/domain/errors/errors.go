package errors

import (
	"fmt"
	"strings"
)

// LoadError reports a table source that could not be turned into a table:
// the resource is missing or unreadable, or its header lacks required columns.
// It is fatal at startup.
type LoadError struct {
	Path    string   // source location (empty for in-memory readers)
	Missing []string // required source headers that were not found
	Reason  string   // human-readable explanation (optional)
	Err     error    // underlying cause (may be nil)
}

func (e *LoadError) Error() string {
	var parts []string

	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("failed to load table from %s", e.Path))
	} else {
		parts = append(parts, "failed to load table")
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing columns: %s", strings.Join(e.Missing, ", ")))
	}

	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}

	return strings.Join(parts, " - ")
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func NewMissingColumns(path string, missing []string) *LoadError {
	return &LoadError{
		Path:    path,
		Missing: missing,
		Reason:  "source header is incomplete",
	}
}

func NewUnreadable(path string, err error) *LoadError {
	return &LoadError{
		Path:   path,
		Reason: "source is unreadable",
		Err:    err,
	}
}

// UnknownFieldError is returned when a name does not belong to the fixed
// record schema. Query layers use it to drop parameters before they reach
// the filter engine.
type UnknownFieldError struct {
	Name string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("unknown field %q", e.Name)
}
