package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures gradient document and argument validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ExportError represents a failure while producing or writing an export target.
type ExportError struct {
	Format string
	Err    error
}

// NewExportError constructs an ExportError.
func NewExportError(format string, err error) error {
	return &ExportError{Format: format, Err: err}
}

func (e *ExportError) Error() string {
	if e == nil {
		return ""
	}
	if e.Format != "" {
		return fmt.Sprintf("export error [%s]: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("export error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *ExportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ClipboardError indicates a failed clipboard write. It is reported locally and
// never aborts the caller.
type ClipboardError struct {
	Backend string
	Err     error
}

// NewClipboardError constructs a ClipboardError for the given backend.
func NewClipboardError(backend string, err error) error {
	return &ClipboardError{Backend: backend, Err: err}
}

func (e *ClipboardError) Error() string {
	if e == nil {
		return ""
	}
	if e.Backend != "" {
		return fmt.Sprintf("clipboard error [%s]: %v", e.Backend, e.Err)
	}
	return fmt.Sprintf("clipboard error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *ClipboardError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
