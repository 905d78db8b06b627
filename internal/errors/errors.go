// Package errors provides structured error types for skilldoc.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Error codes for skilldoc operations.
const (
	// Document errors
	CodeDocParseError    = "DOC_001" // General parse failure
	CodeDocUnclosedFence = "DOC_002" // Fenced code block never closed
	CodeDocTableArity    = "DOC_003" // Table row width does not match header
	CodeDocFrontmatter   = "DOC_004" // Malformed YAML frontmatter

	// Outline errors
	CodeOutlineLevelJump = "OUTLINE_001" // Heading level skips a step

	// Render errors
	CodeRenderUnknownFormat = "RENDER_001" // Requested format not recognized
	CodeRenderFailed        = "RENDER_002" // Backend renderer failed

	// Library errors
	CodeLibDocNotFound = "LIB_001" // Named document not found in any source

	// Config errors
	CodeConfigMissingField = "CONFIG_001" // Missing required field
	CodeConfigInvalidValue = "CONFIG_002" // Invalid value type

	// IO errors
	CodeIOFileNotFound = "IO_001" // File not found
	CodeIOReadError    = "IO_002" // Read error
	CodeIOWriteError   = "IO_003" // Write error
)

// DocError is the structured error type for skilldoc operations.
type DocError struct {
	Code    string         `json:"code"`              // Error code (e.g., "DOC_002")
	Message string         `json:"message"`           // Human-readable message
	Details map[string]any `json:"details,omitempty"` // Context (line, row, format, etc.)
	Cause   error          `json:"-"`                 // Wrapped error (not serialized)
}

// Error implements the error interface.
func (e *DocError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *DocError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error.
func (e *DocError) WithDetail(key string, value any) *DocError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithCause wraps an underlying error.
func (e *DocError) WithCause(err error) *DocError {
	e.Cause = err
	return e
}

// Line returns the line number detail, or 0 if none was recorded.
func (e *DocError) Line() int {
	if n, ok := e.Details["line"].(int); ok {
		return n
	}
	return 0
}

// MarshalJSON implements json.Marshaler with cause error message.
func (e *DocError) MarshalJSON() ([]byte, error) {
	type alias DocError
	aux := struct {
		*alias
		CauseMsg string `json:"cause,omitempty"`
	}{
		alias: (*alias)(e),
	}
	if e.Cause != nil {
		aux.CauseMsg = e.Cause.Error()
	}
	return json.Marshal(aux)
}

// New creates a new DocError.
func New(code, message string) *DocError {
	return &DocError{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new DocError with formatted message.
func Newf(code, format string, args ...any) *DocError {
	return &DocError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with a DocError.
func Wrap(code, message string, err error) *DocError {
	return &DocError{
		Code:    code,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with a formatted DocError.
func Wrapf(code string, err error, format string, args ...any) *DocError {
	return &DocError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   err,
	}
}

// --- Document Errors ---

// ParseError creates a general parse error at a line.
func ParseError(line int, reason string) *DocError {
	return Newf(CodeDocParseError, "line %d: %s", line, reason).
		WithDetail("line", line)
}

// UnclosedFence creates an error for a fence left open at end of input.
// line is the line the fence was opened on.
func UnclosedFence(line int) *DocError {
	return Newf(CodeDocUnclosedFence, "code fence opened on line %d is never closed", line).
		WithDetail("line", line)
}

// TableArityMismatch creates an error for a table row whose cell count
// differs from its header row. row is the zero-based data row index.
func TableArityMismatch(line, row, want, got int) *DocError {
	return Newf(CodeDocTableArity, "line %d: table row %d has %d cells, header has %d", line, row, got, want).
		WithDetail("line", line).
		WithDetail("row", row).
		WithDetail("want", want).
		WithDetail("got", got)
}

// FrontmatterError creates an error for malformed YAML frontmatter.
func FrontmatterError(err error) *DocError {
	return Wrap(CodeDocFrontmatter, "malformed frontmatter", err)
}

// --- Outline Errors ---

// OutlineLevelJump creates an error for a heading that skips levels.
func OutlineLevelJump(line, from, to int) *DocError {
	return Newf(CodeOutlineLevelJump, "line %d: heading level jumps from %d to %d", line, from, to).
		WithDetail("line", line).
		WithDetail("from", from).
		WithDetail("to", to)
}

// --- Render Errors ---

// UnknownFormat creates an error for an unrecognized render format.
func UnknownFormat(format string) *DocError {
	return Newf(CodeRenderUnknownFormat, "unknown render format: %s", format).
		WithDetail("format", format)
}

// RenderFailed wraps a backend renderer failure.
func RenderFailed(format string, err error) *DocError {
	return Wrap(CodeRenderFailed, "render failed", err).
		WithDetail("format", format)
}

// --- Library Errors ---

// DocNotFound creates an error for a document missing from every source.
func DocNotFound(name string) *DocError {
	return Newf(CodeLibDocNotFound, "document not found: %s", name).
		WithDetail("name", name)
}

// --- IO Errors ---

// IOFileNotFound creates an error for a missing file.
func IOFileNotFound(path string) *DocError {
	return Newf(CodeIOFileNotFound, "file not found: %s", path).
		WithDetail("path", path)
}

// IOReadError creates an error for read failures.
func IOReadError(path string, err error) *DocError {
	return Wrap(CodeIOReadError, "failed to read file", err).
		WithDetail("path", path)
}

// IOWriteError creates an error for write failures.
func IOWriteError(path string, err error) *DocError {
	return Wrap(CodeIOWriteError, "failed to write file", err).
		WithDetail("path", path)
}

// --- Config Errors ---

// ConfigMissingField creates an error for a missing config field.
func ConfigMissingField(field string) *DocError {
	return Newf(CodeConfigMissingField, "missing required config field: %s", field).
		WithDetail("field", field)
}

// ConfigInvalidValue creates an error for an invalid config value.
func ConfigInvalidValue(field string, value any, reason string) *DocError {
	return Newf(CodeConfigInvalidValue, "invalid config value for %s: %s", field, reason).
		WithDetail("field", field).
		WithDetail("value", value).
		WithDetail("reason", reason)
}

// HasCode checks if an error is a DocError with the given code.
// It handles wrapped errors by unwrapping to find a DocError.
func HasCode(err error, code string) bool {
	var derr *DocError
	if errors.As(err, &derr) {
		return derr.Code == code
	}
	return false
}

// Code returns the error code if err is a DocError, empty string otherwise.
// It handles wrapped errors by unwrapping to find a DocError.
func Code(err error) string {
	var derr *DocError
	if errors.As(err, &derr) {
		return derr.Code
	}
	return ""
}
