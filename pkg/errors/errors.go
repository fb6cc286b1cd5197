package errors

import (
	"fmt"
	"regexp"
	"strconv"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseError represents a YAML decoding failure with optional line metadata.
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

// NewYAMLParseError constructs a ParseError, taking the line number from the
// yaml decoder's message when it carries one.
func NewYAMLParseError(path string, err error) error {
	return NewParseError(path, yamlLine(err), err)
}

func yamlLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
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

// ValidationError captures settings or catalog validation issues.
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

// NotFoundError reports a diagram identifier that is not in the catalog.
type NotFoundError struct {
	ID string
}

// NewNotFoundError constructs a NotFoundError.
func NewNotFoundError(id string) error {
	return &NotFoundError{ID: id}
}

func (e *NotFoundError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("diagram %q not found in catalog", e.ID)
}

// RenderError is returned when the rendering engine rejects a source text.
// Source keeps the original text so the failure can be shown next to it.
type RenderError struct {
	DiagramID string
	Source    string
	Err       error
}

// NewRenderError constructs a RenderError.
func NewRenderError(diagramID, source string, err error) error {
	return &RenderError{DiagramID: diagramID, Source: source, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.DiagramID != "" {
		return fmt.Sprintf("render error [%s]: %v", e.DiagramID, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Message returns the engine's own description of the failure.
func (e *RenderError) Message() string {
	if e == nil || e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// Unwrap exposes the engine error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ClipboardError indicates the host clipboard refused a write.
type ClipboardError struct {
	Err error
}

// NewClipboardError constructs a ClipboardError.
func NewClipboardError(err error) error {
	return &ClipboardError{Err: err}
}

func (e *ClipboardError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("clipboard error: %v", e.Err)
}

// Unwrap exposes the platform error.
func (e *ClipboardError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
