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

// ValidationError captures configuration validation issues.
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

// InvalidChannelInputMessage is the advisory shown to the user for rejected channel input.
const InvalidChannelInputMessage = "value must be between 0 and 255"

// InvalidChannelInputError is raised when a channel text field holds something
// that is not a number in [0, 255] at the moment editing ends.
type InvalidChannelInputError struct {
	Channel string
	Input   string
	Err     error
}

// NewInvalidChannelInputError constructs an InvalidChannelInputError. err is the
// parse failure, if any; it is nil for numbers that are out of range.
func NewInvalidChannelInputError(channel, input string, err error) error {
	return &InvalidChannelInputError{Channel: channel, Input: input, Err: err}
}

func (e *InvalidChannelInputError) Error() string {
	if e == nil {
		return ""
	}
	if e.Channel != "" {
		return fmt.Sprintf("invalid %s input %q: %s", e.Channel, e.Input, InvalidChannelInputMessage)
	}
	return fmt.Sprintf("invalid input %q: %s", e.Input, InvalidChannelInputMessage)
}

// Message returns the user-facing advisory text.
func (e *InvalidChannelInputError) Message() string {
	return InvalidChannelInputMessage
}

// Unwrap exposes the parse failure, if any.
func (e *InvalidChannelInputError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
