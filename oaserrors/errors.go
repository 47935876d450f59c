package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrTypeMismatch indicates a value did not match its declared shape.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrSchemaCollision indicates an extension key collided with a declared field.
	ErrSchemaCollision = errors.New("schema collision")

	// ErrRecursionLimit indicates the entity nesting depth bound was exceeded.
	ErrRecursionLimit = errors.New("recursion limit exceeded")

	// ErrRender indicates a render plugin failure.
	ErrRender = errors.New("render error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// TypeMismatchError represents a construction-time shape violation: a field
// was supplied a value of the wrong shape, a required field is missing, or a
// union holds an invalid variant. It is never raised during serialization;
// by the time an entity exists its shape is already valid.
type TypeMismatchError struct {
	// Path is the slash-delimited entity path from the root ("" for root)
	Path string
	// Field is the serialized name of the offending field
	Field string
	// Expected describes the declared shape (e.g. "non-empty string")
	Expected string
	// Value is the offending value (may be nil)
	Value any
	// Message provides additional context
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *TypeMismatchError) Error() string {
	msg := "type mismatch"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Field != "" {
		msg += " in field " + e.Field
	}
	if e.Expected != "" {
		msg += ": expected " + e.Expected
		if e.Value != nil {
			msg += fmt.Sprintf(", got %T (%v)", e.Value, e.Value)
		}
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TypeMismatchError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// SchemaCollisionError represents an extension key whose name collides with a
// declared field's serialized name on the same entity. Colliding extensions
// are rejected rather than silently overwriting the declared field, and no
// partial output is produced.
type SchemaCollisionError struct {
	// Path is the slash-delimited entity path from the root ("" for root)
	Path string
	// Key is the colliding extension key
	Key string
	// EntityType names the entity type carrying the collision
	EntityType string
}

// Error returns a human-readable error message.
func (e *SchemaCollisionError) Error() string {
	msg := "schema collision"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.EntityType != "" {
		msg += " on " + e.EntityType
	}
	if e.Key != "" {
		msg += fmt.Sprintf(": extension key %q collides with a declared field", e.Key)
	}
	return msg
}

// Unwrap returns nil as SchemaCollisionError has no underlying cause.
func (e *SchemaCollisionError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *SchemaCollisionError) Is(target error) bool {
	return target == ErrSchemaCollision
}

// RecursionLimitError represents an entity graph whose nesting depth exceeded
// the configured bound. The guard turns unbounded recursion into a bounded
// failure; no partial output is produced.
type RecursionLimitError struct {
	// Path is the slash-delimited entity path where the bound was hit
	Path string
	// Limit is the configured maximum nesting depth
	Limit int
}

// Error returns a human-readable error message.
func (e *RecursionLimitError) Error() string {
	msg := "recursion limit exceeded"
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d)", e.Limit)
	}
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg
}

// Unwrap returns nil as RecursionLimitError has no underlying cause.
func (e *RecursionLimitError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *RecursionLimitError) Is(target error) bool {
	return target == ErrRecursionLimit
}

// RenderError represents a render plugin failure.
type RenderError struct {
	// Plugin names the failing plugin (e.g. "swagger", "json")
	Plugin string
	// Message describes the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *RenderError) Error() string {
	msg := "render error"
	if e.Plugin != "" {
		msg += " in " + e.Plugin
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *RenderError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *RenderError) Is(target error) bool {
	return target == ErrRender
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and values that are
// not entities at all (e.g. serializing a bare string).
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
