package builder

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasmodels/oaserrors"
)

// ComponentType identifies the part of the document where an error occurred.
type ComponentType string

const (
	// ComponentInfo indicates an error in the document info section.
	ComponentInfo ComponentType = "info"
	// ComponentOperation indicates an error in an operation definition.
	ComponentOperation ComponentType = "operation"
	// ComponentParameter indicates an error in a parameter definition.
	ComponentParameter ComponentType = "parameter"
	// ComponentSchema indicates an error in a schema definition.
	ComponentSchema ComponentType = "schema"
	// ComponentRequestBody indicates an error in a request body definition.
	ComponentRequestBody ComponentType = "request_body"
	// ComponentResponse indicates an error in a response definition.
	ComponentResponse ComponentType = "response"
	// ComponentSecurityScheme indicates an error in a security scheme.
	ComponentSecurityScheme ComponentType = "security_scheme"
	// ComponentServer indicates an error in a server definition.
	ComponentServer ComponentType = "server"
	// ComponentExtension indicates an error in a specification extension.
	ComponentExtension ComponentType = "extension"
)

// operationLocation tracks where an operationId was first defined.
type operationLocation struct {
	Method string
	Path   string
}

// String returns a human-readable location description.
func (ol operationLocation) String() string {
	return fmt.Sprintf("%s %s", ol.Method, ol.Path)
}

// BuildError is a structured error produced while constructing a document.
// It carries enough locality (component, method, path, operationId, field)
// for a caller to pinpoint the offending call in a long fluent chain.
type BuildError struct {
	// Component is the part of the document where the error occurred.
	Component ComponentType
	// Method is the HTTP method, for operation errors.
	Method string
	// Path is the API path, for operation errors.
	Path string
	// OperationID is the operation identifier, if known.
	OperationID string
	// Field is the specific field at fault (e.g. "in", "status").
	Field string
	// Message describes the error.
	Message string
	// FirstOccurrence records where a duplicate was first defined.
	FirstOccurrence *operationLocation
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	var sb strings.Builder
	sb.WriteString("builder")

	if e.Component != "" {
		sb.WriteString(": ")
		sb.WriteString(string(e.Component))
	}
	if e.Method != "" && e.Path != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Method)
		sb.WriteString(" ")
		sb.WriteString(e.Path)
	} else if e.Path != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Path)
	}
	if e.OperationID != "" {
		sb.WriteString(" [operationId: ")
		sb.WriteString(e.OperationID)
		sb.WriteString("]")
	}
	if e.Field != "" {
		sb.WriteString(" field ")
		sb.WriteString(e.Field)
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	} else if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}
	if e.FirstOccurrence != nil {
		sb.WriteString(" (first defined at ")
		sb.WriteString(e.FirstOccurrence.String())
		sb.WriteString(")")
	}
	return sb.String()
}

// Unwrap returns the underlying cause.
func (e *BuildError) Unwrap() error {
	return e.Cause
}

// BuildErrors aggregates every error accumulated across a fluent chain.
// Build returns the full collection so one pass surfaces all problems.
type BuildErrors []*BuildError

// Error implements the error interface.
func (es BuildErrors) Error() string {
	switch len(es) {
	case 0:
		return "builder: no errors"
	case 1:
		return es[0].Error()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "builder: %d errors:", len(es))
	for _, e := range es {
		sb.WriteString("\n\t")
		sb.WriteString(e.Error())
	}
	return sb.String()
}

// Unwrap returns the individual errors so errors.Is and errors.As can match
// against the sentinels in oaserrors.
func (es BuildErrors) Unwrap() []error {
	errs := make([]error, len(es))
	for i, e := range es {
		errs[i] = e
	}
	return errs
}

// newTypeMismatch wraps a construction-time value error in the shared
// TypeMismatchError taxonomy so callers can match oaserrors.ErrTypeMismatch.
func newTypeMismatch(path, field, expected string, value any, message string) *oaserrors.TypeMismatchError {
	return &oaserrors.TypeMismatchError{
		Path:     path,
		Field:    field,
		Expected: expected,
		Value:    value,
		Message:  message,
	}
}

// newInvalidMethodError reports an HTTP method outside the OAS 3.0 set.
func newInvalidMethodError(method, path string) *BuildError {
	return &BuildError{
		Component: ComponentOperation,
		Method:    method,
		Path:      path,
		Field:     "method",
		Message:   fmt.Sprintf("invalid HTTP method %q", method),
		Cause:     newTypeMismatch(path, "method", "get, put, post, delete, options, head, patch, trace", method, "invalid HTTP method"),
	}
}

// newInvalidStatusCodeError reports an invalid responses key.
func newInvalidStatusCodeError(method, path, opID, code string) *BuildError {
	return &BuildError{
		Component:   ComponentResponse,
		Method:      method,
		Path:        path,
		OperationID: opID,
		Field:       "status",
		Message:     fmt.Sprintf("invalid response status code %q", code),
		Cause:       newTypeMismatch(path, "status", "100-599, 1XX-5XX, or default", code, "invalid response status code"),
	}
}

// newInvalidLocationError reports a parameter location outside the OAS 3.0 enum.
func newInvalidLocationError(method, path, opID, paramName string, in any) *BuildError {
	return &BuildError{
		Component:   ComponentParameter,
		Method:      method,
		Path:        path,
		OperationID: opID,
		Field:       "in",
		Message:     fmt.Sprintf("parameter %q has invalid location %v", paramName, in),
		Cause:       newTypeMismatch(path, "in", "query, header, path, cookie", in, "invalid parameter location"),
	}
}

// newInvalidExtensionError reports an extension key missing the x- prefix.
func newInvalidExtensionError(component ComponentType, path, key string) *BuildError {
	return &BuildError{
		Component: component,
		Path:      path,
		Field:     "extension",
		Message:   fmt.Sprintf("extension key %q must start with %q", key, "x-"),
		Cause:     newTypeMismatch(path, "extension", "key with x- prefix", key, "invalid extension key"),
	}
}

// newDuplicateOperationIDError reports an operationId reused across operations.
func newDuplicateOperationIDError(opID, method, path string, first *operationLocation) *BuildError {
	return &BuildError{
		Component:       ComponentOperation,
		Method:          method,
		Path:            path,
		OperationID:     opID,
		Field:           "operationId",
		Message:         fmt.Sprintf("duplicate operationId %q", opID),
		FirstOccurrence: first,
	}
}
