// Package oaserrors provides structured error types for the oasmodels library.
//
// Import path: github.com/erraggy/oasmodels/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between different categories of errors and implement
// appropriate recovery strategies.
//
// # Error Types
//
// The package provides five core error types:
//
//   - [TypeMismatchError]: construction-time shape violations (missing required
//     fields, invalid enum values, malformed references)
//   - [SchemaCollisionError]: an extension key collides with a declared field's
//     serialized name during serialization
//   - [RecursionLimitError]: entity graph nesting exceeded the configured bound
//   - [RenderError]: render plugin failures
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrTypeMismatch]: Matches any [TypeMismatchError]
//   - [ErrSchemaCollision]: Matches any [SchemaCollisionError]
//   - [ErrRecursionLimit]: Matches any [RecursionLimitError]
//   - [ErrRender]: Matches any [RenderError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	schema, err := spec.ToSchema(doc)
//	if errors.Is(err, oaserrors.ErrSchemaCollision) {
//	    // an x- extension key shadowed a declared field
//	}
//
// Extract error details with errors.As():
//
//	var limitErr *oaserrors.RecursionLimitError
//	if errors.As(err, &limitErr) {
//	    fmt.Printf("exceeded depth %d at %s\n", limitErr.Limit, limitErr.Path)
//	}
//
// # Entity Paths
//
// Errors raised while walking an entity graph carry the failing entity path,
// a slash-delimited breadcrumb of serialized field names from the root, e.g.
// "paths//users/get/responses/200". An empty path means the document root.
//
// # Error Chaining
//
// Error types with a Cause field support error chaining via Unwrap(), so root
// causes remain reachable through the standard error chain.
package oaserrors
