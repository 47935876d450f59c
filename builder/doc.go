// Package builder provides a fluent API for constructing OpenAPI 3.0
// documents programmatically.
//
// The builder validates input as it is added: HTTP methods, response status
// codes, parameter locations, extension key prefixes, and operationId
// uniqueness are all checked at construction time, so Build either returns a
// document that is structurally sound or an aggregated error describing every
// problem found.
//
// Basic usage:
//
//	doc, err := builder.New().
//		SetTitle("Pet Store").
//		SetVersion("1.0.0").
//		AddOperation("get", "/pets",
//			builder.WithOperationID("listPets"),
//			builder.WithResponse(200, []Pet{}, builder.WithResponseDescription("A list of pets")),
//		).
//		Build()
//
// Go types passed to WithResponse, WithRequestBody, and the parameter options
// are converted to schemas via reflection and registered under
// components.schemas; repeated and recursive types become $ref references
// automatically. Schema naming is configurable through WithSchemaNaming,
// WithSchemaNameTemplate, and WithSchemaNameFunc.
//
// Builder instances are not safe for concurrent use. Create one Builder per
// goroutine.
package builder
