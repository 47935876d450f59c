// Package oasmodels provides a typed OpenAPI 3.0 document model with a
// deterministic, canonical serialization engine.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - spec: the OpenAPI 3.0 object model and the ToSchema serialization
//     engine that renders it into a canonical, insertion-ordered map
//   - builder: a fluent API for constructing spec documents, including
//     reflection-based schema generation from Go types
//   - plugins: render plugins that turn a canonical document into
//     servable JSON, YAML, or documentation UI pages
//   - oaserrors: the shared error taxonomy with errors.Is-compatible
//     sentinels
//
// # Quick Start
//
// Build a document and render it:
//
//	import (
//		"github.com/erraggy/oasmodels/builder"
//		"github.com/erraggy/oasmodels/spec"
//	)
//
//	b := builder.NewWithInfo(&spec.Info{Title: "Pet Store", Version: "1.0.0"})
//	b.AddOperation("get", "/pets",
//		builder.WithOperationID("listPets"),
//		builder.WithResponse(200, nil, builder.WithResponseDescription("OK")),
//	)
//	doc, err := b.Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	m, err := spec.ToSchema(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	out, _ := json.Marshal(m) // keys in declaration order
//
// Or construct the model directly:
//
//	doc := &spec.OpenAPI{
//		OpenAPI: "3.0.3",
//		Info:    &spec.Info{Title: "Pet Store", Version: "1.0.0"},
//		Paths:   spec.Paths{},
//	}
//
// # Determinism
//
// ToSchema renders struct fields in declaration order, sorts mapping keys,
// and merges extensions last in sorted order, so two serializations of the
// same document are byte-identical in both JSON and YAML. See the spec
// package documentation for the full rendering rules.
//
// # Error Handling
//
// All failures unwrap to sentinels in the oaserrors package:
//
//	m, err := spec.ToSchema(doc)
//	if errors.Is(err, oaserrors.ErrSchemaCollision) {
//		// an x- extension key collided with a declared field
//	}
//
// # Additional Resources
//
//   - OpenAPI Specification: https://spec.openapis.org/oas/v3.0.3
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/oasmodels
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in
// the repository for full details.
package oasmodels
