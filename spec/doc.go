// Package spec provides typed models for OpenAPI Specification 3.0 documents
// and a serialization engine that renders them into canonical ordered maps.
//
// The model is a tree of entity structs (Info, Operation, Schema, ...) with
// one struct per OAS object. Fields that the specification declares as
// "X or Reference" use the tagged union [OrRef], so callers can test for a
// $ref without shape sniffing. Every entity carries an Extra map for
// specification extensions ("x-" fields).
//
// # Quick Start
//
// Build a document and serialize it:
//
//	doc := &spec.OpenAPI{
//		OpenAPI: "3.0.3",
//		Info:    &spec.Info{Title: "My API", Version: "1.0.0"},
//		Paths: spec.Paths{
//			"/users": &spec.PathItem{
//				Get: &spec.Operation{
//					Summary: "List users",
//					Responses: spec.Responses{
//						"200": spec.Of(&spec.Response{Description: "Success"}),
//					},
//				},
//			},
//		},
//	}
//
//	schema, err := spec.ToSchema(doc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, _ := schema.MarshalJSON()
//
// # Serialization
//
// [ToSchema] walks the entity graph depth-first in field declaration order
// and produces a [Map]: absent optional fields are omitted (never null),
// serialized names come from the per-field rename table (the "oas" struct
// tag), references render as exactly {"$ref": "..."}, and extensions are
// merged last. Serialization is pure and safe for concurrent use; the only
// failure modes are extension-key collisions and exceeding the recursion
// depth guard. See the oaserrors package for the error taxonomy.
package spec
