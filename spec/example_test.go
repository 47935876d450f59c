package spec_test

import (
	"fmt"
	"log"

	"github.com/erraggy/oasmodels/spec"
	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// Example demonstrates serializing a minimal document to canonical JSON.
func Example() {
	doc := &spec.OpenAPI{
		OpenAPI: "3.0.3",
		Info:    &spec.Info{Title: "Pet Store", Version: "1.0.0"},
		Paths: spec.Paths{
			"/pets": {
				Get: &spec.Operation{
					Summary: "List pets",
					Responses: spec.Responses{
						"200": spec.Of(&spec.Response{Description: "OK"}),
					},
				},
			},
		},
	}

	m, err := spec.ToSchema(doc)
	if err != nil {
		log.Fatalf("failed to serialize: %v", err)
	}
	out, err := json.Marshal(m)
	if err != nil {
		log.Fatalf("failed to marshal: %v", err)
	}
	fmt.Println(string(out))
	// Output:
	// {"openapi":"3.0.3","info":{"title":"Pet Store","version":"1.0.0"},"paths":{"/pets":{"get":{"summary":"List pets","responses":{"200":{"description":"OK"}}}}}}
}

// Example_yaml demonstrates that canonical field order survives YAML encoding.
func Example_yaml() {
	doc := &spec.OpenAPI{
		OpenAPI: "3.0.3",
		Info:    &spec.Info{Title: "Pet Store", Version: "1.0.0"},
		Paths:   spec.Paths{},
	}

	m, err := spec.ToSchema(doc)
	if err != nil {
		log.Fatalf("failed to serialize: %v", err)
	}
	out, err := yaml.Marshal(m)
	if err != nil {
		log.Fatalf("failed to marshal: %v", err)
	}
	fmt.Print(string(out))
	// Output:
	// openapi: 3.0.3
	// info:
	//     title: Pet Store
	//     version: 1.0.0
	// paths: {}
}

// Example_reference demonstrates the inline-or-reference union. A reference
// renders as a bare $ref object regardless of the target type.
func Example_reference() {
	param := spec.RefTo[spec.Parameter]("#/components/parameters/PageSize")

	m, err := spec.ToSchema(param)
	if err != nil {
		log.Fatalf("failed to serialize: %v", err)
	}
	out, err := json.Marshal(m)
	if err != nil {
		log.Fatalf("failed to marshal: %v", err)
	}
	fmt.Println(string(out))
	// Output:
	// {"$ref":"#/components/parameters/PageSize"}
}

// Example_extensions demonstrates x- extension rendering: extensions merge
// after declared fields, in sorted key order.
func Example_extensions() {
	info := &spec.Info{
		Title:   "Pet Store",
		Version: "1.0.0",
		Extra: map[string]any{
			"x-audience": "public",
			"x-api-id":   "petstore-42",
		},
	}

	m, err := spec.ToSchema(info)
	if err != nil {
		log.Fatalf("failed to serialize: %v", err)
	}
	out, err := json.Marshal(m)
	if err != nil {
		log.Fatalf("failed to marshal: %v", err)
	}
	fmt.Println(string(out))
	// Output:
	// {"title":"Pet Store","version":"1.0.0","x-api-id":"petstore-42","x-audience":"public"}
}
