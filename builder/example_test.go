package builder_test

import (
	"errors"
	"fmt"
	"log"

	"github.com/erraggy/oasmodels/builder"
	"github.com/erraggy/oasmodels/oaserrors"
	"github.com/erraggy/oasmodels/spec"
)

// Example demonstrates building a minimal document with the fluent API.
func Example() {
	b := builder.NewWithInfo(&spec.Info{Title: "Pet Store", Version: "1.0.0"})
	b.AddOperation("get", "/pets",
		builder.WithOperationID("listPets"),
		builder.WithSummary("List pets"),
		builder.WithResponse(200, nil, builder.WithResponseDescription("A list of pets")),
	)

	doc, err := b.Build()
	if err != nil {
		log.Fatalf("failed to build: %v", err)
	}
	fmt.Printf("Title: %s\n", doc.Info.Title)
	fmt.Printf("Operation: %s\n", doc.Paths["/pets"].Get.OperationID)
	// Output:
	// Title: Pet Store
	// Operation: listPets
}

// Example_marshalJSON demonstrates rendering the built document as
// indented, canonically ordered JSON.
func Example_marshalJSON() {
	b := builder.NewWithInfo(&spec.Info{Title: "Ping", Version: "0.1.0"})
	b.AddOperation("get", "/ping",
		builder.WithResponse(204, nil, builder.WithResponseDescription("No Content")),
	)

	out, err := b.MarshalJSON()
	if err != nil {
		log.Fatalf("failed to marshal: %v", err)
	}
	fmt.Println(string(out))
	// Output:
	// {
	//   "openapi": "3.0.3",
	//   "info": {
	//     "title": "Ping",
	//     "version": "0.1.0"
	//   },
	//   "paths": {
	//     "/ping": {
	//       "get": {
	//         "responses": {
	//           "204": {
	//             "description": "No Content"
	//           }
	//         }
	//       }
	//     }
	//   }
	// }
}

// Example_registerType demonstrates reflection-based schema generation:
// struct types become named component schemas referenced by $ref.
func Example_registerType() {
	type pet struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	b := builder.NewWithInfo(&spec.Info{Title: "Pet Store", Version: "1.0.0"})
	ref := b.RegisterType(pet{})

	fmt.Println(ref.Ref().Ref)
	// Output:
	// #/components/schemas/builder_test.pet
}

// Example_buildErrors demonstrates construction-time validation: invalid
// values surface when Build is called and unwrap to shared sentinels.
func Example_buildErrors() {
	b := builder.NewWithInfo(&spec.Info{Title: "Pet Store", Version: "1.0.0"})
	b.AddOperation("fetch", "/pets")

	_, err := b.Build()
	fmt.Println(errors.Is(err, oaserrors.ErrTypeMismatch))
	// Output:
	// true
}
