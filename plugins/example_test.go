package plugins_test

import (
	"fmt"
	"log"

	"github.com/erraggy/oasmodels/plugins"
	"github.com/erraggy/oasmodels/spec"
)

// Example demonstrates rendering a document with the JSON plugin.
func Example() {
	doc := &spec.OpenAPI{
		OpenAPI: "3.0.3",
		Info:    &spec.Info{Title: "Pet Store", Version: "1.0.0"},
		Paths:   spec.Paths{},
	}
	m, err := spec.ToSchema(doc)
	if err != nil {
		log.Fatalf("failed to serialize: %v", err)
	}

	out, err := plugins.NewJSON().Render(m)
	if err != nil {
		log.Fatalf("failed to render: %v", err)
	}
	fmt.Println(string(out))
	// Output:
	// {
	//   "openapi": "3.0.3",
	//   "info": {
	//     "title": "Pet Store",
	//     "version": "1.0.0"
	//   },
	//   "paths": {}
	// }
}

// Example_routing demonstrates how an HTTP layer selects a plugin by path.
func Example_routing() {
	registered := []plugins.RenderPlugin{
		plugins.NewJSON(),
		plugins.NewYAML(),
		plugins.NewSwagger(plugins.WithPath("/docs")),
	}

	for _, path := range []string{"/openapi.json", "/docs"} {
		for _, p := range registered {
			if p.HasPath(path) {
				fmt.Printf("%s -> %s\n", path, p.MediaType())
			}
		}
	}
	// Output:
	// /openapi.json -> application/json
	// /docs -> text/html
}
