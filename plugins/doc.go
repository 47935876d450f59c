// Package plugins provides render plugins that turn a canonical OpenAPI
// document into servable bytes: raw JSON/YAML endpoints and single-page
// HTML shells for the common documentation UIs (Swagger UI, Redoc,
// RapiDoc, Scalar, Stoplight Elements).
//
// Every plugin implements [RenderPlugin] and reports the paths it serves,
// so an HTTP layer can route requests without knowing plugin internals:
//
//	doc, _ := spec.ToSchema(api)
//	for _, p := range []plugins.RenderPlugin{
//		plugins.NewJSON(),
//		plugins.NewSwagger(plugins.WithVersion("5.17.14")),
//	} {
//		body, err := p.Render(doc)
//		// serve body with p.MediaType() at p.Paths()
//	}
package plugins
