package spec

// OpenAPI is the root object of an OpenAPI 3.0 document
// Reference: https://spec.openapis.org/oas/v3.0.3.html#openapi-object
type OpenAPI struct {
	OpenAPI      string                `oas:"openapi"`
	Info         *Info                 `oas:"info"`
	Servers      []*Server             `oas:"servers,omitempty"`
	Paths        Paths                 `oas:"paths"`
	Components   *Components           `oas:"components,omitempty"`
	Security     []SecurityRequirement `oas:"security,omitempty"`
	Tags         []*Tag                `oas:"tags,omitempty"`
	ExternalDocs *ExternalDocs         `oas:"externalDocs,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// Components holds reusable objects for different aspects of the OAS.
// Objects defined here have no effect on the API unless referenced from
// elsewhere in the document.
type Components struct {
	Schemas         map[string]*Schema              `oas:"schemas,omitempty"`
	Responses       map[string]*ResponseOrRef       `oas:"responses,omitempty"`
	Parameters      map[string]*ParameterOrRef      `oas:"parameters,omitempty"`
	Examples        map[string]*ExampleOrRef        `oas:"examples,omitempty"`
	RequestBodies   map[string]*RequestBodyOrRef    `oas:"requestBodies,omitempty"`
	Headers         map[string]*HeaderOrRef         `oas:"headers,omitempty"`
	SecuritySchemes map[string]*SecuritySchemeOrRef `oas:"securitySchemes,omitempty"`
	Links           map[string]*LinkOrRef           `oas:"links,omitempty"`
	Callbacks       map[string]*CallbackOrRef       `oas:"callbacks,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}
