package spec

// Parameter describes a single operation parameter
// Reference: https://spec.openapis.org/oas/v3.0.3.html#parameter-object
type Parameter struct {
	Name            string                   `oas:"name"`
	In              ParameterLocation        `oas:"in"`
	Description     string                   `oas:"description,omitempty"`
	Required        bool                     `oas:"required,omitempty"`
	Deprecated      bool                     `oas:"deprecated,omitempty"`
	AllowEmptyValue bool                     `oas:"allowEmptyValue,omitempty"`
	Style           string                   `oas:"style,omitempty"`
	Explode         *bool                    `oas:"explode,omitempty"`
	AllowReserved   bool                     `oas:"allowReserved,omitempty"`
	Schema          *SchemaOrRef             `oas:"schema,omitempty"`
	Example         any                      `oas:"example,omitempty"`
	Examples        map[string]*ExampleOrRef `oas:"examples,omitempty"`
	Content         map[string]*MediaType    `oas:"content,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// RequestBody describes a single request body
type RequestBody struct {
	Description string                `oas:"description,omitempty"`
	Content     map[string]*MediaType `oas:"content"`
	Required    bool                  `oas:"required,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}
