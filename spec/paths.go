package spec

// Paths holds the relative paths to the individual endpoints
type Paths map[string]*PathItem

// PathItem describes the operations available on a single path
type PathItem struct {
	Summary     string            `oas:"summary,omitempty"`
	Description string            `oas:"description,omitempty"`
	Get         *Operation        `oas:"get,omitempty"`
	Put         *Operation        `oas:"put,omitempty"`
	Post        *Operation        `oas:"post,omitempty"`
	Delete      *Operation        `oas:"delete,omitempty"`
	Options     *Operation        `oas:"options,omitempty"`
	Head        *Operation        `oas:"head,omitempty"`
	Patch       *Operation        `oas:"patch,omitempty"`
	Trace       *Operation        `oas:"trace,omitempty"`
	Servers     []*Server         `oas:"servers,omitempty"`
	Parameters  []*ParameterOrRef `oas:"parameters,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// Operation describes a single API operation on a path
type Operation struct {
	Tags         []string                  `oas:"tags,omitempty"`
	Summary      string                    `oas:"summary,omitempty"`
	Description  string                    `oas:"description,omitempty"`
	ExternalDocs *ExternalDocs             `oas:"externalDocs,omitempty"`
	OperationID  string                    `oas:"operationId,omitempty"`
	Parameters   []*ParameterOrRef         `oas:"parameters,omitempty"`
	RequestBody  *RequestBodyOrRef         `oas:"requestBody,omitempty"`
	Responses    Responses                 `oas:"responses"`
	Callbacks    map[string]*CallbackOrRef `oas:"callbacks,omitempty"`
	Deprecated   bool                      `oas:"deprecated,omitempty"`
	Security     []SecurityRequirement     `oas:"security,omitempty"`
	Servers      []*Server                 `oas:"servers,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// Responses maps response keys (status codes, wildcard patterns like "2XX",
// or "default") to the expected responses of an operation
type Responses map[string]*ResponseOrRef

// Response describes a single response from an API Operation
type Response struct {
	Description string                  `oas:"description"`
	Headers     map[string]*HeaderOrRef `oas:"headers,omitempty"`
	Content     map[string]*MediaType   `oas:"content,omitempty"`
	Links       map[string]*LinkOrRef   `oas:"links,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// Callback is a map of runtime expressions to path items
type Callback map[string]*PathItem

// Link represents a possible design-time link for a response
type Link struct {
	OperationRef string         `oas:"operationRef,omitempty"`
	OperationID  string         `oas:"operationId,omitempty"`
	Parameters   map[string]any `oas:"parameters,omitempty"`
	RequestBody  any            `oas:"requestBody,omitempty"`
	Description  string         `oas:"description,omitempty"`
	Server       *Server        `oas:"server,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// MediaType provides schema and examples for a media type
type MediaType struct {
	Schema   *SchemaOrRef             `oas:"schema,omitempty"`
	Example  any                      `oas:"example,omitempty"`
	Examples map[string]*ExampleOrRef `oas:"examples,omitempty"`
	Encoding map[string]*Encoding     `oas:"encoding,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// Example represents an example object
type Example struct {
	Summary       string `oas:"summary,omitempty"`
	Description   string `oas:"description,omitempty"`
	Value         any    `oas:"value,omitempty"`
	ExternalValue string `oas:"externalValue,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// Encoding describes how a single request body property is serialized
type Encoding struct {
	ContentType   string                  `oas:"contentType,omitempty"`
	Headers       map[string]*HeaderOrRef `oas:"headers,omitempty"`
	Style         string                  `oas:"style,omitempty"`
	Explode       *bool                   `oas:"explode,omitempty"`
	AllowReserved bool                    `oas:"allowReserved,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// Header represents a header object. It follows the structure of Parameter,
// minus name and location (the name is the map key and the location is
// implicitly "header").
type Header struct {
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
