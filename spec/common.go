package spec

// Info provides metadata about the API
// Reference: https://spec.openapis.org/oas/v3.0.3.html#info-object
type Info struct {
	Title          string   `oas:"title"`
	Description    string   `oas:"description,omitempty"`
	TermsOfService string   `oas:"termsOfService,omitempty"`
	Contact        *Contact `oas:"contact,omitempty"`
	License        *License `oas:"license,omitempty"`
	Version        string   `oas:"version"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// Contact information for the exposed API
type Contact struct {
	Name  string `oas:"name,omitempty"`
	URL   string `oas:"url,omitempty"`
	Email string `oas:"email,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// License information for the exposed API
type License struct {
	Name string `oas:"name"`
	URL  string `oas:"url,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// ExternalDocs allows referencing external documentation
type ExternalDocs struct {
	Description string `oas:"description,omitempty"`
	URL         string `oas:"url"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// Tag adds metadata to a single tag used by operations
type Tag struct {
	Name         string        `oas:"name"`
	Description  string        `oas:"description,omitempty"`
	ExternalDocs *ExternalDocs `oas:"externalDocs,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// Server represents a Server object
type Server struct {
	URL         string                     `oas:"url"`
	Description string                     `oas:"description,omitempty"`
	Variables   map[string]*ServerVariable `oas:"variables,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// ServerVariable represents a Server Variable object
type ServerVariable struct {
	Enum        []string `oas:"enum,omitempty"`
	Default     string   `oas:"default"`
	Description string   `oas:"description,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// Reference represents a JSON Reference ($ref). It is a leaf: the core never
// resolves or follows the pointer. A Reference serializes as exactly one key,
// {"$ref": "<string>"}.
type Reference struct {
	Ref string `oas:"$ref"`
}

// NewReference creates a Reference pointing at the given location,
// conventionally "#/components/<kind>/<name>".
func NewReference(ref string) *Reference {
	return &Reference{Ref: ref}
}
