package spec

// Schema represents a JSON Schema as constrained by OAS 3.0
// Reference: https://spec.openapis.org/oas/v3.0.3.html#schema-object
type Schema struct {
	// Metadata
	Title       string `oas:"title,omitempty"`
	Description string `oas:"description,omitempty"`
	Default     any    `oas:"default,omitempty"`

	// Type and enumeration
	Type   DataType   `oas:"type,omitempty"`
	Format DataFormat `oas:"format,omitempty"`
	Enum   []any      `oas:"enum,omitempty"`

	// Numeric validation
	MultipleOf       *float64 `oas:"multipleOf,omitempty"`
	Maximum          *float64 `oas:"maximum,omitempty"`
	ExclusiveMaximum bool     `oas:"exclusiveMaximum,omitempty"`
	Minimum          *float64 `oas:"minimum,omitempty"`
	ExclusiveMinimum bool     `oas:"exclusiveMinimum,omitempty"`

	// String validation
	MaxLength *int   `oas:"maxLength,omitempty"`
	MinLength *int   `oas:"minLength,omitempty"`
	Pattern   string `oas:"pattern,omitempty"`

	// Array validation
	Items       *SchemaOrRef `oas:"items,omitempty"`
	MaxItems    *int         `oas:"maxItems,omitempty"`
	MinItems    *int         `oas:"minItems,omitempty"`
	UniqueItems bool         `oas:"uniqueItems,omitempty"`

	// Object validation
	Properties           map[string]*SchemaOrRef `oas:"properties,omitempty"`
	AdditionalProperties *SchemaOrRef            `oas:"additionalProperties,omitempty"`
	Required             []string                `oas:"required,omitempty"`
	MaxProperties        *int                    `oas:"maxProperties,omitempty"`
	MinProperties        *int                    `oas:"minProperties,omitempty"`

	// Schema composition
	AllOf []*SchemaOrRef `oas:"allOf,omitempty"`
	AnyOf []*SchemaOrRef `oas:"anyOf,omitempty"`
	OneOf []*SchemaOrRef `oas:"oneOf,omitempty"`
	Not   *SchemaOrRef   `oas:"not,omitempty"`

	// OAS specific fields
	Nullable      bool           `oas:"nullable,omitempty"`
	Discriminator *Discriminator `oas:"discriminator,omitempty"`
	ReadOnly      bool           `oas:"readOnly,omitempty"`
	WriteOnly     bool           `oas:"writeOnly,omitempty"`
	XML           *XML           `oas:"xml,omitempty"`
	ExternalDocs  *ExternalDocs  `oas:"externalDocs,omitempty"`
	Example       any            `oas:"example,omitempty"`
	Deprecated    bool           `oas:"deprecated,omitempty"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// Discriminator represents a discriminator for polymorphism
type Discriminator struct {
	PropertyName string            `oas:"propertyName"`
	Mapping      map[string]string `oas:"mapping,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}

// XML represents metadata for XML encoding
type XML struct {
	Name      string `oas:"name,omitempty"`
	Namespace string `oas:"namespace,omitempty"`
	Prefix    string `oas:"prefix,omitempty"`
	Attribute bool   `oas:"attribute,omitempty"`
	Wrapped   bool   `oas:"wrapped,omitempty"`
	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `oas:",extensions"`
}
