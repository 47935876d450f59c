package builder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasmodels/spec"
)

// Builder accumulates document state through a fluent API and assembles a
// *spec.OpenAPI with Build. Validation errors collect as the chain runs and
// are reported together, so a single Build call surfaces every problem.
//
// Concurrency: Builder instances are not safe for concurrent use.
// Create separate Builder instances for concurrent operations.
type Builder struct {
	openAPIVersion string

	// Document sections
	info         *spec.Info
	servers      []*spec.Server
	paths        spec.Paths
	tags         []*spec.Tag
	security     []spec.SecurityRequirement
	externalDocs *spec.ExternalDocs
	extensions   map[string]any

	// Components, tracked separately for deduplication by name
	schemas         map[string]*spec.Schema
	responses       map[string]*spec.Response
	parameters      map[string]*spec.Parameter
	requestBodies   map[string]*spec.RequestBody
	securitySchemes map[string]*spec.SecurityScheme

	// Reflection cache for schema generation
	schemaCache *schemaCache

	// Tracking
	operationIDs map[string]operationLocation
	errors       BuildErrors

	// Schema naming configuration
	namer       *schemaNamer
	configError error

	logger spec.Logger
}

// New creates a Builder for an OpenAPI 3.0 document.
//
// Options customize the emitted version string and schema naming:
//
//	b := builder.New(
//	    builder.WithOpenAPIVersion("3.0.2"),
//	    builder.WithSchemaNaming(builder.SchemaNamingPascalCase),
//	)
func New(opts ...BuilderOption) *Builder {
	cfg := defaultBuilderConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Builder{
		openAPIVersion:  cfg.openAPIVersion,
		paths:           make(spec.Paths),
		extensions:      make(map[string]any),
		schemas:         make(map[string]*spec.Schema),
		responses:       make(map[string]*spec.Response),
		parameters:      make(map[string]*spec.Parameter),
		requestBodies:   make(map[string]*spec.RequestBody),
		securitySchemes: make(map[string]*spec.SecurityScheme),
		schemaCache:     newSchemaCache(),
		operationIDs:    make(map[string]operationLocation),
		namer:           cfg.namer,
		configError:     cfg.templateError,
		logger:          cfg.logger,
	}
}

// NewWithInfo creates a Builder with pre-configured Info.
func NewWithInfo(info *spec.Info, opts ...BuilderOption) *Builder {
	b := New(opts...)
	b.info = info
	return b
}

// SetInfo sets the Info object for the document.
func (b *Builder) SetInfo(info *spec.Info) *Builder {
	b.info = info
	return b
}

// SetTitle sets the title in the Info object.
func (b *Builder) SetTitle(title string) *Builder {
	b.ensureInfo().Title = title
	return b
}

// SetVersion sets the version in the Info object.
// This is the API version, not the OpenAPI specification version.
func (b *Builder) SetVersion(version string) *Builder {
	b.ensureInfo().Version = version
	return b
}

// SetDescription sets the description in the Info object.
func (b *Builder) SetDescription(desc string) *Builder {
	b.ensureInfo().Description = desc
	return b
}

// SetTermsOfService sets the terms of service URL in the Info object.
func (b *Builder) SetTermsOfService(url string) *Builder {
	b.ensureInfo().TermsOfService = url
	return b
}

// SetContact sets the contact information in the Info object.
func (b *Builder) SetContact(contact *spec.Contact) *Builder {
	b.ensureInfo().Contact = contact
	return b
}

// SetLicense sets the license information in the Info object.
func (b *Builder) SetLicense(license *spec.License) *Builder {
	b.ensureInfo().License = license
	return b
}

// SetExternalDocs sets document-level external documentation.
func (b *Builder) SetExternalDocs(docs *spec.ExternalDocs) *Builder {
	b.externalDocs = docs
	return b
}

// SetExtension sets a document-level specification extension. The key must
// carry the "x-" prefix; anything else is a construction-time error.
func (b *Builder) SetExtension(key string, value any) *Builder {
	if !strings.HasPrefix(key, spec.ExtensionPrefix) {
		b.errors = append(b.errors, newInvalidExtensionError(ComponentExtension, "", key))
		return b
	}
	b.extensions[key] = value
	return b
}

// AddServer adds a server to the document.
func (b *Builder) AddServer(url, description string) *Builder {
	b.servers = append(b.servers, &spec.Server{URL: url, Description: description})
	return b
}

// AddServerWithVariables adds a server carrying variable definitions.
func (b *Builder) AddServerWithVariables(url, description string, variables map[string]*spec.ServerVariable) *Builder {
	b.servers = append(b.servers, &spec.Server{
		URL:         url,
		Description: description,
		Variables:   variables,
	})
	return b
}

// AddTag adds a tag definition to the document.
func (b *Builder) AddTag(name, description string) *Builder {
	b.tags = append(b.tags, &spec.Tag{Name: name, Description: description})
	return b
}

// AddSecurityRequirement adds a document-level security requirement.
func (b *Builder) AddSecurityRequirement(req spec.SecurityRequirement) *Builder {
	b.security = append(b.security, req)
	return b
}

// AddSecurityScheme registers a security scheme under components. The scheme
// type must be one of the OAS 3.0 values (apiKey, http, oauth2,
// openIdConnect).
func (b *Builder) AddSecurityScheme(name string, scheme *spec.SecurityScheme) *Builder {
	switch scheme.Type {
	case spec.SecurityAPIKey, spec.SecurityHTTP, spec.SecurityOAuth2, spec.SecurityOpenIDConnect:
	default:
		b.errors = append(b.errors, &BuildError{
			Component: ComponentSecurityScheme,
			Path:      name,
			Field:     "type",
			Message:   fmt.Sprintf("invalid security scheme type %q", scheme.Type),
			Cause:     newTypeMismatch(name, "type", "apiKey, http, oauth2, openIdConnect", string(scheme.Type), "invalid security scheme type"),
		})
		return b
	}
	b.securitySchemes[name] = scheme
	return b
}

// AddSchema registers a pre-built schema under components.schemas.
func (b *Builder) AddSchema(name string, schema *spec.Schema) *Builder {
	b.schemas[name] = schema
	return b
}

// AddResponseComponent registers a reusable response under components.
func (b *Builder) AddResponseComponent(name string, resp *spec.Response) *Builder {
	b.responses[name] = resp
	return b
}

// AddParameterComponent registers a reusable parameter under components.
// The parameter location must be one of the OAS 3.0 values.
func (b *Builder) AddParameterComponent(name string, param *spec.Parameter) *Builder {
	if !validLocation(param.In) {
		b.errors = append(b.errors, newInvalidLocationError("", "", "", param.Name, param.In))
		return b
	}
	b.parameters[name] = param
	return b
}

// AddRequestBodyComponent registers a reusable request body under components.
func (b *Builder) AddRequestBodyComponent(name string, body *spec.RequestBody) *Builder {
	b.requestBodies[name] = body
	return b
}

// RegisterType registers a Go type under components.schemas and returns a
// schema-or-reference to it. The schema is generated via reflection.
func (b *Builder) RegisterType(v any) *spec.SchemaOrRef {
	return b.schemaFor(v)
}

// RegisterTypeAs registers a Go type under a custom component name.
func (b *Builder) RegisterTypeAs(name string, v any) *spec.SchemaOrRef {
	return b.schemaForAs(name, v)
}

// Build assembles the document. It is all-or-nothing: if any call in the
// fluent chain recorded an error, Build returns nil and the aggregated
// BuildErrors collection.
func (b *Builder) Build() (*spec.OpenAPI, error) {
	if b.configError != nil {
		return nil, fmt.Errorf("builder: configuration error: %w", b.configError)
	}

	if b.info == nil || b.info.Title == "" || b.info.Version == "" {
		b.errors = append(b.errors, &BuildError{
			Component: ComponentInfo,
			Message:   "info.title and info.version are required",
		})
	}

	if len(b.errors) > 0 {
		return nil, b.errors
	}

	doc := &spec.OpenAPI{
		OpenAPI:      b.openAPIVersion,
		Info:         b.info,
		Servers:      b.servers,
		Paths:        b.paths,
		Components:   b.buildComponents(),
		Security:     b.security,
		Tags:         b.tags,
		ExternalDocs: b.externalDocs,
	}
	if len(b.extensions) > 0 {
		doc.Extra = b.extensions
	}

	b.logger.Debug("built document",
		"paths", len(b.paths), "schemas", len(b.schemas), "operations", len(b.operationIDs))
	return doc, nil
}

// buildComponents assembles the components section, or nil when every
// component map is empty.
func (b *Builder) buildComponents() *spec.Components {
	if len(b.schemas) == 0 && len(b.responses) == 0 && len(b.parameters) == 0 &&
		len(b.requestBodies) == 0 && len(b.securitySchemes) == 0 {
		return nil
	}

	c := &spec.Components{}
	if len(b.schemas) > 0 {
		c.Schemas = b.schemas
	}
	if len(b.responses) > 0 {
		c.Responses = make(map[string]*spec.ResponseOrRef, len(b.responses))
		for name, resp := range b.responses {
			c.Responses[name] = spec.Of(resp)
		}
	}
	if len(b.parameters) > 0 {
		c.Parameters = make(map[string]*spec.ParameterOrRef, len(b.parameters))
		for name, param := range b.parameters {
			c.Parameters[name] = spec.Of(param)
		}
	}
	if len(b.requestBodies) > 0 {
		c.RequestBodies = make(map[string]*spec.RequestBodyOrRef, len(b.requestBodies))
		for name, body := range b.requestBodies {
			c.RequestBodies[name] = spec.Of(body)
		}
	}
	if len(b.securitySchemes) > 0 {
		c.SecuritySchemes = make(map[string]*spec.SecuritySchemeOrRef, len(b.securitySchemes))
		for name, scheme := range b.securitySchemes {
			c.SecuritySchemes[name] = spec.Of(scheme)
		}
	}
	return c
}

// BuildSchema builds the document and renders it to its canonical map in one
// step.
func (b *Builder) BuildSchema(opts ...spec.Option) (*spec.Map, error) {
	doc, err := b.Build()
	if err != nil {
		return nil, err
	}
	return spec.ToSchema(doc, opts...)
}

// MarshalJSON returns the built document as indented JSON bytes.
func (b *Builder) MarshalJSON() ([]byte, error) {
	m, err := b.BuildSchema()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(m, "", "  ")
}

// MarshalYAML returns the built document as YAML bytes.
func (b *Builder) MarshalYAML() ([]byte, error) {
	m, err := b.BuildSchema()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(m)
}

// outputFileMode is the file permission mode for output files.
const outputFileMode = 0600

// WriteFile writes the built document to a file. The format is inferred from
// the extension: .json for JSON, anything else (including .yaml and .yml)
// for YAML.
func (b *Builder) WriteFile(path string) error {
	var data []byte
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err = b.MarshalJSON()
	default:
		data, err = b.MarshalYAML()
	}
	if err != nil {
		return fmt.Errorf("builder: failed to marshal document: %w", err)
	}

	if err := os.WriteFile(path, data, outputFileMode); err != nil {
		return fmt.Errorf("builder: failed to write file: %w", err)
	}
	return nil
}

// FromDocument creates a builder seeded from an existing document, so
// operations and components can be added to it.
func FromDocument(doc *spec.OpenAPI, opts ...BuilderOption) *Builder {
	b := New(opts...)
	if doc.OpenAPI != "" {
		b.openAPIVersion = doc.OpenAPI
	}
	b.info = doc.Info
	b.servers = doc.Servers
	b.tags = doc.Tags
	b.security = doc.Security
	b.externalDocs = doc.ExternalDocs

	for path, item := range doc.Paths {
		b.paths[path] = item
	}
	for key, value := range doc.Extra {
		b.extensions[key] = value
	}

	if c := doc.Components; c != nil {
		for name, schema := range c.Schemas {
			b.schemas[name] = schema
		}
		for name, resp := range c.Responses {
			if v := resp.Value(); v != nil {
				b.responses[name] = v
			}
		}
		for name, param := range c.Parameters {
			if v := param.Value(); v != nil {
				b.parameters[name] = v
			}
		}
		for name, body := range c.RequestBodies {
			if v := body.Value(); v != nil {
				b.requestBodies[name] = v
			}
		}
		for name, scheme := range c.SecuritySchemes {
			if v := scheme.Value(); v != nil {
				b.securitySchemes[name] = v
			}
		}
	}
	return b
}

// ensureInfo lazily creates the Info object for the Set* helpers.
func (b *Builder) ensureInfo() *spec.Info {
	if b.info == nil {
		b.info = &spec.Info{}
	}
	return b.info
}

// getOrCreatePathItem gets or creates the PathItem for a path.
func (b *Builder) getOrCreatePathItem(path string) *spec.PathItem {
	if item, exists := b.paths[path]; exists {
		return item
	}
	item := &spec.PathItem{}
	b.paths[path] = item
	return item
}

// validLocation reports whether a parameter location is an OAS 3.0 value.
func validLocation(in spec.ParameterLocation) bool {
	switch in {
	case spec.InQuery, spec.InHeader, spec.InPath, spec.InCookie:
		return true
	}
	return false
}
