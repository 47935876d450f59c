package builder

import (
	"github.com/erraggy/oasmodels/spec"
)

// defaultOpenAPIVersion is the OpenAPI specification version emitted by Build.
const defaultOpenAPIVersion = "3.0.3"

// BuilderOption configures a Builder instance.
// Options are applied when creating a new Builder with New.
type BuilderOption func(*builderConfig)

// builderConfig holds configuration applied via options.
type builderConfig struct {
	openAPIVersion string
	namer          *schemaNamer
	templateError  error
	logger         spec.Logger
}

func defaultBuilderConfig() *builderConfig {
	return &builderConfig{
		openAPIVersion: defaultOpenAPIVersion,
		namer:          newSchemaNamer(),
		logger:         spec.NopLogger{},
	}
}

// WithOpenAPIVersion sets the "openapi" version string of the built document.
// The default is "3.0.3". Empty values are ignored.
func WithOpenAPIVersion(version string) BuilderOption {
	return func(cfg *builderConfig) {
		if version != "" {
			cfg.openAPIVersion = version
		}
	}
}

// WithSchemaNaming sets a built-in schema naming strategy. The default is
// SchemaNamingDefault, which produces "package.TypeName" names.
//
// Setting a strategy clears any previously set template or custom function.
func WithSchemaNaming(strategy SchemaNamingStrategy) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.namer.strategy = strategy
		cfg.namer.template = nil
		cfg.namer.fn = nil
		cfg.templateError = nil
	}
}

// WithSchemaNameTemplate sets a custom Go text/template for schema naming.
// The template receives a SchemaNameContext; parse or execution errors are
// reported by Build.
//
// Available template functions: pascal, camel, snake, kebab, upper, lower,
// title, sanitize, trimPrefix, trimSuffix, replace.
//
// Example:
//
//	builder.WithSchemaNameTemplate("{{pascal .Package}}{{.TypeBase}}")
func WithSchemaNameTemplate(tmpl string) BuilderOption {
	return func(cfg *builderConfig) {
		t, err := parseSchemaNameTemplate(tmpl)
		if err != nil {
			cfg.templateError = err
			return
		}
		cfg.namer.template = t
		cfg.namer.fn = nil
		cfg.templateError = nil
	}
}

// WithSchemaNameFunc sets a custom naming function, which takes priority over
// both templates and built-in strategies.
func WithSchemaNameFunc(fn SchemaNameFunc) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.namer.fn = fn
	}
}

// WithBuilderLogger sets the logger used while building. A nil logger is
// ignored.
func WithBuilderLogger(logger spec.Logger) BuilderOption {
	return func(cfg *builderConfig) {
		if logger != nil {
			cfg.logger = logger
		}
	}
}
