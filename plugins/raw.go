package plugins

import (
	"bytes"

	"github.com/erraggy/oasmodels/oaserrors"
	"github.com/erraggy/oasmodels/spec"
	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// JSONPlugin serves the document as indented JSON, preserving the
// canonical field order.
type JSONPlugin struct {
	base
}

// NewJSON constructs a JSON plugin serving /openapi.json by default.
func NewJSON(opts ...Option) *JSONPlugin {
	c := &config{
		paths:     []string{"/openapi.json"},
		mediaType: "application/json",
	}
	for _, opt := range opts {
		opt(c)
	}
	return &JSONPlugin{base: newBase(c)}
}

// Render produces the response body for the given document.
func (p *JSONPlugin) Render(schema *spec.Map) ([]byte, error) {
	raw, err := schemaJSON("json", schema)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, &oaserrors.RenderError{Plugin: "json", Message: "indenting output", Cause: err}
	}
	return buf.Bytes(), nil
}

// YAMLPlugin serves the document as YAML, preserving the canonical
// field order.
type YAMLPlugin struct {
	base
}

// NewYAML constructs a YAML plugin serving /openapi.yaml by default.
func NewYAML(opts ...Option) *YAMLPlugin {
	c := &config{
		paths:     []string{"/openapi.yaml"},
		mediaType: "application/x-yaml",
	}
	for _, opt := range opts {
		opt(c)
	}
	return &YAMLPlugin{base: newBase(c)}
}

// Render produces the response body for the given document.
func (p *YAMLPlugin) Render(schema *spec.Map) ([]byte, error) {
	if schema == nil {
		return nil, &oaserrors.RenderError{Plugin: "yaml", Message: "nil schema"}
	}
	out, err := yaml.Marshal(schema)
	if err != nil {
		return nil, &oaserrors.RenderError{Plugin: "yaml", Message: "marshaling schema", Cause: err}
	}
	return out, nil
}
