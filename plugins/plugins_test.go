package plugins

import (
	"errors"
	"strings"
	"testing"

	"github.com/erraggy/oasmodels/oaserrors"
	"github.com/erraggy/oasmodels/spec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sampleDoc builds a small canonical document by hand, keys in the order
// the serialization engine would emit them.
func sampleDoc() *spec.Map {
	info := spec.NewMap()
	info.Set("title", "Pet Store")
	info.Set("version", "1.0.0")
	doc := spec.NewMap()
	doc.Set("openapi", "3.0.3")
	doc.Set("info", info)
	doc.Set("paths", spec.NewMap())
	return doc
}

func TestJSONPluginDefaults(t *testing.T) {
	p := NewJSON()
	assert.Equal(t, []string{"/openapi.json"}, p.Paths())
	assert.Equal(t, "application/json", p.MediaType())
	assert.True(t, p.HasPath("/openapi.json"))
	assert.False(t, p.HasPath("/openapi.yaml"))
}

func TestJSONPluginRender(t *testing.T) {
	out, err := NewJSON().Render(sampleDoc())
	require.NoError(t, err)

	expected := `{
  "openapi": "3.0.3",
  "info": {
    "title": "Pet Store",
    "version": "1.0.0"
  },
  "paths": {}
}`
	assert.Equal(t, expected, string(out))
}

func TestYAMLPluginRender(t *testing.T) {
	p := NewYAML()
	assert.Equal(t, []string{"/openapi.yaml"}, p.Paths())
	assert.Equal(t, "application/x-yaml", p.MediaType())

	out, err := p.Render(sampleDoc())
	require.NoError(t, err)

	text := string(out)
	assert.Contains(t, text, "openapi: 3.0.3")
	assert.Contains(t, text, "title: Pet Store")
	// Canonical key order survives YAML encoding.
	assert.Less(t, strings.Index(text, "openapi:"), strings.Index(text, "info:"))
	assert.Less(t, strings.Index(text, "info:"), strings.Index(text, "paths:"))
}

func TestHTMLPluginDefaults(t *testing.T) {
	tests := []struct {
		name   string
		plugin RenderPlugin
		path   string
		jsURL  string
	}{
		{
			name:   "swagger",
			plugin: NewSwagger(),
			path:   "/swagger",
			jsURL:  "https://cdn.jsdelivr.net/npm/swagger-ui-dist@5.17.14/swagger-ui-bundle.js",
		},
		{
			name:   "redoc",
			plugin: NewRedoc(),
			path:   "/redoc",
			jsURL:  "https://cdn.jsdelivr.net/npm/redoc@2.1.3/bundles/redoc.standalone.js",
		},
		{
			name:   "rapidoc",
			plugin: NewRapiDoc(),
			path:   "/rapidoc",
			jsURL:  "https://cdn.jsdelivr.net/npm/rapidoc@9.3.4/dist/rapidoc-min.js",
		},
		{
			name:   "scalar",
			plugin: NewScalar(),
			path:   "/scalar",
			jsURL:  "https://cdn.jsdelivr.net/npm/@scalar/api-reference@1.24.0",
		},
		{
			name:   "stoplight",
			plugin: NewStoplight(),
			path:   "/elements",
			jsURL:  "https://cdn.jsdelivr.net/npm/@stoplight/elements@8.0.4/web-components.min.js",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.path}, tt.plugin.Paths())
			assert.Equal(t, "text/html", tt.plugin.MediaType())
			assert.True(t, tt.plugin.HasPath(tt.path))

			out, err := tt.plugin.Render(sampleDoc())
			require.NoError(t, err)

			html := string(out)
			assert.Contains(t, html, "<!DOCTYPE html>")
			assert.Contains(t, html, tt.jsURL)
			assert.Contains(t, html, "<title>Pet Store - ")
			assert.Contains(t, html, defaultStyle)
		})
	}
}

func TestSwaggerRenderEmbedsSchema(t *testing.T) {
	out, err := NewSwagger().Render(sampleDoc())
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, `"openapi":"3.0.3"`)
	assert.Contains(t, html, "SwaggerUIBundle")
	assert.Contains(t, html, "https://cdn.jsdelivr.net/npm/swagger-ui-dist@5.17.14/swagger-ui.css")
}

func TestStoplightRenderEscapesAttribute(t *testing.T) {
	out, err := NewStoplight().Render(sampleDoc())
	require.NoError(t, err)

	html := string(out)
	// The document is injected into an HTML attribute, so html/template
	// escapes the quotes.
	assert.Contains(t, html, "apiDescriptionDocument=")
	assert.Contains(t, html, "&#34;openapi&#34;")
	assert.Contains(t, html, "https://cdn.jsdelivr.net/npm/@stoplight/elements@8.0.4/styles.min.css")
}

func TestPluginOptions(t *testing.T) {
	t.Run("version selects CDN assets", func(t *testing.T) {
		p := NewSwagger(WithVersion("6.0.0"))
		out, err := p.Render(sampleDoc())
		require.NoError(t, err)
		assert.Contains(t, string(out), "swagger-ui-dist@6.0.0/swagger-ui-bundle.js")
	})

	t.Run("explicit URLs bypass version", func(t *testing.T) {
		p := NewSwagger(
			WithVersion("6.0.0"),
			WithJSURL("https://assets.example.com/swagger.js"),
			WithCSSURL("https://assets.example.com/swagger.css"),
		)
		out, err := p.Render(sampleDoc())
		require.NoError(t, err)
		html := string(out)
		assert.Contains(t, html, "https://assets.example.com/swagger.js")
		assert.Contains(t, html, "https://assets.example.com/swagger.css")
		assert.NotContains(t, html, "swagger-ui-dist@6.0.0")
	})

	t.Run("custom paths", func(t *testing.T) {
		p := NewRedoc(WithPath("/docs", "/docs/"))
		assert.Equal(t, []string{"/docs", "/docs/"}, p.Paths())
		assert.True(t, p.HasPath("/docs/"))
		assert.False(t, p.HasPath("/redoc"))
	})

	t.Run("favicon and style", func(t *testing.T) {
		p := NewRapiDoc(
			WithFavicon(`<link rel="icon" href="/favicon.ico">`),
			WithStyle("<style>body { background: #111 }</style>"),
		)
		out, err := p.Render(sampleDoc())
		require.NoError(t, err)
		html := string(out)
		assert.Contains(t, html, `<link rel="icon" href="/favicon.ico">`)
		assert.Contains(t, html, "background: #111")
		assert.NotContains(t, html, defaultFavicon)
	})

	t.Run("media type override", func(t *testing.T) {
		p := NewYAML(WithMediaType("text/yaml"))
		assert.Equal(t, "text/yaml", p.MediaType())
	})
}

func TestRenderNilSchema(t *testing.T) {
	plugins := []RenderPlugin{
		NewJSON(),
		NewYAML(),
		NewSwagger(),
		NewRedoc(),
		NewRapiDoc(),
		NewScalar(),
		NewStoplight(),
	}
	for _, p := range plugins {
		_, err := p.Render(nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrRender))

		var rerr *oaserrors.RenderError
		require.ErrorAs(t, err, &rerr)
		assert.NotEmpty(t, rerr.Plugin)
	}
}

func TestDocumentTitleFallback(t *testing.T) {
	doc := spec.NewMap()
	doc.Set("openapi", "3.0.3")

	out, err := NewRedoc().Render(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<title>API - Redoc</title>")
}

func TestRenderFromSerializedDocument(t *testing.T) {
	api := &spec.OpenAPI{
		OpenAPI: "3.0.3",
		Info:    &spec.Info{Title: "Orders", Version: "2.0.0"},
		Paths:   spec.Paths{},
	}
	doc, err := spec.ToSchema(api)
	require.NoError(t, err)

	out, err := NewScalar().Render(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<title>Orders - Scalar</title>")
}
