package plugins

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/erraggy/oasmodels/oaserrors"
	"github.com/erraggy/oasmodels/spec"
)

// Default CDN asset versions. Pinned so generated pages are stable;
// override with WithVersion or WithJSURL/WithCSSURL.
const (
	defaultSwaggerVersion   = "5.17.14"
	defaultRedocVersion     = "2.1.3"
	defaultRapiDocVersion   = "9.3.4"
	defaultScalarVersion    = "1.24.0"
	defaultStoplightVersion = "8.0.4"
)

// htmlData is the template payload for the documentation UI pages.
type htmlData struct {
	Title   string
	Favicon template.HTML
	Style   template.HTML
	JSURL   string
	CSSURL  string
	// Schema is the document as compact JSON, injected into script
	// element bodies.
	Schema template.JS
	// SchemaAttr is the same JSON for HTML attribute contexts, where
	// html/template applies attribute escaping.
	SchemaAttr string
}

var (
	swaggerTemplate = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - Swagger UI</title>
    <link rel="stylesheet" href="{{.CSSURL}}">
    {{.Favicon}}
    {{.Style}}
</head>
<body>
    <div id="swagger-ui"></div>
    <script src="{{.JSURL}}"></script>
    <script>
        window.onload = function() {
            window.ui = SwaggerUIBundle({
                spec: {{.Schema}},
                dom_id: '#swagger-ui',
                deepLinking: true,
                presets: [
                    SwaggerUIBundle.presets.apis,
                    SwaggerUIBundle.SwaggerUIStandalonePreset
                ],
                layout: "BaseLayout"
            });
        };
    </script>
</body>
</html>
`))

	redocTemplate = template.Must(template.New("redoc").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - Redoc</title>
    {{.Favicon}}
    {{.Style}}
</head>
<body>
    <div id="redoc"></div>
    <script src="{{.JSURL}}"></script>
    <script>
        Redoc.init(
            {{.Schema}},
            {},
            document.getElementById('redoc')
        );
    </script>
</body>
</html>
`))

	rapidocTemplate = template.Must(template.New("rapidoc").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - RapiDoc</title>
    {{.Favicon}}
    {{.Style}}
    <script type="module" src="{{.JSURL}}"></script>
</head>
<body>
    <rapi-doc
        spec-url=""
        render-style="read"
        theme="light"
        show-header="false"
    >
        <script type="application/json">{{.Schema}}</script>
    </rapi-doc>
</body>
</html>
`))

	scalarTemplate = template.Must(template.New("scalar").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - Scalar</title>
    {{.Favicon}}
    {{.Style}}
</head>
<body>
    <script
        id="api-reference"
        data-configuration='{"theme": "purple"}'
        type="application/json"
    >{{.Schema}}</script>
    <script src="{{.JSURL}}"></script>
</body>
</html>
`))

	stoplightTemplate = template.Must(template.New("stoplight").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}} - Stoplight</title>
    <link rel="stylesheet" href="{{.CSSURL}}">
    {{.Favicon}}
    {{.Style}}
</head>
<body>
    <elements-api
        apiDescriptionDocument="{{.SchemaAttr}}"
        router="hash"
        layout="sidebar"
    ></elements-api>
    <script src="{{.JSURL}}"></script>
</body>
</html>
`))
)

// htmlPlugin is the shared engine behind the documentation UI plugins:
// one parsed template plus the resolved asset URLs.
type htmlPlugin struct {
	base
	name string
	tmpl *template.Template
	js   string
	css  string
}

// Render produces the response body for the given document.
func (p *htmlPlugin) Render(schema *spec.Map) ([]byte, error) {
	raw, err := schemaJSON(p.name, schema)
	if err != nil {
		return nil, err
	}
	data := htmlData{
		Title:      documentTitle(schema),
		Favicon:    template.HTML(p.favicon),
		Style:      template.HTML(p.style),
		JSURL:      p.js,
		CSSURL:     p.css,
		Schema:     template.JS(raw),
		SchemaAttr: string(raw),
	}
	var buf bytes.Buffer
	if err := p.tmpl.Execute(&buf, data); err != nil {
		return nil, &oaserrors.RenderError{Plugin: p.name, Message: "executing template", Cause: err}
	}
	return buf.Bytes(), nil
}

// htmlConfig seeds the HTML plugin defaults and applies options.
func htmlConfig(path, version string, opts []Option) *config {
	c := &config{
		paths:     []string{path},
		mediaType: "text/html",
		favicon:   defaultFavicon,
		style:     defaultStyle,
		version:   version,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SwaggerPlugin renders an interactive Swagger UI page.
type SwaggerPlugin struct {
	htmlPlugin
}

// NewSwagger constructs a Swagger UI plugin serving /swagger by default.
func NewSwagger(opts ...Option) *SwaggerPlugin {
	c := htmlConfig("/swagger", defaultSwaggerVersion, opts)
	if c.jsURL == "" {
		c.jsURL = fmt.Sprintf("https://cdn.jsdelivr.net/npm/swagger-ui-dist@%s/swagger-ui-bundle.js", c.version)
	}
	if c.cssURL == "" {
		c.cssURL = fmt.Sprintf("https://cdn.jsdelivr.net/npm/swagger-ui-dist@%s/swagger-ui.css", c.version)
	}
	return &SwaggerPlugin{htmlPlugin{
		base: newBase(c),
		name: "swagger",
		tmpl: swaggerTemplate,
		js:   c.jsURL,
		css:  c.cssURL,
	}}
}

// RedocPlugin renders a Redoc documentation page.
type RedocPlugin struct {
	htmlPlugin
}

// NewRedoc constructs a Redoc plugin serving /redoc by default.
func NewRedoc(opts ...Option) *RedocPlugin {
	c := htmlConfig("/redoc", defaultRedocVersion, opts)
	if c.jsURL == "" {
		c.jsURL = fmt.Sprintf("https://cdn.jsdelivr.net/npm/redoc@%s/bundles/redoc.standalone.js", c.version)
	}
	return &RedocPlugin{htmlPlugin{
		base: newBase(c),
		name: "redoc",
		tmpl: redocTemplate,
		js:   c.jsURL,
	}}
}

// RapiDocPlugin renders a RapiDoc documentation page.
type RapiDocPlugin struct {
	htmlPlugin
}

// NewRapiDoc constructs a RapiDoc plugin serving /rapidoc by default.
func NewRapiDoc(opts ...Option) *RapiDocPlugin {
	c := htmlConfig("/rapidoc", defaultRapiDocVersion, opts)
	if c.jsURL == "" {
		c.jsURL = fmt.Sprintf("https://cdn.jsdelivr.net/npm/rapidoc@%s/dist/rapidoc-min.js", c.version)
	}
	return &RapiDocPlugin{htmlPlugin{
		base: newBase(c),
		name: "rapidoc",
		tmpl: rapidocTemplate,
		js:   c.jsURL,
	}}
}

// ScalarPlugin renders a Scalar API reference page.
type ScalarPlugin struct {
	htmlPlugin
}

// NewScalar constructs a Scalar plugin serving /scalar by default.
func NewScalar(opts ...Option) *ScalarPlugin {
	c := htmlConfig("/scalar", defaultScalarVersion, opts)
	if c.jsURL == "" {
		c.jsURL = fmt.Sprintf("https://cdn.jsdelivr.net/npm/@scalar/api-reference@%s", c.version)
	}
	return &ScalarPlugin{htmlPlugin{
		base: newBase(c),
		name: "scalar",
		tmpl: scalarTemplate,
		js:   c.jsURL,
		css:  c.cssURL,
	}}
}

// StoplightPlugin renders a Stoplight Elements documentation page.
type StoplightPlugin struct {
	htmlPlugin
}

// NewStoplight constructs a Stoplight Elements plugin serving /elements
// by default.
func NewStoplight(opts ...Option) *StoplightPlugin {
	c := htmlConfig("/elements", defaultStoplightVersion, opts)
	if c.jsURL == "" {
		c.jsURL = fmt.Sprintf("https://cdn.jsdelivr.net/npm/@stoplight/elements@%s/web-components.min.js", c.version)
	}
	if c.cssURL == "" {
		c.cssURL = fmt.Sprintf("https://cdn.jsdelivr.net/npm/@stoplight/elements@%s/styles.min.css", c.version)
	}
	return &StoplightPlugin{htmlPlugin{
		base: newBase(c),
		name: "stoplight",
		tmpl: stoplightTemplate,
		js:   c.jsURL,
		css:  c.cssURL,
	}}
}
