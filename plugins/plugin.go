package plugins

import (
	"github.com/erraggy/oasmodels/oaserrors"
	"github.com/erraggy/oasmodels/spec"
	json "github.com/goccy/go-json"
)

// Default chrome shared by the HTML plugins. Overridable per plugin via
// WithFavicon and WithStyle.
const (
	defaultFavicon = `<link rel='icon' type='image/x-icon' href='data:image/x-icon;base64,AA'>`
	defaultStyle   = `<style>body { margin: 0; padding: 0 }</style>`
)

// RenderPlugin renders a canonical OpenAPI document for serving.
//
// Implementations are stateless after construction and safe for
// concurrent use.
type RenderPlugin interface {
	// Render produces the response body for the given document.
	Render(schema *spec.Map) ([]byte, error)
	// Paths returns the request paths this plugin serves.
	Paths() []string
	// MediaType returns the Content-Type of rendered output.
	MediaType() string
	// HasPath reports whether this plugin serves the given path.
	HasPath(path string) bool
}

// config collects the knobs shared across plugin constructors. Each
// constructor seeds its own defaults before applying options.
type config struct {
	paths     []string
	mediaType string
	favicon   string
	style     string
	version   string
	jsURL     string
	cssURL    string
}

// Option customizes a plugin at construction time.
type Option func(*config)

// WithPath replaces the paths the plugin serves.
func WithPath(paths ...string) Option {
	return func(c *config) {
		if len(paths) > 0 {
			c.paths = paths
		}
	}
}

// WithMediaType overrides the Content-Type of rendered output.
func WithMediaType(mediaType string) Option {
	return func(c *config) {
		if mediaType != "" {
			c.mediaType = mediaType
		}
	}
}

// WithFavicon replaces the favicon <link> tag injected into HTML output.
func WithFavicon(favicon string) Option {
	return func(c *config) { c.favicon = favicon }
}

// WithStyle replaces the base <style> block injected into HTML output.
func WithStyle(style string) Option {
	return func(c *config) { c.style = style }
}

// WithVersion selects the UI asset version loaded from the CDN. Ignored
// when WithJSURL/WithCSSURL provide explicit asset URLs.
func WithVersion(version string) Option {
	return func(c *config) {
		if version != "" {
			c.version = version
		}
	}
}

// WithJSURL overrides the UI script URL, bypassing CDN version selection.
func WithJSURL(url string) Option {
	return func(c *config) { c.jsURL = url }
}

// WithCSSURL overrides the UI stylesheet URL, bypassing CDN version
// selection.
func WithCSSURL(url string) Option {
	return func(c *config) { c.cssURL = url }
}

// base carries the fields every plugin shares and satisfies the
// path/media-type half of RenderPlugin.
type base struct {
	paths     []string
	mediaType string
	favicon   string
	style     string
}

func newBase(c *config) base {
	return base{
		paths:     c.paths,
		mediaType: c.mediaType,
		favicon:   c.favicon,
		style:     c.style,
	}
}

// Paths returns the request paths this plugin serves.
func (b *base) Paths() []string {
	out := make([]string, len(b.paths))
	copy(out, b.paths)
	return out
}

// MediaType returns the Content-Type of rendered output.
func (b *base) MediaType() string {
	return b.mediaType
}

// HasPath reports whether this plugin serves the given path.
func (b *base) HasPath(path string) bool {
	for _, p := range b.paths {
		if p == path {
			return true
		}
	}
	return false
}

// schemaJSON marshals the document compactly, preserving its key order.
func schemaJSON(plugin string, schema *spec.Map) ([]byte, error) {
	if schema == nil {
		return nil, &oaserrors.RenderError{Plugin: plugin, Message: "nil schema"}
	}
	raw, err := json.Marshal(schema)
	if err != nil {
		return nil, &oaserrors.RenderError{Plugin: plugin, Message: "marshaling schema", Cause: err}
	}
	return raw, nil
}

// documentTitle extracts info.title for HTML page titles, falling back
// to "API" when absent.
func documentTitle(schema *spec.Map) string {
	if schema == nil {
		return "API"
	}
	v, ok := schema.Get("info")
	if !ok {
		return "API"
	}
	info, ok := v.(*spec.Map)
	if !ok {
		return "API"
	}
	t, ok := info.Get("title")
	if !ok {
		return "API"
	}
	title, ok := t.(string)
	if !ok || title == "" {
		return "API"
	}
	return title
}
