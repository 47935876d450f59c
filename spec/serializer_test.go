package spec

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	json "github.com/goccy/go-json"

	"github.com/erraggy/oasmodels/oaserrors"
)

// mustToSchema renders an entity and fails the test on error.
func mustToSchema(t *testing.T, entity any, opts ...Option) *Map {
	t.Helper()
	m, err := ToSchema(entity, opts...)
	require.NoError(t, err)
	require.NotNil(t, m)
	return m
}

// childMap walks nested maps by key, failing the test when a key is missing
// or holds a non-map value.
func childMap(t *testing.T, m *Map, keys ...string) *Map {
	t.Helper()
	for _, key := range keys {
		v, ok := m.Get(key)
		require.True(t, ok, "missing key %q", key)
		child, ok := v.(*Map)
		require.True(t, ok, "key %q holds %T, not a map", key, v)
		m = child
	}
	return m
}

// renderJSON marshals a canonical map and fails the test on error.
func renderJSON(t *testing.T, m *Map) string {
	t.Helper()
	data, err := m.MarshalJSON()
	require.NoError(t, err)
	return string(data)
}

// schemaChain builds a linear schema graph of the given entity count, each
// array schema wrapping the next via items.
func schemaChain(entities int) *Schema {
	s := &Schema{Type: TypeString}
	for i := 1; i < entities; i++ {
		s = &Schema{Type: TypeArray, Items: Of(s)}
	}
	return s
}

func minimalDoc() *OpenAPI {
	return &OpenAPI{
		OpenAPI: "3.0.3",
		Info:    &Info{Title: "My API", Version: "1.0.0"},
		Paths: Paths{
			"/users": {
				Get: &Operation{
					Summary: "List users",
					Responses: Responses{
						"200": Of(&Response{Description: "Success"}),
					},
				},
			},
		},
	}
}

func TestToSchemaMinimalDocument(t *testing.T) {
	m := mustToSchema(t, minimalDoc())

	assert.Equal(t, []string{"openapi", "info", "paths"}, m.Keys())
	assert.Equal(t,
		`{"openapi":"3.0.3","info":{"title":"My API","version":"1.0.0"},"paths":{"/users":{"get":{"summary":"List users","responses":{"200":{"description":"Success"}}}}}}`,
		renderJSON(t, m))
}

func TestToSchemaMinimalDocumentYAML(t *testing.T) {
	m := mustToSchema(t, minimalDoc())

	out, err := yaml.Marshal(m)
	require.NoError(t, err)

	text := string(out)
	assert.Less(t, strings.Index(text, "openapi:"), strings.Index(text, "info:"))
	assert.Less(t, strings.Index(text, "info:"), strings.Index(text, "paths:"))
	assert.Contains(t, text, "title: My API")
	assert.Contains(t, text, `"200":`)
}

func TestToSchemaOmitsAbsentFields(t *testing.T) {
	m := mustToSchema(t, &Info{Title: "Minimal", Version: "0.1.0"})

	assert.Equal(t, []string{"title", "version"}, m.Keys())
	assert.False(t, m.Has("description"))
	assert.False(t, m.Has("contact"))
	// absent means omitted entirely, never rendered as null
	assert.NotContains(t, renderJSON(t, m), "null")
}

func TestToSchemaExplicitlyEmptyContainers(t *testing.T) {
	op := &Operation{
		Summary:   "noop",
		Responses: Responses{},
	}
	m := mustToSchema(t, op)
	assert.Equal(t, `{"summary":"noop","responses":{}}`, renderJSON(t, m))

	s := &Schema{
		Type:     TypeObject,
		Required: []string{},
	}
	m = mustToSchema(t, s)
	assert.Equal(t, `{"type":"object","required":[]}`, renderJSON(t, m))

	// a nil container is absent, not empty
	m = mustToSchema(t, &Schema{Type: TypeObject})
	assert.False(t, m.Has("required"))
}

func TestToSchemaFieldRenames(t *testing.T) {
	tests := []struct {
		name   string
		entity any
		want   string
	}{
		{
			name:   "reference dollar key",
			entity: NewReference("#/components/schemas/Pet"),
			want:   `{"$ref":"#/components/schemas/Pet"}`,
		},
		{
			name:   "operation id camel case",
			entity: &Operation{OperationID: "listPets", Responses: Responses{"default": Of(&Response{Description: "ok"})}},
			want:   `{"operationId":"listPets","responses":{"default":{"description":"ok"}}}`,
		},
		{
			name:   "schema default keyword",
			entity: &Schema{Type: TypeString, Default: "none"},
			want:   `{"default":"none","type":"string"}`,
		},
		{
			name:   "parameter location",
			entity: &Parameter{Name: "limit", In: InQuery},
			want:   `{"name":"limit","in":"query"}`,
		},
		{
			name:   "security scheme openIdConnectUrl",
			entity: &SecurityScheme{Type: SecurityOpenIDConnect, OpenIDConnectURL: "https://example.com/.well-known"},
			want:   `{"type":"openIdConnect","openIdConnectUrl":"https://example.com/.well-known"}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderJSON(t, mustToSchema(t, tt.entity)))
		})
	}
}

func TestToSchemaReferenceExclusivity(t *testing.T) {
	p := &Parameter{
		Name:   "petId",
		In:     InPath,
		Schema: RefTo[Schema]("#/components/schemas/PetID"),
	}
	m := mustToSchema(t, p)

	ref := childMap(t, m, "schema")
	assert.Equal(t, []string{"$ref"}, ref.Keys(), "a reference renders as exactly one key")
	v, _ := ref.Get("$ref")
	assert.Equal(t, "#/components/schemas/PetID", v)
}

func TestToSchemaNestedReference(t *testing.T) {
	doc := &OpenAPI{
		OpenAPI: "3.0.3",
		Info:    &Info{Title: "Pets", Version: "1.0.0"},
		Paths: Paths{
			"/pets": {
				Get: &Operation{
					Responses: Responses{
						"200": Of(&Response{
							Description: "A list of pets",
							Content: map[string]*MediaType{
								"application/json": {
									Schema: Of(&Schema{
										Type:  TypeArray,
										Items: RefTo[Schema]("#/components/schemas/Pet"),
									}),
								},
							},
						}),
					},
				},
			},
		},
		Components: &Components{
			Schemas: map[string]*Schema{
				"Pet": {
					Type: TypeObject,
					Properties: map[string]*SchemaOrRef{
						"id":   Of(&Schema{Type: TypeInteger, Format: FormatInt64}),
						"name": Of(&Schema{Type: TypeString}),
					},
					Required: []string{"id", "name"},
				},
			},
		},
	}
	m := mustToSchema(t, doc)

	items := childMap(t, m, "paths", "/pets", "get", "responses", "200", "content", "application/json", "schema", "items")
	assert.Equal(t, []string{"$ref"}, items.Keys())

	pet := childMap(t, m, "components", "schemas", "Pet")
	assert.Equal(t, []string{"type", "properties", "required"}, pet.Keys())
	props := childMap(t, pet, "properties")
	// mapping keys are sorted for determinism
	assert.Equal(t, []string{"id", "name"}, props.Keys())
}

func TestToSchemaUnionZeroValueIsAbsent(t *testing.T) {
	p := &Parameter{
		Name:   "verbose",
		In:     InQuery,
		Schema: &SchemaOrRef{},
	}
	m := mustToSchema(t, p)
	assert.False(t, m.Has("schema"))
}

func TestToSchemaTypedNilUnionInAnyField(t *testing.T) {
	// A typed-nil union behind an any field is absent, same as a nil
	// typed field; it must not reach the union dispatch.
	s := &Schema{
		Type:    TypeString,
		Example: (*SchemaOrRef)(nil),
	}
	m := mustToSchema(t, s)
	assert.Equal(t, []string{"type"}, m.Keys())

	mt := &MediaType{Example: (*Reference)(nil)}
	m = mustToSchema(t, mt)
	assert.Equal(t, 0, m.Len())
}

func TestToSchemaExtensionsMergeLast(t *testing.T) {
	info := &Info{
		Title:   "Extended",
		Version: "2.0.0",
		Extra: map[string]any{
			"x-logo":     map[string]any{"url": "https://example.com/logo.png"},
			"x-audience": "internal",
		},
	}
	m := mustToSchema(t, info)

	// declared fields first, then extensions in sorted key order
	assert.Equal(t, []string{"title", "version", "x-audience", "x-logo"}, m.Keys())
}

func TestToSchemaExtensionsPassThroughVerbatim(t *testing.T) {
	meta := map[string]any{"nested": true, "count": 3}
	m := mustToSchema(t, &Info{
		Title:   "t",
		Version: "v",
		Extra:   map[string]any{"x-meta": meta},
	})

	v, ok := m.Get("x-meta")
	require.True(t, ok)
	assert.Equal(t, meta, v, "extension values are not walked or transformed")
}

func TestToSchemaExtensionCollision(t *testing.T) {
	doc := &OpenAPI{
		OpenAPI: "3.0.3",
		Info: &Info{
			Title:   "Colliding",
			Version: "1.0.0",
			Extra:   map[string]any{"title": "shadowed"},
		},
		Paths: Paths{},
	}

	m, err := ToSchema(doc)
	assert.Nil(t, m, "output is all-or-nothing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrSchemaCollision))

	var collErr *oaserrors.SchemaCollisionError
	require.True(t, errors.As(err, &collErr))
	assert.Equal(t, "info", collErr.Path)
	assert.Equal(t, "title", collErr.Key)
	assert.Equal(t, "spec.Info", collErr.EntityType)
}

func TestToSchemaCollisionPathBreadcrumb(t *testing.T) {
	doc := minimalDoc()
	doc.Paths["/users"].Get.Extra = map[string]any{"summary": "shadowed"}

	_, err := ToSchema(doc)
	var collErr *oaserrors.SchemaCollisionError
	require.ErrorAs(t, err, &collErr)
	assert.Equal(t, "paths//users/get", collErr.Path)
}

func TestToSchemaSortsMappingKeys(t *testing.T) {
	doc := minimalDoc()
	doc.Paths["/zoo"] = &PathItem{Summary: "zoo"}
	doc.Paths["/admin"] = &PathItem{Summary: "admin"}

	paths := childMap(t, mustToSchema(t, doc), "paths")
	assert.Equal(t, []string{"/admin", "/users", "/zoo"}, paths.Keys())
}

func TestToSchemaDeterministic(t *testing.T) {
	doc := minimalDoc()
	doc.Info.Extra = map[string]any{"x-b": 1, "x-a": 2, "x-c": 3}
	doc.Paths["/pets"] = &PathItem{Summary: "pets"}
	doc.Paths["/admin"] = &PathItem{Summary: "admin"}

	first := renderJSON(t, mustToSchema(t, doc))
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, renderJSON(t, mustToSchema(t, doc)))
	}

	var a, b any
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.NoError(t, json.Unmarshal([]byte(renderJSON(t, mustToSchema(t, doc))), &b))
	assert.Empty(t, cmp.Diff(a, b))
}

func TestToSchemaConcurrent(t *testing.T) {
	doc := minimalDoc()
	want := renderJSON(t, mustToSchema(t, doc))

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m, err := ToSchema(doc)
			if err != nil {
				return
			}
			data, err := m.MarshalJSON()
			if err != nil {
				return
			}
			results[i] = string(data)
		}(i)
	}
	wg.Wait()

	for i, got := range results {
		assert.Equal(t, want, got, "goroutine %d", i)
	}
}

func TestToSchemaRecursionLimit(t *testing.T) {
	t.Run("chain at the bound succeeds", func(t *testing.T) {
		m, err := ToSchema(schemaChain(1000), WithMaxDepth(1000))
		require.NoError(t, err)
		require.NotNil(t, m)
	})

	t.Run("chain past the bound fails", func(t *testing.T) {
		m, err := ToSchema(schemaChain(1001), WithMaxDepth(1000))
		assert.Nil(t, m)
		require.Error(t, err)
		assert.True(t, errors.Is(err, oaserrors.ErrRecursionLimit))

		var limitErr *oaserrors.RecursionLimitError
		require.True(t, errors.As(err, &limitErr))
		assert.Equal(t, 1000, limitErr.Limit)
		assert.NotEmpty(t, limitErr.Path)
	})

	t.Run("default limit is 100", func(t *testing.T) {
		_, err := ToSchema(schemaChain(100))
		assert.NoError(t, err)

		_, err = ToSchema(schemaChain(101))
		var limitErr *oaserrors.RecursionLimitError
		require.ErrorAs(t, err, &limitErr)
		assert.Equal(t, DefaultMaxDepth, limitErr.Limit)
	})

	t.Run("non-positive option is ignored", func(t *testing.T) {
		_, err := ToSchema(schemaChain(101), WithMaxDepth(0))
		assert.True(t, errors.Is(err, oaserrors.ErrRecursionLimit))
	})

	t.Run("cyclic graph terminates", func(t *testing.T) {
		s := &Schema{Type: TypeObject}
		s.Properties = map[string]*SchemaOrRef{"self": Of(s)}

		m, err := ToSchema(s)
		assert.Nil(t, m)
		assert.True(t, errors.Is(err, oaserrors.ErrRecursionLimit))
	})
}

func TestToSchemaInvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		entity any
	}{
		{name: "nil", entity: nil},
		{name: "integer", entity: 42},
		{name: "string", entity: "not an entity"},
		{name: "nil entity pointer", entity: (*Info)(nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ToSchema(tt.entity)
			assert.Nil(t, m)
			assert.True(t, errors.Is(err, oaserrors.ErrConfig))
		})
	}
}

func TestToSchemaEmptyEntity(t *testing.T) {
	m := mustToSchema(t, &Schema{})
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, "{}", renderJSON(t, m))
}

func TestToSchemaDoesNotMutateInput(t *testing.T) {
	doc := minimalDoc()
	doc.Info.Extra = map[string]any{"x-one": 1}

	_ = mustToSchema(t, doc)

	assert.Equal(t, "My API", doc.Info.Title)
	assert.Equal(t, map[string]any{"x-one": 1}, doc.Info.Extra)
	assert.Len(t, doc.Paths, 1)
}

func TestToSchemaScalarFields(t *testing.T) {
	max := 10.0
	maxLen := 64
	explode := true
	s := &Schema{
		Type:       TypeString,
		Maximum:    &max,
		MaxLength:  &maxLen,
		Nullable:   true,
		Deprecated: true,
		Enum:       []any{"a", "b"},
	}
	m := mustToSchema(t, s)
	assert.Equal(t,
		`{"type":"string","enum":["a","b"],"maximum":10,"maxLength":64,"nullable":true,"deprecated":true}`,
		renderJSON(t, m))

	// typed enums and pointer scalars inside other entities
	p := &Parameter{Name: "tags", In: InQuery, Style: StyleForm, Explode: &explode}
	assert.Equal(t,
		`{"name":"tags","in":"query","style":"form","explode":true}`,
		renderJSON(t, mustToSchema(t, p)))
}
