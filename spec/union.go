package spec

// OrRef is a tagged union holding either an inline value or a Reference,
// never both. Fields the OAS declares as "X or Reference" use OrRef so that
// consumers can test for a $ref with IsRef instead of inspecting shape.
//
// Construct instances with [Of] or [RefTo]; the zero value is empty and is
// treated as absent during serialization.
type OrRef[T any] struct {
	value *T
	ref   *Reference
}

// Of wraps an inline value in an OrRef union.
func Of[T any](value *T) *OrRef[T] {
	return &OrRef[T]{value: value}
}

// RefTo creates an OrRef union occupied by a Reference to the given location.
// The type parameter names the referenced kind:
//
//	spec.RefTo[spec.Schema]("#/components/schemas/Pet")
func RefTo[T any](ref string) *OrRef[T] {
	return &OrRef[T]{ref: NewReference(ref)}
}

// IsRef reports whether the union holds a Reference.
func (o OrRef[T]) IsRef() bool {
	return o.ref != nil
}

// Ref returns the Reference variant, or nil when the union holds an
// inline value.
func (o OrRef[T]) Ref() *Reference {
	return o.ref
}

// Value returns the inline variant, or nil when the union holds a Reference.
func (o OrRef[T]) Value() *T {
	return o.value
}

// refNode exposes the occupied variant to the serialization engine.
// Exactly one of the results is non-nil for a constructed union; both are
// nil for the zero value, which serializes as absent.
func (o OrRef[T]) refNode() (*Reference, any) {
	if o.ref != nil {
		return o.ref, nil
	}
	if o.value != nil {
		return nil, o.value
	}
	return nil, nil
}

// refNode is implemented by OrRef instantiations; the serializer dispatches
// on it to keep reference rendering uniform across all union kinds.
type refNode interface {
	refNode() (*Reference, any)
}

// Union aliases for every "X or Reference" slot in the OAS 3.0 model.
type (
	// SchemaOrRef holds a Schema or a Reference to one.
	SchemaOrRef = OrRef[Schema]
	// ParameterOrRef holds a Parameter or a Reference to one.
	ParameterOrRef = OrRef[Parameter]
	// ResponseOrRef holds a Response or a Reference to one.
	ResponseOrRef = OrRef[Response]
	// ExampleOrRef holds an Example or a Reference to one.
	ExampleOrRef = OrRef[Example]
	// HeaderOrRef holds a Header or a Reference to one.
	HeaderOrRef = OrRef[Header]
	// RequestBodyOrRef holds a RequestBody or a Reference to one.
	RequestBodyOrRef = OrRef[RequestBody]
	// LinkOrRef holds a Link or a Reference to one.
	LinkOrRef = OrRef[Link]
	// CallbackOrRef holds a Callback or a Reference to one.
	CallbackOrRef = OrRef[Callback]
	// SecuritySchemeOrRef holds a SecurityScheme or a Reference to one.
	SecuritySchemeOrRef = OrRef[SecurityScheme]
)
