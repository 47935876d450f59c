package builder

import (
	"reflect"
	"slices"
	"time"

	"github.com/erraggy/oasmodels/spec"
)

// schemaFor converts a Go value's type to a schema-or-reference. Named struct
// types are registered under components.schemas and returned as references;
// everything else is returned inline.
func (b *Builder) schemaFor(v any) *spec.SchemaOrRef {
	if v == nil {
		return spec.Of(&spec.Schema{})
	}
	return b.schemaFromType(reflect.TypeOf(v), "")
}

// schemaForAs converts a Go value's type with a custom component name.
func (b *Builder) schemaForAs(name string, v any) *spec.SchemaOrRef {
	if v == nil {
		return spec.Of(&spec.Schema{})
	}
	return b.schemaFromType(reflect.TypeOf(v), name)
}

// schemaFromType generates a schema-or-reference for a reflect.Type.
// nameOverride, when non-empty, replaces the generated component name for
// named struct types.
func (b *Builder) schemaFromType(t reflect.Type, nameOverride string) *spec.SchemaOrRef {
	isPointer := false
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
		isPointer = true
	}

	// Special types render as string schemas regardless of their struct shape.
	if special := specialTypeSchema(t); special != nil {
		if isPointer {
			special.Nullable = true
		}
		return spec.Of(special)
	}

	// Already registered: return a reference.
	if b.schemaCache.get(t) != nil {
		if name := b.schemaCache.nameFor(t); name != "" {
			return b.refTo(name)
		}
	}

	// The walk cycled back to a type currently being generated. Emit a
	// reference; the component itself completes when the walk unwinds.
	if b.schemaCache.isInProgress(t) {
		name := b.componentName(t, nameOverride)
		return b.refTo(name)
	}

	switch t.Kind() {
	case reflect.Struct:
		b.schemaCache.markInProgress(t)
		defer b.schemaCache.clearInProgress(t)

		schema := b.structSchema(t)
		name := b.componentName(t, nameOverride)
		b.schemas[name] = schema
		b.schemaCache.set(t, name, schema)
		b.logger.Debug("registered component schema", "name", name, "type", t.String())
		return b.refTo(name)

	case reflect.Slice, reflect.Array:
		schema := &spec.Schema{
			Type:  spec.TypeArray,
			Items: b.schemaFromType(t.Elem(), ""),
		}
		if isPointer {
			schema.Nullable = true
		}
		return spec.Of(schema)

	case reflect.Map:
		schema := &spec.Schema{
			Type:                 spec.TypeObject,
			AdditionalProperties: b.schemaFromType(t.Elem(), ""),
		}
		if isPointer {
			schema.Nullable = true
		}
		return spec.Of(schema)

	default:
		schema := primitiveSchema(t)
		if isPointer {
			schema.Nullable = true
		}
		return spec.Of(schema)
	}
}

// componentName resolves the registered name for a struct type, preferring
// the override and falling back to the namer with conflict detection.
func (b *Builder) componentName(t reflect.Type, nameOverride string) string {
	if nameOverride != "" {
		return nameOverride
	}
	return b.namer.nameWithConflictCheck(t, func(n string) bool {
		existing := b.schemaCache.typeFor(n)
		return existing != nil && existing != t
	})
}

// structSchema reflects on a struct type to generate an object schema.
func (b *Builder) structSchema(t reflect.Type) *spec.Schema {
	properties := make(map[string]*spec.SchemaOrRef)
	var required []string

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		// Embedded structs inline their properties. An embedded field of
		// unexported struct type still promotes its exported fields, as
		// encoding/json does, so the embedded check runs before the
		// exported-field guard.
		if field.Anonymous && structKind(field.Type) {
			embedded := b.schemaFromType(field.Type, "")
			var embeddedSchema *spec.Schema
			if embedded.IsRef() {
				if name := refName(embedded.Ref().Ref); name != "" {
					embeddedSchema = b.schemas[name]
				}
			} else {
				embeddedSchema = embedded.Value()
			}
			if embeddedSchema == nil {
				continue
			}
			for propName, propSchema := range embeddedSchema.Properties {
				if _, exists := properties[propName]; !exists {
					properties[propName] = propSchema
				}
			}
			for _, req := range embeddedSchema.Required {
				if !slices.Contains(required, req) {
					required = append(required, req)
				}
			}
			continue
		}

		if !field.IsExported() {
			continue
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}
		name, jsonOpts := parseJSONTag(jsonTag)
		if name == "" {
			name = field.Name
		}

		fieldSchema := b.schemaFromType(field.Type, "")

		// Constraint tags only apply to inline schemas; a reference points
		// at a shared component that must not be mutated per-field.
		if tag := field.Tag.Get("oas"); tag != "" && !fieldSchema.IsRef() {
			fieldSchema = spec.Of(applyConstraintTag(fieldSchema.Value(), tag))
		}

		properties[name] = fieldSchema

		if isFieldRequired(field, jsonOpts) {
			required = append(required, name)
		}
	}

	return &spec.Schema{
		Type:       spec.TypeObject,
		Properties: properties,
		Required:   required,
	}
}

// structKind reports whether t is a struct or pointer to struct.
func structKind(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// specialTypeSchema handles well-known types that should not be reflected
// structurally.
func specialTypeSchema(t reflect.Type) *spec.Schema {
	if t == reflect.TypeOf(time.Time{}) {
		return &spec.Schema{Type: spec.TypeString, Format: spec.FormatDateTime}
	}
	// Matched by name to avoid importing the uuid package.
	if t.String() == "uuid.UUID" {
		return &spec.Schema{Type: spec.TypeString, Format: spec.FormatUUID}
	}
	return nil
}

// primitiveSchema generates a schema for primitive types.
func primitiveSchema(t reflect.Type) *spec.Schema {
	switch t.Kind() {
	case reflect.String:
		return &spec.Schema{Type: spec.TypeString}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return &spec.Schema{Type: spec.TypeInteger, Format: spec.FormatInt32}

	case reflect.Int64, reflect.Uint64:
		return &spec.Schema{Type: spec.TypeInteger, Format: spec.FormatInt64}

	case reflect.Float32:
		return &spec.Schema{Type: spec.TypeNumber, Format: spec.FormatFloat}

	case reflect.Float64:
		return &spec.Schema{Type: spec.TypeNumber, Format: spec.FormatDouble}

	case reflect.Bool:
		return &spec.Schema{Type: spec.TypeBoolean}

	case reflect.Interface:
		// any accepts anything
		return &spec.Schema{}

	default:
		return &spec.Schema{}
	}
}

// schemaRefPrefix is the components pointer prefix for OAS 3.x schemas.
const schemaRefPrefix = "#/components/schemas/"

// SchemaRef returns the $ref string for a named component schema.
func SchemaRef(name string) string {
	return schemaRefPrefix + name
}

// refTo creates a schema union holding a reference to a named component.
func (b *Builder) refTo(name string) *spec.SchemaOrRef {
	return spec.RefTo[spec.Schema](SchemaRef(name))
}

// refName extracts the component name from a schema $ref string.
func refName(ref string) string {
	if len(ref) > len(schemaRefPrefix) && ref[:len(schemaRefPrefix)] == schemaRefPrefix {
		return ref[len(schemaRefPrefix):]
	}
	return ""
}
