package builder

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/erraggy/oasmodels/spec"
)

// parseJSONTag parses a struct field's json tag.
// Returns the field name and options (like "omitempty").
func parseJSONTag(tag string) (name string, opts []string) {
	if tag == "" {
		return "", nil
	}

	parts := strings.Split(tag, ",")
	name = parts[0]
	if len(parts) > 1 {
		opts = parts[1:]
	}
	return name, opts
}

// hasOmitempty checks if json tag options include omitempty.
func hasOmitempty(opts []string) bool {
	for _, opt := range opts {
		if opt == "omitempty" {
			return true
		}
	}
	return false
}

// isFieldRequired determines if a struct field should be marked as required.
// Rules:
//  1. Non-pointer fields without omitempty are required
//  2. Fields with oas:"required=true" are explicitly required
//  3. Fields with oas:"required=false" are explicitly optional
//  4. Pointer fields are optional by default
func isFieldRequired(field reflect.StructField, jsonOpts []string) bool {
	if tag := field.Tag.Get("oas"); tag != "" {
		opts := parseConstraintTag(tag)
		if val, ok := opts["required"]; ok {
			return val == "true"
		}
	}

	if field.Type.Kind() == reflect.Pointer {
		return false
	}

	return !hasOmitempty(jsonOpts)
}

// parseConstraintTag parses the oas struct tag on a user type into key-value
// pairs. Supports formats like: oas:"description=User ID,minLength=1"
// Bare keys (e.g. "deprecated") are treated as boolean true.
func parseConstraintTag(tag string) map[string]string {
	result := make(map[string]string)
	if tag == "" {
		return result
	}

	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if idx := strings.Index(part, "="); idx > 0 {
			result[strings.TrimSpace(part[:idx])] = strings.TrimSpace(part[idx+1:])
		} else {
			result[part] = "true"
		}
	}
	return result
}

// applyConstraintTag applies oas tag options to a generated schema.
// The input schema is never modified; a copy is returned when any option
// applies.
func applyConstraintTag(schema *spec.Schema, tag string) *spec.Schema {
	opts := parseConstraintTag(tag)
	if len(opts) == 0 {
		return schema
	}

	result := copySchema(schema)
	for key, value := range opts {
		switch key {
		case "description":
			result.Description = value

		case "title":
			result.Title = value

		case "format":
			result.Format = spec.DataFormat(value)

		case "enum":
			enumValues := strings.Split(value, "|")
			result.Enum = make([]any, len(enumValues))
			for i, v := range enumValues {
				result.Enum[i] = strings.TrimSpace(v)
			}

		case "minimum":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				result.Minimum = &f
			}

		case "maximum":
			if f, err := strconv.ParseFloat(value, 64); err == nil {
				result.Maximum = &f
			}

		case "minLength":
			if n, err := strconv.Atoi(value); err == nil {
				result.MinLength = &n
			}

		case "maxLength":
			if n, err := strconv.Atoi(value); err == nil {
				result.MaxLength = &n
			}

		case "pattern":
			result.Pattern = value

		case "minItems":
			if n, err := strconv.Atoi(value); err == nil {
				result.MinItems = &n
			}

		case "maxItems":
			if n, err := strconv.Atoi(value); err == nil {
				result.MaxItems = &n
			}

		case "readOnly":
			result.ReadOnly = value == "true"

		case "writeOnly":
			result.WriteOnly = value == "true"

		case "nullable":
			result.Nullable = value == "true"

		case "deprecated":
			result.Deprecated = value == "true"

		case "example":
			result.Example = value

		case "default":
			result.Default = parseDefaultValue(value, result.Type)
		}
	}
	return result
}

// copySchema creates a copy of a schema deep enough for tag application:
// scalar and pointer constraint fields are duplicated, nested structures are
// shared.
func copySchema(s *spec.Schema) *spec.Schema {
	if s == nil {
		return &spec.Schema{}
	}

	out := *s

	if s.Minimum != nil {
		v := *s.Minimum
		out.Minimum = &v
	}
	if s.Maximum != nil {
		v := *s.Maximum
		out.Maximum = &v
	}
	if s.MultipleOf != nil {
		v := *s.MultipleOf
		out.MultipleOf = &v
	}
	if s.MinLength != nil {
		v := *s.MinLength
		out.MinLength = &v
	}
	if s.MaxLength != nil {
		v := *s.MaxLength
		out.MaxLength = &v
	}
	if s.MinItems != nil {
		v := *s.MinItems
		out.MinItems = &v
	}
	if s.MaxItems != nil {
		v := *s.MaxItems
		out.MaxItems = &v
	}
	if s.MinProperties != nil {
		v := *s.MinProperties
		out.MinProperties = &v
	}
	if s.MaxProperties != nil {
		v := *s.MaxProperties
		out.MaxProperties = &v
	}
	if s.Enum != nil {
		out.Enum = make([]any, len(s.Enum))
		copy(out.Enum, s.Enum)
	}
	if s.Required != nil {
		out.Required = make([]string, len(s.Required))
		copy(out.Required, s.Required)
	}

	return &out
}

// parseDefaultValue parses a default value string based on the schema type.
func parseDefaultValue(value string, schemaType spec.DataType) any {
	switch schemaType {
	case spec.TypeInteger:
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
	case spec.TypeNumber:
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	case spec.TypeBoolean:
		return value == "true"
	}
	return value
}
