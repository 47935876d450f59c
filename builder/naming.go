package builder

import (
	"fmt"
	"path"
	"reflect"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SchemaNamingStrategy defines built-in schema naming conventions.
// Use these with WithSchemaNaming to control how schema names are generated
// from Go types.
type SchemaNamingStrategy int

const (
	// SchemaNamingDefault uses "package.TypeName" format.
	// Example: models.User
	SchemaNamingDefault SchemaNamingStrategy = iota

	// SchemaNamingPascalCase uses "PackageTypeName" format.
	// Example: models.User -> ModelsUser
	SchemaNamingPascalCase

	// SchemaNamingCamelCase uses "packageTypeName" format.
	// Example: models.User -> modelsUser
	SchemaNamingCamelCase

	// SchemaNamingSnakeCase uses "package_type_name" format.
	// Example: models.User -> models_user
	SchemaNamingSnakeCase

	// SchemaNamingKebabCase uses "package-type-name" format.
	// Example: models.User -> models-user
	SchemaNamingKebabCase

	// SchemaNamingTypeOnly uses just "TypeName" without package.
	// Example: models.User -> User
	// Warning: may cause conflicts with same-named types in different packages.
	SchemaNamingTypeOnly

	// SchemaNamingFullPath uses the full package path.
	// Example: models.User -> github.com_org_models_User
	SchemaNamingFullPath
)

// anonymousTypeName is the schema name used for anonymous struct types.
const anonymousTypeName = "AnonymousType"

// SchemaNameContext provides type metadata for custom naming templates and
// functions. All fields are populated before being passed to templates or
// custom naming functions.
type SchemaNameContext struct {
	// Type is the Go type name without package (e.g., "User", "Page[User]").
	Type string

	// TypeSanitized is Type with generic brackets replaced by underscores.
	TypeSanitized string

	// TypeBase is the type name without generic parameters (e.g., "Page").
	TypeBase string

	// Package is the package base name (e.g., "models").
	Package string

	// PackagePath is the full import path (e.g., "github.com/org/models").
	PackagePath string

	// PackagePathSanitized is PackagePath with slashes replaced.
	PackagePathSanitized string

	// IsGeneric indicates if the type has type parameters.
	IsGeneric bool

	// GenericParams contains the type parameter names if IsGeneric is true.
	GenericParams []string

	// IsAnonymous indicates if this is an anonymous struct type.
	IsAnonymous bool

	// IsPointer indicates if the original type was a pointer.
	IsPointer bool

	// Kind is the reflect.Kind as a string (e.g., "struct", "slice").
	Kind string
}

// SchemaNameFunc is the signature for custom schema naming functions.
type SchemaNameFunc func(ctx SchemaNameContext) string

// schemaNamer generates schema names with a configurable strategy.
// Priority: custom function > template > built-in strategy.
type schemaNamer struct {
	strategy SchemaNamingStrategy
	template *template.Template
	fn       SchemaNameFunc
}

func newSchemaNamer() *schemaNamer {
	return &schemaNamer{strategy: SchemaNamingDefault}
}

// name generates a schema name for the given type.
func (n *schemaNamer) name(t reflect.Type) string {
	ctx := n.buildContext(t)

	if n.fn != nil {
		return n.fn(ctx)
	}

	if n.template != nil {
		var buf strings.Builder
		if err := n.template.Execute(&buf, ctx); err != nil {
			return n.defaultName(ctx)
		}
		return sanitizeSchemaName(buf.String())
	}

	return n.applyStrategy(ctx)
}

// nameWithConflictCheck generates a schema name, falling back to the full
// package path when the plain name is already taken by a different type.
func (n *schemaNamer) nameWithConflictCheck(t reflect.Type, conflicts func(name string) bool) string {
	name := n.name(t)
	if conflicts(name) {
		ctx := n.buildContext(t)
		if ctx.PackagePathSanitized != "" {
			name = ctx.PackagePathSanitized + "_" + ctx.TypeSanitized
		}
	}
	return name
}

// buildContext creates a SchemaNameContext from a reflect.Type.
func (n *schemaNamer) buildContext(t reflect.Type) SchemaNameContext {
	isPointer := false
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
		isPointer = true
	}

	typeName := t.Name()
	pkgPath := t.PkgPath()

	ctx := SchemaNameContext{
		Type:                 typeName,
		Package:              path.Base(pkgPath),
		PackagePath:          pkgPath,
		PackagePathSanitized: strings.ReplaceAll(pkgPath, "/", "_"),
		IsAnonymous:          typeName == "",
		IsPointer:            isPointer,
		Kind:                 t.Kind().String(),
	}
	if pkgPath == "" {
		ctx.Package = ""
	}

	if ctx.IsAnonymous {
		return ctx
	}

	if strings.Contains(typeName, "[") {
		ctx.IsGeneric = true
		ctx.TypeBase = extractBaseTypeName(typeName)
		ctx.GenericParams = extractGenericParams(typeName)
		ctx.TypeSanitized = sanitizeSchemaName(typeName)
	} else {
		ctx.TypeBase = typeName
		ctx.TypeSanitized = typeName
	}

	return ctx
}

// applyStrategy applies a built-in naming strategy.
func (n *schemaNamer) applyStrategy(ctx SchemaNameContext) string {
	if ctx.IsAnonymous {
		return anonymousTypeName
	}

	switch n.strategy {
	case SchemaNamingPascalCase:
		return toPascalCase(ctx.Package) + toPascalCase(ctx.TypeSanitized)

	case SchemaNamingCamelCase:
		return toCamelCase(ctx.Package) + toPascalCase(ctx.TypeSanitized)

	case SchemaNamingSnakeCase:
		base := toSnakeCase(ctx.Package)
		typePart := toSnakeCase(ctx.TypeSanitized)
		if base == "" {
			return typePart
		}
		return base + "_" + typePart

	case SchemaNamingKebabCase:
		base := toKebabCase(ctx.Package)
		typePart := toKebabCase(ctx.TypeSanitized)
		if base == "" {
			return typePart
		}
		return base + "-" + typePart

	case SchemaNamingTypeOnly:
		return ctx.TypeSanitized

	case SchemaNamingFullPath:
		if ctx.PackagePathSanitized == "" {
			return ctx.TypeSanitized
		}
		return ctx.PackagePathSanitized + "_" + ctx.TypeSanitized

	default:
		return n.defaultName(ctx)
	}
}

// defaultName generates the package.TypeName format.
func (n *schemaNamer) defaultName(ctx SchemaNameContext) string {
	if ctx.IsAnonymous {
		return anonymousTypeName
	}
	if ctx.Package == "" {
		return ctx.TypeSanitized
	}
	return ctx.Package + "." + ctx.TypeSanitized
}

// extractBaseTypeName extracts the base type name from a generic type.
// Example: "Page[User]" -> "Page"
func extractBaseTypeName(name string) string {
	if idx := strings.Index(name, "["); idx != -1 {
		return name[:idx]
	}
	return name
}

// extractGenericParams extracts type parameters from a generic type name,
// splitting on top-level commas only.
// Example: "Page[User]" -> ["User"]
// Example: "Pair[string,int]" -> ["string", "int"]
func extractGenericParams(name string) []string {
	start := strings.Index(name, "[")
	end := strings.LastIndex(name, "]")
	if start == -1 || end == -1 || end <= start {
		return nil
	}

	paramStr := name[start+1 : end]
	var params []string
	var current strings.Builder
	depth := 0

	for _, r := range paramStr {
		switch r {
		case '[':
			depth++
			current.WriteRune(r)
		case ']':
			depth--
			current.WriteRune(r)
		case ',':
			if depth == 0 {
				params = append(params, strings.TrimSpace(current.String()))
				current.Reset()
			} else {
				current.WriteRune(r)
			}
		default:
			current.WriteRune(r)
		}
	}
	if current.Len() > 0 {
		params = append(params, strings.TrimSpace(current.String()))
	}
	return params
}

// sanitizeSchemaName replaces characters that are problematic in $ref URIs.
// Example: "Page[models.User]" -> "Page_models.User"
func sanitizeSchemaName(name string) string {
	name = strings.ReplaceAll(name, "[", "_")
	name = strings.ReplaceAll(name, "]", "_")
	name = strings.ReplaceAll(name, ",", "_")
	name = strings.ReplaceAll(name, " ", "_")
	for strings.Contains(name, "__") {
		name = strings.ReplaceAll(name, "__", "_")
	}
	return strings.TrimSuffix(name, "_")
}

// toPascalCase converts a string to PascalCase. Separators (underscore,
// hyphen, dot, slash) trigger capitalization of the next letter.
// Example: "user_profile" -> "UserProfile"
func toPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	capitalizeNext := true
	for _, r := range s {
		if r == '_' || r == '-' || r == '.' || r == '/' {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// toCamelCase converts a string to camelCase.
// Example: "user_profile" -> "userProfile"
func toCamelCase(s string) string {
	pascal := toPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// toSnakeCase converts a string to snake_case.
// Example: "UserProfile" -> "user_profile"
func toSnakeCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	for i, r := range s {
		switch {
		case unicode.IsUpper(r):
			if i > 0 {
				result.WriteRune('_')
			}
			result.WriteRune(unicode.ToLower(r))
		case r == '-' || r == '.' || r == '/':
			result.WriteRune('_')
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}

// toKebabCase converts a string to kebab-case.
// Example: "UserProfile" -> "user-profile"
func toKebabCase(s string) string {
	return strings.ReplaceAll(toSnakeCase(s), "_", "-")
}

// templateFuncs returns the function map for schema name templates.
func templateFuncs() template.FuncMap {
	// strings.Title is deprecated; use x/text for proper title casing
	titleCaser := cases.Title(language.English)

	return template.FuncMap{
		"pascal":     toPascalCase,
		"camel":      toCamelCase,
		"snake":      toSnakeCase,
		"kebab":      toKebabCase,
		"upper":      strings.ToUpper,
		"lower":      strings.ToLower,
		"title":      titleCaser.String,
		"sanitize":   sanitizeSchemaName,
		"trimPrefix": strings.TrimPrefix,
		"trimSuffix": strings.TrimSuffix,
		"replace":    strings.ReplaceAll,
	}
}

// parseSchemaNameTemplate parses a schema name template and validates it by
// executing it against a sample context.
func parseSchemaNameTemplate(tmpl string) (*template.Template, error) {
	t, err := template.New("schemaName").Funcs(templateFuncs()).Parse(tmpl)
	if err != nil {
		return nil, fmt.Errorf("builder: invalid schema name template: %w", err)
	}

	ctx := SchemaNameContext{
		Type:                 "TestType",
		TypeSanitized:        "TestType",
		TypeBase:             "TestType",
		Package:              "testpkg",
		PackagePath:          "github.com/test/testpkg",
		PackagePathSanitized: "github.com_test_testpkg",
		Kind:                 "struct",
	}
	var buf strings.Builder
	if err := t.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("builder: schema name template execution failed: %w", err)
	}
	return t, nil
}
