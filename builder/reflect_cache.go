package builder

import (
	"reflect"

	"github.com/erraggy/oasmodels/spec"
)

// schemaCache tracks reflection-generated schemas per Builder. It prevents
// duplicate generation and detects recursive types so they can be emitted as
// component references instead of looping.
type schemaCache struct {
	byType     map[reflect.Type]*spec.Schema
	byName     map[string]reflect.Type
	nameByType map[reflect.Type]string
	inProgress map[reflect.Type]bool
}

func newSchemaCache() *schemaCache {
	return &schemaCache{
		byType:     make(map[reflect.Type]*spec.Schema),
		byName:     make(map[string]reflect.Type),
		nameByType: make(map[reflect.Type]string),
		inProgress: make(map[reflect.Type]bool),
	}
}

// get returns the cached schema for a type, or nil.
func (c *schemaCache) get(t reflect.Type) *spec.Schema {
	return c.byType[t]
}

// set caches a schema under the given type and component name.
func (c *schemaCache) set(t reflect.Type, name string, schema *spec.Schema) {
	c.byType[t] = schema
	c.byName[name] = t
	c.nameByType[t] = name
}

// isInProgress reports whether the type is currently being generated,
// which means the walk has cycled back to it.
func (c *schemaCache) isInProgress(t reflect.Type) bool {
	return c.inProgress[t]
}

func (c *schemaCache) markInProgress(t reflect.Type) {
	c.inProgress[t] = true
}

func (c *schemaCache) clearInProgress(t reflect.Type) {
	delete(c.inProgress, t)
}

// nameFor returns the component name registered for a type, or "".
func (c *schemaCache) nameFor(t reflect.Type) string {
	return c.nameByType[t]
}

// typeFor returns the type registered under a component name, or nil.
func (c *schemaCache) typeFor(name string) reflect.Type {
	return c.byName[name]
}
