package spec

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/erraggy/oasmodels/oaserrors"
)

// DefaultMaxDepth is the default bound on entity nesting depth for ToSchema.
const DefaultMaxDepth = 100

// Option configures a ToSchema call.
type Option func(*serializer)

// WithMaxDepth sets the maximum entity nesting depth.
// If depth is not positive, it is silently ignored and the default (100) is kept.
func WithMaxDepth(depth int) Option {
	return func(s *serializer) {
		if depth > 0 {
			s.maxDepth = depth
		}
		// If depth <= 0, keep the default (100)
	}
}

// WithLogger sets the logger used during serialization. A nil logger is ignored.
func WithLogger(logger Logger) Option {
	return func(s *serializer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// serializer holds per-call configuration. Each ToSchema call builds its own
// instance, so calls are independent and safe to run concurrently.
type serializer struct {
	maxDepth int
	logger   Logger
}

// ToSchema renders an entity (or any sub-entity) into its canonical map
// representation. The walk is depth-first in field declaration order:
//
//   - absent optional fields are omitted, never rendered as null
//   - primitives pass through unchanged
//   - nested entities become nested maps
//   - references render as exactly {"$ref": "<string>"}
//   - sequences keep their order; mapping keys are sorted for determinism
//   - extensions merge last and must not shadow a declared field
//
// The output is produced atomically: on any failure ToSchema returns a nil
// map and an error carrying the failing entity path. ToSchema never mutates
// its input and may be called concurrently on the same entity graph.
func ToSchema(entity any, opts ...Option) (*Map, error) {
	s := &serializer{maxDepth: DefaultMaxDepth, logger: NopLogger{}}
	for _, opt := range opts {
		opt(s)
	}

	if entity == nil {
		return nil, &oaserrors.ConfigError{Option: "entity", Message: "entity must not be nil"}
	}

	rendered, present, err := s.render(reflect.ValueOf(entity), "", 0)
	if err != nil {
		return nil, err
	}
	if !present {
		return nil, &oaserrors.ConfigError{Option: "entity", Value: entity, Message: "entity must not be nil"}
	}
	m, ok := rendered.(*Map)
	if !ok {
		return nil, &oaserrors.ConfigError{
			Option:  "entity",
			Value:   entity,
			Message: fmt.Sprintf("%T is not an entity", entity),
		}
	}

	s.logger.Debug("serialized entity graph", "type", fmt.Sprintf("%T", entity), "keys", m.Len())
	return m, nil
}

// render converts a single value. The second result reports presence: absent
// values (nil pointers, nil maps, empty unions) are omitted by the caller.
func (s *serializer) render(v reflect.Value, path string, depth int) (any, bool, error) {
	if !v.IsValid() {
		return nil, false, nil
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil, false, nil
		}
	}

	// Unwrap interface values before union dispatch: a typed-nil union
	// stored in an any field would otherwise satisfy refNode with a nil
	// receiver; the nil-pointer check above treats it as absent instead.
	if v.Kind() == reflect.Interface {
		return s.render(v.Elem(), path, depth)
	}

	// Tagged unions render before kind-based dispatch so that a Reference
	// variant is emitted uniformly for every OrRef instantiation.
	if rn, ok := v.Interface().(refNode); ok {
		ref, inline := rn.refNode()
		switch {
		case ref != nil:
			return s.render(reflect.ValueOf(ref), path, depth)
		case inline != nil:
			return s.render(reflect.ValueOf(inline), path, depth)
		default:
			// zero-value union: treated as absent
			return nil, false, nil
		}
	}

	switch v.Kind() {
	case reflect.Pointer:
		return s.render(v.Elem(), path, depth)

	case reflect.Struct:
		desc := descriptorsFor(v.Type())
		if len(desc.fields) == 0 && desc.extraIdx < 0 {
			// Not a declared entity (e.g. a time.Time inside an example
			// value); pass it through verbatim for the encoder to handle.
			return v.Interface(), true, nil
		}
		m, err := s.renderEntity(v, desc, path, depth)
		if err != nil {
			return nil, false, err
		}
		return m, true, nil

	case reflect.Map:
		return s.renderMapping(v, path, depth)

	case reflect.Slice, reflect.Array:
		return s.renderSequence(v, path, depth)

	case reflect.String:
		return v.String(), true, nil

	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return v.Interface(), true, nil

	default:
		return nil, false, &oaserrors.ConfigError{
			Option:  "entity",
			Message: fmt.Sprintf("unsupported value kind %s at %s", v.Kind(), path),
		}
	}
}

// renderEntity renders a declared entity struct: fields in declaration order
// under their serialized names, then extensions merged last.
func (s *serializer) renderEntity(v reflect.Value, desc *typeDesc, path string, depth int) (*Map, error) {
	if depth >= s.maxDepth {
		return nil, &oaserrors.RecursionLimitError{Path: path, Limit: s.maxDepth}
	}

	m := newMapSize(len(desc.fields))
	childDepth := depth + 1
	for _, f := range desc.fields {
		fv := v.Field(f.index)
		if f.omitEmpty && isEmptyValue(fv) {
			continue
		}
		rendered, present, err := s.render(fv, joinPath(path, f.name), childDepth)
		if err != nil {
			return nil, err
		}
		if !present {
			continue
		}
		m.Set(f.name, rendered)
	}

	if desc.extraIdx >= 0 {
		if err := s.mergeExtensions(v, desc, m, path); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// mergeExtensions merges the entity's Extra map into the output. Keys are
// emitted in sorted order for determinism and pass through verbatim; a key
// matching a declared field's serialized name is a collision.
func (s *serializer) mergeExtensions(v reflect.Value, desc *typeDesc, m *Map, path string) error {
	extra := v.Field(desc.extraIdx)
	if extra.Kind() != reflect.Map || extra.IsNil() {
		return nil
	}

	keys := make([]string, 0, extra.Len())
	for _, k := range extra.MapKeys() {
		keys = append(keys, k.String())
	}
	slices.Sort(keys)

	for _, key := range keys {
		if _, declared := desc.names[key]; declared {
			return &oaserrors.SchemaCollisionError{
				Path:       path,
				Key:        key,
				EntityType: v.Type().String(),
			}
		}
		m.Set(key, extra.MapIndex(reflect.ValueOf(key)).Interface())
	}
	return nil
}

// renderMapping renders a string-keyed map field. Go maps carry no insertion
// order, so keys are sorted to keep output deterministic across runs.
func (s *serializer) renderMapping(v reflect.Value, path string, depth int) (any, bool, error) {
	if v.IsNil() {
		return nil, false, nil
	}
	if v.Type().Key().Kind() != reflect.String {
		return nil, false, &oaserrors.ConfigError{
			Option:  "entity",
			Message: fmt.Sprintf("mapping keys must be strings, got %s at %s", v.Type().Key(), path),
		}
	}

	keys := make([]string, 0, v.Len())
	for _, k := range v.MapKeys() {
		keys = append(keys, k.String())
	}
	slices.Sort(keys)

	m := newMapSize(len(keys))
	keyType := v.Type().Key()
	for _, key := range keys {
		elem := v.MapIndex(reflect.ValueOf(key).Convert(keyType))
		rendered, present, err := s.render(elem, joinPath(path, key), depth)
		if err != nil {
			return nil, false, err
		}
		if !present {
			continue
		}
		m.Set(key, rendered)
	}
	return m, true, nil
}

// renderSequence renders a slice or array field, preserving element order.
// Nil slices are absent; non-nil empty slices render as an empty sequence.
func (s *serializer) renderSequence(v reflect.Value, path string, depth int) (any, bool, error) {
	if v.Kind() == reflect.Slice && v.IsNil() {
		return nil, false, nil
	}

	out := make([]any, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		rendered, present, err := s.render(v.Index(i), joinPath(path, strconv.Itoa(i)), depth)
		if err != nil {
			return nil, false, err
		}
		if !present {
			continue
		}
		out = append(out, rendered)
	}
	return out, true, nil
}

// joinPath appends a segment to a slash-delimited entity path.
func joinPath(path, segment string) string {
	if path == "" {
		return segment
	}
	return path + "/" + segment
}

// isEmptyValue reports whether a field value is omitted under omitempty.
// Containers are empty only when nil: a non-nil empty slice or map means
// "explicitly empty" and is rendered.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// fieldDesc describes one declared field of an entity type.
type fieldDesc struct {
	index     int
	name      string
	omitEmpty bool
}

// typeDesc is the cached field metadata for an entity type: declared fields
// in declaration order, the set of serialized names for collision checks,
// and the index of the extensions field (-1 when absent).
type typeDesc struct {
	fields   []fieldDesc
	names    map[string]struct{}
	extraIdx int
}

// typeDescCache caches typeDesc per entity type. Descriptors are immutable
// once built, so concurrent ToSchema calls share them safely.
var typeDescCache sync.Map // reflect.Type -> *typeDesc

// descriptorsFor returns the field descriptors for a struct type, building
// and caching them on first use. Only fields carrying an "oas" tag take part
// in serialization; the tag value is the field's serialized name.
func descriptorsFor(t reflect.Type) *typeDesc {
	if cached, ok := typeDescCache.Load(t); ok {
		return cached.(*typeDesc)
	}

	d := &typeDesc{extraIdx: -1, names: make(map[string]struct{})}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, ok := f.Tag.Lookup("oas")
		if !ok || tag == "-" {
			continue
		}
		name, opts := parseTag(tag)
		if hasTagOption(opts, "extensions") {
			d.extraIdx = i
			continue
		}
		if name == "" {
			continue
		}
		d.fields = append(d.fields, fieldDesc{
			index:     i,
			name:      name,
			omitEmpty: hasTagOption(opts, "omitempty"),
		})
		d.names[name] = struct{}{}
	}

	actual, _ := typeDescCache.LoadOrStore(t, d)
	return actual.(*typeDesc)
}

// parseTag splits an "oas" tag into the serialized name and its options.
func parseTag(tag string) (name, opts string) {
	name, opts, _ = strings.Cut(tag, ",")
	return name, opts
}

// hasTagOption reports whether a comma-separated option list contains opt.
func hasTagOption(opts, opt string) bool {
	for opts != "" {
		var cur string
		cur, opts, _ = strings.Cut(opts, ",")
		if cur == opt {
			return true
		}
	}
	return false
}
