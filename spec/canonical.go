package spec

import (
	"bytes"
	"fmt"
	"math"
	"slices"
	"strconv"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// Map is the canonical output of the serialization engine: a string-keyed
// mapping that preserves insertion order. Values are primitives, []any
// sequences, nested *Map values, or verbatim extension values.
//
// Map implements json.Marshaler and the yaml Marshaler convention, so the
// output of [ToSchema] can be handed directly to either encoder and keys
// will be emitted in the order the engine set them.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap creates an empty canonical map.
func NewMap() *Map {
	return &Map{values: make(map[string]any)}
}

// newMapSize creates an empty canonical map with capacity hints.
func newMapSize(n int) *Map {
	return &Map{
		keys:   make([]string, 0, n),
		values: make(map[string]any, n),
	}
}

// Set stores value under key. A new key is appended to the key order; an
// existing key keeps its position.
func (m *Map) Set(key string, value any) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether the key is present.
func (m *Map) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Len returns the number of keys.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Map) Keys() []string {
	return slices.Clone(m.keys)
}

// MapItem is a single key/value entry of a canonical map.
type MapItem struct {
	Key   string
	Value any
}

// Items returns the entries in insertion order. The returned slice is a
// copy; values are not.
func (m *Map) Items() []MapItem {
	items := make([]MapItem, 0, len(m.keys))
	for _, k := range m.keys {
		items = append(items, MapItem{Key: k, Value: m.values[k]})
	}
	return items
}

// MarshalJSON encodes the map as a JSON object with keys in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeCanonicalJSON(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeCanonicalJSON writes a canonical value to buf, preserving the key
// order of nested *Map values.
func writeCanonicalJSON(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case *Map:
		buf.WriteByte('{')
		for i, key := range val.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			keyJSON, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(keyJSON)
			buf.WriteByte(':')
			if err := writeCanonicalJSON(buf, val.values[key]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case []any:
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonicalJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	default:
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	}
}

// MarshalYAML returns a yaml.Node tree so that YAML encoders emit keys in
// insertion order rather than sorting them.
func (m *Map) MarshalYAML() (any, error) {
	return canonicalToNode(m)
}

// canonicalToNode converts a canonical value to a yaml.Node.
func canonicalToNode(v any) (*yaml.Node, error) {
	if v == nil {
		return scalarNode("!!null", "null"), nil
	}

	switch val := v.(type) {
	case *Map:
		// Guard against integer overflow: len*2 could overflow for very large maps
		mapLen := val.Len()
		if mapLen > math.MaxInt/2 {
			return nil, fmt.Errorf("map size %d exceeds safe conversion limit", mapLen)
		}
		node := &yaml.Node{
			Kind:    yaml.MappingNode,
			Content: make([]*yaml.Node, 0, mapLen*2),
		}
		for _, key := range val.keys {
			valNode, err := canonicalToNode(val.values[key])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalarNode("!!str", key), valNode)
		}
		return node, nil

	case map[string]any:
		// Verbatim extension values carry no insertion order.
		// Sort keys for determinism.
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		node := &yaml.Node{
			Kind:    yaml.MappingNode,
			Content: make([]*yaml.Node, 0, len(val)*2),
		}
		for _, k := range keys {
			valNode, err := canonicalToNode(val[k])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalarNode("!!str", k), valNode)
		}
		return node, nil

	case []any:
		node := &yaml.Node{
			Kind:    yaml.SequenceNode,
			Content: make([]*yaml.Node, 0, len(val)),
		}
		for _, item := range val {
			child, err := canonicalToNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil

	case bool:
		return scalarNode("!!bool", strconv.FormatBool(val)), nil
	case int:
		return scalarNode("!!int", strconv.Itoa(val)), nil
	case int64:
		return scalarNode("!!int", strconv.FormatInt(val, 10)), nil
	case float64:
		return scalarNode("!!float", strconv.FormatFloat(val, 'f', -1, 64)), nil
	case string:
		return scalarNode("!!str", val), nil

	default:
		// For unknown types, marshal to JSON then convert the generic form
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %T to yaml.Node: %w", v, err)
		}
		var generic any
		if err := json.Unmarshal(data, &generic); err != nil {
			return nil, err
		}
		return canonicalToNode(generic)
	}
}

// scalarNode creates a yaml.Node for a scalar value.
func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}
