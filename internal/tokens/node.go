// Package tokens models a design-token configuration tree.
//
// A tree is built from three node shapes: Scalar leaves, Tuple leaves
// (ordered sequences, typically a value paired with an options mapping)
// and insertion-ordered Maps. Node is sealed, so a type switch over
// Scalar, Tuple and *Map covers every case.
package tokens

// Node is one element of a token tree.
type Node interface {
	node()
}

// Scalar is a leaf value kept as its literal text.
type Scalar struct {
	Value string
}

// Tuple is an ordered sequence leaf such as ["1rem", {lineHeight: "1.5rem"}].
type Tuple struct {
	Items []Node
}

// Map is a mapping that remembers key insertion order.
type Map struct {
	keys   []string
	values map[string]Node
}

func (Scalar) node() {}
func (Tuple) node() {}
func (*Map) node() {}

// Primary returns the first item of the tuple as text.
// Nested tuples resolve to their own primary; maps resolve to "".
func (t Tuple) Primary() string {
	if len(t.Items) == 0 {
		return ""
	}
	switch v := t.Items[0].(type) {
	case Scalar:
		return v.Value
	case Tuple:
		return v.Primary()
	default:
		return ""
	}
}

// Options returns the second item when it is a mapping.
func (t Tuple) Options() (*Map, bool) {
	if len(t.Items) < 2 {
		return nil, false
	}
	m, ok := t.Items[1].(*Map)
	return m, ok
}

// NewMap creates an empty ordered map.
func NewMap() *Map {
	return &Map{values: make(map[string]Node)}
}

// Set stores value under key. An existing key keeps its position.
func (m *Map) Set(key string, value Node) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Node, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Each calls fn for every entry in insertion order.
func (m *Map) Each(fn func(key string, value Node)) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

// String returns the scalar text stored under key, or "" when the entry
// is missing or not a scalar.
func (m *Map) String(key string) string {
	v, ok := m.Get(key)
	if !ok {
		return ""
	}
	if s, ok := v.(Scalar); ok {
		return s.Value
	}
	return ""
}
