package stylesheet

// Entry is an item that can be stored in a Set.
type Entry interface {
	Key() string
}

// Declaration is one custom-property declaration.
type Declaration struct {
	Name  string // Property name including the leading "--"
	Raw   string // Declaration text, "name: value;"
	Order int    // Position within its source
}

// Key returns the declaration name.
func (d Declaration) Key() string { return d.Name }

// Keyframes is one complete @keyframes block.
type Keyframes struct {
	Name  string
	Raw   string // "@keyframes name { ... }" including nested blocks
	Order int
}

// Key returns the animation name.
func (k Keyframes) Key() string { return k.Name }

// Set is a name-keyed collection that remembers first-insertion order.
// Putting an existing name replaces the entry but keeps its position.
type Set[T Entry] struct {
	names []string
	items map[string]T
}

// NewSet creates an empty set.
func NewSet[T Entry]() *Set[T] {
	return &Set[T]{items: make(map[string]T)}
}

// Put stores item under its key.
func (s *Set[T]) Put(item T) {
	key := item.Key()
	if _, exists := s.items[key]; !exists {
		s.names = append(s.names, key)
	}
	s.items[key] = item
}

// Get returns the entry stored under name.
func (s *Set[T]) Get(name string) (T, bool) {
	item, ok := s.items[name]
	return item, ok
}

// Has reports whether name is present.
func (s *Set[T]) Has(name string) bool {
	_, ok := s.items[name]
	return ok
}

// Len returns the number of entries.
func (s *Set[T]) Len() int {
	return len(s.names)
}

// Names returns the entry names in insertion order.
func (s *Set[T]) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// Items returns the entries in insertion order.
func (s *Set[T]) Items() []T {
	items := make([]T, 0, len(s.names))
	for _, name := range s.names {
		items = append(items, s.items[name])
	}
	return items
}

// Clone returns an independent copy of the set.
func (s *Set[T]) Clone() *Set[T] {
	c := &Set[T]{
		names: make([]string, len(s.names)),
		items: make(map[string]T, len(s.items)),
	}
	copy(c.names, s.names)
	for k, v := range s.items {
		c.items[k] = v
	}
	return c
}
