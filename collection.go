package hardware

import (
	"fmt"
	"iter"
	"slices"

	"gopkg.in/yaml.v3"
)

// Collection is an insertion-ordered mapping from entity name to entity
// record. Lookup by name is O(1); iteration follows insertion order. The
// YAML representation is a mapping whose key order is the insertion order,
// so dumping and reloading a model preserves collection ordering exactly.
type Collection[E any] struct {
	names []string
	items map[string]E
}

// NewCollection returns an empty collection.
func NewCollection[E any]() *Collection[E] {
	return &Collection[E]{items: make(map[string]E)}
}

// Add appends a named record. Names must be unique within the collection;
// adding a duplicate returns ErrDuplicateName.
func (c *Collection[E]) Add(name string, item E) error {
	if c.items == nil {
		c.items = make(map[string]E)
	}
	if _, exists := c.items[name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	c.names = append(c.names, name)
	c.items[name] = item
	return nil
}

// Get returns the record for name, reporting whether it exists.
func (c *Collection[E]) Get(name string) (E, bool) {
	item, ok := c.items[name]
	return item, ok
}

// Has reports whether the collection contains name.
func (c *Collection[E]) Has(name string) bool {
	_, ok := c.items[name]
	return ok
}

// Len returns the number of records.
func (c *Collection[E]) Len() int {
	return len(c.names)
}

// Names returns the record names in insertion order. The returned slice is
// a copy and may be modified by the caller.
func (c *Collection[E]) Names() []string {
	return slices.Clone(c.names)
}

// All iterates over (name, record) pairs in insertion order.
func (c *Collection[E]) All() iter.Seq2[string, E] {
	return func(yield func(string, E) bool) {
		for _, name := range c.names {
			if !yield(name, c.items[name]) {
				return
			}
		}
	}
}

// MarshalYAML encodes the collection as a YAML mapping in insertion order.
func (c *Collection[E]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, name := range c.names {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: name}
		val := &yaml.Node{}
		if err := val.Encode(c.items[name]); err != nil {
			return nil, fmt.Errorf("encode %q: %w", name, err)
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping, preserving its key order.
func (c *Collection[E]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping, got %s", node.Line, node.ShortTag())
	}
	c.names = nil
	c.items = make(map[string]E, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		var item E
		if err := node.Content[i+1].Decode(&item); err != nil {
			return fmt.Errorf("decode %q: %w", name, err)
		}
		if err := c.Add(name, item); err != nil {
			return err
		}
	}
	return nil
}
