package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/jonwraymond/vibematch/semantic"
)

// Item is a product that can be matched against a vibe.
type Item struct {
	Name        string    `yaml:"name" json:"name"`
	Description string    `yaml:"description" json:"description"`
	Tags        []string  `yaml:"tags" json:"tags"`
	Embedding   []float64 `yaml:"-" json:"-"`
}

// Clone returns a deep copy of the item.
func (it Item) Clone() Item {
	return Item{
		Name:        it.Name,
		Description: it.Description,
		Tags:        slices.Clone(it.Tags),
		Embedding:   slices.Clone(it.Embedding),
	}
}

// Catalog is an ordered, immutable collection of items.
// All accessors return copies; the zero value is an empty catalog.
type Catalog struct {
	items []Item
	index map[string]int
}

// New validates items and builds a catalog preserving their order.
//
// Names must be non-empty and unique (case-insensitive). When items carry
// embeddings, every embedding must have the same length.
func New(items ...Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		index: make(map[string]int, len(items)),
	}

	dim := -1
	for i, it := range items {
		name := strings.TrimSpace(it.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: item %d has no name", ErrInvalidItem, i)
		}
		key := strings.ToLower(name)
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateItem, name)
		}
		if len(it.Embedding) > 0 {
			if dim >= 0 && len(it.Embedding) != dim {
				return nil, fmt.Errorf("%w: item %s has %d components, want %d",
					semantic.ErrDimensionMismatch, name, len(it.Embedding), dim)
			}
			dim = len(it.Embedding)
		}

		cp := it.Clone()
		cp.Name = name
		c.index[key] = len(c.items)
		c.items = append(c.items, cp)
	}
	return c, nil
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.items)
}

// Items returns a copy of all items in insertion order.
func (c *Catalog) Items() []Item {
	if c == nil {
		return nil
	}
	out := make([]Item, len(c.items))
	for i, it := range c.items {
		out[i] = it.Clone()
	}
	return out
}

// Names returns item names in insertion order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.items))
	for i, it := range c.items {
		out[i] = it.Name
	}
	return out
}

// Get returns the item with the given name (case-insensitive).
func (c *Catalog) Get(name string) (Item, error) {
	if c != nil {
		if i, ok := c.index[strings.ToLower(strings.TrimSpace(name))]; ok {
			return c.items[i].Clone(), nil
		}
	}
	return Item{}, fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Dimensions returns the embedding length shared by the items, or 0 when no
// item carries an embedding.
func (c *Catalog) Dimensions() int {
	if c == nil {
		return 0
	}
	for _, it := range c.items {
		if len(it.Embedding) > 0 {
			return len(it.Embedding)
		}
	}
	return 0
}

// Embedded reports whether every item carries an embedding.
func (c *Catalog) Embedded() bool {
	if c == nil {
		return true
	}
	for _, it := range c.items {
		if len(it.Embedding) == 0 {
			return false
		}
	}
	return true
}

// WithEmbeddings returns a new catalog where each item's Description has been
// embedded with e. The receiver is left unchanged.
func (c *Catalog) WithEmbeddings(ctx context.Context, e semantic.Embedder) (*Catalog, error) {
	if e == nil {
		return nil, semantic.ErrInvalidEmbedder
	}
	items := c.Items()
	for i := range items {
		vec, err := e.Embed(ctx, items[i].Description)
		if err != nil {
			return nil, fmt.Errorf("embed %s: %w", items[i].Name, err)
		}
		items[i].Embedding = vec
	}
	return New(items...)
}

// FilterByTags returns the items carrying at least one of tags
// (case-insensitive), in catalog order.
func (c *Catalog) FilterByTags(tags []string) []Item {
	docs := semantic.FilterByTags(c.Documents(), tags)
	out := make([]Item, 0, len(docs))
	for _, d := range docs {
		out = append(out, c.items[c.index[strings.ToLower(d.ID)]].Clone())
	}
	return out
}
