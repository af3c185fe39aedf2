package catalog

import (
	"slices"

	"github.com/jonwraymond/vibematch/semantic"
)

// DocumentFromItem converts an Item to a semantic.Document.
//
// The conversion maps fields as follows:
//   - ID, Name: Item.Name
//   - Description: Item.Description
//   - Tags: Item.Tags (copied)
//   - Embedding: Item.Embedding (copied)
//   - Text: Normalized search text
func DocumentFromItem(it Item) semantic.Document {
	doc := semantic.Document{
		ID:          it.Name,
		Name:        it.Name,
		Description: it.Description,
		Tags:        slices.Clone(it.Tags),
		Embedding:   slices.Clone(it.Embedding),
	}
	doc.Text = doc.Normalized().Text
	return doc
}

// Documents converts every item of the catalog, in order.
// Returns nil for an empty catalog.
func (c *Catalog) Documents() []semantic.Document {
	if c.Len() == 0 {
		return nil
	}
	out := make([]semantic.Document, len(c.items))
	for i, it := range c.items {
		out[i] = DocumentFromItem(it)
	}
	return out
}
