package semantic

import "strings"

// Document is the unit scored by a Strategy.
type Document struct {
	// ID is the stable identifier of the document (the catalog item name).
	ID string

	// Name is the display name.
	Name string

	// Description is the free-text description that gets embedded.
	Description string

	// Tags are the vibe labels attached to the document, in order.
	Tags []string

	// Text is the combined lowercased search text. Built by Normalized when
	// empty.
	Text string

	// Embedding is the precomputed vector for Description, if any.
	Embedding []float64
}

// Normalized returns a copy with lowercased, trimmed tags and a populated
// Text field. Tag order is preserved; empty tags are dropped.
func (d Document) Normalized() Document {
	out := d
	if len(d.Tags) > 0 {
		out.Tags = make([]string, 0, len(d.Tags))
		for _, tag := range d.Tags {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag == "" {
				continue
			}
			out.Tags = append(out.Tags, tag)
		}
	}
	if out.Text == "" {
		parts := make([]string, 0, 2+len(out.Tags))
		if d.Name != "" {
			parts = append(parts, d.Name)
		}
		if d.Description != "" {
			parts = append(parts, d.Description)
		}
		parts = append(parts, out.Tags...)
		out.Text = strings.ToLower(strings.Join(parts, " "))
	}
	return out
}

// FilterByTags returns the documents carrying at least one of the given tags.
// Matching is case-insensitive. An empty tag list returns nil.
func FilterByTags(docs []Document, tags []string) []Document {
	if len(tags) == 0 {
		return nil
	}
	want := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		want[strings.ToLower(strings.TrimSpace(tag))] = struct{}{}
	}

	var out []Document
	for _, doc := range docs {
		for _, tag := range doc.Tags {
			if _, ok := want[strings.ToLower(tag)]; ok {
				out = append(out, doc)
				break
			}
		}
	}
	return out
}
