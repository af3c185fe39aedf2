package semantic

import (
	"reflect"
	"testing"
)

func TestDocument_Normalized(t *testing.T) {
	tests := []struct {
		name     string
		doc      Document
		wantTags []string
		wantText string
	}{
		{
			name: "full document",
			doc: Document{
				Name:        "Silk Saree",
				Description: "Elegant traditional attire",
				Tags:        []string{"Elegant", "ETHNIC"},
			},
			wantTags: []string{"elegant", "ethnic"},
			wantText: "silk saree elegant traditional attire elegant ethnic",
		},
		{
			name: "blank tags dropped",
			doc: Document{
				Name: "Hoodie",
				Tags: []string{" ", "cozy", ""},
			},
			wantTags: []string{"cozy"},
			wantText: "hoodie cozy",
		},
		{
			name: "existing text kept",
			doc: Document{
				Name: "Hoodie",
				Text: "custom text",
			},
			wantTags: nil,
			wantText: "custom text",
		},
		{
			name:     "empty document",
			doc:      Document{},
			wantTags: nil,
			wantText: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.doc.Normalized()
			if !reflect.DeepEqual(got.Tags, tt.wantTags) {
				t.Errorf("Tags = %#v, want %#v", got.Tags, tt.wantTags)
			}
			if got.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", got.Text, tt.wantText)
			}
		})
	}
}

func TestDocument_NormalizedDoesNotMutate(t *testing.T) {
	doc := Document{Name: "Hoodie", Tags: []string{"Cozy"}}
	_ = doc.Normalized()

	if doc.Tags[0] != "Cozy" {
		t.Errorf("original tags mutated: %v", doc.Tags)
	}
	if doc.Text != "" {
		t.Errorf("original text mutated: %q", doc.Text)
	}
}

func TestFilterByTags(t *testing.T) {
	docs := []Document{
		{ID: "a", Tags: []string{"boho", "cozy"}},
		{ID: "b", Tags: []string{"Urban"}},
		{ID: "c"},
	}

	tests := []struct {
		name string
		tags []string
		want []string
	}{
		{"single tag", []string{"cozy"}, []string{"a"}},
		{"case insensitive", []string{"URBAN"}, []string{"b"}},
		{"any of", []string{"urban", "boho"}, []string{"a", "b"}},
		{"no match", []string{"formal"}, nil},
		{"empty filter", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterByTags(docs, tt.tags)
			var ids []string
			for _, d := range got {
				ids = append(ids, d.ID)
			}
			if !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("FilterByTags() = %v, want %v", ids, tt.want)
			}
		})
	}
}
