// Package catalog holds the items a vibe query is matched against.
//
// A [Catalog] is an ordered, immutable collection of [Item] values. It is
// built once, optionally extended with embeddings, and then shared freely:
// every accessor returns copies, and [Catalog.WithEmbeddings] produces a new
// catalog instead of mutating the receiver.
//
// # Usage
//
//	cat := catalog.Default()
//	cat, err := cat.WithEmbeddings(ctx, semantic.NewMockEmbedder(0))
//
// Custom catalogs come from code or from a YAML/JSON file:
//
//	cat, err := catalog.New(
//	    catalog.Item{Name: "Hoodie", Description: "Comfy casual hoodie", Tags: []string{"cozy"}},
//	)
//	cat, err = catalog.Load("catalog.yaml")
//
// # Invariants
//
//   - Item names are non-empty and unique, compared case-insensitively
//   - Insertion order is preserved and is the tie-break order for ranking
//   - Embeddings, when present, share one length
//
// # Errors
//
//   - [ErrInvalidItem]: Item without a name
//   - [ErrDuplicateItem]: Two items share a name
//   - [ErrInvalidCatalog]: Unreadable or malformed catalog file
//   - [ErrNotFound]: Lookup of an unknown item
//   - semantic.ErrDimensionMismatch: Embeddings of different lengths
package catalog
