// Package search provides BM25 lexical ranking over catalog documents.
//
// It exists to:
//   - Keep semantic free of heavier search dependencies
//   - Give the hybrid strategy a real BM25 signal instead of token overlap
//
// # Usage
//
// The primary type is [BM25Searcher], which implements [semantic.BM25Scorer]:
//
//	searcher := search.NewBM25Searcher(search.BM25Config{})
//	defer searcher.Close()
//	if err := searcher.Index(cat.Documents()); err != nil {
//	    return err
//	}
//	hybrid, _ := semantic.NewHybridStrategy(
//	    semantic.NewBM25Strategy(searcher),
//	    semantic.NewEmbeddingStrategy(embedder),
//	    0.5,
//	)
//
// # Configuration
//
// [BM25Config] allows customization of field boosts and safety limits:
//
//	cfg := search.BM25Config{
//	    NameBoost:        3,   // Boost name matches (default: 3)
//	    DescriptionBoost: 1,   // Boost description matches (default: 1)
//	    TagsBoost:        2,   // Boost tag matches (default: 2)
//	    MaxDocs:          1000, // Limit documents to index (0 = unlimited)
//	}
//
// # Thread Safety
//
// BM25Searcher is safe for concurrent use. It uses an internal RWMutex to
// protect index state and caches the Bleve index based on document
// fingerprints, only rebuilding when the document set changes.
//
// # Behavior
//
// Empty queries return the first N documents with a zero score.
// Non-empty queries use BM25 ranking with deterministic tie-breaking (score
// DESC, then ID ASC). [BM25Searcher.Score] normalizes by the top hit, so the
// best lexical match for a query scores exactly 1.
package search
