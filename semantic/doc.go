// Package semantic provides embeddings, similarity, and scoring strategies
// for vibe matching.
//
// It defines pluggable scoring strategies (BM25, embeddings, hybrid) without
// enforcing any specific vector backend or network dependency. The only
// built-in embedder is a deterministic mock.
//
// # Core Interfaces
//
//   - [Embedder]: Generates vector embeddings from text
//   - [Strategy]: Scores a [Document] against a [Query]
//   - [BM25Scorer]: Lexical relevance of a document for a query string
//
// # Mock Embeddings
//
// [MockEmbedder] maps any string to a fixed-length vector of pseudo-random
// values in [0, 1). The seed is derived with [Seed]: FNV-1a 64-bit over the
// UTF-8 bytes of the text, modulo 10000. Vectors are drawn from a PCG source,
// so the same text produces bit-identical vectors in every run:
//
//	emb := semantic.NewMockEmbedder(0) // 512 dimensions
//	vec, _ := emb.Embed(ctx, "soft cozy aesthetic")
//
// # Strategies
//
//	bm25 := semantic.NewBM25Strategy(nil)           // nil uses token overlap
//	emb := semantic.NewEmbeddingStrategy(embedder)  // cosine similarity
//	hybrid, _ := semantic.NewHybridStrategy(bm25, emb, 0.3)  // 30% BM25
//
// Build the query once with [NewQuery] so its embedding is reused across
// documents:
//
//	q, _ := semantic.NewQuery(ctx, "energetic urban chic", embedder)
//	score, _ := emb.Score(ctx, q, doc)
//
// # Similarity
//
// [Cosine] rejects vectors of different length with [ErrDimensionMismatch].
// Zero-magnitude vectors score 0.
//
// # Thread Safety
//
// All types in this package are safe for concurrent use.
//
// # Error Handling
//
//   - [ErrDimensionMismatch]: Compared vectors differ in length
//   - [ErrInvalidEmbedder]: Embedder is nil when required
//   - [ErrInvalidHybridConfig]: Invalid hybrid strategy configuration
//
// Use errors.Is for error checking.
package semantic
