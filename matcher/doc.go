// Package matcher ranks catalog items against free-text vibe queries.
//
// It combines the catalog, semantic, and search packages into a single
// entry point: embed the query, score every item, keep the top results,
// and count the good matches.
//
// # Basic Usage
//
//	m, err := matcher.New(catalog.Default(), matcher.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer m.Close()
//
//	report, err := m.Match(ctx, "energetic urban chic")
//	for _, r := range report.Results {
//	    fmt.Printf("%s %.3f\n", r.Name, r.Score)
//	}
//
// With default options the query is embedded by a 512-dimension
// [semantic.MockEmbedder], items are scored by cosine similarity, the top 3
// are kept, and a result is good when its score is strictly above 0.7.
//
// # Strategies
//
//   - [ScoreEmbedding]: cosine similarity of embeddings (default)
//   - [ScoreBM25]: bleve BM25, normalized to [0, 1] per query
//   - [ScoreHybrid]: HybridAlpha*bm25 + (1-HybridAlpha)*cosine
//
// # Ordering
//
// Results are sorted by score descending. Equal scores keep catalog order.
//
// # Thread Safety
//
// Matcher keeps no per-call state. All methods are safe for concurrent use.
package matcher
