package semantic

import (
	"context"
	"strings"
)

// Query is a search query, optionally carrying a precomputed embedding.
type Query struct {
	Text      string
	Embedding []float64
}

// NewQuery builds a Query whose embedding is computed once up front, so
// scoring many documents does not re-embed the query text.
func NewQuery(ctx context.Context, text string, embedder Embedder) (Query, error) {
	if embedder == nil {
		return Query{}, ErrInvalidEmbedder
	}
	vec, err := embedder.Embed(ctx, text)
	if err != nil {
		return Query{}, err
	}
	return Query{Text: text, Embedding: vec}, nil
}

// Strategy scores a document against a query. Higher is better.
type Strategy interface {
	Score(ctx context.Context, q Query, doc Document) (float64, error)
}

// BM25Scorer scores lexical relevance of a document for a query string.
type BM25Scorer interface {
	Score(query string, doc Document) float64
}

type bm25Strategy struct {
	scorer BM25Scorer
}

// NewBM25Strategy returns a lexical strategy. A nil scorer selects a token
// overlap scorer that counts the distinct query tokens present in the
// document text.
func NewBM25Strategy(scorer BM25Scorer) Strategy {
	if scorer == nil {
		scorer = overlapScorer{}
	}
	return bm25Strategy{scorer: scorer}
}

func (s bm25Strategy) Score(_ context.Context, q Query, doc Document) (float64, error) {
	return s.scorer.Score(q.Text, doc.Normalized()), nil
}

type overlapScorer struct{}

func (overlapScorer) Score(query string, doc Document) float64 {
	queryTokens := tokenize(query)
	if len(queryTokens) == 0 {
		return 0
	}
	docTokens := make(map[string]struct{})
	for _, tok := range tokenize(doc.Text) {
		docTokens[tok] = struct{}{}
	}

	seen := make(map[string]struct{}, len(queryTokens))
	var score float64
	for _, tok := range queryTokens {
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		if _, ok := docTokens[tok]; ok {
			score++
		}
	}
	return score
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r > 127)
	})
}

type embeddingStrategy struct {
	embedder Embedder
}

// NewEmbeddingStrategy returns a strategy scoring by cosine similarity.
//
// Precomputed embeddings on the query and document are used when present.
// Otherwise the embedder is called on the query text and on the document
// description (or its normalized text when the description is empty).
func NewEmbeddingStrategy(embedder Embedder) Strategy {
	return embeddingStrategy{embedder: embedder}
}

func (s embeddingStrategy) Score(ctx context.Context, q Query, doc Document) (float64, error) {
	qv := q.Embedding
	dv := doc.Embedding
	if qv == nil || dv == nil {
		if s.embedder == nil {
			return 0, ErrInvalidEmbedder
		}
	}

	var err error
	if qv == nil {
		qv, err = s.embedder.Embed(ctx, q.Text)
		if err != nil {
			return 0, err
		}
	}
	if dv == nil {
		text := doc.Description
		if text == "" {
			text = doc.Normalized().Text
		}
		dv, err = s.embedder.Embed(ctx, text)
		if err != nil {
			return 0, err
		}
	}
	return Cosine(qv, dv)
}

type hybridStrategy struct {
	bm25      Strategy
	embedding Strategy
	alpha     float64
}

// NewHybridStrategy combines a lexical and an embedding strategy as
// alpha*bm25 + (1-alpha)*embedding. Alpha must lie in [0, 1].
func NewHybridStrategy(bm25, embedding Strategy, alpha float64) (Strategy, error) {
	if bm25 == nil || embedding == nil {
		return nil, ErrInvalidHybridConfig
	}
	if alpha < 0 || alpha > 1 {
		return nil, ErrInvalidHybridConfig
	}
	return hybridStrategy{bm25: bm25, embedding: embedding, alpha: alpha}, nil
}

func (s hybridStrategy) Score(ctx context.Context, q Query, doc Document) (float64, error) {
	lexical, err := s.bm25.Score(ctx, q, doc)
	if err != nil {
		return 0, err
	}
	semantic, err := s.embedding.Score(ctx, q, doc)
	if err != nil {
		return 0, err
	}
	return s.alpha*lexical + (1-s.alpha)*semantic, nil
}
