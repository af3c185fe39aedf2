package semantic

import (
	"context"
	"errors"
	"math"
	"testing"
)

type stubBM25Scorer struct {
	score float64
}

func (s stubBM25Scorer) Score(_ string, _ Document) float64 {
	return s.score
}

type stubEmbedder struct {
	queryVec []float64
	docVec   []float64
}

func (s stubEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	if text == "query" {
		return s.queryVec, nil
	}
	return s.docVec, nil
}

type stubStrategy struct {
	score float64
}

func (s stubStrategy) Score(_ context.Context, _ Query, _ Document) (float64, error) {
	return s.score, nil
}

func q(text string) Query {
	return Query{Text: text}
}

func TestStrategy_BM25Only(t *testing.T) {
	bm25 := NewBM25Strategy(stubBM25Scorer{score: 2.5})
	score, err := bm25.Score(context.Background(), q("query"), Document{ID: "d1"})
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if score != 2.5 {
		t.Fatalf("score = %v, want 2.5", score)
	}
}

func TestStrategy_EmbeddingOnly(t *testing.T) {
	embed := NewEmbeddingStrategy(stubEmbedder{
		queryVec: []float64{1, 0},
		docVec:   []float64{1, 0},
	})

	score, err := embed.Score(context.Background(), q("query"), Document{ID: "d1", Description: "doc"})
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}

	if math.Abs(score-1.0) > 1e-9 {
		t.Fatalf("score = %v, want 1.0", score)
	}
}

func TestStrategy_EmbeddingUsesPrecomputedVectors(t *testing.T) {
	// nil embedder is fine when both vectors are present
	embed := NewEmbeddingStrategy(nil)

	score, err := embed.Score(context.Background(),
		Query{Text: "query", Embedding: []float64{0, 2}},
		Document{ID: "d1", Embedding: []float64{0, 5}},
	)
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}
	if math.Abs(score-1.0) > 1e-9 {
		t.Fatalf("score = %v, want 1.0", score)
	}
}

func TestStrategy_EmbeddingDimensionMismatch(t *testing.T) {
	embed := NewEmbeddingStrategy(nil)

	_, err := embed.Score(context.Background(),
		Query{Text: "query", Embedding: []float64{1, 2, 3}},
		Document{ID: "d1", Embedding: []float64{1, 2}},
	)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected ErrDimensionMismatch, got %v", err)
	}
}

func TestStrategy_HybridWeights(t *testing.T) {
	bm25 := stubStrategy{score: 1}
	emb := stubStrategy{score: 3}

	hybrid, err := NewHybridStrategy(bm25, emb, 0.25)
	if err != nil {
		t.Fatalf("NewHybridStrategy failed: %v", err)
	}

	score, err := hybrid.Score(context.Background(), q("query"), Document{ID: "d1"})
	if err != nil {
		t.Fatalf("score failed: %v", err)
	}

	want := 2.5
	if math.Abs(score-want) > 1e-9 {
		t.Fatalf("score = %v, want %v", score, want)
	}
}

// ============================================================
// Tests for NewBM25Strategy with nil scorer
// ============================================================

func TestNewBM25Strategy_DefaultScorer(t *testing.T) {
	strategy := NewBM25Strategy(nil)

	tests := []struct {
		name  string
		query string
		text  string
		want  float64
	}{
		{"single match", "cozy", "boho cozy", 1},
		{"multiple matches", "cozy boho", "boho cozy boho", 2},
		{"repeated query token counts once", "cozy cozy", "cozy", 1},
		{"no matches", "urban edgy", "boho cozy", 0},
		{"empty query", "", "boho cozy", 0},
		{"empty doc", "cozy", "", 0},
		{"case insensitive", "COZY", "Cozy Hoodie", 1},
		{"punctuation split", "flowy", "flowy, earthy tones", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Document{ID: "test", Text: tt.text}
			score, err := strategy.Score(context.Background(), q(tt.query), doc)
			if err != nil {
				t.Fatalf("Score failed: %v", err)
			}
			if score != tt.want {
				t.Errorf("score = %v, want %v", score, tt.want)
			}
		})
	}
}

func TestNewBM25Strategy_UsesNormalizedDoc(t *testing.T) {
	strategy := NewBM25Strategy(nil)

	doc := Document{
		ID:          "Hoodie",
		Name:        "Hoodie",
		Description: "Comfy casual hoodie for chill weekends",
		Tags:        []string{"cozy", "casual"},
	}

	score, err := strategy.Score(context.Background(), q("chill cozy"), doc)
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}

	if score != 2.0 {
		t.Errorf("expected score 2.0 for normalized match, got %v", score)
	}
}

// ============================================================
// Tests for NewHybridStrategy validation
// ============================================================

func TestNewHybridStrategy_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		bm25      Strategy
		embedding Strategy
		alpha     float64
	}{
		{"nil bm25", nil, stubStrategy{}, 0.5},
		{"nil embedding", stubStrategy{}, nil, 0.5},
		{"alpha negative", stubStrategy{}, stubStrategy{}, -0.1},
		{"alpha greater than one", stubStrategy{}, stubStrategy{}, 1.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewHybridStrategy(tt.bm25, tt.embedding, tt.alpha)
			if !errors.Is(err, ErrInvalidHybridConfig) {
				t.Errorf("expected ErrInvalidHybridConfig, got %v", err)
			}
		})
	}
}

func TestNewHybridStrategy_AlphaBounds(t *testing.T) {
	tests := []struct {
		alpha float64
		want  float64
	}{
		{0.0, 5.0},  // all embedding weight
		{1.0, 10.0}, // all BM25 weight
	}

	for _, tt := range tests {
		hybrid, err := NewHybridStrategy(stubStrategy{score: 10}, stubStrategy{score: 5}, tt.alpha)
		if err != nil {
			t.Fatalf("NewHybridStrategy(%v) failed: %v", tt.alpha, err)
		}
		score, err := hybrid.Score(context.Background(), q("query"), Document{})
		if err != nil {
			t.Fatalf("Score failed: %v", err)
		}
		if score != tt.want {
			t.Errorf("alpha=%v: score = %v, want %v", tt.alpha, score, tt.want)
		}
	}
}

// ============================================================
// Tests for embeddingStrategy error cases
// ============================================================

func TestEmbeddingStrategy_NilEmbedder(t *testing.T) {
	strategy := NewEmbeddingStrategy(nil)

	_, err := strategy.Score(context.Background(), q("query"), Document{Text: "doc"})
	if !errors.Is(err, ErrInvalidEmbedder) {
		t.Errorf("expected ErrInvalidEmbedder, got %v", err)
	}
}

type errorEmbedder struct {
	err error
}

func (e errorEmbedder) Embed(_ context.Context, _ string) ([]float64, error) {
	return nil, e.err
}

func TestEmbeddingStrategy_EmbedQueryError(t *testing.T) {
	expectedErr := context.DeadlineExceeded
	strategy := NewEmbeddingStrategy(errorEmbedder{err: expectedErr})

	_, err := strategy.Score(context.Background(), q("query"), Document{Text: "doc"})
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected %v, got %v", expectedErr, err)
	}
}

type queryOnlyEmbedder struct {
	queryVec []float64
	docErr   error
}

func (e queryOnlyEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	if text == "query" {
		return e.queryVec, nil
	}
	return nil, e.docErr
}

func TestEmbeddingStrategy_EmbedDocError(t *testing.T) {
	expectedErr := context.Canceled
	strategy := NewEmbeddingStrategy(queryOnlyEmbedder{
		queryVec: []float64{1, 0},
		docErr:   expectedErr,
	})

	_, err := strategy.Score(context.Background(), q("query"), Document{Text: "doc"})
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected %v, got %v", expectedErr, err)
	}
}

// ============================================================
// Tests for hybridStrategy error propagation
// ============================================================

type errorStrategy struct {
	err error
}

func (s errorStrategy) Score(_ context.Context, _ Query, _ Document) (float64, error) {
	return 0, s.err
}

func TestHybridStrategy_ErrorPropagation(t *testing.T) {
	bm25Err := context.DeadlineExceeded
	hybrid, _ := NewHybridStrategy(errorStrategy{err: bm25Err}, stubStrategy{}, 0.5)
	if _, err := hybrid.Score(context.Background(), q("query"), Document{}); !errors.Is(err, bm25Err) {
		t.Errorf("expected %v, got %v", bm25Err, err)
	}

	embErr := context.Canceled
	hybrid, _ = NewHybridStrategy(stubStrategy{}, errorStrategy{err: embErr}, 0.5)
	if _, err := hybrid.Score(context.Background(), q("query"), Document{}); !errors.Is(err, embErr) {
		t.Errorf("expected %v, got %v", embErr, err)
	}
}

func TestNewQuery(t *testing.T) {
	if _, err := NewQuery(context.Background(), "x", nil); !errors.Is(err, ErrInvalidEmbedder) {
		t.Fatalf("expected ErrInvalidEmbedder, got %v", err)
	}

	query, err := NewQuery(context.Background(), "soft cozy aesthetic", NewMockEmbedder(16))
	if err != nil {
		t.Fatalf("NewQuery failed: %v", err)
	}
	if query.Text != "soft cozy aesthetic" {
		t.Errorf("Text = %q", query.Text)
	}
	if len(query.Embedding) != 16 {
		t.Errorf("len(Embedding) = %d, want 16", len(query.Embedding))
	}
}
