package matcher

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonwraymond/vibematch/catalog"
	"github.com/jonwraymond/vibematch/search"
	"github.com/jonwraymond/vibematch/semantic"
)

// Error values for matcher construction.
var (
	ErrInvalidOptions = errors.New("invalid matcher options")
)

func invalidOptions(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidOptions, fmt.Sprintf(format, args...))
}

const (
	// DefaultTopK is the number of results kept per query.
	DefaultTopK = 3

	// DefaultThreshold is the score a result must exceed to count as a
	// good match.
	DefaultThreshold = 0.7

	// DefaultHybridAlpha weights BM25 and embeddings equally.
	DefaultHybridAlpha = 0.5
)

// Options configures a Matcher.
type Options struct {
	// Embedder embeds queries and any catalog item lacking an embedding.
	// If nil, uses a 512-dimension MockEmbedder.
	Embedder semantic.Embedder

	// Strategy selects the scoring strategy. Default: ScoreEmbedding.
	Strategy ScoreType

	// HybridAlpha is the BM25 weight for hybrid scoring (0.0 to 1.0).
	// Embedding weight is 1-HybridAlpha.
	// If nil, uses 0.5. Only used with ScoreHybrid.
	HybridAlpha *float64

	// BM25Config configures the bleve searcher used by ScoreBM25 and
	// ScoreHybrid.
	BM25Config search.BM25Config

	// TopK is the number of results returned by Match. Default: 3.
	TopK int

	// Threshold is the score a result must strictly exceed to count as a
	// good match, in [-1, 1]. If nil, uses 0.7.
	Threshold *float64

	// Logger receives one debug entry per Match. If nil, logging is disabled.
	Logger *zap.Logger
}

func (o Options) withDefaults() (Options, error) {
	if o.Embedder == nil {
		o.Embedder = semantic.NewMockEmbedder(semantic.DefaultDimensions)
	}

	st, err := ParseScoreType(string(o.Strategy))
	if err != nil {
		return o, err
	}
	o.Strategy = st

	if o.HybridAlpha == nil {
		o.HybridAlpha = Float64(DefaultHybridAlpha)
	}
	if a := *o.HybridAlpha; math.IsNaN(a) || a < 0 || a > 1 {
		return o, invalidOptions("hybrid alpha %v outside [0, 1]", a)
	}

	switch {
	case o.TopK == 0:
		o.TopK = DefaultTopK
	case o.TopK < 0:
		return o, invalidOptions("top-k %d is negative", o.TopK)
	}

	if o.Threshold == nil {
		o.Threshold = Float64(DefaultThreshold)
	}
	if th := *o.Threshold; math.IsNaN(th) || th < -1 || th > 1 {
		return o, invalidOptions("threshold %v outside [-1, 1]", th)
	}

	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o, nil
}

// Float64 returns a pointer to v, for the optional Options fields.
func Float64(v float64) *float64 {
	return &v
}

// Matcher ranks catalog items against free-text vibe queries.
//
// A Matcher holds no per-call state and is safe for concurrent use.
type Matcher struct {
	cat       *catalog.Catalog
	docs      []semantic.Document
	embedder  semantic.Embedder
	strategy  semantic.Strategy
	scoreType ScoreType
	topK      int
	threshold float64
	searcher  *search.BM25Searcher // nil for ScoreEmbedding
	logger    *zap.Logger
}

// New creates a Matcher over cat. Items lacking an embedding are embedded
// once, here. A nil catalog is treated as empty.
func New(cat *catalog.Catalog, opts Options) (*Matcher, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}

	if cat == nil {
		cat, _ = catalog.New()
	}
	if !cat.Embedded() {
		cat, err = cat.WithEmbeddings(context.Background(), opts.Embedder)
		if err != nil {
			return nil, fmt.Errorf("embed catalog: %w", err)
		}
	}

	m := &Matcher{
		cat:       cat,
		docs:      cat.Documents(),
		embedder:  opts.Embedder,
		scoreType: opts.Strategy,
		topK:      opts.TopK,
		threshold: *opts.Threshold,
		logger:    opts.Logger,
	}

	embedding := semantic.NewEmbeddingStrategy(opts.Embedder)
	if opts.Strategy == ScoreEmbedding {
		m.strategy = embedding
		return m, nil
	}

	m.searcher = search.NewBM25Searcher(opts.BM25Config)
	if err := m.searcher.Index(m.docs); err != nil {
		_ = m.searcher.Close()
		return nil, err
	}
	bm25 := semantic.NewBM25Strategy(m.searcher)

	switch opts.Strategy {
	case ScoreBM25:
		m.strategy = bm25
	case ScoreHybrid:
		hybrid, err := semantic.NewHybridStrategy(bm25, embedding, *opts.HybridAlpha)
		if err != nil {
			_ = m.searcher.Close()
			return nil, err
		}
		m.strategy = hybrid
	}
	return m, nil
}

// Match ranks the catalog against query and returns the top results with
// the good-match count and elapsed time.
func (m *Matcher) Match(ctx context.Context, query string) (*Report, error) {
	start := time.Now()
	id := uuid.New()

	ranked, err := m.Rank(ctx, query)
	if err != nil {
		m.logger.Debug("match failed",
			zap.String("request_id", id.String()),
			zap.String("query", query),
			zap.Error(err))
		return nil, err
	}

	top := ranked.Top(m.topK)
	report := &Report{
		ID:          id,
		Query:       query,
		Results:     top,
		GoodMatches: top.GoodMatches(m.threshold),
		Threshold:   m.threshold,
		ScoreType:   m.scoreType,
		Latency:     time.Since(start),
	}

	m.logger.Debug("vibe matched",
		zap.String("request_id", id.String()),
		zap.String("query", query),
		zap.Duration("latency", report.Latency),
		zap.Int("good_matches", report.GoodMatches),
		zap.String("strategy", string(m.scoreType)))

	return report, nil
}

// Rank scores every catalog item against query and returns them ordered by
// score descending. Equal scores keep catalog order.
func (m *Matcher) Rank(ctx context.Context, query string) (Results, error) {
	q := semantic.Query{Text: query}
	if m.scoreType != ScoreBM25 {
		var err error
		q, err = semantic.NewQuery(ctx, query, m.embedder)
		if err != nil {
			return nil, fmt.Errorf("embed query: %w", err)
		}
	}

	results := make(Results, len(m.docs))
	for i, doc := range m.docs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		score, err := m.strategy.Score(ctx, q, doc)
		if err != nil {
			return nil, fmt.Errorf("score %s: %w", doc.Name, err)
		}
		results[i] = Result{
			Name:        doc.Name,
			Description: doc.Description,
			Tags:        slices.Clone(doc.Tags),
			Score:       score,
			ScoreType:   m.scoreType,
		}
	}

	slices.SortStableFunc(results, func(a, b Result) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
	for i := range results {
		results[i].Rank = i + 1
	}
	return results, nil
}

// Catalog returns the embedded catalog the matcher ranks.
func (m *Matcher) Catalog() *catalog.Catalog {
	return m.cat
}

// ScoreType returns the scoring strategy in use.
func (m *Matcher) ScoreType() ScoreType {
	return m.scoreType
}

// TopK returns the number of results kept per Match.
func (m *Matcher) TopK() int {
	return m.topK
}

// Threshold returns the good-match threshold.
func (m *Matcher) Threshold() float64 {
	return m.threshold
}

// Close releases the lexical index, if any.
func (m *Matcher) Close() error {
	if m.searcher == nil {
		return nil
	}
	return m.searcher.Close()
}
