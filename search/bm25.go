package search

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/jonwraymond/vibematch/semantic"
)

const (
	defaultNameBoost        = 3
	defaultDescriptionBoost = 1
	defaultTagsBoost        = 2

	// maxCachedQueries bounds the per-query score cache used by Score.
	maxCachedQueries = 64
)

// BM25Config configures field boosts and safety limits.
// Zero values select the defaults.
type BM25Config struct {
	NameBoost        float64
	DescriptionBoost float64
	TagsBoost        float64

	// MaxDocs limits the number of documents indexed (0 = unlimited).
	MaxDocs int
}

func (c BM25Config) withDefaults() BM25Config {
	if c.NameBoost <= 0 {
		c.NameBoost = defaultNameBoost
	}
	if c.DescriptionBoost <= 0 {
		c.DescriptionBoost = defaultDescriptionBoost
	}
	if c.TagsBoost <= 0 {
		c.TagsBoost = defaultTagsBoost
	}
	return c
}

// Hit is a single lexical search result.
type Hit struct {
	ID    string
	Score float64
}

// BM25Searcher ranks documents lexically with an in-memory bleve index.
//
// The index is rebuilt only when the document fingerprint changes.
// BM25Searcher also implements semantic.BM25Scorer over the most recently
// indexed documents, with scores normalized to [0, 1] by the top hit.
type BM25Searcher struct {
	cfg BM25Config

	mu          sync.RWMutex
	index       bleve.Index
	fingerprint string
	docs        []semantic.Document
	scores      map[string]map[string]float64
}

// NewBM25Searcher creates a searcher with the given configuration.
func NewBM25Searcher(cfg BM25Config) *BM25Searcher {
	return &BM25Searcher{
		cfg:    cfg.withDefaults(),
		scores: make(map[string]map[string]float64),
	}
}

// Index (re)builds the bleve index for docs when their content changed.
func (s *BM25Searcher) Index(docs []semantic.Document) error {
	docs, fp := s.prepare(docs)

	s.mu.RLock()
	fresh := s.index != nil && s.fingerprint == fp
	s.mu.RUnlock()
	if fresh {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureLocked(docs, fp)
}

func (s *BM25Searcher) prepare(docs []semantic.Document) ([]semantic.Document, string) {
	if s.cfg.MaxDocs > 0 && len(docs) > s.cfg.MaxDocs {
		docs = docs[:s.cfg.MaxDocs]
	}
	return docs, computeFingerprint(docs)
}

// ensureLocked rebuilds the index unless it already holds fp.
// The caller holds s.mu for writing.
func (s *BM25Searcher) ensureLocked(docs []semantic.Document, fp string) error {
	if s.index != nil && s.fingerprint == fp {
		return nil
	}

	idx, err := buildIndex(docs)
	if err != nil {
		return err
	}
	if s.index != nil {
		_ = s.index.Close()
	}
	s.index = idx
	s.fingerprint = fp
	s.docs = slices.Clone(docs)
	clear(s.scores)
	return nil
}

func buildIndex(docs []semantic.Document) (bleve.Index, error) {
	text := bleve.NewTextFieldMapping()
	text.Store = false

	docMapping := bleve.NewDocumentMapping()
	docMapping.AddFieldMappingsAt("name", text)
	docMapping.AddFieldMappingsAt("description", text)
	docMapping.AddFieldMappingsAt("tags", text)

	m := bleve.NewIndexMapping()
	m.DefaultMapping = docMapping

	idx, err := bleve.NewMemOnly(m)
	if err != nil {
		return nil, fmt.Errorf("create bleve index: %w", err)
	}

	batch := idx.NewBatch()
	for _, doc := range docs {
		err := batch.Index(doc.ID, map[string]any{
			"name":        doc.Name,
			"description": doc.Description,
			"tags":        strings.Join(doc.Tags, " "),
		})
		if err != nil {
			_ = idx.Close()
			return nil, fmt.Errorf("index %s: %w", doc.ID, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return nil, fmt.Errorf("index batch: %w", err)
	}
	return idx, nil
}

// Search indexes docs if needed and returns up to limit hits ordered by
// score descending, then ID ascending. The hits always come from docs, even
// when concurrent callers search different document sets.
//
// Empty queries return the first limit documents with a zero score.
func (s *BM25Searcher) Search(q string, limit int, docs []semantic.Document) ([]Hit, error) {
	if limit <= 0 {
		return []Hit{}, nil
	}
	docs, fp := s.prepare(docs)

	s.mu.RLock()
	if s.index != nil && s.fingerprint == fp {
		defer s.mu.RUnlock()
		return s.searchLocked(q, limit)
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.ensureLocked(docs, fp); err != nil {
		return nil, err
	}
	return s.searchLocked(q, limit)
}

// searchLocked runs q against the current index. The caller holds s.mu.
func (s *BM25Searcher) searchLocked(q string, limit int) ([]Hit, error) {
	if strings.TrimSpace(q) == "" {
		n := min(limit, len(s.docs))
		hits := make([]Hit, n)
		for i := range n {
			hits[i] = Hit{ID: s.docs[i].ID}
		}
		return hits, nil
	}

	hits, err := s.queryLocked(q)
	if err != nil {
		return nil, err
	}
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits, nil
}

func (s *BM25Searcher) queryLocked(q string) ([]Hit, error) {
	if s.index == nil || len(s.docs) == 0 {
		return []Hit{}, nil
	}

	req := bleve.NewSearchRequestOptions(s.buildQuery(q), len(s.docs), 0, false)
	res, err := s.index.Search(req)
	if err != nil {
		return nil, fmt.Errorf("bleve search: %w", err)
	}

	hits := make([]Hit, 0, len(res.Hits))
	for _, h := range res.Hits {
		hits = append(hits, Hit{ID: h.ID, Score: h.Score})
	}
	slices.SortStableFunc(hits, func(a, b Hit) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return strings.Compare(a.ID, b.ID)
		}
	})
	return hits, nil
}

func (s *BM25Searcher) buildQuery(q string) query.Query {
	name := bleve.NewMatchQuery(q)
	name.SetField("name")
	name.SetBoost(s.cfg.NameBoost)

	desc := bleve.NewMatchQuery(q)
	desc.SetField("description")
	desc.SetBoost(s.cfg.DescriptionBoost)

	tags := bleve.NewMatchQuery(q)
	tags.SetField("tags")
	tags.SetBoost(s.cfg.TagsBoost)

	return bleve.NewDisjunctionQuery(name, desc, tags)
}

// Score implements semantic.BM25Scorer. It returns the normalized score of
// doc for q over the most recently indexed document set, or 0 when doc was
// not indexed, did not match, or the search failed.
func (s *BM25Searcher) Score(q string, doc semantic.Document) float64 {
	if strings.TrimSpace(q) == "" {
		return 0
	}

	s.mu.RLock()
	if cached, ok := s.scores[q]; ok {
		s.mu.RUnlock()
		return cached[doc.ID]
	}
	fp := s.fingerprint
	hits, err := s.queryLocked(q)
	s.mu.RUnlock()
	if err != nil {
		return 0
	}

	normalized := make(map[string]float64, len(hits))
	if len(hits) > 0 && hits[0].Score > 0 {
		top := hits[0].Score
		for _, h := range hits {
			normalized[h.ID] = h.Score / top
		}
	}

	s.mu.Lock()
	if s.fingerprint == fp {
		if len(s.scores) >= maxCachedQueries {
			clear(s.scores)
		}
		s.scores[q] = normalized
	}
	s.mu.Unlock()

	return normalized[doc.ID]
}

// Close releases the bleve index.
func (s *BM25Searcher) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index == nil {
		return nil
	}
	err := s.index.Close()
	s.index = nil
	s.fingerprint = ""
	s.docs = nil
	clear(s.scores)
	return err
}

var _ semantic.BM25Scorer = (*BM25Searcher)(nil)
