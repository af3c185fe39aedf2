package matcher

import (
	"encoding/json"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ScoreType indicates the source of a match result's score.
type ScoreType string

const (
	// ScoreBM25 indicates the score came from BM25 lexical search,
	// normalized to [0, 1] by the best hit.
	ScoreBM25 ScoreType = "bm25"

	// ScoreEmbedding indicates the score is the cosine similarity between
	// query and item embeddings.
	ScoreEmbedding ScoreType = "embedding"

	// ScoreHybrid indicates the score is a weighted combination of BM25 and embedding.
	ScoreHybrid ScoreType = "hybrid"
)

// ParseScoreType parses a strategy name. The empty string selects
// ScoreEmbedding.
func ParseScoreType(s string) (ScoreType, error) {
	switch t := ScoreType(strings.ToLower(strings.TrimSpace(s))); t {
	case "":
		return ScoreEmbedding, nil
	case ScoreBM25, ScoreEmbedding, ScoreHybrid:
		return t, nil
	default:
		return "", invalidOptions("unknown strategy %q", s)
	}
}

// Result is a single ranked catalog item.
type Result struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Score       float64   `json:"score"`
	ScoreType   ScoreType `json:"score_type"`

	// Rank is the 1-based position in the ranking.
	Rank int `json:"rank"`
}

// Good reports whether the result's score is strictly above threshold.
func (r Result) Good(threshold float64) bool {
	return r.Score > threshold
}

// Results is a slice of Result with helper methods.
type Results []Result

// Names returns the item names in ranking order.
func (r Results) Names() []string {
	names := make([]string, len(r))
	for i, result := range r {
		names[i] = result.Name
	}
	return names
}

// Scores returns the scores in ranking order.
func (r Results) Scores() []float64 {
	scores := make([]float64, len(r))
	for i, result := range r {
		scores[i] = result.Score
	}
	return scores
}

// FilterByMinScore returns results with score >= minScore.
func (r Results) FilterByMinScore(minScore float64) Results {
	var filtered Results
	for _, result := range r {
		if result.Score >= minScore {
			filtered = append(filtered, result)
		}
	}
	return filtered
}

// FilterByTag returns results carrying tag (case-insensitive).
func (r Results) FilterByTag(tag string) Results {
	tag = strings.ToLower(strings.TrimSpace(tag))
	var filtered Results
	for _, result := range r {
		if slices.ContainsFunc(result.Tags, func(t string) bool {
			return strings.ToLower(t) == tag
		}) {
			filtered = append(filtered, result)
		}
	}
	return filtered
}

// GoodMatches counts results scoring strictly above threshold.
func (r Results) GoodMatches(threshold float64) int {
	n := 0
	for _, result := range r {
		if result.Good(threshold) {
			n++
		}
	}
	return n
}

// Top returns the first k results, or all of them when k exceeds the length.
// Negative k yields an empty slice.
func (r Results) Top(k int) Results {
	k = max(0, min(k, len(r)))
	return slices.Clone(r[:k])
}

// Report is the outcome of a single Match call.
type Report struct {
	ID          uuid.UUID
	Query       string
	Results     Results
	GoodMatches int
	Threshold   float64
	ScoreType   ScoreType
	Latency     time.Duration
}

type reportJSON struct {
	ID             string    `json:"id"`
	Query          string    `json:"query"`
	Results        Results   `json:"results"`
	GoodMatches    int       `json:"good_matches"`
	Threshold      float64   `json:"threshold"`
	ScoreType      ScoreType `json:"score_type"`
	LatencySeconds float64   `json:"latency_seconds"`
}

// MarshalJSON encodes the report with its latency in seconds.
func (r Report) MarshalJSON() ([]byte, error) {
	results := r.Results
	if results == nil {
		results = Results{}
	}
	return json.Marshal(reportJSON{
		ID:             r.ID.String(),
		Query:          r.Query,
		Results:        results,
		GoodMatches:    r.GoodMatches,
		Threshold:      r.Threshold,
		ScoreType:      r.ScoreType,
		LatencySeconds: r.Latency.Seconds(),
	})
}
