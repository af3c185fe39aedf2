package semantic

import (
	"context"
	"hash/fnv"
	"math/rand/v2"
)

// DefaultDimensions is the vector length produced by the mock embedder.
const DefaultDimensions = 512

// seedModulus bounds the derived seed so the seed space stays small and
// reproducible by hand.
const seedModulus = 10000

// Embedder generates vector embeddings from text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

// MockEmbedder maps text to a deterministic pseudo-random vector.
//
// The seed is the FNV-1a 64-bit hash of the text's UTF-8 bytes modulo 10000.
// The vector is drawn from a PCG source seeded with (seed, seed), so the same
// text yields bit-identical vectors across runs and platforms. Values lie in
// [0, 1). The vectors carry no meaning.
type MockEmbedder struct {
	dim int
}

// NewMockEmbedder returns a mock embedder producing dim-length vectors.
// A non-positive dim selects DefaultDimensions.
func NewMockEmbedder(dim int) *MockEmbedder {
	if dim <= 0 {
		dim = DefaultDimensions
	}
	return &MockEmbedder{dim: dim}
}

// Dimensions reports the length of produced vectors.
func (e *MockEmbedder) Dimensions() int {
	return e.dim
}

// Embed implements Embedder. Any string, including the empty string, is
// accepted.
func (e *MockEmbedder) Embed(ctx context.Context, text string) ([]float64, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seed := Seed(text)
	rng := rand.New(rand.NewPCG(seed, seed))

	vec := make([]float64, e.dim)
	for i := range vec {
		vec[i] = rng.Float64()
	}
	return vec, nil
}

// Seed returns the PRNG seed derived from text.
func Seed(text string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(text))
	return h.Sum64() % seedModulus
}

var _ Embedder = (*MockEmbedder)(nil)
