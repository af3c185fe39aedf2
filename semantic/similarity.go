package semantic

import (
	"fmt"
	"math"
)

// Cosine returns the cosine similarity of a and b: their dot product divided
// by the product of their magnitudes, in [-1, 1].
//
// Vectors of different length return ErrDimensionMismatch. A zero-magnitude
// vector (including an empty one) scores 0.
func Cosine(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("%w: %d != %d", ErrDimensionMismatch, len(a), len(b))
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB)), nil
}
