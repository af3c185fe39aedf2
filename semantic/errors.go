package semantic

import "errors"

// Sentinel errors for semantic scoring.
var (
	// ErrDimensionMismatch is returned when two vectors of different length
	// are compared.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")

	// ErrInvalidEmbedder is returned when an embedder is required but nil.
	ErrInvalidEmbedder = errors.New("embedder is required")

	// ErrInvalidHybridConfig is returned for a hybrid strategy with a missing
	// component strategy or an alpha outside [0, 1].
	ErrInvalidHybridConfig = errors.New("invalid hybrid strategy configuration")
)
