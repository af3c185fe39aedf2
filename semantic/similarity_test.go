package semantic

import (
	"errors"
	"math"
	"testing"
)

func TestCosine_LengthMismatch(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
	}{
		{"a empty", []float64{}, []float64{1, 0}},
		{"b empty", []float64{1, 0}, []float64{}},
		{"different lengths", []float64{1, 0}, []float64{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Cosine(tt.a, tt.b)
			if !errors.Is(err, ErrDimensionMismatch) {
				t.Errorf("Cosine() error = %v, want ErrDimensionMismatch", err)
			}
		})
	}
}

func TestCosine_ZeroVectors(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
	}{
		{"both empty", []float64{}, []float64{}},
		{"a zero", []float64{0, 0}, []float64{1, 0}},
		{"b zero", []float64{1, 0}, []float64{0, 0}},
		{"both zero", []float64{0, 0}, []float64{0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cosine(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Cosine() error = %v", err)
			}
			if got != 0 {
				t.Errorf("Cosine() = %v, want 0", got)
			}
		})
	}
}

func TestCosine_KnownAngles(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{3, 4}, []float64{3, 4}, 1},
		{"scaled", []float64{1, 2, 3}, []float64{2, 4, 6}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"45 degrees", []float64{1, 0}, []float64{1, 1}, 1 / math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Cosine(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Cosine() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cosine() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCosine_SelfSimilarityOfMockVectors(t *testing.T) {
	emb := NewMockEmbedder(0)
	for _, text := range []string{"", "boho", "energetic urban chic", "Elegant traditional attire for festive occasions"} {
		vec, err := emb.Embed(t.Context(), text)
		if err != nil {
			t.Fatalf("Embed(%q) error = %v", text, err)
		}
		got, err := Cosine(vec, vec)
		if err != nil {
			t.Fatalf("Cosine() error = %v", err)
		}
		if math.Abs(got-1.0) > 1e-9 {
			t.Errorf("Cosine(v, v) for %q = %v, want 1", text, got)
		}
	}
}

func TestCosine_MockVectorsAreNonNegative(t *testing.T) {
	emb := NewMockEmbedder(0)
	a, _ := emb.Embed(t.Context(), "soft cozy aesthetic")
	b, _ := emb.Embed(t.Context(), "Bold footwear with a rugged street style")

	got, err := Cosine(a, b)
	if err != nil {
		t.Fatalf("Cosine() error = %v", err)
	}
	if got < 0 || got > 1 {
		t.Errorf("Cosine() = %v, want within [0, 1] for non-negative vectors", got)
	}
}
