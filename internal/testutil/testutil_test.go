package testutil

import (
	"math"
	"testing"
)

func TestDeterministicNoiseReproducible(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("index %d: %v != %v", i, a[i], b[i])
		}
	}
}

func TestRandomDictionaryUnitNorm(t *testing.T) {
	atoms := RandomDictionary(7, 32, 5)
	if len(atoms) != 5 {
		t.Fatalf("cols = %d, want 5", len(atoms))
	}

	for j, col := range atoms {
		norm := 0.0
		for _, v := range col {
			norm += v * v
		}
		if math.Abs(math.Sqrt(norm)-1) > 1e-12 {
			t.Fatalf("column %d norm = %v, want 1", j, math.Sqrt(norm))
		}
	}
}

func TestSpikeBasis(t *testing.T) {
	atoms := SpikeBasis(3)
	for j, col := range atoms {
		for i, v := range col {
			want := 0.0
			if i == j {
				want = 1
			}
			if v != want {
				t.Fatalf("atoms[%d][%d] = %v, want %v", j, i, v, want)
			}
		}
	}
}

func TestCombination(t *testing.T) {
	atoms := SpikeBasis(3)
	got := Combination(atoms, []int{2, 0}, []float64{4, 3})
	RequireSliceNearlyEqual(t, got, []float64{3, 0, 4}, 0)
}
