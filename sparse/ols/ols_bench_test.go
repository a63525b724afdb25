package ols

import (
	"testing"

	"github.com/cwbudde/algo-sparse/internal/testutil"
)

func BenchmarkSelect(b *testing.B) {
	atoms := testutil.RandomDictionary(1, 256, 512)
	signal := testutil.DeterministicNoise(2, 1.0, 256)

	b.ResetTimer()

	for b.Loop() {
		if _, err := Select(signal, atoms, WithMaxAtoms(32)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSelectExtraPasses(b *testing.B) {
	atoms := testutil.RandomDictionary(1, 256, 512)
	signal := testutil.DeterministicNoise(2, 1.0, 256)

	b.ResetTimer()

	for b.Loop() {
		if _, err := Select(signal, atoms, WithMaxAtoms(32), WithPasses(3)); err != nil {
			b.Fatal(err)
		}
	}
}
