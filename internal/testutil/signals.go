package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for
// reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// RandomDictionary generates cols unit-norm noise columns of the given
// length, seeded deterministically per column.
func RandomDictionary(seed int64, length, cols int) [][]float64 {
	atoms := make([][]float64, cols)
	for j := range atoms {
		col := DeterministicNoise(seed+int64(j), 1.0, length)
		norm := 0.0
		for _, v := range col {
			norm += v * v
		}
		norm = math.Sqrt(norm)
		for i := range col {
			col[i] /= norm
		}
		atoms[j] = col
	}
	return atoms
}

// SpikeBasis returns the n standard basis vectors of dimension n.
func SpikeBasis(n int) [][]float64 {
	atoms := make([][]float64, n)
	for j := range atoms {
		col := make([]float64, n)
		col[j] = 1
		atoms[j] = col
	}
	return atoms
}

// Combination returns the weighted sum of the selected atoms:
// out = Σ weights[i] * atoms[indices[i]].
func Combination(atoms [][]float64, indices []int, weights []float64) []float64 {
	out := make([]float64, len(atoms[0]))
	for i, j := range indices {
		for k, v := range atoms[j] {
			out[k] += weights[i] * v
		}
	}
	return out
}
