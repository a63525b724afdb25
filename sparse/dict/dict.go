// Package dict generates candidate atom sets (dictionaries) for sparse
// approximation.
//
// Every generator returns unit-norm columns of a common length, ready
// to hand to sparse/ols. Spikes and Cosines produce orthogonal bases;
// Gabor produces an overcomplete time-frequency grid of windowed
// cosines.
package dict

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by dictionary generators.
var (
	ErrInvalidLength = errors.New("dict: atom length must be positive")
	ErrInvalidCount  = errors.New("dict: atom count must be positive")
	ErrInvalidWidth  = errors.New("dict: atom width must be at least 2 and no longer than the atom length")
	ErrInvalidStep   = errors.New("dict: grid step must be positive")
)

// Spikes returns the n standard basis vectors of dimension n (the
// identity dictionary).
func Spikes(n int) ([][]float64, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}

	atoms := make([][]float64, n)
	for j := range atoms {
		col := make([]float64, n)
		col[j] = 1
		atoms[j] = col
	}
	return atoms, nil
}

// Cosines returns count sampled cosine harmonics of length n in DCT-II
// form:
//
//	atom[k][i] = cos(π·(i+0.5)·k/n)
//
// normalized to unit norm. For count ≤ n the atoms are mutually
// orthogonal, so together with a full count they form an orthonormal
// basis of the n-dimensional space.
func Cosines(n, count int) ([][]float64, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}
	if count < 1 {
		return nil, ErrInvalidCount
	}

	atoms := make([][]float64, count)
	for k := range atoms {
		col := make([]float64, n)
		for i := range col {
			col[i] = math.Cos(math.Pi * (float64(i) + 0.5) * float64(k) / float64(n))
		}
		normalize(col)
		atoms[k] = col
	}
	return atoms, nil
}

// Gabor returns Hann-windowed cosine atoms on a time-frequency grid:
// windows of the given width placed every step samples, each carrying
// cosines of 0 through width/2 cycles per window. The grid is
// overcomplete for small steps.
//
// The window uses the periodic Hann form, so only its first sample is
// zero and every atom keeps a positive norm.
func Gabor(n, width, step int) ([][]float64, error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}
	if width < 2 || width > n {
		return nil, ErrInvalidWidth
	}
	if step < 1 {
		return nil, ErrInvalidStep
	}

	win := make([]float64, width)
	for i := range win {
		win[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(width)))
	}

	var atoms [][]float64
	for offset := 0; offset+width <= n; offset += step {
		for k := 0; k <= width/2; k++ {
			col := make([]float64, n)
			for i := 0; i < width; i++ {
				col[offset+i] = win[i] * math.Cos(2*math.Pi*float64(k)*float64(i)/float64(width))
			}
			normalize(col)
			atoms = append(atoms, col)
		}
	}
	return atoms, nil
}

func normalize(col []float64) {
	norm := math.Sqrt(vecmath.DotProduct(col, col))
	if norm > 0 {
		vecmath.ScaleBlockInPlace(col, 1/norm)
	}
}
