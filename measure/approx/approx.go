// Package approx evaluates the reconstruction quality of a sparse atom
// selection.
//
// The sparse/ols kernel returns selected indices only. This package is
// the consumer side: it re-projects the signal onto the selected atom
// subset, recovers least-squares coefficients in the original atom
// frame, and reports residual and error metrics in the time and
// frequency domains.
package approx

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by evaluation functions.
var (
	ErrEmptySignal         = errors.New("approx: signal is empty")
	ErrEmptyDictionary     = errors.New("approx: dictionary has no columns")
	ErrDimensionMismatch   = errors.New("approx: column length does not match signal length")
	ErrIndexOutOfRange     = errors.New("approx: selected index out of dictionary range")
	ErrDependentSelection  = errors.New("approx: selected atoms are linearly dependent")
	ErrLengthMismatch      = errors.New("approx: signals must have equal length")
	ErrZeroReferenceSignal = errors.New("approx: reference signal has zero norm")
)

const degenerateTol = 1e-12

// Result holds reconstruction metrics for one selection.
type Result struct {
	Indices       []int
	Coefficients  []float64 // least-squares coefficients over the selected atoms
	ResidualNorm  float64
	RelativeError float64 // ‖f − f̂‖ / ‖f‖
	SNRdB         float64 // +Inf for an exact reconstruction
}

// Evaluate computes the least-squares reconstruction of signal from the
// selected atoms and returns its quality metrics. The selection order
// is preserved in Result.Indices and Result.Coefficients.
func Evaluate(signal []float64, atoms [][]float64, indices []int) (Result, error) {
	basis, upper, err := orthogonalize(signal, atoms, indices)
	if err != nil {
		return Result{}, err
	}

	d := len(signal)
	m := len(indices)

	// Projection coefficients onto the orthonormal basis.
	proj := make([]float64, m)
	recon := make([]float64, d)
	scratch := make([]float64, d)
	for k := 0; k < m; k++ {
		q := basis[k*d : (k+1)*d]
		proj[k] = vecmath.DotProduct(signal, q)
		vecmath.ScaleBlock(scratch, q, proj[k])
		vecmath.AddBlockInPlace(recon, scratch)
	}

	// Back-substitute through the upper-triangular factor to express
	// the reconstruction in the original atom frame.
	coeffs := make([]float64, m)
	for k := m - 1; k >= 0; k-- {
		v := proj[k]
		for i := k + 1; i < m; i++ {
			v -= upper[k*m+i] * coeffs[i]
		}
		coeffs[k] = v / upper[k*m+k]
	}

	residNorm := 0.0
	for i := range signal {
		diff := signal[i] - recon[i]
		residNorm += diff * diff
	}
	residNorm = math.Sqrt(residNorm)

	signalNorm := math.Sqrt(vecmath.DotProduct(signal, signal))

	res := Result{
		Indices:      append([]int(nil), indices...),
		Coefficients: coeffs,
		ResidualNorm: residNorm,
	}
	if signalNorm > 0 {
		res.RelativeError = residNorm / signalNorm
	}
	if residNorm > 0 {
		res.SNRdB = 20 * math.Log10(signalNorm/residNorm)
	} else {
		res.SNRdB = math.Inf(1)
	}

	return res, nil
}

// Reconstruct returns the least-squares reconstruction of signal from
// the selected atoms.
func Reconstruct(signal []float64, atoms [][]float64, indices []int) ([]float64, error) {
	res, err := Evaluate(signal, atoms, indices)
	if err != nil {
		return nil, err
	}

	recon := make([]float64, len(signal))
	scratch := make([]float64, len(signal))
	for k, j := range res.Indices {
		vecmath.ScaleBlock(scratch, atoms[j], res.Coefficients[k])
		vecmath.AddBlockInPlace(recon, scratch)
	}
	return recon, nil
}

// orthogonalize runs Gram-Schmidt over the selected atoms in order,
// returning the flat orthonormal basis and the upper-triangular factor
// relating it to the original atoms (basis column k spans atoms
// indices[0..k]).
func orthogonalize(signal []float64, atoms [][]float64, indices []int) (basis, upper []float64, err error) {
	d := len(signal)
	if d == 0 {
		return nil, nil, ErrEmptySignal
	}
	if len(atoms) == 0 {
		return nil, nil, ErrEmptyDictionary
	}
	for _, col := range atoms {
		if len(col) != d {
			return nil, nil, ErrDimensionMismatch
		}
	}
	for _, j := range indices {
		if j < 0 || j >= len(atoms) {
			return nil, nil, ErrIndexOutOfRange
		}
	}

	m := len(indices)
	basis = make([]float64, d*m)
	upper = make([]float64, m*m)
	scratch := make([]float64, d)

	for k, j := range indices {
		q := basis[k*d : (k+1)*d]
		copy(q, atoms[j])

		for i := 0; i < k; i++ {
			qi := basis[i*d : (i+1)*d]
			r := vecmath.DotProduct(qi, atoms[j])
			upper[i*m+k] = r
			vecmath.ScaleBlock(scratch, qi, -r)
			vecmath.AddBlockInPlace(q, scratch)
		}

		norm := math.Sqrt(vecmath.DotProduct(q, q))
		if norm <= degenerateTol {
			return nil, nil, fmt.Errorf("%w: atom %d", ErrDependentSelection, j)
		}
		upper[k*m+k] = norm
		vecmath.ScaleBlockInPlace(q, 1/norm)
	}

	return basis, upper, nil
}

// SpectralError returns the relative L2 error between the magnitude
// spectra of signal and approx, both zero-padded to the next power of
// two before the transform.
func SpectralError(signal, approx []float64) (float64, error) {
	if len(signal) == 0 {
		return 0, ErrEmptySignal
	}
	if len(signal) != len(approx) {
		return 0, ErrLengthMismatch
	}

	fftSize := nextPowerOf2(len(signal))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return 0, fmt.Errorf("approx: failed to create FFT plan: %w", err)
	}

	sigMag, err := magnitudeSpectrum(plan, signal, fftSize)
	if err != nil {
		return 0, err
	}
	refNorm := math.Sqrt(vecmath.DotProduct(sigMag, sigMag))
	if refNorm == 0 {
		return 0, ErrZeroReferenceSignal
	}

	apxMag, err := magnitudeSpectrum(plan, approx, fftSize)
	if err != nil {
		return 0, err
	}

	diff := 0.0
	for i := range sigMag {
		d := sigMag[i] - apxMag[i]
		diff += d * d
	}
	return math.Sqrt(diff) / refNorm, nil
}

func magnitudeSpectrum(plan *algofft.Plan[complex128], in []float64, fftSize int) ([]float64, error) {
	padded := make([]complex128, fftSize)
	for i, v := range in {
		padded[i] = complex(v, 0)
	}

	freq := make([]complex128, fftSize)
	if err := plan.Forward(freq, padded); err != nil {
		return nil, fmt.Errorf("approx: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(freq[i])
		im[i] = imag(freq[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

func nextPowerOf2(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}
