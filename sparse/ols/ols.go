package ols

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by Select.
var (
	ErrEmptySignal       = errors.New("ols: signal is empty")
	ErrEmptyDictionary   = errors.New("ols: dictionary has no columns")
	ErrDimensionMismatch = errors.New("ols: column length does not match signal length")
	ErrInvalidBudget     = errors.New("ols: atom budget must be positive")
)

const (
	// machineEps is the float64 unit round-off; the residual stop
	// threshold scales it by the initial residual norm.
	machineEps = 0x1p-52

	// zeroNormTol is the norm at or below which a column counts as
	// degenerate and is retired from selection instead of renormalized.
	zeroNormTol = 1e-12
)

// Select runs greedy Orthogonal Least Squares selection of dictionary
// atoms against signal and returns the chosen column indices in
// selection order.
//
// Neither signal nor atoms are modified. Columns with (numerically)
// zero norm, before or after orthogonalization, are never selected.
// When several columns achieve the maximum absolute correlation, the
// lowest index wins; this first-maximum rule is a deterministic
// convention, not a numerical policy.
//
// The result may be shorter than the atom budget: selection stops once
// the residual norm falls to machine precision relative to the signal
// norm, or when no selectable column remains.
func Select(signal []float64, atoms [][]float64, opts ...Option) ([]int, error) {
	cfg := applyOptions(opts)

	budget, err := resolveBudget(signal, atoms, cfg)
	if err != nil {
		return nil, err
	}

	s := newState(signal, atoms, budget)
	s.normalizeColumns()

	stopNorm := machineEps * math.Sqrt(vecmath.DotProduct(signal, signal))

	for s.count < budget {
		if s.residualNorm() <= stopNorm {
			break
		}

		if !s.step(cfg.passes) {
			break
		}

		if cfg.progress != nil {
			cfg.progress(s.count)
		}
	}

	picked := make([]int, s.count)
	copy(picked, s.picked[:s.count])
	return picked, nil
}

// resolveBudget validates the inputs and returns the effective atom
// budget, clamped to min(len(signal), len(atoms)).
func resolveBudget(signal []float64, atoms [][]float64, cfg config) (int, error) {
	d := len(signal)
	if d == 0 {
		return 0, ErrEmptySignal
	}

	if len(atoms) == 0 {
		return 0, ErrEmptyDictionary
	}

	for _, col := range atoms {
		if len(col) != d {
			return 0, ErrDimensionMismatch
		}
	}

	budget := d
	if len(atoms) < budget {
		budget = len(atoms)
	}

	if cfg.hasBudget {
		if cfg.maxAtoms < 1 {
			return 0, ErrInvalidBudget
		}
		if cfg.maxAtoms < budget {
			budget = cfg.maxAtoms
		}
	}

	return budget, nil
}

// state holds all per-call selection bookkeeping. Every buffer is
// allocated once, sized by the resolved budget, and owned exclusively
// by one Select call.
type state struct {
	dim  int
	cols int

	work   []float64 // column-major dim×cols working copy of the dictionary
	active []bool

	basis  []float64 // column-major dim×budget orthonormal directions
	resid  []float64 // current residual, starts as a copy of the signal
	coeffs []float64 // projection coefficients, one per selection
	picked []int     // selected original column indices
	count  int

	scratch []float64
}

func newState(signal []float64, atoms [][]float64, budget int) *state {
	d := len(signal)
	p := len(atoms)

	s := &state{
		dim:     d,
		cols:    p,
		work:    make([]float64, d*p),
		active:  make([]bool, p),
		basis:   make([]float64, d*budget),
		resid:   make([]float64, d),
		coeffs:  make([]float64, budget),
		picked:  make([]int, budget),
		scratch: make([]float64, d),
	}

	for j, col := range atoms {
		copy(s.column(j), col)
		s.active[j] = true
	}
	copy(s.resid, signal)

	return s
}

func (s *state) column(j int) []float64 {
	return s.work[j*s.dim : (j+1)*s.dim]
}

func (s *state) basisColumn(k int) []float64 {
	return s.basis[k*s.dim : (k+1)*s.dim]
}

// normalizeColumns rescales every column to unit norm. Columns with
// norm at or below zeroNormTol are retired instead of divided.
func (s *state) normalizeColumns() {
	for j := 0; j < s.cols; j++ {
		col := s.column(j)
		norm := math.Sqrt(vecmath.DotProduct(col, col))
		if norm <= zeroNormTol {
			s.active[j] = false
			continue
		}
		vecmath.ScaleBlockInPlace(col, 1/norm)
	}
}

// step runs one full selection iteration: pick the best active column,
// fix it as the next basis direction, orthogonalize the survivors, and
// update the residual. Returns false when no selectable column remains.
func (s *state) step(passes int) bool {
	j, ok := s.bestColumn()
	if !ok {
		return false
	}

	q := s.takeColumn(j)
	s.project(q, passes)
	s.updateResidual(q)
	return true
}

// bestColumn returns the active column with the largest absolute
// correlation to the current residual. Strict comparison keeps the
// first maximum on ties. ok is false when no column remains active.
func (s *state) bestColumn() (best int, ok bool) {
	bestAbs := -1.0
	best = -1

	for j := 0; j < s.cols; j++ {
		if !s.active[j] {
			continue
		}
		a := math.Abs(vecmath.DotProduct(s.resid, s.column(j)))
		if a > bestAbs {
			bestAbs = a
			best = j
		}
	}

	return best, best >= 0
}

// takeColumn retires column j and fixes its current orthogonalized
// value as the next orthonormal basis direction.
func (s *state) takeColumn(j int) []float64 {
	s.active[j] = false
	s.picked[s.count] = j

	q := s.basisColumn(s.count)
	copy(q, s.column(j))
	return q
}

// project removes the q component from every active column and
// renormalizes the survivors, repeating the sweep passes times.
// Columns reduced to numerically zero norm are retired.
func (s *state) project(q []float64, passes int) {
	for pass := 0; pass < passes; pass++ {
		for j := 0; j < s.cols; j++ {
			if !s.active[j] {
				continue
			}

			col := s.column(j)
			vecmath.ScaleBlock(s.scratch, q, -vecmath.DotProduct(q, col))
			vecmath.AddBlockInPlace(col, s.scratch)

			norm := math.Sqrt(vecmath.DotProduct(col, col))
			if norm <= zeroNormTol {
				s.active[j] = false
				continue
			}
			vecmath.ScaleBlockInPlace(col, 1/norm)
		}
	}
}

// updateResidual subtracts the q component from the residual,
// recording the projection coefficient, and advances the fill count.
// The decomposition signal = Σ coeffs[k]·basis[k] + resid holds after
// every call.
func (s *state) updateResidual(q []float64) {
	z := vecmath.DotProduct(s.resid, q)
	s.coeffs[s.count] = z

	vecmath.ScaleBlock(s.scratch, q, -z)
	vecmath.AddBlockInPlace(s.resid, s.scratch)

	s.count++
}

func (s *state) residualNorm() float64 {
	return math.Sqrt(vecmath.DotProduct(s.resid, s.resid))
}
