// Package ols implements greedy sparse approximation by Orthogonal
// Least Squares (OLS).
//
// Given a target signal and an overcomplete set of candidate basis
// vectors ("atoms"), Select picks atoms one at a time, each chosen to
// maximize the absolute correlation with the current residual. After
// every pick the remaining candidates are orthogonalized against the
// chosen direction (modified Gram-Schmidt), so each subsequent choice
// is made against the part of the candidates the model cannot already
// explain. The returned index order is nested: the first k indices are
// the OLS solution for a budget of k, for every k.
//
// # Usage
//
// Approximate a signal with at most 8 atoms from a dictionary:
//
//	indices, err := ols.Select(signal, atoms, ols.WithMaxAtoms(8))
//
// Raise the number of orthogonalization passes when dictionaries are
// large or highly coherent and accumulated round-off starts to matter:
//
//	indices, err := ols.Select(signal, atoms,
//	    ols.WithMaxAtoms(64),
//	    ols.WithPasses(3),
//	)
//
// Selection stops early when the residual norm collapses to machine
// precision relative to the signal norm, so the returned slice may be
// shorter than the requested budget.
//
// The inputs are never modified; the kernel works on a private copy of
// the dictionary. Selection returns indices only — see measure/approx
// for recomputing coefficients and reconstruction quality over a
// finished selection.
package ols
