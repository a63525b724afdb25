// Command olsinfo runs greedy OLS atom selection on a synthetic sparse
// signal and prints the selection trace.
//
// Usage:
//
//	olsinfo [flags]
//
// It builds a dictionary, plants a random sparse combination of its
// atoms, runs the selector, and reports which atoms were recovered in
// which order together with reconstruction quality.
//
// Examples:
//
//	olsinfo
//	olsinfo -dict gabor -n 256 -width 32 -step 8
//	olsinfo -dict cosines -n 128 -sparsity 6 -atoms 12 -passes 3
//	olsinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/cwbudde/algo-sparse/measure/approx"
	"github.com/cwbudde/algo-sparse/sparse/dict"
	"github.com/cwbudde/algo-sparse/sparse/ols"
)

type dictEntry struct {
	name  string
	build func(n, width, step int) ([][]float64, error)
}

var registry = []dictEntry{
	{"spikes", func(n, _, _ int) ([][]float64, error) { return dict.Spikes(n) }},
	{"cosines", func(n, _, _ int) ([][]float64, error) { return dict.Cosines(n, n) }},
	{"gabor", dict.Gabor},
}

func main() {
	name := flag.String("dict", "gabor", "dictionary type (use -list to see available)")
	n := flag.Int("n", 128, "signal length in samples")
	width := flag.Int("width", 16, "gabor window width in samples")
	step := flag.Int("step", 8, "gabor grid step in samples")
	sparsity := flag.Int("sparsity", 4, "number of planted atoms")
	budget := flag.Int("atoms", 8, "atom selection budget")
	passes := flag.Int("passes", 2, "orthogonalization passes per selection step")
	seed := flag.Int64("seed", 1, "seed for planted atom choice and weights")
	list := flag.Bool("list", false, "list available dictionary types")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: olsinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Runs OLS sparse selection on a synthetic signal.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  olsinfo -dict cosines -n 128 -sparsity 6\n")
		fmt.Fprintf(os.Stderr, "  olsinfo -dict gabor -width 32 -step 8 -passes 3\n")
	}
	flag.Parse()

	if *list {
		for _, e := range registry {
			fmt.Println(e.name)
		}
		return
	}

	var entry *dictEntry
	for i := range registry {
		if registry[i].name == *name {
			entry = &registry[i]
			break
		}
	}
	if entry == nil {
		fmt.Fprintf(os.Stderr, "error: unknown dictionary %q (use -list to see available)\n", *name)
		os.Exit(1)
	}

	atoms, err := entry.build(*n, *width, *step)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	signal, planted := plantSignal(atoms, *sparsity, *seed)
	fmt.Printf("dictionary: %s (%d atoms of length %d), planted atoms: %v\n\n",
		entry.name, len(atoms), *n, planted)

	trace, picked, err := runSelection(signal, atoms, *budget, *passes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printTrace(signal, atoms, trace, picked)
}

// plantSignal draws count distinct atoms and combines them with random
// weights in [0.5, 1.5), returning the signal and the chosen indices.
func plantSignal(atoms [][]float64, count int, seed int64) ([]float64, []int) {
	rng := rand.New(rand.NewSource(seed))
	if count > len(atoms) {
		count = len(atoms)
	}

	perm := rng.Perm(len(atoms))[:count]
	signal := make([]float64, len(atoms[0]))
	for _, j := range perm {
		w := 0.5 + rng.Float64()
		for i, v := range atoms[j] {
			signal[i] += w * v
		}
	}
	return signal, perm
}

type traceRow struct {
	iteration int
	index     int
	residual  float64
}

func runSelection(signal []float64, atoms [][]float64, budget, passes int) ([]traceRow, []int, error) {
	var trace []traceRow

	picked, err := ols.Select(signal, atoms,
		ols.WithMaxAtoms(budget),
		ols.WithPasses(passes),
		ols.WithProgress(func(iteration int) {
			trace = append(trace, traceRow{iteration: iteration})
		}),
	)
	if err != nil {
		return nil, nil, err
	}

	// Fill in the per-iteration residuals by evaluating each prefix of
	// the nested selection.
	for i := range trace {
		trace[i].index = picked[i]
		res, err := approx.Evaluate(signal, atoms, picked[:i+1])
		if err != nil {
			return nil, nil, err
		}
		trace[i].residual = res.ResidualNorm
	}

	return trace, picked, nil
}

func printTrace(signal []float64, atoms [][]float64, trace []traceRow, picked []int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Iteration\tAtom\tResidual Norm\n")
	fmt.Fprintf(tw, "---------\t----\t-------------\n")
	for _, row := range trace {
		fmt.Fprintf(tw, "%d\t%d\t%.6e\n", row.iteration, row.index, row.residual)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
		return
	}

	res, err := approx.Evaluate(signal, atoms, picked)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}

	recon, err := approx.Reconstruct(signal, atoms, picked)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}

	spectral, err := approx.SpectralError(signal, recon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return
	}

	fmt.Printf("\nrelative error: %.6e\n", res.RelativeError)
	fmt.Printf("spectral error: %.6e\n", spectral)
	if math.IsInf(res.SNRdB, 1) {
		fmt.Printf("snr: exact reconstruction\n")
	} else {
		fmt.Printf("snr: %.2f dB\n", res.SNRdB)
	}
}
