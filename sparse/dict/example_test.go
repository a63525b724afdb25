package dict_test

import (
	"fmt"

	"github.com/cwbudde/algo-sparse/sparse/dict"
	"github.com/cwbudde/algo-sparse/sparse/ols"
)

func ExampleCosines() {
	atoms, err := dict.Cosines(64, 64)
	if err != nil {
		panic(err)
	}

	// Plant a single harmonic and recover it with a one-atom budget.
	signal := make([]float64, 64)
	copy(signal, atoms[5])

	picked, err := ols.Select(signal, atoms, ols.WithMaxAtoms(1))
	if err != nil {
		panic(err)
	}

	fmt.Printf("atoms: %d, picked: %v\n", len(atoms), picked)

	// Output:
	// atoms: 64, picked: [5]
}

func ExampleGabor() {
	atoms, err := dict.Gabor(64, 16, 8)
	if err != nil {
		panic(err)
	}

	fmt.Printf("grid size: %d atoms of length %d\n", len(atoms), len(atoms[0]))

	// Output:
	// grid size: 63 atoms of length 64
}
