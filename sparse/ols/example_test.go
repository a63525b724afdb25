package ols_test

import (
	"fmt"

	"github.com/cwbudde/algo-sparse/sparse/ols"
)

func ExampleSelect() {
	// Standard basis dictionary: selection order follows the magnitude
	// of the signal components, and the zero component is never needed.
	signal := []float64{3, 4, 0, 1}
	atoms := [][]float64{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}

	picked, err := ols.Select(signal, atoms)
	if err != nil {
		panic(err)
	}

	fmt.Println(picked)

	// Output:
	// [1 0 3]
}

func ExampleWithProgress() {
	signal := []float64{3, 4}
	atoms := [][]float64{
		{1, 0},
		{0, 1},
	}

	picked, err := ols.Select(signal, atoms,
		ols.WithMaxAtoms(2),
		ols.WithProgress(func(iteration int) {
			fmt.Printf("iteration %d\n", iteration)
		}),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(picked)

	// Output:
	// iteration 1
	// iteration 2
	// [1 0]
}
