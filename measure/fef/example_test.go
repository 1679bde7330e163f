package fef_test

import (
	"fmt"

	"github.com/cwbudde/algo-spiro/measure/fef"
)

func ExampleCompute() {
	flow := []float64{0, 8, 6, 4, 2}
	volume := []float64{0, 1, 2, 3, 4}

	res, err := fef.Compute(flow, volume, 4)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("FEF25:    %.0f\n", res.FEF25)
	fmt.Printf("FEF50:    %.0f\n", res.FEF50)
	fmt.Printf("FEF75:    %.0f\n", res.FEF75)
	fmt.Printf("FEF25-75: %.0f\n", res.FEF2575)
	// Output:
	// FEF25:    8
	// FEF50:    6
	// FEF75:    4
	// FEF25-75: 6
}
