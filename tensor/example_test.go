package tensor_test

import (
	"fmt"

	"github.com/tessellate-ml/graphflow/tensor"
)

// ExampleNewDense builds a small rank-3 tensor, writes one element and
// applies an elementwise kernel.
func ExampleNewDense() {
	x, err := tensor.NewDense(2, 2, 1)
	if err != nil {
		fmt.Println("new:", err)
		return
	}
	_ = x.Set(3, 0, 1, 0)

	mask, _ := tensor.NewDenseFrom([]float64{1, 1, 0, 0}, 2, 2, 1)
	_ = tensor.Hadamard(x, mask) // keep only masked positions

	v, _ := x.At(0, 1, 0)
	fmt.Printf("rank=%d len=%d kept=%g\n", x.Rank(), x.Len(), v)
	// Output: rank=3 len=4 kept=3
}
