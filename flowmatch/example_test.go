package flowmatch_test

import (
	"fmt"

	"github.com/tessellate-ml/graphflow/flowmatch"
	"github.com/tessellate-ml/graphflow/tensor"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleMatcher_SampleFlow
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	One training step on the smallest interesting batch:
//	  x0 = zeros(2, 2, 1, 1)   — source sample, 2 real nodes
//	  x1 = ones(2, 2, 1, 1)    — target sample
//	  t  = [0.5]               — halfway along the path
//
// Options:
//   - Sigma = 0 (deterministic path: the noise term vanishes exactly)
//
// Use case:
//
//	The loop regresses a model's prediction at xt against ut with a
//	masked loss; both come from one SampleFlow call.
//
// Complexity: O(n²·b·d) time and memory.
func ExampleMatcher_SampleFlow() {
	m, err := flowmatch.New(flowmatch.WithSigma(0))
	if err != nil {
		fmt.Println("construct:", err)
		return
	}

	x0, _ := tensor.NewDense(2, 2, 1, 1) // zeros: every node differs from the pad sentinel
	x1, _ := tensor.NewDense(2, 2, 1, 1)
	x1.Fill(1)

	xt, ut, err := m.SampleFlow(x0, x1, []float64{0.5})
	if err != nil {
		fmt.Println("sample:", err)
		return
	}

	xv, _ := xt.At(0, 1, 0, 0)
	uv, _ := ut.At(0, 1, 0, 0)
	fmt.Printf("xt=%.2f ut=%.2f\n", xv, uv)
	// Output: xt=0.50 ut=1.00
}

// ExampleMatcher_NodeMask shows mask derivation on a batch where the
// second node of the only sample is padding.
func ExampleMatcher_NodeMask() {
	m, err := flowmatch.New(flowmatch.WithPadValue(-1))
	if err != nil {
		fmt.Println("construct:", err)
		return
	}

	x, _ := tensor.NewDense(2, 2, 1, 1)
	_ = x.Set(-1, 1, 0, 0, 0) // pad node 1: feature 0 of its row carries the sentinel

	nm, err := m.NodeMask(x)
	if err != nil {
		fmt.Println("mask:", err)
		return
	}

	v0, _ := nm.At(0, 0)
	v1, _ := nm.At(1, 0)
	fmt.Printf("node0=%g node1=%g\n", v0, v1)
	// Output: node0=1 node1=0
}
