// Package graphflow is a training-objective toolkit for flow-matching
// generative models over variable-size, undirected graphs represented
// as padded adjacency/feature tensors.
//
// 🚀 What is graphflow?
//
//	A small, deterministic library that brings together:
//		• Dense tensors: rank-N row-major float64 storage with strict shape checks
//		• Masking: node and pairwise validity masks derived from a pad sentinel
//		• Constrained noise: masked, zero-centered, symmetric Gaussian noise
//		• Probability paths: stochastic interpolation mu_t = t·x1 + (1−t)·x0
//		• Regression targets: the conditional vector field ut = x1 − x0
//
// ✨ Why choose graphflow?
//
//   - Exact semantics – masked noise stays zero-centered per sample, never leaks across the batch
//   - Fail-fast guarantees – degenerate masks and shape mismatches surface as sentinel errors, never NaN
//   - Symmetry by construction – every perturbation is invariant under node-axis exchange
//   - Reproducible – inject a rand.Source and every draw replays bit-for-bit
//
// Under the hood, everything is organized under two subpackages:
//
//	tensor/    — dense rank-N storage and elementwise kernels (gonum/vek backed)
//	flowmatch/ — the Conditional Flow Matcher: masks, noise, paths, vector fields
//
// Quick ASCII example:
//
//	x0 ───────────── mu_t ───────────── x1
//	        t=0.3      │     t=0.7
//	                   ▼
//	       xt = mu_t + σ·(sym. masked noise)
//
// The training loop regresses a model's prediction at xt against
// ut = x1 − x0, masked to valid node pairs.
//
//	go get github.com/tessellate-ml/graphflow/flowmatch
package graphflow
