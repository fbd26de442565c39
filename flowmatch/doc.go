// Package flowmatch builds conditional flow-matching training targets
// for generative models over masked, variable-size, undirected graphs.
//
// 🚀 What is conditional flow matching?
//
//	A flow model learns a time-dependent vector field that carries
//	samples from a source distribution to a target distribution.
//	Training never solves an ODE: for a pair (x0, x1) and a time t,
//	the regression target is available in closed form.  It's used in:
//	  • molecular & graph generation
//	  • structure-conditioned design
//	  • any setting where diffusion-style training is too indirect
//
// ✨ Key features:
//   - node & pairwise validity masks derived from a pad sentinel
//   - masked Gaussian noise: zero-centered per sample, symmetric in the
//     node axes, with masked-out pairs pinned to a tiny fill constant
//   - stochastic path sampling  xt ~ N(t·x1 + (1−t)·x0, σ)
//   - closed-form target  ut = x1 − x0 (time-invariant on linear paths)
//   - fail-fast sentinel errors; degenerate masks never become NaN
//
// ⚙️ Usage:
//
//	import "github.com/tessellate-ml/graphflow/flowmatch"
//
//	m, err := flowmatch.New(
//	  flowmatch.WithSigma(0.1),      // path dispersion
//	  flowmatch.WithEmbDim(4),       // feature channels per node pair
//	  flowmatch.WithPadValue(-1),    // the upstream MATRIX_PAD sentinel
//	)
//	if err != nil { ... }
//
//	t, _ := m.SampleT(batch)               // t ~ U[0,1) per sample
//	xt, ut, err := m.SampleFlow(x0, x1, t) // noisy point + regression target
//
// Batch tensors are rank-4 tensor.Dense values with axes
// (row-node, column-node, batch, feature); padding rows carry the pad
// sentinel in feature 0.  The matcher is immutable after New and safe
// for concurrent use with the default random source.
package flowmatch
