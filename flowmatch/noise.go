// SPDX-License-Identifier: MIT
// Package: flowmatch
//
// Purpose:
//   - Implement the constrained noise pipeline: per-sample zero-centering
//     under a validity mask, masked Gaussian synthesis, and symmetric
//     noise injection into padded batch matrices.
//
// Determinism & Performance:
//   - Zero-centering is one fused pass with per-batch accumulators over
//     the flat buffer — a batched re-expression of the per-sample map,
//     with no per-sample sub-slicing and no cross-batch leakage.
//   - Mask application is a single Hadamard pass (vek-backed tensor
//     kernel); scaling and the feature-axis broadcast use gonum/floats
//     on contiguous runs.
//
// AI-Hints:
//   - The pairwise mask deliberately doubles as the pre-centering value
//     mask (see ZeroCenteredNoise); do not "fix" this to a node-level
//     mask — the centering denominator is the PAIR count on purpose.

package flowmatch

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/tessellate-ml/graphflow/tensor"
)

// ZeroCenterBatch subtracts, in place, each batch element's mean from its
// masked positions. The LAST axis of x is the batch axis; for each batch
// index b the mean is the sum over the ENTIRE slice (not mask-restricted)
// divided by the count of valid positions, and mean·mask is subtracted so
// unmasked positions keep their raw values.
//
// Implementation:
//   - Stage 1 (Validate): x and mask non-nil with exactly equal shapes.
//   - Stage 2 (Accumulate): one pass over the flat buffer; f % batch is
//     the batch index of flat position f (last axis contiguous), filling
//     per-batch sum and mask-count accumulators.
//   - Stage 3 (Check): every mask count must be > 0 — a degenerate batch
//     element fails with its index, never a silent NaN.
//   - Stage 4 (Apply): second pass subtracting mean[b]·mask[f].
//
// Inputs:
//   - x: value tensor, batch on the last axis; mutated in place.
//   - mask: 0/1 tensor, same shape as x.
//
// Errors:
//   - ErrNilTensor, ErrShapeMismatch, ErrDegenerateMask (with batch index).
//
// Determinism: fixed flat traversal; no randomness.
// Complexity: O(len(x)) time, O(batch) space.
func ZeroCenterBatch(x, mask *tensor.Dense) error {
	// Stage 1 (Validate).
	if x == nil || mask == nil {
		return matcherErrorf(opCenter, ErrNilTensor)
	}
	if !x.SameShape(mask) {
		return matcherErrorf(opCenter, ErrShapeMismatch)
	}
	shape := x.Shape()
	bs := shape[len(shape)-1]

	// Stage 2 (Accumulate): per-batch sums over the entire slice and
	// valid-position counts from the mask, in one fused pass.
	raw := x.Raw()
	mk := mask.Raw()
	sums := make([]float64, bs)
	counts := make([]float64, bs)
	for f, v := range raw {
		b := f % bs // batch index: last axis is contiguous with stride 1
		sums[b] += v
		counts[b] += mk[f]
	}

	// Stage 3 (Check): fail fast on a degenerate batch element.
	for b := 0; b < bs; b++ {
		if counts[b] == 0 {
			return matcherErrorf(opCenter, fmt.Errorf("batch %d: %w", b, ErrDegenerateMask))
		}
		sums[b] /= counts[b] // reuse the slice: sums[b] now holds mean[b]
	}

	// Stage 4 (Apply): subtract mean·mask; unmasked positions untouched.
	for f := range raw {
		raw[f] -= sums[f%bs] * mk[f]
	}

	return nil
}

// ZeroCenteredNoise draws masked, per-sample zero-centered Gaussian noise
// at the pairwise mask's shape.
//
// Implementation:
//   - Stage 1 (Validate): pairMask non-nil, rank >= 2 (batch last).
//   - Stage 2 (Draw): i.i.d. standard normals from the configured source.
//   - Stage 3 (Mask): multiply elementwise by the pairwise mask — the
//     mask's documented dual use: it acts directly as the pre-centering
//     value mask, so the centering denominator is the valid PAIR count.
//   - Stage 4 (Center): ZeroCenterBatch over the batch axis.
//   - Stage 5 (Fill): overwrite every masked-out position with MaskFill,
//     keeping invalid pairs distinguishable from genuine near-zero noise.
//
// Inputs:
//   - pairMask: 0/1 tensor, shape (n, n, b).
//
// Returns:
//   - *tensor.Dense: noise of the mask's shape; MaskFill wherever the
//     mask is 0, zero-centered noise elsewhere.
//
// Errors:
//   - ErrNilTensor, ErrBadRank, ErrDegenerateMask.
//
// Complexity: O(n²·b) time and space.
func (m *Matcher) ZeroCenteredNoise(pairMask *tensor.Dense) (*tensor.Dense, error) {
	// Stage 1 (Validate).
	if pairMask == nil {
		return nil, matcherErrorf(opNoise, ErrNilTensor)
	}
	if pairMask.Rank() < 2 {
		return nil, matcherErrorf(opNoise, ErrBadRank)
	}

	// Stage 2 (Draw).
	noise, err := tensor.NewDense(pairMask.Shape()...)
	if err != nil {
		return nil, matcherErrorf(opNoise, err)
	}
	raw := noise.Raw()
	for f := range raw {
		raw[f] = m.normFloat64()
	}

	// Stage 3 (Mask): zero invalid positions before centering.
	if err = tensor.Hadamard(noise, pairMask); err != nil {
		return nil, matcherErrorf(opNoise, err)
	}

	// Stage 4 (Center).
	if err = ZeroCenterBatch(noise, pairMask); err != nil {
		return nil, matcherErrorf(opNoise, err)
	}

	// Stage 5 (Fill): pin masked-out positions to the tiny fill constant.
	mk := pairMask.Raw()
	for f := range raw {
		if mk[f] == 0 {
			raw[f] = MaskFill
		}
	}

	return noise, nil
}

// AddSymmetricNoise samples a point around a batch matrix: it derives the
// node and pairwise masks from the pad sentinel, synthesizes masked
// zero-centered noise, symmetrizes it over the two node axes, scales by
// sigma and adds it to a copy of the input. This is the noise-injection
// step of the conditional probability path.
//
// Implementation:
//   - Stage 1 (Validate): x must be rank 4 with square node axes.
//   - Stage 2 (Masks): NodeMask → PairMask.
//   - Stage 3 (Noise): ZeroCenteredNoise at the mask's (n, n, b) shape.
//   - Stage 4 (Symmetrize): noise = (noise + noiseᵀ)/2 over the node
//     axes; the mask is symmetric, so fill positions stay at MaskFill.
//   - Stage 5 (Inject): out = x + sigma·noise, the rank-3 noise broadcast
//     across the feature axis (one AddConst per contiguous feature run).
//
// Guarantees:
//   - The injected perturbation is exactly symmetric in the node axes,
//     so out[i,j] == out[j,i] for symmetric inputs at every batch and
//     feature index; invalid pairs move by exactly sigma·MaskFill.
//   - The input tensor is never mutated.
//
// Errors:
//   - ErrNilTensor, ErrBadRank, ErrNonSquare, ErrDegenerateMask.
//
// Complexity: O(n²·b·d) time, O(n²·b + n²·b·d) space.
func (m *Matcher) AddSymmetricNoise(x *tensor.Dense) (*tensor.Dense, error) {
	// Stage 1 (Validate).
	if err := validateBatchMatrix(opAddNoise, x); err != nil {
		return nil, err
	}

	// Stage 2 (Masks).
	nodeMask, err := m.NodeMask(x)
	if err != nil {
		return nil, matcherErrorf(opAddNoise, err)
	}
	pairMask, err := m.PairMask(nodeMask)
	if err != nil {
		return nil, matcherErrorf(opAddNoise, err)
	}

	// Stage 3 (Noise).
	noise, err := m.ZeroCenteredNoise(pairMask)
	if err != nil {
		return nil, matcherErrorf(opAddNoise, err)
	}

	// Stage 4 (Symmetrize): average each (i, j)/(j, i) batch run pair.
	shape := x.Shape()
	n, bs, dd := shape[0], shape[2], shape[3]
	nr := noise.Raw()
	var i, j, b int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ { // diagonal is its own transpose
			up := (i*n + j) * bs // batch run of (i, j)
			lo := (j*n + i) * bs // batch run of (j, i)
			for b = 0; b < bs; b++ {
				v := 0.5 * (nr[up+b] + nr[lo+b])
				nr[up+b] = v
				nr[lo+b] = v
			}
		}
	}

	// Stage 5 (Inject): broadcast sigma·noise over the feature axis.
	out := x.Clone()
	or := out.Raw()
	sigma := m.opts.sigma
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			pairBase := (i*n + j) * bs
			for b = 0; b < bs; b++ {
				run := (pairBase + b) * dd // contiguous feature run of (i, j, b)
				floats.AddConst(sigma*nr[pairBase+b], or[run:run+dd])
			}
		}
	}

	return out, nil
}
