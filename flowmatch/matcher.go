// SPDX-License-Identifier: MIT
// Package: flowmatch
//
// Purpose:
//   - Define the Matcher (immutable configuration holder) and the mask
//     derivation operations: per-node validity from the pad sentinel and
//     the pairwise outer-product mask.
//
// Determinism & Performance:
//   - Mask derivation is a fixed i→b / i→j→b traversal over flat buffers.
//   - No hidden allocations beyond the returned mask tensors.
//
// AI-Hints:
//   - Reuse a derived pair mask across ZeroCenteredNoise calls when the
//     batch layout is fixed; masks depend only on pad positions.

package flowmatch

import (
	"fmt"
	"math/rand"

	"github.com/tessellate-ml/graphflow/tensor"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNew       = "New"
	opNodeMask  = "NodeMask"
	opPairMask  = "PairMask"
	opNoise     = "ZeroCenteredNoise"
	opAddNoise  = "AddSymmetricNoise"
	opSamplePt  = "SampleConditionalPt"
	opVecField  = "ConditionalVectorField"
	opSampleFlw = "SampleFlow"
	opSampleT   = "SampleT"
	opCenter    = "ZeroCenterBatch"
)

// matcherErrorf wraps an underlying error with operation context.
func matcherErrorf(op string, err error) error {
	return fmt.Errorf("flowmatch.%s: %w", op, err)
}

// Matcher holds the immutable flow-matching configuration and exposes
// the noise, path and vector-field operations as pure methods.
// Lifecycle: constructed once via New, reused for every batch, never
// mutated. Concurrent calls with distinct input tensors are safe under
// the default random source.
type Matcher struct {
	opts Options
	rng  *rand.Rand // nil => process-global source (concurrency-safe)
}

// New constructs a Matcher from functional options.
// Stage 1 (Resolve): apply setters over documented defaults.
// Stage 2 (Validate): reject invalid configuration with sentinel errors
// (ErrUnknownDevice, ErrBadSigma, ErrBadEmbDim, ErrBadPadValue) — every
// failure happens here, never at first use.
// Stage 3 (Finalize): bind the injected random source, if any.
// Complexity: O(k) for k options.
func New(opts ...Option) (*Matcher, error) {
	o := gatherOptions(opts...)
	if err := validateOptions(o); err != nil {
		return nil, matcherErrorf(opNew, err)
	}

	m := &Matcher{opts: o}
	if o.src != nil {
		m.rng = rand.New(o.src)
	}

	return m, nil
}

// Device returns the configured execution device identifier.
func (m *Matcher) Device() Device { return m.opts.device }

// Sigma returns the configured Gaussian noise scale.
func (m *Matcher) Sigma() float64 { return m.opts.sigma }

// EmbDim returns the declared feature dimensionality.
func (m *Matcher) EmbDim() int { return m.opts.embDim }

// PadValue returns the pad sentinel marking absent nodes.
func (m *Matcher) PadValue() float64 { return m.opts.padValue }

// normFloat64 draws one standard normal from the configured source.
func (m *Matcher) normFloat64() float64 {
	if m.rng != nil {
		return m.rng.NormFloat64()
	}

	return rand.NormFloat64()
}

// uniformFloat64 draws one uniform [0,1) value from the configured source.
func (m *Matcher) uniformFloat64() float64 {
	if m.rng != nil {
		return m.rng.Float64()
	}

	return rand.Float64()
}

// validateBatchMatrix ensures x is a non-nil rank-4 tensor with square
// node axes. Sequence: NotNil → Rank → Square.
// Complexity: O(1).
func validateBatchMatrix(op string, x *tensor.Dense) error {
	if x == nil {
		return matcherErrorf(op, ErrNilTensor)
	}
	if x.Rank() != 4 {
		return matcherErrorf(op, ErrBadRank)
	}
	shape := x.Shape()
	if shape[0] != shape[1] {
		return matcherErrorf(op, ErrNonSquare)
	}

	return nil
}

// NodeMask derives the per-node validity mask from a padded batch matrix.
// A node row i of batch element b is real iff its feature 0 at column 0
// differs from the pad sentinel (the upstream producer pads whole rows,
// so column 0 is representative).
//
// Implementation:
//   - Stage 1 (Validate): x must be rank 4 with square node axes.
//   - Stage 2 (Execute): read x[i, 0, b, 0] for every (i, b) via flat
//     offsets; write 1 where it differs from PadValue, else 0.
//
// Inputs:
//   - x: batch matrix, shape (n, n, b, d).
//
// Returns:
//   - *tensor.Dense: 0/1 node mask, shape (n, b).
//
// Errors:
//   - ErrNilTensor, ErrBadRank, ErrNonSquare.
//
// Complexity: O(n·b) time, O(n·b) space.
func (m *Matcher) NodeMask(x *tensor.Dense) (*tensor.Dense, error) {
	// Stage 1 (Validate).
	if err := validateBatchMatrix(opNodeMask, x); err != nil {
		return nil, err
	}
	shape := x.Shape()
	n, bs, dd := shape[0], shape[2], shape[3]

	// Stage 2 (Prepare): allocate the (n, b) mask.
	mask, err := tensor.NewDense(n, bs)
	if err != nil {
		return nil, matcherErrorf(opNodeMask, err)
	}

	// Stage 2 (Execute): flat fast-path. x[i, 0, b, 0] sits at offset
	// i*(n*bs*dd) + b*dd in the row-major buffer.
	raw := x.Raw()
	out := mask.Raw()
	rowStride := n * bs * dd
	var i, b int
	for i = 0; i < n; i++ {
		base := i * rowStride // base offset of row i, column 0
		for b = 0; b < bs; b++ {
			if raw[base+b*dd] != m.opts.padValue {
				out[i*bs+b] = 1
			}
		}
	}

	return mask, nil
}

// PairMask builds the pairwise validity mask as the outer product of the
// node mask with itself, per batch element. The result is symmetric in
// the two node axes and restricts noise to valid node pairs only.
//
// Implementation:
//   - Stage 1 (Validate): nodeMask must be a non-nil rank-2 tensor.
//   - Stage 2 (Execute): pm[i, j, b] = nm[i, b] * nm[j, b] over a fixed
//     i→j→b traversal of the flat buffers.
//
// Inputs:
//   - nodeMask: 0/1 tensor, shape (n, b).
//
// Returns:
//   - *tensor.Dense: 0/1 pairwise mask, shape (n, n, b).
//
// Errors:
//   - ErrNilTensor, ErrBadRank.
//
// Complexity: O(n²·b) time and space.
func (m *Matcher) PairMask(nodeMask *tensor.Dense) (*tensor.Dense, error) {
	// Stage 1 (Validate).
	if nodeMask == nil {
		return nil, matcherErrorf(opPairMask, ErrNilTensor)
	}
	if nodeMask.Rank() != 2 {
		return nil, matcherErrorf(opPairMask, ErrBadRank)
	}
	shape := nodeMask.Shape()
	n, bs := shape[0], shape[1]

	// Stage 2 (Prepare).
	pm, err := tensor.NewDense(n, n, bs)
	if err != nil {
		return nil, matcherErrorf(opPairMask, err)
	}

	// Stage 2 (Execute): outer product per batch slice.
	nm := nodeMask.Raw()
	out := pm.Raw()
	var i, j, b int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			base := (i*n + j) * bs // base offset of the (i, j) batch run
			for b = 0; b < bs; b++ {
				out[base+b] = nm[i*bs+b] * nm[j*bs+b]
			}
		}
	}

	return pm, nil
}
