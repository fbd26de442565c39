// SPDX-License-Identifier: MIT
// Package flowmatch: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// flowmatch package. All operations MUST return these sentinels and tests
// MUST check them via errors.Is. No operation panics on user-triggered
// error conditions.

package flowmatch

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "flowmatch: ..." for consistency and to
// allow easy grepping across logs. Wrap with fmt.Errorf("Op: %w", ErrX)
// at call boundaries when context (operation, batch index) is essential;
// callers still match via errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil tensor -> rank -> square node axes -> shape/batch mismatch ->
// non-finite values -> degenerate mask.

var (
	// ErrNilTensor indicates a nil *tensor.Dense argument.
	ErrNilTensor = errors.New("flowmatch: nil tensor")

	// ErrShapeMismatch indicates operands whose shapes are not exactly
	// equal. There is no implicit broadcasting beyond the documented
	// t-vector broadcast in SampleConditionalPt.
	ErrShapeMismatch = errors.New("flowmatch: shape mismatch")

	// ErrBadRank indicates a tensor whose rank does not match the
	// operation's contract (batch matrices are rank 4: node, node,
	// batch, feature; pairwise masks are rank 3).
	ErrBadRank = errors.New("flowmatch: unexpected tensor rank")

	// ErrNonSquare indicates that the two node axes of a batch matrix
	// differ in length.
	ErrNonSquare = errors.New("flowmatch: node axes are not square")

	// ErrBatchMismatch indicates that the time vector length differs
	// from the tensors' batch dimension.
	ErrBatchMismatch = errors.New("flowmatch: time vector does not match batch size")

	// ErrBadBatch indicates a requested batch size <= 0.
	ErrBadBatch = errors.New("flowmatch: batch size must be > 0")

	// ErrNonFiniteTime indicates a NaN or ±Inf entry in the time vector.
	ErrNonFiniteTime = errors.New("flowmatch: non-finite time value")

	// ErrDegenerateMask indicates a batch element whose validity mask
	// sums to zero: the per-sample mean is undefined and the operation
	// fails instead of propagating NaN into training.
	ErrDegenerateMask = errors.New("flowmatch: mask has zero valid positions")

	// ErrBadSigma indicates a negative or non-finite noise scale at
	// construction. Sigma 0 is valid and selects the noiseless path.
	ErrBadSigma = errors.New("flowmatch: sigma must be finite and >= 0")

	// ErrUnknownDevice indicates an execution device identifier this
	// build does not know. Fails at construction, never at first use.
	ErrUnknownDevice = errors.New("flowmatch: unknown device")

	// ErrBadEmbDim indicates a feature dimensionality <= 0 at construction.
	ErrBadEmbDim = errors.New("flowmatch: emb dim must be > 0")

	// ErrBadPadValue indicates a NaN or ±Inf pad sentinel at construction;
	// a non-finite sentinel cannot be compared for equality reliably.
	ErrBadPadValue = errors.New("flowmatch: pad value must be finite")
)
