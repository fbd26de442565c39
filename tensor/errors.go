// SPDX-License-Identifier: MIT
// Package tensor: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the tensor
// package. All kernels MUST return these sentinels and tests MUST check them
// via errors.Is. No kernel should panic on user-triggered error conditions.

package tensor

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "tensor: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid
	// (zero rank, or any dimension <= 0). Constructors must validate
	// shape before allocation.
	ErrBadShape = errors.New("tensor: invalid shape")

	// ErrOutOfRange indicates that an index tuple is outside valid bounds
	// or has the wrong arity. Public indexers (At/Set) MUST return this,
	// not panic.
	ErrOutOfRange = errors.New("tensor: index out of range")

	// ErrShapeMismatch indicates incompatible shapes between operands of
	// an elementwise kernel (all kernels require exactly equal shapes;
	// there is no implicit broadcasting at this layer).
	ErrShapeMismatch = errors.New("tensor: shape mismatch")

	// ErrNilTensor indicates that a nil *Dense (receiver or argument)
	// was passed where a tensor is required.
	ErrNilTensor = errors.New("tensor: nil tensor")

	// ErrBadData indicates that a backing slice length does not match the
	// product of the requested dimensions.
	ErrBadData = errors.New("tensor: data length does not match shape")
)
