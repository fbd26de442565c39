// SPDX-License-Identifier: MIT
// Package: tensor
//
// Purpose:
//   - Provide same-shape elementwise kernels over Dense flat buffers so
//     higher layers (flowmatch) never duplicate tight loops.
//   - Keep the hot paths inside gonum/floats and viterin/vek; this file
//     contributes only validation and dispatch.
//
// Determinism & Performance:
//   - All kernels are single fused passes over contiguous row-major buffers.
//   - No allocations beyond the explicit *To outputs.
//   - No implicit broadcasting: every operand must match shapes exactly.
//
// AI-Hints:
//   - Prefer the in-place kernels (Add/Sub/Hadamard/Scale/AddScaled) in
//     hot loops; use SubTo when the inputs must stay intact.

package tensor

import (
	"fmt"

	"github.com/viterin/vek"
	"gonum.org/v1/gonum/floats"
)

// opErrorf wraps an underlying error with kernel context.
func opErrorf(op string, err error) error {
	return fmt.Errorf("tensor.%s: %w", op, err)
}

// validateUnary ensures x is non-nil.
func validateUnary(op string, x *Dense) error {
	if x == nil {
		return opErrorf(op, ErrNilTensor)
	}

	return nil
}

// validateBinary ensures dst and x are non-nil and share an exact shape.
// Sequence: NotNil(dst) → NotNil(x) → SameShape.
func validateBinary(op string, dst, x *Dense) error {
	if dst == nil || x == nil {
		return opErrorf(op, ErrNilTensor)
	}
	if !dst.SameShape(x) {
		return opErrorf(op, ErrShapeMismatch)
	}

	return nil
}

// Add computes dst += x elementwise, in place.
// Time: O(n). Space: O(1).
func Add(dst, x *Dense) error {
	if err := validateBinary("Add", dst, x); err != nil {
		return err
	}
	vek.Add_Inplace(dst.data, x.data)

	return nil
}

// Sub computes dst -= x elementwise, in place.
// Time: O(n). Space: O(1).
func Sub(dst, x *Dense) error {
	if err := validateBinary("Sub", dst, x); err != nil {
		return err
	}
	vek.Sub_Inplace(dst.data, x.data)

	return nil
}

// Hadamard computes dst ⊙= x (elementwise product), in place.
// Used by flowmatch to apply 0/1 validity masks in one pass.
// Time: O(n). Space: O(1).
func Hadamard(dst, x *Dense) error {
	if err := validateBinary("Hadamard", dst, x); err != nil {
		return err
	}
	vek.Mul_Inplace(dst.data, x.data)

	return nil
}

// Scale computes x *= alpha elementwise, in place.
// Time: O(n). Space: O(1).
func Scale(alpha float64, x *Dense) error {
	if err := validateUnary("Scale", x); err != nil {
		return err
	}
	floats.Scale(alpha, x.data)

	return nil
}

// AddScaled computes dst += alpha * x elementwise, in place.
// Time: O(n). Space: O(1).
func AddScaled(dst *Dense, alpha float64, x *Dense) error {
	if err := validateBinary("AddScaled", dst, x); err != nil {
		return err
	}
	floats.AddScaled(dst.data, alpha, x.data)

	return nil
}

// SubTo computes dst = a - b elementwise, leaving a and b intact.
// dst, a and b must all share one shape.
// Time: O(n). Space: O(1).
func SubTo(dst, a, b *Dense) error {
	if err := validateBinary("SubTo", dst, a); err != nil {
		return err
	}
	if err := validateBinary("SubTo", dst, b); err != nil {
		return err
	}
	floats.SubTo(dst.data, a.data, b.data)

	return nil
}

// Sum returns the sum of all elements of x.
// Time: O(n). Space: O(1).
func Sum(x *Dense) (float64, error) {
	if err := validateUnary("Sum", x); err != nil {
		return 0, err
	}

	return floats.Sum(x.data), nil
}
